package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/recruiteryu/platform/internal/auth"
	"github.com/recruiteryu/platform/internal/dtos"
	"github.com/recruiteryu/platform/internal/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Signup creates an account. The role defaults to candidate and anything
// outside the closed role set is refused at the handler, so by the time we
// get here role is trustworthy.
func (s *UserService) Signup(req *dtos.SignupRequest) (*models.User, error) {
	var existing models.User
	err := s.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = string(auth.RoleCandidate)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     role,
		Company:  req.Company,
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and returns the account.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SessionFor builds the session value all authorization decisions read.
func SessionFor(user *models.User) *auth.Session {
	return &auth.Session{
		UserID:      user.ID,
		Role:        auth.ParseRole(user.Role),
		DisplayName: user.Name,
		Email:       user.Email,
		CompanyName: user.Company,
	}
}

// UpdateProfile changes the basic account fields, refusing an email that
// another account already holds.
func (s *UserService) UpdateProfile(userID string, req *dtos.ProfileUpdateRequest) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Email != user.Email {
		var other models.User
		err := s.DB.Where("email = ? AND id <> ?", req.Email, userID).First(&other).Error
		if err == nil {
			return nil, ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	if req.Company != "" {
		user.Company = req.Company
	}
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(userID string, req *dtos.PasswordChangeRequest) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(req.CurrentPassword, user.Password) {
		return ErrWrongPassword
	}
	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.DB.Model(user).Update("password", hash).Error
}

func (s *UserService) UpdateNotificationSettings(userID string, settings *models.NotificationSettings) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	user.NotificationSettings = *settings
	return s.DB.Save(user).Error
}

// UpdateCandidateProfile replaces the descriptive profile document.
func (s *UserService) UpdateCandidateProfile(userID string, profile *models.CandidateProfile) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	user.Profile = *profile
	return s.DB.Save(user).Error
}

// ListRecruiters returns every recruiter account (the admin "customers"
// view).
func (s *UserService) ListRecruiters() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Where("role = ?", auth.RoleRecruiter).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListCandidates returns every candidate with a derived profile completion
// percentage (25% per filled section).
func (s *UserService) ListCandidates() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Where("role = ?", auth.RoleCandidate).Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		p := users[i].Profile
		score := 0
		if p.Bio != "" {
			score += 25
		}
		if len(p.Skills) > 0 {
			score += 25
		}
		if len(p.Experience) > 0 {
			score += 25
		}
		if len(p.Education) > 0 {
			score += 25
		}
		users[i].ProfileCompletion = score
	}
	return users, nil
}

// DeleteAccount removes a user and everything hanging off it: a recruiter
// takes their job postings and all applications to those jobs; a candidate
// takes their own applications.
func (s *UserService) DeleteAccount(userID string) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		switch auth.ParseRole(user.Role) {
		case auth.RoleRecruiter:
			if err := tx.Where("recruiter_id = ?", userID).Delete(&models.Application{}).Error; err != nil {
				return err
			}
			if err := tx.Where("recruiter_id = ?", userID).Delete(&models.JobPosting{}).Error; err != nil {
				return err
			}
		case auth.RoleCandidate:
			if err := tx.Where("candidate_id = ?", userID).Delete(&models.Application{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(user).Error
	})
}
