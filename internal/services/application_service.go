package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/recruiteryu/platform/internal/lifecycle"
	"github.com/recruiteryu/platform/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply files a pending application by candidate to the given job. A second
// application to the same job comes back as ErrDuplicateApplication; the
// unique (job_id, candidate_id) index backs this up against racing requests.
func (s *ApplicationService) Apply(candidate *models.User, jobID string) (*models.Application, error) {
	var job models.JobPosting
	if err := s.DB.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var existing models.Application
	err := s.DB.Where("job_id = ? AND candidate_id = ?", jobID, candidate.ID).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateApplication
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	app := &models.Application{
		JobID:          job.ID,
		JobTitle:       job.Title,
		CandidateID:    candidate.ID,
		CandidateName:  candidate.Name,
		CandidateEmail: candidate.Email,
		RecruiterID:    job.RecruiterID,
		Status:         string(lifecycle.StatusPending),
	}
	if err := s.DB.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) GetByID(id string) (*models.Application, error) {
	var app models.Application
	if err := s.DB.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// ListForJob returns the applications to one of recruiterID's jobs with the
// candidate record attached. A job the recruiter doesn't own reads as not
// found.
func (s *ApplicationService) ListForJob(recruiterID, jobID string) ([]models.Application, error) {
	var job models.JobPosting
	err := s.DB.Where("id = ? AND recruiter_id = ?", jobID, recruiterID).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var apps []models.Application
	if err := s.DB.Where("job_id = ?", jobID).Find(&apps).Error; err != nil {
		return nil, err
	}
	for i := range apps {
		var candidate models.User
		if err := s.DB.First(&candidate, "id = ?", apps[i].CandidateID).Error; err == nil {
			apps[i].CandidateDetails = &candidate
		}
	}
	return apps, nil
}

// ListForCandidate returns a candidate's own applications with the job
// posting attached for display.
func (s *ApplicationService) ListForCandidate(candidateID string) ([]models.Application, error) {
	var apps []models.Application
	if err := s.DB.Where("candidate_id = ?", candidateID).Find(&apps).Error; err != nil {
		return nil, err
	}
	for i := range apps {
		var job models.JobPosting
		if err := s.DB.First(&job, "id = ?", apps[i].JobID).Error; err == nil {
			apps[i].JobDetails = &job
			apps[i].CompanyName = job.CompanyName
		}
	}
	return apps, nil
}

// ListForCompany returns every application to the given recruiter's jobs
// (the admin customer drill-down).
func (s *ApplicationService) ListForCompany(recruiterID string) ([]models.Application, error) {
	var apps []models.Application
	if err := s.DB.Where("recruiter_id = ?", recruiterID).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateStatus runs the requested transition through the lifecycle engine
// and persists it only when the engine accepts. Engine rejections leave the
// stored record untouched.
func (s *ApplicationService) UpdateStatus(actor lifecycle.Actor, applicationID string, target lifecycle.Status) (*models.Application, error) {
	app, err := s.GetByID(applicationID)
	if err != nil {
		return nil, err
	}

	rec := lifecycle.Record{
		ID:          app.ID,
		JobID:       app.JobID,
		CandidateID: app.CandidateID,
		RecruiterID: app.RecruiterID,
		Status:      lifecycle.ParseStatus(app.Status),
	}
	updated, err := lifecycle.Transition(rec, actor, target)
	if err != nil {
		return nil, err
	}

	app.Status = string(updated.Status)
	app.UpdatedAt = time.Now()
	if err := s.DB.Save(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// Withdraw deletes a pending application on behalf of its owning candidate.
func (s *ApplicationService) Withdraw(actor lifecycle.Actor, applicationID string) error {
	app, err := s.GetByID(applicationID)
	if err != nil {
		return err
	}

	rec := lifecycle.Record{
		ID:          app.ID,
		JobID:       app.JobID,
		CandidateID: app.CandidateID,
		RecruiterID: app.RecruiterID,
		Status:      lifecycle.ParseStatus(app.Status),
	}
	if err := lifecycle.Withdraw(rec, actor); err != nil {
		return err
	}
	return s.DB.Delete(app).Error
}
