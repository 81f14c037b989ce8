package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/recruiteryu/platform/internal/dtos"
	"github.com/recruiteryu/platform/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Create posts a job owned by the given recruiter. Company and recruiter
// name are denormalized onto the posting for display.
func (s *JobService) Create(recruiter *models.User, req *dtos.JobCreationRequest) (*models.JobPosting, error) {
	job := &models.JobPosting{
		RecruiterID:     recruiter.ID,
		CompanyName:     recruiter.Company,
		RecruiterName:   recruiter.Name,
		Title:           req.Title,
		SkillsRequired:  req.SkillsRequired,
		ExperienceYears: req.ExperienceYears,
		Qualification:   req.Qualification,
		Description:     req.Description,
		Location:        req.Location,
		SalaryRange:     req.SalaryRange,
		Status:          "open",
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) GetByID(jobID string) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := s.DB.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// ListByRecruiter returns a recruiter's postings with the derived
// application count filled in.
func (s *JobService) ListByRecruiter(recruiterID string) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := s.DB.Where("recruiter_id = ?", recruiterID).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return s.attachCounts(jobs)
}

// ListOpen returns every open posting annotated with whether the given
// candidate already applied, and with what outcome.
func (s *JobService) ListOpen(candidateID string) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := s.DB.Where("status = ?", "open").Find(&jobs).Error; err != nil {
		return nil, err
	}

	var apps []models.Application
	if err := s.DB.Where("candidate_id = ?", candidateID).Find(&apps).Error; err != nil {
		return nil, err
	}
	byJob := make(map[string]string, len(apps))
	for _, app := range apps {
		byJob[app.JobID] = app.Status
	}

	for i := range jobs {
		if status, ok := byJob[jobs[i].ID]; ok {
			jobs[i].HasApplied = true
			jobs[i].ApplicationStatus = status
		}
	}
	return jobs, nil
}

// Delete removes a posting owned by recruiterID along with every
// application to it. A posting owned by someone else reads as not found, so
// the route leaks nothing about other recruiters' jobs.
func (s *JobService) Delete(recruiterID, jobID string) error {
	var job models.JobPosting
	err := s.DB.Where("id = ? AND recruiter_id = ?", jobID, recruiterID).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
}

func (s *JobService) attachCounts(jobs []models.JobPosting) ([]models.JobPosting, error) {
	for i := range jobs {
		var count int64
		if err := s.DB.Model(&models.Application{}).Where("job_id = ?", jobs[i].ID).Count(&count).Error; err != nil {
			return nil, err
		}
		jobs[i].TotalApplications = count
	}
	return jobs, nil
}
