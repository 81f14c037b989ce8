package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CandidateProfile is the descriptive profile a candidate maintains. Stored
// as a JSON column; the shape mirrors what the profile editor sends.
type CandidateProfile struct {
	Skills         []string         `json:"skills"`
	Experience     []map[string]any `json:"experience"`
	Education      []map[string]any `json:"education"`
	Certifications []string         `json:"certifications"`
	Projects       []map[string]any `json:"projects"`
	Bio            string           `json:"bio"`
}

// NotificationSettings carries the per-user notification toggles. Field
// names stay camelCase on the wire because the settings forms send them
// that way.
type NotificationSettings struct {
	EmailApplicationAlerts  bool `json:"emailApplicationAlerts"`
	EmailJobExpiryReminders bool `json:"emailJobExpiryReminders"`
	EmailWeeklyReports      bool `json:"emailWeeklyReports"`
	EmailNewsletter         bool `json:"emailNewsletter"`
	PushNotifications       bool `json:"pushNotifications"`
	SystemAlerts            bool `json:"systemAlerts"`
	UserRegistrations       bool `json:"userRegistrations"`
	SecurityNotifications   bool `json:"securityNotifications"`
	MaintenanceAlerts       bool `json:"maintenanceAlerts"`
}

type User struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:'candidate'" json:"role"`
	Company  string `json:"company,omitempty"`

	Profile              CandidateProfile     `gorm:"serializer:json" json:"profile"`
	NotificationSettings NotificationSettings `gorm:"serializer:json" json:"notification_settings"`

	// Derived for admin candidate listings, never persisted.
	ProfileCompletion int `gorm:"-" json:"profile_completion,omitempty"`
}

type JobPosting struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// RecruiterID owns the posting; only that recruiter may mutate it.
	RecruiterID   string `gorm:"type:uuid;index;not null" json:"recruiter_id"`
	CompanyName   string `json:"company_name"`
	RecruiterName string `json:"recruiter_name"`

	Title           string   `gorm:"not null" json:"title"`
	SkillsRequired  []string `gorm:"serializer:json" json:"skills_required"`
	ExperienceYears int      `json:"experience_years"`
	Qualification   string   `json:"qualification"`
	Description     string   `gorm:"type:text" json:"description"`
	Location        string   `json:"location,omitempty"`
	SalaryRange     string   `json:"salary_range,omitempty"`
	Status          string   `gorm:"default:'open'" json:"status"`

	// Derived on read.
	TotalApplications int64  `gorm:"-" json:"total_applications"`
	HasApplied        bool   `gorm:"-" json:"has_applied,omitempty"`
	ApplicationStatus string `gorm:"-" json:"application_status,omitempty"`
}

// Application is the one entity whose lifecycle the platform governs
// directly. Hard-deleted on withdrawal so the (job, candidate) unique index
// keeps exactly one live application per pair.
type Application struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	AppliedAt time.Time `json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID    string `gorm:"type:uuid;not null;uniqueIndex:idx_job_candidate" json:"job_id"`
	JobTitle string `json:"job_title"`

	CandidateID    string `gorm:"type:uuid;not null;index;uniqueIndex:idx_job_candidate" json:"candidate_id"`
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`

	RecruiterID string `gorm:"type:uuid;index" json:"recruiter_id"`
	Status      string `gorm:"not null;default:'pending'" json:"status"`

	// Attached for display on the relevant dashboards.
	CandidateDetails *User       `gorm:"-" json:"candidate_details,omitempty"`
	JobDetails       *JobPosting `gorm:"-" json:"job_details,omitempty"`
	CompanyName      string      `gorm:"-" json:"company_name,omitempty"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (j *JobPosting) BeforeCreate(*gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

func (a *Application) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now()
	}
	return nil
}

// Key implements the record cache contract.
func (j JobPosting) Key() string { return j.ID }

// Key implements the record cache contract.
func (a Application) Key() string { return a.ID }
