package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recruiteryu/platform/internal/auth"
	"github.com/recruiteryu/platform/internal/database"
	"github.com/recruiteryu/platform/internal/lifecycle"
	"github.com/recruiteryu/platform/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedJobAndCandidate(t *testing.T, db *gorm.DB) (*models.JobPosting, *models.User) {
	t.Helper()
	recruiter := &models.User{Name: "Rex", Email: "rex@example.com", Role: string(auth.RoleRecruiter), Company: "Acme"}
	require.NoError(t, db.Create(recruiter).Error)
	candidate := &models.User{Name: "Cara", Email: "cara@example.com", Role: string(auth.RoleCandidate)}
	require.NoError(t, db.Create(candidate).Error)
	job := &models.JobPosting{Title: "Backend Engineer", RecruiterID: recruiter.ID, CompanyName: "Acme"}
	require.NoError(t, db.Create(job).Error)
	return job, candidate
}

func TestApplyRejectsDuplicate(t *testing.T) {
	db := setupDB(t)
	job, candidate := seedJobAndCandidate(t, db)
	apps := NewApplicationService(db)

	_, err := apps.Apply(candidate, job.ID)
	require.NoError(t, err)

	_, err = apps.Apply(candidate, job.ID)
	assert.ErrorIs(t, err, ErrDuplicateApplication)
}

// Two applies can race past the existence check; the unique index then
// rejects the second insert, and that rejection has to surface as
// ErrDuplicatedKey for Apply to map it. This pins the error translation
// the mapping depends on.
func TestApplyDuplicateInsertTranslates(t *testing.T) {
	db := setupDB(t)
	job, candidate := seedJobAndCandidate(t, db)

	app := models.Application{
		JobID:       job.ID,
		CandidateID: candidate.ID,
		RecruiterID: job.RecruiterID,
		Status:      string(lifecycle.StatusPending),
	}
	require.NoError(t, db.Create(&app).Error)

	rival := models.Application{
		JobID:       job.ID,
		CandidateID: candidate.ID,
		RecruiterID: job.RecruiterID,
		Status:      string(lifecycle.StatusPending),
	}
	err := db.Create(&rival).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
