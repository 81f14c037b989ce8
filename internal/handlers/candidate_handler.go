package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/recruiteryu/platform/internal/dtos"
	"github.com/recruiteryu/platform/internal/lifecycle"
	"github.com/recruiteryu/platform/internal/models"
	"github.com/recruiteryu/platform/internal/services"
)

type CandidateHandler struct {
	Users        *services.UserService
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

func NewCandidateHandler(users *services.UserService, jobs *services.JobService, apps *services.ApplicationService) *CandidateHandler {
	return &CandidateHandler{Users: users, Jobs: jobs, Applications: apps}
}

// ListJobs is GET /api/candidate/jobs: every open posting, annotated with
// whether this candidate already applied.
func (h *CandidateHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListOpen(CurrentSession(c).UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Apply is POST /api/candidate/apply/:job_id. A repeat application to the
// same job is a 409; exactly one application per (job, candidate) survives.
func (h *CandidateHandler) Apply(c *gin.Context) {
	candidate, err := h.Users.GetByID(CurrentSession(c).UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	app, err := h.Applications.Apply(candidate, c.Param("job_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	log.WithFields(log.Fields{"application_id": app.ID, "job_id": app.JobID}).Info("application submitted")
	c.JSON(http.StatusCreated, gin.H{
		"message":        "Application submitted successfully",
		"application_id": app.ID,
	})
}

// ListApplications is GET /api/candidate/applications.
func (h *CandidateHandler) ListApplications(c *gin.Context) {
	apps, err := h.Applications.ListForCandidate(CurrentSession(c).UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Withdraw is DELETE /api/candidate/applications/:id. Only a still-pending
// application can be withdrawn.
func (h *CandidateHandler) Withdraw(c *gin.Context) {
	session := CurrentSession(c)
	actor := lifecycle.Actor{ID: session.UserID, Role: session.Role}
	if err := h.Applications.Withdraw(actor, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn successfully"})
}

// GetProfile is GET /api/candidate/profile.
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	user, err := h.Users.GetByID(CurrentSession(c).UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateCandidateProfile is PUT /api/candidate/profile (the descriptive
// skills/experience document).
func (h *CandidateHandler) UpdateCandidateProfile(c *gin.Context) {
	var profile models.CandidateProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Users.UpdateCandidateProfile(CurrentSession(c).UserID, &profile); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// UpdateProfile is PUT /api/candidate/update-profile (name and email only).
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	var req dtos.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	user, err := h.Users.UpdateProfile(CurrentSession(c).UserID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}

// ChangePassword is PUT /api/candidate/change-password.
func (h *CandidateHandler) ChangePassword(c *gin.Context) {
	var req dtos.PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Users.ChangePassword(CurrentSession(c).UserID, &req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// UpdateNotificationSettings is PUT /api/candidate/notification-settings.
func (h *CandidateHandler) UpdateNotificationSettings(c *gin.Context) {
	var settings models.NotificationSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Users.UpdateNotificationSettings(CurrentSession(c).UserID, &settings); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated successfully"})
}

// DeleteAccount is DELETE /api/candidate/delete-account.
func (h *CandidateHandler) DeleteAccount(c *gin.Context) {
	if err := h.Users.DeleteAccount(CurrentSession(c).UserID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate account and all associated data deleted successfully"})
}
