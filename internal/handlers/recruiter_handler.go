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

type RecruiterHandler struct {
	Users        *services.UserService
	Jobs         *services.JobService
	Applications *services.ApplicationService
	Stats        *services.StatsService
}

func NewRecruiterHandler(users *services.UserService, jobs *services.JobService, apps *services.ApplicationService, stats *services.StatsService) *RecruiterHandler {
	return &RecruiterHandler{Users: users, Jobs: jobs, Applications: apps, Stats: stats}
}

// GetStats is GET /api/recruiter/stats.
func (h *RecruiterHandler) GetStats(c *gin.Context) {
	stats, err := h.Stats.RecruiterStats(CurrentSession(c).UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreateJob is POST /api/recruiter/jobs.
func (h *RecruiterHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	recruiter, err := h.Users.GetByID(CurrentSession(c).UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	job, err := h.Jobs.Create(recruiter, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	log.WithFields(log.Fields{"job_id": job.ID, "recruiter_id": recruiter.ID}).Info("job created")
	c.JSON(http.StatusCreated, gin.H{"message": "Job created successfully", "job_id": job.ID})
}

// ListJobs is GET /api/recruiter/jobs.
func (h *RecruiterHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListByRecruiter(CurrentSession(c).UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// DeleteJob is DELETE /api/recruiter/jobs/:id. Applications to the job go
// with it.
func (h *RecruiterHandler) DeleteJob(c *gin.Context) {
	if err := h.Jobs.Delete(CurrentSession(c).UserID, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// JobApplications is GET /api/recruiter/applications/:job_id.
func (h *RecruiterHandler) JobApplications(c *gin.Context) {
	apps, err := h.Applications.ListForJob(CurrentSession(c).UserID, c.Param("job_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateApplicationStatus is PUT /api/recruiter/applications/:id. The
// lifecycle engine, not this handler, decides whether the move is legal.
func (h *RecruiterHandler) UpdateApplicationStatus(c *gin.Context) {
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	target := lifecycle.ParseStatus(req.Status)
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	session := CurrentSession(c)
	actor := lifecycle.Actor{ID: session.UserID, Role: session.Role}
	app, err := h.Applications.UpdateStatus(actor, c.Param("id"), target)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	log.WithFields(log.Fields{"application_id": app.ID, "status": app.Status}).Info("application status updated")
	c.JSON(http.StatusOK, gin.H{"message": "Application status updated successfully", "application": app})
}

// UpdateProfile is PUT /api/recruiter/update-profile.
func (h *RecruiterHandler) UpdateProfile(c *gin.Context) {
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

// ChangePassword is PUT /api/recruiter/change-password.
func (h *RecruiterHandler) ChangePassword(c *gin.Context) {
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

// UpdateNotificationSettings is PUT /api/recruiter/notification-settings.
func (h *RecruiterHandler) UpdateNotificationSettings(c *gin.Context) {
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

// DeleteAccount is DELETE /api/recruiter/delete-account.
func (h *RecruiterHandler) DeleteAccount(c *gin.Context) {
	if err := h.Users.DeleteAccount(CurrentSession(c).UserID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recruiter account and all associated data deleted successfully"})
}
