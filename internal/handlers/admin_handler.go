package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/recruiteryu/platform/internal/dtos"
	"github.com/recruiteryu/platform/internal/models"
	"github.com/recruiteryu/platform/internal/services"
)

type AdminHandler struct {
	Users        *services.UserService
	Jobs         *services.JobService
	Applications *services.ApplicationService
	Stats        *services.StatsService
}

func NewAdminHandler(users *services.UserService, jobs *services.JobService, apps *services.ApplicationService, stats *services.StatsService) *AdminHandler {
	return &AdminHandler{Users: users, Jobs: jobs, Applications: apps, Stats: stats}
}

// GetStats is GET /api/admin/stats.
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.Stats.AdminStats()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListCustomers is GET /api/admin/customers (every recruiter account).
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	customers, err := h.Users.ListRecruiters()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// DeleteCustomer is DELETE /api/admin/customers/:id. The cascade takes the
// recruiter's jobs and every application to them.
func (h *AdminHandler) DeleteCustomer(c *gin.Context) {
	if err := h.Users.DeleteAccount(c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	log.WithField("user_id", c.Param("id")).Info("customer deleted by admin")
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// ListCandidates is GET /api/admin/candidates.
func (h *AdminHandler) ListCandidates(c *gin.Context) {
	candidates, err := h.Users.ListCandidates()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// DeleteCandidate is DELETE /api/admin/candidates/:id.
func (h *AdminHandler) DeleteCandidate(c *gin.Context) {
	if err := h.Users.DeleteAccount(c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate deleted successfully"})
}

// CompanyJobs is GET /api/admin/company/:id/jobs.
func (h *AdminHandler) CompanyJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListByRecruiter(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CompanyApplications is GET /api/admin/company/:id/applications.
func (h *AdminHandler) CompanyApplications(c *gin.Context) {
	apps, err := h.Applications.ListForCompany(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// CandidateApplications is GET /api/admin/candidate/:id/applications.
func (h *AdminHandler) CandidateApplications(c *gin.Context) {
	apps, err := h.Applications.ListForCandidate(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateProfile is PUT /api/admin/update-profile.
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
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

// ChangePassword is PUT /api/admin/change-password.
func (h *AdminHandler) ChangePassword(c *gin.Context) {
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

// UpdateNotificationSettings is PUT /api/admin/notification-settings.
func (h *AdminHandler) UpdateNotificationSettings(c *gin.Context) {
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
