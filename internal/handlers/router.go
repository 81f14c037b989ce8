package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/recruiteryu/platform/internal/auth"
	"github.com/recruiteryu/platform/internal/services"
)

// HealthCheck is GET /api/health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Register wires every route group onto the router. Split out from main so
// tests can mount the full API on their own engine and database.
func Register(r *gin.Engine, db *gorm.DB, tokens *auth.Tokens) {
	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	statsService := services.NewStatsService(db)

	authHandler := NewAuthHandler(userService, tokens)
	adminHandler := NewAdminHandler(userService, jobService, applicationService, statsService)
	recruiterHandler := NewRecruiterHandler(userService, jobService, applicationService, statsService)
	candidateHandler := NewCandidateHandler(userService, jobService, applicationService)

	mw := NewAuthMiddleware(tokens, userService)

	api := r.Group("/api")
	api.GET("/health", HealthCheck)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", mw.RequireAuth(), authHandler.Me)
	}

	admin := api.Group("/admin", mw.RequireAuth(), RequireRole(auth.RoleAdmin))
	{
		admin.GET("/stats", adminHandler.GetStats)
		admin.GET("/customers", adminHandler.ListCustomers)
		admin.DELETE("/customers/:id", adminHandler.DeleteCustomer)
		admin.GET("/candidates", adminHandler.ListCandidates)
		admin.DELETE("/candidates/:id", adminHandler.DeleteCandidate)
		admin.GET("/company/:id/jobs", adminHandler.CompanyJobs)
		admin.GET("/company/:id/applications", adminHandler.CompanyApplications)
		admin.GET("/candidate/:id/applications", adminHandler.CandidateApplications)
		admin.PUT("/update-profile", adminHandler.UpdateProfile)
		admin.PUT("/change-password", adminHandler.ChangePassword)
		admin.PUT("/notification-settings", adminHandler.UpdateNotificationSettings)
	}

	recruiter := api.Group("/recruiter", mw.RequireAuth(), RequireRole(auth.RoleRecruiter))
	{
		recruiter.GET("/stats", recruiterHandler.GetStats)
		recruiter.POST("/jobs", recruiterHandler.CreateJob)
		recruiter.GET("/jobs", recruiterHandler.ListJobs)
		recruiter.DELETE("/jobs/:id", recruiterHandler.DeleteJob)
		recruiter.GET("/applications/:job_id", recruiterHandler.JobApplications)
		recruiter.PUT("/applications/:id", recruiterHandler.UpdateApplicationStatus)
		recruiter.PUT("/update-profile", recruiterHandler.UpdateProfile)
		recruiter.PUT("/change-password", recruiterHandler.ChangePassword)
		recruiter.PUT("/notification-settings", recruiterHandler.UpdateNotificationSettings)
		recruiter.DELETE("/delete-account", recruiterHandler.DeleteAccount)
	}

	candidate := api.Group("/candidate", mw.RequireAuth(), RequireRole(auth.RoleCandidate))
	{
		candidate.GET("/jobs", candidateHandler.ListJobs)
		candidate.POST("/apply/:job_id", candidateHandler.Apply)
		candidate.GET("/applications", candidateHandler.ListApplications)
		candidate.DELETE("/applications/:id", candidateHandler.Withdraw)
		candidate.GET("/profile", candidateHandler.GetProfile)
		candidate.PUT("/profile", candidateHandler.UpdateCandidateProfile)
		candidate.PUT("/update-profile", candidateHandler.UpdateProfile)
		candidate.PUT("/change-password", candidateHandler.ChangePassword)
		candidate.PUT("/notification-settings", candidateHandler.UpdateNotificationSettings)
		candidate.DELETE("/delete-account", candidateHandler.DeleteAccount)
	}
}
