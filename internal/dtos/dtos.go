package dtos

// Auth

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Company  string `json:"company"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Recruiter

type JobCreationRequest struct {
	Title           string   `json:"title" binding:"required"`
	SkillsRequired  []string `json:"skills_required" binding:"required"`
	ExperienceYears int      `json:"experience_years" binding:"min=0"`
	Qualification   string   `json:"qualification" binding:"required"`
	Description     string   `json:"description" binding:"required"`

	// Optional fields
	Location    string `json:"location"`
	SalaryRange string `json:"salary_range"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// Settings (shared by all roles)

type ProfileUpdateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// Stats payloads. Field names match what the dashboards chart.

type AdminStats struct {
	TotalViews        int64 `json:"total_views"`
	TotalProfit       int64 `json:"total_profit"`
	TotalProduct      int64 `json:"total_product"`
	TotalUsers        int64 `json:"total_users"`
	TotalRecruiters   int64 `json:"total_recruiters"`
	TotalCandidates   int64 `json:"total_candidates"`
	TotalApplications int64 `json:"total_applications"`
}

type RecruiterStats struct {
	TotalApplicants       int64 `json:"total_applicants"`
	ShortlistedCandidates int64 `json:"shortlisted_candidates"`
	HiredCandidates       int64 `json:"hired_candidates"`
	RejectedCandidates    int64 `json:"rejected_candidates"`
	CostPerHire           int64 `json:"cost_per_hire"`
	TimeToHire            int64 `json:"time_to_hire"`
	TimeToFill            int64 `json:"time_to_fill"`
	TotalJobs             int64 `json:"total_jobs"`
}
