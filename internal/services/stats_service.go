package services

import (
	"gorm.io/gorm"

	"github.com/recruiteryu/platform/internal/auth"
	"github.com/recruiteryu/platform/internal/dtos"
	"github.com/recruiteryu/platform/internal/lifecycle"
	"github.com/recruiteryu/platform/internal/models"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// AdminStats aggregates the platform-wide numbers the admin dashboard
// charts. Views and profit keep the dashboard's historical proxies:
// applications stand in for views, and profit is 100 per recruiter.
func (s *StatsService) AdminStats() (*dtos.AdminStats, error) {
	stats := &dtos.AdminStats{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalUsers, s.DB.Model(&models.User{})},
		{&stats.TotalRecruiters, s.DB.Model(&models.User{}).Where("role = ?", auth.RoleRecruiter)},
		{&stats.TotalCandidates, s.DB.Model(&models.User{}).Where("role = ?", auth.RoleCandidate)},
		{&stats.TotalProduct, s.DB.Model(&models.JobPosting{})},
		{&stats.TotalApplications, s.DB.Model(&models.Application{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	stats.TotalViews = stats.TotalApplications
	stats.TotalProfit = stats.TotalRecruiters * 100
	return stats, nil
}

// RecruiterStats breaks a recruiter's applicant pool down by status.
// Cost/time figures are fixed placeholders the dashboard has always shown.
func (s *StatsService) RecruiterStats(recruiterID string) (*dtos.RecruiterStats, error) {
	stats := &dtos.RecruiterStats{
		CostPerHire: 17000,
		TimeToHire:  15,
		TimeToFill:  26,
	}

	if err := s.DB.Model(&models.JobPosting{}).
		Where("recruiter_id = ?", recruiterID).
		Count(&stats.TotalJobs).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Application{}).
		Where("recruiter_id = ?", recruiterID).
		Count(&stats.TotalApplicants).Error; err != nil {
		return nil, err
	}

	byStatus := []struct {
		dest   *int64
		status lifecycle.Status
	}{
		{&stats.ShortlistedCandidates, lifecycle.StatusApproved},
		{&stats.HiredCandidates, lifecycle.StatusHired},
		{&stats.RejectedCandidates, lifecycle.StatusRejected},
	}
	for _, c := range byStatus {
		if err := s.DB.Model(&models.Application{}).
			Where("recruiter_id = ? AND status = ?", recruiterID, c.status).
			Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}
