package client

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/recruiteryu/platform/internal/auth"
	"github.com/recruiteryu/platform/internal/cache"
	"github.com/recruiteryu/platform/internal/lifecycle"
	"github.com/recruiteryu/platform/internal/models"
)

// CandidateDashboard is the candidate's view state: the open job board and
// the candidate's own applications. Same reconciliation rule as every other
// view: the remote collaborator confirms first, the cache changes second.
type CandidateDashboard struct {
	api     *Client
	session *auth.Session

	mu           sync.Mutex
	jobs         []models.JobPosting
	applications []models.Application
}

func NewCandidateDashboard(api *Client, session *auth.Session) *CandidateDashboard {
	return &CandidateDashboard{api: api, session: session}
}

// Load fetches the job board and the application list concurrently, joined
// before the view updates.
func (d *CandidateDashboard) Load(ctx context.Context) error {
	var (
		jobs []models.JobPosting
		apps []models.Application
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = d.api.ListOpenJobs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		apps, err = d.api.ListCandidateApplications(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	d.jobs = jobs
	d.applications = apps
	d.mu.Unlock()
	return nil
}

// Apply submits an application for a job on the board. ErrConflict comes
// straight through when one already exists; on success the job row flips to
// applied/pending and the application list picks up the new record.
func (d *CandidateDashboard) Apply(ctx context.Context, jobID string) error {
	applicationID, err := d.api.CreateApplication(ctx, jobID)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.jobs {
		if d.jobs[i].ID == jobID {
			job := d.jobs[i]
			job.HasApplied = true
			job.ApplicationStatus = string(lifecycle.StatusPending)
			d.jobs = cache.ApplyLocalUpdate(d.jobs, job)
			d.applications = append(d.applications, models.Application{
				ID:          applicationID,
				JobID:       job.ID,
				JobTitle:    job.Title,
				CandidateID: d.session.UserID,
				RecruiterID: job.RecruiterID,
				Status:      string(lifecycle.StatusPending),
			})
			break
		}
	}
	return nil
}

// Withdraw removes a pending application. The lifecycle engine rejects the
// withdrawal locally once a recruiter has decided, so no delete is ever
// issued for a decided application.
func (d *CandidateDashboard) Withdraw(ctx context.Context, applicationID string) error {
	d.mu.Lock()
	var current *models.Application
	for i := range d.applications {
		if d.applications[i].ID == applicationID {
			current = &d.applications[i]
			break
		}
	}
	d.mu.Unlock()
	if current == nil {
		return ErrStaleView
	}

	rec := lifecycle.Record{
		ID:          current.ID,
		JobID:       current.JobID,
		CandidateID: current.CandidateID,
		RecruiterID: current.RecruiterID,
		Status:      lifecycle.ParseStatus(current.Status),
	}
	actor := lifecycle.Actor{ID: d.session.UserID, Role: d.session.Role}
	if err := lifecycle.Withdraw(rec, actor); err != nil {
		return err
	}

	if err := d.api.DeleteApplication(ctx, applicationID); err != nil {
		return err
	}

	d.mu.Lock()
	jobID := current.JobID
	d.applications = cache.RemoveLocal(d.applications, applicationID)
	for i := range d.jobs {
		if d.jobs[i].ID == jobID {
			job := d.jobs[i]
			job.HasApplied = false
			job.ApplicationStatus = ""
			d.jobs = cache.ApplyLocalUpdate(d.jobs, job)
		}
	}
	d.mu.Unlock()
	return nil
}

// Jobs returns a copy of the cached job board.
func (d *CandidateDashboard) Jobs() []models.JobPosting {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.JobPosting, len(d.jobs))
	copy(out, d.jobs)
	return out
}

// Applications returns a copy of the cached application list.
func (d *CandidateDashboard) Applications() []models.Application {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Application, len(d.applications))
	copy(out, d.applications)
	return out
}
