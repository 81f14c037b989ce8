package client

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/recruiteryu/platform/internal/auth"
	"github.com/recruiteryu/platform/internal/cache"
	"github.com/recruiteryu/platform/internal/dtos"
	"github.com/recruiteryu/platform/internal/lifecycle"
	"github.com/recruiteryu/platform/internal/models"
)

// ErrStaleView means the caller asked to mutate a record the view no longer
// holds; reload before retrying.
var ErrStaleView = errors.New("record not present in this view")

// RecruiterDashboard is the recruiter's view state: the job list, the stats
// card, and the applications of the currently opened job. Caches only
// change after the remote collaborator confirms the corresponding write, so
// a failed call never leaves the view diverged from the server.
type RecruiterDashboard struct {
	api     *Client
	session *auth.Session

	mu           sync.Mutex
	jobs         []models.JobPosting
	stats        dtos.RecruiterStats
	openJobID    string
	applications []models.Application
}

func NewRecruiterDashboard(api *Client, session *auth.Session) *RecruiterDashboard {
	return &RecruiterDashboard{api: api, session: session}
}

// Load fetches the job list and the stats concurrently and joins them
// before touching the view. Either fetch may finish first. A cancelled
// context (the user navigated away) discards both results; a failed fetch
// leaves the previous cache contents in place for the retry affordance.
func (d *RecruiterDashboard) Load(ctx context.Context) error {
	var (
		jobs  []models.JobPosting
		stats *dtos.RecruiterStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = d.api.ListRecruiterJobs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = d.api.RecruiterStats(gctx)
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
	d.stats = *stats
	d.mu.Unlock()
	return nil
}

// OpenJob loads the applications for one of the recruiter's jobs into the
// progress view.
func (d *RecruiterDashboard) OpenJob(ctx context.Context, jobID string) error {
	apps, err := d.api.ListJobApplications(ctx, jobID)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	d.openJobID = jobID
	d.applications = apps
	d.mu.Unlock()
	return nil
}

// UpdateApplicationStatus moves an application through the lifecycle. The
// engine validates the transition before the write goes out, so a move the
// table forbids never reaches the network; after a confirmed write the
// cached copy is replaced in place.
func (d *RecruiterDashboard) UpdateApplicationStatus(ctx context.Context, applicationID string, target lifecycle.Status) error {
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
	if _, err := lifecycle.Transition(rec, actor, target); err != nil {
		return err
	}

	updated, err := d.api.UpdateApplicationStatus(ctx, applicationID, target)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.applications = cache.ApplyLocalUpdate(d.applications, *updated)
	d.mu.Unlock()
	return nil
}

// DeleteJob removes a posting and, after confirmation, drops it and its
// applications from the view.
func (d *RecruiterDashboard) DeleteJob(ctx context.Context, jobID string) error {
	if err := d.api.DeleteJob(ctx, jobID); err != nil {
		return err
	}

	d.mu.Lock()
	d.jobs = cache.RemoveLocal(d.jobs, jobID)
	if d.openJobID == jobID {
		d.openJobID = ""
		d.applications = nil
	}
	d.mu.Unlock()
	return nil
}

// Jobs returns a copy of the cached job list.
func (d *RecruiterDashboard) Jobs() []models.JobPosting {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.JobPosting, len(d.jobs))
	copy(out, d.jobs)
	return out
}

// Stats returns the cached stats card.
func (d *RecruiterDashboard) Stats() dtos.RecruiterStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

// Applications returns a copy of the opened job's applications.
func (d *RecruiterDashboard) Applications() []models.Application {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Application, len(d.applications))
	copy(out, d.applications)
	return out
}
