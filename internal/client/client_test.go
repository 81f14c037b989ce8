package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recruiteryu/platform/internal/auth"
	"github.com/recruiteryu/platform/internal/database"
	"github.com/recruiteryu/platform/internal/dtos"
	"github.com/recruiteryu/platform/internal/handlers"
	"github.com/recruiteryu/platform/internal/lifecycle"
)

// countingHandler wraps the API so tests can assert which writes actually
// went over the wire.
type countingHandler struct {
	inner http.Handler

	mu       sync.Mutex
	byMethod map[string]int
}

func (h *countingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.byMethod[r.Method]++
	h.mu.Unlock()
	h.inner.ServeHTTP(w, r)
}

func (h *countingHandler) count(method string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.byMethod[method]
}

func startPlatform(t *testing.T) (*httptest.Server, *countingHandler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	engine := gin.New()
	handlers.Register(engine, db, auth.NewTokens("test-secret", time.Hour))

	counter := &countingHandler{inner: engine, byMethod: map[string]int{}}
	srv := httptest.NewServer(counter)
	t.Cleanup(srv.Close)
	return srv, counter
}

func loginAs(t *testing.T, baseURL, name, email, role, company string) (*Client, *auth.Session) {
	t.Helper()
	ctx := context.Background()
	api := New(baseURL)
	require.NoError(t, api.Signup(ctx, dtos.SignupRequest{
		Name: name, Email: email, Password: "secret123", Role: role, Company: company,
	}))
	session, err := api.Login(ctx, email, "secret123")
	require.NoError(t, err)
	return api, session
}

func TestSessionStoreDrivesTheGate(t *testing.T) {
	srv, _ := startPlatform(t)
	ctx := context.Background()

	store := NewSessionStore()

	// Until the restore resolves, the gate waits instead of redirecting.
	assert.Equal(t, auth.DecisionWait, store.Authorize(auth.RoleRecruiter).Kind)

	// No stored token: anonymous, gated routes bounce to login.
	api := New(srv.URL)
	require.NoError(t, store.Restore(ctx, api))
	d := store.Authorize(auth.RoleRecruiter)
	assert.Equal(t, auth.DecisionRedirectToLogin, d.Kind)

	// Login installs the identity; own dashboard allowed, others redirect home.
	api, session := loginAs(t, srv.URL, "Rex", "rex@example.com", "recruiter", "Acme")
	store.SetSession(session)
	assert.Equal(t, auth.DecisionAllow, store.Authorize(auth.RoleRecruiter).Kind)
	d = store.Authorize(auth.RoleAdmin)
	assert.Equal(t, auth.DecisionRedirectToDashboard, d.Kind)
	assert.Equal(t, "/recruiter/dashboard", d.Target)

	// The token restores the same session on a fresh visit.
	fresh := NewSessionStore()
	require.NoError(t, fresh.Restore(ctx, api))
	restored, loading := fresh.Snapshot()
	assert.False(t, loading)
	require.NotNil(t, restored)
	assert.Equal(t, session.UserID, restored.UserID)

	// Logout tears it down.
	fresh.Clear()
	assert.Equal(t, auth.DecisionRedirectToLogin, fresh.Authorize(auth.RoleRecruiter).Kind)
}

func seedJob(t *testing.T, api *Client) string {
	t.Helper()
	// The typed client has no job-creation call of its own in this test
	// suite's scope, so post through the generic request path.
	var resp struct {
		JobID string `json:"job_id"`
	}
	err := api.do(context.Background(), http.MethodPost, "/api/recruiter/jobs", dtos.JobCreationRequest{
		Title:           "Backend Engineer",
		SkillsRequired:  []string{"Go"},
		ExperienceYears: 2,
		Qualification:   "BSc",
		Description:     "Ship features",
	}, &resp)
	require.NoError(t, err)
	return resp.JobID
}

func TestRecruiterDashboardFlow(t *testing.T) {
	srv, counter := startPlatform(t)
	ctx := context.Background()

	recruiterAPI, recruiterSession := loginAs(t, srv.URL, "Rex", "rex@example.com", "recruiter", "Acme")
	candidateAPI, _ := loginAs(t, srv.URL, "Cara", "cara@example.com", "candidate", "")
	jobID := seedJob(t, recruiterAPI)

	_, err := candidateAPI.CreateApplication(ctx, jobID)
	require.NoError(t, err)

	dash := NewRecruiterDashboard(recruiterAPI, recruiterSession)
	require.NoError(t, dash.Load(ctx))
	require.Len(t, dash.Jobs(), 1)
	assert.EqualValues(t, 1, dash.Jobs()[0].TotalApplications)
	assert.EqualValues(t, 1, dash.Stats().TotalApplicants)

	require.NoError(t, dash.OpenJob(ctx, jobID))
	apps := dash.Applications()
	require.Len(t, apps, 1)
	appID := apps[0].ID

	// Approve: confirmed write, cache replaced in place.
	require.NoError(t, dash.UpdateApplicationStatus(ctx, appID, lifecycle.StatusApproved))
	assert.Equal(t, "approved", dash.Applications()[0].Status)

	// approved -> rejected is stopped by the engine before any request goes
	// out; the PUT count proves it never reached the collaborator.
	puts := counter.count(http.MethodPut)
	err = dash.UpdateApplicationStatus(ctx, appID, lifecycle.StatusRejected)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
	assert.Equal(t, puts, counter.count(http.MethodPut))
	assert.Equal(t, "approved", dash.Applications()[0].Status)

	require.NoError(t, dash.UpdateApplicationStatus(ctx, appID, lifecycle.StatusHired))
	assert.Equal(t, "hired", dash.Applications()[0].Status)

	// Deleting the job drops it and its applications from the view.
	require.NoError(t, dash.DeleteJob(ctx, jobID))
	assert.Empty(t, dash.Jobs())
	assert.Empty(t, dash.Applications())
}

func TestCandidateDashboardFlow(t *testing.T) {
	srv, counter := startPlatform(t)
	ctx := context.Background()

	recruiterAPI, recruiterSession := loginAs(t, srv.URL, "Rex", "rex@example.com", "recruiter", "Acme")
	candidateAPI, candidateSession := loginAs(t, srv.URL, "Cara", "cara@example.com", "candidate", "")
	jobID := seedJob(t, recruiterAPI)

	dash := NewCandidateDashboard(candidateAPI, candidateSession)
	require.NoError(t, dash.Load(ctx))
	require.Len(t, dash.Jobs(), 1)
	assert.False(t, dash.Jobs()[0].HasApplied)
	assert.Empty(t, dash.Applications())

	// Apply: board row flips, application list gains the record.
	require.NoError(t, dash.Apply(ctx, jobID))
	assert.True(t, dash.Jobs()[0].HasApplied)
	assert.Equal(t, "pending", dash.Jobs()[0].ApplicationStatus)
	require.Len(t, dash.Applications(), 1)

	// A second apply conflicts and the cache keeps a single record.
	err := dash.Apply(ctx, jobID)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Len(t, dash.Applications(), 1)

	appID := dash.Applications()[0].ID

	// The recruiter approves behind this view's back; the stale cache lets
	// the withdraw go out, and the collaborator refuses it. Nothing local
	// changes on a refused write.
	rdash := NewRecruiterDashboard(recruiterAPI, recruiterSession)
	require.NoError(t, rdash.OpenJob(ctx, jobID))
	require.NoError(t, rdash.UpdateApplicationStatus(ctx, appID, lifecycle.StatusApproved))

	err = dash.Withdraw(ctx, appID)
	var remoteErr *RemoteError
	assert.ErrorAs(t, err, &remoteErr)
	assert.Len(t, dash.Applications(), 1)

	// After a reload the engine itself refuses, before any request.
	require.NoError(t, dash.Load(ctx))
	deletes := counter.count(http.MethodDelete)
	err = dash.Withdraw(ctx, appID)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
	assert.Equal(t, deletes, counter.count(http.MethodDelete))
	assert.Len(t, dash.Applications(), 1)
}

func TestWithdrawPendingApplication(t *testing.T) {
	srv, _ := startPlatform(t)
	ctx := context.Background()

	recruiterAPI, _ := loginAs(t, srv.URL, "Rex", "rex@example.com", "recruiter", "Acme")
	candidateAPI, candidateSession := loginAs(t, srv.URL, "Cara", "cara@example.com", "candidate", "")
	jobID := seedJob(t, recruiterAPI)

	dash := NewCandidateDashboard(candidateAPI, candidateSession)
	require.NoError(t, dash.Load(ctx))
	require.NoError(t, dash.Apply(ctx, jobID))
	appID := dash.Applications()[0].ID

	require.NoError(t, dash.Withdraw(ctx, appID))
	assert.Empty(t, dash.Applications())
	assert.False(t, dash.Jobs()[0].HasApplied)
}

func TestCancelledLoadDiscardsResults(t *testing.T) {
	srv, _ := startPlatform(t)

	recruiterAPI, recruiterSession := loginAs(t, srv.URL, "Rex", "rex@example.com", "recruiter", "Acme")
	seedJob(t, recruiterAPI)

	dash := NewRecruiterDashboard(recruiterAPI, recruiterSession)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // navigated away before the fetch resolved

	err := dash.Load(ctx)
	assert.Error(t, err)
	assert.Empty(t, dash.Jobs())
}

func TestRemoteFailureLeavesPriorCache(t *testing.T) {
	srv, _ := startPlatform(t)
	ctx := context.Background()

	recruiterAPI, recruiterSession := loginAs(t, srv.URL, "Rex", "rex@example.com", "recruiter", "Acme")
	seedJob(t, recruiterAPI)

	dash := NewRecruiterDashboard(recruiterAPI, recruiterSession)
	require.NoError(t, dash.Load(ctx))
	require.Len(t, dash.Jobs(), 1)

	// The collaborator disappears; a reload fails but the view keeps what
	// it had so the user gets a retry, not an empty page.
	srv.Close()
	err := dash.Load(ctx)
	assert.Error(t, err)
	assert.Len(t, dash.Jobs(), 1)
}
