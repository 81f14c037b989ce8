// Package client is the dashboard side of the platform: a typed API client,
// the session store, and the per-view caches the dashboards render from.
// All remote calls take a context; callers that navigate away cancel it and
// the in-flight result is discarded without touching any cache.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/recruiteryu/platform/internal/auth"
	"github.com/recruiteryu/platform/internal/dtos"
	"github.com/recruiteryu/platform/internal/lifecycle"
	"github.com/recruiteryu/platform/internal/models"
)

var (
	// ErrConflict is the remote refusing a duplicate application.
	ErrConflict = errors.New("already applied for this job")
	// ErrUnauthorized means the stored token no longer identifies anyone.
	ErrUnauthorized = errors.New("session expired")
)

// RemoteError is any other failure from the collaborator. The reason string
// is opaque; a missing response is reported the same way as an explicit one.
type RemoteError struct {
	Status int
	Reason string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote call failed (%d): %s", e.Status, e.Reason)
}

// Client talks to the platform API. It is safe for concurrent use; the
// token is guarded because login can race a background session restore.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: http.DefaultClient}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		// No response is treated identically to an explicit failure.
		return &RemoteError{Status: 0, Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		switch resp.StatusCode {
		case http.StatusConflict:
			return ErrConflict
		case http.StatusUnauthorized:
			return ErrUnauthorized
		}
		return &RemoteError{Status: resp.StatusCode, Reason: payload.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Signup registers a new account. Logging in is a separate step, as on the
// auth page.
func (c *Client) Signup(ctx context.Context, req dtos.SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/signup", req, nil)
}

// Login authenticates, stores the bearer token and returns the session.
func (c *Client) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	var resp struct {
		AccessToken string       `json:"access_token"`
		User        auth.Session `json:"user"`
	}
	req := dtos.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.AccessToken)
	return &resp.User, nil
}

// FetchSession restores the session for the stored token. A token the
// remote no longer recognizes yields (nil, nil): no session, not an error.
func (c *Client) FetchSession(ctx context.Context) (*auth.Session, error) {
	if c.bearer() == "" {
		return nil, nil
	}
	var session auth.Session
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &session)
	if errors.Is(err, ErrUnauthorized) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Recruiter endpoints.

func (c *Client) ListRecruiterJobs(ctx context.Context) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := c.do(ctx, http.MethodGet, "/api/recruiter/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) RecruiterStats(ctx context.Context) (*dtos.RecruiterStats, error) {
	var stats dtos.RecruiterStats
	if err := c.do(ctx, http.MethodGet, "/api/recruiter/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) ListJobApplications(ctx context.Context, jobID string) ([]models.Application, error) {
	var apps []models.Application
	if err := c.do(ctx, http.MethodGet, "/api/recruiter/applications/"+jobID, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateApplicationStatus issues the remote status write and returns the
// confirmed record.
func (c *Client) UpdateApplicationStatus(ctx context.Context, applicationID string, target lifecycle.Status) (*models.Application, error) {
	var resp struct {
		Application models.Application `json:"application"`
	}
	req := dtos.StatusUpdateRequest{Status: string(target)}
	if err := c.do(ctx, http.MethodPut, "/api/recruiter/applications/"+applicationID, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Application, nil
}

func (c *Client) DeleteJob(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodDelete, "/api/recruiter/jobs/"+jobID, nil, nil)
}

// Candidate endpoints.

func (c *Client) ListOpenJobs(ctx context.Context) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := c.do(ctx, http.MethodGet, "/api/candidate/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// CreateApplication applies to a job. ErrConflict means an application for
// this (job, candidate) pair already exists.
func (c *Client) CreateApplication(ctx context.Context, jobID string) (string, error) {
	var resp struct {
		ApplicationID string `json:"application_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/candidate/apply/"+jobID, nil, &resp); err != nil {
		return "", err
	}
	return resp.ApplicationID, nil
}

func (c *Client) ListCandidateApplications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := c.do(ctx, http.MethodGet, "/api/candidate/applications", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) DeleteApplication(ctx context.Context, applicationID string) error {
	return c.do(ctx, http.MethodDelete, "/api/candidate/applications/"+applicationID, nil, nil)
}

// DeleteAccount removes the authenticated account and everything cascading
// from it. The path depends on the caller's role.
func (c *Client) DeleteAccount(ctx context.Context, role auth.Role) error {
	return c.do(ctx, http.MethodDelete, "/api/"+string(role)+"/delete-account", nil, nil)
}
