// Package lifecycle is the single authority on application status changes.
// Every dashboard and every server route goes through the same table, so the
// set of allowed actions cannot drift between views.
package lifecycle

import (
	"errors"

	"github.com/recruiteryu/platform/internal/auth"
)

// Status of a job application. Pending is the initial state; rejected and
// hired are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusHired    Status = "hired"
)

// ParseStatus maps a raw status string onto the enum. Unknown strings come
// back as "" which no transition accepts.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusHired:
		return Status(s)
	}
	return ""
}

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusHired
}

var (
	// ErrInvalidTransition means the transition table forbids the move.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNotAuthorized means the actor lacks authority over this application.
	ErrNotAuthorized = errors.New("not authorized for this application")
)

// Actor is whoever requested the change: the session's user id plus role.
type Actor struct {
	ID   string
	Role auth.Role
}

// Record is the slice of an application the engine needs to decide.
type Record struct {
	ID          string
	JobID       string
	CandidateID string
	RecruiterID string
	Status      Status
}

// transitions holds the full status graph:
//
//	pending  -> approved -> hired
//	pending  -> rejected
//
// Approved never goes back to rejected; once a candidate is shortlisted the
// only remaining recruiter action is hiring.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusHired},
}

// Transition validates a recruiter-driven status change and returns the
// updated record. The caller issues the remote write and reconciles its
// caches only after that write is confirmed; on error nothing has changed.
func Transition(rec Record, actor Actor, target Status) (Record, error) {
	if rec.Status.Terminal() {
		return Record{}, ErrInvalidTransition
	}
	if actor.Role != auth.RoleRecruiter || actor.ID != rec.RecruiterID {
		return Record{}, ErrNotAuthorized
	}
	for _, next := range transitions[rec.Status] {
		if next == target {
			rec.Status = target
			return rec, nil
		}
	}
	return Record{}, ErrInvalidTransition
}

// Withdraw validates a candidate removing their own application. Only the
// owning candidate may withdraw, and only while the application is still
// pending; once a recruiter has decided, withdrawal is off the table.
func Withdraw(rec Record, actor Actor) error {
	if rec.Status != StatusPending {
		return ErrInvalidTransition
	}
	if actor.Role != auth.RoleCandidate || actor.ID != rec.CandidateID {
		return ErrNotAuthorized
	}
	return nil
}
