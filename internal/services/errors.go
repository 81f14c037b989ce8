package services

import "errors"

var (
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateApplication guards the one-application-per-(job, candidate)
	// invariant.
	ErrDuplicateApplication = errors.New("already applied for this job")

	ErrEmailTaken    = errors.New("email already in use by another account")
	ErrWrongPassword = errors.New("current password is incorrect")
)
