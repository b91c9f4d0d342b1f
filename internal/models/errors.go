package models

import "errors"

var (
	// ErrDuplicateEmail is returned when registering (or updating a profile
	// to) an email that is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords; the message is deliberately uniform.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrSelfDeletion is returned when an admin tries to delete their own account.
	ErrSelfDeletion = errors.New("cannot delete own account")
	// ErrForbidden is returned when the session's role does not permit an operation.
	ErrForbidden = errors.New("forbidden")
)

// ErrValidation is a request-level input error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
