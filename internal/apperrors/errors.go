// Package apperrors defines the error taxonomy shared by repositories,
// services and handlers.
package apperrors

import "errors"

var (
	// ErrNotFound means a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the acting user failed a permission check.
	ErrForbidden = errors.New("forbidden")
	// ErrDuplicate means the write would violate a uniqueness rule.
	ErrDuplicate = errors.New("already exists")
	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("invalid request")
	// ErrNotCourseMember means the acting user is not enrolled in the
	// course they are trying to act within.
	ErrNotCourseMember = errors.New("user is not a member of the course")
)
