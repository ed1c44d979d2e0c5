// Package common defines sentinel errors shared by the popx client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Account errors.
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// Session state errors.
	ErrNotInitialized = errors.New("session not initialized")

	// Placeholder actions without a backing operation.
	ErrNotImplemented = errors.New("not implemented")
)
