// Package common defines shared constants and sentinel errors used across
// portalauth components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors: surfaced to the user, no state is mutated.
	ErrValidation = errors.New("validation error")

	// Storage errors: malformed or unreadable persisted records.
	ErrStorage = errors.New("storage error")
)
