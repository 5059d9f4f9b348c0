package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrAuthRequired       = errors.New("authentication required")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
)

// GeocodeError means the geocoder returned zero candidates for the location.
// It must surface to the caller; creation never falls back to a default point.
type GeocodeError struct {
	Location string
}

func (e *GeocodeError) Error() string {
	return fmt.Sprintf("geocoding %q returned no candidates", e.Location)
}

// ExternalServiceError wraps a failure from the geocoder or image host.
// Propagated as-is: no retry, no partial-success fallback.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// ValidationError aggregates every violation of a payload in one value.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Add(msg string) {
	e.Violations = append(e.Violations, msg)
}

// Err returns nil when no violations were recorded, avoiding a typed-nil error.
func (e *ValidationError) Err() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}
