package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput covers malformed or missing request fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidID covers identifiers that are not well-formed store keys.
	ErrInvalidID = errors.New("invalid id")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")

	// ErrUpstreamUnavailable means the catalog service could not be reached
	// at all (connection failure or timeout).
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)

// UpstreamStatusError carries a non-success status returned by a downstream
// service so it can be propagated to the client verbatim.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}
