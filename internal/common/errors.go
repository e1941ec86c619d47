// Package common defines shared constants and sentinel errors used across
// the RescuePoint client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Remote API errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// Session lifecycle errors.
	ErrSessionInvalid = errors.New("session invalid")

	// Location acquisition errors.
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrLocationUnavailable = errors.New("location unavailable")
)

// AuthHeaderName is the HTTP header carrying the bearer access token.
const AuthHeaderName = "Authorization"

// ClientIDHeaderName carries the persistent install identifier on
// outbound API requests.
const ClientIDHeaderName = "X-Client-Id"
