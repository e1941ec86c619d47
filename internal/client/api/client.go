// Package api implements the client for the remote RescuePoint HTTP API:
// authentication (register, login, session verification) and the nearby
// vendor directory.
package api

import (
	"context"

	"github.com/fahadsheikh/rescuepoint/internal/client/models"
)

// Registration carries the profile fields of a sign-up request. At least
// one of Phone or Email must be set; the server enforces the rest.
type Registration struct {
	Name  string
	Phone string
	Email string
}

// VendorQuery describes one directory lookup.
type VendorQuery struct {
	Position models.Position
	RadiusKm float64
	Category models.Category
}

// Client is the remote API surface consumed by the session manager and the
// vendor query coordinator.
//
// Contract:
//   - Register / Login return the access token and the user profile on
//     success; on a rejected request they return an *AuthError carrying the
//     server's reason.
//   - Me validates token against the session endpoint; any transport error
//     or non-2xx response is reported as common.ErrUnauthorized wrapped with
//     detail, without distinguishing failure modes.
//   - Nearby returns the vendor records around the query position.
//
// All methods honor context cancellation.
type Client interface {
	Register(ctx context.Context, reg Registration, password string) (string, *models.User, error)
	Login(ctx context.Context, identifier, password string) (string, *models.User, error)
	Me(ctx context.Context, token string) (*models.User, error)
	Nearby(ctx context.Context, q VendorQuery) ([]models.Vendor, error)
}
