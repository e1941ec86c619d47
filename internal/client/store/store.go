// Package store implements the persisted session store: a small sqlite-backed
// key/value file holding the auth token, the serialized user profile, the UI
// theme preference and the client install ID across process restarts.
package store

import (
	"context"

	"github.com/fahadsheikh/rescuepoint/internal/client/models"
)

// Storage keys. Each entry is independently readable and may be absent.
const (
	keyAuthToken = "auth_token"
	keyUser      = "user_profile"
	keyTheme     = "theme"
	keyClientID  = "client_id"
)

// Snapshot is the result of a Load: whatever survived the last run.
// Absent entries are zero values. A token without a readable user profile
// (or vice versa) is reported as-is; interpretation is the caller's.
type Snapshot struct {
	Token string
	User  *models.User
	Theme models.Theme
}

// Store is the durable shadow of the session state.
//
// Contract:
//   - Load returns the persisted snapshot; malformed entries read as absent.
//   - SaveSession writes token and user together in one transaction.
//   - SaveTheme writes only the theme entry.
//   - ClearSession removes token and user (not theme) in one transaction;
//     logout invalidates the session, not the user's preferences.
//   - Clear removes token, user and theme in one transaction, so a
//     subsequent Load reports absence for all three entries.
//   - ClientID returns the stable install identifier, creating it on first use.
//
// Only the session manager mutates the token/user entries.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	SaveSession(ctx context.Context, token string, user *models.User) error
	SaveTheme(ctx context.Context, theme models.Theme) error
	ClearSession(ctx context.Context) error
	Clear(ctx context.Context) error
	ClientID(ctx context.Context) (string, error)
}
