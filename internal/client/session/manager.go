// Package session owns the authentication state machine: restore from the
// persisted store, login/register against the remote API, guest mode,
// background verification and forced logout on invalidation.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fahadsheikh/rescuepoint/internal/client/api"
	"github.com/fahadsheikh/rescuepoint/internal/client/models"
	"github.com/fahadsheikh/rescuepoint/internal/client/store"
	"github.com/fahadsheikh/rescuepoint/internal/logging"
)

// Manager is the sole owner of the session state. All transitions happen
// under one mutex and write through to the persisted store before the lock
// is released, so no observer can see memory and disk disagree.
type Manager struct {
	mu      sync.Mutex
	api     api.Client
	store   store.Store
	log     logging.Logger
	session models.Session
}

func NewManager(apiClient api.Client, st store.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Noop{}
	}
	return &Manager{
		api:     apiClient,
		store:   st,
		log:     log,
		session: models.Session{Status: models.StatusUnauthenticated},
	}
}

// Current returns a snapshot of the session.
func (m *Manager) Current() models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// tokenUsable structurally checks a persisted access token. A token that
// does not parse, or whose expiry claim is already in the past, counts as
// malformed persisted data and therefore as absence.
func tokenUsable(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
		return false
	}
	return true
}

// Restore reads the persisted shadow. When a usable token and profile are
// present the session is provisionally rendered as authenticated
// (StatusVerifying) so reloads do not flash the login gate; Verify resolves
// it in the background. Anything partial or malformed restores as
// unauthenticated.
func (m *Manager) Restore(ctx context.Context) (models.Session, error) {
	snap, err := m.store.Load(ctx)
	if err != nil {
		return m.Current(), err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if snap.Token != "" && snap.User != nil && tokenUsable(snap.Token) {
		m.session = models.Session{Token: snap.Token, User: snap.User, Status: models.StatusVerifying}
	} else {
		m.session = models.Session{Status: models.StatusUnauthenticated}
	}
	return m.session, nil
}

// finishAuth applies a successful login/register response and persists it
// before releasing the lock.
func (m *Manager) finishAuth(ctx context.Context, token string, user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = models.Session{Token: token, User: user, Status: models.StatusAuthenticated}
	if err := m.store.SaveSession(ctx, token, user); err != nil {
		m.log.Error(ctx, "failed to persist session", "err", err)
	}
}

// Login authenticates with a phone number or email. On failure the prior
// session is left untouched and the error (an *api.AuthError for rejected
// credentials) is returned.
func (m *Manager) Login(ctx context.Context, identifier, password string) error {
	token, user, err := m.api.Login(ctx, identifier, password)
	if err != nil {
		return err
	}
	m.finishAuth(ctx, token, user)
	m.log.Info(ctx, "logged in", "user", user.ID)
	return nil
}

// Register creates an account; the same atomicity rules as Login apply.
func (m *Manager) Register(ctx context.Context, reg api.Registration, password string) error {
	token, user, err := m.api.Register(ctx, reg, password)
	if err != nil {
		return err
	}
	m.finishAuth(ctx, token, user)
	m.log.Info(ctx, "registered", "user", user.ID)
	return nil
}

// ContinueAsGuest switches to guest browsing without touching the remote
// API, the persisted store or any existing token.
func (m *Manager) ContinueAsGuest() models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.Status = models.StatusGuest
	return m.session
}

// Verify checks the current token against the remote session endpoint. With
// no token it is a no-op. Any failure — timeout, 401, 500, malformed body —
// forces a logout; there is no retry and no distinction between transient
// and permanent. Verify never leaves the session in StatusVerifying.
func (m *Manager) Verify(ctx context.Context) models.Session {
	m.mu.Lock()
	token := m.session.Token
	m.mu.Unlock()

	if token == "" {
		return m.Current()
	}

	user, err := m.api.Me(ctx, token)
	if err != nil {
		m.log.Warn(ctx, "session verification failed, logging out", "err", err)
		m.forceLogout(ctx, token)
		return m.Current()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// a concurrent login may have replaced the token; leave it alone
	if m.session.Token == token {
		m.session = models.Session{Token: token, User: user, Status: models.StatusAuthenticated}
	}
	return m.session
}

// forceLogout invalidates the session only if token is still current, so a
// slow verification can never clobber a fresh login.
func (m *Manager) forceLogout(ctx context.Context, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.Token != token {
		return
	}
	m.clearLocked(ctx)
}

// Logout clears the in-memory session and the persisted shadow in one
// observable step.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked(ctx)
}

func (m *Manager) clearLocked(ctx context.Context) {
	m.session = models.Session{Status: models.StatusUnauthenticated}
	if err := m.store.ClearSession(ctx); err != nil {
		m.log.Error(ctx, "failed to clear persisted session", "err", err)
	}
}
