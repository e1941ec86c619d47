package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/fahadsheikh/rescuepoint/internal/client/models"
	"github.com/fahadsheikh/rescuepoint/internal/dbx"
)

// SQLiteStore keeps the persisted entries in a single settings table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set settings[%s]: %w", key, err)
	}
	return nil
}

func del(ctx context.Context, q dbx.DBTX, key string) error {
	_, err := q.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete settings[%s]: %w", key, err)
	}
	return nil
}

// Load reads the three session-related entries. A user profile that does not
// unmarshal is treated as absent, not as an error.
func (s *SQLiteStore) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	token, err := get(ctx, s.db, keyAuthToken)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Token = string(token)

	raw, err := get(ctx, s.db, keyUser)
	if err != nil {
		return Snapshot{}, err
	}
	if len(raw) > 0 {
		var u models.User
		if err := json.Unmarshal(raw, &u); err == nil && u.ID != "" {
			snap.User = &u
		}
	}

	theme, err := get(ctx, s.db, keyTheme)
	if err != nil {
		return Snapshot{}, err
	}
	if t, ok := models.ParseTheme(string(theme)); ok {
		snap.Theme = t
	}

	return snap, nil
}

// SaveSession writes token and user atomically so a restart can never
// observe one without the other.
func (s *SQLiteStore) SaveSession(ctx context.Context, token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user profile: %w", err)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyAuthToken, []byte(token)); err != nil {
			return err
		}
		return set(ctx, tx, keyUser, raw)
	})
}

func (s *SQLiteStore) SaveTheme(ctx context.Context, theme models.Theme) error {
	return set(ctx, s.db, keyTheme, []byte(theme))
}

// ClearSession removes token and user in one transaction. The theme
// preference and install ID survive logout.
func (s *SQLiteStore) ClearSession(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := del(ctx, tx, keyAuthToken); err != nil {
			return err
		}
		return del(ctx, tx, keyUser)
	})
}

// Clear wipes token, user and theme in one transaction; every entry reads
// as absent afterwards. Only the install ID survives.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range []string{keyAuthToken, keyUser, keyTheme} {
			if err := del(ctx, tx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// ClientID returns the persisted install identifier, generating and storing
// a fresh UUID the first time it is asked for.
func (s *SQLiteStore) ClientID(ctx context.Context) (string, error) {
	id, err := get(ctx, s.db, keyClientID)
	if err != nil {
		return "", err
	}
	if len(id) > 0 {
		return string(id), nil
	}
	fresh := uuid.NewString()
	if err := set(ctx, s.db, keyClientID, []byte(fresh)); err != nil {
		return "", err
	}
	return fresh, nil
}
