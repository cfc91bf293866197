package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	_ "modernc.org/sqlite"
)

const settingsSchema = `
CREATE TABLE IF NOT EXISTS user_settings (
	username    TEXT PRIMARY KEY,
	settings    TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);
`

// ErrInvalidSettings wraps validation failures on Save
var ErrInvalidSettings = errors.New("invalid settings")

// SettingsStore persists per-user settings in SQLite
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore opens the database at dbPath and runs migrations.
// Use ":memory:" for a throwaway store.
func NewSettingsStore(dbPath string) (*SettingsStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// a single connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(settingsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SettingsStore{db: db}, nil
}

func (s *SettingsStore) Close() error {
	return s.db.Close()
}

// Get returns the stored settings, or the defaults for a user with none saved
func (s *SettingsStore) Get(ctx context.Context, username string) (model.Settings, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT settings FROM user_settings WHERE username = ?`, username,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultSettings(username), nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("query settings: %w", err)
	}

	settings := model.DefaultSettings(username)
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return model.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

// Save validates and upserts the user's settings
func (s *SettingsStore) Save(ctx context.Context, username string, settings model.Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO user_settings (username, settings, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET settings = excluded.settings, updated_at = excluded.updated_at`,
		username, string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
