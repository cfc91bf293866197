package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettingsStore(t *testing.T) *SettingsStore {
	t.Helper()
	store, err := NewSettingsStore(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSettingsDefaults(t *testing.T) {
	store := newTestSettingsStore(t)

	got, err := store.Get(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings("demo"), got)
}

func TestSettingsSaveAndGet(t *testing.T) {
	store := newTestSettingsStore(t)
	ctx := context.Background()

	s := model.DefaultSettings("demo")
	s.Preferences.Theme = "dark"
	s.Notifications.WeeklyReports = true
	s.Security.SessionTimeout = 60
	require.NoError(t, store.Save(ctx, "demo", s))

	got, err := store.Get(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	// overwrite
	s.Preferences.Theme = "light"
	require.NoError(t, store.Save(ctx, "demo", s))
	got, err = store.Get(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, "light", got.Preferences.Theme)

	other, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings("alice"), other)
}

func TestSettingsSaveRejectsInvalid(t *testing.T) {
	store := newTestSettingsStore(t)

	s := model.DefaultSettings("demo")
	s.Security.SessionTimeout = 1
	err := store.Save(context.Background(), "demo", s)
	assert.ErrorIs(t, err, ErrInvalidSettings)

	got, err := store.Get(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, 30, got.Security.SessionTimeout)
}
