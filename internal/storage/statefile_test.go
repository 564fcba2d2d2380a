package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Kekatrice/DiscordBotty/internal/errors"
	"github.com/Kekatrice/DiscordBotty/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState struct {
	Name      string    `json:"name"`
	Balance   int64     `json:"balance"`
	LastSpawn time.Time `json:"last_spawn"`
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	// Timestamps must survive the trip through the human-readable format
	want := testState{
		Name:      "Nyx",
		Balance:   250,
		LastSpawn: time.Date(2024, 11, 19, 12, 30, 45, 0, time.UTC),
	}
	require.NoError(t, storage.Save(path, want))

	var got testState
	require.NoError(t, storage.Load(path, &got))
	assert.Equal(t, want, got)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	var got testState
	require.NoError(t, storage.Load(path, &got))
	assert.Equal(t, testState{}, got)
}

func TestLoad_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var got testState
	err := storage.Load(path, &got)
	require.Error(t, err)
	assert.True(t, errors.IsCorrupted(err))
}

func TestSave_RotatesBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	require.NoError(t, storage.Save(path, testState{Name: "first"}))

	// No backup until there is a previous good copy to keep
	_, err := os.Stat(path + storage.BackupSuffix)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, storage.Save(path, testState{Name: "second"}))

	var backup testState
	require.NoError(t, storage.Load(path+storage.BackupSuffix, &backup))
	assert.Equal(t, "first", backup.Name)

	var current testState
	require.NoError(t, storage.Load(path, &current))
	assert.Equal(t, "second", current.Name)
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	require.NoError(t, storage.Save(path, testState{Name: "only"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp")
	}
}
