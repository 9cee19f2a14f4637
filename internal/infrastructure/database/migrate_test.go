package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		data, err := fs.ReadFile(migrationsFS, migrationsDir+"/"+e.Name())
		require.NoError(t, err)
		body := string(data)
		assert.True(t, strings.HasPrefix(body, "-- +goose Up"), "%s must start with goose Up annotation", e.Name())
		assert.Contains(t, body, "-- +goose Down", e.Name())
	}
}

func TestMigrations_NotesCascadeWithCity(t *testing.T) {
	data, err := fs.ReadFile(migrationsFS, migrationsDir+"/00001_create_cities_and_notes.sql")
	require.NoError(t, err)
	assert.Contains(t, string(data), "REFERENCES cities (id) ON DELETE CASCADE")
}
