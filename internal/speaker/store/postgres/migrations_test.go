package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speakerreg/internal/speaker/store/postgres/migrations"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	body, err := migrations.FS.ReadFile(names[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS speakers")
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS speaker_sessions")
}
