package storage

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAppliesMigrations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "site.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var applied int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 2, applied)

	_, err = db.Exec(`INSERT INTO visits (hashed_ip, path, visited_at) VALUES ('h', '/', 1)`)
	assert.NoError(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "site.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), " ")
	assert.Error(t, err)
}

func TestMigrateRollsBackBrokenFile(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "site.db"))
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(ctx, db, fstest.MapFS{
		"9999_broken.sql": {Data: []byte("CREATE TABLE nope (")},
	})
	require.Error(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_migrations WHERE name = '9999_broken.sql'`).Scan(&n))
	assert.Zero(t, n)
}
