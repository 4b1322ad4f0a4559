package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:metadatarepo?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM metadata;`)
	require.NoError(t, err)
	return db
}

func TestGet_MissingKeyReturnsNil(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(context.Background(), "session_token")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSetGetDelete_RoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "session_token", []byte("tok-1")))

	v, err := repo.Get(ctx, "session_token")
	require.NoError(t, err)
	require.Equal(t, []byte("tok-1"), v)

	// Overwrite on conflict.
	require.NoError(t, repo.Set(ctx, "session_token", []byte("tok-2")))
	v, err = repo.Get(ctx, "session_token")
	require.NoError(t, err)
	require.Equal(t, []byte("tok-2"), v)

	require.NoError(t, repo.Delete(ctx, "session_token"))
	v, err = repo.Get(ctx, "session_token")
	require.NoError(t, err)
	require.Nil(t, v)
}
