package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/metricsdash/internal/client/models"
	"github.com/dmitrijs2005/metricsdash/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) Store {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "profile.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db)
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"sqlite": newSQLiteStore(t),
		"memory": NewMemoryStore(),
	}
}

func TestStore_EmptyIsUnauthenticated(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			token, ok, err := s.Token(ctx)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, token)

			u, err := s.User(ctx)
			require.NoError(t, err)
			assert.Nil(t, u)
		})
	}
}

func TestStore_SetThenRead(t *testing.T) {
	user := models.User{ID: "u1", Email: "ana@example.com", Name: "Ana"}

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.SetSession(ctx, "tok-1", user))

			token, ok, err := s.Token(ctx)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "tok-1", token)

			u, err := s.User(ctx)
			require.NoError(t, err)
			require.NotNil(t, u)
			assert.Equal(t, user, *u)
		})
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.SetSession(ctx, "first", models.User{ID: "1", Email: "a@x"}))
			require.NoError(t, s.SetSession(ctx, "second", models.User{ID: "2", Email: "b@x"}))

			token, _, err := s.Token(ctx)
			require.NoError(t, err)
			assert.Equal(t, "second", token)

			u, err := s.User(ctx)
			require.NoError(t, err)
			assert.Equal(t, "2", u.ID)
		})
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.ClearSession(ctx), "clearing an empty store must be safe")

			require.NoError(t, s.SetSession(ctx, "tok", models.User{ID: "1"}))
			require.NoError(t, s.ClearSession(ctx))
			require.NoError(t, s.ClearSession(ctx))

			_, ok, err := s.Token(ctx)
			require.NoError(t, err)
			assert.False(t, ok)

			u, err := s.User(ctx)
			require.NoError(t, err)
			assert.Nil(t, u)
		})
	}
}

func TestTokenSource(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	src := TokenSource(s)

	token, err := src(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.SetSession(ctx, "abc", models.User{}))
	token, err = src(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestSQLiteStore_UsesProfileKeys(t *testing.T) {
	ctx := context.Background()
	db, err := storage.InitDatabase(ctx, filepath.Join(t.TempDir(), "profile.db"))
	require.NoError(t, err)
	defer db.Close()

	s := NewSQLiteStore(db)
	require.NoError(t, s.SetSession(ctx, "tok", models.User{ID: "u1", Email: "a@b.c"}))

	repo := storage.NewSQLiteRepository(db)
	token, ok, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok", token)

	user, ok, err := repo.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":"u1","email":"a@b.c"}`, user)
}

func TestSQLiteStore_CorruptUser(t *testing.T) {
	ctx := context.Background()
	db, err := storage.InitDatabase(ctx, filepath.Join(t.TempDir(), "profile.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, storage.NewSQLiteRepository(db).Set(ctx, KeyUser, "{not json"))

	_, err = NewSQLiteStore(db).User(ctx)
	require.ErrorContains(t, err, "decode stored user")
}
