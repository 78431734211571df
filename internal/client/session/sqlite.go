package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/metricsdash/internal/client/models"
	"github.com/dmitrijs2005/metricsdash/internal/client/storage"
	"github.com/dmitrijs2005/metricsdash/internal/dbx"
)

// SQLiteStore persists the session in the profile database. The user is
// stored as its JSON encoding under KeyUser.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) repo() storage.Repository {
	return storage.NewSQLiteRepository(s.db)
}

func (s *SQLiteStore) SetSession(ctx context.Context, token string, user models.User) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUser, string(encoded))
	})
}

func (s *SQLiteStore) Token(ctx context.Context) (string, bool, error) {
	token, ok, err := s.repo().Get(ctx, KeyToken)
	if err != nil {
		return "", false, err
	}
	if !ok || token == "" {
		return "", false, nil
	}
	return token, true, nil
}

func (s *SQLiteStore) User(ctx context.Context) (*models.User, error) {
	raw, ok, err := s.repo().Get(ctx, KeyUser)
	if err != nil || !ok {
		return nil, err
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &u, nil
}

func (s *SQLiteStore) ClearSession(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, KeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyUser)
	})
}
