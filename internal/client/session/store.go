package session

import (
	"context"

	"github.com/dmitrijs2005/metricsdash/internal/client/models"
)

// Storage keys, shared with any other client of the same profile.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

type Store interface {
	// SetSession stores token and user together.
	SetSession(ctx context.Context, token string, user models.User) error
	// Token returns ok == false when no session exists.
	Token(ctx context.Context) (token string, ok bool, err error)
	// User returns nil when no session exists.
	User(ctx context.Context) (*models.User, error)
	// ClearSession removes both values; clearing an empty store is not an error.
	ClearSession(ctx context.Context) error
}

// TokenSource adapts a Store to the token lookup used by the API client.
func TokenSource(s Store) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		token, ok, err := s.Token(ctx)
		if err != nil || !ok {
			return "", err
		}
		return token, nil
	}
}
