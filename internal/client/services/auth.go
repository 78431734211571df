// Package services contains the application services of the dashboard
// client. This file defines the authentication service: register and login
// against the backend, persisting the returned session, and logout.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/metricsdash/internal/client/models"
	"github.com/dmitrijs2005/metricsdash/internal/client/session"
	"github.com/dmitrijs2005/metricsdash/internal/common"
	"github.com/dmitrijs2005/metricsdash/internal/logging"
)

// AuthAPI is the part of the API client used for authentication.
type AuthAPI interface {
	Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register / Login: call the backend and, on success, replace the stored
//     session with the returned token and user.
//   - Logout: clear the stored session; safe without a session.
//   - WhoAmI: describe the stored session or return common.ErrNotLoggedIn.
type AuthService interface {
	Register(ctx context.Context, email string, password []byte, name string) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (*Identity, error)
}

// Identity is the stored session as shown to the user.
type Identity struct {
	User  models.User
	Token session.TokenInfo
}

type authService struct {
	api    AuthAPI
	store  session.Store
	logger logging.Logger
}

func NewAuthService(api AuthAPI, store session.Store, logger logging.Logger) AuthService {
	return &authService{api: api, store: store, logger: logger}
}

func validateCredentials(email string, password []byte) error {
	if strings.TrimSpace(email) == "" || len(password) == 0 {
		return common.ErrEmptyCredentials
	}
	return nil
}

func (a *authService) Register(ctx context.Context, email string, password []byte, name string) (*models.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	resp, err := a.api.Register(ctx, strings.TrimSpace(email), string(password), strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	if err := a.saveSession(ctx, resp); err != nil {
		return nil, err
	}
	a.logger.Info(ctx, "registered", "user_id", resp.User.ID)
	return &resp.User, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	resp, err := a.api.Login(ctx, strings.TrimSpace(email), string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if err := a.saveSession(ctx, resp); err != nil {
		return nil, err
	}
	a.logger.Info(ctx, "logged in", "user_id", resp.User.ID)
	return &resp.User, nil
}

// saveSession stores the payload of a successful register/login. A payload
// without a token is treated as a backend error and stores nothing.
func (a *authService) saveSession(ctx context.Context, resp *models.AuthResponse) error {
	if resp == nil || resp.Token == "" {
		return fmt.Errorf("session saving error: backend returned no token")
	}
	if err := a.store.SetSession(ctx, resp.Token, resp.User); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("logout error: %w", err)
	}
	a.logger.Info(ctx, "logged out")
	return nil
}

func (a *authService) WhoAmI(ctx context.Context) (*Identity, error) {
	token, ok, err := a.store.Token(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrNotLoggedIn
	}

	id := &Identity{Token: session.DescribeToken(token)}
	u, err := a.store.User(ctx)
	if err != nil {
		return nil, err
	}
	if u != nil {
		id.User = *u
	}
	return id, nil
}
