package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/metricsdash/internal/client/api"
	"github.com/dmitrijs2005/metricsdash/internal/client/models"
	"github.com/dmitrijs2005/metricsdash/internal/client/session"
	"github.com/dmitrijs2005/metricsdash/internal/common"
	"github.com/dmitrijs2005/metricsdash/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI implements AuthAPI for unit tests.
type fakeAPI struct {
	RegisterRet *models.AuthResponse
	RegisterErr error
	LoginRet    *models.AuthResponse
	LoginErr    error

	LastEmail    string
	LastPassword string
	LastName     string
}

func (f *fakeAPI) Register(_ context.Context, email, password, name string) (*models.AuthResponse, error) {
	f.LastEmail, f.LastPassword, f.LastName = email, password, name
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*models.AuthResponse, error) {
	f.LastEmail, f.LastPassword = email, password
	return f.LoginRet, f.LoginErr
}

type brokenStore struct {
	*session.MemoryStore
}

func (brokenStore) SetSession(context.Context, string, models.User) error {
	return errors.New("readonly profile")
}

func (brokenStore) ClearSession(context.Context) error {
	return errors.New("readonly profile")
}

var ana = models.User{ID: "u1", Email: "ana@example.com", Name: "Ana"}

func newService(fa *fakeAPI, store session.Store) AuthService {
	return NewAuthService(fa, store, logging.Discard())
}

func TestLogin_StoresSession(t *testing.T) {
	fa := &fakeAPI{LoginRet: &models.AuthResponse{Token: "tok-1", User: ana}}
	store := session.NewMemoryStore()
	svc := newService(fa, store)

	u, err := svc.Login(context.Background(), "  ana@example.com ", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, ana, *u)
	assert.Equal(t, "ana@example.com", fa.LastEmail)
	assert.Equal(t, "pw", fa.LastPassword)

	token, ok, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", token)
}

func TestLogin_BackendRejects_KeepsPreviousSession(t *testing.T) {
	fa := &fakeAPI{LoginErr: &api.StatusError{StatusCode: http.StatusUnauthorized}}
	store := session.NewMemoryStore()
	require.NoError(t, store.SetSession(context.Background(), "old", ana))
	svc := newService(fa, store)

	_, err := svc.Login(context.Background(), "ana@example.com", []byte("bad"))
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.ErrorContains(t, err, "login error")

	token, _, _ := store.Token(context.Background())
	assert.Equal(t, "old", token)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := newService(&fakeAPI{}, session.NewMemoryStore())

	_, err := svc.Login(context.Background(), " ", []byte("pw"))
	require.ErrorIs(t, err, common.ErrEmptyCredentials)

	_, err = svc.Login(context.Background(), "a@b.c", nil)
	require.ErrorIs(t, err, common.ErrEmptyCredentials)
}

func TestLogin_NoTokenInPayload(t *testing.T) {
	svc := newService(&fakeAPI{LoginRet: &models.AuthResponse{User: ana}}, session.NewMemoryStore())

	_, err := svc.Login(context.Background(), "ana@example.com", []byte("pw"))
	require.ErrorContains(t, err, "backend returned no token")
}

func TestLogin_StoreFailure(t *testing.T) {
	fa := &fakeAPI{LoginRet: &models.AuthResponse{Token: "t", User: ana}}
	svc := newService(fa, brokenStore{session.NewMemoryStore()})

	_, err := svc.Login(context.Background(), "ana@example.com", []byte("pw"))
	require.ErrorContains(t, err, "session saving error: readonly profile")
}

func TestRegister_PassesNameAndStoresSession(t *testing.T) {
	fa := &fakeAPI{RegisterRet: &models.AuthResponse{Token: "tok-r", User: ana}}
	store := session.NewMemoryStore()
	svc := newService(fa, store)

	u, err := svc.Register(context.Background(), "ana@example.com", []byte("pw"), " Ana ")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "Ana", fa.LastName)

	stored, err := store.User(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ana, *stored)
}

func TestRegister_Error(t *testing.T) {
	fa := &fakeAPI{RegisterErr: api.ErrUnavailable}
	svc := newService(fa, session.NewMemoryStore())

	_, err := svc.Register(context.Background(), "ana@example.com", []byte("pw"), "")
	require.ErrorIs(t, err, api.ErrUnavailable)
}

func TestLogout_IdempotentAndErrorPropagates(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.SetSession(context.Background(), "t", ana))
	svc := newService(&fakeAPI{}, store)

	require.NoError(t, svc.Logout(context.Background()))
	require.NoError(t, svc.Logout(context.Background()))
	_, ok, _ := store.Token(context.Background())
	assert.False(t, ok)

	failing := newService(&fakeAPI{}, brokenStore{session.NewMemoryStore()})
	require.ErrorContains(t, failing.Logout(context.Background()), "logout error")
}

func TestWhoAmI(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	svc := newService(&fakeAPI{}, store)

	_, err := svc.WhoAmI(ctx)
	require.ErrorIs(t, err, common.ErrNotLoggedIn)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u1"}).SignedString([]byte("k"))
	require.NoError(t, err)
	require.NoError(t, store.SetSession(ctx, signed, ana))

	id, err := svc.WhoAmI(ctx)
	require.NoError(t, err)
	assert.Equal(t, ana, id.User)
	assert.True(t, id.Token.IsJWT)
	assert.Equal(t, "u1", id.Token.Subject)
}
