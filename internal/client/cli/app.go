package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/metricsdash/internal/client/api"
	"github.com/dmitrijs2005/metricsdash/internal/client/config"
	"github.com/dmitrijs2005/metricsdash/internal/client/dashboard"
	"github.com/dmitrijs2005/metricsdash/internal/client/i18n"
	"github.com/dmitrijs2005/metricsdash/internal/client/render"
	"github.com/dmitrijs2005/metricsdash/internal/client/services"
	"github.com/dmitrijs2005/metricsdash/internal/client/session"
	"github.com/dmitrijs2005/metricsdash/internal/client/storage"
	"github.com/dmitrijs2005/metricsdash/internal/filex"
	"github.com/dmitrijs2005/metricsdash/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	api    *api.Client
	store  session.Store
	auth   services.AuthService
	msgs   *i18n.Catalog
	router *router
	view   *dashboard.View
	reader *bufio.Reader
	width  int
}

// NewApp opens the session profile named by c.SessionDB and builds the API
// client with the bearer token middleware reading from it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	path, err := filex.EnsureParentDir(c.SessionDB)
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, path)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", path, "error", err)
		return nil, err
	}
	store := session.NewSQLiteStore(db)

	apiClient, err := api.New(c.APIBaseURL,
		api.WithTimeout(c.RequestTimeout),
		api.Use(
			api.WithRequestID(),
			api.WithBearerToken(session.TokenSource(store)),
			api.WithLogging(logger),
		),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Debug(ctx, "api client ready", "base_url", apiClient.BaseURL(), "session_db", path)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		api:    apiClient,
		store:  store,
		auth:   services.NewAuthService(apiClient, store, logger),
		msgs:   i18n.New(c.Locale),
		router: newRouter(dashboard.RouteLogin),
		reader: bufio.NewReader(os.Stdin),
		width:  render.DefaultWidth,
	}, nil
}

// Close releases the session database.
func (a *App) Close() error {
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close session db: %w", err)
	}
	return nil
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok, err := a.store.Token(ctx)
	if err != nil {
		a.logger.Error(ctx, "session read failed", "error", err)
		return false
	}
	return ok
}

func (a *App) getStatus(ctx context.Context) string {
	s := string(a.router.Current())
	if u, err := a.store.User(ctx); err == nil && u != nil {
		s = u.DisplayName() + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// Run blocks in the REPL and closes the session database on exit.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.logger.Error(ctx, "shutdown", "error", err)
		}
	}()
	a.Root(ctx)
}
