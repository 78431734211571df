package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/metricsdash/internal/client/api"
	"github.com/dmitrijs2005/metricsdash/internal/client/i18n"
	"github.com/dmitrijs2005/metricsdash/internal/client/models"
	"github.com/dmitrijs2005/metricsdash/internal/client/session"
	"github.com/dmitrijs2005/metricsdash/internal/logging"
)

type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Route is a navigation target of the client.
type Route string

const (
	RouteLogin     Route = "/login"
	RouteDashboard Route = "/dashboard"
)

// Navigator moves the client to another route.
type Navigator interface {
	Navigate(route Route)
}

// MetricsSource is the part of the API client the view needs.
type MetricsSource interface {
	GetMetrics(ctx context.Context) ([]models.Metric, error)
}

var (
	ErrAlreadyLoaded = errors.New("dashboard already loaded")
	ErrNotLoaded     = errors.New("dashboard still loading")
)

// View is one mount of the dashboard. Build a new View to load again.
type View struct {
	source MetricsSource
	store  session.Store
	nav    Navigator
	msgs   *i18n.Catalog
	logger logging.Logger

	state   State
	started bool
	metrics []models.Metric
	errMsg  string
}

func NewView(source MetricsSource, store session.Store, nav Navigator, msgs *i18n.Catalog, logger logging.Logger) *View {
	return &View{
		source: source,
		store:  store,
		nav:    nav,
		msgs:   msgs,
		logger: logger,
		state:  StateLoading,
	}
}

// Load fetches the metrics once and settles the view in StateReady or
// StateError. The fetch error is returned after the state has been updated;
// when it is api.ErrUnauthorized the session has already been cleared and
// the navigator sent to RouteLogin.
func (v *View) Load(ctx context.Context) error {
	if v.started {
		return ErrAlreadyLoaded
	}
	v.started = true

	metrics, err := v.source.GetMetrics(ctx)
	if err == nil {
		v.metrics = metrics
		v.state = StateReady
		v.logger.Info(ctx, "metrics loaded", "count", len(metrics))
		return nil
	}

	v.metrics = nil
	v.errMsg = v.msgs.T(i18n.KeyLoadError)
	v.state = StateError
	args := []any{"error", err}
	if code, ok := api.StatusCode(err); ok {
		args = append(args, "status", code)
	}
	v.logger.Error(ctx, "metrics load failed", args...)

	if errors.Is(err, api.ErrUnauthorized) {
		if cerr := v.store.ClearSession(ctx); cerr != nil {
			v.logger.Error(ctx, "session teardown failed", "error", cerr)
			err = errors.Join(err, cerr)
		}
		v.nav.Navigate(RouteLogin)
	}
	return err
}

// Logout clears the session and navigates to RouteLogin. It is not
// available while loading and may be called repeatedly afterwards.
func (v *View) Logout(ctx context.Context) error {
	if v.state == StateLoading {
		return ErrNotLoaded
	}
	if err := v.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	v.nav.Navigate(RouteLogin)
	return nil
}

func (v *View) State() State {
	return v.state
}

// ErrorMessage is the localized banner text; empty unless StateError.
func (v *View) ErrorMessage() string {
	return v.errMsg
}

// Metrics returns a copy of the loaded batch; empty unless StateReady.
func (v *View) Metrics() []models.Metric {
	return append([]models.Metric(nil), v.metrics...)
}

// Data derives the render data from the current batch.
func (v *View) Data() Data {
	return Derive(v.metrics)
}

// Messages exposes the catalog the view was built with.
func (v *View) Messages() *i18n.Catalog {
	return v.msgs
}
