package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/metricsdash/internal/client/api"
	"github.com/dmitrijs2005/metricsdash/internal/client/dashboard"
	"github.com/dmitrijs2005/metricsdash/internal/client/i18n"
	"github.com/dmitrijs2005/metricsdash/internal/client/models"
	"github.com/dmitrijs2005/metricsdash/internal/client/render"
	"github.com/dmitrijs2005/metricsdash/internal/common"
)

var errNoDashboard = errors.New("no dashboard loaded, run 'dashboard' first")

// Dashboard mounts a fresh dashboard view, loads it and renders the result.
// A rejected session sends the CLI back to the login route.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		a.router.Navigate(dashboard.RouteLogin)
		a.router.takeChange()
		printlnFn(common.ErrNotLoggedIn)
		return common.ErrNotLoggedIn
	}

	a.router.Navigate(dashboard.RouteDashboard)
	a.router.takeChange()

	view := dashboard.NewView(a.api, a.store, a.router, a.msgs, a.logger)
	a.view = view
	printlnFn(render.Dashboard(view, a.width))

	err := view.Load(ctx)
	printlnFn(render.Dashboard(view, a.width))

	if a.router.takeChange() && a.router.Current() == dashboard.RouteLogin {
		a.view = nil
		printlnFn(a.msgs.T(i18n.KeySessionExpired))
	}
	return err
}

// JSON prints the chart options of the last dashboard that loaded.
func (a *App) JSON(context.Context) error {
	if a.view == nil || a.view.State() != dashboard.StateReady {
		printlnFn(errNoDashboard)
		return errNoDashboard
	}
	b, err := render.ChartsJSON(a.view.Data(), a.msgs)
	if err != nil {
		return fmt.Errorf("encode charts: %w", err)
	}
	printlnFn(string(b))
	return nil
}

// Metrics lists the raw metrics, optionally only those of category.
func (a *App) Metrics(ctx context.Context, category string) error {
	if !a.isLoggedIn(ctx) {
		printlnFn(common.ErrNotLoggedIn)
		return common.ErrNotLoggedIn
	}

	var (
		metrics []models.Metric
		err     error
	)
	if category == "" {
		metrics, err = a.api.GetMetrics(ctx)
	} else {
		metrics, err = a.api.GetMetricsByCategory(ctx, category)
	}
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			if cerr := a.auth.Logout(ctx); cerr != nil {
				a.logger.Error(ctx, "session teardown failed", "error", cerr)
			}
			a.view = nil
			a.router.Navigate(dashboard.RouteLogin)
			a.router.takeChange()
			printlnFn(a.msgs.T(i18n.KeySessionExpired))
			return err
		}
		if code, ok := api.StatusCode(err); ok {
			printlnFn(fmt.Sprintf("%s (HTTP %d)", a.msgs.T(i18n.KeyLoadError), code))
			return err
		}
		printlnFn(a.msgs.T(i18n.KeyLoadError)+":", err)
		return err
	}

	if len(metrics) == 0 {
		printlnFn(a.msgs.T(i18n.KeyNoData))
		return nil
	}
	for _, m := range metrics {
		printlnFn(formatMetric(m, a.msgs))
	}
	return nil
}

func formatMetric(m models.Metric, msgs *i18n.Catalog) string {
	category := m.CategoryName()
	if category == "" {
		category = "-"
	}
	return strings.Join([]string{m.ID, category, m.Label, msgs.Number(m.Value)}, "\t")
}
