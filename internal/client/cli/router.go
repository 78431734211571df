package cli

import "github.com/dmitrijs2005/metricsdash/internal/client/dashboard"

// router tracks the current route of the CLI. The dashboard view navigates
// through it; the REPL reads it back after each command.
type router struct {
	current dashboard.Route
	changed bool
}

func newRouter(start dashboard.Route) *router {
	return &router{current: start}
}

func (r *router) Navigate(route dashboard.Route) {
	if r.current != route {
		r.changed = true
	}
	r.current = route
}

func (r *router) Current() dashboard.Route {
	return r.current
}

// takeChange reports whether the route changed since the last call.
func (r *router) takeChange() bool {
	c := r.changed
	r.changed = false
	return c
}
