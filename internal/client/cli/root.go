package cli

import "context"

// Root opens the dashboard when a session is stored, then runs the REPL
// until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the metrics dashboard (type 'help' for commands)")

	if a.isLoggedIn(ctx) {
		_ = a.Dashboard(ctx)
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}
