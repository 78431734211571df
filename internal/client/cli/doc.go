// Package cli provides the interactive metrics dashboard client.
//
// It wires configuration, the SQLite session profile, the HTTP API client
// and an interactive REPL. Typical flow: log in (or register), view the
// dashboard, export the chart options, log out.
//
// Commands:
//   - register / login / logout
//   - dashboard (alias: show) renders cards and charts
//   - metrics [category] lists the raw metrics
//   - whoami describes the stored session
//   - json prints the chart options of the last loaded dashboard
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
