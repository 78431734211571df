// Package session holds the authenticated session of the current profile:
// one bearer token and the user it identifies.
//
// The Store is passed explicitly to the API client (as a TokenSource) and to
// the dashboard view, so tests can swap the SQLite-backed store for a
// MemoryStore. There is no expiry, refresh or multi-token support; the last
// SetSession wins.
package session
