// Package api is the HTTP client of the metrics backend.
//
// # Overview
//
// A Client is bound to one backend origin and appends every path under the
// fixed "/api" prefix. Outgoing requests pass through a chain of Middleware
// assembled when the client is built; the bearer-token step
// (WithBearerToken) reads the token from an injected source on every request
// and sends the request unauthenticated when there is none.
//
// Operations: Register, Login, GetMetrics, GetMetricsByCategory.
//
// # Error Handling
//
// Transport failures match ErrUnavailable. Non-2xx responses are returned as
// *StatusError carrying the status code and the response body; a 401 also
// matches ErrUnauthorized:
//
//	if errors.Is(err, api.ErrUnauthorized) { ... }
//
// The client never retries.
package api
