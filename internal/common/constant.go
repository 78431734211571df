// Package common contains shared constants and sentinel errors used across
// the dashboard client packages.
package common

const (
	// AuthorizationHeaderName is the HTTP header carrying the bearer token.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the token value in AuthorizationHeaderName.
	BearerScheme = "Bearer"

	// RequestIDHeaderName correlates client log lines with backend logs.
	RequestIDHeaderName = "X-Request-ID"
)
