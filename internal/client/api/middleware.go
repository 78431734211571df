package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/metricsdash/internal/common"
	"github.com/dmitrijs2005/metricsdash/internal/logging"
	"github.com/google/uuid"
)

// Middleware decorates the transport of a Client.
type Middleware func(next http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Chain wraps rt so that mws[0] sees the request first.
func Chain(rt http.RoundTripper, mws ...Middleware) http.RoundTripper {
	for i := len(mws) - 1; i >= 0; i-- {
		rt = mws[i](rt)
	}
	return rt
}

// TokenFunc returns the current bearer token, or "" when unauthenticated.
type TokenFunc func(ctx context.Context) (string, error)

// WithBearerToken sets "Authorization: Bearer <token>" when source yields a
// token. A failing source aborts the request.
func WithBearerToken(source TokenFunc) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			token, err := source(req.Context())
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrTokenSource, err)
			}
			if token == "" {
				return next.RoundTrip(req)
			}
			r := req.Clone(req.Context())
			r.Header.Set(common.AuthorizationHeaderName, common.BearerValue(token))
			return next.RoundTrip(r)
		})
	}
}

// WithHeader sets a fixed header on every request that does not carry it.
func WithHeader(key, value string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(key) != "" {
				return next.RoundTrip(req)
			}
			r := req.Clone(req.Context())
			r.Header.Set(key, value)
			return next.RoundTrip(r)
		})
	}
}

// WithRequestID tags each request with a fresh X-Request-ID.
func WithRequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			r := req.Clone(req.Context())
			r.Header.Set(common.RequestIDHeaderName, uuid.NewString())
			return next.RoundTrip(r)
		})
	}
}

// WithLogging logs every exchange at debug level and transport failures at
// warn level. The Authorization header is never logged.
func WithLogging(logger logging.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)
			args := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"request_id", req.Header.Get(common.RequestIDHeaderName),
				"duration", time.Since(start),
			}
			if err != nil {
				logger.Warn(req.Context(), "request failed", append(args, "error", err)...)
				return nil, err
			}
			logger.Debug(req.Context(), "request done", append(args, "status", resp.StatusCode)...)
			return resp, nil
		})
	}
}
