package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/metricsdash/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// terminal records the request it receives and answers 200.
type terminal struct {
	got *http.Request
}

func (t *terminal) RoundTrip(r *http.Request) (*http.Response, error) {
	t.got = r
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("")), Request: r}, nil
}

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://backend/api/metrics", nil)
	require.NoError(t, err)
	return req
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
				order = append(order, name)
				return next.RoundTrip(r)
			})
		}
	}

	rt := Chain(&terminal{}, mark("a"), mark("b"), mark("c"))
	_, err := rt.RoundTrip(newRequest(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestWithBearerToken_DoesNotMutateCallerRequest(t *testing.T) {
	term := &terminal{}
	rt := Chain(term, WithBearerToken(staticToken("abc")))

	req := newRequest(t)
	_, err := rt.RoundTrip(req)
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc", term.got.Header.Get("Authorization"))
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestWithHeader_KeepsExplicitValue(t *testing.T) {
	term := &terminal{}
	rt := Chain(term, WithHeader("Accept", "application/json"))

	req := newRequest(t)
	req.Header.Set("Accept", "text/csv")
	_, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", term.got.Header.Get("Accept"))

	_, err = rt.RoundTrip(newRequest(t))
	require.NoError(t, err)
	assert.Equal(t, "application/json", term.got.Header.Get("Accept"))
}

func TestWithRequestID_UniquePerRequest(t *testing.T) {
	term := &terminal{}
	rt := Chain(term, WithRequestID())

	_, err := rt.RoundTrip(newRequest(t))
	require.NoError(t, err)
	first := term.got.Header.Get("X-Request-ID")
	_, err = uuid.Parse(first)
	require.NoError(t, err)

	_, err = rt.RoundTrip(newRequest(t))
	require.NoError(t, err)
	assert.NotEqual(t, first, term.got.Header.Get("X-Request-ID"))
}

func TestWithLogging_NeverLogsToken(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "debug")
	require.NoError(t, err)

	rt := Chain(&terminal{}, WithRequestID(), WithBearerToken(staticToken("super-secret")), WithLogging(logger))
	_, err = rt.RoundTrip(newRequest(t))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=\"request done\"")
	assert.Contains(t, out, "path=/api/metrics")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "request_id=")
	assert.NotContains(t, out, "super-secret")
}
