package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/metricsdash/internal/client/models"
)

const (
	DefaultBaseURL = "http://localhost:3000"
	PathPrefix     = "/api"

	maxErrorBody = 64 << 10
)

type Client struct {
	baseURL string
	http    *http.Client
}

type options struct {
	transport   http.RoundTripper
	timeout     time.Duration
	middlewares []Middleware
}

type Option func(*options)

// WithTransport replaces http.DefaultTransport as the innermost transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// WithTimeout sets http.Client.Timeout. Zero keeps the default (no timeout).
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// Use appends middlewares; earlier ones see the request first.
func Use(mws ...Middleware) Option {
	return func(o *options) { o.middlewares = append(o.middlewares, mws...) }
}

// New builds a client for baseURL (DefaultBaseURL when empty). JSON
// content negotiation headers are always installed before the
// caller-supplied middlewares.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: want http(s)://host[:port]", baseURL)
	}

	o := &options{transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(o)
	}

	mws := append([]Middleware{
		WithHeader("Accept", "application/json"),
		WithHeader("Content-Type", "application/json"),
	}, o.middlewares...)

	return &Client{
		baseURL: strings.TrimRight(u.String(), "/") + PathPrefix,
		http: &http.Client{
			Transport: Chain(o.transport, mws...),
			Timeout:   o.timeout,
		},
	}, nil
}

// BaseURL returns the resolved origin plus the API prefix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account. name may be empty.
func (c *Client) Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	req := registerRequest{Email: email, Password: password, Name: name}
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	req := loginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetMetrics(ctx context.Context) ([]models.Metric, error) {
	var out []models.Metric
	if err := c.do(ctx, http.MethodGet, "/metrics", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMetricsByCategory lists the metrics the backend files under category.
func (c *Client) GetMetricsByCategory(ctx context.Context, category string) ([]models.Metric, error) {
	if category == "" {
		return nil, errors.New("category is required")
	}
	var out []models.Metric
	if err := c.do(ctx, http.MethodGet, "/metrics/"+url.PathEscape(category), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		if errors.Is(err, ErrTokenSource) {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
		return fmt.Errorf("%s %s: %w", method, path, errors.Join(ErrUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       PathPrefix + path,
			StatusCode: resp.StatusCode,
			Body:       bytes.TrimSpace(b),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
