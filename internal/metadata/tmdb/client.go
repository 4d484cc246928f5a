package tmdb

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/vadimtrunov/tmdb-mcp/internal/httpclient"
)

const (
	// DefaultBaseURL is the TMDb API v3 root.
	DefaultBaseURL = "https://api.themoviedb.org/3"
	requestTimeout = 10 * time.Second
	apiKeyParam    = "api_key"

	missingKeyMsg = "TMDB_API_KEY not set"
)

// Client is a pass-through TMDb API v3 client.
// It holds no cross-call state and is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *httpclient.Client
	logger  *slog.Logger
}

// New creates a new TMDb client. An empty baseURL selects DefaultBaseURL;
// trailing slashes are dropped.
// An empty apiKey is accepted; every Fetch then reports a config error.
func New(apiKey, baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cfg := httpclient.DefaultConfig()
	cfg.Timeout = requestTimeout
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpclient.New(cfg, logger),
		logger:  logger,
	}
}

// NewForTest creates a TMDb client with a custom base URL for testing.
// Exported because it is used by cross-package tests (e.g. internal/mcp).
func NewForTest(baseURL string, logger *slog.Logger) *Client {
	return New("test-key", baseURL, logger)
}

// HasAPIKey reports whether a credential is configured.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// Fetch performs one authenticated GET against path and normalizes the result.
// It never returns a Go error: every failure is encoded in the Outcome.
func (c *Client) Fetch(ctx context.Context, path string, params url.Values) Outcome {
	if c.apiKey == "" {
		return ConfigError(missingKeyMsg)
	}

	body, status, err := c.get(ctx, path, params)
	if err != nil {
		c.logger.Debug("tmdb request failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return TransportError(err.Error())
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return UpstreamError(status)
	}

	pretty, err := indentBody(body)
	if err != nil {
		return TransportError(err.Error())
	}
	return Success(pretty)
}

// get performs an authenticated GET request to the TMDb API and returns the raw body.
// The body is only read for 2xx responses.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, int, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, 0, errors.Wrap(err, "invalid URL")
	}

	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set(apiKeyParam, c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, 0, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, resp.StatusCode, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "read response")
	}
	return body, resp.StatusCode, nil
}
