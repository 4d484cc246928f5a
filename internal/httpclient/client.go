package httpclient

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/vadimtrunov/tmdb-mcp/internal/httpclient"

// Config holds timeout configuration.
type Config struct {
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout: 10 * time.Second,
	}
}

// Client wraps http.Client with tracing and request logging.
// Every call to Do performs exactly one attempt.
type Client struct {
	http   *http.Client
	config Config
	logger *slog.Logger
	tracer trace.Tracer
}

// New creates a new Client with a default http.Client.
// Redirects are never followed: a 3xx response is returned to the caller as is.
func New(cfg Config, logger *slog.Logger) *Client {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return NewWithHTTPClient(cfg, httpClient, logger)
}

// NewWithHTTPClient creates a Client with a custom http.Client (e.g. a test transport).
func NewWithHTTPClient(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http:   httpClient,
		config: cfg,
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// Do executes an HTTP request once.
// Errors never include the request URL, since query strings may carry credentials.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx, span := c.tracer.Start(req.Context(), "HTTP "+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("server.address", req.URL.Host),
			attribute.String("url.path", req.URL.Path),
		),
	)
	defer span.End()
	req = req.WithContext(ctx)

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)

	if err != nil {
		err = stripURL(ctx, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Debug("request failed",
			slog.String("method", req.Method),
			slog.String("url", Redact(req.URL)),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, resp.Status)
	}
	c.logger.Debug("request completed",
		slog.String("method", req.Method),
		slog.String("url", Redact(req.URL)),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration),
	)
	return resp, nil
}

// stripURL unwraps *url.Error so the request URL does not leak into messages.
// Cancellation by the caller is reported as the context error.
func stripURL(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return ctx.Err()
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// Redact returns the URL without its query string, user info and fragment.
func Redact(u *url.URL) string {
	if u == nil {
		return ""
	}
	clean := *u
	clean.User = nil
	clean.RawQuery = ""
	clean.Fragment = ""
	return clean.String()
}
