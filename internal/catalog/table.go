package catalog

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/vadimtrunov/tmdb-mcp/internal/metadata/tmdb"
)

const meterName = "github.com/vadimtrunov/tmdb-mcp/internal/catalog"

// Fetcher performs one upstream GET. *tmdb.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, path string, params url.Values) tmdb.Outcome
}

// Table dispatches tool calls to a Fetcher. It is read-only after construction.
type Table struct {
	specs   []Spec
	index   map[string]int
	fetcher Fetcher
	logger  *slog.Logger
	calls   metric.Int64Counter
}

// NewTable creates a Table serving every tool returned by Tools.
func NewTable(fetcher Fetcher, logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default()
	}

	specs := Tools()
	index := make(map[string]int, len(specs))
	for i, s := range specs {
		index[s.Name] = i
	}

	calls, err := otel.Meter(meterName).Int64Counter("tmdb_mcp.tool.calls",
		metric.WithDescription("Tool calls by tool name and outcome"),
	)
	if err != nil {
		logger.Warn("tool call counter unavailable", slog.String("error", err.Error()))
		calls = noop.Int64Counter{}
	}

	return &Table{
		specs:   specs,
		index:   index,
		fetcher: fetcher,
		logger:  logger,
		calls:   calls,
	}
}

// Specs returns the tool descriptors in registration order.
func (t *Table) Specs() []Spec {
	return t.specs
}

// Lookup returns the tool with the given name.
func (t *Table) Lookup(name string) (Spec, bool) {
	i, ok := t.index[name]
	if !ok {
		return Spec{}, false
	}
	return t.specs[i], true
}

// Call invokes a tool and returns its JSON result text.
func (t *Table) Call(ctx context.Context, name string, raw Args) string {
	return t.Invoke(ctx, name, raw).String()
}

// Invoke validates raw arguments, builds the request and delegates to the Fetcher.
// Validation failures are returned without touching the network.
func (t *Table) Invoke(ctx context.Context, name string, raw Args) tmdb.Outcome {
	spec, ok := t.Lookup(name)
	if !ok {
		out := tmdb.ValidationError("Unknown tool: " + name)
		t.record(ctx, name, out)
		return out
	}

	args := spec.normalize(raw)
	t.logger.Info("tool call",
		slog.String("tool", spec.Name),
		slog.String(spec.LogArg, args[spec.LogArg]),
		slog.String("call_id", uuid.New().String()),
	)

	out := t.dispatch(ctx, spec, args)
	t.record(ctx, spec.Name, out)
	return out
}

func (t *Table) dispatch(ctx context.Context, spec Spec, args Args) tmdb.Outcome {
	if p, missing := spec.missing(args); missing {
		return tmdb.ValidationError(p.Label + " is required")
	}

	query, err := spec.BuildQuery(args)
	if err != nil {
		if errors.Is(err, errInvalidFilters) {
			t.logger.Debug("rejected filters",
				slog.String("tool", spec.Name),
				slog.String("error", err.Error()),
			)
			return tmdb.ValidationError(errInvalidFilters.Error())
		}
		return tmdb.ValidationError(err.Error())
	}

	return t.fetcher.Fetch(ctx, spec.BuildPath(args), query)
}

func (t *Table) record(ctx context.Context, name string, out tmdb.Outcome) {
	t.calls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", name),
		attribute.String("outcome", out.Kind.String()),
	))
}
