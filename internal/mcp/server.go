package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"github.com/go-faster/errors"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vadimtrunov/tmdb-mcp/internal/catalog"
	"github.com/vadimtrunov/tmdb-mcp/internal/metadata/tmdb"
)

// Server wraps an MCP SDK server with one tool per catalog entry.
type Server struct {
	server *mcpsdk.Server
	table  *catalog.Table
	logger *slog.Logger
}

// NewServer creates an MCP server with every catalog tool registered.
func NewServer(table *catalog.Table, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "tmdb",
			Version: version,
		},
		&mcpsdk.ServerOptions{Logger: logger},
	)

	srv := &Server{server: s, table: table, logger: logger}
	srv.registerTools()
	return srv
}

// ServeStdio runs the MCP server over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcpsdk.StdioTransport{})
}

// MCPServer returns the underlying MCP SDK server (for testing).
func (s *Server) MCPServer() *mcpsdk.Server {
	return s.server
}

func (s *Server) registerTools() {
	for _, spec := range s.table.Specs() {
		s.server.AddTool(toolFor(spec), s.handler(spec.Name))
	}
}

// toolFor derives the MCP tool definition from a catalog entry.
// Every argument is a string; enum sets are described rather than enforced
// so that out-of-set values still reach the default substitution.
func toolFor(spec catalog.Spec) *mcpsdk.Tool {
	props := make(map[string]any, len(spec.Params))
	required := []any{}
	for _, p := range spec.Params {
		prop := map[string]any{
			"type":        "string",
			"description": p.Description,
		}
		if !p.Required {
			prop["default"] = p.Default
		}
		props[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	return &mcpsdk.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		InputSchema: schema,
	}
}

func (s *Server) handler(name string) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		args, err := stringArgs(req.Params.Arguments)
		if err != nil {
			return toolResult(tmdb.ValidationError(err.Error())), nil
		}
		return toolResult(s.table.Invoke(ctx, name, args)), nil
	}
}

// toolResult returns the outcome's JSON text as the single content block.
func toolResult(out tmdb.Outcome) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: out.String()}},
		IsError: out.Failed(),
	}
}

// stringArgs converts raw JSON arguments to strings. Strings are unquoted,
// numbers and booleans keep their literal text, null means absent and
// objects or arrays become compact JSON.
func stringArgs(raw json.RawMessage) (catalog.Args, error) {
	args := catalog.Args{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return args, nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errors.Wrap(err, "invalid arguments")
	}

	for k, v := range m {
		v = bytes.TrimSpace(v)
		switch {
		case bytes.Equal(v, []byte("null")):
			continue
		case len(v) > 0 && v[0] == '"':
			var str string
			if err := json.Unmarshal(v, &str); err != nil {
				return nil, errors.Wrapf(err, "argument %s", k)
			}
			args[k] = str
		case len(v) > 0 && (v[0] == '{' || v[0] == '['):
			var buf bytes.Buffer
			if err := json.Compact(&buf, v); err != nil {
				return nil, errors.Wrapf(err, "argument %s", k)
			}
			args[k] = buf.String()
		default:
			args[k] = string(v)
		}
	}
	return args, nil
}
