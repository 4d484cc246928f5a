package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vadimtrunov/tmdb-mcp/internal/config"
	mcpserver "github.com/vadimtrunov/tmdb-mcp/internal/mcp"
)

// newServeCmd returns the "serve" subcommand. It runs the MCP server over
// stdin/stdout until the host closes the stream or a signal arrives.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App)
	srv := mcpserver.NewServer(newTable(cfg, logger), version, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("mcp server starting", slog.String("version", version))
	if err := srv.ServeStdio(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("mcp server stopped")
	return nil
}
