package main

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-faster/errors"

	"github.com/vadimtrunov/tmdb-mcp/internal/catalog"
	"github.com/vadimtrunov/tmdb-mcp/internal/config"
	"github.com/vadimtrunov/tmdb-mcp/internal/metadata/tmdb"
)

// Lipgloss styles used across commands.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray

	styleName = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true) // cyan bold

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5")).
			MarginBottom(1)
)

// loadConfig loads and validates the configuration file.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return cfg, nil
}

// newTable builds the TMDb gateway and the tool table on top of it.
func newTable(cfg *config.Config, logger *slog.Logger) *catalog.Table {
	client := tmdb.New(cfg.TMDb.APIKey, cfg.TMDb.BaseURL, logger)
	if !client.HasAPIKey() {
		logger.Warn("TMDB_API_KEY not set, every tool call will report it")
	}
	return catalog.NewTable(client, logger)
}

// outcomeStyle colors a tool result by its kind.
func outcomeStyle(kind tmdb.Kind) lipgloss.Style {
	switch kind {
	case tmdb.KindSuccess:
		return styleSuccess
	case tmdb.KindValidationError, tmdb.KindConfigError:
		return styleWarn
	default:
		return styleError
	}
}
