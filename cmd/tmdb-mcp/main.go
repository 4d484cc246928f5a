package main

import (
	"fmt"
	"os"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/vadimtrunov/tmdb-mcp/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errToolFailed) {
			fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tmdb-mcp",
		Short: "TMDb tools for MCP clients",
		Long: "tmdb-mcp exposes The Movie Database API as a set of MCP tools.\n" +
			"Run it over stdio for an MCP host, call tools from the shell, or serve them through Telegram.",
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to configuration file")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(),
		newToolsCmd(),
		newCallCmd(),
		newBotCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tmdb-mcp v%s\n", version)
		},
	}
}
