package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vadimtrunov/tmdb-mcp/internal/catalog"
)

// newToolsCmd returns the "tools" subcommand that lists every tool.
func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List available tools",
		Run: func(cmd *cobra.Command, _ []string) {
			printTools(cmd.OutOrStdout(), catalog.Tools())
		},
	}
}

func printTools(w io.Writer, specs []catalog.Spec) {
	fmt.Fprintln(w, styleHeader.Render(fmt.Sprintf("Tools (%d)", len(specs))))
	for _, spec := range specs {
		printTool(w, spec)
	}
}

func printTool(w io.Writer, spec catalog.Spec) {
	fmt.Fprintf(w, "%s %s\n", styleName.Render(spec.Name), styleDim.Render("GET "+spec.Path))
	fmt.Fprintf(w, "   %s\n", spec.Description)
	for _, p := range spec.Params {
		fmt.Fprintf(w, "   %s  %s\n", paramLabel(p), styleDim.Render(p.Description))
	}
	fmt.Fprintln(w)
}

// paramLabel renders a parameter name with its required marker or default.
func paramLabel(p catalog.Param) string {
	if p.Required {
		return styleInfo.Render(p.Name) + styleError.Render("*")
	}
	if p.Default == "" {
		return styleInfo.Render(p.Name)
	}
	return styleInfo.Render(p.Name) + styleDim.Render("="+p.Default)
}
