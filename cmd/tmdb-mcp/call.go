package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/vadimtrunov/tmdb-mcp/internal/catalog"
	"github.com/vadimtrunov/tmdb-mcp/internal/config"
	"github.com/vadimtrunov/tmdb-mcp/internal/metadata/tmdb"
)

// errToolFailed makes the process exit non-zero once the failure JSON is printed.
var errToolFailed = errors.New("tool call failed")

func newCallCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "call <tool> [key=value | text ...]",
		Short: "Invoke one tool and print its JSON result",
		Long: "Invoke a tool once. Arguments are key=value pairs for declared parameters;\n" +
			"any other words are joined into the tool's first parameter.",
		Example: `  tmdb-mcp call search_movies the dark knight
  tmdb-mcp call get_trending media_type=tv time_window=week
  tmdb-mcp call discover_movies '{"with_genres":"18"}' --raw`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd.OutOrStdout(), args[0], args[1:], raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the JSON without the spinner or colors")
	return cmd
}

func runCall(w io.Writer, name string, tokens []string, raw bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App)
	table := newTable(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	args := argsFor(table, name, tokens)

	if raw {
		out := table.Invoke(ctx, name, args)
		fmt.Fprintln(w, out.String())
		return callResult(out)
	}

	p := tea.NewProgram(newCallModel(ctx, table, name, args), tea.WithOutput(w))
	m, err := p.Run()
	if err != nil {
		return errors.Wrap(err, "run call")
	}

	cm, ok := m.(callModel)
	if !ok {
		return errors.New("unexpected model type from tea program")
	}
	if !cm.done {
		return context.Canceled
	}
	return callResult(cm.out)
}

// argsFor parses tokens against the tool's parameters. Unknown tools get
// no arguments and are reported by the table.
func argsFor(table *catalog.Table, name string, tokens []string) catalog.Args {
	spec, ok := table.Lookup(name)
	if !ok {
		return catalog.Args{}
	}
	return catalog.ParseArgs(spec, tokens)
}

func callResult(out tmdb.Outcome) error {
	if out.Failed() {
		return errToolFailed
	}
	return nil
}

// callResultMsg carries the tool outcome back to the TUI.
type callResultMsg struct {
	out tmdb.Outcome
}

type callModel struct {
	ctx     context.Context
	table   *catalog.Table
	name    string
	args    catalog.Args
	spinner spinner.Model
	out     tmdb.Outcome
	done    bool
}

func newCallModel(ctx context.Context, table *catalog.Table, name string, args catalog.Args) callModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleInfo
	return callModel{
		ctx:     ctx,
		table:   table,
		name:    name,
		args:    args,
		spinner: s,
	}
}

func (m callModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.invoke())
}

func (m callModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case callResultMsg:
		m.out = msg.out
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m callModel) View() string {
	if m.done {
		return outcomeStyle(m.out.Kind).Render(m.out.String()) + "\n"
	}
	return m.spinner.View() + styleDim.Render(" Calling "+m.name+"...") + "\n"
}

func (m callModel) invoke() tea.Cmd {
	return func() tea.Msg {
		return callResultMsg{out: m.table.Invoke(m.ctx, m.name, m.args)}
	}
}
