package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/lawcite/etree"
	lawjson "github.com/fwojciec/lawcite/json"
	"github.com/fwojciec/lawcite/search"
	lawslog "github.com/fwojciec/lawcite/slog"
	"github.com/fwojciec/lawcite/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened only when the search command asks for one.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lawcite"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lawcite --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from kong, not from args[0]: root-level
	// flags like -v may precede the command name.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	// Wire core services into dependencies
	deps.Catalog = lawjson.NewCatalogService()
	docParser := etree.NewParser()
	deps.Searcher = &search.Searcher{Parser: docParser}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Catalog = lawslog.NewLoggingCatalogService(deps.Catalog, logger)
		deps.Searcher.Parser = lawslog.NewLoggingParser(docParser, logger)
	}

	// Wire command-specific dependencies based on command
	if cmd == "search" {
		deps.Reports = lawjson.NewReportWriter(cli.Search.Output)

		if cli.Search.DB != "" {
			m.DB = sqlite.NewDB(cli.Search.DB)
			if err := m.DB.Open(); err != nil {
				return fmt.Errorf("failed to open database at %q: %w", cli.Search.DB, err)
			}
			deps.DB = m.DB
			deps.Searcher.Matches = sqlite.NewMatchService(m.DB)
		}
	}

	return kongCtx.Run(deps)
}
