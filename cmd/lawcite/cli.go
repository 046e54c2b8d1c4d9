package main

import (
	"context"
	"io"

	"github.com/fwojciec/lawcite"
	"github.com/fwojciec/lawcite/search"
	"github.com/fwojciec/lawcite/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Catalog  lawcite.CatalogService
	Reports  lawcite.ReportWriter
	Searcher *search.Searcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service operations to stderr"`

	Search SearchCmd `cmd:"" help:"Search the corpus and write a match report"`
	Laws   LawsCmd   `cmd:"" help:"List the laws in a corpus manifest"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Output      string   `short:"o" required:"" help:"Path of the JSON report to write"`
	Corpus      string   `short:"w" required:"" help:"Directory holding the law XML files"`
	Manifest    string   `short:"i" required:"" help:"Path of the JSON manifest listing the laws"`
	Word        []string `short:"s" required:"" help:"Search word (repeatable)"`
	All         bool     `help:"Report a provision only when it contains every search word"`
	FailFast    bool     `help:"Abort on the first document failure"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent document limit"`
	DB          string   `help:"Optional SQLite database to also store matches in"`
}

// LawsCmd is the "laws" subcommand.
type LawsCmd struct {
	Manifest string `arg:"" help:"Path of the JSON manifest"`
}
