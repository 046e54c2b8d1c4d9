package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/lawcite"
	"github.com/fwojciec/lawcite/search"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	matcher := &lawcite.Matcher{Words: c.Word, RequireAll: c.All}
	if err := matcher.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcite.ErrorMessage(err))
		return err
	}

	records, err := deps.Catalog.LoadCatalog(deps.Ctx, c.Manifest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcite.ErrorMessage(err))
		return err
	}

	deps.Searcher.Concurrency = c.Concurrency
	deps.Searcher.FailFast = c.FailFast

	progress := func(event search.ProgressEvent) {
		switch event.Type {
		case search.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Searching %d laws\n", event.Total)
		case search.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.LawID, event.Error)
		case search.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	report, err := deps.Searcher.Search(deps.Ctx, c.Corpus, records, matcher, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcite.ErrorMessage(err))
		return err
	}

	if err := deps.Reports.WriteReport(deps.Ctx, report); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcite.ErrorMessage(err))
		return err
	}

	matches := 0
	for _, law := range report.Laws {
		matches += len(law.Matches)
	}
	fmt.Fprintf(deps.Stdout, "Matched %d provisions in %d laws (%d of %d documents failed)\n",
		matches, len(report.Laws), len(report.Failures), len(records))
	if len(report.UnmatchedWords) > 0 {
		fmt.Fprintf(deps.Stdout, "Not found anywhere: %s\n", strings.Join(report.UnmatchedWords, ", "))
	}

	return nil
}
