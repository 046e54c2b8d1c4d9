package main

import (
	"fmt"

	"github.com/fwojciec/lawcite"
)

// Run executes the laws command.
func (c *LawsCmd) Run(deps *Dependencies) error {
	records, err := deps.Catalog.LoadCatalog(deps.Ctx, c.Manifest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcite.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "Manifest lists no laws.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.LawID, r.Title, r.FileName)
	}

	return nil
}
