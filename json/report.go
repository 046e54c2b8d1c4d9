package json

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/lawcite"
)

// Ensure ReportWriter implements lawcite.ReportWriter.
var _ lawcite.ReportWriter = (*ReportWriter)(nil)

// ReportWriter serializes a search report as indented JSON at a fixed
// path. The encoding is deterministic: identical reports produce
// byte-identical files.
type ReportWriter struct {
	path string
}

// NewReportWriter creates a ReportWriter that writes to path.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{path: path}
}

// WriteReport writes the report, creating parent directories as needed.
// Laws and matches are emitted exactly in the order the report holds
// them; no field is dropped or reordered.
func (w *ReportWriter) WriteReport(ctx context.Context, report *lawcite.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return lawcite.Errorf(lawcite.EINTERNAL, "encoding report: %v", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return lawcite.Errorf(lawcite.EINTERNAL, "creating report directory %q: %v", dir, err)
		}
	}
	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return lawcite.Errorf(lawcite.EINTERNAL, "writing report %q: %v", w.path, err)
	}
	return nil
}
