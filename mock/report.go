package mock

import (
	"context"

	"github.com/fwojciec/lawcite"
)

var _ lawcite.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of lawcite.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, report *lawcite.Report) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, report *lawcite.Report) error {
	return w.WriteReportFn(ctx, report)
}

var _ lawcite.MatchService = (*MatchService)(nil)

// MatchService is a mock implementation of lawcite.MatchService.
type MatchService struct {
	SaveReportFn       func(ctx context.Context, report *lawcite.Report) error
	FindMatchesByLawFn func(ctx context.Context, lawID string) ([]lawcite.Match, error)
}

func (s *MatchService) SaveReport(ctx context.Context, report *lawcite.Report) error {
	return s.SaveReportFn(ctx, report)
}

func (s *MatchService) FindMatchesByLaw(ctx context.Context, lawID string) ([]lawcite.Match, error) {
	return s.FindMatchesByLawFn(ctx, lawID)
}
