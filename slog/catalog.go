package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lawcite"
)

// Ensure LoggingCatalogService implements lawcite.CatalogService.
var _ lawcite.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with debug logging.
type LoggingCatalogService struct {
	next   lawcite.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next lawcite.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

// LoadCatalog delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) LoadCatalog(ctx context.Context, path string) (records []*lawcite.LawRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load catalog",
			"path", path,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadCatalog(ctx, path)
}
