package mock

import (
	"context"

	"github.com/fwojciec/lawcite"
)

var _ lawcite.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of lawcite.CatalogService.
type CatalogService struct {
	LoadCatalogFn func(ctx context.Context, path string) ([]*lawcite.LawRecord, error)
}

func (s *CatalogService) LoadCatalog(ctx context.Context, path string) ([]*lawcite.LawRecord, error) {
	return s.LoadCatalogFn(ctx, path)
}
