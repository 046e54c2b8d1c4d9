// Package json provides JSON-backed implementations of the lawcite
// catalog and report services: the corpus manifest is a JSON array of law
// records, and the search report is written as a single JSON artifact.
package json

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/fwojciec/lawcite"
)

// Ensure CatalogService implements lawcite.CatalogService.
var _ lawcite.CatalogService = (*CatalogService)(nil)

// CatalogService loads law records from a JSON manifest file.
type CatalogService struct{}

// NewCatalogService creates a new CatalogService.
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// LoadCatalog reads the manifest at path. Records come back in manifest
// order. Malformed entries do not cause a partial silent skip: every
// invalid entry is itemized in a single EINVALID error.
func (s *CatalogService) LoadCatalog(ctx context.Context, path string) ([]*lawcite.LawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, lawcite.Errorf(lawcite.ENOTFOUND, "manifest %q not found", path)
		}
		return nil, lawcite.Errorf(lawcite.EINTERNAL, "reading manifest %q: %v", path, err)
	}

	var records []*lawcite.LawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, lawcite.Errorf(lawcite.EINVALID, "manifest %q is not a JSON law list: %v", path, err)
	}

	var problems []string
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		// A JSON null decodes to a nil record.
		if rec == nil {
			problems = append(problems, lawcite.Errorf(lawcite.EINVALID, "entry %d: null law record", i).Message)
			continue
		}
		if err := rec.Validate(); err != nil {
			problems = append(problems, lawcite.Errorf(lawcite.EINVALID, "entry %d: %s", i, lawcite.ErrorMessage(err)).Message)
			continue
		}
		if seen[rec.LawID] {
			return nil, lawcite.Errorf(lawcite.ECONFLICT, "manifest %q: duplicate law ID %q", path, rec.LawID)
		}
		seen[rec.LawID] = true
	}
	if len(problems) > 0 {
		return nil, lawcite.Errorf(lawcite.EINVALID, "manifest %q: %s", path, strings.Join(problems, "; "))
	}

	return records, nil
}
