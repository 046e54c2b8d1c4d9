package lawcite

import "context"

// LawRecord identifies one law in the corpus manifest. Records are loaded
// once at startup and read-only afterwards.
type LawRecord struct {
	// Official law identifier (e.g. the 法令番号), unique within a manifest.
	LawID string `json:"id"`

	// Human-readable law title.
	Title string `json:"name"`

	// File name of the law document, relative to the corpus root.
	FileName string `json:"file"`
}

// Validate returns an error if the record is missing required fields.
func (r *LawRecord) Validate() error {
	if r.LawID == "" {
		return Errorf(EINVALID, "law record ID required")
	}
	if r.Title == "" {
		return Errorf(EINVALID, "law record title required")
	}
	if r.FileName == "" {
		return Errorf(EINVALID, "law record file name required")
	}
	return nil
}

// CatalogService loads the corpus manifest.
type CatalogService interface {
	// LoadCatalog reads law records from the manifest at path, in manifest
	// order. Returns EINVALID for malformed entries (every bad entry is
	// itemized in the message) and ECONFLICT for duplicate law IDs.
	LoadCatalog(ctx context.Context, path string) ([]*LawRecord, error)
}
