package lawcite

import "context"

// LawResult holds the match records for one law, in document order.
type LawResult struct {
	// Identifier and title from the manifest.
	LawID string `json:"id"`
	Title string `json:"name"`

	// Law number as stated by the document itself (LawNum element).
	LawNum string `json:"law_num,omitempty"`

	// xxHash of the raw document bytes, hex-encoded.
	ContentHash string `json:"content_hash,omitempty"`

	Matches []Match `json:"matches"`
}

// Failure records a document that could not be processed. Failures are
// reported alongside successful results, never silently dropped.
type Failure struct {
	LawID    string `json:"id"`
	FileName string `json:"file"`
	Err      string `json:"error"`
}

// Report is the complete outcome of one search run. Laws appear in
// manifest order and contain only laws with at least one match. The
// report carries no timestamps: identical inputs produce byte-identical
// serialized reports.
type Report struct {
	// Search words as supplied by the caller.
	Words []string `json:"words"`

	// True when AND semantics were requested.
	RequireAll bool `json:"require_all,omitempty"`

	Laws     []*LawResult `json:"laws"`
	Failures []*Failure   `json:"failures,omitempty"`

	// Search words that matched nowhere in the corpus, in search order.
	UnmatchedWords []string `json:"unmatched_words,omitempty"`
}

// Unmatched returns the subset of words that occur in none of the given
// results, in the order supplied.
func Unmatched(words []string, laws []*LawResult) []string {
	seen := make(map[string]bool)
	for _, law := range laws {
		for _, match := range law.Matches {
			for _, w := range match.Words {
				seen[w] = true
			}
		}
	}

	var unmatched []string
	for _, w := range words {
		if !seen[w] {
			unmatched = append(unmatched, w)
		}
	}
	return unmatched
}

// ReportWriter serializes a report to its destination.
type ReportWriter interface {
	// WriteReport writes the report. The encoding is lossless: every
	// match record field survives a round trip.
	WriteReport(ctx context.Context, report *Report) error
}

// MatchService persists the matches of a run so that the provisions they
// cite can be re-queried later.
type MatchService interface {
	// SaveReport stores every law result and match record in the report.
	SaveReport(ctx context.Context, report *Report) error

	// FindMatchesByLaw retrieves stored matches for one law in document
	// order. Returns ENOTFOUND if the law has no stored matches.
	FindMatchesByLaw(ctx context.Context, lawID string) ([]Match, error)
}
