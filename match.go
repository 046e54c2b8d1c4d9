package lawcite

import "strings"

// excerptLimit caps match excerpts, in runes.
const excerptLimit = 160

// Matcher holds the search word set. The zero value is invalid; Words
// must contain at least one non-empty word.
type Matcher struct {
	// Words to search for, in caller-supplied order. Order does not
	// affect matching, only reporting.
	Words []string

	// RequireAll switches provision matching from OR semantics (any word
	// present) to AND semantics (every word present).
	RequireAll bool
}

// Validate returns an error if the matcher has nothing to search for.
func (m *Matcher) Validate() error {
	if len(m.Words) == 0 {
		return Errorf(EINVALID, "at least one search word required")
	}
	for _, w := range m.Words {
		if w == "" {
			return Errorf(EINVALID, "search words cannot be empty")
		}
	}
	return nil
}

// Find returns the subset of the search words that occur in text, in
// Words order. Matching is literal, case-sensitive substring containment
// on the raw encoded text: a word occurring inside a larger compound term
// still counts, and no Unicode normalization is performed. A word
// repeated in Words is reported once.
func (m *Matcher) Find(text string) []string {
	if text == "" {
		return nil
	}
	var found []string
	for _, w := range m.Words {
		if strings.Contains(text, w) {
			found = mergeWords(found, []string{w})
		}
	}
	return found
}

// Matched reports whether a provision with the given found words should
// be recorded, honoring RequireAll.
func (m *Matcher) Matched(found []string) bool {
	if m.RequireAll {
		return len(found) == len(mergeWords(nil, m.Words))
	}
	return len(found) > 0
}

// Match is one reported occurrence of the search words within a specific
// provision. Structural numbers above the article are ordinals assigned in
// document order when the source carries no explicit numbering.
type Match struct {
	Part       string `json:"part,omitempty"`
	Chapter    string `json:"chapter,omitempty"`
	Section    string `json:"section,omitempty"`
	Subsection string `json:"subsection,omitempty"`
	Division   string `json:"division,omitempty"`

	Article   string `json:"article"`
	Paragraph string `json:"paragraph,omitempty"`
	Item      string `json:"item,omitempty"`

	SubItemDepth int    `json:"sub_item_depth,omitempty"`
	SubItem      string `json:"sub_item,omitempty"`

	SupplProvision      bool   `json:"suppl_provision,omitempty"`
	SupplProvisionTitle string `json:"suppl_provision_title,omitempty"`

	// Search words found in the provision, in search order.
	Words []string `json:"words"`

	// Leading fragment of the first matching leaf's text.
	Excerpt string `json:"excerpt,omitempty"`
}

// newMatch builds a match record from the walker's position.
func newMatch(path CitationPath, words []string, text string) Match {
	depth, subItem := path.SubItem()
	return Match{
		Part:                path.Number(RolePart),
		Chapter:             path.Number(RoleChapter),
		Section:             path.Number(RoleSection),
		Subsection:          path.Number(RoleSubsection),
		Division:            path.Number(RoleDivision),
		Article:             path.Number(RoleArticle),
		Paragraph:           path.Number(RoleParagraph),
		Item:                path.Number(RoleItem),
		SubItemDepth:        depth,
		SubItem:             subItem,
		SupplProvision:      path.inSupplProvision(),
		SupplProvisionTitle: path.Number(RoleSupplProvision),
		Words:               words,
		Excerpt:             excerpt(text),
	}
}

func (p CitationPath) inSupplProvision() bool {
	for _, e := range p {
		if e.Role == RoleSupplProvision {
			return true
		}
	}
	return false
}

// SameProvision reports whether two matches cite the same provision,
// i.e. agree on every citation field.
func (m *Match) SameProvision(other *Match) bool {
	return m.Part == other.Part &&
		m.Chapter == other.Chapter &&
		m.Section == other.Section &&
		m.Subsection == other.Subsection &&
		m.Division == other.Division &&
		m.Article == other.Article &&
		m.Paragraph == other.Paragraph &&
		m.Item == other.Item &&
		m.SubItemDepth == other.SubItemDepth &&
		m.SubItem == other.SubItem &&
		m.SupplProvision == other.SupplProvision &&
		m.SupplProvisionTitle == other.SupplProvisionTitle
}

// Collect walks a parsed document and returns its match records in
// traversal (i.e. document) order. Consecutive leaves belonging to the
// same provision merge into a single record with a union of their found
// words; distinct provisions never merge. The leaves of one provision are
// contiguous in document order, so merging adjacent records is complete
// deduplication at provision granularity.
func Collect(root *Node, m *Matcher) ([]Match, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	// Leaves are first merged per provision; RequireAll is applied to the
	// merged word set, so words spread across the sentences of one
	// provision still satisfy AND semantics.
	var merged []Match
	err := Walk(root, func(path CitationPath, text string) error {
		found := m.Find(text)
		if len(found) == 0 {
			return nil
		}
		rec := newMatch(path, found, text)
		if n := len(merged); n > 0 && merged[n-1].SameProvision(&rec) {
			merged[n-1].Words = mergeWords(merged[n-1].Words, rec.Words)
			return nil
		}
		merged = append(merged, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var matches []Match
	for _, rec := range merged {
		if m.Matched(rec.Words) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// mergeWords unions two found-word lists, preserving first-seen order.
func mergeWords(a, b []string) []string {
	for _, w := range b {
		seen := false
		for _, existing := range a {
			if existing == w {
				seen = true
				break
			}
		}
		if !seen {
			a = append(a, w)
		}
	}
	return a
}

// excerpt truncates leaf text for inclusion in a match record.
func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLimit {
		return text
	}
	return string(runes[:excerptLimit]) + "…"
}
