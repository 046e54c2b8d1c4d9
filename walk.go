package lawcite

// CitationEntry is one numbered ancestor on the path from the law root
// down to the current node.
type CitationEntry struct {
	Role   Role
	Number string
	Depth  int // sub-item depth; zero otherwise
}

// CitationPath is the ordered chain of numbered ancestors identifying the
// walker's current position. It is owned by a single traversal and never
// shared across documents.
type CitationPath []CitationEntry

// Number returns the number of the deepest entry with the given role, or
// "" if the role is not on the path.
func (p CitationPath) Number(role Role) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Role == role {
			return p[i].Number
		}
	}
	return ""
}

// SubItem returns the depth and number of the deepest sub-item entry, or
// (0, "") if none is on the path.
func (p CitationPath) SubItem() (int, string) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Role == RoleSubItem {
			return p[i].Depth, p[i].Number
		}
	}
	return 0, ""
}

// Clone returns an independent copy of the path. Visit callbacks that
// retain the path beyond the callback must clone it: the walker reuses
// the backing array.
func (p CitationPath) Clone() CitationPath {
	out := make(CitationPath, len(p))
	copy(out, p)
	return out
}

// VisitFunc is called once per text leaf with the citation path at the
// moment the leaf is reached and the leaf's text. Returning an error
// aborts the traversal.
type VisitFunc func(path CitationPath, text string) error

// Walk traverses the tree depth-first in document order, maintaining a
// citation path: an entry is pushed when a numbered node is entered and
// popped after its subtree is done, so no entry leaks into a sibling's
// traversal. Every node is visited exactly once; visit is invoked for
// every text leaf, including leaves with empty text.
func Walk(root *Node, visit VisitFunc) error {
	path := make(CitationPath, 0, 8)
	return walk(root, path, visit)
}

func walk(n *Node, path CitationPath, visit VisitFunc) error {
	// Suppl provisions are pushed even without a label so that matches
	// inside them are never confused with main-provision articles.
	if n.Number != "" || n.Role == RoleSupplProvision {
		path = append(path, CitationEntry{Role: n.Role, Number: n.Number, Depth: n.Depth})
	}

	if n.IsLeaf() {
		return visit(path, n.Text)
	}

	for _, child := range n.Children {
		if err := walk(child, path, visit); err != nil {
			return err
		}
	}
	return nil
}
