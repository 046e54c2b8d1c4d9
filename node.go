package lawcite

import "io"

// Role identifies the structural role of a node in a parsed law document.
type Role string

// Roles, ordered from coarsest to finest subdivision. RoleSupplProvision
// is a sibling of the main provision body: its Number carries the
// amendment law number label when the document provides one.
const (
	RoleLaw            Role = "law"
	RoleSupplProvision Role = "suppl_provision"
	RolePart           Role = "part"
	RoleChapter        Role = "chapter"
	RoleSection        Role = "section"
	RoleSubsection     Role = "subsection"
	RoleDivision       Role = "division"
	RoleArticle        Role = "article"
	RoleParagraph      Role = "paragraph"
	RoleItem           Role = "item"
	RoleSubItem        Role = "sub_item"
	RoleSentence       Role = "sentence"
)

// Node is one element of a parsed law document tree. A node is either a
// structural container (non-empty Children, empty Text) or a text leaf
// (empty Children, Text holds the searchable content), never both.
type Node struct {
	Role Role

	// Human-facing label: article number ("12"), paragraph number ("2"),
	// ordinal for unnumbered structural roles. Empty when absent.
	Number string

	// Nesting depth for RoleSubItem (1-7); zero for every other role.
	Depth int

	// Children in document order. Order is semantically significant:
	// citation numbering depends on it.
	Children []*Node

	// Literal text content; present only on leaves.
	Text string
}

// Validate returns an error if the node violates the container/leaf
// invariant. It does not recurse; the parser validates nodes as it
// builds them.
func (n *Node) Validate() error {
	if len(n.Children) > 0 && n.Text != "" {
		return Errorf(EINVALID, "node %s is both a container and a text leaf", n.Role)
	}
	if n.Role == RoleSentence && len(n.Children) > 0 {
		return Errorf(EINVALID, "sentence node cannot have children")
	}
	if n.Role != RoleSubItem && n.Depth != 0 {
		return Errorf(EINVALID, "node %s cannot carry a sub-item depth", n.Role)
	}
	return nil
}

// IsLeaf reports whether the node is a text leaf.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0 && n.Role == RoleSentence
}

// CountLeaves returns the number of text leaves in the subtree rooted at n.
func (n *Node) CountLeaves() int {
	if n.IsLeaf() {
		return 1
	}
	count := 0
	for _, child := range n.Children {
		count += child.CountLeaves()
	}
	return count
}

// Parser converts one structured law document into a node tree rooted at
// a RoleLaw node.
type Parser interface {
	// Parse builds the document tree. Returns EINVALID when the input is
	// not well-formed XML, contains an element outside the expected
	// structural schema, or holds no searchable content at all.
	Parse(r io.Reader) (*Node, error)
}
