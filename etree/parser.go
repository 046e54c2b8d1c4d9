// Package etree parses structured law XML into lawcite node trees using
// the beevik/etree library. The expected schema is the e-Gov law XML
// format: Law > LawBody > MainProvision with Part/Chapter/Section/
// Subsection/Division containers above Article > Paragraph > Item >
// SubItem1..SubItem7, Sentence leaves, and SupplProvision siblings for
// supplementary provisions.
package etree

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/lawcite"
)

// maxSubItemDepth matches the deepest sub-item level the schema defines.
const maxSubItemDepth = 7

// Ensure Parser implements lawcite.Parser.
var _ lawcite.Parser = (*Parser)(nil)

// Parser builds lawcite node trees from law XML documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads one law XML document and returns its node tree. The tree
// preserves document order exactly; an element outside the expected
// schema is an error, not a no-op, so provisions can never be dropped
// silently.
func (p *Parser) Parse(r io.Reader) (*lawcite.Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, lawcite.Errorf(lawcite.EINVALID, "malformed law XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, lawcite.Errorf(lawcite.EINVALID, "empty law document")
	}
	if root.Tag != "Law" {
		return nil, lawcite.Errorf(lawcite.EINVALID, "unexpected root element <%s>, want <Law>", root.Tag)
	}

	b := &builder{}
	law := &lawcite.Node{Role: lawcite.RoleLaw}
	if err := b.buildChildren(root, law); err != nil {
		return nil, err
	}
	law.Number = b.lawNum

	if law.CountLeaves() == 0 {
		return nil, lawcite.Errorf(lawcite.EINVALID, "law document has no text content")
	}

	return law, nil
}

// structuralTags maps container elements to their roles. Article and
// below carry a required Num attribute; the roles above it are numbered
// by ordinal counters, the way the documents themselves count them.
var structuralTags = map[string]lawcite.Role{
	"Part":           lawcite.RolePart,
	"Chapter":        lawcite.RoleChapter,
	"Section":        lawcite.RoleSection,
	"Subsection":     lawcite.RoleSubsection,
	"Division":       lawcite.RoleDivision,
	"Article":        lawcite.RoleArticle,
	"Paragraph":      lawcite.RoleParagraph,
	"Item":           lawcite.RoleItem,
	"SupplProvision": lawcite.RoleSupplProvision,
}

// wrapperTags are schema elements that group content without adding
// citation structure; the parser descends through them transparently.
var wrapperTags = map[string]bool{
	"LawBody":           true,
	"MainProvision":     true,
	"ParagraphSentence": true,
	"ItemSentence":      true,
	"Column":            true,
}

// leafTags are elements whose flattened text becomes a sentence leaf.
// Titles and captions are included: they are searchable text in the
// document even though they carry no citation numbers of their own.
var leafTags = map[string]bool{
	"Sentence":            true,
	"EnactStatement":      true,
	"LawTitle":            true,
	"PartTitle":           true,
	"ChapterTitle":        true,
	"SectionTitle":        true,
	"SubsectionTitle":     true,
	"DivisionTitle":       true,
	"ArticleTitle":        true,
	"ArticleCaption":      true,
	"ParagraphCaption":    true,
	"ParagraphNum":        true,
	"ItemTitle":           true,
	"SupplProvisionLabel": true,
}

// skipTags are known subtrees that hold no provisions: the table of
// contents and appended tables, styles, and figures.
var skipTags = map[string]bool{
	"TOC":         true,
	"Appdx":       true,
	"AppdxTable":  true,
	"AppdxStyle":  true,
	"AppdxNote":   true,
	"AppdxFormat": true,
	"AppdxFig":    true,
}

func init() {
	for depth := 1; depth <= maxSubItemDepth; depth++ {
		wrapperTags[fmt.Sprintf("SubItem%dSentence", depth)] = true
		leafTags[fmt.Sprintf("SubItem%dTitle", depth)] = true
	}
}

// builder carries the ordinal counters for structural roles without a
// Num attribute. The counters are monotonic across the whole document,
// matching how laws number their own parts and chapters.
type builder struct {
	part       int
	chapter    int
	section    int
	subsection int
	division   int

	lawNum string
}

func (b *builder) buildChildren(el *etree.Element, parent *lawcite.Node) error {
	for _, child := range el.ChildElements() {
		if err := b.buildElement(child, parent); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) buildElement(el *etree.Element, parent *lawcite.Node) error {
	tag := el.Tag

	switch {
	case skipTags[tag]:
		return nil

	case tag == "LawNum":
		b.lawNum = flattenText(el)
		return nil

	case wrapperTags[tag]:
		return b.buildChildren(el, parent)

	case leafTags[tag]:
		text := flattenText(el)
		// Whitespace-only leaves stay in the tree for structural
		// fidelity but can never match.
		if strings.TrimSpace(text) == "" {
			text = ""
		}
		parent.Children = append(parent.Children, &lawcite.Node{
			Role: lawcite.RoleSentence,
			Text: text,
		})
		return nil
	}

	role, depth, ok := structuralRole(tag)
	if !ok {
		return lawcite.Errorf(lawcite.EINVALID, "unexpected element <%s> under <%s>", tag, parent.Role)
	}
	if !allowedUnder(parent, role, depth) {
		return lawcite.Errorf(lawcite.EINVALID, "element <%s> cannot appear under <%s>", tag, parent.Role)
	}

	node := &lawcite.Node{Role: role, Depth: depth}

	number, err := b.number(el, role)
	if err != nil {
		return err
	}
	node.Number = number

	if err := b.buildChildren(el, node); err != nil {
		return err
	}
	if err := node.Validate(); err != nil {
		return err
	}
	if requiresText(role) && node.CountLeaves() == 0 {
		return lawcite.Errorf(lawcite.EINVALID, "element <%s> has no sentence descendants", tag)
	}

	parent.Children = append(parent.Children, node)
	return nil
}

// structuralRole resolves a tag to its role, handling the SubItem1..7
// family of tags.
func structuralRole(tag string) (lawcite.Role, int, bool) {
	if role, ok := structuralTags[tag]; ok {
		return role, 0, true
	}
	if rest, ok := strings.CutPrefix(tag, "SubItem"); ok {
		depth, err := strconv.Atoi(rest)
		if err == nil && depth >= 1 && depth <= maxSubItemDepth {
			return lawcite.RoleSubItem, depth, true
		}
	}
	return "", 0, false
}

// allowedUnder enforces the structural containment rules: an article can
// never contain another article, sub-items nest one level at a time, and
// so on down the hierarchy.
func allowedUnder(parent *lawcite.Node, role lawcite.Role, depth int) bool {
	if role == lawcite.RoleSubItem {
		switch parent.Role {
		case lawcite.RoleItem:
			return depth == 1
		case lawcite.RoleSubItem:
			return depth == parent.Depth+1
		}
		return false
	}

	switch parent.Role {
	case lawcite.RoleLaw:
		switch role {
		case lawcite.RolePart, lawcite.RoleChapter, lawcite.RoleSection,
			lawcite.RoleArticle, lawcite.RoleParagraph, lawcite.RoleSupplProvision:
			return true
		}
	case lawcite.RoleSupplProvision:
		switch role {
		case lawcite.RoleChapter, lawcite.RoleArticle, lawcite.RoleParagraph:
			return true
		}
	case lawcite.RolePart:
		return role == lawcite.RoleChapter || role == lawcite.RoleArticle
	case lawcite.RoleChapter:
		return role == lawcite.RoleSection || role == lawcite.RoleArticle
	case lawcite.RoleSection:
		return role == lawcite.RoleSubsection || role == lawcite.RoleDivision || role == lawcite.RoleArticle
	case lawcite.RoleSubsection:
		return role == lawcite.RoleDivision || role == lawcite.RoleArticle
	case lawcite.RoleDivision:
		return role == lawcite.RoleArticle
	case lawcite.RoleArticle:
		return role == lawcite.RoleParagraph
	case lawcite.RoleParagraph:
		return role == lawcite.RoleItem
	}
	return false
}

// requiresText reports whether a role must contain at least one sentence
// leaf somewhere beneath it.
func requiresText(role lawcite.Role) bool {
	switch role {
	case lawcite.RoleArticle, lawcite.RoleParagraph, lawcite.RoleItem, lawcite.RoleSubItem:
		return true
	}
	return false
}

// number resolves the node's citation number. Article, Paragraph, Item
// and SubItem require an explicit Num attribute; the grouping roles above
// them fall back to document-order ordinals; suppl provisions carry the
// optional AmendLawNum label.
func (b *builder) number(el *etree.Element, role lawcite.Role) (string, error) {
	switch role {
	case lawcite.RoleArticle, lawcite.RoleParagraph, lawcite.RoleItem, lawcite.RoleSubItem:
		num := el.SelectAttrValue("Num", "")
		if num == "" {
			return "", lawcite.Errorf(lawcite.EINVALID, "element <%s> is missing its Num attribute", el.Tag)
		}
		return num, nil

	case lawcite.RoleSupplProvision:
		return el.SelectAttrValue("AmendLawNum", ""), nil

	case lawcite.RolePart:
		return b.ordinal(el, &b.part), nil
	case lawcite.RoleChapter:
		return b.ordinal(el, &b.chapter), nil
	case lawcite.RoleSection:
		return b.ordinal(el, &b.section), nil
	case lawcite.RoleSubsection:
		return b.ordinal(el, &b.subsection), nil
	case lawcite.RoleDivision:
		return b.ordinal(el, &b.division), nil
	}
	return "", nil
}

// ordinal prefers an explicit Num attribute and otherwise assigns the
// next document-order ordinal for the role.
func (b *builder) ordinal(el *etree.Element, counter *int) string {
	*counter++
	if num := el.SelectAttrValue("Num", ""); num != "" {
		return num
	}
	return strconv.Itoa(*counter)
}

// flattenText gathers all character data beneath el, depth-first. Inline
// markup inside a leaf (ruby annotations, line breaks) is tolerated: only
// its text survives. Each chunk is trimmed because law XML is routinely
// pretty-printed; Japanese text needs no joining spaces.
func flattenText(el *etree.Element) string {
	var sb strings.Builder
	collectText(el, &sb)
	return sb.String()
}

func collectText(el *etree.Element, sb *strings.Builder) {
	for _, child := range el.Child {
		switch c := child.(type) {
		case *etree.CharData:
			sb.WriteString(strings.TrimSpace(c.Data))
		case *etree.Element:
			collectText(c, sb)
		}
	}
}
