// Package parser produces the generic, loosely-typed parse tree that the
// convert package turns into a typed document AST. The tree deliberately
// carries no schema: kinds are strings and per-kind data lives in a flat
// attribute map, so any markup frontend can produce one.
package parser

// Node kinds produced by the markdown frontend. The set is open; the
// converter decides which kinds it maps.
const (
	KindDocument      = "document"
	KindThematicBreak = "thematic_break"
	KindHeading       = "heading"
	KindCodeBlock     = "code_block"
	KindParagraph     = "paragraph"
	KindBlockQuote    = "block_quote"
	KindList          = "list"
	KindListItem      = "list_item"
	KindDisplayMath   = "display_math"
	KindFootnoteDef   = "footnote_def"
	KindTable         = "table"
	KindTableRow      = "table_row"
	KindTableCell     = "table_cell"
	KindAdmonition    = "admonition"
	KindText          = "text"
	KindInlineCode    = "inline_code"
	KindBold          = "bold"
	KindItalic        = "italic"
	KindLink          = "link"
	KindImage         = "image"
	KindLineBreak     = "line_break"
	KindInlineMath    = "inline_math"
	KindFootnoteRef   = "footnote_ref"
	KindHTML          = "html"
)

// Node is one node of the generic parse tree.
type Node struct {
	Kind     string
	Literal  string
	Attrs    map[string]string
	Children []*Node
}

// NewNode creates a node of the given kind.
func NewNode(kind string) *Node {
	return &Node{Kind: kind}
}

// NewLiteral creates a node carrying literal text.
func NewLiteral(kind, literal string) *Node {
	return &Node{Kind: kind, Literal: literal}
}

// SetAttr sets a string attribute, allocating the map on first use.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Attr returns the attribute value, or "" when unset.
func (n *Node) Attr(key string) string {
	return n.Attrs[key]
}

// AppendChild adds children in order.
func (n *Node) AppendChild(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Count returns the number of nodes in the tree rooted at n, including n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}
