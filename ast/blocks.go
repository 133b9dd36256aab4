package ast

import "fmt"

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

// Heading is a section title with a level in 1..6.
type Heading struct {
	Level    int
	Children []Inline
}

// NewHeading creates a heading, rejecting levels outside 1..6.
func NewHeading(level int, children []Inline) (*Heading, error) {
	if level < 1 || level > 6 {
		return nil, fmt.Errorf("heading level %d outside 1..6: %w", level, ErrRangeViolation)
	}
	return &Heading{Level: level, Children: children}, nil
}

// CodeBlock is a fenced or indented code block. Code is kept verbatim, no
// trimming or escaping.
type CodeBlock struct {
	Language string
	Code     string
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Children []Inline
}

// BlockQuote owns an ordered sequence of blocks.
type BlockQuote struct {
	Children []Block
}

// List is an ordered or unordered list. Each item is itself a block sequence.
type List struct {
	Ordered bool
	Items   [][]Block
}

// DisplayMath is a standalone math formula, stored as raw source.
type DisplayMath struct {
	Formula string
}

// Footnote is a footnote definition. The ID links it to FootnoteReference
// nodes; matching references to definitions is left to consumers.
type Footnote struct {
	ID       string
	Children []Block
}

// Alignment is a table column alignment.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// TableCell holds one cell's inline content.
type TableCell struct {
	Align    Alignment
	Children []Inline
}

// Table is a header row plus body rows, row-major.
type Table struct {
	Header []TableCell
	Rows   [][]TableCell
}

// Admonition is a called-out block (note, warning, tip) with a block body.
type Admonition struct {
	Kind     string
	Children []Block
}

func (*ThematicBreak) node() {}
func (*Heading) node()       {}
func (*CodeBlock) node()     {}
func (*Paragraph) node()     {}
func (*BlockQuote) node()    {}
func (*List) node()          {}
func (*DisplayMath) node()   {}
func (*Footnote) node()      {}
func (*Table) node()         {}
func (*Admonition) node()    {}

func (*ThematicBreak) block() {}
func (*Heading) block()       {}
func (*CodeBlock) block()     {}
func (*Paragraph) block()     {}
func (*BlockQuote) block()    {}
func (*List) block()          {}
func (*DisplayMath) block()   {}
func (*Footnote) block()      {}
func (*Table) block()         {}
func (*Admonition) block()    {}
