package ast

import "fmt"

// Text is a literal text run. The converter never re-tokenizes it.
type Text struct {
	Value string
}

// CodeSpan is inline code. Unlike CodeBlock it carries no language tag.
type CodeSpan struct {
	Code string
}

// NewCodeSpan creates a code span, rejecting a non-empty language tag.
func NewCodeSpan(language, code string) (*CodeSpan, error) {
	if language != "" {
		return nil, fmt.Errorf("code span carries language %q: %w", language, ErrInvariantViolation)
	}
	return &CodeSpan{Code: code}, nil
}

// Emphasis owns an ordered sequence of inlines.
type Emphasis struct {
	Children []Inline
}

// Strong owns an ordered sequence of inlines.
type Strong struct {
	Children []Inline
}

// Link is a destination plus inline content. Link titles are not
// representable and are dropped during conversion.
type Link struct {
	Destination string
	Children    []Inline
}

// Image is a destination plus alt-text inlines.
type Image struct {
	Destination string
	Alt         []Inline
}

// LineBreak is a hard line break.
type LineBreak struct{}

// InlineMath is an in-flow math formula, stored as raw source.
type InlineMath struct {
	Formula string
}

// FootnoteReference points at a Footnote definition by ID. It carries no
// body of its own.
type FootnoteReference struct {
	ID string
}

// NewFootnoteReference creates a reference, rejecting any body content.
func NewFootnoteReference(id string, body []Inline) (*FootnoteReference, error) {
	if len(body) > 0 {
		return nil, fmt.Errorf("footnote reference %q carries a body: %w", id, ErrInvariantViolation)
	}
	return &FootnoteReference{ID: id}, nil
}

func (*Text) node()              {}
func (*CodeSpan) node()          {}
func (*Emphasis) node()          {}
func (*Strong) node()            {}
func (*Link) node()              {}
func (*Image) node()             {}
func (*LineBreak) node()         {}
func (*InlineMath) node()        {}
func (*FootnoteReference) node() {}

func (*Text) inline()              {}
func (*CodeSpan) inline()          {}
func (*Emphasis) inline()          {}
func (*Strong) inline()            {}
func (*Link) inline()              {}
func (*Image) inline()             {}
func (*LineBreak) inline()         {}
func (*InlineMath) inline()        {}
func (*FootnoteReference) inline() {}
