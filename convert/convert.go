// Package convert maps the generic parse tree onto the typed AST. The
// mapping is total over the kinds listed here; anything else is a hard
// UnsupportedKindError, never a silent skip. Conversion is strict: invariant
// failures from the ast constructors abort the whole call, since they mean
// the tree came from a parser this tool does not understand.
package convert

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gerunddev/docforge/ast"
	"github.com/gerunddev/docforge/parser"
)

// UnsupportedKindError reports a parse tree kind with no mapping.
type UnsupportedKindError struct {
	Kind string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported parse tree kind %q", e.Kind)
}

// Document converts a generic parse tree into a typed document. Sibling
// order is preserved at every depth and no normalization is applied.
func Document(tree *parser.Node) (*ast.Document, error) {
	if tree == nil {
		return nil, errors.New("convert: nil parse tree")
	}
	if tree.Kind != parser.KindDocument {
		return nil, fmt.Errorf("convert: root is %q, want %q", tree.Kind, parser.KindDocument)
	}

	doc := ast.NewDocument()
	blocks, err := convertBlocks(tree.Children)
	if err != nil {
		return nil, err
	}
	doc.Append(blocks...)
	return doc, nil
}

func convertBlock(n *parser.Node) (ast.Block, error) {
	switch n.Kind {
	case parser.KindThematicBreak:
		return &ast.ThematicBreak{}, nil

	case parser.KindHeading:
		level, err := strconv.Atoi(n.Attr("level"))
		if err != nil {
			return nil, fmt.Errorf("convert: heading level %q: %w", n.Attr("level"), err)
		}
		children, err := convertInlines(n.Children)
		if err != nil {
			return nil, err
		}
		h, err := ast.NewHeading(level, children)
		if err != nil {
			return nil, err
		}
		return h, nil

	case parser.KindCodeBlock:
		return &ast.CodeBlock{Language: n.Attr("language"), Code: n.Literal}, nil

	case parser.KindParagraph:
		children, err := convertInlines(n.Children)
		if err != nil {
			return nil, err
		}
		return &ast.Paragraph{Children: children}, nil

	case parser.KindBlockQuote:
		children, err := convertBlocks(n.Children)
		if err != nil {
			return nil, err
		}
		return &ast.BlockQuote{Children: children}, nil

	case parser.KindList:
		items := make([][]ast.Block, 0, len(n.Children))
		for _, item := range n.Children {
			if item.Kind != parser.KindListItem {
				return nil, &UnsupportedKindError{Kind: item.Kind}
			}
			blocks, err := convertBlocks(item.Children)
			if err != nil {
				return nil, err
			}
			items = append(items, blocks)
		}
		return &ast.List{Ordered: n.Attr("ordered") == "true", Items: items}, nil

	case parser.KindDisplayMath:
		return &ast.DisplayMath{Formula: n.Literal}, nil

	case parser.KindFootnoteDef:
		children, err := convertBlocks(n.Children)
		if err != nil {
			return nil, err
		}
		return &ast.Footnote{ID: n.Attr("id"), Children: children}, nil

	case parser.KindTable:
		table, err := convertTable(n)
		if err != nil {
			return nil, err
		}
		return table, nil

	case parser.KindAdmonition:
		children, err := convertBlocks(n.Children)
		if err != nil {
			return nil, err
		}
		return &ast.Admonition{Kind: n.Attr("kind"), Children: children}, nil

	default:
		return nil, &UnsupportedKindError{Kind: n.Kind}
	}
}

func convertInline(n *parser.Node) (ast.Inline, error) {
	switch n.Kind {
	case parser.KindText:
		return &ast.Text{Value: n.Literal}, nil

	case parser.KindInlineCode:
		cs, err := ast.NewCodeSpan(n.Attr("language"), n.Literal)
		if err != nil {
			return nil, err
		}
		return cs, nil

	case parser.KindBold:
		children, err := convertInlines(n.Children)
		if err != nil {
			return nil, err
		}
		return &ast.Strong{Children: children}, nil

	case parser.KindItalic:
		children, err := convertInlines(n.Children)
		if err != nil {
			return nil, err
		}
		return &ast.Emphasis{Children: children}, nil

	case parser.KindLink:
		// A source title attribute is dropped: the model has no field for it.
		children, err := convertInlines(n.Children)
		if err != nil {
			return nil, err
		}
		return &ast.Link{Destination: n.Attr("destination"), Children: children}, nil

	case parser.KindImage:
		alt, err := convertInlines(n.Children)
		if err != nil {
			return nil, err
		}
		return &ast.Image{Destination: n.Attr("destination"), Alt: alt}, nil

	case parser.KindLineBreak:
		return &ast.LineBreak{}, nil

	case parser.KindInlineMath:
		return &ast.InlineMath{Formula: n.Literal}, nil

	case parser.KindFootnoteRef:
		body, err := convertInlines(n.Children)
		if err != nil {
			return nil, err
		}
		ref, err := ast.NewFootnoteReference(n.Attr("id"), body)
		if err != nil {
			return nil, err
		}
		return ref, nil

	default:
		return nil, &UnsupportedKindError{Kind: n.Kind}
	}
}

func convertBlocks(nodes []*parser.Node) ([]ast.Block, error) {
	var out []ast.Block
	for _, n := range nodes {
		b, err := convertBlock(n)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func convertInlines(nodes []*parser.Node) ([]ast.Inline, error) {
	var out []ast.Inline
	for _, n := range nodes {
		in, err := convertInline(n)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func convertTable(n *parser.Node) (*ast.Table, error) {
	table := &ast.Table{}
	for _, row := range n.Children {
		if row.Kind != parser.KindTableRow {
			return nil, &UnsupportedKindError{Kind: row.Kind}
		}
		cells := make([]ast.TableCell, 0, len(row.Children))
		for _, cell := range row.Children {
			if cell.Kind != parser.KindTableCell {
				return nil, &UnsupportedKindError{Kind: cell.Kind}
			}
			children, err := convertInlines(cell.Children)
			if err != nil {
				return nil, err
			}
			cells = append(cells, ast.TableCell{
				Align:    alignment(cell.Attr("align")),
				Children: children,
			})
		}
		if row.Attr("header") == "true" {
			table.Header = cells
		} else {
			table.Rows = append(table.Rows, cells)
		}
	}
	return table, nil
}

func alignment(name string) ast.Alignment {
	switch name {
	case "left":
		return ast.AlignLeft
	case "center":
		return ast.AlignCenter
	case "right":
		return ast.AlignRight
	}
	return ast.AlignNone
}
