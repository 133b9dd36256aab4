package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// markdown is the shared goldmark instance. GFM covers tables and autolinks;
// Footnote covers [^id] definitions and references.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Footnote),
)

// inlineMathPattern matches $...$ spans that stay on one line.
var inlineMathPattern = regexp.MustCompile(`\$([^$\n]+)\$`)

// ParseMarkdown parses markdown content into a generic parse tree. Front
// matter must already be stripped by the caller. Beyond CommonMark+GFM it
// recognizes Obsidian-style callouts (> [!note]) as admonitions and
// $...$ / $$...$$ spans as math.
func ParseMarkdown(source []byte) (*Node, error) {
	root := markdown.Parser().Parse(text.NewReader(source))

	doc := NewNode(KindDocument)
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		blocks, err := fromBlock(c, source)
		if err != nil {
			return nil, err
		}
		doc.AppendChild(blocks...)
	}
	return doc, nil
}

func fromBlock(n gmast.Node, source []byte) ([]*Node, error) {
	switch t := n.(type) {
	case *gmast.Heading:
		node := NewNode(KindHeading).SetAttr("level", strconv.Itoa(t.Level))
		children, err := fromInlineChildren(t, source)
		if err != nil {
			return nil, err
		}
		return []*Node{node.AppendChild(children...)}, nil

	case *gmast.Paragraph:
		return paragraphOrMath(t, source)

	case *gmast.TextBlock:
		return paragraphOrMath(t, source)

	case *gmast.FencedCodeBlock:
		node := NewLiteral(KindCodeBlock, linesText(t, source))
		if lang := t.Language(source); lang != nil {
			node.SetAttr("language", string(lang))
		}
		return []*Node{node}, nil

	case *gmast.CodeBlock:
		return []*Node{NewLiteral(KindCodeBlock, linesText(t, source))}, nil

	case *gmast.Blockquote:
		children, err := fromBlockChildren(t, source)
		if err != nil {
			return nil, err
		}
		if admonition, ok := asAdmonition(children); ok {
			return []*Node{admonition}, nil
		}
		return []*Node{NewNode(KindBlockQuote).AppendChild(children...)}, nil

	case *gmast.List:
		node := NewNode(KindList)
		if t.IsOrdered() {
			node.SetAttr("ordered", "true")
		}
		children, err := fromBlockChildren(t, source)
		if err != nil {
			return nil, err
		}
		return []*Node{node.AppendChild(children...)}, nil

	case *gmast.ListItem:
		children, err := fromBlockChildren(t, source)
		if err != nil {
			return nil, err
		}
		return []*Node{NewNode(KindListItem).AppendChild(children...)}, nil

	case *gmast.ThematicBreak:
		return []*Node{NewNode(KindThematicBreak)}, nil

	case *gmast.HTMLBlock:
		return []*Node{NewLiteral(KindHTML, linesText(t, source))}, nil

	case *east.FootnoteList:
		var defs []*Node
		for c := t.FirstChild(); c != nil; c = c.NextSibling() {
			nodes, err := fromBlock(c, source)
			if err != nil {
				return nil, err
			}
			defs = append(defs, nodes...)
		}
		return defs, nil

	case *east.Footnote:
		node := NewNode(KindFootnoteDef).SetAttr("id", strconv.Itoa(t.Index))
		children, err := fromBlockChildren(t, source)
		if err != nil {
			return nil, err
		}
		return []*Node{node.AppendChild(children...)}, nil

	case *east.Table:
		return fromTable(t, source)

	default:
		return nil, fmt.Errorf("markdown: unhandled block node %s", n.Kind())
	}
}

// paragraphOrMath turns a paragraph into display_math when its whole text is
// a $$...$$ formula, otherwise into a regular paragraph.
func paragraphOrMath(n gmast.Node, source []byte) ([]*Node, error) {
	raw := strings.TrimSpace(flattenText(n, source))
	if strings.HasPrefix(raw, "$$") && strings.HasSuffix(raw, "$$") && len(raw) > 4 {
		formula := strings.TrimSpace(raw[2 : len(raw)-2])
		return []*Node{NewLiteral(KindDisplayMath, formula)}, nil
	}
	children, err := fromInlineChildren(n, source)
	if err != nil {
		return nil, err
	}
	return []*Node{NewNode(KindParagraph).AppendChild(children...)}, nil
}

func fromInline(n gmast.Node, source []byte) ([]*Node, error) {
	switch t := n.(type) {
	case *gmast.Text:
		literal := string(t.Segment.Value(source))
		if t.SoftLineBreak() {
			literal += "\n"
		}
		nodes := splitInlineMath(literal)
		if t.HardLineBreak() {
			nodes = append(nodes, NewNode(KindLineBreak))
		}
		return nodes, nil

	case *gmast.String:
		return []*Node{NewLiteral(KindText, string(t.Value))}, nil

	case *gmast.CodeSpan:
		return []*Node{NewLiteral(KindInlineCode, flattenText(t, source))}, nil

	case *gmast.Emphasis:
		kind := KindItalic
		if t.Level >= 2 {
			kind = KindBold
		}
		children, err := fromInlineChildren(t, source)
		if err != nil {
			return nil, err
		}
		return []*Node{NewNode(kind).AppendChild(children...)}, nil

	case *gmast.Link:
		node := NewNode(KindLink).SetAttr("destination", string(t.Destination))
		if len(t.Title) > 0 {
			node.SetAttr("title", string(t.Title))
		}
		children, err := fromInlineChildren(t, source)
		if err != nil {
			return nil, err
		}
		return []*Node{node.AppendChild(children...)}, nil

	case *gmast.AutoLink:
		node := NewNode(KindLink).SetAttr("destination", string(t.URL(source)))
		node.AppendChild(NewLiteral(KindText, string(t.Label(source))))
		return []*Node{node}, nil

	case *gmast.Image:
		node := NewNode(KindImage).SetAttr("destination", string(t.Destination))
		children, err := fromInlineChildren(t, source)
		if err != nil {
			return nil, err
		}
		return []*Node{node.AppendChild(children...)}, nil

	case *gmast.RawHTML:
		var b strings.Builder
		for i := 0; i < t.Segments.Len(); i++ {
			seg := t.Segments.At(i)
			b.Write(seg.Value(source))
		}
		return []*Node{NewLiteral(KindHTML, b.String())}, nil

	case *east.FootnoteLink:
		return []*Node{NewNode(KindFootnoteRef).SetAttr("id", strconv.Itoa(t.Index))}, nil

	case *east.FootnoteBacklink:
		return nil, nil

	case *east.Strikethrough:
		// No typed counterpart; surfaced as-is so conversion fails loudly
		// instead of dropping content.
		children, err := fromInlineChildren(t, source)
		if err != nil {
			return nil, err
		}
		return []*Node{NewNode("strikethrough").AppendChild(children...)}, nil

	default:
		return nil, fmt.Errorf("markdown: unhandled inline node %s", n.Kind())
	}
}

func fromBlockChildren(n gmast.Node, source []byte) ([]*Node, error) {
	var out []*Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		nodes, err := fromBlock(c, source)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

func fromInlineChildren(n gmast.Node, source []byte) ([]*Node, error) {
	var out []*Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		nodes, err := fromInline(c, source)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

func fromTable(t *east.Table, source []byte) ([]*Node, error) {
	table := NewNode(KindTable)
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		rowNode := NewNode(KindTableRow)
		if _, ok := row.(*east.TableHeader); ok {
			rowNode.SetAttr("header", "true")
		}
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			tc, ok := cell.(*east.TableCell)
			if !ok {
				return nil, fmt.Errorf("markdown: unexpected table child %s", cell.Kind())
			}
			cellNode := NewNode(KindTableCell).SetAttr("align", alignName(tc.Alignment))
			children, err := fromInlineChildren(tc, source)
			if err != nil {
				return nil, err
			}
			rowNode.AppendChild(cellNode.AppendChild(children...))
		}
		table.AppendChild(rowNode)
	}
	return []*Node{table}, nil
}

func alignName(a east.Alignment) string {
	switch a {
	case east.AlignLeft:
		return "left"
	case east.AlignCenter:
		return "center"
	case east.AlignRight:
		return "right"
	}
	return ""
}

// splitInlineMath splits a text literal around $...$ spans.
func splitInlineMath(literal string) []*Node {
	matches := inlineMathPattern.FindAllStringSubmatchIndex(literal, -1)
	if len(matches) == 0 {
		if literal == "" {
			return nil
		}
		return []*Node{NewLiteral(KindText, literal)}
	}

	var nodes []*Node
	last := 0
	for _, m := range matches {
		if m[0] > last {
			nodes = append(nodes, NewLiteral(KindText, literal[last:m[0]]))
		}
		nodes = append(nodes, NewLiteral(KindInlineMath, literal[m[2]:m[3]]))
		last = m[1]
	}
	if last < len(literal) {
		nodes = append(nodes, NewLiteral(KindText, literal[last:]))
	}
	return nodes
}

// asAdmonition detects an Obsidian callout: a block quote whose first
// paragraph opens with [!kind].
func asAdmonition(blocks []*Node) (*Node, bool) {
	if len(blocks) == 0 || blocks[0].Kind != KindParagraph || len(blocks[0].Children) == 0 {
		return nil, false
	}
	first := blocks[0].Children[0]
	if first.Kind != KindText || !strings.HasPrefix(first.Literal, "[!") {
		return nil, false
	}
	end := strings.Index(first.Literal, "]")
	if end < 2 {
		return nil, false
	}

	kind := strings.ToLower(first.Literal[2:end])
	rest := strings.TrimLeft(first.Literal[end+1:], " \n")

	para := NewNode(KindParagraph)
	if rest != "" {
		para.AppendChild(NewLiteral(KindText, rest))
	}
	para.AppendChild(blocks[0].Children[1:]...)

	body := make([]*Node, len(blocks))
	copy(body, blocks)
	if len(para.Children) == 0 {
		body = body[1:]
	} else {
		body[0] = para
	}
	return NewNode(KindAdmonition).SetAttr("kind", kind).AppendChild(body...), true
}

// flattenText concatenates the literal text under n, keeping soft breaks as
// newlines.
func flattenText(n gmast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gmast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *gmast.String:
			b.Write(t.Value)
		default:
			b.WriteString(flattenText(c, source))
		}
	}
	return b.String()
}

// linesText joins a block node's raw line segments verbatim.
func linesText(n interface{ Lines() *text.Segments }, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}
