// Package render holds the consumers of the typed document tree: an HTML
// writer, a terminal outline, and a structural checker.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/gerunddev/docforge/ast"
)

// HTML renders a document as an HTML fragment. Every variant is handled
// explicitly; an unhandled one is a compile-time gap, not a runtime skip.
func HTML(doc *ast.Document) string {
	var b strings.Builder
	for _, block := range doc.Blocks {
		writeBlock(&b, block)
	}
	return b.String()
}

func writeBlock(b *strings.Builder, block ast.Block) {
	switch n := block.(type) {
	case *ast.ThematicBreak:
		b.WriteString("<hr>\n")
	case *ast.Heading:
		fmt.Fprintf(b, "<h%d>", n.Level)
		writeInlines(b, n.Children)
		fmt.Fprintf(b, "</h%d>\n", n.Level)
	case *ast.CodeBlock:
		if n.Language != "" {
			fmt.Fprintf(b, "<pre><code class=\"language-%s\">", html.EscapeString(n.Language))
		} else {
			b.WriteString("<pre><code>")
		}
		b.WriteString(html.EscapeString(n.Code))
		b.WriteString("</code></pre>\n")
	case *ast.Paragraph:
		b.WriteString("<p>")
		writeInlines(b, n.Children)
		b.WriteString("</p>\n")
	case *ast.BlockQuote:
		b.WriteString("<blockquote>\n")
		for _, child := range n.Children {
			writeBlock(b, child)
		}
		b.WriteString("</blockquote>\n")
	case *ast.List:
		tag := "ul"
		if n.Ordered {
			tag = "ol"
		}
		fmt.Fprintf(b, "<%s>\n", tag)
		for _, item := range n.Items {
			b.WriteString("<li>")
			for _, child := range item {
				writeBlock(b, child)
			}
			b.WriteString("</li>\n")
		}
		fmt.Fprintf(b, "</%s>\n", tag)
	case *ast.DisplayMath:
		fmt.Fprintf(b, "<div class=\"math\">\\[%s\\]</div>\n", html.EscapeString(n.Formula))
	case *ast.Footnote:
		fmt.Fprintf(b, "<div class=\"footnote\" id=\"fn:%s\">\n", html.EscapeString(n.ID))
		for _, child := range n.Children {
			writeBlock(b, child)
		}
		b.WriteString("</div>\n")
	case *ast.Table:
		writeTable(b, n)
	case *ast.Admonition:
		fmt.Fprintf(b, "<div class=\"admonition admonition-%s\">\n", html.EscapeString(n.Kind))
		for _, child := range n.Children {
			writeBlock(b, child)
		}
		b.WriteString("</div>\n")
	}
}

func writeInlines(b *strings.Builder, inlines []ast.Inline) {
	for _, in := range inlines {
		writeInline(b, in)
	}
}

func writeInline(b *strings.Builder, inline ast.Inline) {
	switch n := inline.(type) {
	case *ast.Text:
		b.WriteString(html.EscapeString(n.Value))
	case *ast.CodeSpan:
		b.WriteString("<code>")
		b.WriteString(html.EscapeString(n.Code))
		b.WriteString("</code>")
	case *ast.Emphasis:
		b.WriteString("<em>")
		writeInlines(b, n.Children)
		b.WriteString("</em>")
	case *ast.Strong:
		b.WriteString("<strong>")
		writeInlines(b, n.Children)
		b.WriteString("</strong>")
	case *ast.Link:
		fmt.Fprintf(b, "<a href=\"%s\">", html.EscapeString(n.Destination))
		writeInlines(b, n.Children)
		b.WriteString("</a>")
	case *ast.Image:
		fmt.Fprintf(b, "<img src=\"%s\" alt=\"%s\">",
			html.EscapeString(n.Destination), html.EscapeString(PlainText(n.Alt)))
	case *ast.LineBreak:
		b.WriteString("<br>\n")
	case *ast.InlineMath:
		fmt.Fprintf(b, "<span class=\"math\">\\(%s\\)</span>", html.EscapeString(n.Formula))
	case *ast.FootnoteReference:
		fmt.Fprintf(b, "<sup><a href=\"#fn:%s\">%s</a></sup>",
			html.EscapeString(n.ID), html.EscapeString(n.ID))
	}
}

func writeTable(b *strings.Builder, t *ast.Table) {
	b.WriteString("<table>\n")
	if len(t.Header) > 0 {
		b.WriteString("<thead><tr>")
		for i := range t.Header {
			writeCell(b, "th", &t.Header[i])
		}
		b.WriteString("</tr></thead>\n")
	}
	if len(t.Rows) > 0 {
		b.WriteString("<tbody>\n")
		for _, row := range t.Rows {
			b.WriteString("<tr>")
			for i := range row {
				writeCell(b, "td", &row[i])
			}
			b.WriteString("</tr>\n")
		}
		b.WriteString("</tbody>\n")
	}
	b.WriteString("</table>\n")
}

func writeCell(b *strings.Builder, tag string, cell *ast.TableCell) {
	switch cell.Align {
	case ast.AlignLeft:
		fmt.Fprintf(b, "<%s align=\"left\">", tag)
	case ast.AlignCenter:
		fmt.Fprintf(b, "<%s align=\"center\">", tag)
	case ast.AlignRight:
		fmt.Fprintf(b, "<%s align=\"right\">", tag)
	default:
		fmt.Fprintf(b, "<%s>", tag)
	}
	writeInlines(b, cell.Children)
	fmt.Fprintf(b, "</%s>", tag)
}

// PlainText flattens inline content to bare text, dropping all markup.
func PlainText(inlines []ast.Inline) string {
	var b strings.Builder
	for _, in := range inlines {
		switch n := in.(type) {
		case *ast.Text:
			b.WriteString(n.Value)
		case *ast.CodeSpan:
			b.WriteString(n.Code)
		case *ast.Emphasis:
			b.WriteString(PlainText(n.Children))
		case *ast.Strong:
			b.WriteString(PlainText(n.Children))
		case *ast.Link:
			b.WriteString(PlainText(n.Children))
		case *ast.Image:
			b.WriteString(PlainText(n.Alt))
		case *ast.LineBreak:
			b.WriteByte('\n')
		case *ast.InlineMath:
			b.WriteString(n.Formula)
		case *ast.FootnoteReference:
			// no text of its own
		}
	}
	return b.String()
}
