package convert

import (
	"errors"
	"testing"

	"github.com/gerunddev/docforge/ast"
	"github.com/gerunddev/docforge/parser"
)

func docTree(children ...*parser.Node) *parser.Node {
	return parser.NewNode(parser.KindDocument).AppendChild(children...)
}

func TestDocumentExample(t *testing.T) {
	tree := docTree(
		parser.NewNode(parser.KindHeading).SetAttr("level", "1").
			AppendChild(parser.NewLiteral(parser.KindText, "Header")),
		parser.NewNode(parser.KindParagraph).AppendChild(
			parser.NewLiteral(parser.KindText, "Hello "),
			parser.NewNode(parser.KindBold).
				AppendChild(parser.NewLiteral(parser.KindText, "World")),
		),
		parser.NewNode(parser.KindThematicBreak),
	)

	doc, err := Document(tree)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if doc.Len() != 3 {
		t.Fatalf("Len = %d, want 3", doc.Len())
	}

	h, ok := doc.Blocks[0].(*ast.Heading)
	if !ok {
		t.Fatalf("block 0 = %T, want *ast.Heading", doc.Blocks[0])
	}
	if h.Level != 1 {
		t.Errorf("heading level = %d, want 1", h.Level)
	}
	if text, ok := h.Children[0].(*ast.Text); !ok || text.Value != "Header" {
		t.Errorf("heading child = %#v, want Text(Header)", h.Children[0])
	}

	p, ok := doc.Blocks[1].(*ast.Paragraph)
	if !ok {
		t.Fatalf("block 1 = %T, want *ast.Paragraph", doc.Blocks[1])
	}
	if len(p.Children) != 2 {
		t.Fatalf("paragraph has %d children, want 2", len(p.Children))
	}
	if text, ok := p.Children[0].(*ast.Text); !ok || text.Value != "Hello " {
		t.Errorf("paragraph child 0 = %#v, want Text(Hello )", p.Children[0])
	}
	strong, ok := p.Children[1].(*ast.Strong)
	if !ok {
		t.Fatalf("paragraph child 1 = %T, want *ast.Strong", p.Children[1])
	}
	if text, ok := strong.Children[0].(*ast.Text); !ok || text.Value != "World" {
		t.Errorf("strong child = %#v, want Text(World)", strong.Children[0])
	}

	if _, ok := doc.Blocks[2].(*ast.ThematicBreak); !ok {
		t.Errorf("block 2 = %T, want *ast.ThematicBreak", doc.Blocks[2])
	}

	// Full pre-order walk of the example: 7 visits.
	visits := 0
	if err := ast.Walk(doc, func(_ ast.NodeClass, _ ast.Node) (bool, error) {
		visits++
		return true, nil
	}); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if visits != 7 {
		t.Errorf("walk visits = %d, want 7", visits)
	}
}

func TestBlockMappings(t *testing.T) {
	tests := []struct {
		name string
		node *parser.Node
		want func(t *testing.T, b ast.Block)
	}{
		{
			name: "code block keeps text verbatim",
			node: parser.NewLiteral(parser.KindCodeBlock, "x := 1\n\n\ty := 2\n").SetAttr("language", "go"),
			want: func(t *testing.T, b ast.Block) {
				cb, ok := b.(*ast.CodeBlock)
				if !ok {
					t.Fatalf("got %T", b)
				}
				if cb.Language != "go" {
					t.Errorf("Language = %q", cb.Language)
				}
				if cb.Code != "x := 1\n\n\ty := 2\n" {
					t.Errorf("Code = %q, trimming applied", cb.Code)
				}
			},
		},
		{
			name: "block quote recurses",
			node: parser.NewNode(parser.KindBlockQuote).AppendChild(
				parser.NewNode(parser.KindParagraph).
					AppendChild(parser.NewLiteral(parser.KindText, "inner")),
			),
			want: func(t *testing.T, b ast.Block) {
				q, ok := b.(*ast.BlockQuote)
				if !ok {
					t.Fatalf("got %T", b)
				}
				if len(q.Children) != 1 {
					t.Fatalf("quote children = %d", len(q.Children))
				}
				if _, ok := q.Children[0].(*ast.Paragraph); !ok {
					t.Errorf("quote child = %T", q.Children[0])
				}
			},
		},
		{
			name: "display math",
			node: parser.NewLiteral(parser.KindDisplayMath, "E = mc^2"),
			want: func(t *testing.T, b ast.Block) {
				m, ok := b.(*ast.DisplayMath)
				if !ok {
					t.Fatalf("got %T", b)
				}
				if m.Formula != "E = mc^2" {
					t.Errorf("Formula = %q", m.Formula)
				}
			},
		},
		{
			name: "footnote definition recurses",
			node: parser.NewNode(parser.KindFootnoteDef).SetAttr("id", "7").AppendChild(
				parser.NewNode(parser.KindParagraph).
					AppendChild(parser.NewLiteral(parser.KindText, "note")),
			),
			want: func(t *testing.T, b ast.Block) {
				fn, ok := b.(*ast.Footnote)
				if !ok {
					t.Fatalf("got %T", b)
				}
				if fn.ID != "7" {
					t.Errorf("ID = %q", fn.ID)
				}
				if len(fn.Children) != 1 {
					t.Errorf("children = %d", len(fn.Children))
				}
			},
		},
		{
			name: "ordered list",
			node: parser.NewNode(parser.KindList).SetAttr("ordered", "true").AppendChild(
				parser.NewNode(parser.KindListItem).AppendChild(
					parser.NewNode(parser.KindParagraph).
						AppendChild(parser.NewLiteral(parser.KindText, "one")),
				),
				parser.NewNode(parser.KindListItem).AppendChild(
					parser.NewNode(parser.KindParagraph).
						AppendChild(parser.NewLiteral(parser.KindText, "two")),
				),
			),
			want: func(t *testing.T, b ast.Block) {
				l, ok := b.(*ast.List)
				if !ok {
					t.Fatalf("got %T", b)
				}
				if !l.Ordered {
					t.Error("Ordered = false")
				}
				if len(l.Items) != 2 {
					t.Errorf("items = %d", len(l.Items))
				}
			},
		},
		{
			name: "admonition",
			node: parser.NewNode(parser.KindAdmonition).SetAttr("kind", "warning").AppendChild(
				parser.NewNode(parser.KindParagraph).
					AppendChild(parser.NewLiteral(parser.KindText, "careful")),
			),
			want: func(t *testing.T, b ast.Block) {
				a, ok := b.(*ast.Admonition)
				if !ok {
					t.Fatalf("got %T", b)
				}
				if a.Kind != "warning" {
					t.Errorf("Kind = %q", a.Kind)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Document(docTree(tt.node))
			if err != nil {
				t.Fatalf("Document failed: %v", err)
			}
			if doc.Len() != 1 {
				t.Fatalf("Len = %d, want 1", doc.Len())
			}
			tt.want(t, doc.Blocks[0])
		})
	}
}

func TestInlineMappings(t *testing.T) {
	para := parser.NewNode(parser.KindParagraph).AppendChild(
		parser.NewLiteral(parser.KindText, "plain"),
		parser.NewLiteral(parser.KindInlineCode, "a == b"),
		parser.NewNode(parser.KindItalic).AppendChild(parser.NewLiteral(parser.KindText, "it")),
		parser.NewNode(parser.KindLink).SetAttr("destination", "https://example.com").
			AppendChild(parser.NewLiteral(parser.KindText, "label")),
		parser.NewNode(parser.KindImage).SetAttr("destination", "pic.png").
			AppendChild(parser.NewLiteral(parser.KindText, "alt")),
		parser.NewNode(parser.KindLineBreak),
		parser.NewLiteral(parser.KindInlineMath, "x^2"),
		parser.NewNode(parser.KindFootnoteRef).SetAttr("id", "3"),
	)

	doc, err := Document(docTree(para))
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	p := doc.Blocks[0].(*ast.Paragraph)
	if len(p.Children) != 8 {
		t.Fatalf("children = %d, want 8", len(p.Children))
	}

	if text := p.Children[0].(*ast.Text); text.Value != "plain" {
		t.Errorf("text = %q", text.Value)
	}
	if cs := p.Children[1].(*ast.CodeSpan); cs.Code != "a == b" {
		t.Errorf("code span = %q", cs.Code)
	}
	if _, ok := p.Children[2].(*ast.Emphasis); !ok {
		t.Errorf("child 2 = %T, want *ast.Emphasis", p.Children[2])
	}
	if link := p.Children[3].(*ast.Link); link.Destination != "https://example.com" {
		t.Errorf("link destination = %q", link.Destination)
	}
	if img := p.Children[4].(*ast.Image); img.Destination != "pic.png" || len(img.Alt) != 1 {
		t.Errorf("image = %#v", img)
	}
	if _, ok := p.Children[5].(*ast.LineBreak); !ok {
		t.Errorf("child 5 = %T, want *ast.LineBreak", p.Children[5])
	}
	if m := p.Children[6].(*ast.InlineMath); m.Formula != "x^2" {
		t.Errorf("inline math = %q", m.Formula)
	}
	if ref := p.Children[7].(*ast.FootnoteReference); ref.ID != "3" {
		t.Errorf("footnote ref = %q", ref.ID)
	}
}

func TestLinkTitleDropped(t *testing.T) {
	tree := docTree(parser.NewNode(parser.KindParagraph).AppendChild(
		parser.NewNode(parser.KindLink).
			SetAttr("destination", "https://example.com").
			SetAttr("title", "tooltip").
			AppendChild(parser.NewLiteral(parser.KindText, "label")),
	))

	doc, err := Document(tree)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	link := doc.Blocks[0].(*ast.Paragraph).Children[0].(*ast.Link)
	if link.Destination != "https://example.com" {
		t.Errorf("Destination = %q", link.Destination)
	}
}

func TestUnsupportedKind(t *testing.T) {
	tests := []struct {
		name string
		tree *parser.Node
		kind string
	}{
		{
			name: "html block",
			tree: docTree(parser.NewLiteral(parser.KindHTML, "<div></div>")),
			kind: parser.KindHTML,
		},
		{
			name: "unknown inline",
			tree: docTree(parser.NewNode(parser.KindParagraph).
				AppendChild(parser.NewNode("strikethrough"))),
			kind: "strikethrough",
		},
		{
			name: "stray list child",
			tree: docTree(parser.NewNode(parser.KindList).
				AppendChild(parser.NewNode(parser.KindParagraph))),
			kind: parser.KindParagraph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Document(tt.tree)
			if err == nil {
				t.Fatal("Document succeeded, want error")
			}
			var unsupported *UnsupportedKindError
			if !errors.As(err, &unsupported) {
				t.Fatalf("error = %v, want UnsupportedKindError", err)
			}
			if unsupported.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", unsupported.Kind, tt.kind)
			}
		})
	}
}

func TestInvariantErrors(t *testing.T) {
	codeSpanWithLang := docTree(parser.NewNode(parser.KindParagraph).AppendChild(
		parser.NewLiteral(parser.KindInlineCode, "x").SetAttr("language", "go"),
	))
	_, err := Document(codeSpanWithLang)
	if !errors.Is(err, ast.ErrInvariantViolation) {
		t.Errorf("code span with language: error = %v, want ErrInvariantViolation", err)
	}

	refWithBody := docTree(parser.NewNode(parser.KindParagraph).AppendChild(
		parser.NewNode(parser.KindFootnoteRef).SetAttr("id", "1").
			AppendChild(parser.NewLiteral(parser.KindText, "body")),
	))
	_, err = Document(refWithBody)
	if !errors.Is(err, ast.ErrInvariantViolation) {
		t.Errorf("footnote ref with body: error = %v, want ErrInvariantViolation", err)
	}

	badHeading := docTree(parser.NewNode(parser.KindHeading).SetAttr("level", "7"))
	_, err = Document(badHeading)
	if !errors.Is(err, ast.ErrRangeViolation) {
		t.Errorf("heading level 7: error = %v, want ErrRangeViolation", err)
	}
}

func TestTableConversion(t *testing.T) {
	cell := func(align, text string) *parser.Node {
		return parser.NewNode(parser.KindTableCell).SetAttr("align", align).
			AppendChild(parser.NewLiteral(parser.KindText, text))
	}
	tree := docTree(parser.NewNode(parser.KindTable).AppendChild(
		parser.NewNode(parser.KindTableRow).SetAttr("header", "true").
			AppendChild(cell("left", "Name"), cell("right", "Count")),
		parser.NewNode(parser.KindTableRow).
			AppendChild(cell("left", "widgets"), cell("right", "42")),
	))

	doc, err := Document(tree)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	table := doc.Blocks[0].(*ast.Table)
	if len(table.Header) != 2 {
		t.Fatalf("header cells = %d, want 2", len(table.Header))
	}
	if table.Header[0].Align != ast.AlignLeft || table.Header[1].Align != ast.AlignRight {
		t.Errorf("header alignment = %v, %v", table.Header[0].Align, table.Header[1].Align)
	}
	if len(table.Rows) != 1 || len(table.Rows[0]) != 2 {
		t.Fatalf("rows = %#v", table.Rows)
	}
	if text := table.Rows[0][1].Children[0].(*ast.Text); text.Value != "42" {
		t.Errorf("cell text = %q", text.Value)
	}
}

func TestOrderPreservation(t *testing.T) {
	tree := docTree(
		parser.NewNode(parser.KindParagraph).AppendChild(
			parser.NewLiteral(parser.KindText, "1"),
			parser.NewLiteral(parser.KindText, "2"),
			parser.NewLiteral(parser.KindText, "3"),
		),
		parser.NewNode(parser.KindThematicBreak),
		parser.NewNode(parser.KindParagraph).AppendChild(
			parser.NewLiteral(parser.KindText, "4"),
		),
	)

	doc, err := Document(tree)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	var order string
	if err := ast.Walk(doc, func(_ ast.NodeClass, n ast.Node) (bool, error) {
		if text, ok := n.(*ast.Text); ok {
			order += text.Value
		}
		return true, nil
	}); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if order != "1234" {
		t.Errorf("sibling order = %q, want 1234", order)
	}
}
