package render

import (
	"fmt"
	"strings"

	"github.com/gerunddev/docforge/ast"
	"github.com/gerunddev/docforge/styles"
)

// Outline writes a terminal summary of a document's structure: headings
// indented by level, with code blocks, callouts and footnotes listed under
// them. Everything below a heading's own inline content is flattened, so the
// walk prunes heading subtrees and reads their text directly.
func Outline(doc *ast.Document) string {
	var b strings.Builder

	_ = ast.Walk(doc, func(class ast.NodeClass, n ast.Node) (bool, error) {
		switch node := n.(type) {
		case *ast.Heading:
			indent := strings.Repeat("  ", node.Level-1)
			line := styles.HeadingStyle(node.Level).Render(PlainText(node.Children))
			fmt.Fprintf(&b, "%s%s\n", indent, line)
			return false, nil
		case *ast.CodeBlock:
			label := node.Language
			if label == "" {
				label = "code"
			}
			fmt.Fprintf(&b, "    %s\n", styles.CodeStyle.Render("["+label+"]"))
			return false, nil
		case *ast.Admonition:
			fmt.Fprintf(&b, "    %s\n", styles.CalloutStyle.Render("[!"+node.Kind+"]"))
			return false, nil
		case *ast.Footnote:
			fmt.Fprintf(&b, "    %s\n", styles.FootnoteStyle.Render("[^"+node.ID+"]"))
			return false, nil
		}
		return true, nil
	})

	return b.String()
}
