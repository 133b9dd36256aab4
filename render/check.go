package render

import (
	"fmt"
	"sort"

	"github.com/gerunddev/docforge/ast"
)

// Finding is one structural problem reported by Check.
type Finding struct {
	Message string
}

// Check runs structural lints over a document: footnote references without a
// matching definition (and the reverse), heading levels that jump more than
// one step, links with an empty destination, and footnotes that reference
// themselves.
func Check(doc *ast.Document) []Finding {
	var findings []Finding

	defs := make(map[string]bool)
	refs := make(map[string]bool)
	lastLevel := 0

	_ = ast.Walk(doc, func(_ ast.NodeClass, n ast.Node) (bool, error) {
		switch node := n.(type) {
		case *ast.Heading:
			if lastLevel > 0 && node.Level > lastLevel+1 {
				findings = append(findings, Finding{
					Message: fmt.Sprintf("heading level jumps from %d to %d (%q)",
						lastLevel, node.Level, PlainText(node.Children)),
				})
			}
			lastLevel = node.Level
		case *ast.Footnote:
			defs[node.ID] = true
		case *ast.FootnoteReference:
			refs[node.ID] = true
		case *ast.Link:
			if node.Destination == "" {
				findings = append(findings, Finding{
					Message: fmt.Sprintf("link %q has no destination", PlainText(node.Children)),
				})
			}
		}
		return true, nil
	})

	// Map order is random; sort the IDs so findings come out stable.
	for _, id := range sortedMisses(refs, defs) {
		findings = append(findings, Finding{Message: fmt.Sprintf("footnote reference [^%s] has no definition", id)})
	}
	for _, id := range sortedMisses(defs, refs) {
		findings = append(findings, Finding{Message: fmt.Sprintf("footnote [^%s] is never referenced", id)})
	}

	// Self-references need branch context: the enclosing footnote's ID is
	// stashed in the walk metadata so only its own subtree sees it.
	_ = ast.WalkContext(doc, nil, func(meta map[string]string, _ ast.Node, n ast.Node) error {
		switch node := n.(type) {
		case *ast.Footnote:
			meta["footnote"] = node.ID
		case *ast.FootnoteReference:
			if meta["footnote"] == node.ID {
				findings = append(findings, Finding{
					Message: fmt.Sprintf("footnote [^%s] references itself", node.ID),
				})
			}
		}
		return nil
	})

	return findings
}

// sortedMisses returns the keys of have that are absent from want, in order.
func sortedMisses(have, want map[string]bool) []string {
	var ids []string
	for id := range have {
		if !want[id] {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
