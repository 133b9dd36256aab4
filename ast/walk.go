package ast

import "errors"

// Visitor is called once per node during a walk, tagged with the node's
// class. Returning false skips the node's children; siblings still run.
// A non-nil error aborts the walk and is returned to the caller unwrapped.
type Visitor func(class NodeClass, n Node) (bool, error)

// Walk traverses the document pre-order, depth-first, in sibling order,
// visiting every node exactly once.
func Walk(doc *Document, visit Visitor) error {
	for _, b := range doc.Blocks {
		if err := walkBlock(b, visit); err != nil {
			return err
		}
	}
	return nil
}

func walkBlock(b Block, visit Visitor) error {
	descend, err := visit(ClassBlock, b)
	if err != nil {
		return err
	}
	if !descend {
		return nil
	}

	switch n := b.(type) {
	case *BlockQuote:
		return walkBlocks(n.Children, visit)
	case *Admonition:
		return walkBlocks(n.Children, visit)
	case *Footnote:
		return walkBlocks(n.Children, visit)
	case *Paragraph:
		return walkInlines(n.Children, visit)
	case *Heading:
		return walkInlines(n.Children, visit)
	case *List:
		for _, item := range n.Items {
			if err := walkBlocks(item, visit); err != nil {
				return err
			}
		}
		return nil
	case *Table:
		if err := walkCells(n.Header, visit); err != nil {
			return err
		}
		for _, row := range n.Rows {
			if err := walkCells(row, visit); err != nil {
				return err
			}
		}
		return nil
	case *ThematicBreak, *CodeBlock, *DisplayMath:
		return nil
	}
	return nil
}

func walkInline(in Inline, visit Visitor) error {
	descend, err := visit(ClassInline, in)
	if err != nil {
		return err
	}
	if !descend {
		return nil
	}

	switch n := in.(type) {
	case *Emphasis:
		return walkInlines(n.Children, visit)
	case *Strong:
		return walkInlines(n.Children, visit)
	case *Link:
		return walkInlines(n.Children, visit)
	case *Image:
		return walkInlines(n.Alt, visit)
	case *Text, *CodeSpan, *LineBreak, *InlineMath, *FootnoteReference:
		return nil
	}
	return nil
}

func walkBlocks(blocks []Block, visit Visitor) error {
	for _, b := range blocks {
		if err := walkBlock(b, visit); err != nil {
			return err
		}
	}
	return nil
}

func walkInlines(inlines []Inline, visit Visitor) error {
	for _, in := range inlines {
		if err := walkInline(in, visit); err != nil {
			return err
		}
	}
	return nil
}

func walkCells(cells []TableCell, visit Visitor) error {
	for i := range cells {
		if err := walkInlines(cells[i].Children, visit); err != nil {
			return err
		}
	}
	return nil
}

// ContextVisitor receives per-branch metadata and the visited node's parent.
// It cannot prune; the walk always descends.
type ContextVisitor func(meta map[string]string, parent, n Node) error

// WalkContext traverses like Walk but threads a metadata map down the call
// stack. The map is copied before descending into a node's children, so a
// value stashed by a visitor is visible to that node's descendants but never
// leaks into a sibling branch.
func WalkContext(doc *Document, meta map[string]string, visit ContextVisitor) error {
	if meta == nil {
		meta = make(map[string]string)
	}
	for _, b := range doc.Blocks {
		if err := contextBlock(meta, nil, b, visit); err != nil {
			return err
		}
	}
	return nil
}

func copyMeta(meta map[string]string) map[string]string {
	scoped := make(map[string]string, len(meta))
	for k, v := range meta {
		scoped[k] = v
	}
	return scoped
}

func contextBlock(meta map[string]string, parent Node, b Block, visit ContextVisitor) error {
	scoped := copyMeta(meta)
	if err := visit(scoped, parent, b); err != nil {
		return err
	}

	switch n := b.(type) {
	case *BlockQuote:
		return contextBlocks(scoped, n, n.Children, visit)
	case *Admonition:
		return contextBlocks(scoped, n, n.Children, visit)
	case *Footnote:
		return contextBlocks(scoped, n, n.Children, visit)
	case *Paragraph:
		return contextInlines(scoped, n, n.Children, visit)
	case *Heading:
		return contextInlines(scoped, n, n.Children, visit)
	case *List:
		for _, item := range n.Items {
			if err := contextBlocks(scoped, n, item, visit); err != nil {
				return err
			}
		}
	case *Table:
		for i := range n.Header {
			if err := contextInlines(scoped, n, n.Header[i].Children, visit); err != nil {
				return err
			}
		}
		for _, row := range n.Rows {
			for i := range row {
				if err := contextInlines(scoped, n, row[i].Children, visit); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func contextInline(meta map[string]string, parent Node, in Inline, visit ContextVisitor) error {
	scoped := copyMeta(meta)
	if err := visit(scoped, parent, in); err != nil {
		return err
	}

	switch n := in.(type) {
	case *Emphasis:
		return contextInlines(scoped, n, n.Children, visit)
	case *Strong:
		return contextInlines(scoped, n, n.Children, visit)
	case *Link:
		return contextInlines(scoped, n, n.Children, visit)
	case *Image:
		return contextInlines(scoped, n, n.Alt, visit)
	}
	return nil
}

func contextBlocks(meta map[string]string, parent Node, blocks []Block, visit ContextVisitor) error {
	for _, b := range blocks {
		if err := contextBlock(meta, parent, b, visit); err != nil {
			return err
		}
	}
	return nil
}

func contextInlines(meta map[string]string, parent Node, inlines []Inline, visit ContextVisitor) error {
	for _, in := range inlines {
		if err := contextInline(meta, parent, in, visit); err != nil {
			return err
		}
	}
	return nil
}

// errStopWalk stops FindFirst early without surfacing an error.
var errStopWalk = errors.New("stop walk")

// FindAll returns every node matching the predicate, in visit order.
func FindAll(doc *Document, match func(Node) bool) []Node {
	var found []Node
	_ = Walk(doc, func(_ NodeClass, n Node) (bool, error) {
		if match(n) {
			found = append(found, n)
		}
		return true, nil
	})
	return found
}

// FindFirst returns the first node matching the predicate, or nil.
func FindFirst(doc *Document, match func(Node) bool) Node {
	var found Node
	err := Walk(doc, func(_ NodeClass, n Node) (bool, error) {
		if match(n) {
			found = n
			return false, errStopWalk
		}
		return true, nil
	})
	if err != nil && !errors.Is(err, errStopWalk) {
		return nil
	}
	return found
}
