// Package ast defines the typed document tree that docforge builds from a
// generic markup parse tree. The hierarchy is closed: every block and inline
// variant is declared here, and consumers dispatch with exhaustive type
// switches so that adding a variant breaks every dispatch site at compile time.
package ast

// NodeClass tags which half of the hierarchy a node belongs to.
type NodeClass int

const (
	ClassBlock NodeClass = iota
	ClassInline
)

func (c NodeClass) String() string {
	if c == ClassBlock {
		return "block"
	}
	return "inline"
}

// Node is implemented by every AST node.
type Node interface {
	node()
}

// Block is a structural unit that stands alone at document or container level.
type Block interface {
	Node
	block()
}

// Inline is a unit that exists only inside the text flow of a block.
type Inline interface {
	Node
	inline()
}

// Document is the root container: an ordered sequence of top-level blocks.
// Blocks keep source order; the only mutations are Append and SetBlock.
type Document struct {
	Blocks []Block
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Append adds blocks to the end of the document, preserving argument order.
func (d *Document) Append(blocks ...Block) {
	d.Blocks = append(d.Blocks, blocks...)
}

// SetBlock replaces the block at index i.
func (d *Document) SetBlock(i int, b Block) {
	d.Blocks[i] = b
}

// Len returns the number of top-level blocks.
func (d *Document) Len() int {
	return len(d.Blocks)
}
