package layout

import "fmt"

// Kind discriminates the closed set of node variants. Measure and Arrange
// switch exhaustively over it; adding a kind means adding a matching arm.
type Kind uint8

const (
	KindLeaf   Kind = iota // Intrinsic content, no children
	KindRow                // Children laid out left-to-right
	KindColumn             // Children laid out top-to-bottom
	KindSplit              // One column slot per child, widths from Factor
	KindBox                // Children stacked in one slot
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	case KindSplit:
		return "split"
	case KindBox:
		return "box"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Align specifies how a container places children along its main axis.
//
// AlignExpand resizes flexible children to fill the container. The other
// modes keep every child at its natural size and apply the leftover space
// as a single positional offset during Arrange.
type Align uint8

const (
	AlignExpand Align = iota // Distribute space across flexible children
	AlignStart               // Pack children at the start, leftover at the end
	AlignCenter              // Center the packed children
	AlignEnd                 // Pack children at the end, leftover at the start
)

// Node is an element in the layout tree.
//
// Children are exclusively owned by their container in an ordered list; the
// parent pointer is a non-owning back-reference used only for upward
// queries, never for traversal or destruction, so cycles are structurally
// impossible. Nodes are created at build time and replaced wholesale at the
// next build; they are never mutated while a tick's measure/arrange is in
// flight.
type Node struct {
	// Configuration (set at build time)
	Kind    Kind
	Policy  Policy
	Spacing float64 // Gap between children on the main axis
	Align   Align
	Factor  float64 // Split first-column share in [0,1]; 0 means uniform
	ScaleX  float64 // Natural-size multipliers; 0 is treated as 1
	ScaleY  float64

	// Intrinsic is a leaf's natural/estimated content size.
	Intrinsic Size

	// Tag carries opaque caller data. The engine never reads it.
	Tag any

	Children []*Node
	parent   *Node

	// Computed (set by Measure / Arrange)
	size     Size
	measured bool
	rect     Rect
	arranged bool
	lastC    Constraints
}

// NewNode creates a node of the given kind with default policy and scale.
func NewNode(kind Kind) *Node {
	return &Node{
		Kind:   kind,
		Policy: DefaultPolicy(),
		ScaleX: 1,
		ScaleY: 1,
	}
}

// AddChild appends children, transferring ownership to this node.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		child.parent = n
		n.Children = append(n.Children, child)
	}
}

// RemoveChild removes a child by pointer, preserving sibling order.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Parent returns the containing node, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Size returns the measured size. Valid only after Measure.
func (n *Node) Size() Size {
	return n.size
}

// Rect returns the computed rectangle. Valid only after Arrange.
func (n *Node) Rect() Rect {
	return n.rect
}

// Measured returns true once Measure has run for the current tick.
func (n *Node) Measured() bool {
	return n.measured
}

// Arranged returns true once Arrange has run for the current tick.
func (n *Node) Arranged() bool {
	return n.arranged
}

// LastConstraints returns the normalized constraints this node was last
// measured under. Structural relayout re-measures a subtree against them
// to decide whether the change is contained or must bubble to the parent.
func (n *Node) LastConstraints() Constraints {
	return n.lastC
}

// Reset clears computed state on this node and all descendants so a
// recycled node can go through a fresh measure/arrange cycle.
func (n *Node) Reset() {
	n.size = Size{}
	n.rect = Rect{}
	n.measured = false
	n.arranged = false
	n.lastC = Constraints{}
	for _, child := range n.Children {
		child.Reset()
	}
}

// Walk traverses the subtree depth-first in child order (paint order),
// calling fn for each node. Returning false stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// scaleX returns the effective horizontal scale with 0 treated as 1.
func (n *Node) scaleX() float64 {
	if n.ScaleX <= 0 {
		return 1
	}
	return n.ScaleX
}

// scaleY returns the effective vertical scale with 0 treated as 1.
func (n *Node) scaleY() float64 {
	if n.ScaleY <= 0 {
		return 1
	}
	return n.ScaleY
}
