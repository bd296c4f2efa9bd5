package layout

import "fmt"

// Arrange positions n at (x, y) and places all descendants strictly
// top-down using the sizes computed by Measure. Rectangles are valid only
// after this call returns.
func Arrange(n *Node, x, y float64) {
	if n == nil {
		return
	}
	n.rect = Rect{X: x, Y: y, Width: n.size.Width, Height: n.size.Height}
	n.arranged = true

	switch n.Kind {
	case KindLeaf:
		// Leaves have no children to place.
	case KindRow:
		arrangeFlow(n, true)
	case KindColumn:
		arrangeFlow(n, false)
	case KindSplit:
		// Columns were sized during measure; placement is sequential.
		arrangeFlow(n, true)
	case KindBox:
		arrangeBox(n)
	default:
		panic(fmt.Sprintf("layout: Arrange: unhandled node kind %s", n.Kind))
	}
}

// arrangeFlow places children sequentially along the main axis. In
// non-expand alignment modes the leftover space becomes a single positional
// offset for the whole run, never a per-child resize.
func arrangeFlow(n *Node, horizontal bool) {
	if len(n.Children) == 0 {
		return
	}

	used := n.Spacing * float64(len(n.Children)-1)
	for _, child := range n.Children {
		used += mainOf(child.size, horizontal)
	}

	leftover := max(0, mainOf(n.size, horizontal)-used)
	cursor := alignOffset(n.Align, leftover)

	for _, child := range n.Children {
		if horizontal {
			Arrange(child, n.rect.X+cursor, n.rect.Y)
		} else {
			Arrange(child, n.rect.X, n.rect.Y+cursor)
		}
		cursor += mainOf(child.size, horizontal) + n.Spacing
	}
}

// arrangeBox stacks children in the container's single slot, aligning each
// on both axes.
func arrangeBox(n *Node) {
	for _, child := range n.Children {
		dx := alignOffset(n.Align, max(0, n.size.Width-child.size.Width))
		dy := alignOffset(n.Align, max(0, n.size.Height-child.size.Height))
		Arrange(child, n.rect.X+dx, n.rect.Y+dy)
	}
}

// alignOffset converts leftover space into a starting offset.
func alignOffset(align Align, leftover float64) float64 {
	switch align {
	case AlignCenter:
		return leftover / 2
	case AlignEnd:
		return leftover
	default: // AlignExpand, AlignStart
		return 0
	}
}
