package layout

import (
	"fmt"
	"math"
)

// Measure computes the size of n under the given constraints, measuring all
// descendants bottom-up. The result is stored on each node and returned.
//
// Children are measured with loosened constraints so their natural sizes
// surface before the container decides its distribution; the container then
// finalizes main-axis sizes and only afterwards its cross-axis size. A
// container child whose distributed size differs from its natural size is
// laid out again inside its assigned slot, so distribution holds at every
// depth of the tree.
func Measure(n *Node, c Constraints) Size {
	if n == nil {
		return Size{}
	}
	c = c.Normalized()

	var s Size
	switch n.Kind {
	case KindLeaf:
		s = measureLeaf(n)
	case KindRow:
		s = measureFlow(n, c, true)
	case KindColumn:
		s = measureFlow(n, c, false)
	case KindSplit:
		s = measureSplit(n, c)
	case KindBox:
		s = measureBox(n, c)
	default:
		panic(fmt.Sprintf("layout: Measure: unhandled node kind %s", n.Kind))
	}

	// Scale multiplies the already-measured natural size so the parent sees
	// the scaled size when computing its own content size. A fixed basis
	// overrides this on the main axis during the parent's distribution.
	s.Width *= n.scaleX()
	s.Height *= n.scaleY()

	s = c.Constrain(s)
	n.size = s
	n.measured = true
	n.lastC = c
	return s
}

// measureLeaf returns the leaf's intrinsic size with negatives clamped.
func measureLeaf(n *Node) Size {
	return Size{
		Width:  max(n.Intrinsic.Width, 0),
		Height: max(n.Intrinsic.Height, 0),
	}
}

// measureFlow measures a row (horizontal=true) or column container.
func measureFlow(n *Node, c Constraints, horizontal bool) Size {
	if len(n.Children) == 0 {
		return Size{}
	}

	childC := c.Loosened()
	for _, child := range n.Children {
		Measure(child, childC)
	}

	spacingTotal := n.Spacing * float64(len(n.Children)-1)
	if spacingTotal < 0 {
		spacingTotal = 0
	}

	naturalMain := spacingTotal
	for _, child := range n.Children {
		naturalMain += naturalMainOf(child, horizontal)
	}

	mainSize := resolveMain(c, horizontal, naturalMain)

	if n.Align == AlignExpand {
		distributeMain(n, childC, mainSize, spacingTotal, horizontal)
	} else {
		// Natural-size modes keep each child's measured size; only a fixed
		// basis still overrides, since fixed wins over weight and scale.
		for _, child := range n.Children {
			if child.Policy.IsFixed() {
				assignMain(child, childC, horizontal, child.Policy.clampMain(child.Policy.Basis.Resolve(0)))
			}
		}
	}

	// Cross size is finalized only after every main-axis size is decided.
	crossNatural := 0.0
	for _, child := range n.Children {
		crossNatural = max(crossNatural, crossOf(child.size, horizontal))
	}
	crossSize := resolveCross(c, horizontal, crossNatural)

	return orient(mainSize, crossSize, horizontal)
}

// distributeMain assigns main-axis sizes for an expand-aligned container:
// fixed children get their basis, flexible children share the remainder.
func distributeMain(n *Node, childC Constraints, mainSize, spacingTotal float64, horizontal bool) {
	fixedTotal := 0.0
	for _, child := range n.Children {
		if child.Policy.IsFixed() {
			basis := child.Policy.clampMain(child.Policy.Basis.Resolve(0))
			assignMain(child, childC, horizontal, basis)
			fixedTotal += basis
		}
	}

	available := max(0, mainSize-fixedTotal-spacingTotal)

	// A flexible child's share is its weight scaled by its natural main
	// size, so siblings grow in proportion to their content. When no
	// flexible child reports a natural size (pure spacers), raw weights
	// decide the split instead.
	shares := make([]float64, len(n.Children))
	totalShare := 0.0
	for i, child := range n.Children {
		if child.Policy.IsFixed() {
			continue
		}
		shares[i] = child.Policy.weight() * mainOf(child.size, horizontal)
		totalShare += shares[i]
	}
	if totalShare == 0 {
		for i, child := range n.Children {
			if child.Policy.IsFixed() {
				continue
			}
			shares[i] = child.Policy.weight()
			totalShare += shares[i]
		}
	}
	if totalShare == 0 {
		// Degenerate: all weights zero. Treat the divisor as 1 so every
		// flexible child gets a zero share rather than NaN.
		totalShare = 1
	}

	for i, child := range n.Children {
		if child.Policy.IsFixed() {
			continue
		}
		assigned := available * shares[i] / totalShare
		assignMain(child, childC, horizontal, child.Policy.clampMain(assigned))
	}
}

// assignMain gives a child its post-distribution main-axis size. A
// container landing on a size other than the one it measured is laid out
// again under constraints tight on the main axis, so its own children
// redistribute inside the new slot.
func assignMain(child *Node, childC Constraints, horizontal bool, v float64) {
	if v < 0 {
		v = 0
	}
	if len(child.Children) > 0 && !almostEqualSize(v, mainOf(child.size, horizontal)) {
		Measure(child, tightMain(childC, horizontal, v))
		return
	}
	setMain(child, horizontal, v)
}

// almostEqualSize reports whether two computed sizes coincide within
// floating tolerance.
func almostEqualSize(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

// tightMain narrows constraints to exactly v on the main axis, keeping the
// cross-axis bounds.
func tightMain(c Constraints, horizontal bool, v float64) Constraints {
	if horizontal {
		return Constraints{MinWidth: v, MaxWidth: v, MaxHeight: c.MaxHeight}
	}
	return Constraints{MaxWidth: c.MaxWidth, MinHeight: v, MaxHeight: v}
}

// measureSplit measures a split container: N columns from one factor.
// The first column takes factor × usable width; factor 0 means uniform 1/N;
// the remaining columns share what is left equally. Each direct child
// occupies exactly one column slot in append order.
func measureSplit(n *Node, c Constraints) Size {
	count := len(n.Children)
	if count == 0 {
		return Size{}
	}

	childC := c.Loosened()
	for _, child := range n.Children {
		Measure(child, childC)
	}

	spacingTotal := n.Spacing * float64(count-1)
	if spacingTotal < 0 {
		spacingTotal = 0
	}

	naturalMain := spacingTotal
	for _, child := range n.Children {
		naturalMain += naturalMainOf(child, true)
	}

	width := resolveMain(c, true, naturalMain)
	usable := max(0, width-spacingTotal)

	factor := clamp(n.Factor, 0, 1)
	for i, child := range n.Children {
		assignMain(child, childC, true, splitColumnWidth(usable, factor, i, count))
	}

	crossNatural := 0.0
	for _, child := range n.Children {
		crossNatural = max(crossNatural, child.size.Height)
	}
	height := resolveCross(c, true, crossNatural)

	return Size{Width: width, Height: height}
}

// splitColumnWidth returns the width of column i of count columns.
func splitColumnWidth(usable, factor float64, i, count int) float64 {
	if factor == 0 {
		return usable / float64(count)
	}
	first := usable * factor
	if i == 0 {
		return first
	}
	return (usable - first) / float64(count-1)
}

// measureBox measures a box container: children stack in a single slot and
// the box wraps the largest child on each axis.
func measureBox(n *Node, c Constraints) Size {
	if len(n.Children) == 0 {
		return Size{}
	}

	childC := c.Loosened()
	natural := Size{}
	for _, child := range n.Children {
		cs := Measure(child, childC)
		natural.Width = max(natural.Width, cs.Width)
		natural.Height = max(natural.Height, cs.Height)
	}

	return Size{
		Width:  resolveMain(c, true, natural.Width),
		Height: resolveCross(c, true, natural.Height),
	}
}

// resolveMain picks the container's main-axis size: a tight constraint
// dictates it, otherwise the natural content size is clamped into range.
func resolveMain(c Constraints, horizontal bool, natural float64) float64 {
	if horizontal {
		if c.IsTightWidth() {
			return c.MaxWidth
		}
		return clamp(natural, c.MinWidth, c.MaxWidth)
	}
	if c.IsTightHeight() {
		return c.MaxHeight
	}
	return clamp(natural, c.MinHeight, c.MaxHeight)
}

// resolveCross picks the container's cross-axis size.
func resolveCross(c Constraints, horizontal bool, natural float64) float64 {
	return resolveMain(c, !horizontal, natural)
}

// naturalMainOf is a child's contribution to its container's natural main
// size: fixed children count at their basis, flexible children at their
// measured size. Summing a fixed child's measured size instead would let a
// basis larger than the intrinsic size overflow a loosely constrained
// container.
func naturalMainOf(child *Node, horizontal bool) float64 {
	if child.Policy.IsFixed() {
		return child.Policy.clampMain(child.Policy.Basis.Resolve(0))
	}
	return mainOf(child.size, horizontal)
}

// mainOf returns the main-axis dimension of s.
func mainOf(s Size, horizontal bool) float64 {
	if horizontal {
		return s.Width
	}
	return s.Height
}

// crossOf returns the cross-axis dimension of s.
func crossOf(s Size, horizontal bool) float64 {
	if horizontal {
		return s.Height
	}
	return s.Width
}

// setMain overwrites a node's stored main-axis size after distribution.
func setMain(n *Node, horizontal bool, v float64) {
	if v < 0 {
		v = 0
	}
	if horizontal {
		n.size.Width = v
	} else {
		n.size.Height = v
	}
}

// orient builds a Size from main/cross dimensions.
func orient(mainSize, crossSize float64, horizontal bool) Size {
	if horizontal {
		return Size{Width: mainSize, Height: crossSize}
	}
	return Size{Width: crossSize, Height: mainSize}
}
