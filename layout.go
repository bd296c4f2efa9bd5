// layout.go re-exports layout types from pkg/layout.
// Any changes to pkg/layout types must be mirrored here.
package flexel

import "github.com/sorenbell/flexel/pkg/layout"

// Kind discriminates the closed set of element variants.
type Kind = layout.Kind

const (
	KindLeaf   = layout.KindLeaf
	KindRow    = layout.KindRow
	KindColumn = layout.KindColumn
	KindSplit  = layout.KindSplit
	KindBox    = layout.KindBox
)

// Align specifies how a container places children along its main axis.
type Align = layout.Align

const (
	AlignExpand = layout.AlignExpand
	AlignStart  = layout.AlignStart
	AlignCenter = layout.AlignCenter
	AlignEnd    = layout.AlignEnd
)

// Constraints is the immutable min/max box passed down during measurement.
type Constraints = layout.Constraints

// Policy controls fixed versus weight-flexible sizing on the main axis.
type Policy = layout.Policy

// Value represents a dimension value (fixed or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto  = layout.UnitAuto
	UnitFixed = layout.UnitFixed
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Node is the underlying layout tree node.
type Node = layout.Node

// Fixed creates a Value with an absolute pixel amount.
func Fixed(px float64) Value {
	return layout.Fixed(px)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// Tight creates constraints that force an exact size on both axes.
func Tight(width, height float64) Constraints {
	return layout.Tight(width, height)
}

// Loose creates constraints with zero minimums and the given maximums.
func Loose(width, height float64) Constraints {
	return layout.Loose(width, height)
}

// TightWidth creates constraints tight horizontally and loose vertically.
func TightWidth(width, maxHeight float64) Constraints {
	return layout.TightWidth(width, maxHeight)
}

// TightHeight creates constraints loose horizontally and tight vertically.
func TightHeight(maxWidth, height float64) Constraints {
	return layout.TightHeight(maxWidth, height)
}

// DefaultPolicy returns a Policy with flexible sizing and weight 1.
func DefaultPolicy() Policy {
	return layout.DefaultPolicy()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}
