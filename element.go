package flexel

import "github.com/sorenbell/flexel/pkg/layout"

// Element is a widget-level wrapper around a layout node. It adds stable
// identity, style, interactivity, and property bindings on top of the pure
// measure/arrange tree.
//
// Elements are created during build and replaced wholesale at the next
// build; hover/press/focus state survives rebuilds through StableKey, not
// through element pointers. Children are exclusively owned; the parent
// pointer is a non-owning back-reference.
type Element struct {
	node *layout.Node

	children []*Element
	parent   *Element

	// Identity
	explicitKey string
	key         StableKey
	keyed       bool

	// Visual properties
	styleName string

	// Interactivity
	interactive bool
	enabled     bool
	onClick     func()
	onHover     func(entered bool)
	onFocus     func(focused bool)
	onEvent     func(PointerEvent) bool

	// Property bindings synced each tick
	bindings []Binder
}

// newElement creates an element of the given kind with options applied.
func newElement(kind layout.Kind, opts ...Option) *Element {
	e := &Element{
		node:    layout.NewNode(kind),
		enabled: true,
	}
	e.node.Tag = e
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Row creates a container that lays children out left-to-right.
func Row(opts ...Option) *Element {
	return newElement(layout.KindRow, opts...)
}

// Column creates a container that lays children out top-to-bottom.
func Column(opts ...Option) *Element {
	return newElement(layout.KindColumn, opts...)
}

// Split creates a container with one column slot per child. The first
// column takes factor of the content width; factor 0 means uniform
// columns. Factors outside [0, 1] are clamped during measurement.
func Split(factor float64, opts ...Option) *Element {
	e := newElement(layout.KindSplit, opts...)
	e.node.Factor = factor
	return e
}

// Box creates a container that stacks children in a single slot.
func Box(opts ...Option) *Element {
	return newElement(layout.KindBox, opts...)
}

// Leaf creates a content element with the given intrinsic size hint.
func Leaf(width, height float64, opts ...Option) *Element {
	e := newElement(layout.KindLeaf, opts...)
	e.node.Intrinsic = Size{Width: width, Height: height}
	return e
}

// Kind returns the element's layout variant.
func (e *Element) Kind() Kind {
	return e.node.Kind
}

// Node returns the underlying layout node.
func (e *Element) Node() *layout.Node {
	return e.node
}

// Key returns the stable identity assigned at build. Valid only after the
// engine's Build pass for the current tick.
func (e *Element) Key() StableKey {
	return e.key
}

// Rect returns the computed rectangle. Valid only after Arrange.
func (e *Element) Rect() Rect {
	return e.node.Rect()
}

// Enabled returns false when a binding's external source has gone missing.
// Disabled elements render as inert placeholders and drop out of the hit
// list, but keep their rectangle so surrounding layout does not jump.
func (e *Element) Enabled() bool {
	return e.enabled
}

// SetEnabled toggles the element's enabled state. Binding sync calls this
// when the resolver stops (or resumes) yielding a value.
func (e *Element) SetEnabled(enabled bool) {
	e.enabled = enabled
}

// Interactive returns true if the element participates in hit testing.
func (e *Element) Interactive() bool {
	return e.interactive
}

// StyleName returns the style reference resolved at draw time.
func (e *Element) StyleName() string {
	return e.styleName
}

// Bindings returns the property bindings attached to this element.
func (e *Element) Bindings() []Binder {
	return e.bindings
}
