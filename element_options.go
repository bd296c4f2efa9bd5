package flexel

import "github.com/sorenbell/flexel/pkg/layout"

// Option configures an Element.
type Option func(*Element)

// --- Sizing Options ---

// WithBasis requests a fixed main-axis size, removing the element from
// flex distribution. Fixed wins over weight and scale on that axis.
func WithBasis(px float64) Option {
	return func(e *Element) {
		e.node.Policy.Basis = layout.Fixed(px)
	}
}

// WithWeight sets the element's proportional share of distributed space
// relative to siblings. The default weight is 1.
func WithWeight(w float64) Option {
	return func(e *Element) {
		e.node.Policy.Weight = w
	}
}

// WithMinSize sets the minimum main-axis size applied after distribution.
func WithMinSize(px float64) Option {
	return func(e *Element) {
		e.node.Policy.Min = layout.Fixed(px)
	}
}

// WithMaxSize sets the maximum main-axis size applied after distribution.
func WithMaxSize(px float64) Option {
	return func(e *Element) {
		e.node.Policy.Max = layout.Fixed(px)
	}
}

// WithPolicy replaces the element's whole sizing policy.
func WithPolicy(p Policy) Option {
	return func(e *Element) {
		e.node.Policy = p
	}
}

// WithScale sets the natural-size multipliers applied after measurement.
// Under expand alignment the effect is re-normalized away; under natural
// alignment modes it is visually apparent.
func WithScale(sx, sy float64) Option {
	return func(e *Element) {
		e.node.ScaleX = sx
		e.node.ScaleY = sy
	}
}

// --- Container Options ---

// WithSpacing sets the gap between children on the main axis.
func WithSpacing(px float64) Option {
	return func(e *Element) {
		e.node.Spacing = px
	}
}

// WithAlign sets the container's alignment mode. AlignExpand distributes
// space across flexible children; the other modes keep natural sizes and
// offset the whole run.
func WithAlign(a Align) Option {
	return func(e *Element) {
		e.node.Align = a
	}
}

// --- Identity Options ---

// WithKey sets an explicit stable key, overriding the build-order path
// segment. Siblings that keep their explicit keys keep their hover, press,
// and focus state across reorders.
func WithKey(key string) Option {
	return func(e *Element) {
		e.explicitKey = key
	}
}

// --- Visual Options ---

// WithStyle sets the style reference resolved at draw time.
func WithStyle(name string) Option {
	return func(e *Element) {
		e.styleName = name
	}
}

// --- Interaction Options ---

// WithOnClick sets the click handler. Implicitly makes the element
// interactive.
func WithOnClick(fn func()) Option {
	return func(e *Element) {
		e.interactive = true
		e.onClick = fn
	}
}

// WithOnHover sets the hover enter/leave handler. Implicitly makes the
// element interactive.
func WithOnHover(fn func(entered bool)) Option {
	return func(e *Element) {
		e.interactive = true
		e.onHover = fn
	}
}

// WithOnFocus sets the focus gained/lost handler. Implicitly makes the
// element interactive.
func WithOnFocus(fn func(focused bool)) Option {
	return func(e *Element) {
		e.interactive = true
		e.onFocus = fn
	}
}

// WithOnEvent sets a raw pointer-event handler. Returning true consumes
// the event and stops propagation to elements visually beneath. Implicitly
// makes the element interactive.
func WithOnEvent(fn func(PointerEvent) bool) Option {
	return func(e *Element) {
		e.interactive = true
		e.onEvent = fn
	}
}

// WithInteractive marks the element for hit testing without handlers.
func WithInteractive() Option {
	return func(e *Element) {
		e.interactive = true
	}
}

// --- Binding Options ---

// WithBinding attaches a property binding synced once per tick.
func WithBinding(b Binder) Option {
	return func(e *Element) {
		b.Attach(e)
		e.bindings = append(e.bindings, b)
	}
}

// --- Composition Options ---

// WithChildren appends children during construction.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		e.AddChild(children...)
	}
}
