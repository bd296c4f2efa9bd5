package flexel

import "strings"

// SyncResult reports the outcome of syncing one binding.
type SyncResult struct {
	// Changed is true when the widget's value or enabled state changed.
	Changed bool

	// Relayout is true when the binding's value shape changed (for
	// example a dynamically enumerated option set), requiring structural
	// relayout of the containing subtree rather than a mere repaint.
	Relayout bool
}

// Binder is the per-tick sync contract for a property binding. The engine
// calls Sync exactly once per binding per tick, independent of layout
// ordering, after arrange and before hit-test/draw.
type Binder interface {
	Sync(tc *TickContext) SyncResult
	Element() *Element
	Attach(e *Element)
}

// Binding keeps a widget synchronized with live external state without
// ever holding a reference to it. The resolver is re-invoked every tick
// and may stop yielding a value when the external source is deleted; only
// the last observed value and source identity are cached, by value, so a
// destroyed source can never leave a dangling reference.
type Binding[T comparable] struct {
	resolve func(tc *TickContext) (value T, source string, ok bool)
	apply   func(T)
	shape   func(tc *TickContext) string

	elem *Element

	haveValue  bool
	lastValue  T
	lastSource string

	haveShape bool
	lastShape string
}

// Bind creates a property binding. resolve re-derives the value and its
// source identity from external state each tick; apply pushes a changed
// value into the widget.
func Bind[T comparable](resolve func(tc *TickContext) (T, string, bool), apply func(T)) *Binding[T] {
	return &Binding[T]{resolve: resolve, apply: apply}
}

// WithShape registers a shape-signature function. When the signature
// changes between ticks the binding requests structural relayout of its
// containing subtree. Use [ShapeOf] to derive a signature from an
// enumerated option set.
func (b *Binding[T]) WithShape(fn func(tc *TickContext) string) *Binding[T] {
	b.shape = fn
	return b
}

// Attach associates the binding with its widget element. Called by
// [WithBinding] during construction.
func (b *Binding[T]) Attach(e *Element) {
	b.elem = e
}

// Element returns the widget element this binding drives.
func (b *Binding[T]) Element() *Element {
	return b.elem
}

// Value returns the last observed value and whether one is cached.
func (b *Binding[T]) Value() (T, bool) {
	return b.lastValue, b.haveValue
}

// Sync resolves the binding against live state and reconciles the widget.
//
// A resolver that yields nothing disables the widget (reported as changed
// only on the transition) and drops the cached value so no component
// retains the stale resolution. A successful resolve re-enables the
// widget and pushes the value only when (value, source identity) differs
// from the cache — identity catches "same value, different underlying
// source".
func (b *Binding[T]) Sync(tc *TickContext) SyncResult {
	value, source, ok := b.resolve(tc)
	if !ok {
		changed := false
		if b.elem != nil && b.elem.Enabled() {
			b.elem.SetEnabled(false)
			changed = true
		}
		var zero T
		b.lastValue = zero
		b.lastSource = ""
		b.haveValue = false
		return SyncResult{Changed: changed}
	}

	changed := false
	if b.elem != nil && !b.elem.Enabled() {
		b.elem.SetEnabled(true)
		changed = true
	}

	if !b.haveValue || value != b.lastValue || source != b.lastSource {
		if b.apply != nil {
			b.apply(value)
		}
		b.lastValue = value
		b.lastSource = source
		b.haveValue = true
		changed = true
	}

	relayout := false
	if b.shape != nil {
		sig := b.shape(tc)
		if b.haveShape && sig != b.lastShape {
			relayout = true
			changed = true
		}
		b.lastShape = sig
		b.haveShape = true
	}

	return SyncResult{Changed: changed, Relayout: relayout}
}

// ShapeOf derives a shape signature from an enumerated option set. Two
// sets with the same names in the same order produce the same signature.
func ShapeOf(options []string) string {
	return strings.Join(options, "\x1f")
}
