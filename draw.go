package flexel

// PaintBackend receives resolved paint commands. The engine is agnostic
// about what happens on the other side: a terminal cell grid, a pixel
// canvas, or a test recorder all satisfy it.
type PaintBackend interface {
	// Paint fills the given rectangle with the given resolved style.
	Paint(rect Rect, style Style)
}

// PaintFunc adapts a function to the PaintBackend interface.
type PaintFunc func(rect Rect, style Style)

// Paint calls f(rect, style).
func (f PaintFunc) Paint(rect Rect, style Style) {
	f(rect, style)
}

// Draw walks the arranged tree in paint order and emits one paint command
// per leaf. Containers are layout-only and produce no output. Disabled
// leaves render with the placeholder style regardless of their own style
// name, so degraded widgets stay visible without pretending to be live.
func (e *Engine) Draw(backend PaintBackend) error {
	if backend == nil {
		return nil
	}
	if e.root == nil {
		return ErrNoRoot
	}
	if !e.root.node.Arranged() {
		return ErrNotArranged
	}

	e.root.Walk(func(el *Element) bool {
		if el.Kind() != KindLeaf {
			return true
		}
		style := e.styles.Resolve(el.styleName)
		if !el.enabled {
			style = e.styles.Placeholder()
		}
		backend.Paint(el.Rect(), style)
		return true
	})
	return nil
}
