package flexel

import "fmt"

// Dispatch delivers a pointer event against the current hit list, walking
// it in reverse paint order (frontmost first). Delivery stops at the first
// target that consumes the event, so a handled event never also fires on
// elements visually beneath it. Returns true if any target consumed it.
//
// All hover/press/focus writes go through InteractionState by stable key,
// so the outcome survives tree rebuilds.
func (e *Engine) Dispatch(ev PointerEvent) bool {
	list := e.hits

	switch ev.Kind {
	case PointerMove:
		return e.dispatchMove(list, ev)
	case PointerDown:
		return e.dispatchDown(list, ev)
	case PointerUp:
		return e.dispatchUp(list, ev)
	default:
		e.violation(fmt.Sprintf("dispatch: unknown pointer kind %d", ev.Kind))
		return false
	}
}

func (e *Engine) dispatchMove(list HitList, ev PointerEvent) bool {
	consumed := false
	var hoveredID string
	for i := len(list) - 1; i >= 0; i-- {
		t := &list[i]
		if !t.Rect.Contains(ev.X, ev.Y) {
			continue
		}
		if t.elem != nil && t.elem.onEvent != nil && !t.elem.onEvent(ev) {
			// Not consumed: keep probing elements beneath.
			continue
		}
		hoveredID = t.Key.ID()
		consumed = true
		break
	}

	prev := e.interactions.hoveredID
	if prev != hoveredID {
		if prev != "" {
			if el := e.byKey[prev]; el != nil && el.onHover != nil {
				el.onHover(false)
			}
		}
		if hoveredID != "" {
			if el := e.byKey[hoveredID]; el != nil && el.onHover != nil {
				el.onHover(true)
			}
		}
		e.interactions.hoveredID = hoveredID
	}
	return consumed
}

func (e *Engine) dispatchDown(list HitList, ev PointerEvent) bool {
	for i := len(list) - 1; i >= 0; i-- {
		t := &list[i]
		if !t.Rect.Contains(ev.X, ev.Y) {
			continue
		}
		if t.elem != nil && t.elem.onEvent != nil && !t.elem.onEvent(ev) {
			continue
		}
		id := t.Key.ID()
		e.interactions.pressedID = id
		e.setFocus(id)
		return true
	}

	// A press on empty space clears focus.
	e.interactions.pressedID = ""
	e.setFocus("")
	return false
}

func (e *Engine) dispatchUp(list HitList, ev PointerEvent) bool {
	pressed := e.interactions.pressedID
	e.interactions.pressedID = ""

	for i := len(list) - 1; i >= 0; i-- {
		t := &list[i]
		if !t.Rect.Contains(ev.X, ev.Y) {
			continue
		}
		if t.elem != nil && t.elem.onEvent != nil && !t.elem.onEvent(ev) {
			continue
		}
		// A release over the element where the press started is a click.
		if pressed != "" && pressed == t.Key.ID() {
			if el := e.byKey[pressed]; el != nil && el.onClick != nil {
				el.onClick()
			}
		}
		return true
	}
	return false
}

// setFocus moves focus to the given key ID, firing blur/focus callbacks.
func (e *Engine) setFocus(id string) {
	prev := e.interactions.focusedID
	if prev == id {
		return
	}
	if prev != "" {
		if el := e.byKey[prev]; el != nil && el.onFocus != nil {
			el.onFocus(false)
		}
	}
	if id != "" {
		if el := e.byKey[id]; el != nil && el.onFocus != nil {
			el.onFocus(true)
		}
	}
	e.interactions.focusedID = id
}
