package flexel

import "fmt"

// PointerKind identifies the type of a pointer event.
type PointerKind uint8

const (
	// PointerMove reports cursor motion; it drives hover transitions.
	PointerMove PointerKind = iota
	// PointerDown reports a press; it sets pressed and focus state.
	PointerDown
	// PointerUp reports a release; a release over the pressed element
	// fires its click handler.
	PointerUp
)

// String returns the kind name for diagnostics.
func (k PointerKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	default:
		return fmt.Sprintf("PointerKind(%d)", uint8(k))
	}
}

// PointerEvent is a pointer input delivered through Dispatch.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}
