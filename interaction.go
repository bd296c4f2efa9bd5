package flexel

// InteractionState tracks hover, press, and focus by stable key ID. It
// outlives single ticks: the dispatch step is its only writer, and the
// following tick's render/sync is its reader, so state survives tree
// rebuilds as long as the affected element's key is reproduced identically.
type InteractionState struct {
	hoveredID string
	pressedID string
	focusedID string
}

// NewInteractionState creates empty interaction state.
func NewInteractionState() *InteractionState {
	return &InteractionState{}
}

// HoveredID returns the key ID of the hovered element, or "".
func (s *InteractionState) HoveredID() string {
	return s.hoveredID
}

// PressedID returns the key ID of the pressed element, or "".
func (s *InteractionState) PressedID() string {
	return s.pressedID
}

// FocusedID returns the key ID of the focused element, or "".
func (s *InteractionState) FocusedID() string {
	return s.focusedID
}

// IsHovered returns true if the given key is currently hovered.
func (s *InteractionState) IsHovered(k StableKey) bool {
	return s.hoveredID != "" && s.hoveredID == k.ID()
}

// IsPressed returns true if the given key is currently pressed.
func (s *InteractionState) IsPressed(k StableKey) bool {
	return s.pressedID != "" && s.pressedID == k.ID()
}

// IsFocused returns true if the given key currently has focus.
func (s *InteractionState) IsFocused(k StableKey) bool {
	return s.focusedID != "" && s.focusedID == k.ID()
}

// Clear resets all interaction state.
func (s *InteractionState) Clear() {
	s.hoveredID = ""
	s.pressedID = ""
	s.focusedID = ""
}
