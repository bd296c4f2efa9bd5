package flexel

// --- Element tree operations ---

// AddChild appends children to this element, transferring ownership and
// keeping the layout tree in step.
func (e *Element) AddChild(children ...*Element) *Element {
	for _, child := range children {
		child.parent = e
		e.children = append(e.children, child)
		e.node.AddChild(child.node)
	}
	return e
}

// RemoveChild removes a child from this element, preserving sibling order.
// Returns true if the child was found and removed.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			e.node.RemoveChild(child.node)
			return true
		}
	}
	return false
}

// Children returns the child elements in layout order.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is the root.
// The back-reference is used only for upward queries, never traversal.
func (e *Element) Parent() *Element {
	return e.parent
}

// Walk traverses the subtree depth-first in child order (paint order),
// calling fn for each element. Returning false stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, child := range e.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find searches the subtree for an element matching the predicate.
func (e *Element) Find(pred func(*Element) bool) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if pred(el) {
			found = el
			return false
		}
		return true
	})
	return found
}

// FindByKey returns the descendant with the given explicit key, or nil.
func (e *Element) FindByKey(explicit string) *Element {
	return e.Find(func(el *Element) bool {
		return el.explicitKey == explicit
	})
}
