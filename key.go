package flexel

import (
	"fmt"
	"strconv"
)

// StableKey is a tick-spanning identity derived from build order plus an
// optional explicit override. Two live elements in one tick must never
// share a key; hover, press, and focus state are stored against it so they
// survive wholesale tree rebuilds.
type StableKey struct {
	// Owner identifies the panel instance producing the tree.
	Owner string

	// Path locates the element within the build: one segment per ancestor,
	// each segment either the sibling index or the explicit key.
	Path string

	// Explicit is the caller-chosen override for this element's own
	// segment, empty when the build-order index is used.
	Explicit string
}

// ID returns the canonical string identity used for interaction lookups.
func (k StableKey) ID() string {
	return k.Owner + ":" + k.Path
}

// IsZero returns true for the unassigned key.
func (k StableKey) IsZero() bool {
	return k.Owner == "" && k.Path == ""
}

// String implements fmt.Stringer.
func (k StableKey) String() string {
	return k.ID()
}

// assignKeys walks the tree in build order assigning a StableKey to every
// element and returns an index of elements by key ID. Duplicate keys are an
// invariant violation: later duplicates are reported through report and
// deduplicated with a positional suffix so hit-test state cannot silently
// cross-wire.
func assignKeys(root *Element, owner string, report func(msg string)) map[string]*Element {
	byKey := make(map[string]*Element)
	var walk func(e *Element, path string, index int)
	walk = func(e *Element, path string, index int) {
		segment := strconv.Itoa(index)
		if e.explicitKey != "" {
			segment = e.explicitKey
		}
		var full string
		if path == "" {
			full = segment
		} else {
			full = path + "/" + segment
		}

		if _, dup := byKey[full]; dup {
			report(fmt.Sprintf("duplicate stable key %q", owner+":"+full))
			full = full + "#" + strconv.Itoa(index)
		}

		e.key = StableKey{Owner: owner, Path: full, Explicit: e.explicitKey}
		e.keyed = true
		byKey[full] = e

		for i, child := range e.children {
			walk(child, full, i)
		}
	}
	walk(root, "", 0)

	keyed := make(map[string]*Element, len(byKey))
	for path, e := range byKey {
		keyed[owner+":"+path] = e
	}
	return keyed
}
