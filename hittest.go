package flexel

// HitTarget records one interactive leaf's identity and rectangle at the
// moment the hit list was built.
type HitTarget struct {
	Key  StableKey
	Rect Rect

	elem *Element
}

// HitList is the paint-ordered list of interactive elements for one tick.
// Dispatch walks it in reverse so the frontmost element wins.
type HitList []HitTarget

// BuildHitList walks the arranged tree in paint order, recording each
// interactive, enabled element's stable key and rectangle. Disabled
// elements are visually inert and never appear.
func BuildHitList(root *Element) HitList {
	if root == nil {
		return nil
	}
	var list HitList
	root.Walk(func(e *Element) bool {
		if e.interactive && e.enabled {
			list = append(list, HitTarget{Key: e.key, Rect: e.Rect(), elem: e})
		}
		return true
	})
	return list
}

// TargetAt returns the frontmost target containing (x, y), or nil.
func (l HitList) TargetAt(x, y float64) *HitTarget {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Rect.Contains(x, y) {
			return &l[i]
		}
	}
	return nil
}

// Len returns the number of targets.
func (l HitList) Len() int {
	return len(l)
}
