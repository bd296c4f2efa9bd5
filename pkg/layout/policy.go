package layout

// Policy controls how a node is sized along its parent's main axis.
//
// A fixed Basis removes the node from flex distribution entirely: it gets
// exactly the basis size, and neither Weight nor the node's scale factor
// applies on that axis. An Auto basis makes the node flexible, sharing
// leftover space with its siblings in proportion to Weight.
type Policy struct {
	// Basis requests a fixed main-axis size. Auto means flexible.
	Basis Value

	// Weight scales this node's proportional share of distributed space
	// relative to siblings. Values below zero are treated as zero.
	Weight float64

	// Min and Max bound the main-axis size after distribution.
	// Auto means unbounded.
	Min Value
	Max Value
}

// DefaultPolicy returns a Policy with flexible sizing and weight 1.
func DefaultPolicy() Policy {
	return Policy{
		Basis:  Auto(),
		Weight: 1,
		Min:    Fixed(0),
		Max:    Auto(),
	}
}

// IsFixed returns true if the node has a fixed main-axis basis.
func (p Policy) IsFixed() bool {
	return !p.Basis.IsAuto()
}

// weight returns the effective weight with negatives clamped to zero.
func (p Policy) weight() float64 {
	if p.Weight < 0 {
		return 0
	}
	return p.Weight
}

// clampMain bounds a computed main-axis size by the policy's min/max.
func (p Policy) clampMain(v float64) float64 {
	minVal := p.Min.Resolve(0)
	if p.Max.IsAuto() {
		if v < minVal {
			return minVal
		}
		return v
	}
	return clamp(v, minVal, p.Max.Resolve(v))
}
