package layout

// Constraints is an immutable box of minimum and maximum dimensions passed
// down the tree during measurement. A constraint axis is "tight" when
// min == max and "loose" when min == 0. Constraints are value types:
// created fresh per call, passed by value, never mutated.
type Constraints struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// Tight creates constraints that force an exact size on both axes.
func Tight(width, height float64) Constraints {
	width = max(width, 0)
	height = max(height, 0)
	return Constraints{
		MinWidth: width, MaxWidth: width,
		MinHeight: height, MaxHeight: height,
	}
}

// Loose creates constraints with zero minimums and the given maximums.
func Loose(width, height float64) Constraints {
	return Constraints{
		MaxWidth:  max(width, 0),
		MaxHeight: max(height, 0),
	}
}

// TightWidth creates constraints tight on the horizontal axis and loose on
// the vertical axis. Drivers use this for regions with a fixed width but
// content-determined height.
func TightWidth(width, maxHeight float64) Constraints {
	width = max(width, 0)
	return Constraints{
		MinWidth: width, MaxWidth: width,
		MaxHeight: max(maxHeight, 0),
	}
}

// TightHeight creates constraints tight on the vertical axis and loose on
// the horizontal axis.
func TightHeight(maxWidth, height float64) Constraints {
	height = max(height, 0)
	return Constraints{
		MaxWidth:  max(maxWidth, 0),
		MinHeight: height, MaxHeight: height,
	}
}

// IsTightWidth returns true if the horizontal axis allows exactly one size.
func (c Constraints) IsTightWidth() bool {
	return c.MinWidth == c.MaxWidth
}

// IsTightHeight returns true if the vertical axis allows exactly one size.
func (c Constraints) IsTightHeight() bool {
	return c.MinHeight == c.MaxHeight
}

// IsTight returns true if both axes allow exactly one size.
func (c Constraints) IsTight() bool {
	return c.IsTightWidth() && c.IsTightHeight()
}

// Normalized returns constraints with the min ≤ max invariant restored on
// each axis. When an axis is inverted, max wins and min is lowered to it.
func (c Constraints) Normalized() Constraints {
	if c.MinWidth < 0 {
		c.MinWidth = 0
	}
	if c.MinHeight < 0 {
		c.MinHeight = 0
	}
	if c.MaxWidth < c.MinWidth {
		c.MinWidth = c.MaxWidth
	}
	if c.MaxHeight < c.MinHeight {
		c.MinHeight = c.MaxHeight
	}
	return c
}

// Constrain clamps the given size into the constraint box.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(s.Height, c.MinHeight, c.MaxHeight),
	}
}

// Loosened returns constraints with the same maximums but zero minimums.
// Containers measure children loosely so natural sizes surface before the
// distribution decision is made.
func (c Constraints) Loosened() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
