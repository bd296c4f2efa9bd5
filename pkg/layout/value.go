package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto  Unit = iota // Size determined by content/flex
	UnitFixed             // Absolute pixels
)

// Value represents a dimension that can be fixed or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of pixels.
// Negative amounts are clamped to zero.
func Fixed(px float64) Value {
	if px < 0 {
		px = 0
	}
	return Value{Amount: px, Unit: UnitFixed}
}

// Resolve computes the actual value. For UnitAuto, returns the fallback.
func (v Value) Resolve(fallback float64) float64 {
	switch v.Unit {
	case UnitFixed:
		if v.Amount < 0 {
			return 0
		}
		return v.Amount
	case UnitAuto:
		return fallback
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}
