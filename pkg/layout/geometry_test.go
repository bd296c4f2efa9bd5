package layout

import "testing"

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	type tc struct {
		x, y float64
		want bool
	}

	tests := map[string]tc{
		"inside":               {x: 15, y: 15, want: true},
		"top-left edge inside": {x: 10, y: 10, want: true},
		"right edge outside":   {x: 30, y: 15, want: false},
		"bottom edge outside":  {x: 15, y: 30, want: false},
		"fully outside":        {x: 0, y: 0, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	got := a.Intersect(b)
	if got != NewRect(5, 5, 5, 5) {
		t.Errorf("Intersect = %+v, want {5 5 5 5}", got)
	}

	c := NewRect(20, 20, 5, 5)
	if !a.Intersect(c).IsEmpty() {
		t.Error("disjoint rects should intersect to empty")
	}
	if a.Intersects(c) {
		t.Error("disjoint rects should not report Intersects")
	}
}

func TestRect_Union(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)

	got := a.Union(b)
	if got != NewRect(0, 0, 30, 15) {
		t.Errorf("Union = %+v, want {0 0 30 15}", got)
	}

	if a.Union(Rect{}) != a {
		t.Error("union with empty should return the other rect")
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)
	inner := NewRect(10, 10, 20, 20)

	if !outer.ContainsRect(inner) {
		t.Error("outer should contain inner")
	}
	if inner.ContainsRect(outer) {
		t.Error("inner should not contain outer")
	}
	if !outer.ContainsRect(Rect{}) {
		t.Error("any rect contains the empty rect")
	}
}

func TestPoint_InAdd(t *testing.T) {
	p := Point{X: 3, Y: 4}
	if p.Add(Point{X: 1, Y: 1}) != (Point{X: 4, Y: 5}) {
		t.Error("Add wrong")
	}
	if p.Sub(Point{X: 1, Y: 1}) != (Point{X: 2, Y: 3}) {
		t.Error("Sub wrong")
	}
	if !p.In(NewRect(0, 0, 10, 10)) {
		t.Error("point should be inside rect")
	}
}
