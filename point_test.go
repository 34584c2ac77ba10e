package ndview

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, 4)

	if got := p.Add(q); got != Pt(4, 6) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := q.Sub(p); got != Pt(2, 2) {
		t.Errorf("Sub = %v, want (2, 2)", got)
	}
	if got := p.Mul(3); got != Pt(3, 6) {
		t.Errorf("Mul = %v, want (3, 6)", got)
	}
	if got := p.Dot(q); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
}

func TestPoint_LengthDistance(t *testing.T) {
	if got := Pt(3, 4).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt(1, 1).Distance(Pt(4, 5)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPoint_Normalize(t *testing.T) {
	n := Pt(0, -7).Normalize()
	if n != Pt(0, -1) {
		t.Errorf("Normalize = %v, want (0, -1)", n)
	}
	if got := Pt(3, 4).Normalize().Length(); math.Abs(got-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", got)
	}
	if got := (Point{}).Normalize(); got != (Point{}) {
		t.Errorf("Normalize(0) = %v, want zero point", got)
	}
}

func TestPoint_Approx(t *testing.T) {
	if !Pt(1, 1).Approx(Pt(1+1e-10, 1-1e-10), 1e-9) {
		t.Error("points within epsilon must compare approx equal")
	}
	if Pt(1, 1).Approx(Pt(1.1, 1), 1e-9) {
		t.Error("points outside epsilon must not compare approx equal")
	}
}
