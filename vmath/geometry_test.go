package vmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"left of", Rect{X: -6, Y: 0, W: 5, H: 5}, false},
		{"above", Rect{X: 0, Y: -20, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.o); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.o, got, tt.want)
			}
			if got := tt.o.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %+v", tt.o)
			}
		})
	}
}

func TestRectCornersAndCenter(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 4, H: 6}
	corners := r.Corners()

	want := [4]mgl64.Vec2{{1, 2}, {5, 2}, {1, 8}, {5, 8}}
	if corners != want {
		t.Errorf("expected corners %v, got %v", want, corners)
	}
	if c := r.Center(); c != (mgl64.Vec2{3, 5}) {
		t.Errorf("expected center (3,5), got %v", c)
	}
}

func TestOrientationSign(t *testing.T) {
	a := mgl64.Vec2{0, 0}
	b := mgl64.Vec2{10, 0}

	above := Orientation(mgl64.Vec2{5, -5}, a, b)
	below := Orientation(mgl64.Vec2{5, 5}, a, b)
	on := Orientation(mgl64.Vec2{5, 0}, a, b)

	if above*below >= 0 {
		t.Errorf("points on opposite sides should have opposite signs, got %f and %f", above, below)
	}
	if on != 0 {
		t.Errorf("collinear point should give 0, got %f", on)
	}
}

func TestTriangleContains(t *testing.T) {
	// Floor spike in a 400-high field: base on the floor, apex up
	tri := Triangle{
		A: mgl64.Vec2{100, 400},
		B: mgl64.Vec2{140, 400},
		C: mgl64.Vec2{120, 360},
	}

	tests := []struct {
		name string
		p    mgl64.Vec2
		want bool
	}{
		{"centroid", mgl64.Vec2{120, 387}, true},
		{"apex", mgl64.Vec2{120, 360}, true},
		{"base vertex", mgl64.Vec2{100, 400}, true},
		{"on base edge", mgl64.Vec2{110, 400}, true},
		{"above apex", mgl64.Vec2{120, 359}, false},
		{"beside slope", mgl64.Vec2{102, 365}, false},
		{"bounding box corner", mgl64.Vec2{140, 360}, false},
		{"below floor", mgl64.Vec2{120, 401}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tri.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTriangleContainsWindingIndependent(t *testing.T) {
	cw := Triangle{A: mgl64.Vec2{0, 0}, B: mgl64.Vec2{10, 0}, C: mgl64.Vec2{5, 10}}
	ccw := Triangle{A: mgl64.Vec2{0, 0}, B: mgl64.Vec2{5, 10}, C: mgl64.Vec2{10, 0}}

	p := mgl64.Vec2{5, 3}
	if !cw.Contains(p) || !ccw.Contains(p) {
		t.Error("containment should not depend on vertex winding")
	}
}

func TestTriangleContainsAny(t *testing.T) {
	tri := Triangle{A: mgl64.Vec2{0, 0}, B: mgl64.Vec2{40, 0}, C: mgl64.Vec2{20, 40}}
	outside := []mgl64.Vec2{{-5, -5}, {50, 50}, {0, 40}}
	if tri.ContainsAny(outside) {
		t.Error("expected no containment for outside points")
	}
	if !tri.ContainsAny(append(outside, mgl64.Vec2{20, 10})) {
		t.Error("expected containment once an inside point is added")
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(mgl64.Vec2{0, 0}, mgl64.Vec2{3, 4}); d != 5 {
		t.Errorf("expected 5, got %f", d)
	}
}
