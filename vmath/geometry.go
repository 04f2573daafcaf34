package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rect is an axis-aligned box in field units, origin top-left, y grows downward
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the box
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Overlaps is the strict AABB test; touching edges do not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() &&
		r.Right() > o.X &&
		r.Y < o.Bottom() &&
		r.Bottom() > o.Y
}

// Corners returns top-left, top-right, bottom-left, bottom-right
func (r Rect) Corners() [4]mgl64.Vec2 {
	return [4]mgl64.Vec2{
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.X, r.Bottom()},
		{r.Right(), r.Bottom()},
	}
}

// Triangle is a closed three-vertex silhouette
type Triangle struct {
	A, B, C mgl64.Vec2
}

// Orientation is the signed area term of (p1, p2, p3) relative to p3
// Positive and negative results identify opposite sides of the edge p2->p3
func Orientation(p1, p2, p3 mgl64.Vec2) float64 {
	return (p1.X()-p3.X())*(p2.Y()-p3.Y()) - (p2.X()-p3.X())*(p1.Y()-p3.Y())
}

// Contains reports whether p lies inside or on the triangle
// All three edge tests must agree in sign; zeros count as agreeing with either side
func (t Triangle) Contains(p mgl64.Vec2) bool {
	d1 := Orientation(p, t.A, t.B)
	d2 := Orientation(p, t.B, t.C)
	d3 := Orientation(p, t.C, t.A)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

// ContainsAny reports whether any of pts lies inside the triangle
func (t Triangle) ContainsAny(pts []mgl64.Vec2) bool {
	for _, p := range pts {
		if t.Contains(p) {
			return true
		}
	}
	return false
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b mgl64.Vec2) float64 {
	return a.Sub(b).Len()
}

// Finite reports whether every value is a usable coordinate
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
