package render

import "github.com/go-gl/mathgl/mgl64"

// smoothCape flattens the cape chain into a polyline through quadratic curves
// Interior points act as control points with curves meeting at the midpoints between them
func smoothCape(cape []mgl64.Vec2, steps int) []mgl64.Vec2 {
	n := len(cape)
	switch {
	case n < 2:
		return nil
	case n == 2:
		return []mgl64.Vec2{cape[0], cape[1]}
	}
	steps = max(steps, 1)

	out := make([]mgl64.Vec2, 0, 1+(n-2)*steps)
	out = append(out, cape[0])
	start := cape[0]
	for i := 1; i < n-2; i++ {
		mid := cape[i].Add(cape[i+1]).Mul(0.5)
		out = appendQuad(out, start, cape[i], mid, steps)
		start = mid
	}
	return appendQuad(out, start, cape[n-2], cape[n-1], steps)
}

// appendQuad appends points of the quadratic Bezier p0-p1-p2, excluding p0
func appendQuad(out []mgl64.Vec2, p0, p1, p2 mgl64.Vec2, steps int) []mgl64.Vec2 {
	for s := 1; s <= steps; s++ {
		t := float64(s) / float64(steps)
		u := 1 - t
		p := p0.Mul(u * u).Add(p1.Mul(2 * u * t)).Add(p2.Mul(t * t))
		out = append(out, p)
	}
	return out
}
