package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/vector"

	"github.com/lixenwraith/gravity-shift/vmath"
)

// canvas accumulates sub-paths in field units and fills them as one shape
// Every sub-path is wound the same way so overlaps union; reversed circles cut holes
type canvas struct {
	dst    *image.RGBA
	z      *vector.Rasterizer
	scale  float64
	offset mgl64.Vec2

	subs [][]mgl64.Vec2
	pool [][]mgl64.Vec2
}

func newCanvas() *canvas {
	return &canvas{z: vector.NewRasterizer(0, 0)}
}

func (c *canvas) begin(dst *image.RGBA, scale float64, offset mgl64.Vec2) {
	c.dst = dst
	c.scale = scale
	c.offset = offset
	c.reset()
}

func (c *canvas) reset() {
	for _, s := range c.subs {
		c.pool = append(c.pool, s[:0])
	}
	c.subs = c.subs[:0]
}

func (c *canvas) sub() []mgl64.Vec2 {
	if n := len(c.pool); n > 0 {
		s := c.pool[n-1]
		c.pool = c.pool[:n-1]
		return s
	}
	return make([]mgl64.Vec2, 0, 16)
}

// device maps a field point to raster coordinates
func (c *canvas) device(p mgl64.Vec2) mgl64.Vec2 {
	return p.Add(c.offset).Mul(c.scale)
}

// polygon adds a closed sub-path
// Sub-paths sharing a fill must share winding to union; rect, circle and segment all wind positively
func (c *canvas) polygon(pts ...mgl64.Vec2) {
	if len(pts) < 3 {
		return
	}
	s := c.sub()
	for _, p := range pts {
		s = append(s, c.device(p))
	}
	c.subs = append(c.subs, s)
}

func (c *canvas) rect(x, y, w, h float64) {
	c.polygon(
		mgl64.Vec2{x, y},
		mgl64.Vec2{x + w, y},
		mgl64.Vec2{x + w, y + h},
		mgl64.Vec2{x, y + h},
	)
}

// circle adds a polygonal disc; reverse winds it opposite to cut a hole
func (c *canvas) circle(center mgl64.Vec2, radius float64, reverse bool) {
	if radius <= 0 {
		return
	}
	n := int(math.Ceil(radius * c.scale))
	n = max(12, min(n, 64))

	s := c.sub()
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			a = -a
		}
		s = append(s, c.device(center.Add(mgl64.Vec2{math.Cos(a), math.Sin(a)}.Mul(radius))))
	}
	c.subs = append(c.subs, s)
}

// segment adds a butt-capped band of the given width centered on a-b
func (c *canvas) segment(a, b mgl64.Vec2, width float64) {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 {
		return
	}
	n := mgl64.Vec2{-d.Y(), d.X()}.Mul(width / 2 / l)
	c.polygon(a.Sub(n), b.Sub(n), b.Add(n), a.Add(n))
}

// stroke adds a round-joined polyline
func (c *canvas) stroke(pts []mgl64.Vec2, width float64, closed bool) {
	for i := 0; i+1 < len(pts); i++ {
		c.segment(pts[i], pts[i+1], width)
	}
	if closed && len(pts) > 2 {
		c.segment(pts[len(pts)-1], pts[0], width)
	}
	for _, p := range pts {
		c.circle(p, width/2, false)
	}
}

// fill rasterizes the accumulated sub-paths over dst with src and clears them
func (c *canvas) fill(src image.Image) {
	defer c.reset()
	if len(c.subs) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range c.subs {
		for _, p := range s {
			minX, maxX = math.Min(minX, p.X()), math.Max(maxX, p.X())
			minY, maxY = math.Min(minY, p.Y()), math.Max(maxY, p.Y())
		}
	}
	if !vmath.Finite(minX, minY, maxX, maxY) {
		return
	}

	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.dst.Bounds())
	if r.Empty() {
		return
	}

	// Rasterizer space starts at r.Min; the rasterizer clips pen positions outside its size
	c.z.Reset(r.Dx(), r.Dy())
	c.z.DrawOp = draw.Over
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	for _, s := range c.subs {
		c.z.MoveTo(float32(s[0].X()-ox), float32(s[0].Y()-oy))
		for _, p := range s[1:] {
			c.z.LineTo(float32(p.X()-ox), float32(p.Y()-oy))
		}
		c.z.ClosePath()
	}
	c.z.Draw(c.dst, r, src, r.Min)
}
