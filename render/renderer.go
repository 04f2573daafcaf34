package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/gravity-shift/component"
	"github.com/lixenwraith/gravity-shift/engine"
	"github.com/lixenwraith/gravity-shift/parameter"
	"github.com/lixenwraith/gravity-shift/parameter/visual"
)

// coinEdge is the translucent white rim drawn around every coin
var coinEdge = color.NRGBA{R: 255, G: 255, B: 255, A: 128}

// Renderer draws engine snapshots into RGBA frames
// Reuses its rasterizer between frames; not safe for concurrent use
type Renderer struct {
	palette visual.Palette
	scale   float64
	canvas  *canvas

	background *image.Uniform
	band       *image.Uniform
	primary    *image.Uniform
	foreground *image.Uniform
	edge       *image.Uniform
	accent     *image.Uniform
	coinEdge   *image.Uniform
	gradient   verticalGradient
}

// NewRenderer creates a renderer mapping one field unit to scale raster pixels
// Non-positive or non-finite scale falls back to 1
func NewRenderer(palette visual.Palette, scale float64) *Renderer {
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}
	return &Renderer{
		palette:    palette,
		scale:      scale,
		canvas:     newCanvas(),
		background: image.NewUniform(visual.NRGBA(palette.Background, 1)),
		band:       image.NewUniform(visual.NRGBA(palette.Secondary, parameter.BandAlpha)),
		primary:    image.NewUniform(visual.NRGBA(palette.Primary, 1)),
		foreground: image.NewUniform(visual.NRGBA(palette.Foreground, 1)),
		edge:       image.NewUniform(visual.NRGBA(palette.DestructiveEdge, 1)),
		accent:     image.NewUniform(visual.NRGBA(palette.Accent, 1)),
		coinEdge:   image.NewUniform(coinEdge),
		gradient:   verticalGradient{ramp: palette.HazardRamp()},
	}
}

func (r *Renderer) Palette() visual.Palette { return r.palette }

func (r *Renderer) Scale() float64 { return r.scale }

// Render draws st over the whole of dst
func (r *Renderer) Render(dst *image.RGBA, st engine.State) {
	r.RenderAt(dst, st, mgl64.Vec2{})
}

// RenderAt draws st with every shape displaced by offset field units; the background is not displaced
func (r *Renderer) RenderAt(dst *image.RGBA, st engine.State, offset mgl64.Vec2) {
	if dst == nil {
		return
	}
	draw.Draw(dst, dst.Bounds(), r.background, image.Point{}, draw.Src)
	if !(st.Width > 0 && st.Height > 0) {
		return
	}

	r.canvas.begin(dst, r.scale, offset)
	r.gradient.bounds = dst.Bounds()

	r.drawBands(st)
	r.drawCape(st.Presentation.Cape)
	r.drawPlayer(st)
	for _, o := range st.Obstacles {
		r.drawObstacle(o, st.Height)
	}
	for _, c := range st.Coins {
		r.drawCoin(c)
	}
	for _, p := range st.Particles {
		r.drawParticle(p)
	}
}

func (r *Renderer) drawBands(st engine.State) {
	c := r.canvas
	c.rect(0, 0, st.Width, parameter.BandHeight)
	c.rect(0, st.Height-parameter.BandHeight, st.Width, parameter.BandHeight)
	c.fill(r.band)
}

func (r *Renderer) drawCape(cape []mgl64.Vec2) {
	pts := smoothCape(cape, parameter.CurveSteps)
	if len(pts) < 2 {
		return
	}
	r.canvas.stroke(pts, parameter.CapeWidth, false)
	r.canvas.fill(r.primary)
}

func (r *Renderer) drawPlayer(st engine.State) {
	size := st.PlayerSize
	center := st.Player.Center(size)
	angle := st.Presentation.Rotation
	if st.Player.Inverted() {
		angle += math.Pi
	}

	rot := mgl64.Rotate2D(angle)
	h := size / 2
	corners := []mgl64.Vec2{
		center.Add(rot.Mul2x1(mgl64.Vec2{-h, -h})),
		center.Add(rot.Mul2x1(mgl64.Vec2{h, -h})),
		center.Add(rot.Mul2x1(mgl64.Vec2{h, h})),
		center.Add(rot.Mul2x1(mgl64.Vec2{-h, h})),
	}

	r.canvas.polygon(corners...)
	r.canvas.fill(r.primary)
	r.canvas.stroke(corners, parameter.OutlineWidth, true)
	r.canvas.fill(r.foreground)
}

func (r *Renderer) drawObstacle(o component.Obstacle, fieldHeight float64) {
	var outline []mgl64.Vec2
	// Gradient runs from the obstacle's face (bright) to its far side
	var from, to float64

	switch o.Kind {
	case component.KindBlock:
		outline = []mgl64.Vec2{
			{o.X, o.Y},
			{o.X + o.W, o.Y},
			{o.X + o.W, o.Y + o.H},
			{o.X, o.Y + o.H},
		}
		from, to = o.Y, o.Y+o.H
	default:
		tri := o.Silhouette(fieldHeight)
		outline = []mgl64.Vec2{tri.A, tri.B, tri.C}
		from, to = tri.A.Y(), tri.C.Y()
	}

	c := r.canvas
	r.gradient.from = (from + c.offset.Y()) * c.scale
	r.gradient.to = (to + c.offset.Y()) * c.scale
	c.polygon(outline...)
	c.fill(&r.gradient)

	c.stroke(outline, parameter.OutlineWidth, true)
	c.fill(r.edge)
}

func (r *Renderer) drawCoin(coin component.Coin) {
	c := r.canvas
	center := coin.Center()
	c.circle(center, coin.Radius, false)
	c.fill(r.accent)

	half := parameter.OutlineWidth / 2
	c.circle(center, coin.Radius+half, false)
	c.circle(center, coin.Radius-half, true)
	c.fill(r.coinEdge)
}

func (r *Renderer) drawParticle(p component.Particle) {
	if !p.Alive() {
		return
	}
	r.canvas.circle(p.Pos, p.Radius, false)
	r.canvas.fill(image.NewUniform(visual.NRGBA(r.palette.Accent, p.Alpha)))
}
