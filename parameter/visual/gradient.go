package visual

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Ramp is a two-stop linear color gradient
type Ramp struct {
	From colorful.Color
	To   colorful.Color
}

// At returns the opaque color at t in [0, 1], clamped outside that range
func (r Ramp) At(t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return NRGBA(r.From.BlendRgb(r.To, t), 1)
}

// HazardRamp is the fill used by spikes and blocks, bright at the obstacle's face
func (p Palette) HazardRamp() Ramp {
	return Ramp{From: p.Destructive, To: p.DestructiveDark}
}
