package render

import (
	"image"
	"image/color"

	"github.com/lixenwraith/gravity-shift/parameter/visual"
)

// verticalGradient is an image source whose color depends only on the raster row
// Row from maps to the ramp start and row to to its end; either order is valid
type verticalGradient struct {
	ramp     visual.Ramp
	from, to float64
	bounds   image.Rectangle
}

func (g *verticalGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *verticalGradient) Bounds() image.Rectangle { return g.bounds }

func (g *verticalGradient) At(x, y int) color.Color {
	span := g.to - g.from
	if span == 0 {
		return g.ramp.At(0)
	}
	return g.ramp.At((float64(y) + 0.5 - g.from) / span)
}
