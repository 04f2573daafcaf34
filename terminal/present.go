package terminal

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/gravity-shift/parameter/visual"
)

// halfBlock paints the top half of a cell with the foreground color
const halfBlock = '▀'

// present copies frame into the layout's cells, two pixel rows per cell
func present(screen tcell.Screen, frame *image.RGBA, l Layout) {
	b := frame.Bounds()
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			top := frame.RGBAAt(b.Min.X+col, b.Min.Y+2*row)
			bottom := frame.RGBAAt(b.Min.X+col, b.Min.Y+2*row+1)
			style := tcell.StyleDefault.
				Foreground(rgbColor(top)).
				Background(rgbColor(bottom))
			screen.SetContent(l.X+col, l.Y+row, halfBlock, nil, style)
		}
	}
}

func rgbColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// paletteColor converts a palette entry to an opaque terminal color
func paletteColor(c colorful.Color) tcell.Color {
	n := visual.NRGBA(c, 1)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}
