package terminal

import "github.com/lixenwraith/gravity-shift/parameter"

// hudRows is the number of screen rows above the field
const hudRows = 1

// Layout places the field on screen
type Layout struct {
	// X, Y is the top-left cell of the field
	X, Y int
	// Cols, Rows is the field size in cells; pixel height is 2*Rows
	Cols, Rows int
	// Width, Height is the field size in simulation units
	Width, Height float64
}

// Empty reports whether there is no room to draw the field
func (l Layout) Empty() bool {
	return l.Cols <= 0 || l.Rows <= 0
}

// ComputeLayout fits the field into a cols x rows screen below the HUD
// Mobile mode letterboxes a band of MobileAspect width:height, capped at MobileMaxHeight units, centered vertically
func ComputeLayout(cols, rows int, unitsPerPixel float64, mobile bool) Layout {
	fieldRows := rows - hudRows
	if cols <= 0 || fieldRows <= 0 || !(unitsPerPixel > 0) {
		return Layout{}
	}

	l := Layout{X: 0, Y: hudRows, Cols: cols, Rows: fieldRows}
	if mobile {
		px := min(
			int(float64(cols)/parameter.MobileAspect),
			int(parameter.MobileMaxHeight/unitsPerPixel),
			2*fieldRows,
		)
		l.Rows = max(px/2, 1)
		l.Y = hudRows + (fieldRows-l.Rows)/2
	}

	l.Width = float64(l.Cols) * unitsPerPixel
	l.Height = float64(2*l.Rows) * unitsPerPixel
	return l
}
