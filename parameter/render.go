package parameter

// Frame styling in field units
const (
	BandHeight   = 5.0
	BandAlpha    = 0.3
	CapeWidth    = 4.0
	OutlineWidth = 2.0
	// CurveSteps is the flattening resolution of each quadratic cape segment
	CurveSteps = 8
)
