package parameter

import "time"

// Host timing
const (
	// TickRate is the default simulation ticks per second, matching a 60 Hz display
	TickRate = 60
	// FrameInterval is the terminal host's redraw cadence
	FrameInterval = 16 * time.Millisecond
	// ResizeDebounce delays a reset until resize events settle
	ResizeDebounce = 100 * time.Millisecond
	// ShakeDuration is how long the game-over shake lasts
	ShakeDuration = 500 * time.Millisecond
)

// Terminal mapping
const (
	// TerminalUnitsPerPixel is the field-unit size of one half-block pixel
	TerminalUnitsPerPixel = 10.0
	// MobileAspect is the width:height ratio of the letterboxed mobile field
	MobileAspect = 2.0
	// MobileMaxHeight caps the letterboxed field height in field units
	MobileMaxHeight = 400.0
	// ShakeAmplitude is the maximum shake offset in terminal cells
	ShakeAmplitude = 1
)
