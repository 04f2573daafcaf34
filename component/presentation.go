package component

import "github.com/go-gl/mathgl/mgl64"

// Presentation is cosmetic player state: spin angle and trailing cape chain
type Presentation struct {
	Rotation float64
	Cape     []mgl64.Vec2
}

// NewPresentation returns a resting presentation with every cape point at anchor
func NewPresentation(capeLength int, anchor mgl64.Vec2) Presentation {
	if capeLength < 0 {
		capeLength = 0
	}
	cape := make([]mgl64.Vec2, capeLength)
	for i := range cape {
		cape[i] = anchor
	}
	return Presentation{Cape: cape}
}

// Clone returns a copy that shares no memory with p
func (p Presentation) Clone() Presentation {
	return Presentation{
		Rotation: p.Rotation,
		Cape:     append([]mgl64.Vec2(nil), p.Cape...),
	}
}
