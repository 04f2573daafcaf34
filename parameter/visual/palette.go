package visual

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor is returned for palette values that are neither HSL triplets nor hex
var ErrBadColor = errors.New("unrecognized color value")

// Palette holds the theme colors consumed by the frame renderer
type Palette struct {
	Primary         colorful.Color
	Accent          colorful.Color
	Destructive     colorful.Color
	DestructiveDark colorful.Color
	DestructiveEdge colorful.Color
	Foreground      colorful.Color
	Secondary       colorful.Color
	Background      colorful.Color
}

// DefaultPalette is the built-in theme, also the fallback for any missing override
func DefaultPalette() Palette {
	return Palette{
		Primary:         colorful.Hsl(273, 0.56, 0.69),
		Accent:          colorful.Hsl(53, 0.76, 0.66),
		Destructive:     colorful.Hsl(0, 0.842, 0.602),
		DestructiveDark: colorful.Hsl(0, 0.842, 0.40),
		DestructiveEdge: colorful.Hsl(0, 0.842, 0.30),
		Foreground:      colorful.Hsl(0, 0, 0.98),
		Secondary:       colorful.Hsl(270, 0.20, 0.25),
		Background:      colorful.Hsl(270, 0.30, 0.08),
	}
}

// slot maps an override key to its palette field
func (p *Palette) slot(key string) *colorful.Color {
	switch key {
	case "primary":
		return &p.Primary
	case "accent":
		return &p.Accent
	case "destructive":
		return &p.Destructive
	case "destructive_dark":
		return &p.DestructiveDark
	case "destructive_edge":
		return &p.DestructiveEdge
	case "foreground":
		return &p.Foreground
	case "secondary":
		return &p.Secondary
	case "background":
		return &p.Background
	}
	return nil
}

// WithOverrides returns a copy with each parsable entry replaced
// Unknown keys and unparsable values keep the default and are reported in the returned error
func (p Palette) WithOverrides(overrides map[string]string) (Palette, error) {
	out := p
	var errs []error

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		dst := out.slot(strings.ToLower(key))
		if dst == nil {
			errs = append(errs, fmt.Errorf("palette key %q: unknown", key))
			continue
		}
		c, err := ParseColor(overrides[key])
		if err != nil {
			errs = append(errs, fmt.Errorf("palette key %q: %w", key, err))
			continue
		}
		*dst = c
	}

	return out, errors.Join(errs...)
}

// ParseColor accepts "#rrggbb", "hsl(H S% L%)" or the bare "H S% L%" triplet form
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colorful.Color{}, ErrBadColor
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %v", ErrBadColor, err)
		}
		return c, nil
	}

	s = strings.TrimPrefix(s, "hsl(")
	s = strings.TrimSuffix(s, ")")
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 3 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	h, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: hue %q", ErrBadColor, fields[0])
	}
	sat, err := parsePercent(fields[1])
	if err != nil {
		return colorful.Color{}, err
	}
	light, err := parsePercent(fields[2])
	if err != nil {
		return colorful.Color{}, err
	}

	return colorful.Hsl(h, sat, light), nil
}

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil || v < 0 || v > 100 {
		return 0, fmt.Errorf("%w: percentage %q", ErrBadColor, s)
	}
	return v / 100, nil
}

// NRGBA converts c to a non-premultiplied color with the given opacity in [0, 1]
func NRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}
