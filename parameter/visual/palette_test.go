package visual

import (
	"errors"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestParseColorForms(t *testing.T) {
	want := colorful.Hsl(273, 0.56, 0.69)

	for _, in := range []string{"273 56% 69%", "hsl(273 56% 69%)", " hsl(273, 56%, 69%) "} {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", in, err)
		}
		if !got.AlmostEqualRgb(want) {
			t.Errorf("ParseColor(%q) = %v, want %v", in, got, want)
		}
	}

	hex, err := ParseColor("#ff0000")
	if err != nil {
		t.Fatalf("hex parse failed: %v", err)
	}
	if r, g, b := hex.RGB255(); r != 255 || g != 0 || b != 0 {
		t.Errorf("expected pure red, got %d,%d,%d", r, g, b)
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []string{"", "red", "273 56%", "hsl(x 1% 1%)", "10 150% 20%", "#zzzzzz"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseColor(%q) expected ErrBadColor, got %v", in, err)
		}
	}
}

func TestWithOverridesFallsBack(t *testing.T) {
	def := DefaultPalette()

	got, err := def.WithOverrides(map[string]string{
		"primary":   "#000000",
		"accent":    "not-a-color",
		"unknown":   "#ffffff",
		"Secondary": "0 0% 50%",
	})
	if err == nil {
		t.Fatal("expected joined error for bad entries")
	}

	if r, g, b := got.Primary.RGB255(); r != 0 || g != 0 || b != 0 {
		t.Errorf("expected primary override to apply, got %d,%d,%d", r, g, b)
	}
	if got.Accent != def.Accent {
		t.Error("expected accent to keep default after bad value")
	}
	if !got.Secondary.AlmostEqualRgb(colorful.Hsl(0, 0, 0.5)) {
		t.Error("expected secondary override to apply case-insensitively")
	}
}

func TestNRGBAAlpha(t *testing.T) {
	c := colorful.Color{R: 1, G: 1, B: 1}
	if got := NRGBA(c, 0.5).A; got != 128 {
		t.Errorf("expected alpha 128, got %d", got)
	}
	if got := NRGBA(c, -1).A; got != 0 {
		t.Errorf("expected clamped alpha 0, got %d", got)
	}
	if got := NRGBA(c, 2).A; got != 255 {
		t.Errorf("expected clamped alpha 255, got %d", got)
	}
}

func TestRampEndpoints(t *testing.T) {
	r := DefaultPalette().HazardRamp()
	top := r.At(0)
	bottom := r.At(1)
	if top == bottom {
		t.Error("expected ramp endpoints to differ")
	}
	if r.At(-1) != top || r.At(5) != bottom {
		t.Error("expected ramp to clamp outside [0, 1]")
	}
}
