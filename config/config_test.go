package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/gravity-shift/parameter"
	"github.com/lixenwraith/gravity-shift/parameter/visual"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tuning != parameter.DefaultTuning() {
		t.Error("expected default tuning")
	}
	if cfg.Host.TickRate != parameter.TickRate {
		t.Errorf("expected tick rate %d, got %d", parameter.TickRate, cfg.Host.TickRate)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "game.toml", `
[tuning]
initial_speed = 8.0
max_speed = 20.0

[palette]
primary = "#ff0000"

[host]
tick_rate = 30
seed = 99
`)
	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tuning.InitialSpeed != 8 || cfg.Tuning.MaxSpeed != 20 {
		t.Errorf("file values not applied: %+v", cfg.Tuning)
	}
	if cfg.Tuning.GravityPull != parameter.GravityPull {
		t.Error("unset keys should keep defaults")
	}
	if cfg.Host.TickRate != 30 || cfg.Host.Seed != 99 {
		t.Errorf("host values not applied: %+v", cfg.Host)
	}
	if cfg.Palette["primary"] != "#ff0000" {
		t.Error("palette table not loaded")
	}
}

func TestLoadErrorsFallBackToDefaults(t *testing.T) {
	cases := map[string]string{
		"unknown key": "[tuning]\nwarp_drive = 1.0\n",
		"bad gap":     "[tuning]\nmin_gap = 500.0\nmax_gap = 100.0\n",
		"bad syntax":  "[tuning\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, "game.toml", body), "")
			if err == nil {
				t.Fatal("expected error")
			}
			if cfg.Tuning != parameter.DefaultTuning() {
				t.Error("expected defaults on error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml"), ""); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidateSentinels(t *testing.T) {
	cfg := Default()
	cfg.Tuning.MinGap, cfg.Tuning.MaxGap = 10, 5
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidGap) {
		t.Errorf("expected ErrInvalidGap, got %v", err)
	}

	cfg = Default()
	cfg.Tuning.PlayerSize = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}

	cfg = Default()
	cfg.Tuning.CoinChance = 1.5
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidChance) {
		t.Errorf("expected ErrInvalidChance, got %v", err)
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestValidateRejectsNonFinite(t *testing.T) {
	cases := []struct {
		name string
		set  func(*Config)
	}{
		{"min_gap", func(c *Config) { c.Tuning.MinGap = math.NaN() }},
		{"gravity_pull", func(c *Config) { c.Tuning.GravityPull = math.NaN() }},
		{"speed_increment", func(c *Config) { c.Tuning.SpeedIncrement = math.Inf(1) }},
		{"window_scale", func(c *Config) { c.Host.WindowScale = math.Inf(1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.set(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrNotFinite) {
				t.Fatalf("expected ErrNotFinite, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.name) {
				t.Errorf("expected error to name %s, got %v", tc.name, err)
			}
		})
	}
}

func TestLoadRejectsNaNFromEnv(t *testing.T) {
	t.Setenv("GRAVITY_SHIFT_MIN_GAP", "NaN")
	cfg, err := Load("", "")
	if !errors.Is(err, ErrNotFinite) {
		t.Fatalf("expected ErrNotFinite, got %v", err)
	}
	// Falls back to defaults
	if cfg.Tuning.MinGap != parameter.ObstacleMinGap {
		t.Errorf("expected default min gap %v, got %v", parameter.ObstacleMinGap, cfg.Tuning.MinGap)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"GRAVITY_SHIFT_INITIAL_SPEED": "7.5",
		"GRAVITY_SHIFT_TICK_RATE":     "120",
		"GRAVITY_SHIFT_SEED":          "5",
		"GRAVITY_SHIFT_STORE_PATH":    "/tmp/p.toml",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tuning.InitialSpeed != 7.5 || cfg.Host.TickRate != 120 || cfg.Host.Seed != 5 || cfg.Host.StorePath != "/tmp/p.toml" {
		t.Errorf("env not applied: %+v", cfg)
	}

	env["GRAVITY_SHIFT_MAX_GAP"] = "wide"
	if err := cfg.ApplyEnv(lookup); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadEnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", "GRAVITY_SHIFT_MAX_SPEED=15\n")
	cfg, err := Load("", envFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tuning.MaxSpeed != 15 {
		t.Errorf("expected max speed 15, got %v", cfg.Tuning.MaxSpeed)
	}
	if _, ok := os.LookupEnv("GRAVITY_SHIFT_MAX_SPEED"); ok {
		t.Error("dotenv file must not modify the process environment")
	}
}

func TestProcessEnvWinsOverFile(t *testing.T) {
	envFile := writeFile(t, ".env", "GRAVITY_SHIFT_MAX_SPEED=15\n")
	t.Setenv("GRAVITY_SHIFT_MAX_SPEED", "25")
	cfg, err := Load("", envFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tuning.MaxSpeed != 25 {
		t.Errorf("expected process env 25, got %v", cfg.Tuning.MaxSpeed)
	}
}

func TestResolvePalette(t *testing.T) {
	cfg := Default()
	cfg.Palette = map[string]string{"accent": "#00ff00", "primary": "not-a-color"}

	p, err := cfg.ResolvePalette()
	if err == nil {
		t.Error("expected error for bad entry")
	}
	def := visual.DefaultPalette()
	if p.Primary != def.Primary {
		t.Error("bad entry should keep default")
	}
	if p.Accent == def.Accent {
		t.Error("good entry should apply")
	}
}

func TestTickInterval(t *testing.T) {
	if got := (Host{TickRate: 50}).TickInterval(); got.Milliseconds() != 20 {
		t.Errorf("expected 20ms, got %v", got)
	}
}
