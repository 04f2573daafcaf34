package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gravity-shift/parameter"
	"github.com/lixenwraith/gravity-shift/parameter/visual"
	"github.com/lixenwraith/gravity-shift/vmath"
)

var (
	ErrInvalidGap    = errors.New("invalid obstacle gap")
	ErrInvalidSize   = errors.New("invalid size")
	ErrInvalidChance = errors.New("probability out of [0, 1]")
	ErrUnknownKey    = errors.New("unknown config key")
	ErrNotFinite     = errors.New("value is not finite")
)

// Config is the full runtime configuration
type Config struct {
	Tuning  parameter.Tuning  `toml:"tuning"`
	Palette map[string]string `toml:"palette"`
	Host    Host              `toml:"host"`
}

// Host holds frontend settings that never reach the simulation
type Host struct {
	TickRate      int     `toml:"tick_rate"`
	Seed          uint64  `toml:"seed"`
	StorePath     string  `toml:"store_path"`
	UnitsPerPixel float64 `toml:"units_per_pixel"`
	WindowScale   float64 `toml:"window_scale"`
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		Tuning: parameter.DefaultTuning(),
		Host: Host{
			TickRate:      parameter.TickRate,
			UnitsPerPixel: parameter.TerminalUnitsPerPixel,
			WindowScale:   1,
		},
	}
}

// TickInterval converts the tick rate to a ticker period
func (h Host) TickInterval() time.Duration {
	if h.TickRate <= 0 {
		return time.Second / parameter.TickRate
	}
	return time.Second / time.Duration(h.TickRate)
}

// Load builds a Config from defaults, the optional TOML file at path, then GRAVITY_SHIFT_* variables
// Variables come from the process environment first and the optional dotenv file second
// On any error the defaults are returned together with the error
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Default(), fmt.Errorf("load config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return Default(), fmt.Errorf("load config %s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
		}
	}

	lookup, err := envLookup(envFile)
	if err != nil {
		return Default(), err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return Default(), err
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate rejects tunings the simulation cannot run with
func (c Config) Validate() error {
	t := c.Tuning
	var errs []error

	// NaN slips through every ordered comparison below
	for _, f := range c.floats() {
		if !vmath.Finite(f.v) {
			errs = append(errs, fmt.Errorf("%w: %s = %v", ErrNotFinite, f.name, f.v))
		}
	}

	if t.MinGap < 0 || t.MinGap > t.MaxGap {
		errs = append(errs, fmt.Errorf("%w: min %v, max %v", ErrInvalidGap, t.MinGap, t.MaxGap))
	}

	sizes := []struct {
		name string
		v    float64
	}{
		{"player_size", t.PlayerSize},
		{"obstacle_size", t.ObstacleSize},
		{"coin_radius", t.CoinRadius},
		{"distance_per_point", t.DistancePerPoint},
		{"initial_speed", t.InitialSpeed},
		{"units_per_pixel", c.Host.UnitsPerPixel},
		{"window_scale", c.Host.WindowScale},
	}
	for _, s := range sizes {
		if !(s.v > 0) {
			errs = append(errs, fmt.Errorf("%w: %s = %v", ErrInvalidSize, s.name, s.v))
		}
	}
	if c.Host.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: tick_rate = %d", ErrInvalidSize, c.Host.TickRate))
	}
	if t.CapeLength < 0 || t.BurstCount < 0 {
		errs = append(errs, fmt.Errorf("%w: negative count", ErrInvalidSize))
	}

	chances := []struct {
		name string
		v    float64
	}{
		{"ceiling_chance", t.CeilingChance},
		{"spike_chance", t.SpikeChance},
		{"coin_chance", t.CoinChance},
	}
	for _, ch := range chances {
		if !(ch.v >= 0 && ch.v <= 1) {
			errs = append(errs, fmt.Errorf("%w: %s = %v", ErrInvalidChance, ch.name, ch.v))
		}
	}

	return errors.Join(errs...)
}

type namedFloat struct {
	name string
	v    float64
}

// floats lists every float setting by its TOML key
func (c Config) floats() []namedFloat {
	t := c.Tuning
	return []namedFloat{
		{"player_size", t.PlayerSize},
		{"player_x", t.PlayerX},
		{"gravity_pull", t.GravityPull},
		{"flip_impulse", t.FlipImpulse},
		{"rotation_rate", t.RotationRate},
		{"rotation_damping", t.RotationDamping},
		{"cape_follow", t.CapeFollow},
		{"initial_speed", t.InitialSpeed},
		{"speed_increment", t.SpeedIncrement},
		{"max_speed", t.MaxSpeed},
		{"obstacle_size", t.ObstacleSize},
		{"min_gap", t.MinGap},
		{"max_gap", t.MaxGap},
		{"ceiling_chance", t.CeilingChance},
		{"spike_chance", t.SpikeChance},
		{"coin_radius", t.CoinRadius},
		{"coin_chance", t.CoinChance},
		{"coin_offset", t.CoinOffset},
		{"coin_lane_inset", t.CoinLaneInset},
		{"distance_per_point", t.DistancePerPoint},
		{"particle_min_speed", t.ParticleMinSpeed},
		{"particle_max_speed", t.ParticleMaxSpeed},
		{"particle_min_radius", t.ParticleMinRadius},
		{"particle_max_radius", t.ParticleMaxRadius},
		{"particle_min_decay", t.ParticleMinDecay},
		{"particle_max_decay", t.ParticleMaxDecay},
		{"units_per_pixel", c.Host.UnitsPerPixel},
		{"window_scale", c.Host.WindowScale},
	}
}

// ResolvePalette applies the [palette] table over the default palette
// Bad entries keep their default; the error lists them
func (c Config) ResolvePalette() (visual.Palette, error) {
	return visual.DefaultPalette().WithOverrides(c.Palette)
}
