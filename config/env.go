package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "GRAVITY_SHIFT_"

// envLookup resolves variables from the process environment, then from the dotenv file if given
// The process environment is never modified
func envLookup(envFile string) (func(string) (string, bool), error) {
	var file map[string]string
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
		file = m
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides fields from GRAVITY_SHIFT_* variables found through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	floats := map[string]*float64{
		"GRAVITY_PULL":    &c.Tuning.GravityPull,
		"INITIAL_SPEED":   &c.Tuning.InitialSpeed,
		"SPEED_INCREMENT": &c.Tuning.SpeedIncrement,
		"MAX_SPEED":       &c.Tuning.MaxSpeed,
		"MIN_GAP":         &c.Tuning.MinGap,
		"MAX_GAP":         &c.Tuning.MaxGap,
		"UNITS_PER_PIXEL": &c.Host.UnitsPerPixel,
		"WINDOW_SCALE":    &c.Host.WindowScale,
	}
	for name, dst := range floats {
		raw, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("env %s%s: %w", EnvPrefix, name, err)
		}
		*dst = v
	}

	if raw, ok := lookup(EnvPrefix + "TICK_RATE"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("env %sTICK_RATE: %w", EnvPrefix, err)
		}
		c.Host.TickRate = v
	}
	if raw, ok := lookup(EnvPrefix + "SEED"); ok {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("env %sSEED: %w", EnvPrefix, err)
		}
		c.Host.Seed = v
	}
	if raw, ok := lookup(EnvPrefix + "STORE_PATH"); ok {
		c.Host.StorePath = raw
	}
	return nil
}
