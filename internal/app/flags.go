package app

import (
	"flag"
	"fmt"

	"mad-ripples/internal/ripple"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scale      int
	TPS        int
	Tiles      int
	ConfigPath string
	Ripple     ripple.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 2, TPS: 60, Tiles: 3, Ripple: ripple.DefaultConfig()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Tiles, "tiles", c.Tiles, "water tiles per row")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON file with ripple settings, applied before other flags")
	fs.Float64Var(&c.Ripple.Enabled, "r_ripple", c.Ripple.Enabled, "ripple intensity (0 off, 1 coarse, 2 full)")
	fs.Float64Var(&c.Ripple.UpdateInterval, "r_ripple_updatetime", c.Ripple.UpdateInterval, "seconds between field updates")
	fs.Float64Var(&c.Ripple.SpawnInterval, "r_ripple_spawntime", c.Ripple.SpawnInterval, "seconds between random drops")
	fs.Int64Var(&c.Ripple.Seed, "seed", c.Ripple.Seed, "seed for drop placement")
	fs.StringVar((*string)(&c.Ripple.SampleMode), "sample_mode", string(c.Ripple.SampleMode), "field sampling: auto, coarse or full")
	fs.StringVar(&c.Ripple.TextureFilter, "texture_mode", c.Ripple.TextureFilter, "texture filter: linear or nearest")
}

// Parse binds the flags, loads the optional config file and lets explicitly
// set flags override it.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigPath != "" {
		fromFile, err := ripple.LoadConfig(c.ConfigPath)
		if err != nil {
			return err
		}
		overrides := map[string]string{}
		fs.Visit(func(f *flag.Flag) { overrides[f.Name] = f.Value.String() })
		c.Ripple = fromFile
		for name, v := range overrides {
			if err := fs.Set(name, v); err != nil {
				return fmt.Errorf("reapply -%s: %w", name, err)
			}
		}
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Tiles <= 0 {
		c.Tiles = 1
	}
	c.Ripple = c.Ripple.Sanitize()
	return nil
}
