package ripple

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// SampleMode selects how finely the field is sampled during synthesis.
type SampleMode string

const (
	// SampleAuto derives the resolution from the intensity: exactly 1 samples
	// coarsely, anything above samples the full field.
	SampleAuto SampleMode = "auto"
	// SampleCoarse samples a 64×64 corner of the field.
	SampleCoarse SampleMode = "coarse"
	// SampleFull samples the whole field.
	SampleFull SampleMode = "full"
)

// Texture filters understood by the painter.
const (
	FilterLinear  = "linear"
	FilterNearest = "nearest"
)

const (
	// MinInterval is the floor applied to non-positive update/spawn intervals.
	MinInterval = 0.001

	coarseSampleSize = 64
)

// Config holds the tunables of the ripple effect.
type Config struct {
	// Enabled is the master switch and intensity. Values below 1 pass the
	// source through untouched; values at or below 0 also freeze the field.
	Enabled        float64    `json:"r_ripple"`
	UpdateInterval float64    `json:"r_ripple_updatetime"`
	SpawnInterval  float64    `json:"r_ripple_spawntime"`
	SampleMode     SampleMode `json:"sample_mode"`
	TextureFilter  string     `json:"texture_mode"`
	Seed           int64      `json:"seed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:        1,
		UpdateInterval: 0.05,
		SpawnInterval:  0.1,
		SampleMode:     SampleAuto,
		TextureFilter:  FilterLinear,
		Seed:           1337,
	}
}

// Sanitize clamps out-of-range values to safe minimums. Non-finite intervals
// fall back to the defaults and a non-finite intensity turns the effect off.
func (c Config) Sanitize() Config {
	def := DefaultConfig()
	if !finite(c.Enabled) || c.Enabled < 0 {
		c.Enabled = 0
	}
	if !finite(c.UpdateInterval) {
		c.UpdateInterval = def.UpdateInterval
	}
	if !finite(c.SpawnInterval) {
		c.SpawnInterval = def.SpawnInterval
	}
	if c.UpdateInterval <= 0 {
		c.UpdateInterval = MinInterval
	}
	if c.SpawnInterval <= 0 {
		c.SpawnInterval = MinInterval
	}
	switch c.SampleMode {
	case SampleAuto, SampleCoarse, SampleFull:
	default:
		c.SampleMode = SampleAuto
	}
	switch c.TextureFilter {
	case FilterLinear, FilterNearest:
	default:
		c.TextureFilter = FilterLinear
	}
	return c
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Active reports whether synthesis runs at all.
func (c Config) Active() bool { return int(c.Enabled) >= 1 }

// Animating reports whether the field keeps advancing.
func (c Config) Animating() bool { return c.Enabled > 0 }

// SampleSize returns the field resolution used when sampling displacements.
func (c Config) SampleSize() int {
	switch c.SampleMode {
	case SampleCoarse:
		return coarseSampleSize
	case SampleFull:
		return FieldWidth
	}
	if c.Enabled == 1 {
		return coarseSampleSize
	}
	return FieldWidth
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overlays the recognised keys of cfg onto c. Unparsable values leave
// the field unchanged.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c.Sanitize()
	}
	if v, ok := cfg["r_ripple"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Enabled = parsed
		}
	}
	if v, ok := cfg["r_ripple_updatetime"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.UpdateInterval = parsed
		}
	}
	if v, ok := cfg["r_ripple_spawntime"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.SpawnInterval = parsed
		}
	}
	if v, ok := cfg["sample_mode"]; ok {
		c.SampleMode = SampleMode(strings.ToLower(strings.TrimSpace(v)))
	}
	if v, ok := cfg["texture_mode"]; ok {
		c.TextureFilter = parseFilter(v)
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c.Sanitize()
}

// parseFilter accepts both plain names and GL-style texture modes such as
// GL_NEAREST_MIPMAP_LINEAR; anything mentioning GL_NEAREST is nearest.
func parseFilter(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == FilterNearest || strings.Contains(v, "gl_nearest") {
		return FilterNearest
	}
	return FilterLinear
}

var configJSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	DisallowUnknownFields:  true,
	TagKey:                 "json",
	CaseSensitive:          true,
	ValidateJsonRawMessage: false,
}.Froze()

// DecodeConfig reads a JSON document over the defaults. Missing keys keep their
// default values; unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	if err := configJSON.NewDecoder(r).Decode(&c); err != nil {
		return DefaultConfig(), fmt.Errorf("decode ripple config: %w", err)
	}
	return c.Sanitize(), nil
}

// LoadConfig reads a JSON config file from path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("open ripple config: %w", err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// EncodeConfig writes c as indented JSON.
func EncodeConfig(w io.Writer, c Config) error {
	b, err := configJSON.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ripple config: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
