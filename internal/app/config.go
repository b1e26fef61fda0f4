package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"sparse-life/pkg/pattern"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern     string
	PatternFile string
	Soup        bool
	Seed        int64
	Density     float64

	Interval    time.Duration
	Generations int
	PrintEvery  int

	Width  int
	Height int
	Follow bool
	Scale  int
	TPS    int

	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern:    "glider",
		Seed:       42,
		Density:    0.35,
		Interval:   50 * time.Millisecond,
		PrintEvery: 1,
		Width:      64,
		Height:     32,
		Scale:      8,
		TPS:        60,
		LogLevel:   "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern to seed the grid with")
	fs.StringVar(&c.PatternFile, "pattern-file", c.PatternFile, "pattern file (.yaml or .cells); overrides --pattern")
	fs.BoolVar(&c.Soup, "soup", c.Soup, "seed with a random soup the size of the view")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for --soup")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell density for --soup")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs until interrupted)")
	fs.IntVar(&c.PrintEvery, "print-every", c.PrintEvery, "print the view every N generations (0 disables)")
	fs.IntVar(&c.Width, "width", c.Width, "view width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "view height in cells")
	fs.BoolVar(&c.Follow, "follow", c.Follow, "keep the live cells centered in the view")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the GUI loop")
	fs.StringVar(&c.LogLevel, "log", c.LogLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("view must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be within [0, 1], got %v", c.Density)
	}
	if c.Generations < 0 || c.PrintEvery < 0 {
		return errors.New("generations and print-every must not be negative")
	}
	return nil
}

// ResolvePattern picks the seed pattern: a pattern file first, then a random
// soup, then the built-in catalog.
func (c *Config) ResolvePattern() (pattern.Pattern, error) {
	switch {
	case c.PatternFile != "":
		return pattern.Load(c.PatternFile)
	case c.Soup:
		return pattern.Soup(c.Seed, c.Width, c.Height, c.Density), nil
	default:
		return pattern.Lookup(c.Pattern)
	}
}

// ApplyFile reads flag values from a YAML mapping keyed by flag name. Flags
// already set on the command line keep their values.
func ApplyFile(path string, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	var values map[string]any
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&values); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	for key, v := range values {
		f := fs.Lookup(key)
		if f == nil {
			return fmt.Errorf("config file: unknown setting %q", key)
		}
		if f.Changed {
			continue
		}
		if err := fs.Set(key, fmt.Sprint(v)); err != nil {
			return fmt.Errorf("config file: %s: %w", key, err)
		}
	}
	return nil
}
