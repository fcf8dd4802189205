// Package config reads the description of a list: its font, tab stops,
// width choice and rows. Descriptions come from a TOML file, the
// environment and command line flags, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rjkroege/collist/column"
)

// Config describes one list.
type Config struct {
	Font     string   `toml:"font"`
	TabStops []int    `toml:"tabstops"`
	Width    string   `toml:"width"`
	MaxChars int      `toml:"maxchars"`
	Capacity int      `toml:"capacity"`
	WinSize  string   `toml:"winsize"`
	Items    []string `toml:"items"`
	Selected []int    `toml:"selected"`
}

// Default returns the configuration used when nothing is specified: stops
// every eight columns up to 72, average width and 80 character rows. An
// empty WinSize sizes the window to fit the list.
func Default() Config {
	return Config{
		TabStops: []int{9, 17, 25, 33, 41, 49, 57, 65, 73},
		Width:    "average",
		MaxChars: 80,
		Capacity: column.MaxTextChars,
	}
}

// Load reads the TOML file at path over the defaults.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	stops := c.TabStops
	c.TabStops = nil
	if err := toml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("config: %s: %w", path, err)
	}
	if c.TabStops == nil {
		c.TabStops = stops
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// ApplyEnv overrides the tab stops with $tabstops if it is set.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	p := getenv("tabstops")
	if p == "" {
		return nil
	}
	ts, err := ParseTabStops(p)
	if err != nil {
		return fmt.Errorf("config: $tabstops: %w", err)
	}
	c.TabStops = ts
	return nil
}

// Validate checks the fields that New would otherwise reject later.
func (c *Config) Validate() error {
	if _, err := ParseWidth(c.Width); err != nil {
		return err
	}
	if c.MaxChars < 0 {
		return fmt.Errorf("negative maxchars %d", c.MaxChars)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("negative capacity %d", c.Capacity)
	}
	return column.TabStops(c.TabStops).Validate()
}

// ParseTabStops parses a comma separated list of 1-based tab stop columns
// such as "5,10,20".
func ParseTabStops(s string) ([]int, error) {
	var ts []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad tab stop %q", f)
		}
		ts = append(ts, n)
	}
	if err := column.TabStops(ts).Validate(); err != nil {
		return nil, err
	}
	return ts, nil
}

// ParseWidth parses "average" or "maximum".
func ParseWidth(s string) (column.WidthSelector, error) {
	switch strings.ToLower(s) {
	case "average", "avg", "":
		return column.AverageWidth, nil
	case "maximum", "max":
		return column.MaximumWidth, nil
	}
	return 0, fmt.Errorf("bad width %q: want average or maximum", s)
}

// ParseIndices parses a comma separated list of row indices.
func ParseIndices(s string) ([]int, error) {
	var ix []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad row index %q", f)
		}
		ix = append(ix, n)
	}
	return ix, nil
}

// Options returns the column.Layout options for c.
func (c *Config) Options() ([]column.Option, error) {
	ws, err := ParseWidth(c.Width)
	if err != nil {
		return nil, err
	}
	return []column.Option{
		column.OptTabStops(column.TabStops(c.TabStops)),
		column.OptWidth(ws),
		column.OptMaxChars(c.MaxChars),
		column.OptCapacity(c.Capacity),
	}, nil
}
