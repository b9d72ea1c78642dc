package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"

	transform "github.com/gogpu/gg-transform"
)

// config describes the overview image. It can be loaded from a TOML file;
// command-line flags override individual fields.
type config struct {
	// Output is the file to write, .png or .tif.
	Output string `toml:"output"`

	// Backend names the surface registry backend used for every panel.
	Backend string `toml:"backend"`

	// Width and Height are the physical display size of each panel.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Scale is the integer upscaling factor applied to each panel.
	Scale int `toml:"scale"`

	// Padding is the gap in output pixels around each panel.
	Padding int `toml:"padding"`

	// Columns is the number of panels per row.
	Columns int `toml:"columns"`

	// Background is a CSS color name from golang.org/x/image/colornames.
	Background string `toml:"background"`

	// Labels draws the transform name under each panel.
	Labels bool `toml:"labels"`

	// Panels lists the transform applied to each display, in grid order.
	Panels []transform.Config `toml:"panels"`
}

var errInvalidConfig = errors.New("invalid config")

func defaultConfig() config {
	return config{
		Output:     "overview.png",
		Backend:    "image",
		Width:      128,
		Height:     64,
		Scale:      4,
		Padding:    20,
		Columns:    2,
		Background: "gray",
		Labels:     true,
		Panels: []transform.Config{
			transform.Rotate0,
			transform.Rotate90,
			transform.Rotate180,
			transform.Rotate270,
			transform.MirrorX,
			transform.MirrorY,
		},
	}
}

// loadConfig decodes the TOML file at path over cfg. Keys missing from the
// file keep their current values.
func loadConfig(path string, cfg *config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		transform.Logger().Warn("unknown config keys ignored", "file", path, "keys", undecoded)
	}
	return nil
}

// writeConfig encodes cfg as TOML.
func writeConfig(w io.Writer, cfg config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

func (c config) validate() error {
	var problems []string
	if c.Width <= 0 || c.Height <= 0 {
		problems = append(problems, fmt.Sprintf("display size %dx%d", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		problems = append(problems, fmt.Sprintf("scale %d", c.Scale))
	}
	if c.Padding < 0 {
		problems = append(problems, fmt.Sprintf("padding %d", c.Padding))
	}
	if c.Columns <= 0 {
		problems = append(problems, fmt.Sprintf("columns %d", c.Columns))
	}
	if len(c.Panels) == 0 {
		problems = append(problems, "no panels")
	}
	if _, err := c.backgroundColor(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", errInvalidConfig, strings.Join(problems, ", "))
	}
	return nil
}

func (c config) backgroundColor() (color.RGBA, error) {
	col, ok := colornames.Map[strings.ToLower(c.Background)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown background color %q", c.Background)
	}
	return col, nil
}

func (c config) displaySize() transform.Size {
	return transform.Sz(c.Width, c.Height)
}
