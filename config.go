package transform

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned when building a Config from user input.
var (
	// ErrUnknownConfig is returned by ParseConfig for an unrecognised name.
	ErrUnknownConfig = errors.New("transform: unknown configuration")

	// ErrUnsupportedAngle is returned by Rotation for angles that are not a
	// multiple of 90 degrees.
	ErrUnsupportedAngle = errors.New("transform: rotation angle must be a multiple of 90 degrees")
)

// Config selects a coordinate transform from three independent axes.
//
// When enabled, the operations are always applied in this order:
// mirror along x, mirror along y, transpose x and y. The order is part of the
// definition of a Config and is never reordered. The zero value is the
// identity transform.
type Config struct {
	// MirrorX reflects x around the middle of the logical width.
	MirrorX bool

	// MirrorY reflects y around the middle of the logical height.
	MirrorY bool

	// Transpose swaps the x and y axes.
	Transpose bool
}

// Named configurations.
var (
	// Rotate0 leaves coordinates unchanged.
	Rotate0 = Config{}

	// MirrorX mirrors pixels along the x-axis of the display.
	MirrorX = Config{MirrorX: true}

	// MirrorY mirrors pixels along the y-axis of the display.
	MirrorY = Config{MirrorY: true}

	// MirrorXY mirrors pixels along both axes. It is the same as Rotate180.
	MirrorXY = Config{MirrorX: true, MirrorY: true}

	// TransposeXY swaps the x and y axes.
	TransposeXY = Config{Transpose: true}

	// Rotate90 rotates the display by 90 degrees.
	Rotate90 = Config{MirrorX: true, Transpose: true}

	// Rotate180 rotates the display by 180 degrees.
	Rotate180 = MirrorXY

	// Rotate270 rotates the display by 270 degrees.
	Rotate270 = Config{MirrorY: true, Transpose: true}

	// AntiTranspose mirrors both axes and transposes, reflecting the display
	// across its anti-diagonal.
	AntiTranspose = Config{MirrorX: true, MirrorY: true, Transpose: true}
)

// configNames is indexed by Config.index.
var configNames = [8]string{
	"rotate-0",
	"mirror-x",
	"mirror-y",
	"mirror-xy",
	"transpose-xy",
	"rotate-90",
	"rotate-270",
	"anti-transpose",
}

// aliases maps additional accepted names to canonical ones.
var aliases = map[string]string{
	"identity":   "rotate-0",
	"none":       "rotate-0",
	"rotate-180": "mirror-xy",
	"transpose":  "transpose-xy",
}

func (c Config) index() int {
	i := 0
	if c.MirrorX {
		i |= 1
	}
	if c.MirrorY {
		i |= 2
	}
	if c.Transpose {
		i |= 4
	}
	return i
}

func configFromIndex(i int) Config {
	return Config{MirrorX: i&1 != 0, MirrorY: i&2 != 0, Transpose: i&4 != 0}
}

// Configs returns all eight configurations in canonical order,
// starting with Rotate0.
func Configs() []Config {
	out := make([]Config, len(configNames))
	for i := range out {
		out[i] = configFromIndex(i)
	}
	return out
}

// String returns the canonical name of the configuration,
// for example "rotate-90" or "mirror-x".
func (c Config) String() string {
	return configNames[c.index()]
}

// IsIdentity reports whether c leaves every coordinate unchanged.
func (c Config) IsIdentity() bool {
	return c == Rotate0
}

// ParseConfig returns the Config with the given name. Names are matched
// case-insensitively and underscores are accepted in place of dashes.
// Besides the canonical names reported by String, the aliases "identity",
// "none", "rotate-180" and "transpose" are recognised.
func ParseConfig(name string) (Config, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	for i, n := range configNames {
		if n == key {
			return configFromIndex(i), nil
		}
	}
	return Config{}, fmt.Errorf("%w: %q", ErrUnknownConfig, name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Config) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseConfig.
func (c *Config) UnmarshalText(text []byte) error {
	parsed, err := ParseConfig(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Rotation returns the configuration rotating the display by degrees.
// Negative angles and angles beyond a full turn are normalised.
func Rotation(degrees int) (Config, error) {
	if degrees%90 != 0 {
		return Config{}, fmt.Errorf("%w: %d", ErrUnsupportedAngle, degrees)
	}
	switch ((degrees % 360) + 360) % 360 {
	case 90:
		return Rotate90, nil
	case 180:
		return Rotate180, nil
	case 270:
		return Rotate270, nil
	default:
		return Rotate0, nil
	}
}

// Then returns the single configuration equivalent to wrapping a target in a
// decorator using inner, and wrapping that decorator in one using c.
//
//	New(New(target, inner), c)  ≡  New(target, c.Then(inner))
func (c Config) Then(inner Config) Config {
	// Moving inner's mirrors in front of c's transpose swaps their axes.
	mx, my := inner.MirrorX, inner.MirrorY
	if c.Transpose {
		mx, my = my, mx
	}
	return Config{
		MirrorX:   c.MirrorX != mx,
		MirrorY:   c.MirrorY != my,
		Transpose: c.Transpose != inner.Transpose,
	}
}

// Inverse returns the configuration that undoes c, so that
// c.Then(c.Inverse()) is Rotate0.
func (c Config) Inverse() Config {
	if c.Transpose {
		// Only the rotations have an inverse different from themselves.
		return Config{MirrorX: c.MirrorY, MirrorY: c.MirrorX, Transpose: true}
	}
	return c
}
