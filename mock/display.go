// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mock provides an in-memory DrawTarget for tests and examples.
//
// MockDisplay records every pixel drawn to it and, like a strict hardware
// display, rejects pixels outside its area. It also rejects drawing the
// same pixel twice unless overdraw is enabled, which catches primitives
// that emit a pixel more than once.
//
//	d := mock.New()
//	t := transform.NewMirrorX(d)
//	_ = t.FillSolid(transform.Rect(0, 0, 4, 4), color.Black)
//	d.AffectedArea() // (60,0) 4x4
package mock

import (
	"errors"
	"fmt"
	"image/color"
	"iter"
	"maps"
	"strings"

	transform "github.com/gogpu/gg-transform"
)

// DefaultSize is the size of a MockDisplay created without WithSize.
var DefaultSize = transform.Sz(64, 64)

// Errors reported by MockDisplay.
var (
	// ErrOutOfBounds is returned when a pixel lies outside the display.
	ErrOutOfBounds = errors.New("mock: pixel out of bounds")

	// ErrOverdraw is returned when a pixel is drawn twice and overdraw is
	// not allowed.
	ErrOverdraw = errors.New("mock: pixel drawn more than once")
)

// Option configures a MockDisplay during creation.
type Option func(*MockDisplay)

// WithSize sets the display size.
func WithSize(size transform.Size) Option {
	return func(d *MockDisplay) {
		d.size = size
	}
}

// WithOverdraw allows or forbids drawing a pixel more than once.
// Overdraw is forbidden by default.
func WithOverdraw(allow bool) Option {
	return func(d *MockDisplay) {
		d.allowOverdraw = allow
	}
}

// MockDisplay is a DrawTarget that stores pixels in memory.
//
// MockDisplay is NOT thread-safe.
type MockDisplay struct {
	size          transform.Size
	allowOverdraw bool

	pixels map[transform.Point]color.Color
	fills  []transform.Rectangle
	clears int
	err    error
}

var _ transform.DrawTarget = (*MockDisplay)(nil)

// New creates an empty display. Without options it is 64x64 and forbids
// overdraw.
func New(opts ...Option) *MockDisplay {
	d := &MockDisplay{
		size:   DefaultSize,
		pixels: make(map[transform.Point]color.Color),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Size returns the display size.
func (d *MockDisplay) Size() transform.Size {
	return d.size
}

// DrawPixels stores every pixel in order. It stops at the first pixel that
// is out of bounds or overdrawn; pixels before it remain drawn.
func (d *MockDisplay) DrawPixels(pixels iter.Seq[transform.Pixel]) error {
	if d.err != nil {
		return d.err
	}
	for px := range pixels {
		if err := d.set(px.Point, px.Color); err != nil {
			return err
		}
	}
	return nil
}

// FillSolid records area and draws every pixel of it.
func (d *MockDisplay) FillSolid(area transform.Rectangle, c color.Color) error {
	if d.err != nil {
		return d.err
	}
	d.fills = append(d.fills, area)
	for p := range area.Points() {
		if err := d.set(p, c); err != nil {
			return err
		}
	}
	return nil
}

// Clear sets every pixel of the display to c. Clearing never counts as
// overdraw.
func (d *MockDisplay) Clear(c color.Color) error {
	if d.err != nil {
		return d.err
	}
	d.clears++
	for p := range transform.Bounds(d).Points() {
		d.pixels[p] = c
	}
	return nil
}

func (d *MockDisplay) set(p transform.Point, c color.Color) error {
	if !transform.Bounds(d).Contains(p) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d display", ErrOutOfBounds, p.X, p.Y, d.size.Width, d.size.Height)
	}
	if _, drawn := d.pixels[p]; drawn && !d.allowOverdraw {
		return fmt.Errorf("%w: (%d,%d)", ErrOverdraw, p.X, p.Y)
	}
	d.pixels[p] = c
	return nil
}

// FailWith makes every following drawing call return err without touching
// the display. Pass nil to resume normal operation.
func (d *MockDisplay) FailWith(err error) {
	d.err = err
}

// Get returns the color at p and whether p has been drawn.
func (d *MockDisplay) Get(p transform.Point) (color.Color, bool) {
	c, ok := d.pixels[p]
	return c, ok
}

// Pixels returns a copy of all drawn pixels.
func (d *MockDisplay) Pixels() map[transform.Point]color.Color {
	return maps.Clone(d.pixels)
}

// Len returns the number of drawn pixels.
func (d *MockDisplay) Len() int {
	return len(d.pixels)
}

// FillCalls returns the areas passed to FillSolid, in call order.
func (d *MockDisplay) FillCalls() []transform.Rectangle {
	return append([]transform.Rectangle(nil), d.fills...)
}

// ClearCalls returns how many times Clear succeeded.
func (d *MockDisplay) ClearCalls() int {
	return d.clears
}

// AffectedArea returns the bounding box of all drawn pixels. It is the zero
// Rectangle if nothing has been drawn.
func (d *MockDisplay) AffectedArea() transform.Rectangle {
	if len(d.pixels) == 0 {
		return transform.Rectangle{}
	}
	first := true
	var lo, hi transform.Point
	for p := range d.pixels {
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		lo = transform.Pt(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = transform.Pt(max(hi.X, p.X), max(hi.Y, p.Y))
	}
	return transform.RectCorners(lo, hi)
}

// Equal reports whether both displays have the same size and the same
// pixels, comparing colors by their RGBA values.
func (d *MockDisplay) Equal(other *MockDisplay) bool {
	if d.size != other.size || len(d.pixels) != len(other.pixels) {
		return false
	}
	for p, c := range d.pixels {
		oc, ok := other.pixels[p]
		if !ok || !sameColor(c, oc) {
			return false
		}
	}
	return true
}

// Reset removes all pixels and recorded calls. Size, options and any
// injected error are kept.
func (d *MockDisplay) Reset() {
	clear(d.pixels)
	d.fills = nil
	d.clears = 0
}

// String renders the display as text, one line per row: '#' for a drawn
// pixel and '.' for an undrawn one.
func (d *MockDisplay) String() string {
	var sb strings.Builder
	for y := range d.size.Height {
		for x := range d.size.Width {
			if _, ok := d.pixels[transform.Pt(x, y)]; ok {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
