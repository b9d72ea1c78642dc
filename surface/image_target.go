// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"iter"

	transform "github.com/gogpu/gg-transform"
)

// ImageTarget is a CPU DrawTarget that renders into a draw.Image.
//
// Pixels and fills outside the image are silently dropped, in the same way
// image.RGBA.Set ignores them. Colors replace the destination (draw.Src);
// there is no blending.
//
// Example:
//
//	t := surface.NewImageTarget(128, 64)
//	r := transform.NewRotate90(t)
//	_ = r.Clear(color.White)
//	img := t.Snapshot()
type ImageTarget struct {
	img    draw.Image
	bounds image.Rectangle
}

var _ transform.DrawTarget = (*ImageTarget)(nil)

// ImageOption configures an ImageTarget during creation.
type ImageOption func(*imageOptions)

type imageOptions struct {
	background color.Color
}

// WithBackground fills a new ImageTarget with c.
// By default a new target is transparent.
func WithBackground(c color.Color) ImageOption {
	return func(o *imageOptions) {
		o.background = c
	}
}

// NewImageTarget creates a target backed by a new *image.RGBA.
// Non-positive dimensions are clamped to 1.
func NewImageTarget(width, height int, opts ...ImageOption) *ImageTarget {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	var o imageOptions
	for _, opt := range opts {
		opt(&o)
	}

	t := NewImageTargetFrom(image.NewRGBA(image.Rect(0, 0, width, height)))
	if o.background != nil {
		_ = t.Clear(o.background)
	}
	return t
}

// NewImageTargetFrom creates a target that draws directly into img.
// Target coordinates are relative to img.Bounds().Min.
func NewImageTargetFrom(img draw.Image) *ImageTarget {
	return &ImageTarget{img: img, bounds: img.Bounds()}
}

// Size returns the image size.
func (t *ImageTarget) Size() transform.Size {
	return transform.Sz(t.bounds.Dx(), t.bounds.Dy())
}

// DrawPixels sets each pixel in order.
func (t *ImageTarget) DrawPixels(pixels iter.Seq[transform.Pixel]) error {
	for px := range pixels {
		p := image.Pt(px.X, px.Y).Add(t.bounds.Min)
		if p.In(t.bounds) {
			t.img.Set(p.X, p.Y, px.Color)
		}
	}
	return nil
}

// FillSolid fills the part of area that lies inside the image.
func (t *ImageTarget) FillSolid(area transform.Rectangle, c color.Color) error {
	r := area.Image().Add(t.bounds.Min).Intersect(t.bounds)
	if r.Empty() {
		return nil
	}
	draw.Draw(t.img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
	return nil
}

// Clear fills the entire image with c.
func (t *ImageTarget) Clear(c color.Color) error {
	draw.Draw(t.img, t.bounds, &image.Uniform{C: c}, image.Point{}, draw.Src)
	return nil
}

// Image returns the underlying image.
// This is a direct reference, not a copy.
func (t *ImageTarget) Image() draw.Image {
	return t.img
}

// Snapshot returns a copy of the current contents as an *image.RGBA whose
// bounds start at the origin.
func (t *ImageTarget) Snapshot() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, t.bounds.Dx(), t.bounds.Dy()))
	draw.Draw(out, out.Bounds(), t.img, t.bounds.Min, draw.Src)
	return out
}
