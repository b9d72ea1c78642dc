package transform

import (
	"image/color"
	"iter"
)

// DrawTarget is a pixel-addressable drawing surface.
//
// Coordinates are integer pixel positions with the origin at the top-left
// corner. Implementations decide what happens to pixels outside of Size;
// a DrawTarget may ignore them or report an error.
//
// DrawTarget implementations are NOT required to be thread-safe.
type DrawTarget interface {
	// Size returns the drawable area in pixels.
	Size() Size

	// DrawPixels draws every pixel of the sequence in order.
	// A later pixel overwrites an earlier one at the same position.
	DrawPixels(pixels iter.Seq[Pixel]) error

	// FillSolid fills area with a single color.
	// The result must equal drawing every pixel of area with DrawPixels.
	FillSolid(area Rectangle, c color.Color) error

	// Clear fills the whole target with a single color.
	Clear(c color.Color) error
}

// Bounds returns the rectangle at the origin covering t.
func Bounds(t DrawTarget) Rectangle {
	return Rectangle{Size: t.Size()}
}

// FillContiguous fills area with colors taken in row-major order.
// Drawing stops when either the area or the color sequence is exhausted.
// The pixels are handed to t.DrawPixels, so a Transform remaps them like any
// other point stream.
func FillContiguous(t DrawTarget, area Rectangle, colors iter.Seq[color.Color]) error {
	return t.DrawPixels(func(yield func(Pixel) bool) {
		next, stop := iter.Pull(colors)
		defer stop()

		for p := range area.Points() {
			c, ok := next()
			if !ok {
				return
			}
			if !yield(Pixel{Point: p, Color: c}) {
				return
			}
		}
	})
}
