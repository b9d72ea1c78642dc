package transform

import (
	"image"
	"image/color"
	"iter"
)

// Point is a pixel position with signed integer coordinates.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Swap returns the point with X and Y exchanged.
func (p Point) Swap() Point {
	return Point{X: p.Y, Y: p.X}
}

// Image converts p to an image.Point.
func (p Point) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// Size is a pair of non-negative pixel magnitudes.
type Size struct {
	Width, Height int
}

// Sz is a convenience function to create a Size.
func Sz(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Transposed returns the size with width and height exchanged.
func (s Size) Transposed() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Area returns Width*Height.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Rectangle is an axis-aligned region given by its top-left corner and size.
// Width and height extend toward increasing x and y.
type Rectangle struct {
	TopLeft Point
	Size    Size
}

// Rect creates a Rectangle with top-left corner (x, y) and the given size.
func Rect(x, y, width, height int) Rectangle {
	return Rectangle{TopLeft: Pt(x, y), Size: Sz(width, height)}
}

// RectCorners creates the smallest Rectangle containing both corners.
// Both corners are inclusive.
func RectCorners(a, b Point) Rectangle {
	minX, maxX := min(a.X, b.X), max(a.X, b.X)
	minY, maxY := min(a.Y, b.Y), max(a.Y, b.Y)
	return Rect(minX, minY, maxX-minX+1, maxY-minY+1)
}

// FromImageRect converts an image.Rectangle to a Rectangle.
func FromImageRect(r image.Rectangle) Rectangle {
	r = r.Canon()
	return Rect(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// IsEmpty reports whether the rectangle contains no pixels.
func (r Rectangle) IsEmpty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// BottomRight returns the bottom-right pixel inside the rectangle.
// The result is meaningless for an empty rectangle.
func (r Rectangle) BottomRight() Point {
	return Pt(r.TopLeft.X+r.Size.Width-1, r.TopLeft.Y+r.Size.Height-1)
}

// Contains reports whether p lies inside the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.TopLeft.X && p.X < r.TopLeft.X+r.Size.Width &&
		p.Y >= r.TopLeft.Y && p.Y < r.TopLeft.Y+r.Size.Height
}

// Center returns the center pixel of the rectangle, rounding toward the
// top-left corner.
func (r Rectangle) Center() Point {
	return Pt(r.TopLeft.X+r.Size.Width/2, r.TopLeft.Y+r.Size.Height/2)
}

// Image converts r to a half-open image.Rectangle.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(r.TopLeft.X, r.TopLeft.Y, r.TopLeft.X+r.Size.Width, r.TopLeft.Y+r.Size.Height)
}

// Points yields every pixel of the rectangle in row-major order.
func (r Rectangle) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if r.IsEmpty() {
			return
		}
		for y := r.TopLeft.Y; y < r.TopLeft.Y+r.Size.Height; y++ {
			for x := r.TopLeft.X; x < r.TopLeft.X+r.Size.Width; x++ {
				if !yield(Pt(x, y)) {
					return
				}
			}
		}
	}
}

// Pixel is a single colored point.
type Pixel struct {
	Point
	Color color.Color
}

// Px is a convenience function to create a Pixel.
func Px(x, y int, c color.Color) Pixel {
	return Pixel{Point: Pt(x, y), Color: c}
}

// Pixels yields the given pixels in order.
func Pixels(pixels ...Pixel) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for _, px := range pixels {
			if !yield(px) {
				return
			}
		}
	}
}
