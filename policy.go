package transform

import "iter"

// Point maps p from logical coordinates to the coordinates of the wrapped
// target. logical is the size reported by the decorator, that is the target
// size after Config.Size has been applied.
//
// Mirroring is measured in logical units, before the axes are transposed.
func (c Config) Point(p Point, logical Size) Point {
	if c.MirrorX {
		p.X = logical.Width - 1 - p.X
	}
	if c.MirrorY {
		p.Y = logical.Height - 1 - p.Y
	}
	if c.Transpose {
		p = p.Swap()
	}
	return p
}

// Rect maps r from logical coordinates to the coordinates of the wrapped
// target. Filling the result covers exactly the pixels obtained by mapping
// every point of r with Point.
func (c Config) Rect(r Rectangle, logical Size) Rectangle {
	if c.MirrorX {
		r.TopLeft.X = logical.Width - r.TopLeft.X - r.Size.Width
	}
	if c.MirrorY {
		r.TopLeft.Y = logical.Height - r.TopLeft.Y - r.Size.Height
	}
	if c.Transpose {
		r = Rectangle{TopLeft: r.TopLeft.Swap(), Size: r.Size.Transposed()}
	}
	return r
}

// Size returns the logical size of a target whose physical size is s.
// Width and height are swapped when c transposes.
func (c Config) Size(s Size) Size {
	if c.Transpose {
		return s.Transposed()
	}
	return s
}

// Pixels lazily maps every pixel of seq with Point, preserving order.
func (c Config) Pixels(seq iter.Seq[Pixel], logical Size) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for px := range seq {
			if !yield(Pixel{Point: c.Point(px.Point, logical), Color: px.Color}) {
				return
			}
		}
	}
}
