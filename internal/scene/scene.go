// Package scene decomposes simple primitives into DrawTarget calls.
//
// It is used by the demo and by end-to-end tests that push a realistic mix
// of solid fills and point streams through a transform.
package scene

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	transform "github.com/gogpu/gg-transform"
)

// Greeting is the text drawn in the middle of the overview scene.
const Greeting = "Hello,\nworld!"

// Render draws the overview scene: a white background, a small square in
// the top-left corner, two vertical bars along the left edge, a horizontal
// bar along the top, a triangle in the bottom-right corner and a centered
// greeting. All positions are relative to t.Size(), so the scene shows
// which way a transform turns the display.
func Render(t transform.DrawTarget) error {
	size := t.Size()
	w, h := size.Width, size.Height
	ink := colornames.Black

	if err := t.Clear(colornames.White); err != nil {
		return err
	}
	rects := []transform.Rectangle{
		transform.Rect(0, 0, 4, 4),
		transform.RectCorners(transform.Pt(0, 8), transform.Pt(0, h-1)),
		transform.RectCorners(transform.Pt(2, 8), transform.Pt(3, h-1)),
		transform.RectCorners(transform.Pt(8, 3), transform.Pt(w-1, 3)),
	}
	for _, r := range rects {
		if err := t.FillSolid(r, ink); err != nil {
			return err
		}
	}
	err := FillTriangle(t,
		transform.Pt(w-1, h-1),
		transform.Pt(w-9, h-1),
		transform.Pt(w-1, h-9),
		ink)
	if err != nil {
		return err
	}
	return DrawText(t, Greeting, transform.Bounds(t).Center(), basicfont.Face7x13, ink)
}

// FillTriangle fills the triangle a, b, c including its edges.
// Pixels are emitted in row-major order in a single DrawPixels call.
// A degenerate triangle draws nothing.
func FillTriangle(t transform.DrawTarget, a, b, c transform.Point, col color.Color) error {
	area := cross(b.Sub(a), c.Sub(a))
	if area == 0 {
		return nil
	}
	bbox := transform.RectCorners(
		transform.Pt(min(a.X, b.X, c.X), min(a.Y, b.Y, c.Y)),
		transform.Pt(max(a.X, b.X, c.X), max(a.Y, b.Y, c.Y)),
	)
	inside := func(p transform.Point) bool {
		w0 := cross(b.Sub(a), p.Sub(a))
		w1 := cross(c.Sub(b), p.Sub(b))
		w2 := cross(a.Sub(c), p.Sub(c))
		if area > 0 {
			return w0 >= 0 && w1 >= 0 && w2 >= 0
		}
		return w0 <= 0 && w1 <= 0 && w2 <= 0
	}
	return t.DrawPixels(func(yield func(transform.Pixel) bool) {
		for p := range bbox.Points() {
			if inside(p) && !yield(transform.Pixel{Point: p, Color: col}) {
				return
			}
		}
	})
}

func cross(u, v transform.Point) int {
	return u.X*v.Y - u.Y*v.X
}

// DrawText draws text with face, one line per '\n', each line centered
// horizontally and the whole block centered on center.
// Glyph pixels with at least half coverage are drawn with col; the rest of
// the block is left untouched.
func DrawText(t transform.DrawTarget, text string, center transform.Point, face font.Face, col color.Color) error {
	mask, origin := textMask(text, center, face)
	if mask == nil {
		return nil
	}
	b := mask.Bounds()
	return t.DrawPixels(func(yield func(transform.Pixel) bool) {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if mask.AlphaAt(x, y).A < 0x80 {
					continue
				}
				if !yield(transform.Pixel{Point: origin.Add(transform.Pt(x, y)), Color: col}) {
					return
				}
			}
		}
	})
}

// textMask rasterises text into an alpha mask and returns the position of
// the mask's top-left corner on the target. It returns a nil mask for
// empty text.
func textMask(text string, center transform.Point, face font.Face) (*image.Alpha, transform.Point) {
	lines := strings.Split(text, "\n")
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(face, line).Ceil())
	}
	height := lineHeight * len(lines)
	if width == 0 || height == 0 {
		return nil, transform.Point{}
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{Dst: mask, Src: image.Opaque, Face: face}
	for i, line := range lines {
		advance := font.MeasureString(face, line).Ceil()
		d.Dot = fixed.P((width-advance)/2, i*lineHeight+ascent)
		d.DrawString(line)
	}
	return mask, center.Sub(transform.Pt(width/2, height/2))
}
