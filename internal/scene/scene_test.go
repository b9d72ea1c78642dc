package scene

import (
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	transform "github.com/gogpu/gg-transform"
	"github.com/gogpu/gg-transform/mock"
	"github.com/gogpu/gg-transform/surface"
)

func TestFillTriangle(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c transform.Point
		want    int
	}{
		{"right angle", transform.Pt(0, 0), transform.Pt(4, 0), transform.Pt(0, 4), 15},
		{"clockwise", transform.Pt(0, 0), transform.Pt(0, 4), transform.Pt(4, 0), 15},
		{"degenerate", transform.Pt(0, 0), transform.Pt(2, 2), transform.Pt(4, 4), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mock.New(mock.WithSize(transform.Sz(8, 8)))
			if err := FillTriangle(d, tt.a, tt.b, tt.c, color.Black); err != nil {
				t.Fatalf("FillTriangle() = %v", err)
			}
			if d.Len() != tt.want {
				t.Errorf("drew %d pixels, want %d:\n%s", d.Len(), tt.want, d)
			}
		})
	}
}

func TestFillTriangleCorners(t *testing.T) {
	d := mock.New(mock.WithSize(transform.Sz(16, 16)))
	a, b, c := transform.Pt(15, 15), transform.Pt(7, 15), transform.Pt(15, 7)
	if err := FillTriangle(d, a, b, c, color.Black); err != nil {
		t.Fatal(err)
	}
	for _, p := range []transform.Point{a, b, c} {
		if _, ok := d.Get(p); !ok {
			t.Errorf("corner %v not drawn", p)
		}
	}
	if got, want := d.AffectedArea(), transform.Rect(7, 7, 9, 9); got != want {
		t.Errorf("AffectedArea() = %+v, want %+v", got, want)
	}
}

func TestDrawTextCentered(t *testing.T) {
	d := mock.New(mock.WithSize(transform.Sz(128, 64)))
	center := transform.Pt(64, 32)
	if err := DrawText(d, Greeting, center, basicfont.Face7x13, color.Black); err != nil {
		t.Fatalf("DrawText() = %v", err)
	}
	if d.Len() == 0 {
		t.Fatal("DrawText drew nothing")
	}

	// Both lines are 6 glyphs of 7 pixels, each 13 pixels high.
	area := d.AffectedArea()
	block := transform.Rect(center.X-21, center.Y-13, 42, 26)
	if !block.Contains(area.TopLeft) || !block.Contains(area.BottomRight()) {
		t.Errorf("text area %+v outside expected block %+v", area, block)
	}
}

func TestDrawTextEmpty(t *testing.T) {
	d := mock.New()
	if err := DrawText(d, "", transform.Pt(10, 10), basicfont.Face7x13, color.Black); err != nil {
		t.Fatal(err)
	}
	if d.Len() != 0 {
		t.Errorf("empty text drew %d pixels", d.Len())
	}
}

func TestRender(t *testing.T) {
	d := mock.New(mock.WithSize(transform.Sz(128, 64)), mock.WithOverdraw(true))
	if err := Render(d); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	// Square, vertical bars, horizontal bar and triangle corner.
	black := []transform.Point{
		transform.Pt(0, 0), transform.Pt(3, 3),
		transform.Pt(0, 63), transform.Pt(3, 8),
		transform.Pt(127, 3),
		transform.Pt(127, 63),
	}
	for _, p := range black {
		c, _ := d.Get(p)
		if c != colornames.Black {
			t.Errorf("pixel %v = %v, want black", p, c)
		}
	}
	if c, _ := d.Get(transform.Pt(1, 8)); c != colornames.White {
		t.Errorf("gap between bars = %v, want white", c)
	}
}

func TestRenderPropagatesError(t *testing.T) {
	d := mock.New()
	// Without overdraw the first fill after Clear fails.
	if err := Render(d); err == nil {
		t.Error("Render() should return the target's error")
	}
}

// TestRenderThroughTransforms renders the scene once on a target of the
// logical size and once through each transform, then checks that every
// logical pixel landed where the transform maps it.
func TestRenderThroughTransforms(t *testing.T) {
	physical := transform.Sz(48, 32)
	for _, cfg := range transform.Configs() {
		t.Run(cfg.String(), func(t *testing.T) {
			logical := cfg.Size(physical)

			reference := surface.NewImageTarget(logical.Width, logical.Height)
			if err := Render(reference); err != nil {
				t.Fatal(err)
			}
			target := surface.NewImageTarget(physical.Width, physical.Height)
			if err := Render(transform.New(target, cfg)); err != nil {
				t.Fatal(err)
			}

			ref, got := reference.Snapshot(), target.Snapshot()
			for p := range (transform.Rectangle{Size: logical}).Points() {
				q := cfg.Point(p, logical)
				if ref.RGBAAt(p.X, p.Y) != got.RGBAAt(q.X, q.Y) {
					t.Fatalf("logical %v -> physical %v: got %v, want %v",
						p, q, got.RGBAAt(q.X, q.Y), ref.RGBAAt(p.X, p.Y))
				}
			}
		})
	}
}
