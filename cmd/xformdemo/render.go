package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"
	"golang.org/x/sync/errgroup"

	transform "github.com/gogpu/gg-transform"
	"github.com/gogpu/gg-transform/internal/scene"
	"github.com/gogpu/gg-transform/surface"
)

// snapshotter is implemented by targets that can hand back their pixels.
type snapshotter interface {
	Snapshot() *image.RGBA
}

// renderPanels renders the scene once per configured transform. Each panel
// has its own display, so panels are rendered concurrently.
func renderPanels(ctx context.Context, cfg config) ([]*image.RGBA, error) {
	panels := make([]*image.RGBA, len(cfg.Panels))
	g, ctx := errgroup.WithContext(ctx)
	for i, tc := range cfg.Panels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := renderPanel(cfg.Backend, cfg.displaySize(), tc)
			if err != nil {
				return fmt.Errorf("panel %d (%v): %w", i, tc, err)
			}
			panels[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return panels, nil
}

// renderPanel draws the scene on a new display seen through tc and returns
// the display's physical pixels.
func renderPanel(backend string, size transform.Size, tc transform.Config) (*image.RGBA, error) {
	target, err := surface.NewTargetByName(backend, size)
	if err != nil {
		return nil, err
	}
	display := transform.New(target, tc)
	if err := scene.Render(display); err != nil {
		return nil, err
	}

	s, ok := display.Release().(snapshotter)
	if !ok {
		return nil, fmt.Errorf("backend %q cannot produce an image", backend)
	}
	return s.Snapshot(), nil
}

// layout returns the output image bounds and the destination rectangle of
// each panel: a grid of cfg.Columns columns, each panel scaled by cfg.Scale
// and surrounded by cfg.Padding pixels.
func layout(cfg config, n int) (image.Rectangle, []image.Rectangle) {
	pw, ph := cfg.Width*cfg.Scale, cfg.Height*cfg.Scale
	cols := min(cfg.Columns, n)
	rows := (n + cfg.Columns - 1) / cfg.Columns

	bounds := image.Rect(0, 0, cols*(pw+cfg.Padding)+cfg.Padding, rows*(ph+cfg.Padding)+cfg.Padding)
	cells := make([]image.Rectangle, n)
	for i := range cells {
		x := cfg.Padding + (i%cfg.Columns)*(pw+cfg.Padding)
		y := cfg.Padding + (i/cfg.Columns)*(ph+cfg.Padding)
		cells[i] = image.Rect(x, y, x+pw, y+ph)
	}
	return bounds, cells
}

// compose lays the panels out on a background and upscales each one with
// nearest-neighbour sampling so single pixels stay crisp.
func compose(cfg config, panels []*image.RGBA) (*image.RGBA, error) {
	bg, err := cfg.backgroundColor()
	if err != nil {
		return nil, err
	}
	bounds, cells := layout(cfg, len(panels))
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, &image.Uniform{C: bg}, image.Point{}, draw.Src)

	for i, panel := range panels {
		xdraw.NearestNeighbor.Scale(out, cells[i], panel, panel.Bounds(), xdraw.Src, nil)
		if cfg.Labels {
			drawLabel(out, cells[i], cfg.Panels[i].String())
		}
	}
	return out, nil
}

// drawLabel writes label centered in the padding below cell.
func drawLabel(dst draw.Image, cell image.Rectangle, label string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, label).Ceil()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(cell.Min.X+(cell.Dx()-width)/2, cell.Max.Y+face.Metrics().Ascent.Ceil()+2),
	}
	d.DrawString(label)
}

// encode writes img in the format selected by the extension of name.
func encode(w io.Writer, name string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".png":
		return png.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

// save encodes img into the file at path.
func save(path string, img image.Image) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, path, img)
}
