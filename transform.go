package transform

import (
	"image/color"
	"iter"
)

// Transform is a DrawTarget that remaps the coordinates of every drawing
// operation before passing it to the target it wraps.
//
// Transform solely remaps coordinates; it cannot use optimised rotation
// support a display might have. FillSolid and Clear are forwarded as single
// calls, everything else goes through DrawPixels.
//
// Transform adds no errors of its own and performs no bounds checking. Every
// error comes from the wrapped target and is returned unchanged.
//
// A Transform owns its target: nothing else should draw to the target until
// Release is called.
type Transform[D DrawTarget] struct {
	target D
	cfg    Config
}

// Compile-time check: a Transform is itself a DrawTarget and can be nested.
var _ DrawTarget = (*Transform[DrawTarget])(nil)

// New wraps target with the coordinate transform cfg.
func New[D DrawTarget](target D, cfg Config) *Transform[D] {
	t := &Transform[D]{target: target, cfg: cfg}
	Logger().Debug("transform: wrap target",
		"config", cfg.String(),
		"physical", target.Size(),
		"logical", t.Size())
	return t
}

// NewRotate0 wraps target without changing any coordinate.
func NewRotate0[D DrawTarget](target D) *Transform[D] { return New(target, Rotate0) }

// NewRotate90 wraps target rotating it by 90 degrees.
func NewRotate90[D DrawTarget](target D) *Transform[D] { return New(target, Rotate90) }

// NewRotate180 wraps target rotating it by 180 degrees.
func NewRotate180[D DrawTarget](target D) *Transform[D] { return New(target, Rotate180) }

// NewRotate270 wraps target rotating it by 270 degrees.
func NewRotate270[D DrawTarget](target D) *Transform[D] { return New(target, Rotate270) }

// NewMirrorX wraps target mirroring it along the x-axis.
func NewMirrorX[D DrawTarget](target D) *Transform[D] { return New(target, MirrorX) }

// NewMirrorY wraps target mirroring it along the y-axis.
func NewMirrorY[D DrawTarget](target D) *Transform[D] { return New(target, MirrorY) }

// NewMirrorXY wraps target mirroring it along both axes.
func NewMirrorXY[D DrawTarget](target D) *Transform[D] { return New(target, MirrorXY) }

// NewTransposeXY wraps target swapping its x and y axes.
func NewTransposeXY[D DrawTarget](target D) *Transform[D] { return New(target, TransposeXY) }

// Release returns the wrapped target. The Transform must not be used
// afterwards.
func (t *Transform[D]) Release() D {
	target := t.target
	Logger().Debug("transform: release target", "config", t.cfg.String())
	var zero D
	t.target = zero
	return target
}

// Config returns the transform applied by t.
func (t *Transform[D]) Config() Config {
	return t.cfg
}

// Target returns the wrapped target.
//
// Operations called on the returned value bypass the transform and work in
// the target's own, untransformed coordinates.
func (t *Transform[D]) Target() D {
	return t.target
}

// TargetPtr returns a pointer to the wrapped target so that value-typed
// targets can be modified in place. Like Target, it bypasses the transform.
func (t *Transform[D]) TargetPtr() *D {
	return &t.target
}

// Size returns the size of the target, with width and height swapped if
// the transform transposes.
func (t *Transform[D]) Size() Size {
	return t.cfg.Size(t.target.Size())
}

// DrawPixels remaps every pixel and draws the sequence on the target in the
// same order.
func (t *Transform[D]) DrawPixels(pixels iter.Seq[Pixel]) error {
	return t.target.DrawPixels(t.cfg.Pixels(pixels, t.Size()))
}

// FillSolid remaps area as a whole and fills it on the target.
func (t *Transform[D]) FillSolid(area Rectangle, c color.Color) error {
	return t.target.FillSolid(t.cfg.Rect(area, t.Size()), c)
}

// Clear clears the whole target. No remapping is needed.
func (t *Transform[D]) Clear(c color.Color) error {
	return t.target.Clear(c)
}
