// Package transform rotates, mirrors and transposes pixel drawing targets.
//
// # Overview
//
// A [Transform] wraps any [DrawTarget] and remaps the coordinates of every
// drawing call before passing it on. The wrapped target does not need to
// know about the transform, so the same drawing code works on a display
// mounted upside down, sideways or behind a mirror.
//
//	display := mock.New()                    // any DrawTarget
//	rotated := transform.NewRotate90(display) // also a DrawTarget
//
//	_ = rotated.Clear(color.White)
//	_ = rotated.FillSolid(transform.Rect(0, 0, 4, 4), color.Black)
//
//	display = rotated.Release()
//
// # Configurations
//
// A [Config] combines three independent axes. When enabled they are always
// applied in the same order: mirror along x, mirror along y, transpose.
//
//	Name           MirrorX  MirrorY  Transpose
//	rotate-0       -        -        -
//	mirror-x       yes      -        -
//	mirror-y       -        yes      -
//	mirror-xy      yes      yes      -          (= rotate-180)
//	transpose-xy   -        -        yes
//	rotate-90      yes      -        yes
//	rotate-270     -        yes      yes
//	anti-transpose yes      yes      yes
//
// Mirrors are measured in the logical size reported by the Transform, that
// is the target size with width and height swapped when transposing.
//
// # Drawing
//
// DrawPixels remaps each pixel and keeps the order of the sequence.
// FillSolid remaps the rectangle as a whole and stays a single call on the
// target; it covers exactly the pixels DrawPixels would. Clear is forwarded
// unchanged.
//
// A Transform adds no errors and performs no bounds checking: errors come
// from the wrapped target and are returned as they are.
//
// # Accessing the Target
//
// [Transform.Target] and [Transform.TargetPtr] expose the wrapped target for
// operations outside DrawTarget. Calls made through them are not remapped.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package transform
