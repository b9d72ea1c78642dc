// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides concrete DrawTargets and a backend registry.
//
// # Targets
//
//   - ImageTarget: CPU rendering into any draw.Image, usually *image.RGBA
//
// Every target implements transform.DrawTarget and can be wrapped by a
// transform.Transform:
//
//	t := surface.NewImageTarget(128, 64, surface.WithBackground(color.White))
//	r := transform.NewRotate270(t)
//	_ = r.FillSolid(transform.Rect(0, 0, 4, 4), color.Black)
//	img := t.Snapshot()
//
// # Registry
//
// Display drivers can register a factory under a name:
//
//	surface.Register("ssd1306", 100, func(size transform.Size) (transform.DrawTarget, error) {
//	    return ssd1306.Open(size)
//	}, ssd1306.Present)
//
//	// Later:
//	t, err := surface.NewTargetByName("ssd1306", transform.Sz(128, 64))
//
// The built-in "image" backend is registered at priority 10.
package surface
