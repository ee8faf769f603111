// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides a software rendering surface for batch.
//
// PixmapTarget implements batch.RenderTarget on top of an *image.NRGBA. It
// rasterizes points, lines and triangles with golang.org/x/image/vector
// coverage, interpolates vertex colors and texture coordinates, samples
// CPU textures (batch.Sampler), and applies the blend mode, the stencil and
// alpha tests and the active view's viewport.
//
// # Usage
//
//	target := render.NewPixmapTarget(800, 600, render.WithClearColor(batch.Black))
//
//	b := batch.NewBatch()
//	shape := batch.NewCircleShape(50, 32)
//	shape.Draw(b, batch.DefaultRenderStates())
//	b.Draw(target, batch.DefaultRenderStates())
//
//	if err := target.SavePNG("out.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// The target registers itself as "raster" in the recording package's
// target registry.
//
// Thread Safety: PixmapTarget is NOT thread-safe.
package render
