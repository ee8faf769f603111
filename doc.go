// Package batch provides a vertex-batching render target for 2D graphics.
//
// # Overview
//
// A Batch collects geometry from many independent draw calls into one
// contiguous vertex stream and later draws the whole stream to another
// render target in a single call. Sprites, shapes and vertex arrays that
// share a texture and blend mode can be drawn hundreds at a time for the
// cost of one draw.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/batch"
//	    "github.com/gogpu/batch/render"
//	)
//
//	target := render.NewPixmapTarget(800, 600)
//	b := batch.NewBatch(batch.WithCapacity(4096))
//
//	tex := batch.NewImageTexture(img)
//	for i := range 100 {
//	    s := batch.NewSprite(tex)
//	    s.SetPosition(batch.Pt(float64(i*8), 100))
//	    s.Draw(b, batch.DefaultRenderStates())
//	}
//
//	b.Draw(target, batch.DefaultRenderStates()) // one DrawPrimitives call
//	b.Reset()
//
// # Cycles
//
// The draws between two calls to Reset form a cycle. The first draw of a
// cycle commits the primitive category (points, lines or triangles), the
// texture and the blend mode, and every later draw must agree with them.
// A view must be set before the first draw. Violations are programming
// errors and panic with a *ConflictError wrapping ErrStateConflict.
//
// # Composite Topologies
//
// LineStrip, TriangleStrip and TriangleFan draws are decomposed into
// independent lines and triangles on submission (see AppendDecomposed), so
// two strips drawn into the same batch are never joined together.
//
// # Architecture
//
// The module is organized into:
//   - batch: vertices, render states, views, the Batch itself and simple drawables
//   - render: a software RenderTarget drawing into an *image.NRGBA
//   - recording: a RenderTarget that captures draw calls for inspection and playback
//   - gpu: translation of render states into WebGPU pipeline state
//   - cache: a generic LRU cache used for GPU pipeline state
package batch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
