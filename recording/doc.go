// Package recording provides a RenderTarget that captures draw calls.
//
// A Recorder stores every DrawPrimitives call it receives as a typed
// Command (a copy of the vertices, the primitive type, the render states
// and the view active at the time). Recordings can be inspected, which makes
// the Recorder the reference fake surface in tests, and can be played back
// onto any other batch.RenderTarget.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(batch.ViewFromRect(batch.R(0, 0, 800, 600)))
//	b.Draw(rec, batch.DefaultRenderStates())
//
//	r := rec.FinishRecording()
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd.Primitive, len(cmd.Vertices))
//	}
//
//	// Replay onto a real surface later.
//	r.Playback(pixmapTarget)
//
// # Target Registry
//
// Rendering surfaces can be created by name through the registry, following
// the database/sql driver pattern:
//
//	import _ "github.com/gogpu/batch/render" // registers "raster"
//
//	target, err := recording.NewTarget("raster", 800, 600)
package recording
