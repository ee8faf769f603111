package batch

// RenderTarget is a surface that vertices are drawn onto.
//
// Implementations include render.PixmapTarget (software rasterization),
// recording.Recorder (captures draw calls) and Batch itself (accumulates
// geometry for a later single draw).
//
// Thread Safety: RenderTargets are NOT thread-safe. Each target should be
// used from a single goroutine, or external synchronization must be used.
type RenderTarget interface {
	// View returns the view currently applied to draws.
	View() View

	// SetView changes the view applied to subsequent draws.
	SetView(v View)

	// DefaultView returns the view the target starts with.
	DefaultView() View

	// DrawPrimitives draws vertices with the given topology and states.
	DrawPrimitives(vertices []Vertex, prim PrimitiveType, states RenderStates)
}

// Drawable is an object that knows how to draw itself onto a RenderTarget.
type Drawable interface {
	// Draw submits the object's geometry to target using states as the
	// parent render states.
	Draw(target RenderTarget, states RenderStates)
}

// DrawFunc adapts an ordinary function to the Drawable interface.
type DrawFunc func(target RenderTarget, states RenderStates)

// Draw calls f(target, states).
func (f DrawFunc) Draw(target RenderTarget, states RenderStates) {
	f(target, states)
}
