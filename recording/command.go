package recording

import "github.com/gogpu/batch"

// Command is one captured DrawPrimitives call.
type Command struct {
	// Vertices is a private copy of the submitted vertices.
	Vertices []batch.Vertex

	// Primitive is the topology the vertices were submitted with.
	Primitive batch.PrimitiveType

	// States are the render states of the call.
	States batch.RenderStates

	// View is the target view at the time of the call.
	View batch.View

	// TextureRef locates States.Texture in the recording's TexturePool.
	TextureRef TextureRef
}

// Texture returns the handle of the texture used by the command.
func (c Command) Texture() batch.TextureHandle {
	return batch.HandleOf(c.States.Texture)
}

// TransformedPositions returns the vertex positions with the command's
// transform applied.
func (c Command) TransformedPositions() []batch.Point {
	pts := make([]batch.Point, len(c.Vertices))
	for i, v := range c.Vertices {
		pts[i] = c.States.Transform.TransformPoint(v.Position)
	}
	return pts
}
