package batch

// VertexArray is a Drawable that submits its vertices unchanged with a
// single primitive type.
type VertexArray struct {
	Vertices  []Vertex
	Primitive PrimitiveType
}

// NewVertexArray creates an array of n zero vertices.
func NewVertexArray(prim PrimitiveType, n int) *VertexArray {
	return &VertexArray{Vertices: make([]Vertex, n), Primitive: prim}
}

// Append adds vertices to the end of the array.
func (a *VertexArray) Append(vs ...Vertex) {
	a.Vertices = append(a.Vertices, vs...)
}

// Len returns the number of vertices.
func (a *VertexArray) Len() int { return len(a.Vertices) }

// Bounds returns the axis-aligned bounds of the vertex positions.
func (a *VertexArray) Bounds() Rect {
	pts := make([]Point, len(a.Vertices))
	for i, v := range a.Vertices {
		pts[i] = v.Position
	}
	return boundsOf(pts)
}

// Draw submits the array to target.
func (a *VertexArray) Draw(target RenderTarget, states RenderStates) {
	if len(a.Vertices) > 0 {
		target.DrawPrimitives(a.Vertices, a.Primitive, states)
	}
}
