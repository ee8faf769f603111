package batch

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Vertex is a single point of geometry: a position, a color and a texture
// coordinate expressed in texture pixels.
type Vertex struct {
	Position  Point
	Color     RGBA
	TexCoords Point
}

// V creates a white, untextured vertex at (x, y).
func V(x, y float64) Vertex {
	return Vertex{Position: Pt(x, y), Color: White}
}

// PrimitiveType is the topology a sequence of vertices is drawn with.
type PrimitiveType uint8

// Primitive types. Points, Lines and Triangles are the three categories a
// Batch stores; the strip and fan variants are composite topologies that are
// decomposed into one of those categories on submission.
const (
	Points PrimitiveType = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

// String returns the name of the primitive type.
func (p PrimitiveType) String() string {
	switch p {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LineStrip:
		return "LineStrip"
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleFan:
		return "TriangleFan"
	default:
		return fmt.Sprintf("PrimitiveType(%d)", uint8(p))
	}
}

// Category returns the independent primitive type p decomposes into.
func (p PrimitiveType) Category() PrimitiveType {
	switch p {
	case LineStrip:
		return Lines
	case TriangleStrip, TriangleFan:
		return Triangles
	default:
		return p
	}
}

// IsComposite reports whether p is a connected strip or fan topology.
func (p PrimitiveType) IsComposite() bool {
	return p == LineStrip || p == TriangleStrip || p == TriangleFan
}

// VerticesPerPrimitive returns how many vertices one independent primitive
// of p's category uses.
func (p PrimitiveType) VerticesPerPrimitive() int {
	switch p.Category() {
	case Lines:
		return 2
	case Triangles:
		return 3
	default:
		return 1
	}
}

// Topology returns the WebGPU primitive topology for p.
// Triangle fans have no WebGPU equivalent and report a triangle list, which
// is what they become after decomposition.
func (p PrimitiveType) Topology() gputypes.PrimitiveTopology {
	switch p {
	case Points:
		return gputypes.PrimitiveTopologyPointList
	case Lines:
		return gputypes.PrimitiveTopologyLineList
	case LineStrip:
		return gputypes.PrimitiveTopologyLineStrip
	case TriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip
	default:
		return gputypes.PrimitiveTopologyTriangleList
	}
}

// AppendDecomposed appends src to dst as independent primitives of
// prim.Category(), transforming every position by m.
//
// Composite topologies are rewritten so the appended geometry never connects
// to whatever dst already held:
//   - LineStrip: each vertex after the second is preceded by a copy of the
//     previously stored vertex, giving N-1 separate lines.
//   - TriangleStrip: each vertex after the third is preceded by copies of the
//     last two stored vertices.
//   - TriangleFan: each vertex after the third is preceded by copies of the
//     first vertex stored for this call and the last stored vertex.
//
// Duplication is driven by indices into dst, so it stays correct when append
// reallocates. Strips and fans shorter than one primitive are appended as-is.
func AppendDecomposed(dst, src []Vertex, prim PrimitiveType, m Matrix) []Vertex {
	first := len(dst)
	identity := m.IsIdentity()
	for i, v := range src {
		switch {
		case prim == LineStrip && i > 1:
			dst = append(dst, dst[len(dst)-1])
		case prim == TriangleStrip && i > 2:
			n := len(dst)
			dst = append(dst, dst[n-2], dst[n-1])
		case prim == TriangleFan && i > 2:
			n := len(dst)
			dst = append(dst, dst[first], dst[n-1])
		}
		if !identity {
			v.Position = m.TransformPoint(v.Position)
		}
		dst = append(dst, v)
	}
	return dst
}

// DecomposedLen returns the number of vertices AppendDecomposed stores for n
// input vertices of type prim.
func DecomposedLen(n int, prim PrimitiveType) int {
	switch prim {
	case LineStrip:
		if n > 1 {
			return 2 * (n - 1)
		}
	case TriangleStrip, TriangleFan:
		if n > 3 {
			return 3 * (n - 2)
		}
	}
	return n
}
