package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/batch"
	"github.com/gogpu/gputypes"
)

// VertexStride is the byte stride per vertex:
// position (2 x float32) + color (4 x float32) + tex coords (2 x float32) = 32 bytes.
const VertexStride = 32

// UniformSize is the byte size of the uniform block built by Uniforms.
// Layout: three transform columns (vec4<f32> each) + params (vec4<f32>) = 64 bytes.
const UniformSize = 64

// VertexLayout describes the interleaved vertex buffer written by
// EncodeVertices.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
			{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1},  // color
			{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2}, // tex coords
		},
	}
}

// EncodeVertices appends vs to dst in the VertexLayout format and returns
// the extended slice.
func EncodeVertices(dst []byte, vs []batch.Vertex) []byte {
	dst = growBytes(dst, len(vs)*VertexStride)
	for _, v := range vs {
		dst = appendFloats(dst,
			v.Position.X, v.Position.Y,
			v.Color.R, v.Color.G, v.Color.B, v.Color.A,
			v.TexCoords.X, v.TexCoords.Y,
		)
	}
	return dst
}

// Uniforms encodes the world-to-clip transform for view combined with
// transform, and the bound texture's size, in the layout the default
// shader expects.
func Uniforms(view batch.View, transform batch.Matrix, tex batch.Texture) []byte {
	m := view.NDCMatrix().Multiply(transform)

	var textured, w, h float64
	if tex != nil {
		tw, th := tex.Size()
		textured, w, h = 1, float64(tw), float64(th)
	}

	buf := make([]byte, 0, UniformSize)
	return appendFloats(buf,
		m.A, m.D, 0, 0,
		m.B, m.E, 0, 0,
		m.C, m.F, 0, 0,
		textured, w, h, 0,
	)
}

func appendFloats(dst []byte, fs ...float64) []byte {
	for _, f := range fs {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(f)))
	}
	return dst
}

func growBytes(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	return out
}
