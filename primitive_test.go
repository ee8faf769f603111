package batch

import (
	"slices"
	"testing"
)

func TestPrimitiveCategory(t *testing.T) {
	tests := []struct {
		prim      PrimitiveType
		category  PrimitiveType
		composite bool
	}{
		{Points, Points, false},
		{Lines, Lines, false},
		{LineStrip, Lines, true},
		{Triangles, Triangles, false},
		{TriangleStrip, Triangles, true},
		{TriangleFan, Triangles, true},
	}
	for _, tt := range tests {
		t.Run(tt.prim.String(), func(t *testing.T) {
			if got := tt.prim.Category(); got != tt.category {
				t.Errorf("Category() = %v, want %v", got, tt.category)
			}
			if got := tt.prim.IsComposite(); got != tt.composite {
				t.Errorf("IsComposite() = %v, want %v", got, tt.composite)
			}
		})
	}
}

func TestAppendDecomposed(t *testing.T) {
	p := func(x float64, i int) Point { return Pt(x, float64(i)) }

	tests := []struct {
		name string
		prim PrimitiveType
		in   []Vertex
		want []Point
	}{
		{
			name: "points unchanged",
			prim: Points,
			in:   verts(1, 2, 3),
			want: []Point{p(1, 0), p(2, 1), p(3, 2)},
		},
		{
			name: "line strip of 4",
			prim: LineStrip,
			in:   verts(0, 1, 2, 3),
			want: []Point{p(0, 0), p(1, 1), p(1, 1), p(2, 2), p(2, 2), p(3, 3)},
		},
		{
			name: "line strip of 2 is one line",
			prim: LineStrip,
			in:   verts(0, 1),
			want: []Point{p(0, 0), p(1, 1)},
		},
		{
			name: "line strip of 1 degenerates",
			prim: LineStrip,
			in:   verts(5),
			want: []Point{p(5, 0)},
		},
		{
			name: "triangle strip of 5",
			prim: TriangleStrip,
			in:   verts(0, 1, 2, 3, 4),
			want: []Point{
				p(0, 0), p(1, 1), p(2, 2),
				p(1, 1), p(2, 2), p(3, 3),
				p(2, 2), p(3, 3), p(4, 4),
			},
		},
		{
			name: "triangle fan of 5",
			prim: TriangleFan,
			in:   verts(0, 1, 2, 3, 4),
			want: []Point{
				p(0, 0), p(1, 1), p(2, 2),
				p(0, 0), p(2, 2), p(3, 3),
				p(0, 0), p(3, 3), p(4, 4),
			},
		},
		{
			name: "fan of 2 degenerates",
			prim: TriangleFan,
			in:   verts(0, 1),
			want: []Point{p(0, 0), p(1, 1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendDecomposed(nil, tt.in, tt.prim, Identity())
			if !slices.Equal(positions(got), tt.want) {
				t.Errorf("AppendDecomposed() = %v, want %v", positions(got), tt.want)
			}
			if n := DecomposedLen(len(tt.in), tt.prim); n != len(tt.want) {
				t.Errorf("DecomposedLen() = %d, want %d", n, len(tt.want))
			}
		})
	}
}

func TestAppendDecomposedKeepsExisting(t *testing.T) {
	dst := AppendDecomposed(nil, verts(100, 101, 102), Triangles, Identity())
	dst = AppendDecomposed(dst, verts(0, 1, 2, 3), TriangleFan, Identity())

	// The fan apex is the first vertex of this call, not of dst.
	if len(dst) != 9 {
		t.Fatalf("len = %d, want 9", len(dst))
	}
	if dst[6].Position != Pt(0, 0) {
		t.Errorf("apex = %v, want (0, 0)", dst[6].Position)
	}
	if dst[0].Position != Pt(100, 0) {
		t.Errorf("existing vertex changed: %v", dst[0].Position)
	}
}

func TestAppendDecomposedTransforms(t *testing.T) {
	m := Translate(10, 20).Multiply(Scale(2, 2))
	in := []Vertex{{Position: Pt(1, 1), Color: Red, TexCoords: Pt(5, 6)}}

	got := AppendDecomposed(nil, in, Points, m)
	if got[0].Position != Pt(12, 22) {
		t.Errorf("Position = %v, want (12, 22)", got[0].Position)
	}
	if got[0].Color != Red || got[0].TexCoords != Pt(5, 6) {
		t.Errorf("color/tex coords changed: %+v", got[0])
	}
	if in[0].Position != Pt(1, 1) {
		t.Error("input was modified")
	}
}
