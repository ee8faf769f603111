package gpu

import (
	"testing"

	"github.com/gogpu/batch"
)

func TestTexture(t *testing.T) {
	a := NewTexture(nil, 64, 32)
	b := NewTexture(nil, 64, 32)

	if w, h := a.Size(); w != 64 || h != 32 {
		t.Errorf("Size() = %dx%d, want 64x32", w, h)
	}
	if a.Handle() == batch.NoTexture {
		t.Error("Handle() = NoTexture, want a fresh handle")
	}
	if a.Handle() == b.Handle() {
		t.Error("two wrappers share a handle")
	}
	if a.GPUTexture() != nil {
		t.Error("GPUTexture() should return the wrapped value")
	}
}

func TestTextureBreaksBatch(t *testing.T) {
	tex := NewTexture(nil, 8, 8)
	b := batch.NewBatch()
	quad := []batch.Vertex{batch.V(0, 0), batch.V(8, 0), batch.V(0, 8)}

	b.DrawPrimitives(quad, batch.Triangles, batch.DefaultRenderStates().WithTexture(tex))
	if err := b.Check(batch.Triangles, batch.DefaultRenderStates().WithTexture(tex)); err != nil {
		t.Errorf("Check() same texture = %v, want nil", err)
	}
	if err := b.Check(batch.Triangles, batch.DefaultRenderStates()); err == nil {
		t.Error("Check() without texture = nil, want conflict")
	}
}
