package recording

import (
	"testing"

	"github.com/gogpu/batch"
)

func screenView() batch.View {
	return batch.ViewFromRect(batch.R(0, 0, 800, 600))
}

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(screenView())

	if rec.View() != screenView() {
		t.Errorf("View() = %+v, want %+v", rec.View(), screenView())
	}
	if rec.DefaultView() != screenView() {
		t.Errorf("DefaultView() = %+v, want %+v", rec.DefaultView(), screenView())
	}
	if len(rec.Commands()) != 0 {
		t.Errorf("len(Commands()) = %d, want 0", len(rec.Commands()))
	}
}

func TestRecorderCopiesVertices(t *testing.T) {
	rec := NewRecorder(screenView())
	vs := []batch.Vertex{batch.V(1, 2), batch.V(3, 4)}

	rec.DrawPrimitives(vs, batch.Lines, batch.DefaultRenderStates())
	vs[0].Position = batch.Pt(100, 100)

	got := rec.Commands()[0].Vertices[0].Position
	if got != batch.Pt(1, 2) {
		t.Errorf("recorded vertex = %+v, want {1 2}", got)
	}
}

func TestRecorderCapturesViewPerCommand(t *testing.T) {
	rec := NewRecorder(screenView())
	zoomed := batch.NewView(batch.Pt(0, 0), batch.Pt(10, 10))

	rec.DrawPrimitives([]batch.Vertex{batch.V(0, 0)}, batch.Points, batch.DefaultRenderStates())
	rec.SetView(zoomed)
	rec.DrawPrimitives([]batch.Vertex{batch.V(0, 0)}, batch.Points, batch.DefaultRenderStates())

	cmds := rec.Commands()
	if cmds[0].View != screenView() {
		t.Errorf("cmds[0].View = %+v, want default view", cmds[0].View)
	}
	if cmds[1].View != zoomed {
		t.Errorf("cmds[1].View = %+v, want %+v", cmds[1].View, zoomed)
	}
	if len(rec.ViewHistory()) != 1 {
		t.Errorf("len(ViewHistory()) = %d, want 1", len(rec.ViewHistory()))
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder(screenView())
	rec.SetView(batch.NewView(batch.Pt(5, 5), batch.Pt(1, 1)))
	rec.DrawPrimitives([]batch.Vertex{batch.V(0, 0)}, batch.Points, batch.DefaultRenderStates())

	rec.Reset()

	if len(rec.Commands()) != 0 {
		t.Errorf("len(Commands()) = %d after Reset, want 0", len(rec.Commands()))
	}
	if len(rec.ViewHistory()) != 0 {
		t.Errorf("len(ViewHistory()) = %d after Reset, want 0", len(rec.ViewHistory()))
	}
	if rec.View() != screenView() {
		t.Errorf("View() = %+v after Reset, want default", rec.View())
	}
}

func TestFinishRecordingIsImmutable(t *testing.T) {
	rec := NewRecorder(screenView())
	rec.DrawPrimitives([]batch.Vertex{batch.V(0, 0)}, batch.Points, batch.DefaultRenderStates())

	r := rec.FinishRecording()
	rec.DrawPrimitives([]batch.Vertex{batch.V(1, 1)}, batch.Points, batch.DefaultRenderStates())

	if r.Len() != 1 {
		t.Errorf("Recording.Len() = %d, want 1", r.Len())
	}
	if r.VertexCount() != 1 {
		t.Errorf("Recording.VertexCount() = %d, want 1", r.VertexCount())
	}
}

func TestRecordingPlayback(t *testing.T) {
	src := NewRecorder(screenView())
	zoomed := batch.NewView(batch.Pt(0, 0), batch.Pt(10, 10))
	src.SetView(zoomed)
	src.DrawPrimitives([]batch.Vertex{batch.V(0, 0), batch.V(1, 1)}, batch.Lines, batch.DefaultRenderStates())

	dst := NewRecorder(screenView())
	src.FinishRecording().Playback(dst)

	cmds := dst.Commands()
	if len(cmds) != 1 {
		t.Fatalf("len(Commands()) = %d, want 1", len(cmds))
	}
	if cmds[0].View != zoomed {
		t.Errorf("played back view = %+v, want %+v", cmds[0].View, zoomed)
	}
	if dst.View() != screenView() {
		t.Errorf("View() after Playback = %+v, want restored default", dst.View())
	}
}

func TestCommandTransformedPositions(t *testing.T) {
	cmd := Command{
		Vertices: []batch.Vertex{batch.V(1, 1)},
		States:   batch.DefaultRenderStates().WithTransform(batch.Translate(10, 20)),
	}
	got := cmd.TransformedPositions()[0]
	if got != batch.Pt(11, 21) {
		t.Errorf("TransformedPositions()[0] = %+v, want {11 21}", got)
	}
	if cmd.Texture() != batch.NoTexture {
		t.Errorf("Texture() = %v, want NoTexture", cmd.Texture())
	}
}

// Replaying a batch must issue exactly one draw and leave the target view
// as it found it.
func TestBatchReplayOntoRecorder(t *testing.T) {
	tests := []struct {
		name      string
		batchView batch.View
		preset    batch.View
	}{
		{"no batch view", batch.View{}, screenView()},
		{"batch view", batch.NewView(batch.Pt(50, 50), batch.Pt(100, 100)), screenView()},
		{"custom target view", batch.NewView(batch.Pt(50, 50), batch.Pt(100, 100)), batch.NewView(batch.Pt(1, 2), batch.Pt(3, 4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := batch.NewBatch()
			if !tt.batchView.IsZero() {
				b.SetView(tt.batchView)
			}
			quad := []batch.Vertex{batch.V(0, 0), batch.V(1, 0), batch.V(1, 1), batch.V(0, 1)}
			b.DrawPrimitives(quad, batch.TriangleFan, batch.DefaultRenderStates())

			rec := NewRecorder(screenView())
			rec.SetView(tt.preset)
			b.Draw(rec, batch.DefaultRenderStates())

			cmds := rec.Commands()
			if len(cmds) != 1 {
				t.Fatalf("draw calls = %d, want 1", len(cmds))
			}
			if cmds[0].Primitive != batch.Triangles {
				t.Errorf("Primitive = %v, want Triangles", cmds[0].Primitive)
			}
			if len(cmds[0].Vertices) != 6 {
				t.Errorf("vertex count = %d, want 6", len(cmds[0].Vertices))
			}
			wantView := screenView()
			if !tt.batchView.IsZero() {
				wantView = tt.batchView
			}
			if cmds[0].View != wantView {
				t.Errorf("draw view = %+v, want %+v", cmds[0].View, wantView)
			}
			if rec.View() != tt.preset {
				t.Errorf("View() after replay = %+v, want %+v", rec.View(), tt.preset)
			}
		})
	}
}
