package recording

import (
	"log/slog"
	"slices"

	"github.com/gogpu/batch"
)

// Recorder is a batch.RenderTarget that captures draw calls as commands
// instead of rasterizing them. Use FinishRecording to obtain an immutable
// Recording that can be inspected or replayed.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	defaultView batch.View
	view        batch.View
	views       []batch.View
	commands    []Command
	textures    *TexturePool
}

// NewRecorder creates a Recorder whose default (and initial) view is defaultView.
func NewRecorder(defaultView batch.View) *Recorder {
	return &Recorder{
		defaultView: defaultView,
		view:        defaultView,
		commands:    make([]Command, 0, 16),
		textures:    NewTexturePool(),
	}
}

// View returns the current view.
func (r *Recorder) View() batch.View {
	return r.view
}

// SetView changes the current view and appends it to the view history.
func (r *Recorder) SetView(v batch.View) {
	r.view = v
	r.views = append(r.views, v)
}

// DefaultView returns the view the recorder was created with.
func (r *Recorder) DefaultView() batch.View {
	return r.defaultView
}

// DrawPrimitives records the call. The vertices are copied.
func (r *Recorder) DrawPrimitives(vertices []batch.Vertex, prim batch.PrimitiveType, states batch.RenderStates) {
	r.commands = append(r.commands, Command{
		Vertices:   slices.Clone(vertices),
		Primitive:  prim,
		States:     states,
		View:       r.view,
		TextureRef: r.textures.Add(states.Texture),
	})
	batch.Logger().Debug("recording: draw",
		slog.String("primitive", prim.String()),
		slog.Int("vertices", len(vertices)))
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Textures returns the pool of textures used so far.
func (r *Recorder) Textures() *TexturePool {
	return r.textures
}

// ViewHistory returns every view passed to SetView, in call order.
func (r *Recorder) ViewHistory() []batch.View {
	return r.views
}

// Reset discards all recorded commands, textures and the view history, and
// restores the default view.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.textures.Reset()
	r.views = r.views[:0]
	r.view = r.defaultView
}

// FinishRecording returns an immutable Recording of the commands captured
// so far. The Recorder can continue to be used; later calls do not affect
// the returned Recording.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		commands: slices.Clone(r.commands),
		textures: r.textures.Clone(),
	}
}

// Recording is an immutable list of captured draw calls.
type Recording struct {
	commands []Command
	textures *TexturePool
}

// Textures returns the distinct textures used by the recording, in order
// of first use.
func (r *Recording) Textures() []batch.Texture {
	return r.textures.Textures()
}

// Texture returns the texture referenced by ref, or nil.
func (r *Recording) Texture(ref TextureRef) batch.Texture {
	return r.textures.Get(ref)
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded draw calls.
func (r *Recording) Len() int {
	return len(r.commands)
}

// VertexCount returns the total number of vertices over all commands.
func (r *Recording) VertexCount() int {
	n := 0
	for _, c := range r.commands {
		n += len(c.Vertices)
	}
	return n
}

// Playback replays every command onto target, applying each command's view
// for the duration of its draw and restoring target's view afterwards.
func (r *Recording) Playback(target batch.RenderTarget) {
	saved := target.View()
	for _, c := range r.commands {
		target.SetView(c.View)
		target.DrawPrimitives(c.Vertices, c.Primitive, c.States)
	}
	target.SetView(saved)
}
