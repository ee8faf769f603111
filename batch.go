package batch

import (
	"log/slog"
	"slices"
)

// cycleState is the batch state machine: a cycle starts empty and becomes
// committed on its first draw, staying committed until Reset.
type cycleState uint8

const (
	cycleEmpty cycleState = iota
	cycleCommitted
)

// commitment holds the settings fixed by the first draw of a cycle.
type commitment struct {
	category   PrimitiveType
	texture    TextureHandle
	textureRef Texture
	blend      BlendMode
}

// Batch accumulates geometry from many draw calls into one vertex stream
// that is later drawn to another RenderTarget in a single call.
//
// All draws between two calls to Reset form a cycle and must agree on
// primitive category (points, lines or triangles), texture and blend mode;
// the view can only be changed before the first draw of a cycle. Strips and
// fans are decomposed into independent lines and triangles, so unrelated
// objects never get connected, and every vertex is stored with its draw's
// transform already applied.
//
// Breaking these rules is a programming error: DrawPrimitives panics with a
// *ConflictError. Use Check to probe a draw beforehand.
//
// Batch implements both RenderTarget (to accumulate) and Drawable (to replay).
//
// Example:
//
//	b := batch.NewBatch()
//	for _, s := range sprites {
//	    s.Draw(b, batch.DefaultRenderStates())
//	}
//	b.Draw(window, batch.DefaultRenderStates())
//	b.Reset()
//
// A Batch is not safe for concurrent use.
type Batch struct {
	vertices []Vertex
	state    cycleState
	commit   commitment

	view     View // pending view, as last set
	viewUsed bool
	usedView View // view committed by the first draw of the cycle
}

// NewBatch creates an empty batch.
func NewBatch(opts ...Option) *Batch {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Batch{}
	if o.capacity > 0 {
		b.vertices = make([]Vertex, 0, o.capacity)
	}
	if !o.view.IsZero() {
		b.SetView(o.view)
	}
	return b
}

// View returns the last view passed to SetView, or the zero View.
func (b *Batch) View() View {
	return b.view
}

// SetView declares the view the batch is replayed with.
//
// The view takes effect with the first draw of a cycle. Once drawing has
// begun the committed view is kept: SetView only records the pending view,
// and the next draw panics if that is a different non-zero view. The zero
// View stands for "no view of its own", so setting it never conflicts.
func (b *Batch) SetView(v View) {
	b.view = v
}

// DefaultView returns the zero View. A batch has no size and hence no
// default view of its own; replaying without a view uses the destination's
// default view instead.
func (b *Batch) DefaultView() View {
	return View{}
}

// ClearView removes any view set on the batch. It may be called at any
// time; in a cycle that has already begun, the batch is then replayed with
// the destination's default view.
func (b *Batch) ClearView() {
	b.view = View{}
	b.viewUsed = false
	b.usedView = View{}
}

// DrawPrimitives appends vertices to the batch.
//
// The first draw of a cycle commits prim's category, states.Texture and
// states.BlendMode. Later draws must match them, and the pending view must
// be zero or equal to the committed one; otherwise DrawPrimitives logs the
// conflict and panics with a *ConflictError. Shaders and stencil settings are not compared.
//
// Drawing an empty slice does nothing.
func (b *Batch) DrawPrimitives(vertices []Vertex, prim PrimitiveType, states RenderStates) {
	if len(vertices) == 0 {
		return
	}

	if err := b.Check(prim, states); err != nil {
		Logger().Error("batch: incompatible draw",
			slog.String("primitive", prim.String()),
			slog.Int("vertices", len(vertices)),
			slog.Any("err", err))
		panic(err)
	}

	if b.state == cycleEmpty {
		b.begin(prim, states)
	}
	b.vertices = AppendDecomposed(b.vertices, vertices, prim, states.Transform)
}

// begin commits the cycle settings from the first draw.
func (b *Batch) begin(prim PrimitiveType, states RenderStates) {
	b.state = cycleCommitted
	b.commit = commitment{
		category:   prim.Category(),
		texture:    HandleOf(states.Texture),
		textureRef: states.Texture,
		blend:      states.BlendMode,
	}

	// A view only takes effect once something has been drawn with it.
	b.usedView = b.view
	b.viewUsed = !b.view.IsZero()

	Logger().Debug("batch: cycle committed",
		slog.String("category", b.commit.category.String()),
		slog.Uint64("texture", uint64(b.commit.texture)),
		slog.Bool("view", b.viewUsed))
}

// Check reports whether drawing with prim and states would conflict with the
// current cycle. It returns nil for an empty cycle, and otherwise a
// *ConflictError wrapping ErrStateConflict for the first mismatch found.
func (b *Batch) Check(prim PrimitiveType, states RenderStates) error {
	if b.state == cycleEmpty {
		return nil
	}
	if !b.view.IsZero() && b.view != b.usedView {
		return &ConflictError{Field: "view", Want: b.usedView, Got: b.view}
	}
	if category := prim.Category(); category != b.commit.category {
		return &ConflictError{Field: "primitive", Want: b.commit.category, Got: category}
	}
	if handle := HandleOf(states.Texture); handle != b.commit.texture {
		return &ConflictError{Field: "texture", Want: b.commit.texture, Got: handle}
	}
	if states.BlendMode != b.commit.blend {
		return &ConflictError{Field: "blend mode", Want: b.commit.blend, Got: states.BlendMode}
	}
	return nil
}

// DrawDrawable lets d submit its geometry to the batch.
func (b *Batch) DrawDrawable(d Drawable, states RenderStates) {
	d.Draw(b, states)
}

// Reset starts a new cycle: it empties the vertex stream and forgets the
// committed primitive category, texture and blend mode. The view and the
// stream's capacity are kept.
func (b *Batch) Reset() {
	Logger().Debug("batch: reset", slog.Int("vertices", len(b.vertices)))
	clear(b.vertices)
	b.vertices = b.vertices[:0]
	b.state = cycleEmpty
	b.commit = commitment{}
}

// Reserve grows the vertex stream so that it can hold at least n vertices
// without reallocating. The capacity survives Reset.
func (b *Batch) Reserve(n int) {
	if n > len(b.vertices) {
		b.vertices = slices.Grow(b.vertices, n-len(b.vertices))
	}
}

// Len returns the number of stored vertices.
func (b *Batch) Len() int {
	return len(b.vertices)
}

// Cap returns the capacity of the vertex stream.
func (b *Batch) Cap() int {
	return cap(b.vertices)
}

// Vertices returns the stored vertex stream. The slice is owned by the
// batch and is only valid until the next draw or Reset; callers must not
// modify it.
func (b *Batch) Vertices() []Vertex {
	return b.vertices
}

// Committed reports whether anything has been drawn since the last Reset.
func (b *Batch) Committed() bool {
	return b.state == cycleCommitted
}

// Category returns the committed primitive category.
// The result is only meaningful when Committed reports true.
func (b *Batch) Category() PrimitiveType {
	return b.commit.category
}

// Texture returns the committed texture, or nil.
func (b *Batch) Texture() Texture {
	return b.commit.textureRef
}

// BlendMode returns the committed blend mode.
// The result is only meaningful when Committed reports true.
func (b *Batch) BlendMode() BlendMode {
	return b.commit.blend
}

// Bounds returns the axis-aligned bounds of the stored vertices.
func (b *Batch) Bounds() Rect {
	pts := make([]Point, len(b.vertices))
	for i, v := range b.vertices {
		pts[i] = v.Position
	}
	return boundsOf(pts)
}
