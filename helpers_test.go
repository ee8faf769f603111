package batch

// drawCall is one DrawPrimitives call seen by fakeTarget.
type drawCall struct {
	vertices []Vertex
	prim     PrimitiveType
	states   RenderStates
	view     View
}

// fakeTarget records draw calls and view changes.
type fakeTarget struct {
	view        View
	defaultView View
	draws       []drawCall
	setViews    []View
}

func newFakeTarget() *fakeTarget {
	def := ViewFromRect(R(0, 0, 640, 480))
	return &fakeTarget{view: def, defaultView: def}
}

func (t *fakeTarget) View() View        { return t.view }
func (t *fakeTarget) DefaultView() View { return t.defaultView }

func (t *fakeTarget) SetView(v View) {
	t.view = v
	t.setViews = append(t.setViews, v)
}

func (t *fakeTarget) DrawPrimitives(vs []Vertex, prim PrimitiveType, states RenderStates) {
	t.draws = append(t.draws, drawCall{
		vertices: append([]Vertex(nil), vs...),
		prim:     prim,
		states:   states,
		view:     t.view,
	})
}

// testTexture is a texture with no pixels.
type testTexture struct {
	handle TextureHandle
}

func newTestTexture() *testTexture {
	return &testTexture{handle: NewTextureHandle()}
}

func (t *testTexture) Handle() TextureHandle { return t.handle }
func (t *testTexture) Size() (int, int)      { return 32, 32 }

// verts builds white vertices at the given x coordinates, y = index.
func verts(xs ...float64) []Vertex {
	vs := make([]Vertex, len(xs))
	for i, x := range xs {
		vs[i] = V(x, float64(i))
	}
	return vs
}

// positions extracts the vertex positions.
func positions(vs []Vertex) []Point {
	ps := make([]Point, len(vs))
	for i, v := range vs {
		ps[i] = v.Position
	}
	return ps
}

// mustPanicConflict runs fn and returns the *ConflictError it panicked with.
func mustPanicConflict(t interface {
	Helper()
	Fatalf(string, ...any)
}, fn func()) (ce *ConflictError) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with *ConflictError, got none")
		}
		var ok bool
		if ce, ok = r.(*ConflictError); !ok {
			t.Fatalf("panic value = %T (%v), want *ConflictError", r, r)
		}
	}()
	fn()
	return nil
}
