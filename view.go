package batch

// View is a 2D camera: it selects the world-space region that is shown
// (Center, Size, Rotation) and where on the surface it is shown (Viewport,
// in fractions of the surface size).
//
// View is comparable with ==. The zero View means "no view set".
type View struct {
	Center   Point
	Size     Point
	Rotation float64 // radians
	Viewport Rect
}

// FullViewport covers the entire surface.
var FullViewport = Rect{Left: 0, Top: 0, Width: 1, Height: 1}

// NewView creates a view showing a size-sized region around center,
// rendered over the whole surface.
func NewView(center, size Point) View {
	return View{Center: center, Size: size, Viewport: FullViewport}
}

// ViewFromRect creates a view showing exactly r.
func ViewFromRect(r Rect) View {
	return NewView(r.Center(), r.Size())
}

// IsZero reports whether v is the zero View.
func (v View) IsZero() bool {
	return v == View{}
}

// ViewportPixels returns the viewport in pixels for a surface of the given size.
func (v View) ViewportPixels(width, height int) Rect {
	w, h := float64(width), float64(height)
	return Rect{
		Left:   v.Viewport.Left * w,
		Top:    v.Viewport.Top * h,
		Width:  v.Viewport.Width * w,
		Height: v.Viewport.Height * h,
	}
}

// PixelMatrix returns the transform from world coordinates to pixel
// coordinates on a surface of the given size. Pixel y grows downwards, as
// does world y.
func (v View) PixelMatrix(width, height int) Matrix {
	if v.Size.X == 0 || v.Size.Y == 0 {
		return Identity()
	}
	vp := v.ViewportPixels(width, height)
	c := vp.Center()
	return Translate(c.X, c.Y).
		Multiply(Scale(vp.Width/v.Size.X, vp.Height/v.Size.Y)).
		Multiply(Rotate(-v.Rotation)).
		Multiply(Translate(-v.Center.X, -v.Center.Y))
}

// MapCoordsToPixel converts a world point to pixel coordinates on a surface
// of the given size.
func (v View) MapCoordsToPixel(p Point, width, height int) Point {
	return v.PixelMatrix(width, height).TransformPoint(p)
}

// MapPixelToCoords converts pixel coordinates on a surface of the given size
// back to world coordinates, for example to find what lies under the mouse.
func (v View) MapPixelToCoords(p Point, width, height int) Point {
	return v.PixelMatrix(width, height).Invert().TransformPoint(p)
}

// NDCMatrix returns the transform from world coordinates to normalized
// device coordinates ([-1, 1], y up) within the viewport.
func (v View) NDCMatrix() Matrix {
	if v.Size.X == 0 || v.Size.Y == 0 {
		return Identity()
	}
	return Scale(2/v.Size.X, -2/v.Size.Y).
		Multiply(Rotate(-v.Rotation)).
		Multiply(Translate(-v.Center.X, -v.Center.Y))
}
