package batch

import (
	"math"
	"slices"
)

// Shape is a filled convex polygon with an optional outline.
//
// The fill is submitted as a TriangleFan around the polygon's center and
// the outline as a TriangleStrip; both decompose to triangles, so shapes
// mix freely with sprites in one Batch as long as texture and blend mode
// agree.
type Shape struct {
	Transformable

	points           []Point
	fillColor        RGBA
	outlineColor     RGBA
	outlineThickness float64
	texture          Texture
	textureRect      Rect

	fill    []Vertex
	outline []Vertex
}

// NewConvexShape creates a shape from the polygon's points in order.
// The points must describe a convex polygon.
func NewConvexShape(points ...Point) *Shape {
	s := &Shape{
		Transformable: NewTransformable(),
		points:        slices.Clone(points),
		fillColor:     White,
		outlineColor:  White,
	}
	s.update()
	return s
}

// NewRectangleShape creates an axis-aligned rectangle of the given size
// with its top-left corner at the local origin.
func NewRectangleShape(size Point) *Shape {
	return NewConvexShape(Pt(0, 0), Pt(size.X, 0), Pt(size.X, size.Y), Pt(0, size.Y))
}

// NewCircleShape approximates a circle of the given radius with segments
// points. The circle's bounding box has its top-left corner at the local origin.
func NewCircleShape(radius float64, segments int) *Shape {
	segments = max(segments, 3)
	pts := make([]Point, segments)
	for i := range pts {
		angle := 2*math.Pi*float64(i)/float64(segments) - math.Pi/2
		pts[i] = Pt(radius+math.Cos(angle)*radius, radius+math.Sin(angle)*radius)
	}
	return NewConvexShape(pts...)
}

// Points returns a copy of the polygon points.
func (s *Shape) Points() []Point { return slices.Clone(s.points) }

// FillColor returns the fill color.
func (s *Shape) FillColor() RGBA { return s.fillColor }

// SetFillColor sets the fill color.
func (s *Shape) SetFillColor(c RGBA) {
	s.fillColor = c
	s.update()
}

// OutlineColor returns the outline color.
func (s *Shape) OutlineColor() RGBA { return s.outlineColor }

// SetOutlineColor sets the outline color.
func (s *Shape) SetOutlineColor(c RGBA) {
	s.outlineColor = c
	s.update()
}

// OutlineThickness returns the outline thickness.
func (s *Shape) OutlineThickness() float64 { return s.outlineThickness }

// SetOutlineThickness sets the outline thickness. Positive values grow the
// outline outwards, negative values inwards; zero disables it.
func (s *Shape) SetOutlineThickness(t float64) {
	s.outlineThickness = t
	s.update()
}

// SetTexture maps the texture region rect over the shape's local bounds.
// Pass nil to draw untextured.
func (s *Shape) SetTexture(t Texture, rect Rect) {
	s.texture = t
	s.textureRect = rect
	s.update()
}

// LocalBounds returns the untransformed bounds of the polygon.
func (s *Shape) LocalBounds() Rect { return boundsOf(s.points) }

// FillVertices returns the fill geometry in TriangleFan order.
func (s *Shape) FillVertices() []Vertex { return s.fill }

// OutlineVertices returns the outline geometry in TriangleStrip order.
func (s *Shape) OutlineVertices() []Vertex { return s.outline }

func (s *Shape) update() {
	s.fill = s.fill[:0]
	s.outline = s.outline[:0]
	if len(s.points) < 3 {
		return
	}

	bounds := boundsOf(s.points)
	center := bounds.Center()
	texCoord := func(p Point) Point {
		if bounds.Width == 0 || bounds.Height == 0 {
			return Point{}
		}
		return Pt(
			s.textureRect.Left+(p.X-bounds.Left)/bounds.Width*s.textureRect.Width,
			s.textureRect.Top+(p.Y-bounds.Top)/bounds.Height*s.textureRect.Height,
		)
	}

	// Fan: center, every point, then the first point again to close.
	s.fill = append(s.fill, Vertex{Position: center, Color: s.fillColor, TexCoords: texCoord(center)})
	for i := 0; i <= len(s.points); i++ {
		p := s.points[i%len(s.points)]
		s.fill = append(s.fill, Vertex{Position: p, Color: s.fillColor, TexCoords: texCoord(p)})
	}

	if s.outlineThickness == 0 {
		return
	}
	n := len(s.points)
	for i := 0; i <= n; i++ {
		p0 := s.points[(i+n-1)%n]
		p1 := s.points[i%n]
		p2 := s.points[(i+1)%n]

		n1 := edgeNormal(p0, p1)
		n2 := edgeNormal(p1, p2)
		// Make normals point away from the center.
		if n1.Dot(center.Sub(p1)) > 0 {
			n1 = n1.Mul(-1)
		}
		if n2.Dot(center.Sub(p1)) > 0 {
			n2 = n2.Mul(-1)
		}

		factor := 1 + n1.Dot(n2)
		normal := n1.Add(n2).Mul(1 / factor)

		s.outline = append(s.outline,
			Vertex{Position: p1, Color: s.outlineColor},
			Vertex{Position: p1.Add(normal.Mul(s.outlineThickness)), Color: s.outlineColor},
		)
	}
}

// edgeNormal returns the unit normal of the segment p1-p2.
func edgeNormal(p1, p2 Point) Point {
	return Pt(p1.Y-p2.Y, p2.X-p1.X).Normalize()
}

// Draw submits the fill and then the outline to target.
// The outline is always untextured, so a textured shape with an outline
// cannot be accumulated in a single Batch cycle.
func (s *Shape) Draw(target RenderTarget, states RenderStates) {
	states.Transform = states.Transform.Multiply(s.Transform())
	if len(s.fill) > 0 {
		states.Texture = s.texture
		target.DrawPrimitives(s.fill, TriangleFan, states)
	}
	if len(s.outline) > 0 {
		states.Texture = nil
		target.DrawPrimitives(s.outline, TriangleStrip, states)
	}
}
