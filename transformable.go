package batch

// Transformable holds a position, rotation, scale and origin and combines
// them into a Matrix. It is embedded by the built-in drawables.
//
// The origin is the local point that Position refers to and that rotation
// and scaling are centered on.
type Transformable struct {
	position Point
	rotation float64
	scale    Point
	origin   Point
}

// NewTransformable returns a transformable at the origin with unit scale.
func NewTransformable() Transformable {
	return Transformable{scale: Pt(1, 1)}
}

// Position returns the position.
func (t *Transformable) Position() Point { return t.position }

// SetPosition sets the position.
func (t *Transformable) SetPosition(p Point) { t.position = p }

// Move offsets the position by d.
func (t *Transformable) Move(d Point) { t.position = t.position.Add(d) }

// Rotation returns the rotation in radians.
func (t *Transformable) Rotation() float64 { return t.rotation }

// SetRotation sets the rotation in radians.
func (t *Transformable) SetRotation(angle float64) { t.rotation = angle }

// ScaleFactors returns the scale factors.
func (t *Transformable) ScaleFactors() Point { return t.scale }

// SetScale sets the scale factors.
func (t *Transformable) SetScale(s Point) { t.scale = s }

// Origin returns the local origin.
func (t *Transformable) Origin() Point { return t.origin }

// SetOrigin sets the local origin.
func (t *Transformable) SetOrigin(o Point) { t.origin = o }

// Transform returns the combined transformation:
// translate(position) * rotate * scale * translate(-origin).
func (t *Transformable) Transform() Matrix {
	return Translate(t.position.X, t.position.Y).
		Multiply(Rotate(t.rotation)).
		Multiply(Scale(t.scale.X, t.scale.Y)).
		Multiply(Translate(-t.origin.X, -t.origin.Y))
}
