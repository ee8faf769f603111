package batch

// Sprite draws a rectangular region of a texture as a textured quad.
// The quad is submitted as a four-vertex TriangleStrip, so any number of
// sprites sharing one texture can be accumulated in a single Batch.
type Sprite struct {
	Transformable

	texture  Texture
	rect     Rect
	color    RGBA
	vertices [4]Vertex
}

// NewSprite creates a sprite covering the whole texture.
func NewSprite(t Texture) *Sprite {
	w, h := t.Size()
	return NewSpriteRect(t, R(0, 0, float64(w), float64(h)))
}

// NewSpriteRect creates a sprite showing the rect sub-region of t.
func NewSpriteRect(t Texture, rect Rect) *Sprite {
	s := &Sprite{
		Transformable: NewTransformable(),
		texture:       t,
		color:         White,
	}
	s.SetTextureRect(rect)
	return s
}

// Texture returns the sprite's texture.
func (s *Sprite) Texture() Texture { return s.texture }

// TextureRect returns the displayed texture region.
func (s *Sprite) TextureRect() Rect { return s.rect }

// SetTextureRect changes the displayed texture region, resizing the sprite.
func (s *Sprite) SetTextureRect(r Rect) {
	s.rect = r
	s.update()
}

// Color returns the tint color.
func (s *Sprite) Color() RGBA { return s.color }

// SetColor sets the tint color multiplied with the texture.
func (s *Sprite) SetColor(c RGBA) {
	s.color = c
	s.update()
}

// LocalBounds returns the untransformed bounds.
func (s *Sprite) LocalBounds() Rect {
	return R(0, 0, s.rect.Width, s.rect.Height)
}

// GlobalBounds returns the bounds after applying the sprite transform.
func (s *Sprite) GlobalBounds() Rect {
	return s.Transform().TransformRect(s.LocalBounds())
}

// update rebuilds the quad in strip order: top-left, bottom-left,
// top-right, bottom-right.
func (s *Sprite) update() {
	w, h := s.rect.Width, s.rect.Height
	l, t := s.rect.Left, s.rect.Top
	r, b := l+w, t+h

	s.vertices = [4]Vertex{
		{Position: Pt(0, 0), Color: s.color, TexCoords: Pt(l, t)},
		{Position: Pt(0, h), Color: s.color, TexCoords: Pt(l, b)},
		{Position: Pt(w, 0), Color: s.color, TexCoords: Pt(r, t)},
		{Position: Pt(w, h), Color: s.color, TexCoords: Pt(r, b)},
	}
}

// Draw submits the sprite's quad to target.
func (s *Sprite) Draw(target RenderTarget, states RenderStates) {
	states.Transform = states.Transform.Multiply(s.Transform())
	states.Texture = s.texture
	target.DrawPrimitives(s.vertices[:], TriangleStrip, states)
}
