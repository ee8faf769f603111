package batch

// RenderStates bundles the state a draw call is rendered with.
//
// The zero value is not a useful default (its blend mode discards the
// source); start from DefaultRenderStates and override fields.
type RenderStates struct {
	BlendMode BlendMode
	Stencil   StencilSettings
	Transform Matrix
	Texture   Texture
	Shader    Shader
}

// DefaultRenderStates returns alpha blending, disabled stencil, the identity
// transform and neither texture nor shader.
func DefaultRenderStates() RenderStates {
	return RenderStates{
		BlendMode: BlendAlpha,
		Stencil:   StencilDisable,
		Transform: Identity(),
	}
}

// WithTransform returns a copy of s whose transform is m applied after s.Transform
// (that is, s.Transform * m).
func (s RenderStates) WithTransform(m Matrix) RenderStates {
	s.Transform = s.Transform.Multiply(m)
	return s
}

// WithTexture returns a copy of s using texture t.
func (s RenderStates) WithTexture(t Texture) RenderStates {
	s.Texture = t
	return s
}

// WithBlendMode returns a copy of s using blend mode m.
func (s RenderStates) WithBlendMode(m BlendMode) RenderStates {
	s.BlendMode = m
	return s
}

// WithStencil returns a copy of s using stencil settings st.
func (s RenderStates) WithStencil(st StencilSettings) RenderStates {
	s.Stencil = st
	return s
}

// WithShader returns a copy of s using shader sh.
func (s RenderStates) WithShader(sh Shader) RenderStates {
	s.Shader = sh
	return s
}
