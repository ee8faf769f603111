package gpu

import (
	"github.com/gogpu/batch"
	"github.com/gogpu/gpucontext"
)

// Texture adapts a GPU texture to batch.Texture. Each Texture gets its own
// handle, so two wrappers around the same GPU texture do not batch together;
// wrap a texture once and reuse the wrapper.
type Texture struct {
	handle        batch.TextureHandle
	tex           gpucontext.Texture
	width, height int
}

// NewTexture wraps tex, whose dimensions are width x height pixels.
func NewTexture(tex gpucontext.Texture, width, height int) *Texture {
	return &Texture{
		handle: batch.NewTextureHandle(),
		tex:    tex,
		width:  width,
		height: height,
	}
}

// Handle returns the texture's identity token.
func (t *Texture) Handle() batch.TextureHandle { return t.handle }

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) { return t.width, t.height }

// GPUTexture returns the wrapped GPU texture.
func (t *Texture) GPUTexture() gpucontext.Texture { return t.tex }

var _ batch.Texture = (*Texture)(nil)
