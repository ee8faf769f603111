package batch

import (
	"image"
	"math"
	"sync/atomic"

	xdraw "golang.org/x/image/draw"
)

// TextureHandle is an opaque token identifying a texture. Two textures are
// considered the same by a Batch exactly when their handles are equal.
type TextureHandle uint64

// NoTexture is the handle recorded for untextured draws.
const NoTexture TextureHandle = 0

var lastTextureHandle atomic.Uint64

// NewTextureHandle returns a process-unique, non-zero texture handle.
// It is safe for concurrent use.
func NewTextureHandle() TextureHandle {
	return TextureHandle(lastTextureHandle.Add(1))
}

// Texture is an image resource that vertices sample through their
// texture coordinates. The batch only looks at the handle; rendering
// surfaces may also type-assert to Sampler.
type Texture interface {
	// Handle returns the texture's identity token.
	Handle() TextureHandle

	// Size returns the texture dimensions in pixels.
	Size() (width, height int)
}

// Sampler is implemented by textures whose pixels are available on the CPU.
type Sampler interface {
	// Sample returns the texel at p, given in texture pixels.
	Sample(p Point) RGBA
}

// HandleOf returns t's handle, or NoTexture if t is nil.
func HandleOf(t Texture) TextureHandle {
	if t == nil {
		return NoTexture
	}
	return t.Handle()
}

// ImageTexture is a CPU texture backed by an *image.NRGBA.
type ImageTexture struct {
	handle TextureHandle
	img    *image.NRGBA
	repeat bool
}

// NewImageTexture copies img into a new texture.
func NewImageTexture(img image.Image) *ImageTexture {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
	return &ImageTexture{handle: NewTextureHandle(), img: dst}
}

// Handle returns the texture's identity token.
func (t *ImageTexture) Handle() TextureHandle { return t.handle }

// Size returns the texture dimensions in pixels.
func (t *ImageTexture) Size() (width, height int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetRepeated enables wrapping of coordinates outside the texture.
// Otherwise coordinates are clamped to the edge.
func (t *ImageTexture) SetRepeated(repeat bool) { t.repeat = repeat }

// Image returns the texture pixels. The returned image shares memory with the texture.
func (t *ImageTexture) Image() *image.NRGBA { return t.img }

// Sample returns the nearest texel at p.
func (t *ImageTexture) Sample(p Point) RGBA {
	w, h := t.Size()
	if w == 0 || h == 0 {
		return Transparent
	}
	x := t.wrap(int(math.Floor(p.X)), w)
	y := t.wrap(int(math.Floor(p.Y)), h)
	c := t.img.NRGBAAt(x, y)
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func (t *ImageTexture) wrap(v, size int) int {
	if t.repeat {
		v %= size
		if v < 0 {
			v += size
		}
		return v
	}
	return min(max(v, 0), size-1)
}

// Shader is an opaque program reference carried by RenderStates.
// A Batch never compares shaders; keeping them consistent within a cycle is
// the caller's responsibility.
type Shader interface {
	// Label returns a human-readable name used in logs.
	Label() string
}
