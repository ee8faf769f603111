package recording

import (
	"maps"
	"slices"

	"github.com/gogpu/batch"
)

// TextureRef is a reference to a texture in a TexturePool.
type TextureRef uint32

// InvalidRef marks a command drawn without a texture.
const InvalidRef TextureRef = 0xFFFFFFFF

// IsValid returns true if the reference is valid (not InvalidRef).
func (r TextureRef) IsValid() bool {
	return r != InvalidRef
}

// TexturePool collects the distinct textures referenced by recorded
// commands, in order of first use. Textures are identified by handle, so
// adding the same texture twice returns the same reference.
//
// A backend replaying a Recording can upload every texture in the pool once
// up front instead of discovering them command by command.
//
// TexturePool is not safe for concurrent use.
type TexturePool struct {
	textures []batch.Texture
	refs     map[batch.TextureHandle]TextureRef
}

// NewTexturePool creates an empty texture pool.
func NewTexturePool() *TexturePool {
	return &TexturePool{
		textures: make([]batch.Texture, 0, 8),
		refs:     make(map[batch.TextureHandle]TextureRef),
	}
}

// Add adds t to the pool and returns its reference.
// A nil texture is not stored and yields InvalidRef.
func (p *TexturePool) Add(t batch.Texture) TextureRef {
	if t == nil {
		return InvalidRef
	}
	h := t.Handle()
	if ref, ok := p.refs[h]; ok {
		return ref
	}
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := TextureRef(uint32(len(p.textures)))
	p.textures = append(p.textures, t)
	p.refs[h] = ref
	return ref
}

// Get returns the texture for ref, or nil if ref is invalid.
func (p *TexturePool) Get(ref TextureRef) batch.Texture {
	if !ref.IsValid() || int(ref) >= len(p.textures) {
		return nil
	}
	return p.textures[ref]
}

// Len returns the number of distinct textures.
func (p *TexturePool) Len() int {
	return len(p.textures)
}

// Textures returns the pooled textures in order of first use.
func (p *TexturePool) Textures() []batch.Texture {
	return slices.Clone(p.textures)
}

// Clone returns an independent copy of the pool.
func (p *TexturePool) Clone() *TexturePool {
	return &TexturePool{
		textures: slices.Clone(p.textures),
		refs:     maps.Clone(p.refs),
	}
}

// Reset empties the pool, keeping allocated storage.
func (p *TexturePool) Reset() {
	clear(p.textures)
	p.textures = p.textures[:0]
	clear(p.refs)
}
