// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/gogpu/batch"
	"github.com/gogpu/batch/recording"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/vector"
)

func init() {
	recording.Register("raster", func(width, height int) batch.RenderTarget {
		return NewPixmapTarget(width, height)
	})
}

// PixmapTarget is a CPU-backed render target using *image.NRGBA.
//
// Pixels are stored with straight (non-premultiplied) alpha, which is what
// batch blend modes operate on. Each pixel also carries an 8-bit stencil
// value used by batch.StencilSettings.
//
// Example:
//
//	target := render.NewPixmapTarget(800, 600)
//	b.Draw(target, batch.DefaultRenderStates())
//	img := target.Image()
type PixmapTarget struct {
	img     *image.NRGBA
	stencil []uint8

	view        batch.View
	defaultView batch.View

	opts targetOptions

	rast    *vector.Rasterizer
	mask    []byte // coverage scratch, reused across primitives
	scratch []batch.Vertex
	draws   int
}

// NewPixmapTarget creates a new CPU-backed render target. Its default view
// maps world coordinates one-to-one onto pixels.
func NewPixmapTarget(width, height int, opts ...TargetOption) *PixmapTarget {
	o := defaultTargetOptions()
	for _, opt := range opts {
		opt(&o)
	}

	def := batch.ViewFromRect(batch.R(0, 0, float64(width), float64(height)))
	t := &PixmapTarget{
		img:         image.NewNRGBA(image.Rect(0, 0, width, height)),
		stencil:     make([]uint8, width*height),
		view:        def,
		defaultView: def,
		opts:        o,
		rast:        vector.NewRasterizer(0, 0),
	}
	t.Clear(o.clearColor)
	return t
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Image returns the underlying *image.NRGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.NRGBA {
	return t.img
}

// View returns the current view.
func (t *PixmapTarget) View() batch.View {
	return t.view
}

// SetView changes the view used by subsequent draws.
func (t *PixmapTarget) SetView(v batch.View) {
	t.view = v
}

// DefaultView returns the view covering the target pixel for pixel.
func (t *PixmapTarget) DefaultView() batch.View {
	return t.defaultView
}

// DrawCalls returns the number of DrawPrimitives calls received.
func (t *PixmapTarget) DrawCalls() int {
	return t.draws
}

// Clear fills the entire target with c and zeroes the stencil buffer.
func (t *PixmapTarget) Clear(c batch.RGBA) {
	n := c.NRGBA()
	pix := t.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = n.R, n.G, n.B, n.A
	}
	t.ClearStencil(0)
}

// ClearStencil sets every stencil value to v.
func (t *PixmapTarget) ClearStencil(v uint8) {
	for i := range t.stencil {
		t.stencil[i] = v
	}
}

// Stencil returns the stencil value at (x, y), or 0 outside the target.
func (t *PixmapTarget) Stencil(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(t.img.Bounds()) {
		return 0
	}
	return t.stencil[y*t.Width()+x]
}

// Pixel returns the color at (x, y).
func (t *PixmapTarget) Pixel(x, y int) batch.RGBA {
	return batch.FromColor(t.img.NRGBAAt(x, y))
}

// SetPixel sets a single pixel, bypassing blending and stencil.
func (t *PixmapTarget) SetPixel(x, y int, c batch.RGBA) {
	t.img.SetNRGBA(x, y, c.NRGBA())
}

// SavePNG encodes the target as PNG into the named file.
func (t *PixmapTarget) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := png.Encode(f, t.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}
	return nil
}

// MapPixelToCoords returns the world point shown at pixel (x, y) under the
// current view.
func (t *PixmapTarget) MapPixelToCoords(x, y int) batch.Point {
	return t.view.MapPixelToCoords(batch.Pt(float64(x), float64(y)), t.Width(), t.Height())
}

// DrawPrimitives rasterizes vertices onto the target.
//
// Vertex positions are mapped through states.Transform and then the current
// view. Composite topologies are split with batch.AppendDecomposed, so the
// target draws exactly what a Batch would store. Textures that do not
// implement batch.Sampler are ignored with a warning.
func (t *PixmapTarget) DrawPrimitives(vertices []batch.Vertex, prim batch.PrimitiveType, states batch.RenderStates) {
	t.draws++
	if len(vertices) == 0 {
		return
	}

	m := t.view.PixelMatrix(t.Width(), t.Height()).Multiply(states.Transform)
	t.scratch = batch.AppendDecomposed(t.scratch[:0], vertices, prim, m)

	var sampler batch.Sampler
	if states.Texture != nil {
		s, ok := states.Texture.(batch.Sampler)
		if !ok {
			batch.Logger().Warn("render: texture has no CPU pixels, drawing untextured",
				slog.Uint64("texture", uint64(states.Texture.Handle())))
		}
		sampler = s
	}

	d := drawState{
		target:  t,
		states:  states,
		sampler: sampler,
		clip:    t.clipRect(),
	}

	vs := t.scratch
	switch prim.Category() {
	case batch.Points:
		for _, v := range vs {
			d.point(v)
		}
	case batch.Lines:
		for i := 0; i+1 < len(vs); i += 2 {
			d.line(vs[i], vs[i+1])
		}
	case batch.Triangles:
		for i := 0; i+2 < len(vs); i += 3 {
			d.triangle(vs[i], vs[i+1], vs[i+2])
		}
	default:
		batch.Logger().Warn("render: unknown primitive type", slog.String("primitive", prim.String()))
	}
}

// clipRect returns the current viewport in pixels, clipped to the image.
func (t *PixmapTarget) clipRect() image.Rectangle {
	vp := t.view.ViewportPixels(t.Width(), t.Height())
	r := image.Rect(
		int(vp.Left+0.5), int(vp.Top+0.5),
		int(vp.Left+vp.Width+0.5), int(vp.Top+vp.Height+0.5),
	)
	return r.Intersect(t.img.Bounds())
}

// fragment runs the per-pixel pipeline: alpha test, stencil test and
// update, then blending.
//
// The stencil operation is applied to every fragment that passes the alpha
// test, whether or not the stencil comparison passes.
func (t *PixmapTarget) fragment(x, y int, c batch.RGBA, states batch.RenderStates) {
	st := states.Stencil
	if !st.PassesAlpha(c.A) {
		return
	}

	idx := y*t.Width() + x
	passed := st.PassesStencil(t.stencil[idx])
	t.stencil[idx] = st.Operation.Apply(t.stencil[idx], st.Reference)
	if !passed || !st.DrawSelf {
		return
	}

	dst := batch.FromColor(t.img.NRGBAAt(x, y))
	out := states.BlendMode.Blend(c, dst)
	t.img.SetNRGBA(x, y, out.NRGBA())
}

// Ensure PixmapTarget implements batch.RenderTarget.
var _ batch.RenderTarget = (*PixmapTarget)(nil)
