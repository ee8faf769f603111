// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/batch"
)

// drawState carries what one DrawPrimitives call needs per primitive.
type drawState struct {
	target  *PixmapTarget
	states  batch.RenderStates
	sampler batch.Sampler
	clip    image.Rectangle
}

// shade returns the fragment color for an interpolated vertex.
func (d *drawState) shade(c batch.RGBA, uv batch.Point) batch.RGBA {
	if d.sampler != nil {
		return c.Modulate(d.sampler.Sample(uv))
	}
	return c
}

// point draws a single pixel at the vertex position.
func (d *drawState) point(v batch.Vertex) {
	x, y := int(math.Floor(v.Position.X)), int(math.Floor(v.Position.Y))
	if !(image.Point{X: x, Y: y}).In(d.clip) {
		return
	}
	d.target.fragment(x, y, d.shade(v.Color, v.TexCoords), d.states)
}

// line draws a one pixel wide segment, interpolating along its length.
func (d *drawState) line(a, b batch.Vertex) {
	dir := b.Position.Sub(a.Position)
	length := dir.Length()
	if length == 0 {
		d.point(a)
		return
	}
	unit := dir.Mul(1 / length)
	n := batch.Pt(-unit.Y, unit.X).Mul(0.5)

	quad := []batch.Point{
		a.Position.Add(n), b.Position.Add(n),
		b.Position.Sub(n), a.Position.Sub(n),
	}
	d.cover(quad, func(x, y int, coverage float64) {
		p := batch.Pt(float64(x)+0.5, float64(y)+0.5)
		s := clamp01(p.Sub(a.Position).Dot(unit) / length)
		c := d.shade(a.Color.Lerp(b.Color, s), a.TexCoords.Lerp(b.TexCoords, s))
		c.A *= coverage
		d.target.fragment(x, y, c, d.states)
	})
}

// triangle draws a filled triangle with barycentric interpolation of color
// and texture coordinates.
func (d *drawState) triangle(v0, v1, v2 batch.Vertex) {
	p0, p1, p2 := v0.Position, v1.Position, v2.Position
	area := p1.Sub(p0).Cross(p2.Sub(p0))
	if area == 0 {
		return
	}

	d.cover([]batch.Point{p0, p1, p2}, func(x, y int, coverage float64) {
		p := batch.Pt(float64(x)+0.5, float64(y)+0.5)
		w0 := clamp01(p2.Sub(p1).Cross(p.Sub(p1)) / area)
		w1 := clamp01(p0.Sub(p2).Cross(p.Sub(p2)) / area)
		w2 := clamp01(p1.Sub(p0).Cross(p.Sub(p0)) / area)
		if sum := w0 + w1 + w2; sum > 0 {
			w0, w1, w2 = w0/sum, w1/sum, w2/sum
		}

		c := batch.RGBA{
			R: v0.Color.R*w0 + v1.Color.R*w1 + v2.Color.R*w2,
			G: v0.Color.G*w0 + v1.Color.G*w1 + v2.Color.G*w2,
			B: v0.Color.B*w0 + v1.Color.B*w1 + v2.Color.B*w2,
			A: v0.Color.A*w0 + v1.Color.A*w1 + v2.Color.A*w2,
		}
		uv := v0.TexCoords.Mul(w0).Add(v1.TexCoords.Mul(w1)).Add(v2.TexCoords.Mul(w2))

		c = d.shade(c, uv)
		c.A *= coverage
		d.target.fragment(x, y, c, d.states)
	})
}

// cover rasterizes the closed polygon pts and calls fn for every pixel
// inside the clip rectangle with non-zero coverage.
func (d *drawState) cover(pts []batch.Point, fn func(x, y int, coverage float64)) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	bounds := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(d.clip)
	if bounds.Empty() {
		return
	}

	w, h := bounds.Dx(), bounds.Dy()
	t := d.target
	t.rast.Reset(w, h)
	t.rast.DrawOp = draw.Src
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	t.rast.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		t.rast.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	t.rast.ClosePath()

	// The mask must be exactly w*h with stride w: the rasterizer writes
	// tightly packed rows when the destination matches its own size.
	n := w * h
	if cap(t.mask) < n {
		t.mask = make([]byte, n)
	}
	dst := &image.Alpha{Pix: t.mask[:n], Stride: w, Rect: image.Rect(0, 0, w, h)}
	clear(dst.Pix)
	t.rast.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	for y := range h {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x, a := range row {
			if a == 0 {
				continue
			}
			coverage := float64(a) / 0xFF
			if !t.opts.antialias {
				if coverage < 0.5 {
					continue
				}
				coverage = 1
			}
			fn(bounds.Min.X+x, bounds.Min.Y+y, coverage)
		}
	}
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
