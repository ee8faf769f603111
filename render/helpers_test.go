// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/batch"
)

// newCheckerTexture returns a 2x2 texture: red on the diagonal, blue elsewhere.
func newCheckerTexture() *batch.ImageTexture {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 1, red)
	img.SetNRGBA(1, 0, blue)
	img.SetNRGBA(0, 1, blue)
	return batch.NewImageTexture(img)
}
