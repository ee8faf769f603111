// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/batch"

// TargetOption configures a PixmapTarget during creation.
type TargetOption func(*targetOptions)

type targetOptions struct {
	clearColor batch.RGBA
	antialias  bool
}

func defaultTargetOptions() targetOptions {
	return targetOptions{
		clearColor: batch.Transparent,
		antialias:  true,
	}
}

// WithClearColor sets the color the target is filled with on creation.
// Clear always uses the color passed to it.
func WithClearColor(c batch.RGBA) TargetOption {
	return func(o *targetOptions) {
		o.clearColor = c
	}
}

// WithAntialias enables or disables fractional edge coverage.
// Without antialiasing a pixel is drawn when at least half of it is covered.
func WithAntialias(enabled bool) TargetOption {
	return func(o *targetOptions) {
		o.antialias = enabled
	}
}
