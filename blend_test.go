package batch

import (
	"math"
	"testing"
)

func rgbaNear(a, b RGBA) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestBlendPresets(t *testing.T) {
	dst := RGBA2(0.2, 0.4, 0.6, 1)
	src := RGBA2(1, 0, 0.5, 0.5)

	tests := []struct {
		name string
		mode BlendMode
		want RGBA
	}{
		{"alpha", BlendAlpha, RGBA2(0.6, 0.2, 0.55, 1)},
		{"add", BlendAdd, RGBA2(0.7, 0.4, 0.85, 1)},
		{"multiply", BlendMultiply, RGBA2(0.2, 0, 0.3, 0.5)},
		{"none", BlendNone, src},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.Blend(src, dst); !rgbaNear(got, tt.want) {
				t.Errorf("Blend() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBlendEquations(t *testing.T) {
	src := RGBA2(0.25, 0.75, 0.5, 1)
	dst := RGBA2(0.5, 0.5, 0.5, 1)

	tests := []struct {
		eq   BlendEquation
		want RGBA
	}{
		{EquationAdd, RGBA2(0.75, 1, 1, 1)},
		{EquationSubtract, RGBA2(0, 0.25, 0, 0)},
		{EquationReverseSubtract, RGBA2(0.25, 0, 0, 0)},
		{EquationMin, RGBA2(0.25, 0.5, 0.5, 1)},
		{EquationMax, RGBA2(0.5, 0.75, 0.5, 1)},
	}
	for _, tt := range tests {
		mode := NewBlendMode(FactorOne, FactorOne, tt.eq)
		if got := mode.Blend(src, dst); !rgbaNear(got, tt.want) {
			t.Errorf("equation %d: Blend() = %+v, want %+v", tt.eq, got, tt.want)
		}
	}
}

func TestBlendModeComparable(t *testing.T) {
	if NewBlendMode(FactorOne, FactorZero, EquationAdd) != BlendNone {
		t.Error("equal blend modes compare unequal")
	}
	if BlendAlpha == BlendAdd {
		t.Error("BlendAlpha == BlendAdd")
	}
}
