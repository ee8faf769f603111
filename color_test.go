package batch

import (
	"image/color"
	"testing"
)

func TestRGBAConversions(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"black", Black, color.NRGBA{A: 255}},
		{"white", White, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"half red", RGBA2(1, 0, 0, 0.5), color.NRGBA{R: 255, A: 128}},
		{"out of range clamps", RGBA2(2, -1, 0.5, 1), color.NRGBA{R: 255, G: 0, B: 128, A: 255}},
		{"transparent", Transparent, color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.NRGBA(); got != tt.want {
				t.Errorf("NRGBA() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	in := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	if got := FromColor(in).NRGBA(); got != in {
		t.Errorf("FromColor().NRGBA() = %+v, want %+v", got, in)
	}

	// Premultiplied input is converted to straight alpha.
	pm := color.RGBA{R: 64, G: 0, B: 0, A: 128}
	if got := FromColor(pm).NRGBA(); got.R < 126 || got.R > 128 || got.A != 128 {
		t.Errorf("FromColor(premultiplied) = %+v, want about {127 0 0 128}", got)
	}
}

func TestRGBAModulateAndLerp(t *testing.T) {
	if got := RGBA2(1, 0.5, 0.5, 1).Modulate(RGBA2(0.5, 0.5, 1, 0.5)); !rgbaNear(got, RGBA2(0.5, 0.25, 0.5, 0.5)) {
		t.Errorf("Modulate() = %+v", got)
	}
	if got := Black.Lerp(White, 0.25); !rgbaNear(got, RGBA2(0.25, 0.25, 0.25, 1)) {
		t.Errorf("Lerp() = %+v", got)
	}
	if got := RGBA2(1.5, -0.5, 0.5, 2).Clamp(); got != RGBA2(1, 0, 0.5, 1) {
		t.Errorf("Clamp() = %+v", got)
	}
}
