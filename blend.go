package batch

// BlendFactor selects the multiplier applied to a source or destination
// component before the blend equation combines them.
type BlendFactor uint8

// Blend factors.
const (
	FactorZero BlendFactor = iota
	FactorOne
	FactorSrcColor
	FactorOneMinusSrcColor
	FactorDstColor
	FactorOneMinusDstColor
	FactorSrcAlpha
	FactorOneMinusSrcAlpha
	FactorDstAlpha
	FactorOneMinusDstAlpha
)

// BlendEquation combines the weighted source and destination components.
type BlendEquation uint8

// Blend equations.
const (
	EquationAdd BlendEquation = iota
	EquationSubtract
	EquationReverseSubtract
	EquationMin
	EquationMax
)

// BlendMode describes how drawn pixels are combined with the pixels already
// on the surface. Color and alpha channels are configured separately.
//
// BlendMode is comparable with ==; a Batch requires every submission of a
// cycle to use an identical mode.
type BlendMode struct {
	ColorSrcFactor BlendFactor
	ColorDstFactor BlendFactor
	ColorEquation  BlendEquation
	AlphaSrcFactor BlendFactor
	AlphaDstFactor BlendFactor
	AlphaEquation  BlendEquation
}

// NewBlendMode creates a mode that uses the same factors and equation for
// the color and alpha channels.
func NewBlendMode(src, dst BlendFactor, eq BlendEquation) BlendMode {
	return BlendMode{
		ColorSrcFactor: src, ColorDstFactor: dst, ColorEquation: eq,
		AlphaSrcFactor: src, AlphaDstFactor: dst, AlphaEquation: eq,
	}
}

// Commonly used blend modes.
var (
	// BlendAlpha blends source and destination according to source alpha.
	BlendAlpha = BlendMode{
		ColorSrcFactor: FactorSrcAlpha, ColorDstFactor: FactorOneMinusSrcAlpha, ColorEquation: EquationAdd,
		AlphaSrcFactor: FactorOne, AlphaDstFactor: FactorOneMinusSrcAlpha, AlphaEquation: EquationAdd,
	}

	// BlendAdd adds the source to the destination.
	BlendAdd = BlendMode{
		ColorSrcFactor: FactorSrcAlpha, ColorDstFactor: FactorOne, ColorEquation: EquationAdd,
		AlphaSrcFactor: FactorOne, AlphaDstFactor: FactorOne, AlphaEquation: EquationAdd,
	}

	// BlendMultiply multiplies the source and the destination.
	BlendMultiply = NewBlendMode(FactorDstColor, FactorZero, EquationAdd)

	// BlendNone overwrites the destination with the source.
	BlendNone = NewBlendMode(FactorOne, FactorZero, EquationAdd)
)

// Blend combines src over dst and returns the resulting color, clamped to [0, 1].
func (m BlendMode) Blend(src, dst RGBA) RGBA {
	blend := func(s, d float64, sf, df BlendFactor, eq BlendEquation) float64 {
		return combine(s*factor(sf, s, d, src, dst), d*factor(df, s, d, src, dst), eq, s, d)
	}
	out := RGBA{
		R: blend(src.R, dst.R, m.ColorSrcFactor, m.ColorDstFactor, m.ColorEquation),
		G: blend(src.G, dst.G, m.ColorSrcFactor, m.ColorDstFactor, m.ColorEquation),
		B: blend(src.B, dst.B, m.ColorSrcFactor, m.ColorDstFactor, m.ColorEquation),
		A: blend(src.A, dst.A, m.AlphaSrcFactor, m.AlphaDstFactor, m.AlphaEquation),
	}
	return out.Clamp()
}

// factor evaluates f for one channel; s and d are that channel's source and
// destination values.
func factor(f BlendFactor, s, d float64, src, dst RGBA) float64 {
	switch f {
	case FactorOne:
		return 1
	case FactorSrcColor:
		return s
	case FactorOneMinusSrcColor:
		return 1 - s
	case FactorDstColor:
		return d
	case FactorOneMinusDstColor:
		return 1 - d
	case FactorSrcAlpha:
		return src.A
	case FactorOneMinusSrcAlpha:
		return 1 - src.A
	case FactorDstAlpha:
		return dst.A
	case FactorOneMinusDstAlpha:
		return 1 - dst.A
	default:
		return 0
	}
}

// combine applies eq. Min and Max ignore the factors, as on GPUs.
func combine(ws, wd float64, eq BlendEquation, s, d float64) float64 {
	switch eq {
	case EquationSubtract:
		return ws - wd
	case EquationReverseSubtract:
		return wd - ws
	case EquationMin:
		return min(s, d)
	case EquationMax:
		return max(s, d)
	default:
		return ws + wd
	}
}
