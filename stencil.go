package batch

// StencilFunction is a comparison used by the stencil and alpha tests.
// The test compares a reference value against the value stored on the surface.
type StencilFunction uint8

// Stencil and alpha comparison functions.
const (
	// Never fails.
	Never StencilFunction = iota
	// Less passes if the reference is less than the stored value.
	Less
	// LessEqual passes if the reference is less than or equal to the stored value.
	LessEqual
	// Greater passes if the reference is greater than the stored value.
	Greater
	// GreaterEqual passes if the reference is greater than or equal to the stored value.
	GreaterEqual
	// Equal passes if the reference equals the stored value.
	Equal
	// NotEqual passes if the reference differs from the stored value.
	NotEqual
	// Always passes.
	Always
)

// Test reports whether the comparison passes for ref against value.
func (f StencilFunction) Test(ref, value uint8) bool {
	switch f {
	case Less:
		return ref < value
	case LessEqual:
		return ref <= value
	case Greater:
		return ref > value
	case GreaterEqual:
		return ref >= value
	case Equal:
		return ref == value
	case NotEqual:
		return ref != value
	case Always:
		return true
	default:
		return false
	}
}

// StencilOperation updates the stored stencil value.
type StencilOperation uint8

// Stencil operations.
const (
	// Keep leaves the stencil value unchanged.
	Keep StencilOperation = iota
	// Zero sets the stencil value to zero.
	Zero
	// Replace writes the reference value.
	Replace
	// IncrementClamp increments without wrapping past 255.
	IncrementClamp
	// DecrementClamp decrements without wrapping below 0.
	DecrementClamp
	// Invert bitwise-inverts the stencil value.
	Invert
)

// Apply returns the new stencil value after applying op to value.
func (op StencilOperation) Apply(value, ref uint8) uint8 {
	switch op {
	case Zero:
		return 0
	case Replace:
		return ref
	case IncrementClamp:
		if value == 0xFF {
			return value
		}
		return value + 1
	case DecrementClamp:
		if value == 0 {
			return value
		}
		return value - 1
	case Invert:
		return ^value
	default:
		return value
	}
}

// StencilSettings configures the stencil test, the alpha test and whether
// color is written at all.
//
// A fragment is kept when both the alpha test (AlphaFunction against the
// fragment alpha scaled to 0..255) and the stencil test (Function against
// the stored stencil value) pass. Every fragment passing the alpha test
// updates the stencil buffer with Operation, whatever the stencil test
// result. Kept fragments are blended onto the surface when DrawSelf is set.
type StencilSettings struct {
	Function       StencilFunction
	Operation      StencilOperation
	Reference      uint8
	AlphaFunction  StencilFunction
	AlphaReference uint8
	DrawSelf       bool
}

// Commonly used stencil settings.
var (
	// StencilDisable turns the stencil off and draws normally.
	StencilDisable = StencilSettings{
		Function:      Always,
		Operation:     Keep,
		AlphaFunction: GreaterEqual,
		DrawSelf:      true,
	}

	// StencilCreate writes 1 into the stencil buffer where the drawn
	// geometry is opaque, without touching the color buffer.
	StencilCreate = StencilSettings{
		Function:       Always,
		Operation:      Replace,
		Reference:      1,
		AlphaFunction:  GreaterEqual,
		AlphaReference: 255,
	}

	// StencilTrace draws only where the stencil buffer holds 1.
	StencilTrace = StencilSettings{
		Function:       Equal,
		Operation:      Keep,
		Reference:      1,
		AlphaFunction:  Always,
		AlphaReference: 255,
		DrawSelf:       true,
	}
)

// Equal reports whether s and other configure the same tests.
// DrawSelf is not part of the comparison.
func (s StencilSettings) Equal(other StencilSettings) bool {
	return s.Function == other.Function &&
		s.Operation == other.Operation &&
		s.Reference == other.Reference &&
		s.AlphaFunction == other.AlphaFunction &&
		s.AlphaReference == other.AlphaReference
}

// PassesAlpha reports whether a fragment with the given alpha survives the alpha test.
func (s StencilSettings) PassesAlpha(alpha float64) bool {
	return s.AlphaFunction.Test(uint8(clamp255(alpha*255+0.5)), s.AlphaReference)
}

// PassesStencil reports whether the stencil test passes against value.
func (s StencilSettings) PassesStencil(value uint8) bool {
	return s.Function.Test(s.Reference, value)
}
