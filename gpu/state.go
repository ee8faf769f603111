package gpu

import (
	"github.com/gogpu/batch"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// StencilFormat is the depth/stencil attachment format used by pipelines
// built by this package.
const StencilFormat = gputypes.TextureFormatDepth24PlusStencil8

// CompareFunction maps a stencil or alpha test function to its WebGPU
// counterpart. Unknown values map to Always.
func CompareFunction(f batch.StencilFunction) gputypes.CompareFunction {
	switch f {
	case batch.Never:
		return gputypes.CompareFunctionNever
	case batch.Less:
		return gputypes.CompareFunctionLess
	case batch.LessEqual:
		return gputypes.CompareFunctionLessEqual
	case batch.Greater:
		return gputypes.CompareFunctionGreater
	case batch.GreaterEqual:
		return gputypes.CompareFunctionGreaterEqual
	case batch.Equal:
		return gputypes.CompareFunctionEqual
	case batch.NotEqual:
		return gputypes.CompareFunctionNotEqual
	default:
		return gputypes.CompareFunctionAlways
	}
}

// StencilOperation maps a stencil update to its WebGPU counterpart.
// Unknown values map to Keep.
func StencilOperation(op batch.StencilOperation) hal.StencilOperation {
	switch op {
	case batch.Zero:
		return hal.StencilOperationZero
	case batch.Replace:
		return hal.StencilOperationReplace
	case batch.IncrementClamp:
		return hal.StencilOperationIncrementClamp
	case batch.DecrementClamp:
		return hal.StencilOperationDecrementClamp
	case batch.Invert:
		return hal.StencilOperationInvert
	default:
		return hal.StencilOperationKeep
	}
}

// DepthStencilState builds the depth/stencil state for s.
//
// The operation is applied on stencil fail and pass alike, and depth is
// never tested. The stencil reference is dynamic state; set it with
// StencilReference when recording the render pass.
func DepthStencilState(s batch.StencilSettings) hal.DepthStencilState {
	op := StencilOperation(s.Operation)
	face := hal.StencilFaceState{
		Compare:     CompareFunction(s.Function),
		FailOp:      op,
		DepthFailOp: op,
		PassOp:      op,
	}
	return hal.DepthStencilState{
		Format:            StencilFormat,
		DepthWriteEnabled: false,
		DepthCompare:      gputypes.CompareFunctionAlways,
		StencilFront:      face,
		StencilBack:       face,
		StencilReadMask:   0xFF,
		StencilWriteMask:  0xFF,
	}
}

// StencilReference returns the dynamic stencil reference for s.
func StencilReference(s batch.StencilSettings) uint32 {
	return uint32(s.Reference)
}

// BlendFactor maps a blend factor to its WebGPU counterpart.
// Unknown values map to Zero.
func BlendFactor(f batch.BlendFactor) gputypes.BlendFactor {
	switch f {
	case batch.FactorOne:
		return gputypes.BlendFactorOne
	case batch.FactorSrcColor:
		return gputypes.BlendFactorSrc
	case batch.FactorOneMinusSrcColor:
		return gputypes.BlendFactorOneMinusSrc
	case batch.FactorDstColor:
		return gputypes.BlendFactorDst
	case batch.FactorOneMinusDstColor:
		return gputypes.BlendFactorOneMinusDst
	case batch.FactorSrcAlpha:
		return gputypes.BlendFactorSrcAlpha
	case batch.FactorOneMinusSrcAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha
	case batch.FactorDstAlpha:
		return gputypes.BlendFactorDstAlpha
	case batch.FactorOneMinusDstAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha
	default:
		return gputypes.BlendFactorZero
	}
}

// BlendOperation maps a blend equation to its WebGPU counterpart.
// Unknown values map to Add.
func BlendOperation(eq batch.BlendEquation) gputypes.BlendOperation {
	switch eq {
	case batch.EquationSubtract:
		return gputypes.BlendOperationSubtract
	case batch.EquationReverseSubtract:
		return gputypes.BlendOperationReverseSubtract
	case batch.EquationMin:
		return gputypes.BlendOperationMin
	case batch.EquationMax:
		return gputypes.BlendOperationMax
	default:
		return gputypes.BlendOperationAdd
	}
}

// BlendState builds the WebGPU blend state for m.
func BlendState(m batch.BlendMode) gputypes.BlendState {
	return gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: BlendFactor(m.ColorSrcFactor),
			DstFactor: BlendFactor(m.ColorDstFactor),
			Operation: BlendOperation(m.ColorEquation),
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: BlendFactor(m.AlphaSrcFactor),
			DstFactor: BlendFactor(m.AlphaDstFactor),
			Operation: BlendOperation(m.AlphaEquation),
		},
	}
}

// ColorTarget builds the color attachment state. Draws with
// StencilSettings.DrawSelf unset only update the stencil buffer, so their
// color writes are masked off.
func ColorTarget(m batch.BlendMode, s batch.StencilSettings, format gputypes.TextureFormat) gputypes.ColorTargetState {
	blend := BlendState(m)
	mask := gputypes.ColorWriteMaskAll
	if !s.DrawSelf {
		mask = gputypes.ColorWriteMaskNone
	}
	return gputypes.ColorTargetState{
		Format:    format,
		Blend:     &blend,
		WriteMask: mask,
	}
}

// PrimitiveState builds the primitive state for a primitive type. Culling
// is disabled since 2D geometry has no consistent winding.
func PrimitiveState(prim batch.PrimitiveType) gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: prim.Topology(),
		CullMode: gputypes.CullModeNone,
	}
}
