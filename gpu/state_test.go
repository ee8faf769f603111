package gpu

import (
	"testing"

	"github.com/gogpu/batch"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

func TestCompareFunction(t *testing.T) {
	tests := []struct {
		in   batch.StencilFunction
		want gputypes.CompareFunction
	}{
		{batch.Never, gputypes.CompareFunctionNever},
		{batch.Less, gputypes.CompareFunctionLess},
		{batch.LessEqual, gputypes.CompareFunctionLessEqual},
		{batch.Greater, gputypes.CompareFunctionGreater},
		{batch.GreaterEqual, gputypes.CompareFunctionGreaterEqual},
		{batch.Equal, gputypes.CompareFunctionEqual},
		{batch.NotEqual, gputypes.CompareFunctionNotEqual},
		{batch.Always, gputypes.CompareFunctionAlways},
	}
	for _, tt := range tests {
		if got := CompareFunction(tt.in); got != tt.want {
			t.Errorf("CompareFunction(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStencilOperation(t *testing.T) {
	tests := []struct {
		in   batch.StencilOperation
		want hal.StencilOperation
	}{
		{batch.Keep, hal.StencilOperationKeep},
		{batch.Zero, hal.StencilOperationZero},
		{batch.Replace, hal.StencilOperationReplace},
		{batch.IncrementClamp, hal.StencilOperationIncrementClamp},
		{batch.DecrementClamp, hal.StencilOperationDecrementClamp},
		{batch.Invert, hal.StencilOperationInvert},
	}
	for _, tt := range tests {
		if got := StencilOperation(tt.in); got != tt.want {
			t.Errorf("StencilOperation(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDepthStencilState(t *testing.T) {
	ds := DepthStencilState(batch.StencilCreate)

	if ds.Format != gputypes.TextureFormatDepth24PlusStencil8 {
		t.Errorf("Format = %v, want Depth24PlusStencil8", ds.Format)
	}
	if ds.DepthWriteEnabled {
		t.Error("DepthWriteEnabled = true, want false")
	}
	for name, face := range map[string]hal.StencilFaceState{"front": ds.StencilFront, "back": ds.StencilBack} {
		if face.Compare != gputypes.CompareFunctionAlways {
			t.Errorf("%s Compare = %v, want Always", name, face.Compare)
		}
		if face.FailOp != hal.StencilOperationReplace || face.PassOp != hal.StencilOperationReplace ||
			face.DepthFailOp != hal.StencilOperationReplace {
			t.Errorf("%s ops = %v/%v/%v, want Replace everywhere", name, face.FailOp, face.DepthFailOp, face.PassOp)
		}
	}
	if got := StencilReference(batch.StencilCreate); got != 1 {
		t.Errorf("StencilReference() = %d, want 1", got)
	}
}

func TestBlendState(t *testing.T) {
	tests := []struct {
		name  string
		mode  batch.BlendMode
		color gputypes.BlendComponent
		alpha gputypes.BlendComponent
	}{
		{
			name:  "alpha",
			mode:  batch.BlendAlpha,
			color: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorSrcAlpha, DstFactor: gputypes.BlendFactorOneMinusSrcAlpha, Operation: gputypes.BlendOperationAdd},
			alpha: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorOneMinusSrcAlpha, Operation: gputypes.BlendOperationAdd},
		},
		{
			name:  "multiply",
			mode:  batch.BlendMultiply,
			color: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorDst, DstFactor: gputypes.BlendFactorZero, Operation: gputypes.BlendOperationAdd},
			alpha: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorDst, DstFactor: gputypes.BlendFactorZero, Operation: gputypes.BlendOperationAdd},
		},
		{
			name:  "reverse subtract",
			mode:  batch.NewBlendMode(batch.FactorOne, batch.FactorOne, batch.EquationReverseSubtract),
			color: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorOne, Operation: gputypes.BlendOperationReverseSubtract},
			alpha: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorOne, Operation: gputypes.BlendOperationReverseSubtract},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BlendState(tt.mode)
			if got.Color != tt.color {
				t.Errorf("Color = %+v, want %+v", got.Color, tt.color)
			}
			if got.Alpha != tt.alpha {
				t.Errorf("Alpha = %+v, want %+v", got.Alpha, tt.alpha)
			}
		})
	}
}

func TestColorTargetWriteMask(t *testing.T) {
	format := gputypes.TextureFormatBGRA8Unorm

	draw := ColorTarget(batch.BlendAlpha, batch.StencilDisable, format)
	if draw.WriteMask != gputypes.ColorWriteMaskAll {
		t.Errorf("WriteMask = %v, want All when drawing", draw.WriteMask)
	}
	if draw.Format != format || draw.Blend == nil {
		t.Errorf("ColorTarget() = %+v, want format %v with blend", draw, format)
	}

	mask := ColorTarget(batch.BlendAlpha, batch.StencilCreate, format)
	if mask.WriteMask != gputypes.ColorWriteMaskNone {
		t.Errorf("WriteMask = %v, want None for stencil-only draws", mask.WriteMask)
	}
}

func TestPrimitiveState(t *testing.T) {
	tests := []struct {
		prim batch.PrimitiveType
		want gputypes.PrimitiveTopology
	}{
		{batch.Points, gputypes.PrimitiveTopologyPointList},
		{batch.Lines, gputypes.PrimitiveTopologyLineList},
		{batch.LineStrip, gputypes.PrimitiveTopologyLineStrip},
		{batch.Triangles, gputypes.PrimitiveTopologyTriangleList},
		{batch.TriangleStrip, gputypes.PrimitiveTopologyTriangleStrip},
	}
	for _, tt := range tests {
		got := PrimitiveState(tt.prim)
		if got.Topology != tt.want {
			t.Errorf("PrimitiveState(%v).Topology = %v, want %v", tt.prim, got.Topology, tt.want)
		}
		if got.CullMode != gputypes.CullModeNone {
			t.Errorf("PrimitiveState(%v).CullMode = %v, want None", tt.prim, got.CullMode)
		}
	}
}
