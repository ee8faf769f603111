// Package gpu translates batch render states into WebGPU pipeline state.
//
// A replayed Batch reaches a GPU surface as one DrawPrimitives call with a
// single primitive category, texture and blend mode. This package maps
// those onto the wgpu/hal descriptors a backend needs:
//
//   - PrimitiveState: batch.PrimitiveType to a gputypes topology
//   - BlendState / ColorTarget: batch.BlendMode to gputypes blending
//   - DepthStencilState: batch.StencilSettings to hal stencil faces
//   - VertexLayout / EncodeVertices: the interleaved vertex buffer format
//
// Pipelines built from these descriptors are memoized per PipelineKey by
// Pipelines, so each state combination is created once per device.
//
// Usage:
//
//	shader, err := gpu.CompileDefaultShader()
//	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
//	    Label:  shader.Label(),
//	    Source: hal.ShaderSource{SPIRV: shader.SPIRV()},
//	})
//	pipes := gpu.NewPipelines(device, layout, module, 64)
//	p, err := pipes.Get(gpu.KeyFor(batch.Triangles, states, gputypes.TextureFormatBGRA8Unorm))
package gpu
