package gpu

import (
	"fmt"

	"github.com/gogpu/batch"
	"github.com/gogpu/batch/cache"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// PipelineKey identifies the pipeline state a draw needs. Draws with equal
// keys share a pipeline.
type PipelineKey struct {
	Category batch.PrimitiveType
	Blend    batch.BlendMode
	Stencil  batch.StencilSettings
	Format   gputypes.TextureFormat
}

// KeyFor returns the pipeline key for drawing prim with states into a
// color attachment of the given format.
//
// Pipelines only draw the three basic categories; composite topologies
// must be decomposed with batch.AppendDecomposed first, as a replayed Batch
// already is. The stencil reference is dynamic state and is left out of the
// key.
func KeyFor(prim batch.PrimitiveType, states batch.RenderStates, format gputypes.TextureFormat) PipelineKey {
	st := states.Stencil
	st.Reference = 0
	return PipelineKey{
		Category: prim.Category(),
		Blend:    states.BlendMode,
		Stencil:  st,
		Format:   format,
	}
}

// String returns a label suitable for GPU debugging tools.
func (k PipelineKey) String() string {
	return fmt.Sprintf("batch_%s_stencil%d_op%d_draw%t", k.Category, k.Stencil.Function, k.Stencil.Operation, k.Stencil.DrawSelf)
}

// PipelineDescriptor builds the render pipeline descriptor for key using the
// vs_main and fs_main entry points of module.
func PipelineDescriptor(key PipelineKey, module hal.ShaderModule, layout hal.PipelineLayout) *hal.RenderPipelineDescriptor {
	depthStencil := DepthStencilState(key.Stencil)
	return &hal.RenderPipelineDescriptor{
		Label:  key.String(),
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    []gputypes.VertexBufferLayout{VertexLayout()},
		},
		Fragment: &hal.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets:    []gputypes.ColorTargetState{ColorTarget(key.Blend, key.Stencil, key.Format)},
		},
		Primitive:    PrimitiveState(key.Category),
		DepthStencil: &depthStencil,
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	}
}

// PipelineDevice is the subset of hal.Device used to manage pipelines.
type PipelineDevice interface {
	CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error)
	DestroyRenderPipeline(pipeline hal.RenderPipeline)
}

// Pipelines creates render pipelines on demand and keeps the most recently
// used ones. Evicted pipelines are destroyed.
//
// Pipelines is safe for concurrent use.
type Pipelines struct {
	device PipelineDevice
	layout hal.PipelineLayout
	module hal.ShaderModule
	cache  *cache.Cache[PipelineKey, hal.RenderPipeline]
}

// NewPipelines creates a pipeline cache holding at most capacity pipelines.
func NewPipelines(device PipelineDevice, layout hal.PipelineLayout, module hal.ShaderModule, capacity int) *Pipelines {
	return &Pipelines{
		device: device,
		layout: layout,
		module: module,
		cache: cache.New(capacity, cache.WithEvict(func(key PipelineKey, p hal.RenderPipeline) {
			batch.Logger().Debug("gpu: pipeline released", "key", key.String())
			device.DestroyRenderPipeline(p)
		})),
	}
}

// Get returns the pipeline for key, creating it if needed.
func (p *Pipelines) Get(key PipelineKey) (hal.RenderPipeline, error) {
	return p.cache.GetOrCreate(key, func() (hal.RenderPipeline, error) {
		pipeline, err := p.device.CreateRenderPipeline(PipelineDescriptor(key, p.module, p.layout))
		if err != nil {
			return nil, fmt.Errorf("gpu: create pipeline %s: %w", key, err)
		}
		batch.Logger().Debug("gpu: pipeline created", "key", key.String())
		return pipeline, nil
	})
}

// Len returns the number of cached pipelines.
func (p *Pipelines) Len() int { return p.cache.Len() }

// Stats returns the pipeline cache statistics.
func (p *Pipelines) Stats() cache.Stats { return p.cache.Stats() }

// Release destroys every cached pipeline.
func (p *Pipelines) Release() { p.cache.Clear() }
