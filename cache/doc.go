// Package cache provides a generic, thread-safe LRU cache.
//
// It is used by package gpu to memoize render pipeline state per
// combination of primitive, blend mode and stencil settings, so a replayed
// batch only pays for pipeline creation the first time a combination is seen.
//
// Usage:
//
//	c := cache.New[gpu.PipelineKey, hal.RenderPipeline](64)
//	p, err := c.GetOrCreate(key, func() (hal.RenderPipeline, error) {
//	    return device.CreateRenderPipeline(desc)
//	})
package cache
