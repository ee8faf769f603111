package gpu

import (
	"image"

	"github.com/gogpu/wgpu/hal"
)

func newTestImage(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

// fakeDevice records pipeline creation without a GPU.
type fakeDevice struct {
	created   []*hal.RenderPipelineDescriptor
	destroyed int
	fail      error
}

//nolint:nilnil // Pipelines are opaque to the tests.
func (d *fakeDevice) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	if d.fail != nil {
		return nil, d.fail
	}
	d.created = append(d.created, desc)
	return nil, nil
}

func (d *fakeDevice) DestroyRenderPipeline(hal.RenderPipeline) {
	d.destroyed++
}
