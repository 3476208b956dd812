//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// targetSet holds the offscreen render target pair: a single-sample
// color texture (render attachment, copy source, and sampleable so a host
// can bind it directly) and a depth texture. The two are always sized
// together; a size mismatch between them is invalid, so ensure recreates
// both or neither.
type targetSet struct {
	colorTex  hal.Texture
	colorView hal.TextureView
	depthTex  hal.Texture
	depthView hal.TextureView
	width     uint32
	height    uint32
}

// ensure creates or recreates the target pair at w x h. If the size is
// unchanged and the targets exist, this is a no-op and the existing
// handles remain valid, so callers can resize every frame without GPU
// resource churn.
func (ts *targetSet) ensure(device hal.Device, w, h uint32) error {
	if ts.width == w && ts.height == h && ts.colorTex != nil {
		return nil
	}
	ts.destroy(device)

	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}

	colorTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "preview_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        colorFormat,
		Usage: gputypes.TextureUsageRenderAttachment |
			gputypes.TextureUsageCopySrc |
			gputypes.TextureUsageTextureBinding,
	})
	if err != nil {
		return fmt.Errorf("create color texture: %w", err)
	}
	ts.colorTex = colorTex

	colorView, err := device.CreateTextureView(colorTex, &hal.TextureViewDescriptor{
		Label: "preview_color_view",
	})
	if err != nil {
		ts.destroy(device)
		return fmt.Errorf("create color view: %w", err)
	}
	ts.colorView = colorView

	depthTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "preview_depth",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        depthFormat,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		ts.destroy(device)
		return fmt.Errorf("create depth texture: %w", err)
	}
	ts.depthTex = depthTex

	depthView, err := device.CreateTextureView(depthTex, &hal.TextureViewDescriptor{
		Label: "preview_depth_view",
	})
	if err != nil {
		ts.destroy(device)
		return fmt.Errorf("create depth view: %w", err)
	}
	ts.depthView = depthView

	ts.width = w
	ts.height = h
	return nil
}

// destroy releases both targets and resets dimensions.
func (ts *targetSet) destroy(device hal.Device) {
	if ts.depthView != nil {
		device.DestroyTextureView(ts.depthView)
		ts.depthView = nil
	}
	if ts.depthTex != nil {
		device.DestroyTexture(ts.depthTex)
		ts.depthTex = nil
	}
	if ts.colorView != nil {
		device.DestroyTextureView(ts.colorView)
		ts.colorView = nil
	}
	if ts.colorTex != nil {
		device.DestroyTexture(ts.colorTex)
		ts.colorTex = nil
	}
	ts.width = 0
	ts.height = 0
}
