//go:build !nogpu

// Package gpu holds the HAL-level half of the preview renderer: device
// acquisition, the mesh render pipeline, the color/depth target pair, the
// GPU-resident geometry buffers, and the synchronous render-and-readback
// cycle. The public meshview package owns camera math and mesh import and
// drives this package with plain byte slices and matrices.
package gpu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Device acquisition errors.
var (
	// ErrAdapterUnavailable is returned when no GPU backend is registered
	// or no adapter is exposed.
	ErrAdapterUnavailable = errors.New("gpu: no adapter available")

	// ErrDeviceCreationFailed is returned when an adapter was found but
	// opening a logical device failed.
	ErrDeviceCreationFailed = errors.New("gpu: device creation failed")
)

// deviceContext bundles the HAL objects the renderer draws with, plus
// ownership: when the device is shared with a host application the
// renderer must not destroy it on Release.
type deviceContext struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	owned    bool
}

// openDevice acquires a Vulkan instance, selects an adapter (preferring
// discrete, then integrated GPUs), and opens a logical device.
func openDevice(logger *slog.Logger) (*deviceContext, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("%w: vulkan backend not registered", ErrAdapterUnavailable)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("%w: create instance: %v", ErrAdapterUnavailable, err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%w: no adapters exposed", ErrAdapterUnavailable)
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("%w: %v", ErrDeviceCreationFailed, err)
	}
	logger.Info("gpu: adapter selected", "name", selected.Info.Name)
	return &deviceContext{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		owned:    true,
	}, nil
}

// sharedDevice wraps a host-provided device and queue. The renderer uses
// them but never destroys them.
func sharedDevice(device hal.Device, queue hal.Queue) *deviceContext {
	return &deviceContext{device: device, queue: queue, owned: false}
}

// release destroys the device and instance if this context owns them.
func (dc *deviceContext) release() {
	if !dc.owned {
		dc.device = nil
		dc.queue = nil
		return
	}
	if dc.device != nil {
		dc.device.Destroy()
		dc.device = nil
	}
	if dc.instance != nil {
		dc.instance.Destroy()
		dc.instance = nil
	}
	dc.queue = nil
}
