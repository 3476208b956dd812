//go:build !nogpu

package meshview

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle provides GPU device access from a host application.
//
// A host UI that already owns a GPU device implements DeviceHandle and
// passes it to WithDeviceProvider, so the preview renderer shares the
// device instead of creating its own.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, keeping the
// preview renderer compatible with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// WithDeviceProvider supplies a shared GPU device through a host
// provider. The provider must additionally expose HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue. Providers that do
// not are ignored and New acquires its own device.
func WithDeviceProvider(provider any) Option {
	return func(o *rendererOptions) {
		device, queue, err := halFromProvider(provider)
		if err != nil {
			Logger().Warn("device provider rejected, using own device", "err", err)
			return
		}
		o.device = device
		o.queue = queue
	}
}

// halFromProvider extracts the HAL device and queue from a host
// provider.
func halFromProvider(provider any) (hal.Device, hal.Queue, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, fmt.Errorf("meshview: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("meshview: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("meshview: provider HalQueue is not hal.Queue")
	}
	return device, queue, nil
}
