//go:build !nogpu

package meshview

import (
	"github.com/gogpu/wgpu/hal"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Own device, orbital camera defaults
//	r, err := meshview.New(800, 600)
//
//	// Shared host device
//	r, err := meshview.New(800, 600, meshview.WithDevice(dev, queue))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	device hal.Device
	queue  hal.Queue
	config *Config
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{}
}

// WithDevice supplies an existing GPU device and queue instead of
// acquiring the default adapter. The caller retains ownership; Release
// will not destroy them.
func WithDevice(device hal.Device, queue hal.Queue) Option {
	return func(o *rendererOptions) {
		o.device = device
		o.queue = queue
	}
}

// WithConfig seeds the camera from a host configuration snapshot. The
// snapshot is consumed at creation; later camera changes are not written
// back.
func WithConfig(cfg Config) Option {
	return func(o *rendererOptions) {
		c := cfg
		o.config = &c
	}
}
