package meshview

import "errors"

// Renderer construction and render errors.
var (
	// ErrAdapterUnavailable is returned by New when no compatible GPU
	// backend or adapter can be acquired. Construction fails; the caller
	// should treat "no 3D preview available" as a first-class state
	// rather than retrying.
	ErrAdapterUnavailable = errors.New("meshview: no compatible GPU adapter available")

	// ErrDeviceCreationFailed is returned by New when an adapter was found
	// but the logical device could not be created. Fatal for construction.
	ErrDeviceCreationFailed = errors.New("meshview: GPU device creation failed")

	// ErrReadbackFailed is returned by Render when the rendered frame could
	// not be copied back to the CPU. Renderer state is unchanged; the
	// caller may retry on the next cycle.
	ErrReadbackFailed = errors.New("meshview: framebuffer readback failed")

	// ErrReleased is returned by operations on a released Renderer.
	ErrReleased = errors.New("meshview: renderer has been released")
)
