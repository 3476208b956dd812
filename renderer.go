//go:build !nogpu

package meshview

import (
	"errors"
	"fmt"
	"image"

	"github.com/scene3d/meshview/internal/gpu"
	"github.com/scene3d/meshview/mesh"
)

// Renderer is an offscreen 3D preview renderer. It owns a GPU pipeline,
// color/depth render targets, and at most one resident model, and renders
// single frames synchronously to CPU-side RGBA buffers.
//
// Renderer is NOT safe for concurrent use. All methods, including
// Release, must be called from a single goroutine, matching the
// synchronous one-frame-at-a-time model.
type Renderer struct {
	inner    *gpu.Renderer
	camera   *Camera
	width    int
	height   int
	released bool
}

// New creates a renderer with width x height render targets. Without
// WithDevice or WithDeviceProvider it acquires the default adapter and
// owns the resulting device for its lifetime.
func New(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("meshview: invalid size %dx%d", width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := Logger()

	var (
		inner *gpu.Renderer
		err   error
	)
	if o.device != nil && o.queue != nil {
		inner, err = gpu.NewRendererWithDevice(o.device, o.queue, uint32(width), uint32(height), logger)
	} else {
		inner, err = gpu.NewRenderer(uint32(width), uint32(height), logger)
	}
	if err != nil {
		return nil, wrapInitError(err)
	}

	cam := NewCamera()
	if o.config != nil {
		cam.ApplyConfig(*o.config)
	}

	r := &Renderer{
		inner:  inner,
		camera: cam,
		width:  width,
		height: height,
	}
	logger.Info("renderer created", "width", width, "height", height,
		"sharedDevice", o.device != nil)
	return r, nil
}

func wrapInitError(err error) error {
	switch {
	case errors.Is(err, gpu.ErrAdapterUnavailable):
		return fmt.Errorf("%w: %v", ErrAdapterUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrDeviceCreationFailed, err)
	}
}

// Camera returns the renderer's camera. Mutations take effect on the
// next Render call.
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// LoadModel loads a glTF file from path and uploads its combined
// geometry, replacing any resident model. On error the previous model
// is kept.
func (r *Renderer) LoadModel(path string) error {
	if r.released {
		return ErrReleased
	}
	prims, err := mesh.LoadGLTF(path)
	if err != nil {
		return err
	}
	return r.LoadMesh(prims)
}

// LoadMesh combines the given primitives into a single vertex/index set
// and uploads it, replacing any resident model. On error the previous
// model is kept.
func (r *Renderer) LoadMesh(prims []mesh.Primitive) error {
	if r.released {
		return ErrReleased
	}
	verts, indices, err := mesh.Build(prims)
	if err != nil {
		return err
	}
	return r.inner.UploadMesh(mesh.Pack(verts), mesh.PackIndices(indices), uint32(len(indices)))
}

// HasModel reports whether a model is currently resident.
func (r *Renderer) HasModel() bool {
	if r.released {
		return false
	}
	return r.inner.HasMesh()
}

// Resize reallocates the render targets. Resizing to the current size
// is a no-op.
func (r *Renderer) Resize(width, height int) error {
	if r.released {
		return ErrReleased
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("meshview: invalid size %dx%d", width, height)
	}
	if err := r.inner.Resize(uint32(width), uint32(height)); err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceCreationFailed, err)
	}
	r.width = width
	r.height = height
	return nil
}

// Render draws one frame with the camera's current view-projection and
// returns tightly packed RGBA pixels, width*height*4 bytes, rows top to
// bottom. A frame with no resident model is the cleared background.
func (r *Renderer) Render() ([]byte, error) {
	if r.released {
		return nil, ErrReleased
	}
	aspect := float32(r.width) / float32(r.height)
	vp := r.camera.ViewProjection(aspect)
	r.inner.SetViewProjection([16]float32(vp))

	pix, err := r.inner.RenderFrame()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadbackFailed, err)
	}
	return pix, nil
}

// RenderImage renders one frame and wraps it as an image.
func (r *Renderer) RenderImage() (*image.NRGBA, error) {
	pix, err := r.Render()
	if err != nil {
		return nil, err
	}
	return ImageFromRGBA(pix, r.width, r.height)
}

// Size returns the current render target dimensions.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Release destroys all GPU resources. Shared devices supplied via
// WithDevice or WithDeviceProvider are left alive. Release is
// idempotent; every other method fails with ErrReleased afterwards.
func (r *Renderer) Release() {
	if r.released {
		return
	}
	r.released = true
	r.inner.Release()
	Logger().Debug("renderer released")
}
