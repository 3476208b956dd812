//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Renderer owns the device-side state for offscreen mesh preview: the
// render pipeline, the color/depth target pair, and the resident
// geometry. All methods must be called from a single goroutine.
type Renderer struct {
	dc       *deviceContext
	pipeline meshPipeline
	targets  targetSet
	mesh     meshBuffers
	width    uint32
	height   uint32
	logger   *slog.Logger
	released bool
}

// NewRenderer acquires the default adapter, creates the pipeline, and
// allocates render targets at the given size.
func NewRenderer(width, height uint32, logger *slog.Logger) (*Renderer, error) {
	dc, err := openDevice(logger)
	if err != nil {
		return nil, err
	}
	return newRenderer(dc, width, height, logger)
}

// NewRendererWithDevice builds a renderer on a caller-supplied device and
// queue. The caller retains ownership; Release will not destroy them.
func NewRendererWithDevice(device hal.Device, queue hal.Queue, width, height uint32, logger *slog.Logger) (*Renderer, error) {
	return newRenderer(sharedDevice(device, queue), width, height, logger)
}

func newRenderer(dc *deviceContext, width, height uint32, logger *slog.Logger) (*Renderer, error) {
	r := &Renderer{dc: dc, width: width, height: height, logger: logger}
	if err := r.pipeline.create(dc.device); err != nil {
		dc.release()
		return nil, err
	}
	if err := r.targets.ensure(dc.device, width, height); err != nil {
		r.pipeline.destroy(dc.device)
		dc.release()
		return nil, err
	}
	return r, nil
}

// SetViewProjection uploads a column-major view-projection matrix to the
// camera uniform buffer.
func (r *Renderer) SetViewProjection(m [16]float32) {
	data := make([]byte, cameraUniformSize)
	for i, v := range m {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}
	r.dc.queue.WriteBuffer(r.pipeline.uniformBuf, 0, data)
}

// UploadMesh replaces the resident geometry. On failure the previous
// geometry is kept and stays drawable.
func (r *Renderer) UploadMesh(vertexData, indexData []byte, indexCount uint32) error {
	if r.released {
		return fmt.Errorf("upload mesh: renderer released")
	}
	if err := r.mesh.upload(r.dc.device, r.dc.queue, vertexData, indexData, indexCount); err != nil {
		return err
	}
	r.logger.Debug("mesh uploaded", "indices", indexCount, "vertexBytes", len(vertexData))
	return nil
}

// HasMesh reports whether geometry is resident.
func (r *Renderer) HasMesh() bool {
	return r.mesh.resident()
}

// Resize reallocates the render targets. Resizing to the current size is
// a no-op.
func (r *Renderer) Resize(width, height uint32) error {
	if r.released {
		return fmt.Errorf("resize: renderer released")
	}
	if err := r.targets.ensure(r.dc.device, width, height); err != nil {
		return err
	}
	r.width = width
	r.height = height
	return nil
}

// Size returns the current render target dimensions.
func (r *Renderer) Size() (uint32, uint32) {
	return r.width, r.height
}

// RenderFrame draws one frame and reads it back. The returned slice is
// tightly packed RGBA, width*height*4 bytes, rows top to bottom. The
// pass runs and the cleared background is returned even when no mesh is
// resident.
func (r *Renderer) RenderFrame() ([]byte, error) {
	if r.released {
		return nil, fmt.Errorf("render: renderer released")
	}
	w, h := r.width, r.height

	encoder, err := r.dc.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "preview_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("preview_frame"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "preview_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       r.targets.colorView,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0.1, G: 0.1, B: 0.15, A: 1.0},
		}},
		DepthStencilAttachment: &hal.RenderPassDepthStencilAttachment{
			View:              r.targets.depthView,
			DepthLoadOp:       gputypes.LoadOpClear,
			DepthStoreOp:      gputypes.StoreOpDiscard,
			DepthClearValue:   1.0,
			StencilLoadOp:     gputypes.LoadOpClear,
			StencilStoreOp:    gputypes.StoreOpDiscard,
			StencilClearValue: 0,
		},
	})

	if r.mesh.resident() {
		rp.SetPipeline(r.pipeline.pipeline)
		rp.SetBindGroup(0, r.pipeline.bindGroup, nil)
		rp.SetVertexBuffer(0, r.mesh.vertexBuf, 0)
		rp.SetIndexBuffer(r.mesh.indexBuf, gputypes.IndexFormatUint32, 0)
		rp.DrawIndexed(r.mesh.indexCount, 1, 0, 0, 0)
	}

	rp.End()

	// The color texture leaves the pass in attachment layout;
	// CopyTextureToBuffer needs transfer-source. No-op on backends
	// without explicit layouts.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.targets.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	alignedBytesPerRow := alignBytesPerRow(w)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	stagingBuf, err := r.dc.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "preview_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer r.dc.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(r.targets.colorTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: r.targets.colorTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	// Back to attachment layout for the next frame.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.targets.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer r.dc.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.dc.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("create fence: %w", err)
	}
	defer r.dc.device.DestroyFence(fence)

	if err := r.dc.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := r.dc.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return nil, fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, stagingSize)
	if err := r.dc.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return nil, fmt.Errorf("read staging buffer: %w", err)
	}

	return stripRowPadding(readback, alignedBytesPerRow, w, h), nil
}

// Release destroys all GPU resources. Release is idempotent; the
// renderer is unusable afterwards.
func (r *Renderer) Release() {
	if r.released {
		return
	}
	r.released = true
	r.mesh.destroy(r.dc.device)
	r.targets.destroy(r.dc.device)
	r.pipeline.destroy(r.dc.device)
	r.dc.release()
}
