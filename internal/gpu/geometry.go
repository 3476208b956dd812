//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// meshBuffers holds the GPU-resident geometry for the current model:
// an interleaved vertex buffer and a uint32 index buffer.
type meshBuffers struct {
	vertexBuf  hal.Buffer
	indexBuf   hal.Buffer
	indexCount uint32
}

// upload replaces the resident geometry with new vertex and index data.
// New buffers are created and written before the old ones are destroyed,
// so a failed upload leaves the previous model intact and drawable.
func (mb *meshBuffers) upload(device hal.Device, queue hal.Queue, vertexData, indexData []byte, indexCount uint32) error {
	vertBuf, err := createBufferWithData(device, queue, "mesh_vertices", vertexData,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	idxBuf, err := createBufferWithData(device, queue, "mesh_indices", indexData,
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		device.DestroyBuffer(vertBuf)
		return err
	}

	mb.destroy(device)
	mb.vertexBuf = vertBuf
	mb.indexBuf = idxBuf
	mb.indexCount = indexCount
	return nil
}

// resident reports whether geometry is uploaded and drawable.
func (mb *meshBuffers) resident() bool {
	return mb.vertexBuf != nil && mb.indexBuf != nil && mb.indexCount > 0
}

// destroy releases the geometry buffers if present.
func (mb *meshBuffers) destroy(device hal.Device) {
	if mb.indexBuf != nil {
		device.DestroyBuffer(mb.indexBuf)
		mb.indexBuf = nil
	}
	if mb.vertexBuf != nil {
		device.DestroyBuffer(mb.vertexBuf)
		mb.vertexBuf = nil
	}
	mb.indexCount = 0
}

func createBufferWithData(device hal.Device, queue hal.Queue, label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	queue.WriteBuffer(buf, 0, data)
	return buf, nil
}
