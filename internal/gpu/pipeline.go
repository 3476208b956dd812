//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/mesh.wgsl
var meshShaderSource string

// cameraUniformSize is the byte size of the camera uniform buffer:
// one mat4x4<f32> view-projection matrix.
const cameraUniformSize = 64

// Render target formats. The color target is linear RGBA8 so readback
// bytes are the shader output scaled to 8 bits with no transfer encoding;
// the depth format carries an unused stencil aspect because it is the
// baseline format every backend supports.
const (
	colorFormat = gputypes.TextureFormatRGBA8Unorm
	depthFormat = gputypes.TextureFormatDepth24PlusStencil8
)

// meshPipeline owns the fixed vertex/fragment render pipeline and the
// camera uniform binding. It is created once per renderer and survives
// resizes and mesh reloads.
type meshPipeline struct {
	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline

	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
}

// meshVertexLayout is the interleaved vertex layout: float32x3 position at
// location 0, float32x3 normal at location 1, float32x2 uv at location 2,
// 32-byte stride with no padding between attributes.
func meshVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: 32,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
				{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
			},
		},
	}
}

// create compiles the mesh shader and builds the render pipeline, the
// camera uniform buffer, and its bind group.
func (mp *meshPipeline) create(device hal.Device) error {
	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "mesh_shader",
		Source: hal.ShaderSource{WGSL: meshShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile mesh shader: %w", err)
	}
	mp.shader = shader

	uniformLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "camera_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create camera uniform layout: %w", err)
	}
	mp.uniformLayout = uniformLayout

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "mesh_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{mp.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create mesh pipeline layout: %w", err)
	}
	mp.pipeLayout = pipeLayout

	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "mesh_pipeline",
		Layout: mp.pipeLayout,
		Vertex: hal.VertexState{
			Module:     mp.shader,
			EntryPoint: "vs_main",
			Buffers:    meshVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     mp.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    colorFormat,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		DepthStencil: &hal.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLess,
			StencilFront: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilBack: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilReadMask:  0xFF,
			StencilWriteMask: 0xFF,
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeBack,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create mesh pipeline: %w", err)
	}
	mp.pipeline = pipeline

	uniformBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "camera_uniform",
		Size:  cameraUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create camera uniform buffer: %w", err)
	}
	mp.uniformBuf = uniformBuf

	bindGroup, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "camera_bind",
		Layout: mp.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: mp.uniformBuf.NativeHandle(), Offset: 0, Size: cameraUniformSize,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create camera bind group: %w", err)
	}
	mp.bindGroup = bindGroup

	return nil
}

// destroy releases all pipeline resources in reverse creation order. Safe
// to call on a partially created pipeline.
func (mp *meshPipeline) destroy(device hal.Device) {
	if device == nil {
		return
	}
	if mp.bindGroup != nil {
		device.DestroyBindGroup(mp.bindGroup)
		mp.bindGroup = nil
	}
	if mp.uniformBuf != nil {
		device.DestroyBuffer(mp.uniformBuf)
		mp.uniformBuf = nil
	}
	if mp.pipeline != nil {
		device.DestroyRenderPipeline(mp.pipeline)
		mp.pipeline = nil
	}
	if mp.pipeLayout != nil {
		device.DestroyPipelineLayout(mp.pipeLayout)
		mp.pipeLayout = nil
	}
	if mp.uniformLayout != nil {
		device.DestroyBindGroupLayout(mp.uniformLayout)
		mp.uniformLayout = nil
	}
	if mp.shader != nil {
		device.DestroyShaderModule(mp.shader)
		mp.shader = nil
	}
}
