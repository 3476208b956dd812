// Package meshview renders a single 3D mesh into a CPU pixel buffer for
// display inside a host editing UI.
//
// # Overview
//
// meshview is an offscreen preview renderer built on gogpu/wgpu. It loads
// one glTF mesh into GPU-resident buffers, projects it with one of two
// camera models (a fixed-eye camera seeded from a scene configuration
// snapshot, or an interactive orbital camera), and renders it into a
// color target that is copied back to the CPU as a tightly packed RGBA8
// byte buffer.
//
// # Quick Start
//
//	r, err := meshview.New(640, 480)
//	if err != nil {
//	    // No compatible GPU: operate without a 3D preview.
//	    return err
//	}
//	defer r.Release()
//
//	if err := r.LoadModel("car.glb"); err != nil {
//	    return err
//	}
//	r.Camera().SetMode(meshview.CameraModeOrbital)
//
//	pix, err := r.Render() // len(pix) == 640*480*4, row-major RGBA8
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Camera, Config, image helpers
//   - mesh: mesh data model and glTF import boundary
//   - internal/gpu: device, pipeline, render targets, readback
//
// # Rendering model
//
// Render is fully synchronous: each call uploads the current camera matrix,
// draws one frame, copies the color target into a staging buffer, blocks
// until the GPU finishes, and returns the pixels with row padding stripped.
// There is no frame pipelining; the design trades throughput for a simple
// external contract, which is appropriate for an editor preview.
//
// # Coordinate System
//
// World space is right-handed with +Y up. Output pixels are row-major with
// origin at the top-left.
package meshview
