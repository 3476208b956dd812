//go:build !nogpu

package meshview

import (
	"errors"
	"testing"

	"github.com/scene3d/meshview/mesh"
)

// TestRenderQuadOnGPU exercises the full path on real hardware: device
// acquisition, pipeline and target creation, mesh upload, one frame, and
// readback. Skipped when no adapter is available.
func TestRenderQuadOnGPU(t *testing.T) {
	r, err := New(64, 64, WithConfig(Config{
		CameraPosition:   [3]float32{0, 0, 10},
		CameraFOVDegrees: 75,
	}))
	if err != nil {
		if errors.Is(err, ErrAdapterUnavailable) || errors.Is(err, ErrDeviceCreationFailed) {
			t.Skipf("no GPU available: %v", err)
		}
		t.Fatalf("New() error = %v", err)
	}
	defer r.Release()

	r.Camera().SetMode(CameraModeFixed)

	if err := r.LoadMesh([]mesh.Primitive{{
		Positions: [][3]float32{
			{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}}); err != nil {
		t.Fatalf("LoadMesh() error = %v", err)
	}

	pix, err := r.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(pix) != 64*64*4 {
		t.Fatalf("len(pix) = %d, want 16384", len(pix))
	}

	// With the eye at (0,0,10) and a 75 degree lens, the unit quad covers
	// only the center, so every corner pixel is the clear color
	// (0.1, 0.1, 0.15, 1.0), about (26, 26, 38, 255) in 8 bits.
	corners := []int{
		0,               // top-left
		63 * 4,          // top-right
		63 * 64 * 4,     // bottom-left
		(64*64 - 1) * 4, // bottom-right
	}
	for _, off := range corners {
		r8, g8, b8, a8 := pix[off], pix[off+1], pix[off+2], pix[off+3]
		if !near(r8, 26, 2) || !near(g8, 26, 2) || !near(b8, 38, 2) || a8 != 255 {
			t.Errorf("corner pixel at %d = (%d, %d, %d, %d), want approx (26, 26, 38, 255)",
				off, r8, g8, b8, a8)
		}
	}

	// The quad itself is lit brighter than the background.
	center := (32*64 + 32) * 4
	if pix[center] <= 26 {
		t.Errorf("center pixel R = %d, want brighter than background", pix[center])
	}
}

func near(v, want, tol byte) bool {
	d := int(v) - int(want)
	if d < 0 {
		d = -d
	}
	return d <= int(tol)
}
