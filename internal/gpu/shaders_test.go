//go:build !nogpu

package gpu

import (
	"testing"

	"github.com/gogpu/naga"
)

func TestMeshShaderCompiles(t *testing.T) {
	spirv, err := naga.Compile(meshShaderSource)
	if err != nil {
		t.Fatalf("mesh shader failed to compile: %v", err)
	}
	if len(spirv) == 0 {
		t.Error("compiled shader is empty")
	}
}
