package mesh

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func TestLoadGLTFMissingFile(t *testing.T) {
	_, err := LoadGLTF(filepath.Join(t.TempDir(), "missing.gltf"))
	if !errors.Is(err, ErrParseFailure) {
		t.Errorf("LoadGLTF() error = %v, want %v", err, ErrParseFailure)
	}
}

func TestLoadGLTFRoundTrip(t *testing.T) {
	doc := gltf.NewDocument()
	positions := modeler.WritePosition(doc, [][3]float32{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
	})
	indices := modeler.WriteIndices(doc, []uint32{0, 1, 2})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Primitives: []*gltf.Primitive{{
			Attributes: gltf.PrimitiveAttributes{gltf.POSITION: positions},
			Indices:    gltf.Index(indices),
		}},
	})

	path := filepath.Join(t.TempDir(), "tri.gltf")
	if err := gltf.Save(doc, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	prims, err := LoadGLTF(path)
	if err != nil {
		t.Fatalf("LoadGLTF() error = %v", err)
	}
	if len(prims) != 1 {
		t.Fatalf("len(prims) = %d, want 1", len(prims))
	}
	p := prims[0]
	if len(p.Positions) != 3 {
		t.Errorf("len(Positions) = %d, want 3", len(p.Positions))
	}
	if p.Positions[1] != [3]float32{1, 0, 0} {
		t.Errorf("Positions[1] = %v, want (1,0,0)", p.Positions[1])
	}
	if len(p.Indices) != 3 {
		t.Errorf("len(Indices) = %d, want 3", len(p.Indices))
	}

	// The document carries no normals or UVs; Build fills the defaults.
	verts, idx, err := Build(prims)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(verts) != 3 || len(idx) != 3 {
		t.Errorf("Build() = %d verts, %d indices, want 3 and 3", len(verts), len(idx))
	}
}
