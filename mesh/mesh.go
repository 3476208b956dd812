// Package mesh defines the CPU-side mesh data model for meshview and the
// glTF import boundary that produces it.
//
// A mesh enters the renderer as a list of triangle primitives. Build
// flattens the primitives into one combined vertex/index pair suitable for
// upload to GPU buffers; after that point sub-meshes are no longer
// separately trackable.
package mesh

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Import errors.
var (
	// ErrMissingAttribute is returned when a primitive has no position
	// data. Positions are the only mandatory vertex attribute.
	ErrMissingAttribute = errors.New("mesh: primitive is missing positions")

	// ErrEmptyMesh is returned when the combined mesh has no vertices or
	// no indices.
	ErrEmptyMesh = errors.New("mesh: no mesh data")

	// ErrParseFailure is returned when the model file cannot be read or
	// parsed.
	ErrParseFailure = errors.New("mesh: failed to parse model file")
)

// Vertex is one interleaved vertex record: position, normal, and texture
// coordinate, tightly packed with no padding between attributes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// VertexStride is the byte size of one packed Vertex: 8 x float32.
const VertexStride = 32

// Default attribute values for primitives that omit normals or UVs.
var (
	defaultNormal = [3]float32{0, 1, 0}
	defaultUV     = [2]float32{0, 0}
)

// Primitive is one parsed triangle primitive. Positions are mandatory;
// Normals and UVs are optional and default per vertex when absent or
// shorter than Positions. Indices may be empty for non-indexed primitives.
type Primitive struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
}

// Build flattens primitives into one combined vertex list and one index
// list. Vertices are concatenated in primitive order; each primitive's
// indices are offset by the running vertex count so the result draws as a
// single mesh.
//
// A primitive with no positions fails with ErrMissingAttribute. Absent
// normals default to (0, 1, 0) and absent UVs to (0, 0). A result with no
// vertices or no indices fails with ErrEmptyMesh.
func Build(prims []Primitive) ([]Vertex, []uint32, error) {
	var verts []Vertex
	var indices []uint32

	for i := range prims {
		p := &prims[i]
		if len(p.Positions) == 0 {
			return nil, nil, fmt.Errorf("%w: primitive %d", ErrMissingAttribute, i)
		}

		base := uint32(len(verts))
		for vi, pos := range p.Positions {
			v := Vertex{Position: pos, Normal: defaultNormal, UV: defaultUV}
			if vi < len(p.Normals) {
				v.Normal = p.Normals[vi]
			}
			if vi < len(p.UVs) {
				v.UV = p.UVs[vi]
			}
			verts = append(verts, v)
		}
		for _, idx := range p.Indices {
			indices = append(indices, base+idx)
		}
	}

	if len(verts) == 0 || len(indices) == 0 {
		return nil, nil, ErrEmptyMesh
	}
	return verts, indices, nil
}

// Pack serializes vertices into little-endian bytes with the interleaved
// position/normal/UV layout the render pipeline consumes.
func Pack(verts []Vertex) []byte {
	out := make([]byte, 0, len(verts)*VertexStride)
	for i := range verts {
		v := &verts[i]
		out = appendFloats(out, v.Position[:])
		out = appendFloats(out, v.Normal[:])
		out = appendFloats(out, v.UV[:])
	}
	return out
}

// PackIndices serializes indices as little-endian uint32 bytes.
func PackIndices(indices []uint32) []byte {
	out := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(out[i*4:], idx)
	}
	return out
}

func appendFloats(dst []byte, fs []float32) []byte {
	for _, f := range fs {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}
