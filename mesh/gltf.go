package mesh

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF reads a glTF or GLB file and extracts its triangle primitives.
// Parsing is delegated to qmuntal/gltf; only position, normal, and first
// texture-coordinate attribute arrays plus triangle indices are consumed.
//
// Parse errors wrap ErrParseFailure. A primitive without a POSITION
// accessor fails with ErrMissingAttribute; absent normals and UVs are
// left empty and defaulted later by Build.
func LoadGLTF(path string) ([]Primitive, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	return primitives(doc)
}

// primitives extracts triangle primitives from a parsed document.
func primitives(doc *gltf.Document) ([]Primitive, error) {
	var prims []Primitive
	for _, m := range doc.Meshes {
		for _, p := range m.Primitives {
			posIdx, ok := p.Attributes[gltf.POSITION]
			if !ok {
				return nil, fmt.Errorf("%w: mesh %q", ErrMissingAttribute, m.Name)
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("%w: positions: %v", ErrParseFailure, err)
			}

			var prim Primitive
			prim.Positions = positions

			if normIdx, ok := p.Attributes[gltf.NORMAL]; ok {
				normals, err := modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
				if err != nil {
					return nil, fmt.Errorf("%w: normals: %v", ErrParseFailure, err)
				}
				prim.Normals = normals
			}
			if uvIdx, ok := p.Attributes[gltf.TEXCOORD_0]; ok {
				uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
				if err != nil {
					return nil, fmt.Errorf("%w: texture coords: %v", ErrParseFailure, err)
				}
				prim.UVs = uvs
			}
			if p.Indices != nil {
				indices, err := modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("%w: indices: %v", ErrParseFailure, err)
				}
				prim.Indices = indices
			}
			prims = append(prims, prim)
		}
	}
	return prims, nil
}
