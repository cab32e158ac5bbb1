package meshssim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads every triangle primitive of a .gltf or .glb file into one
// indexed mesh. COLOR_0 is kept when every primitive carries it.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}

	m := &Mesh{}
	colored := true

	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			// We only support Triangles (mode 4)
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, err
			}

			var colors [][4]uint8
			if colIdx, ok := primitive.Attributes[gltf.COLOR_0]; ok && colored {
				colors, err = modeler.ReadColor(doc, doc.Accessors[colIdx], nil)
				if err != nil {
					return nil, err
				}
			}
			if len(colors) != len(positions) {
				colored = false
			}

			var indices []uint32
			if primitive.Indices != nil {
				// ReadIndices automatically converts uint8/uint16/uint32 to []uint32
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
				if err != nil {
					return nil, err
				}
			} else {
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}
			if len(indices)%3 != 0 {
				return nil, fmt.Errorf("gltf mesh %q: %d indices is not a multiple of 3", mesh.Name, len(indices))
			}

			base := len(m.Vertices)
			for _, p := range positions {
				m.Vertices = append(m.Vertices, mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])})
			}
			if colored {
				for _, c := range colors {
					m.Colors = append(m.Colors, Color{float64(c[0]) / 255, float64(c[1]) / 255, float64(c[2]) / 255, 1})
				}
			}
			for i := 0; i < len(indices); i += 3 {
				m.Faces = append(m.Faces, [3]int{
					base + int(indices[i]),
					base + int(indices[i+1]),
					base + int(indices[i+2]),
				})
			}
		}
	}

	if len(m.Faces) == 0 {
		return nil, fmt.Errorf("no triangles found in gltf")
	}
	if !colored {
		m.Colors = nil
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
