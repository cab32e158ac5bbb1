package meshssim

import (
	"github.com/fogleman/simplify"
	"github.com/go-gl/mathgl/mgl64"
)

// LoadSTL reads a binary STL file.
func LoadSTL(path string) (*Mesh, error) {
	sm, err := simplify.LoadBinarySTL(path)
	if err != nil {
		return nil, err
	}
	return fromSimplify(sm), nil
}

// SaveSTL writes the mesh as binary STL. Vertex colours are dropped.
func SaveSTL(path string, m *Mesh) error {
	return toSimplify(m).SaveBinarySTL(path)
}

func toSimplify(m *Mesh) *simplify.Mesh {
	triangles := make([]*simplify.Triangle, len(m.Faces))
	for i, t := range m.Triangles() {
		triangles[i] = simplify.NewTriangle(vec(t[0]), vec(t[1]), vec(t[2]))
	}
	return simplify.NewMesh(triangles)
}

func fromSimplify(sm *simplify.Mesh) *Mesh {
	soup := make([][3]mgl64.Vec3, len(sm.Triangles))
	for i, t := range sm.Triangles {
		soup[i] = [3]mgl64.Vec3{
			{t.V1.X, t.V1.Y, t.V1.Z},
			{t.V2.X, t.V2.Y, t.V2.Z},
			{t.V3.X, t.V3.Y, t.V3.Z},
		}
	}
	return weld(soup)
}

func vec(v mgl64.Vec3) simplify.Vector {
	return simplify.Vector{X: v[0], Y: v[1], Z: v[2]}
}
