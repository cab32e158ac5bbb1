package meshssim

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NormalizeScale is the divisor applied to the largest centered coordinate,
// leaving every vertex inside a cube of half extent 1/NormalizeScale.
const NormalizeScale = 1.5

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices []mgl64.Vec3
	Faces    [][3]int
	// Colors is either empty or holds one colour per vertex.
	Colors []Color
}

func NewMesh(vertices []mgl64.Vec3, faces [][3]int) *Mesh {
	return &Mesh{Vertices: vertices, Faces: faces}
}

func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

func (m *Mesh) HasColors() bool {
	return len(m.Colors) > 0 && len(m.Colors) == len(m.Vertices)
}

// Copy returns a deep copy of the mesh.
func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		Vertices: make([]mgl64.Vec3, len(m.Vertices)),
		Faces:    make([][3]int, len(m.Faces)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Faces, m.Faces)
	if len(m.Colors) > 0 {
		c.Colors = make([]Color, len(m.Colors))
		copy(c.Colors, m.Colors)
	}
	return c
}

// Validate checks that every face index refers to a vertex and that the
// colour attribute, if any, matches the vertex count.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("face %d: vertex index %d out of range [0, %d)", i, idx, n)
			}
		}
	}
	if len(m.Colors) > 0 && len(m.Colors) != n {
		return fmt.Errorf("%d colors for %d vertices", len(m.Colors), n)
	}
	return nil
}

// Centroid is the mean of the vertex positions.
func (m *Mesh) Centroid() mgl64.Vec3 {
	var sum mgl64.Vec3
	if len(m.Vertices) == 0 {
		return sum
	}
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1 / float64(len(m.Vertices)))
}

// MaxAbs is the largest absolute coordinate over all vertices.
func (m *Mesh) MaxAbs() float64 {
	var s float64
	for _, v := range m.Vertices {
		for _, c := range v {
			s = math.Max(s, math.Abs(c))
		}
	}
	return s
}

// BoundingBox returns the axis aligned bounds of the vertices.
func (m *Mesh) BoundingBox() (min, max mgl64.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			min[i] = math.Min(min[i], v[i])
			max[i] = math.Max(max[i], v[i])
		}
	}
	return
}

// Normalize moves the centroid to the origin and scales the mesh uniformly
// so that its largest absolute coordinate becomes 1/NormalizeScale.
func (m *Mesh) Normalize() error {
	c := m.Centroid()
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Sub(c)
	}
	s := m.MaxAbs()
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return &DegenerateMeshError{Vertices: len(m.Vertices)}
	}
	k := 1 / (NormalizeScale * s)
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Mul(k)
	}
	return nil
}

// FaceNormal is the unit normal of face i following its winding.
func (m *Mesh) FaceNormal(i int) mgl64.Vec3 {
	f := m.Faces[i]
	a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 0 {
		return n.Mul(1 / l)
	}
	return mgl64.Vec3{}
}

// VertexNormals averages the area weighted face normals around each vertex.
func (m *Mesh) VertexNormals() []mgl64.Vec3 {
	normals := make([]mgl64.Vec3, len(m.Vertices))
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		for _, idx := range f {
			normals[idx] = normals[idx].Add(n)
		}
	}
	for i, n := range normals {
		if l := n.Len(); l > 0 {
			normals[i] = n.Mul(1 / l)
		}
	}
	return normals
}

// weld builds an indexed mesh from a triangle soup, merging bit-identical
// positions.
func weld(triangles [][3]mgl64.Vec3) *Mesh {
	m := &Mesh{Faces: make([][3]int, 0, len(triangles))}
	index := make(map[mgl64.Vec3]int, len(triangles))
	for _, t := range triangles {
		var f [3]int
		for j, p := range t {
			idx, ok := index[p]
			if !ok {
				idx = len(m.Vertices)
				index[p] = idx
				m.Vertices = append(m.Vertices, p)
			}
			f[j] = idx
		}
		m.Faces = append(m.Faces, f)
	}
	return m
}

// Triangles expands the mesh into a triangle soup.
func (m *Mesh) Triangles() [][3]mgl64.Vec3 {
	out := make([][3]mgl64.Vec3, len(m.Faces))
	for i, f := range m.Faces {
		out[i] = [3]mgl64.Vec3{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
	}
	return out
}
