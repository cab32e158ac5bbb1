package meshssim

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Formats lists the file extensions Load understands.
var Formats = []string{".obj", ".off", ".stl", ".gltf", ".glb"}

// Load reads a mesh file, choosing the parser by extension. Every failure,
// including a mesh without faces, is reported as a *LoadError.
func Load(path string) (*Mesh, error) {
	var (
		m   *Mesh
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		m, err = LoadOBJ(path)
	case ".off":
		m, err = LoadOFF(path)
	case ".stl":
		m, err = LoadSTL(path)
	case ".gltf", ".glb":
		m, err = LoadGLTF(path)
	default:
		err = fmt.Errorf("unsupported mesh format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, loadError(path, err)
	}
	if m.FaceCount() == 0 {
		return nil, loadError(path, fmt.Errorf("mesh has no faces"))
	}
	return m, nil
}

// LoadAndNormalize loads a mesh and normalizes it into the unit framing cube.
func LoadAndNormalize(path string) (*Mesh, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := m.Normalize(); err != nil {
		return nil, err
	}
	return m, nil
}

// Save writes a mesh, choosing the writer by extension.
func Save(path string, m *Mesh) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return SaveOBJ(path, m)
	case ".stl":
		return SaveSTL(path, m)
	}
	return fmt.Errorf("meshssim: cannot write %q files", filepath.Ext(path))
}
