package curve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/netisu/meshssim"
)

var cubeVertices = []mgl64.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var cubeFaces = [][3]int{
	{0, 3, 2}, {0, 2, 1},
	{4, 5, 6}, {4, 6, 7},
	{0, 1, 5}, {0, 5, 4},
	{1, 2, 6}, {1, 6, 5},
	{2, 3, 7}, {2, 7, 6},
	{3, 0, 4}, {3, 4, 7},
}

// cube returns the unit cube with only its first n faces.
func cube(n int) *meshssim.Mesh {
	faces := make([][3]int, n)
	copy(faces, cubeFaces)
	verts := make([]mgl64.Vec3, len(cubeVertices))
	copy(verts, cubeVertices)
	return meshssim.NewMesh(verts, faces)
}

func objText(m *meshssim.Mesh) string {
	var sb strings.Builder
	if err := meshssim.WriteOBJ(&sb, m); err != nil {
		panic(err)
	}
	return sb.String()
}

// writeLevels lays out levels of model under dir. Level i holds the cube
// minus i faces unless content overrides it.
func writeLevels(t *testing.T, dir, model string, levels int, content map[int]string) Layout {
	t.Helper()
	layout := Layout{ModelDirectory: dir, LevelCount: levels, FileExtension: "obj"}
	if err := os.MkdirAll(filepath.Join(dir, model), 0755); err != nil {
		t.Fatalf("failed to create model dir: %v", err)
	}
	for i := 0; i < levels; i++ {
		text, ok := content[i]
		if !ok {
			text = objText(cube(len(cubeFaces) - i))
		}
		if text == "" {
			continue
		}
		if err := os.WriteFile(layout.Path(model, i), []byte(text), 0644); err != nil {
			t.Fatalf("failed to write level %d: %v", i, err)
		}
	}
	return layout
}

func testScorer(t *testing.T, size, views int) *Scorer {
	t.Helper()
	s := meshssim.DefaultSettings()
	s.ImageSize = size
	r, err := meshssim.NewRenderer(s)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return NewScorer(r, meshssim.OrbitCameras(views, meshssim.DefaultDistance, 0, -180, 180))
}

func normalized(t *testing.T, m *meshssim.Mesh) *meshssim.Mesh {
	t.Helper()
	if err := m.Normalize(); err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	return m
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func levelName(model string, level int) string {
	return fmt.Sprintf("%s_%d.obj", model, level)
}
