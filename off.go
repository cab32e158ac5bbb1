package meshssim

import (
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/unixpickle/model3d/model3d"
)

// LoadOFF reads an Object File Format mesh. Shared corners are welded back
// into indexed vertices.
func LoadOFF(path string) (*Mesh, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return LoadOFFFromReader(r)
}

func LoadOFFFromReader(r io.Reader) (*Mesh, error) {
	triangles, err := model3d.ReadOFF(r)
	if err != nil {
		return nil, err
	}
	soup := make([][3]mgl64.Vec3, len(triangles))
	for i, t := range triangles {
		for j := 0; j < 3; j++ {
			soup[i][j] = mgl64.Vec3{t[j].X, t[j].Y, t[j].Z}
		}
	}
	return weld(soup), nil
}
