package meshssim

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadOBJFromReader(file)
}

func LoadOBJFromBytes(b []byte) (*Mesh, error) {
	return LoadOBJFromReader(bytes.NewReader(b))
}

// LoadOBJFromReader reads vertex positions, optional "v x y z r g b" vertex
// colours and faces. Polygons are fan triangulated. Texture coordinates and
// normals are accepted and ignored.
func LoadOBJFromReader(r io.Reader) (*Mesh, error) {
	m := &Mesh{
		Vertices: make([]mgl64.Vec3, 0, 1024),
	}
	var colors []Color
	colored := true

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) < 2 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var v mgl64.Vec3
			for i := 0; i < 3; i++ {
				f, err := pf(fields[i+1])
				if err != nil {
					return nil, errors.Wrapf(err, "line %d", lineNo)
				}
				v[i] = f
			}
			m.Vertices = append(m.Vertices, v)
			if len(fields) >= 7 && colored {
				c, err := parseVertexColor(fields[4:7])
				if err != nil {
					return nil, errors.Wrapf(err, "line %d", lineNo)
				}
				colors = append(colors, c)
			} else {
				colored = false
			}
		case "f":
			args := fields[1:]
			if len(args) < 3 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			fvs := make([]int, len(args))
			for i, arg := range args {
				vertex := strings.SplitN(arg, "/", 2)
				idx, err := fixIndex(vertex[0], len(m.Vertices))
				if err != nil {
					return nil, errors.Wrapf(err, "line %d", lineNo)
				}
				fvs[i] = idx
			}
			for i := 1; i < len(fvs)-1; i++ {
				m.Faces = append(m.Faces, [3]int{fvs[0], fvs[i], fvs[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if colored && len(colors) == len(m.Vertices) {
		m.Colors = colors
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// SaveOBJ writes positions, vertex colours when present, and triangle faces.
func SaveOBJ(path string, m *Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOBJ(file, m); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	colored := m.HasColors()
	for i, v := range m.Vertices {
		if colored {
			c := m.Colors[i]
			fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", v[0], v[1], v[2], c.R, c.G, c.B)
		} else {
			fmt.Fprintf(bw, "v %g %g %g\n", v[0], v[1], v[2])
		}
	}
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
	}
	return bw.Flush()
}

func pf(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseVertexColor(fields []string) (Color, error) {
	var rgb [3]float64
	for i, s := range fields {
		f, err := pf(s)
		if err != nil {
			return Color{}, err
		}
		rgb[i] = f
	}
	return Color{rgb[0], rgb[1], rgb[2], 1}, nil
}

// fixIndex converts a 1-based, possibly negative, OBJ index into a 0-based
// one. Range is checked by Validate.
func fixIndex(value string, length int) (int, error) {
	if value == "" {
		return 0, errors.New("empty vertex index")
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	switch {
	case parsed < 0:
		return parsed + length, nil
	case parsed == 0:
		return 0, errors.New("vertex index 0 is not valid in OBJ")
	}
	return parsed - 1, nil
}
