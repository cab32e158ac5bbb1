package meshssim

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/nfnt/resize"
)

// Shading selects how surface colour is computed.
type Shading string

const (
	// ShadingFlat lights every face once, at its centroid, with its face
	// normal.
	ShadingFlat Shading = "flat"
	// ShadingSmooth interpolates area weighted vertex normals.
	ShadingSmooth Shading = "smooth"
	// ShadingSilhouette paints every covered pixel with the base colour.
	ShadingSilhouette Shading = "silhouette"
)

func ParseShading(s string) (Shading, error) {
	switch Shading(s) {
	case ShadingFlat, ShadingSmooth, ShadingSilhouette:
		return Shading(s), nil
	}
	return "", fmt.Errorf("meshssim: unknown shading %q", s)
}

func ParseCull(s string) (Cull, error) {
	switch s {
	case "", "none":
		return CullNone, nil
	case "back":
		return CullBack, nil
	case "front":
		return CullFront, nil
	}
	return 0, fmt.Errorf("meshssim: unknown cull mode %q", s)
}

// Settings are the fixed rasterization parameters of a Renderer.
type Settings struct {
	ImageSize int
	// Samples is the per-axis supersampling factor. The frame is drawn at
	// ImageSize*Samples and reduced with a bilinear filter.
	Samples      int
	Shading      Shading
	Cull         Cull
	Background   Color
	BaseColor    Color
	VertexColors bool
	Light        mgl64.Vec3
	Ambient      float64
	Diffuse      float64
	Specular     float64
	Shininess    float64
}

// DefaultSettings matches the reference study setup: 512px, black
// background, a light blue base colour and a point light at (1, 1, 1).
func DefaultSettings() Settings {
	return Settings{
		ImageSize:  512,
		Samples:    1,
		Shading:    ShadingFlat,
		Cull:       CullNone,
		Background: Black,
		BaseColor:  Color{0, 0.5, 1, 1},
		Light:      mgl64.Vec3{1, 1, 1},
		Ambient:    0.5,
		Diffuse:    0.3,
		Specular:   0.2,
		Shininess:  64,
	}
}

func (s Settings) validate() error {
	if s.ImageSize <= 0 {
		return fmt.Errorf("meshssim: image size must be positive, got %d", s.ImageSize)
	}
	if s.Samples <= 0 {
		return fmt.Errorf("meshssim: samples must be positive, got %d", s.Samples)
	}
	if _, err := ParseShading(string(s.Shading)); err != nil {
		return err
	}
	return nil
}

// Renderer owns the raster target used to draw meshes. Build one per batch
// with NewRenderer and release it with Close. Calls are sequential; the mesh
// and camera passed to Render are neither retained nor modified.
type Renderer struct {
	settings Settings
	context  *Context
}

func NewRenderer(settings Settings) (*Renderer, error) {
	if err := settings.validate(); err != nil {
		return nil, err
	}
	size := settings.ImageSize * settings.Samples
	ctx := NewContext(size, size, nil)
	ctx.ClearColor = settings.Background
	ctx.Cull = settings.Cull
	return &Renderer{settings: settings, context: ctx}, nil
}

func (r *Renderer) Settings() Settings {
	return r.settings
}

// Close drops the raster buffers. The renderer cannot be used afterwards.
func (r *Renderer) Close() error {
	r.context = nil
	return nil
}

// Render draws mesh as seen from camera and returns the RGB raster.
func (r *Renderer) Render(mesh *Mesh, camera Camera) (*Raster, error) {
	if r.context == nil {
		return nil, ErrRendererClosed
	}
	s := r.settings
	dc := r.context
	dc.Shader = r.shader(camera)
	defer func() { dc.Shader = nil }()

	dc.ClearColorBuffer()
	dc.ClearDepthBuffer()

	var normals []mgl64.Vec3
	if s.Shading == ShadingSmooth {
		normals = mesh.VertexNormals()
	}
	useColors := s.VertexColors && mesh.HasColors()

	for i, f := range mesh.Faces {
		var vs [3]Vertex
		for j, idx := range f {
			vs[j].Position = mesh.Vertices[idx]
			vs[j].Surface = mesh.Vertices[idx]
			vs[j].Color = s.BaseColor
			if useColors {
				vs[j].Color = mesh.Colors[idx]
			}
			if normals != nil {
				vs[j].Normal = normals[idx]
			}
		}
		if s.Shading == ShadingFlat {
			n := mesh.FaceNormal(i)
			c := interpolateVec3(vs[0].Position, vs[1].Position, vs[2].Position, mgl64.Vec3{1.0 / 3, 1.0 / 3, 1.0 / 3})
			col := vs[0].Color.Add(vs[1].Color).Add(vs[2].Color).MulScalar(1.0 / 3)
			for j := range vs {
				vs[j].Normal = n
				vs[j].Surface = c
				vs[j].Color = col
			}
		}
		dc.DrawTriangle(vs[0], vs[1], vs[2])
	}

	var img image.Image = dc.ColorBuffer
	if s.Samples > 1 {
		img = resize.Resize(uint(s.ImageSize), uint(s.ImageSize), img, resize.Bilinear)
	}
	return NewRaster(img), nil
}

func (r *Renderer) shader(camera Camera) Shader {
	s := r.settings
	matrix := camera.Matrix(1)
	if s.Shading == ShadingSilhouette {
		return NewSolidColorShader(matrix, s.BaseColor)
	}
	ps := NewPhongShader(matrix, s.Light, camera.Eye)
	ps.AmbientColor = Color{s.Ambient, s.Ambient, s.Ambient, 1}
	ps.DiffuseColor = Color{s.Diffuse, s.Diffuse, s.Diffuse, 1}
	ps.SpecularColor = Color{s.Specular, s.Specular, s.Specular, 1}
	ps.SpecularPower = s.Shininess
	return ps
}
