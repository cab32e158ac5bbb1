package meshssim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shader shader interface
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex) Color
}

// PhongShader lights a surface with one point light. Fragment colour is
// (ambient + diffuse) * base + specular, the blend used by hard flat
// shading in common differentiable rasterizers.
type PhongShader struct {
	Matrix         mgl64.Mat4
	LightPosition  mgl64.Vec3
	CameraPosition mgl64.Vec3
	AmbientColor   Color
	DiffuseColor   Color
	SpecularColor  Color
	SpecularPower  float64
}

func NewPhongShader(matrix mgl64.Mat4, light, camera mgl64.Vec3) *PhongShader {
	return &PhongShader{
		Matrix:         matrix,
		LightPosition:  light,
		CameraPosition: camera,
		AmbientColor:   Color{0.5, 0.5, 0.5, 1},
		DiffuseColor:   Color{0.3, 0.3, 0.3, 1},
		SpecularColor:  Color{0.2, 0.2, 0.2, 1},
		SpecularPower:  64,
	}
}

func (shader *PhongShader) Vertex(v Vertex) Vertex {
	v.Output = shader.Matrix.Mul4x1(v.Position.Vec4(1))
	return v
}

func (shader *PhongShader) Fragment(v Vertex) Color {
	base := v.Color
	toLight := shader.LightPosition.Sub(v.Surface)
	if l := toLight.Len(); l > 0 {
		toLight = toLight.Mul(1 / l)
	}
	cos := v.Normal.Dot(toLight)
	light := shader.AmbientColor.Add(shader.DiffuseColor.MulScalar(math.Max(cos, 0)))
	c := base.Mul(light)
	if cos > 0 && shader.SpecularPower > 0 {
		view := shader.CameraPosition.Sub(v.Surface)
		if l := view.Len(); l > 0 {
			view = view.Mul(1 / l)
		}
		reflected := v.Normal.Mul(2 * cos).Sub(toLight)
		if s := view.Dot(reflected); s > 0 {
			c = c.Add(shader.SpecularColor.MulScalar(math.Pow(s, shader.SpecularPower)))
		}
	}
	return c.Min(White).Alpha(1)
}

// SolidColorShader is a simple shader that renders everything in one color.
type SolidColorShader struct {
	Matrix mgl64.Mat4
	Color  Color
}

func NewSolidColorShader(matrix mgl64.Mat4, color Color) *SolidColorShader {
	return &SolidColorShader{Matrix: matrix, Color: color}
}

func (s *SolidColorShader) Vertex(v Vertex) Vertex {
	v.Output = s.Matrix.Mul4x1(v.Position.Vec4(1))
	return v
}

func (s *SolidColorShader) Fragment(v Vertex) Color {
	return s.Color
}
