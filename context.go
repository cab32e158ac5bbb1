package meshssim

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Face int

const (
	_ Face = iota
	FaceCW
	FaceCCW
)

type Cull int

const (
	_ Cull = iota
	CullNone
	CullFront
	CullBack
)

// Vertex carries the per-corner attributes a Shader reads and writes.
type Vertex struct {
	Position mgl64.Vec3
	// Surface is the point lighting is evaluated at. Flat shading sets it to
	// the face centroid on all three corners.
	Surface mgl64.Vec3
	Normal  mgl64.Vec3
	Color   Color
	Output  mgl64.Vec4
}

// Context is a colour and depth target that triangles are rasterized into.
// It is not safe for concurrent use; triangles are drawn in submission order
// so output is deterministic.
type Context struct {
	Width       int
	Height      int
	Shader      Shader
	ColorBuffer *image.NRGBA
	DepthBuffer []float64
	ClearColor  Color
	ReadDepth   bool
	WriteDepth  bool
	WriteColor  bool
	FrontFace   Face
	Cull        Cull
	DepthBias   float64
}

func NewContext(width, height int, shader Shader) *Context {
	dc := &Context{}
	dc.Width = width
	dc.Height = height
	dc.Shader = shader
	dc.ColorBuffer = image.NewNRGBA(image.Rect(0, 0, width, height))
	dc.DepthBuffer = make([]float64, width*height)
	dc.ClearColor = Transparent
	dc.ReadDepth = true
	dc.WriteDepth = true
	dc.WriteColor = true
	dc.FrontFace = FaceCCW
	dc.Cull = CullNone
	dc.DepthBias = 0
	dc.ClearDepthBuffer()
	return dc
}

func (dc *Context) Image() image.Image {
	return dc.ColorBuffer
}

// ClearColorBufferWith uses fast memory copy to clear the buffer
func (dc *Context) ClearColorBufferWith(c Color) {
	nrgba := c.NRGBA()
	row := make([]uint8, dc.Width*4)
	for x := 0; x < dc.Width; x++ {
		i := x * 4
		row[i+0] = nrgba.R
		row[i+1] = nrgba.G
		row[i+2] = nrgba.B
		row[i+3] = nrgba.A
	}
	pix := dc.ColorBuffer.Pix
	stride := dc.ColorBuffer.Stride
	for y := 0; y < dc.Height; y++ {
		copy(pix[y*stride:], row)
	}
}

func (dc *Context) ClearColorBuffer() {
	dc.ClearColorBufferWith(dc.ClearColor)
}

func (dc *Context) ClearDepthBuffer() {
	for i := range dc.DepthBuffer {
		dc.DepthBuffer[i] = math.MaxFloat64
	}
}

func edge(a, b, c mgl64.Vec3) float64 {
	return (b[0]-c[0])*(a[1]-c[1]) - (b[1]-c[1])*(a[0]-c[0])
}

func (dc *Context) rasterize(v0, v1, v2 Vertex, s0, s1, s2 mgl64.Vec3) {
	area := edge(s0, s1, s2)
	if area == 0 || math.IsNaN(area) {
		return
	}

	x0 := int(math.Floor(math.Min(s0[0], math.Min(s1[0], s2[0]))))
	x1 := int(math.Ceil(math.Max(s0[0], math.Max(s1[0], s2[0]))))
	y0 := int(math.Floor(math.Min(s0[1], math.Min(s1[1], s2[1]))))
	y1 := int(math.Ceil(math.Max(s0[1], math.Max(s1[1], s2[1]))))

	// Clip to screen bounds
	x0 = ClampInt(x0, 0, dc.Width-1)
	x1 = ClampInt(x1, 0, dc.Width-1)
	y0 = ClampInt(y0, 0, dc.Height-1)
	y1 = ClampInt(y1, 0, dc.Height-1)

	p := mgl64.Vec3{float64(x0) + 0.5, float64(y0) + 0.5, 0}
	w00 := edge(s1, s2, p)
	w01 := edge(s2, s0, p)
	w02 := edge(s0, s1, p)
	a01 := s1[1] - s0[1]
	b01 := s0[0] - s1[0]
	a12 := s2[1] - s1[1]
	b12 := s1[0] - s2[0]
	a20 := s0[1] - s2[1]
	b20 := s2[0] - s0[0]

	ra := 1 / area
	r0 := 1 / v0.Output[3]
	r1 := 1 / v1.Output[3]
	r2 := 1 / v2.Output[3]

	stride := dc.Width
	pix := dc.ColorBuffer.Pix

	for y := y0; y <= y1; y++ {
		w0 := w00
		w1 := w01
		w2 := w02
		for x := x0; x <= x1; x++ {
			b0 := w0 * ra
			b1 := w1 * ra
			b2 := w2 * ra

			if b0 >= 0 && b1 >= 0 && b2 >= 0 {
				i := y*stride + x
				z := b0*s0[2] + b1*s1[2] + b2*s2[2]
				bz := z + dc.DepthBias

				if !dc.ReadDepth || bz <= dc.DepthBuffer[i] {
					// perspective correct weights
					pb := mgl64.Vec3{b0 * r0, b1 * r1, b2 * r2}
					pb = pb.Mul(1 / (pb[0] + pb[1] + pb[2]))
					v := interpolateVertexes(v0, v1, v2, pb)

					c := dc.Shader.Fragment(v)
					if c.A > 0 {
						if dc.WriteDepth {
							dc.DepthBuffer[i] = z
						}
						if dc.WriteColor {
							n := c.NRGBA()
							j := i * 4
							pix[j+0] = n.R
							pix[j+1] = n.G
							pix[j+2] = n.B
							pix[j+3] = n.A
						}
					}
				}
			}
			w0 += a12
			w1 += a20
			w2 += a01
		}
		w00 += b12
		w01 += b20
		w02 += b01
	}
}

func interpolateVertexes(v0, v1, v2 Vertex, b mgl64.Vec3) Vertex {
	v := Vertex{}
	v.Position = interpolateVec3(v0.Position, v1.Position, v2.Position, b)
	v.Surface = interpolateVec3(v0.Surface, v1.Surface, v2.Surface, b)
	v.Normal = interpolateVec3(v0.Normal, v1.Normal, v2.Normal, b)
	if l := v.Normal.Len(); l > 0 {
		v.Normal = v.Normal.Mul(1 / l)
	}
	v.Color = v0.Color.MulScalar(b[0]).Add(v1.Color.MulScalar(b[1])).Add(v2.Color.MulScalar(b[2]))
	v.Output = v0.Output.Mul(b[0]).Add(v1.Output.Mul(b[1])).Add(v2.Output.Mul(b[2]))
	return v
}

func interpolateVec3(v0, v1, v2, b mgl64.Vec3) mgl64.Vec3 {
	return v0.Mul(b[0]).Add(v1.Mul(b[1])).Add(v2.Mul(b[2]))
}

func (dc *Context) screen(ndc mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		(ndc[0] + 1) * 0.5 * float64(dc.Width),
		(1 - ndc[1]) * 0.5 * float64(dc.Height),
		ndc[2],
	}
}

func (dc *Context) drawClippedTriangle(v0, v1, v2 Vertex) {
	ndc0 := v0.Output.Mul(1 / v0.Output[3]).Vec3()
	ndc1 := v1.Output.Mul(1 / v1.Output[3]).Vec3()
	ndc2 := v2.Output.Mul(1 / v2.Output[3]).Vec3()

	if dc.Cull != CullNone {
		area := (ndc1[0]-ndc0[0])*(ndc2[1]-ndc0[1]) - (ndc2[0]-ndc0[0])*(ndc1[1]-ndc0[1])
		if dc.FrontFace == FaceCW {
			area = -area
		}
		if dc.Cull == CullBack && area <= 0 {
			return
		}
		if dc.Cull == CullFront && area >= 0 {
			return
		}
	}

	dc.rasterize(v0, v1, v2, dc.screen(ndc0), dc.screen(ndc1), dc.screen(ndc2))
}

// DrawTriangle runs the vertex stage on the three corners, clips against the
// near plane and rasterizes what remains.
func (dc *Context) DrawTriangle(v0, v1, v2 Vertex) {
	v0 = dc.Shader.Vertex(v0)
	v1 = dc.Shader.Vertex(v1)
	v2 = dc.Shader.Vertex(v2)

	if behindNear(v0) || behindNear(v1) || behindNear(v2) {
		poly := clipNear([]Vertex{v0, v1, v2})
		for i := 1; i+1 < len(poly); i++ {
			dc.drawClippedTriangle(poly[0], poly[i], poly[i+1])
		}
		return
	}
	dc.drawClippedTriangle(v0, v1, v2)
}
