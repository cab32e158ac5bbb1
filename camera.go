package meshssim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera projection defaults.
const (
	DefaultFovy     = 60
	DefaultNear     = 1
	DefaultFar      = 100
	DefaultDistance = 2
)

// Camera is a perspective viewpoint looking at Center. It is a value type;
// nothing mutates one after construction.
type Camera struct {
	Eye, Center, Up mgl64.Vec3
	// Fovy is the vertical field of view in degrees.
	Fovy      float64
	Near, Far float64

	Elevation, Azimuth float64
}

// NewOrbitCamera places a camera at distance from the origin, looking at it.
// Angles are in degrees; azimuth 0 looks down -Z from +Z, positive azimuth
// turns towards +X.
func NewOrbitCamera(distance, elevation, azimuth float64) Camera {
	el := mgl64.DegToRad(elevation)
	az := mgl64.DegToRad(azimuth)
	eye := mgl64.Vec3{
		distance * math.Cos(el) * math.Sin(az),
		distance * math.Sin(el),
		distance * math.Cos(el) * math.Cos(az),
	}
	return Camera{
		Eye:       eye,
		Up:        mgl64.Vec3{0, 1, 0},
		Fovy:      DefaultFovy,
		Near:      DefaultNear,
		Far:       DefaultFar,
		Elevation: elevation,
		Azimuth:   azimuth,
	}
}

// PrimaryCamera is the fixed front view.
func PrimaryCamera() Camera {
	c := NewOrbitCamera(DefaultDistance, 0, 0)
	c.Near = 0.01
	c.Far = 1000
	return c
}

// OrbitCameras returns n cameras at a fixed distance and elevation with
// azimuths evenly spaced over [azMin, azMax], both ends included.
func OrbitCameras(n int, distance, elevation, azMin, azMax float64) []Camera {
	cams := make([]Camera, 0, n)
	for _, az := range Linspace(azMin, azMax, n) {
		cams = append(cams, NewOrbitCamera(distance, elevation, az))
	}
	return cams
}

// WithProjection returns a copy of c with a different frustum.
func (c Camera) WithProjection(fovy, near, far float64) Camera {
	c.Fovy = fovy
	c.Near = near
	c.Far = far
	return c
}

func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Center, c.Up)
}

func (c Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.Fovy), aspect, c.Near, c.Far)
}

// Matrix is the combined view-projection transform.
func (c Camera) Matrix(aspect float64) mgl64.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 1 yields start.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
