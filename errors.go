package meshssim

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrRendererClosed is returned by a Renderer used after Close.
var ErrRendererClosed = errors.New("meshssim: renderer is closed")

// LoadError reports a mesh file that is missing, malformed or empty.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("meshssim: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DegenerateMeshError reports a mesh whose vertices all coincide, so it has no
// extent to normalize by.
type DegenerateMeshError struct {
	Vertices int
}

func (e *DegenerateMeshError) Error() string {
	return fmt.Sprintf("meshssim: degenerate mesh: %d vertices with zero extent", e.Vertices)
}

// InvalidMeshError reports a mesh that cannot take part in a computation.
type InvalidMeshError struct {
	Reason string
}

func (e *InvalidMeshError) Error() string {
	return "meshssim: invalid mesh: " + e.Reason
}

// RenderMismatchError reports two rasters that cannot be compared pixel for
// pixel.
type RenderMismatchError struct {
	Width1, Height1 int
	Width2, Height2 int
}

func (e *RenderMismatchError) Error() string {
	return fmt.Sprintf("meshssim: render size mismatch: %dx%d vs %dx%d",
		e.Width1, e.Height1, e.Width2, e.Height2)
}

func loadError(path string, err error) error {
	if err == nil {
		return nil
	}
	var le *LoadError
	if errors.As(err, &le) {
		return err
	}
	return &LoadError{Path: path, Err: err}
}
