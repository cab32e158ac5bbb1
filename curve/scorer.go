package curve

import (
	"fmt"

	"github.com/netisu/meshssim"
	"github.com/netisu/meshssim/ssim"
	"github.com/pkg/errors"
)

// Scorer renders two meshes from the same cameras and averages the per view
// SSIM.
type Scorer struct {
	Renderer *meshssim.Renderer
	Cameras  []meshssim.Camera
	Options  ssim.Options
}

func NewScorer(r *meshssim.Renderer, cameras []meshssim.Camera) *Scorer {
	return &Scorer{Renderer: r, Cameras: cameras, Options: ssim.Defaults()}
}

// Score compares original and simplified over every camera.
func (s *Scorer) Score(original, simplified *meshssim.Mesh) (float64, error) {
	ref, err := s.Reference(original)
	if err != nil {
		return 0, err
	}
	return ref.Score(simplified)
}

// Reference holds the rendered views of one mesh so that many others can be
// scored against it without re-rendering.
type Reference struct {
	scorer *Scorer
	views  []*meshssim.Raster
}

func (s *Scorer) Reference(m *meshssim.Mesh) (*Reference, error) {
	if len(s.Cameras) == 0 {
		return nil, fmt.Errorf("curve: scorer has no cameras")
	}
	ref := &Reference{scorer: s, views: make([]*meshssim.Raster, len(s.Cameras))}
	for i, cam := range s.Cameras {
		img, err := s.Renderer.Render(m, cam)
		if err != nil {
			return nil, errors.Wrapf(err, "render reference view %d", i)
		}
		ref.views[i] = img
	}
	return ref, nil
}

// Score returns the mean SSIM between the reference views and m.
func (r *Reference) Score(m *meshssim.Mesh) (float64, error) {
	s := r.scorer
	var sum float64
	for i, cam := range s.Cameras {
		img, err := s.Renderer.Render(m, cam)
		if err != nil {
			return 0, errors.Wrapf(err, "render view %d", i)
		}
		v, err := ssim.CompareWith(r.views[i], img, s.Options)
		if err != nil {
			return 0, errors.Wrapf(err, "compare view %d", i)
		}
		sum += v
	}
	return sum / float64(len(s.Cameras)), nil
}
