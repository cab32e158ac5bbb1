package curve

import "github.com/netisu/meshssim"

// ReductionRatio is the fraction of faces removed going from original to
// simplified. A simplified mesh with more faces yields a negative ratio,
// which is returned unchanged.
func ReductionRatio(original, simplified *meshssim.Mesh) (float64, error) {
	n := original.FaceCount()
	if n == 0 {
		return 0, &meshssim.InvalidMeshError{Reason: "original mesh has no faces"}
	}
	return float64(n-simplified.FaceCount()) / float64(n), nil
}
