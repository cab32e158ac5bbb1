package meshssim

// Simplify returns a copy of m reduced to roughly factor of its faces using
// quadric error simplification from github.com/fogleman/simplify. Vertex
// colours are not carried over.
func Simplify(m *Mesh, factor float64) *Mesh {
	return fromSimplify(toSimplify(m).Simplify(factor))
}

// LevelFactors returns the target face fractions for levels 1..n-1 of an
// n-level series, falling linearly from (n-1)/n to 1/n.
func LevelFactors(n int) []float64 {
	if n < 2 {
		return nil
	}
	out := make([]float64, n-1)
	for i := range out {
		out[i] = 1 - float64(i+1)/float64(n)
	}
	return out
}
