package meshssim

// nearDistance is the signed distance of a clip-space vertex to the near
// plane z = -w; negative means behind it.
func nearDistance(v Vertex) float64 {
	return v.Output[2] + v.Output[3]
}

func behindNear(v Vertex) bool {
	return nearDistance(v) < 0
}

// clipNear clips a convex polygon against the near plane
// (Sutherland-Hodgman on one plane).
func clipNear(in []Vertex) []Vertex {
	out := make([]Vertex, 0, len(in)+1)
	for i := range in {
		cur := in[i]
		prev := in[(i+len(in)-1)%len(in)]
		dc := nearDistance(cur)
		dp := nearDistance(prev)
		if dc >= 0 {
			if dp < 0 {
				out = append(out, lerpVertex(prev, cur, dp/(dp-dc)))
			}
			out = append(out, cur)
		} else if dp >= 0 {
			out = append(out, lerpVertex(prev, cur, dp/(dp-dc)))
		}
	}
	return out
}

func lerpVertex(a, b Vertex, t float64) Vertex {
	return Vertex{
		Position: a.Position.Add(b.Position.Sub(a.Position).Mul(t)),
		Surface:  a.Surface.Add(b.Surface.Sub(a.Surface).Mul(t)),
		Normal:   a.Normal.Add(b.Normal.Sub(a.Normal).Mul(t)),
		Color:    a.Color.Add(b.Color.Sub(a.Color).MulScalar(t)),
		Output:   a.Output.Add(b.Output.Sub(a.Output).Mul(t)),
	}
}
