package wavefront

import (
	"math"
	"sort"
)

// wrapToPi wraps a phase difference into (-pi, pi].
func wrapToPi(x float64) float64 {
	return math.Atan2(math.Sin(x), math.Cos(x))
}

// unwrapPhase removes 2*pi discontinuities from a wrapped 2D phase field
// with the reliability-guided algorithm of Herraez, Burton, Lalor and
// Gdeisat: pixels are joined along edges in decreasing order of local
// smoothness, and the less reliable group is lifted by the 2*pi multiple
// that makes the two sides agree. Processing the smooth regions first keeps
// residues and noise from propagating unwrap errors along a fixed scan path,
// which is what defeats naive row/column accumulation.
func unwrapPhase(wrapped [][]float64) ([][]float64, error) {
	h, w, err := rectDims(wrapped)
	if err != nil {
		return nil, err
	}

	n := h * w
	vals := make([]float64, n)
	for i := 0; i < h; i++ {
		copy(vals[i*w:(i+1)*w], wrapped[i])
	}

	rel := reliabilities(wrapped, h, w)

	type edge struct {
		a, b int
		rel  float64
	}
	edges := make([]edge, 0, 2*n)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			p := i*w + j
			if j+1 < w {
				edges = append(edges, edge{p, p + 1, rel[p] + rel[p+1]})
			}
			if i+1 < h {
				edges = append(edges, edge{p, p + w, rel[p] + rel[p+w]})
			}
		}
	}
	sort.Slice(edges, func(x, y int) bool { return edges[x].rel > edges[y].rel })

	// Union-find over pixels, with member lists so the smaller group can be
	// lifted eagerly when two groups join.
	parent := make([]int, n)
	size := make([]int, n)
	next := make([]int, n)
	tail := make([]int, n)
	for i := 0; i < n; i++ {
		parent[i] = i
		size[i] = 1
		next[i] = -1
		tail[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	lift := func(root int, shift float64) {
		for p := root; p != -1; p = next[p] {
			vals[p] += shift
		}
	}

	for _, e := range edges {
		ra := find(e.a)
		rb := find(e.b)
		if ra == rb {
			continue
		}
		periods := math.Round((vals[e.a] - vals[e.b]) / (2 * math.Pi))
		if size[ra] < size[rb] {
			// Lift a's group to agree with b's.
			if periods != 0 {
				lift(ra, -2*math.Pi*periods)
			}
			ra, rb = rb, ra
		} else if periods != 0 {
			lift(rb, 2*math.Pi*periods)
		}
		parent[rb] = ra
		size[ra] += size[rb]
		next[tail[ra]] = rb
		tail[ra] = tail[rb]
	}

	out := make([][]float64, h)
	for i := 0; i < h; i++ {
		out[i] = make([]float64, w)
		copy(out[i], vals[i*w:(i+1)*w])
	}
	return out, nil
}

// reliabilities scores every pixel by the inverse of its second differences;
// flat, well-sampled neighborhoods score high. Border pixels are given the
// lowest score so they join groups last.
func reliabilities(p [][]float64, h, w int) []float64 {
	rel := make([]float64, h*w)
	for i := 1; i < h-1; i++ {
		for j := 1; j < w-1; j++ {
			hd := wrapToPi(p[i][j-1]-p[i][j]) - wrapToPi(p[i][j]-p[i][j+1])
			vd := wrapToPi(p[i-1][j]-p[i][j]) - wrapToPi(p[i][j]-p[i+1][j])
			d1 := wrapToPi(p[i-1][j-1]-p[i][j]) - wrapToPi(p[i][j]-p[i+1][j+1])
			d2 := wrapToPi(p[i-1][j+1]-p[i][j]) - wrapToPi(p[i][j]-p[i+1][j-1])
			d := math.Sqrt(hd*hd + vd*vd + d1*d1 + d2*d2)
			rel[i*w+j] = 1 / (d + 1e-12)
		}
	}
	return rel
}
