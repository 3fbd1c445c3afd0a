package framework

import "math"

// DensityEstimator scores how crowded each point of a front is. Scores are
// non-negative and higher means more crowded; the archive evicts high scores
// first and samples low scores when a sparse guide is wanted.
type DensityEstimator interface {
	Scores(points []ObjectiveSpacePoint) []float64
}

// NeighborhoodDensity is the exact reference estimator: for every point it
// counts the other points lying within a twentieth of the per-objective range
// in all objectives at once. O(n^2 * m), deterministic.
type NeighborhoodDensity struct{}

func (NeighborhoodDensity) Scores(points []ObjectiveSpacePoint) []float64 {
	scores := make([]float64, len(points))
	// Two or fewer points are equally sparse.
	if len(points) <= 2 {
		return scores
	}

	radius := objectiveRadii(points, 20)
	for i := range points {
		for j := range points {
			if i == j {
				continue
			}
			near := true
			for k := range radius {
				if math.Abs(points[j][k]-points[i][k]) >= radius[k] {
					near = false
					break
				}
			}
			if near {
				scores[i]++
			}
		}
	}
	return scores
}

// objectiveRadii returns the per-objective range divided by divisor,
// substituting 1 for degenerate zero ranges.
func objectiveRadii(points []ObjectiveSpacePoint, divisor float64) []float64 {
	m := len(points[0])
	radius := make([]float64, m)
	for k := 0; k < m; k++ {
		lo, hi := points[0][k], points[0][k]
		for _, p := range points {
			if p[k] < lo {
				lo = p[k]
			}
			if p[k] > hi {
				hi = p[k]
			}
		}
		r := (hi - lo) / divisor
		if r == 0 {
			r = 1
		}
		radius[k] = r
	}
	return radius
}

// GridDensity approximates NeighborhoodDensity by bucketing the points into
// an NGrid^m lattice over the objective space, inflated by an Alpha margin so
// boundary points don't degenerate into their own cells. A point's score is
// its own cell occupancy plus half the occupancy of the cells adjacent along
// one axis. Cheaper than the exact estimator on large archives; the eviction
// ordering matches the exact method on non-degenerate fronts but is not
// guaranteed to on ties.
type GridDensity struct {
	NGrid int
	Alpha float64
}

func (g GridDensity) Scores(points []ObjectiveSpacePoint) []float64 {
	scores := make([]float64, len(points))
	if len(points) <= 2 {
		return scores
	}

	nGrid := g.NGrid
	if nGrid < 2 {
		nGrid = 10
	}

	m := len(points[0])
	lo := make([]float64, m)
	hi := make([]float64, m)
	for k := 0; k < m; k++ {
		lo[k], hi[k] = points[0][k], points[0][k]
		for _, p := range points {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
		margin := g.Alpha * (hi[k] - lo[k])
		lo[k] -= margin
		hi[k] += margin
		if hi[k] == lo[k] {
			hi[k] = lo[k] + 1
		}
	}

	// Cell coordinates per point, flattened to a single lattice key.
	cells := make([][]int, len(points))
	occupancy := make(map[int]int)
	for i, p := range points {
		cell := make([]int, m)
		for k := 0; k < m; k++ {
			c := int(float64(nGrid) * (p[k] - lo[k]) / (hi[k] - lo[k]))
			if c >= nGrid {
				c = nGrid - 1
			}
			cell[k] = c
		}
		cells[i] = cell
		occupancy[latticeKey(cell, nGrid)]++
	}

	for i, cell := range cells {
		score := float64(occupancy[latticeKey(cell, nGrid)] - 1)
		for k := 0; k < m; k++ {
			for _, delta := range [2]int{-1, 1} {
				c := cell[k] + delta
				if c < 0 || c >= nGrid {
					continue
				}
				cell[k] = c
				score += 0.5 * float64(occupancy[latticeKey(cell, nGrid)])
				cell[k] -= delta
			}
		}
		scores[i] = score
	}
	return scores
}

func latticeKey(cell []int, nGrid int) int {
	key := 0
	for _, c := range cell {
		key = key*nGrid + c
	}
	return key
}
