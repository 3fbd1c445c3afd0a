// Package metrics provides quality indicators for Pareto fronts. All
// functions are pure, operate on front-shaped matrices and assume
// minimization of every objective.
package metrics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

var errEmptyFront = errors.New("metrics: empty front")

func validateFronts(fronts ...[]framework.ObjectiveSpacePoint) (int, error) {
	m := 0
	for _, front := range fronts {
		if len(front) == 0 {
			return 0, errEmptyFront
		}
		for _, p := range front {
			if m == 0 {
				m = len(p)
			} else if len(p) != m {
				return 0, fmt.Errorf("metrics: objective count mismatch, %d vs %d", m, len(p))
			}
		}
	}
	return m, nil
}

func nearestDistance(p framework.ObjectiveSpacePoint, front []framework.ObjectiveSpacePoint) float64 {
	best := math.Inf(1)
	for _, q := range front {
		if d := floats.Distance(p, q, 2); d < best {
			best = d
		}
	}
	return best
}

// GenerationalDistance measures how far the found front lies from a reference
// front: the root of the summed squared nearest-neighbor distances, averaged
// over the front size. Zero means every found point lies on the reference.
func GenerationalDistance(front, reference []framework.ObjectiveSpacePoint) (float64, error) {
	if _, err := validateFronts(front, reference); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, p := range front {
		d := nearestDistance(p, reference)
		sum += d * d
	}
	return math.Sqrt(sum) / float64(len(front)), nil
}

// InvertedGenerationalDistance measures how well the found front covers the
// reference front: the generational distance taken from the reference side.
// Low IGD requires both convergence and spread.
func InvertedGenerationalDistance(front, reference []framework.ObjectiveSpacePoint) (float64, error) {
	return GenerationalDistance(reference, front)
}

// Spacing is Schott's metric: the standard deviation of the nearest-neighbor
// Manhattan distances within the front. Zero means perfectly even spacing.
// Fronts with fewer than two points have spacing 0.
func Spacing(front []framework.ObjectiveSpacePoint) (float64, error) {
	if _, err := validateFronts(front); err != nil {
		return 0, err
	}
	n := len(front)
	if n < 2 {
		return 0, nil
	}

	dists := make([]float64, n)
	for i, p := range front {
		best := math.Inf(1)
		for j, q := range front {
			if i == j {
				continue
			}
			d := 0.0
			for k := range p {
				d += math.Abs(p[k] - q[k])
			}
			if d < best {
				best = d
			}
		}
		dists[i] = best
	}

	mean := floats.Sum(dists) / float64(n)
	sum := 0.0
	for _, d := range dists {
		sum += (mean - d) * (mean - d)
	}
	return math.Sqrt(sum / float64(n-1)), nil
}

// Spread is the two-objective Delta metric: it combines the gaps between
// consecutive front points with the distance from the front's extremes to
// the reference front's extremes. Zero means a perfectly uniform front that
// reaches both ends of the reference; values near 1 indicate bunching.
func Spread(front, reference []framework.ObjectiveSpacePoint) (float64, error) {
	m, err := validateFronts(front, reference)
	if err != nil {
		return 0, err
	}
	if m != 2 {
		return 0, fmt.Errorf("metrics: spread is defined for 2 objectives, got %d", m)
	}

	sorted := make([]framework.ObjectiveSpacePoint, len(front))
	copy(sorted, front)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][0] < sorted[j][0] })

	refLo, refHi := reference[0], reference[0]
	for _, r := range reference {
		if r[0] < refLo[0] {
			refLo = r
		}
		if r[0] > refHi[0] {
			refHi = r
		}
	}

	df := floats.Distance(sorted[0], refLo, 2)
	dl := floats.Distance(sorted[len(sorted)-1], refHi, 2)

	n := len(sorted)
	gaps := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		gaps = append(gaps, floats.Distance(sorted[i-1], sorted[i], 2))
	}
	mean := 0.0
	if len(gaps) > 0 {
		mean = floats.Sum(gaps) / float64(len(gaps))
	}

	numerator := df + dl
	for _, g := range gaps {
		numerator += math.Abs(g - mean)
	}
	denominator := df + dl + float64(n-1)*mean
	if denominator == 0 {
		return 0, nil
	}
	return numerator / denominator, nil
}

// SetCoverage returns the fraction of points in b weakly dominated by at
// least one point in a. C(a,b) = 1 means a completely covers b; the metric is
// not symmetric, so both directions are usually reported.
func SetCoverage(a, b []framework.ObjectiveSpacePoint) (float64, error) {
	if _, err := validateFronts(a, b); err != nil {
		return 0, err
	}
	covered := 0
	for _, q := range b {
		for _, p := range a {
			if framework.WeaklyDominates(p, q) {
				covered++
				break
			}
		}
	}
	return float64(covered) / float64(len(b)), nil
}

// AdditiveEpsilon is the smallest value that, added to every objective of
// every point in the front, makes the front weakly dominate the whole
// reference front. Zero or negative means the front already covers the
// reference.
func AdditiveEpsilon(front, reference []framework.ObjectiveSpacePoint) (float64, error) {
	if _, err := validateFronts(front, reference); err != nil {
		return 0, err
	}
	eps := math.Inf(-1)
	for _, r := range reference {
		best := math.Inf(1)
		for _, f := range front {
			worst := math.Inf(-1)
			for k := range f {
				if d := f[k] - r[k]; d > worst {
					worst = d
				}
			}
			if worst < best {
				best = worst
			}
		}
		if best > eps {
			eps = best
		}
	}
	return eps, nil
}
