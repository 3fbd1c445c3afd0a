package metrics

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

// Hypervolume computes the exact objective-space volume dominated by the
// front and bounded by the reference point, for two objectives. Points that
// do not dominate the reference point contribute nothing. Higher is better.
func Hypervolume(front []framework.ObjectiveSpacePoint, reference framework.ObjectiveSpacePoint) (float64, error) {
	m, err := validateFronts(front)
	if err != nil {
		return 0, err
	}
	if m != 2 {
		return 0, fmt.Errorf("metrics: exact hypervolume supports 2 objectives, got %d; use HypervolumeMonteCarlo", m)
	}
	if len(reference) != m {
		return 0, fmt.Errorf("metrics: reference point has %d objectives, front has %d", len(reference), m)
	}

	// Keep the non-dominated points strictly inside the reference box; the
	// rest add no volume.
	var points []framework.ObjectiveSpacePoint
	for _, i := range framework.NonDominatedFront(front) {
		p := front[i]
		if p[0] < reference[0] && p[1] < reference[1] {
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		return 0, nil
	}

	// Sorted by f1 ascending, a non-dominated 2-D front has f2 strictly
	// descending, so the volume is a staircase of disjoint slabs.
	sort.Slice(points, func(i, j int) bool { return points[i][0] < points[j][0] })

	hv := 0.0
	for i, p := range points {
		right := reference[0]
		if i+1 < len(points) {
			right = points[i+1][0]
		}
		hv += (right - p[0]) * (reference[1] - p[1])
	}
	return hv, nil
}

// HypervolumeMonteCarlo estimates the dominated volume for any objective
// count by sampling the box spanned by the front's ideal point and the
// reference point. The estimate converges to the exact value as samples grow;
// pass the run's random source for reproducibility.
func HypervolumeMonteCarlo(front []framework.ObjectiveSpacePoint, reference framework.ObjectiveSpacePoint, samples int, rng *rand.Rand) (float64, error) {
	m, err := validateFronts(front)
	if err != nil {
		return 0, err
	}
	if len(reference) != m {
		return 0, fmt.Errorf("metrics: reference point has %d objectives, front has %d", len(reference), m)
	}
	if samples < 1 {
		return 0, fmt.Errorf("metrics: sample count must be positive, got %d", samples)
	}

	ideal := make([]float64, m)
	copy(ideal, front[0])
	for _, p := range front {
		for k := range p {
			if p[k] < ideal[k] {
				ideal[k] = p[k]
			}
		}
	}

	volume := 1.0
	for k := 0; k < m; k++ {
		if reference[k] <= ideal[k] {
			return 0, nil
		}
		volume *= reference[k] - ideal[k]
	}

	sample := make(framework.ObjectiveSpacePoint, m)
	hits := 0
	for i := 0; i < samples; i++ {
		for k := 0; k < m; k++ {
			sample[k] = ideal[k] + rng.Float64()*(reference[k]-ideal[k])
		}
		for _, p := range front {
			if framework.WeaklyDominates(p, sample) {
				hits++
				break
			}
		}
	}
	return volume * float64(hits) / float64(samples), nil
}
