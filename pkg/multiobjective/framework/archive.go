package framework

import (
	"fmt"
	"math/rand/v2"
)

// Entry pairs a decision vector with its objective values. Entries have no
// identity beyond their content; duplicates by value are permitted.
type Entry struct {
	Solution   []float64
	Objectives ObjectiveSpacePoint
}

// Archive is a bounded container of mutually non-dominated solutions. Two
// invariants hold after every mutating operation: no stored point dominates
// another, and the size never exceeds the capacity. Entries keep insertion
// order so eviction tie-breaking is reproducible.
type Archive struct {
	maxSize   int
	estimator DensityEstimator
	entries   []Entry
	density   []float64
}

// ArchiveOption customizes archive construction.
type ArchiveOption func(*Archive)

// WithDensityEstimator replaces the default exact NeighborhoodDensity
// estimator, e.g. with GridDensity for large archives.
func WithDensityEstimator(est DensityEstimator) ArchiveOption {
	return func(a *Archive) {
		a.estimator = est
	}
}

// NewArchive creates an empty archive with the given capacity.
func NewArchive(maxSize int, opts ...ArchiveOption) (*Archive, error) {
	if maxSize < 1 {
		return nil, &ConfigError{Field: "ArchiveMaxSize", Reason: intAtLeast(maxSize, 1)}
	}
	a := &Archive{
		maxSize:   maxSize,
		estimator: NeighborhoodDensity{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *Archive) Len() int { return len(a.entries) }

func (a *Archive) Capacity() int { return a.maxSize }

// Entry returns a copy of the i-th archived entry.
func (a *Archive) Entry(i int) Entry {
	e := a.entries[i]
	return Entry{Solution: cloneVector(e.Solution), Objectives: clonePoint(e.Objectives)}
}

// All returns copies of the archived solutions and their objective vectors,
// in insertion order. Both slices are empty for an empty archive.
func (a *Archive) All() ([][]float64, []ObjectiveSpacePoint) {
	solutions := make([][]float64, len(a.entries))
	objectives := make([]ObjectiveSpacePoint, len(a.entries))
	for i, e := range a.entries {
		solutions[i] = cloneVector(e.Solution)
		objectives[i] = clonePoint(e.Objectives)
	}
	return solutions, objectives
}

// Densities returns a copy of the current density scores, parallel to All.
func (a *Archive) Densities() []float64 {
	out := make([]float64, len(a.density))
	copy(out, a.density)
	return out
}

// Update merges a batch of solutions into the archive: candidates dominated
// by the archive are dropped, archived entries dominated by a candidate are
// removed, then density is recomputed and overflow evicted. Candidates are
// inserted one at a time against the already non-dominated contents, which
// yields the same set as recomputing the full front over the union without
// the O((n+k)^2) merge.
func (a *Archive) Update(solutions [][]float64, objectives []ObjectiveSpacePoint) {
	if len(solutions) != len(objectives) {
		panic(fmt.Sprintf("archive: %d solutions but %d objective vectors", len(solutions), len(objectives)))
	}
	if len(solutions) == 0 {
		return
	}
	for i := range solutions {
		a.insert(solutions[i], objectives[i])
	}
	a.refreshDensity()
	a.evictOverflow()
}

func (a *Archive) insert(solution []float64, objectives ObjectiveSpacePoint) {
	for _, e := range a.entries {
		if Dominates(e.Objectives, objectives) {
			return
		}
	}

	// The candidate survives; drop everything it dominates, keeping order.
	kept := a.entries[:0]
	for _, e := range a.entries {
		if !Dominates(objectives, e.Objectives) {
			kept = append(kept, e)
		}
	}
	a.entries = append(kept, Entry{
		Solution:   cloneVector(solution),
		Objectives: clonePoint(objectives),
	})
}

// evictOverflow removes the most crowded entry until the archive fits its
// capacity, recomputing density after every single removal since density is
// a function of the remaining set. Ties go to the earliest-inserted entry.
func (a *Archive) evictOverflow() {
	for len(a.entries) > a.maxSize {
		victim := 0
		for i, d := range a.density {
			if d > a.density[victim] {
				victim = i
			}
		}
		a.entries = append(a.entries[:victim], a.entries[victim+1:]...)
		a.refreshDensity()
	}
}

func (a *Archive) refreshDensity() {
	a.density = a.estimator.Scores(a.points())
}

func (a *Archive) points() []ObjectiveSpacePoint {
	points := make([]ObjectiveSpacePoint, len(a.entries))
	for i, e := range a.entries {
		points[i] = e.Objectives
	}
	return points
}

// Select draws one entry index by density-weighted roulette. With
// preferSparse the weight of entry i is 1/(density_i+1), favoring isolated
// regions of the front; otherwise it is density_i+1, favoring crowded ones.
// Returns false for an empty archive; a single entry is returned without
// consulting the random source.
func (a *Archive) Select(rng *rand.Rand, preferSparse bool) (int, bool) {
	return a.selectWeighted(rng, preferSparse, nil)
}

// SelectExcluding behaves like Select but never returns an excluded index.
// Returns false when no candidate remains.
func (a *Archive) SelectExcluding(rng *rand.Rand, preferSparse bool, exclude map[int]bool) (int, bool) {
	return a.selectWeighted(rng, preferSparse, exclude)
}

func (a *Archive) selectWeighted(rng *rand.Rand, preferSparse bool, exclude map[int]bool) (int, bool) {
	candidates := make([]int, 0, len(a.entries))
	for i := range a.entries {
		if !exclude[i] {
			candidates = append(candidates, i)
		}
	}
	switch len(candidates) {
	case 0:
		return 0, false
	case 1:
		return candidates[0], true
	}

	weights := make([]float64, len(candidates))
	total := 0.0
	for i, idx := range candidates {
		w := a.density[idx] + 1
		if preferSparse {
			w = 1 / w
		}
		weights[i] = w
		total += w
	}

	// Cumulative-sum inversion against one uniform draw.
	u := rng.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if u <= cum {
			return candidates[i], true
		}
	}
	return candidates[len(candidates)-1], true
}
