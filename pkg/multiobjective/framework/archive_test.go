package framework

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArchive(t *testing.T, maxSize int, opts ...ArchiveOption) *Archive {
	t.Helper()
	a, err := NewArchive(maxSize, opts...)
	require.NoError(t, err)
	return a
}

func solutionsFor(points []ObjectiveSpacePoint) [][]float64 {
	solutions := make([][]float64, len(points))
	for i := range points {
		solutions[i] = []float64{float64(i)}
	}
	return solutions
}

func requireInvariants(t *testing.T, a *Archive) {
	t.Helper()
	require.LessOrEqual(t, a.Len(), a.Capacity(), "capacity invariant violated")
	_, points := a.All()
	for i := range points {
		for j := range points {
			if i != j {
				require.False(t, Dominates(points[i], points[j]),
					"archive holds dominated entries: %v dominates %v", points[i], points[j])
			}
		}
	}
}

func TestNewArchiveRejectsInvalidCapacity(t *testing.T) {
	_, err := NewArchive(0)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestArchiveDominatedCandidateDropped(t *testing.T) {
	a := newTestArchive(t, 10)
	points := []ObjectiveSpacePoint{{1, 2}, {2, 3}}
	a.Update(solutionsFor(points), points)

	assert.Equal(t, 1, a.Len())
	_, front := a.All()
	assert.Equal(t, ObjectiveSpacePoint{1, 2}, front[0])
	requireInvariants(t, a)
}

func TestArchiveKeepsTradeOffs(t *testing.T) {
	a := newTestArchive(t, 10)
	points := []ObjectiveSpacePoint{{1, 3}, {3, 1}}
	a.Update(solutionsFor(points), points)

	assert.Equal(t, 2, a.Len())
	_, front := a.All()
	assert.False(t, Dominates(front[0], front[1]))
	assert.False(t, Dominates(front[1], front[0]))
	requireInvariants(t, a)
}

func TestArchiveNewEntryEvictsDominated(t *testing.T) {
	a := newTestArchive(t, 10)
	first := []ObjectiveSpacePoint{{1, 3}, {3, 1}, {2, 2}}
	a.Update(solutionsFor(first), first)
	require.Equal(t, 3, a.Len())

	// Dominates everything stored so far.
	a.Update([][]float64{{9}}, []ObjectiveSpacePoint{{0, 0}})
	assert.Equal(t, 1, a.Len())
	_, front := a.All()
	assert.Equal(t, ObjectiveSpacePoint{0, 0}, front[0])
	requireInvariants(t, a)
}

func TestArchiveEmptyUpdateIsIdempotent(t *testing.T) {
	a := newTestArchive(t, 10)
	points := []ObjectiveSpacePoint{{1, 3}, {2, 2}, {3, 1}}
	a.Update(solutionsFor(points), points)

	beforeSet, beforeFront := a.All()
	a.Update(nil, nil)
	afterSet, afterFront := a.All()

	if diff := cmp.Diff(beforeSet, afterSet); diff != "" {
		t.Errorf("solutions changed after empty update (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(beforeFront, afterFront); diff != "" {
		t.Errorf("front changed after empty update (-before +after):\n%s", diff)
	}
}

func TestArchiveUpdatePanicsOnMismatchedBatch(t *testing.T) {
	a := newTestArchive(t, 10)
	assert.Panics(t, func() {
		a.Update([][]float64{{1}}, nil)
	})
}

// Fifteen mutually non-dominated points in one batch against capacity ten:
// the crowded cluster loses five of its six members, the spread points all
// survive.
func TestArchiveOverflowEvictsMostCrowded(t *testing.T) {
	var points []ObjectiveSpacePoint
	for k := 0; k <= 80; k += 10 { // nine spread points on f1 + f2 = 0
		points = append(points, ObjectiveSpacePoint{float64(k), -float64(k)})
	}
	for j := 0; j <= 5; j++ { // six clustered points on the same line
		k := 100 + 0.1*float64(j)
		points = append(points, ObjectiveSpacePoint{k, -k})
	}
	require.Len(t, points, 15)

	a := newTestArchive(t, 10)
	a.Update(solutionsFor(points), points)

	require.Equal(t, 10, a.Len())
	requireInvariants(t, a)

	_, front := a.All()
	spread, cluster := 0, 0
	for _, p := range front {
		if p[0] >= 100 {
			cluster++
		} else {
			spread++
		}
	}
	assert.Equal(t, 9, spread, "no spread point should be evicted")
	assert.Equal(t, 1, cluster, "exactly one cluster point should survive")
	// Ties break toward the earliest-inserted entry, so the survivor is the
	// cluster point inserted last.
	assert.Equal(t, ObjectiveSpacePoint{100.5, -100.5}, front[9])
}

func TestArchiveInvariantsUnderRandomUpdates(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	a := newTestArchive(t, 15)

	for batch := 0; batch < 50; batch++ {
		n := 1 + rng.IntN(8)
		points := make([]ObjectiveSpacePoint, n)
		for i := range points {
			points[i] = ObjectiveSpacePoint{rng.Float64() * 10, rng.Float64() * 10}
		}
		a.Update(solutionsFor(points), points)
		requireInvariants(t, a)
	}
	assert.Greater(t, a.Len(), 0)
}

func TestArchiveSelect(t *testing.T) {
	t.Run("empty archive", func(t *testing.T) {
		a := newTestArchive(t, 10)
		_, ok := a.Select(nil, true)
		assert.False(t, ok)
	})

	t.Run("single entry needs no randomness", func(t *testing.T) {
		a := newTestArchive(t, 10)
		a.Update([][]float64{{1}}, []ObjectiveSpacePoint{{1, 1}})
		// A nil source proves the random source is never consulted.
		idx, ok := a.Select(nil, true)
		require.True(t, ok)
		assert.Equal(t, 0, idx)
	})

	t.Run("sparse preference favors isolated entries", func(t *testing.T) {
		// Two near-duplicates and one isolated point.
		points := []ObjectiveSpacePoint{{0, 10}, {0.01, 9.99}, {10, 0}}
		a := newTestArchive(t, 10)
		a.Update(solutionsFor(points), points)

		rng := rand.New(rand.NewPCG(3, 5))
		counts := make([]int, 3)
		for i := 0; i < 3000; i++ {
			idx, ok := a.Select(rng, true)
			require.True(t, ok)
			counts[idx]++
		}
		assert.Greater(t, counts[2], counts[0], "isolated entry should be drawn most often: %v", counts)
		assert.Greater(t, counts[2], counts[1], "isolated entry should be drawn most often: %v", counts)

		dense := make([]int, 3)
		for i := 0; i < 3000; i++ {
			idx, ok := a.Select(rng, false)
			require.True(t, ok)
			dense[idx]++
		}
		assert.Greater(t, dense[0], dense[2], "crowded entries should be drawn most often: %v", dense)
	})

	t.Run("exclusion is honored", func(t *testing.T) {
		points := []ObjectiveSpacePoint{{1, 3}, {2, 2}, {3, 1}}
		a := newTestArchive(t, 10)
		a.Update(solutionsFor(points), points)

		rng := rand.New(rand.NewPCG(1, 1))
		exclude := map[int]bool{0: true, 2: true}
		for i := 0; i < 100; i++ {
			idx, ok := a.SelectExcluding(rng, true, exclude)
			require.True(t, ok)
			assert.Equal(t, 1, idx)
		}

		exclude[1] = true
		_, ok := a.SelectExcluding(rng, true, exclude)
		assert.False(t, ok)
	})
}

func TestArchiveAllReturnsCopies(t *testing.T) {
	a := newTestArchive(t, 10)
	a.Update([][]float64{{1, 2}}, []ObjectiveSpacePoint{{1, 1}})

	set, front := a.All()
	set[0][0] = 99
	front[0][0] = 99

	set2, front2 := a.All()
	assert.Equal(t, 1.0, set2[0][0], "caller mutation must not reach the archive")
	assert.Equal(t, 1.0, front2[0][0], "caller mutation must not reach the archive")
}

func TestArchiveWithGridDensityHoldsInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 9))
	a := newTestArchive(t, 12, WithDensityEstimator(GridDensity{NGrid: 8, Alpha: 0.1}))

	for batch := 0; batch < 30; batch++ {
		points := make([]ObjectiveSpacePoint, 6)
		for i := range points {
			points[i] = ObjectiveSpacePoint{rng.Float64(), rng.Float64()}
		}
		a.Update(solutionsFor(points), points)
		requireInvariants(t, a)
	}
}
