package algorithms

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

// guideState builds a minimal run state whose archive holds the given
// objective points, each tagged with a distinguishable one-dimensional
// solution.
func guideState(t *testing.T, points []framework.ObjectiveSpacePoint) *framework.State {
	t.Helper()
	archive, err := framework.NewArchive(10)
	require.NoError(t, err)

	solutions := make([][]float64, len(points))
	for i := range points {
		solutions[i] = []float64{float64(i)}
	}
	archive.Update(solutions, points)
	require.Equal(t, len(points), archive.Len())

	// Every evaluated point is dominated by every archived one, so syncing
	// the population never disturbs the archive contents under test.
	problem := framework.NewFuncProblem("guide", 1,
		framework.UniformBounds(0, 1), framework.UniformBounds(float64(len(points)), 1),
		[]framework.ObjectiveFunc{
			func(x []float64) float64 { return x[0] + 10 },
			func(x []float64) float64 { return 10 },
		})

	return &framework.State{
		Problem: problem,
		Config: framework.Config{
			PopulationSize: 10,
			MaxIterations:  10,
			ArchiveMaxSize: 10,
		},
		Archive: archive,
		RNG:     rand.New(rand.NewPCG(5, 5)),
	}
}

func TestDrawLeadersAreDistinct(t *testing.T) {
	s := guideState(t, []framework.ObjectiveSpacePoint{{1, 3}, {2, 2}, {3, 1}})

	for trial := 0; trial < 50; trial++ {
		leaders, err := drawLeaders(s)
		require.NoError(t, err)
		require.Len(t, leaders, 3)

		seen := map[float64]bool{}
		for _, leader := range leaders {
			seen[leader[0]] = true
		}
		assert.Len(t, seen, 3, "leaders must be three distinct archive entries")
	}
}

func TestDrawLeadersFallsBackOnSmallArchive(t *testing.T) {
	s := guideState(t, []framework.ObjectiveSpacePoint{{1, 1}})

	leaders, err := drawLeaders(s)
	require.NoError(t, err)
	require.Len(t, leaders, 3)
	for _, leader := range leaders {
		assert.Equal(t, 0.0, leader[0])
	}
}

// The per-generation guides must survive a full Iterate even when the
// archive offers a single entry: MOGWO reuses it for all three leaders and
// MOALO anchors both walks on it.
func TestIterateWithSingleEntryArchive(t *testing.T) {
	cfg := framework.Config{
		PopulationSize: 10,
		MaxIterations:  10,
		ArchiveMaxSize: 10,
	}

	mogwo, err := NewMOGWO(cfg)
	require.NoError(t, err)
	moalo, err := NewMOALO(cfg)
	require.NoError(t, err)

	for name, algo := range map[string]framework.Algorithm{
		MOGWOName: mogwo,
		MOALOName: moalo,
	} {
		t.Run(name, func(t *testing.T) {
			s := guideState(t, []framework.ObjectiveSpacePoint{{0.5, -0.5}})
			require.NoError(t, algo.Initialize(s))
			require.NoError(t, algo.Iterate(s))
			require.Equal(t, 1, s.Archive.Len())

			lower, upper := s.Problem.LowerBounds(), s.Problem.UpperBounds()
			for _, x := range s.Population {
				for j, v := range x {
					assert.GreaterOrEqual(t, v, lower[j])
					assert.LessOrEqual(t, v, upper[j])
				}
			}
		})
	}
}
