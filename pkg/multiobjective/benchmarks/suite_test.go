package benchmarks

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

func TestSuiteRejectsEmptyRuns(t *testing.T) {
	s := NewSuite(framework.DefaultConfig(), 1)
	_, err := s.Run("")
	require.Error(t, err)

	s.AddStandardProblems()
	_, err = s.Run("")
	require.Error(t, err)
}

func TestSuiteSmoke(t *testing.T) {
	cfg := framework.Config{
		PopulationSize: 10,
		MaxIterations:  10,
		ArchiveMaxSize: 15,
		Seed:           1,
	}
	s := NewSuite(cfg, 2)
	s.Problems = append(s.Problems, NewZDT1(10))
	s.AddAlgorithms("mogwo", "mssa")

	outDir := t.TempDir()
	report, err := s.Run(outDir)
	require.NoError(t, err)
	require.Len(t, report.Summaries, 2)

	ranks := map[int]bool{}
	for _, sum := range report.Summaries {
		assert.Equal(t, "ZDT1", sum.Problem)
		assert.False(t, math.IsNaN(sum.MeanIGD), "%s has no IGD", sum.Algorithm)
		assert.Greater(t, sum.MeanIGD, 0.0)
		assert.GreaterOrEqual(t, sum.MeanSpacing, 0.0)
		assert.False(t, math.IsNaN(sum.MeanHV), "%s has no hypervolume", sum.Algorithm)
		assert.GreaterOrEqual(t, sum.MeanHV, 0.0)
		assert.Greater(t, sum.MeanElapsed.Nanoseconds(), int64(0))
		ranks[sum.Rank] = true

		_, statErr := os.Stat(filepath.Join(outDir, "ZDT1_"+sum.Algorithm+".html"))
		assert.NoError(t, statErr, "missing plot for %s", sum.Algorithm)
	}
	assert.Equal(t, map[int]bool{1: true, 2: true}, ranks)
}

func TestSuiteUnknownAlgorithm(t *testing.T) {
	s := NewSuite(framework.DefaultConfig(), 1)
	s.Problems = append(s.Problems, NewZDT1(10))
	s.AddAlgorithms("simulated-annealing")

	_, err := s.Run("")
	require.Error(t, err)
}

func TestRankByIGDSkipsUnknownFronts(t *testing.T) {
	summaries := []Summary{
		{Algorithm: "a", MeanIGD: 0.5},
		{Algorithm: "b", MeanIGD: math.NaN()},
		{Algorithm: "c", MeanIGD: 0.1},
	}
	rankByIGD(summaries)

	assert.Equal(t, 2, summaries[0].Rank)
	assert.Equal(t, 0, summaries[1].Rank)
	assert.Equal(t, 1, summaries[2].Rank)
}
