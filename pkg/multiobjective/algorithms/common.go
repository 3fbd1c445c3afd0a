package algorithms

import (
	"math"
	"math/rand/v2"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

// initPopulation fills the state with a uniform random population inside the
// problem bounds and marks it for evaluation.
func initPopulation(s *framework.State) {
	dim := s.Problem.NumVariables()
	lower, upper := s.Problem.LowerBounds(), s.Problem.UpperBounds()

	population := make([][]float64, s.Config.PopulationSize)
	for i := range population {
		x := make([]float64, dim)
		for j := range x {
			x[j] = lower[j] + s.RNG.Float64()*(upper[j]-lower[j])
		}
		population[i] = x
	}
	s.Population = population
	s.MarkMoved()
}

// clamp clips x into [lower, upper] component-wise. Hard clip, not
// reflection.
func clamp(x, lower, upper []float64) {
	for j := range x {
		if x[j] < lower[j] {
			x[j] = lower[j]
		} else if x[j] > upper[j] {
			x[j] = upper[j]
		}
	}
}

// snapshot copies the population matrix so movement rules that read all
// pairwise positions are not affected by in-place updates.
func snapshot(population [][]float64) [][]float64 {
	out := make([][]float64, len(population))
	for i, x := range population {
		out[i] = make([]float64, len(x))
		copy(out[i], x)
	}
	return out
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for j := range a {
		d := a[j] - b[j]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// levyStep draws a Mantegna Levy-flight step with beta = 1.5.
func levyStep(rng *rand.Rand, dim int) []float64 {
	const beta = 1.5
	sigma := math.Pow(
		math.Gamma(1+beta)*math.Sin(math.Pi*beta/2)/
			(math.Gamma((1+beta)/2)*beta*math.Pow(2, (beta-1)/2)),
		1/beta)

	step := make([]float64, dim)
	for j := range step {
		u := rng.NormFloat64() * sigma
		v := rng.NormFloat64()
		step[j] = 0.01 * u / math.Pow(math.Abs(v), 1/beta)
	}
	return step
}
