package benchmarks

import (
	"math"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

// DTLZ1 scales to any number of objectives. It has a linear Pareto front
// (sum of objectives = 0.5) and many local fronts that trap weak algorithms.
type DTLZ1 struct {
	numVars       int
	numObjectives int
}

// NewDTLZ1 builds the problem. The recommended sizing is
// numVars = numObjectives + k - 1 with k = 5.
func NewDTLZ1(numVars, numObjectives int) *DTLZ1 {
	return &DTLZ1{numVars: numVars, numObjectives: numObjectives}
}

func (p *DTLZ1) Name() string { return "DTLZ1" }

func (p *DTLZ1) NumVariables() int { return p.numVars }

func (p *DTLZ1) LowerBounds() []float64 { return framework.UniformBounds(0, p.numVars) }

func (p *DTLZ1) UpperBounds() []float64 { return framework.UniformBounds(1, p.numVars) }

func (p *DTLZ1) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.numObjectives)
	for i := 0; i < p.numObjectives; i++ {
		idx := i
		funcs[i] = func(x []float64) float64 {
			return p.objective(x, idx)
		}
	}
	return funcs
}

func (p *DTLZ1) g(x []float64) float64 {
	k := p.numVars - p.numObjectives + 1
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2) - math.Cos(20*math.Pi*(x[i]-0.5))
	}
	return 100 * (float64(k) + sum)
}

func (p *DTLZ1) objective(x []float64, objIdx int) float64 {
	f := 0.5 * (1 + p.g(x))
	for i := 0; i < p.numObjectives-objIdx-1; i++ {
		f *= x[i]
	}
	if objIdx > 0 {
		f *= 1 - x[p.numObjectives-objIdx-1]
	}
	return f
}

// TrueParetoFront is generated for the two-objective case only: a line from
// (0, 0.5) to (0.5, 0). Higher dimensions return nil.
func (p *DTLZ1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	if p.numObjectives != 2 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		t := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{0.5 * t, 0.5 * (1 - t)}
	}
	return points
}
