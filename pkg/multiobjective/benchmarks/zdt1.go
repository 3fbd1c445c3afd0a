// Package benchmarks contains standard synthetic problems used to validate
// multi-objective algorithms against known Pareto fronts.
package benchmarks

import (
	"math"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

// ZDT1 is a two-objective benchmark with a convex Pareto front.
// https://datacrayon.com/practical-evolutionary-algorithms/synthetic-objective-functions-and-zdt1/
type ZDT1 struct {
	numVars int
}

func NewZDT1(numVars int) *ZDT1 {
	return &ZDT1{numVars: numVars}
}

func (p *ZDT1) Name() string { return "ZDT1" }

func (p *ZDT1) NumVariables() int { return p.numVars }

func (p *ZDT1) LowerBounds() []float64 { return framework.UniformBounds(0, p.numVars) }

func (p *ZDT1) UpperBounds() []float64 { return framework.UniformBounds(1, p.numVars) }

func (p *ZDT1) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT1) f1(x []float64) float64 {
	return x[0]
}

func (p *ZDT1) f2(x []float64) float64 {
	g := zdtG(x)
	return g * (1.0 - math.Sqrt(x[0]/g))
}

// zdtG is the distance function shared by the ZDT family:
// g(x) = 1 + 9 * mean(x_1..x_{n-1}).
func zdtG(x []float64) float64 {
	g := 1.0
	for i := 1; i < len(x); i++ {
		g += 9.0 * x[i] / float64(len(x)-1)
	}
	return g
}

// TrueParetoFront generates numPoints points on the true Pareto front,
// f2 = 1 - sqrt(f1).
func (p *ZDT1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{x, 1.0 - math.Sqrt(x)}
	}
	return points
}
