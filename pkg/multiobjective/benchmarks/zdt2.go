package benchmarks

import (
	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

// ZDT2 is the non-convex counterpart of ZDT1.
type ZDT2 struct {
	numVars int
}

func NewZDT2(numVars int) *ZDT2 {
	return &ZDT2{numVars: numVars}
}

func (p *ZDT2) Name() string { return "ZDT2" }

func (p *ZDT2) NumVariables() int { return p.numVars }

func (p *ZDT2) LowerBounds() []float64 { return framework.UniformBounds(0, p.numVars) }

func (p *ZDT2) UpperBounds() []float64 { return framework.UniformBounds(1, p.numVars) }

func (p *ZDT2) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT2) f1(x []float64) float64 {
	return x[0]
}

func (p *ZDT2) f2(x []float64) float64 {
	g := zdtG(x)
	ratio := x[0] / g
	return g * (1.0 - ratio*ratio)
}

// TrueParetoFront generates numPoints points on the true front, f2 = 1 - f1^2.
func (p *ZDT2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{x, 1.0 - x*x}
	}
	return points
}
