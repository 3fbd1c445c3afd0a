package benchmarks

import (
	"math"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

// ZDT3 has a disconnected Pareto front due to the sine term in f2.
type ZDT3 struct {
	numVars int
}

func NewZDT3(numVars int) *ZDT3 {
	return &ZDT3{numVars: numVars}
}

func (p *ZDT3) Name() string { return "ZDT3" }

func (p *ZDT3) NumVariables() int { return p.numVars }

func (p *ZDT3) LowerBounds() []float64 { return framework.UniformBounds(0, p.numVars) }

func (p *ZDT3) UpperBounds() []float64 { return framework.UniformBounds(1, p.numVars) }

func (p *ZDT3) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT3) f1(x []float64) float64 {
	return x[0]
}

func (p *ZDT3) f2(x []float64) float64 {
	g := zdtG(x)
	h := 1.0 - math.Sqrt(x[0]/g) - (x[0]/g)*math.Sin(10*math.Pi*x[0])
	return g * h
}

// TrueParetoFront samples the disconnected front; enough points are needed to
// show the gaps.
func (p *ZDT3) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		f2 := 1.0 - math.Sqrt(x) - x*math.Sin(10*math.Pi*x)
		points[i] = framework.ObjectiveSpacePoint{x, f2}
	}
	return points
}
