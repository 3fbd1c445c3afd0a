package benchmarks

import (
	"math"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

// DTLZ2 has a spherical Pareto front (sum of squared objectives = 1) and no
// local fronts, making it easier than DTLZ1.
type DTLZ2 struct {
	numVars       int
	numObjectives int
}

// NewDTLZ2 builds the problem. The recommended sizing is
// numVars = numObjectives + k - 1 with k = 10.
func NewDTLZ2(numVars, numObjectives int) *DTLZ2 {
	return &DTLZ2{numVars: numVars, numObjectives: numObjectives}
}

func (p *DTLZ2) Name() string { return "DTLZ2" }

func (p *DTLZ2) NumVariables() int { return p.numVars }

func (p *DTLZ2) LowerBounds() []float64 { return framework.UniformBounds(0, p.numVars) }

func (p *DTLZ2) UpperBounds() []float64 { return framework.UniformBounds(1, p.numVars) }

func (p *DTLZ2) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.numObjectives)
	for i := 0; i < p.numObjectives; i++ {
		idx := i
		funcs[i] = func(x []float64) float64 {
			return p.objective(x, idx)
		}
	}
	return funcs
}

func (p *DTLZ2) g(x []float64) float64 {
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2)
	}
	return sum
}

func (p *DTLZ2) objective(x []float64, objIdx int) float64 {
	f := 1 + p.g(x)

	for i := 0; i < p.numObjectives-objIdx-1; i++ {
		f *= math.Cos(x[i] * math.Pi / 2)
	}
	// Last term is sin for all objectives except the first.
	if objIdx > 0 {
		f *= math.Sin(x[p.numObjectives-objIdx-1] * math.Pi / 2)
	}
	return f
}

// TrueParetoFront samples the unit sphere octant for two or three
// objectives; higher dimensions return nil.
func (p *DTLZ2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	switch p.numObjectives {
	case 2:
		points := make([]framework.ObjectiveSpacePoint, numPoints)
		for i := 0; i < numPoints; i++ {
			theta := (math.Pi / 2) * float64(i) / float64(numPoints-1)
			points[i] = framework.ObjectiveSpacePoint{math.Cos(theta), math.Sin(theta)}
		}
		return points
	case 3:
		sqrtN := int(math.Sqrt(float64(numPoints)))
		points := make([]framework.ObjectiveSpacePoint, 0, sqrtN*sqrtN)
		for i := 0; i < sqrtN; i++ {
			theta := (math.Pi / 2) * float64(i) / float64(sqrtN-1)
			for j := 0; j < sqrtN; j++ {
				phi := (math.Pi / 2) * float64(j) / float64(sqrtN-1)
				points = append(points, framework.ObjectiveSpacePoint{
					math.Cos(theta) * math.Cos(phi),
					math.Sin(theta) * math.Cos(phi),
					math.Sin(phi),
				})
			}
		}
		return points
	}
	return nil
}
