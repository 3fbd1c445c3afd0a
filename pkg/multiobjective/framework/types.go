package framework

import "fmt"

// ObjectiveFunc evaluates a single objective for a decision vector.
// All objectives are minimized.
type ObjectiveFunc func(x []float64) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Problem describes the contract a specific multi-objective problem needs to implement.
type Problem interface {
	Name() string

	NumVariables() int
	LowerBounds() []float64
	UpperBounds() []float64

	ObjectiveFuncs() []ObjectiveFunc

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// Algorithm is the hook set a metaheuristic implements. The fixed run loop
// lives in Run: the algorithm owns initialization and a single generation of
// movement, the engine owns validation, iteration counting, convergence
// recording and result collection.
type Algorithm interface {
	Name() string
	Config() Config

	Initialize(*State) error
	Iterate(*State) error
}

// FuncProblem adapts a raw evaluation contract (dimension, bounds, objective
// functions) to the Problem interface, for callers that don't want to define
// a problem type of their own.
type FuncProblem struct {
	ID         string
	Dim        int
	Lower      []float64
	Upper      []float64
	Objectives []ObjectiveFunc
}

// NewFuncProblem builds an ad-hoc problem. Bounds are per-dimension slices of
// length dim; use UniformBounds to broadcast a scalar bound.
func NewFuncProblem(id string, dim int, lower, upper []float64, objectives []ObjectiveFunc) *FuncProblem {
	return &FuncProblem{
		ID:         id,
		Dim:        dim,
		Lower:      lower,
		Upper:      upper,
		Objectives: objectives,
	}
}

// UniformBounds broadcasts a scalar bound to all dim dimensions.
func UniformBounds(v float64, dim int) []float64 {
	b := make([]float64, dim)
	for i := range b {
		b[i] = v
	}
	return b
}

func (p *FuncProblem) Name() string { return p.ID }

func (p *FuncProblem) NumVariables() int { return p.Dim }

func (p *FuncProblem) LowerBounds() []float64 { return p.Lower }

func (p *FuncProblem) UpperBounds() []float64 { return p.Upper }

func (p *FuncProblem) ObjectiveFuncs() []ObjectiveFunc { return p.Objectives }

func (p *FuncProblem) TrueParetoFront(int) []ObjectiveSpacePoint { return nil }

func clonePoint(p ObjectiveSpacePoint) ObjectiveSpacePoint {
	out := make(ObjectiveSpacePoint, len(p))
	copy(out, p)
	return out
}

func cloneVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

func validateProblem(p Problem) error {
	dim := p.NumVariables()
	if dim < 1 {
		return &ProblemError{Problem: p.Name(), Reason: fmt.Sprintf("dimension must be at least 1, got %d", dim)}
	}
	lower, upper := p.LowerBounds(), p.UpperBounds()
	if len(lower) != dim || len(upper) != dim {
		return &ProblemError{
			Problem: p.Name(),
			Reason:  fmt.Sprintf("bounds must match dimension %d, got %d lower and %d upper", dim, len(lower), len(upper)),
		}
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return &ProblemError{
				Problem: p.Name(),
				Reason:  fmt.Sprintf("lower bound %g exceeds upper bound %g at dimension %d", lower[i], upper[i], i),
			}
		}
	}
	objs := p.ObjectiveFuncs()
	if len(objs) < 1 {
		return &ProblemError{Problem: p.Name(), Reason: "at least one objective function is required"}
	}
	for i, f := range objs {
		if f == nil {
			return &ProblemError{Problem: p.Name(), Reason: fmt.Sprintf("objective function %d is nil", i)}
		}
	}
	return nil
}
