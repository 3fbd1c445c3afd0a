package framework

import "time"

// Metadata identifies the run that produced a Result.
type Metadata struct {
	Algorithm   string
	Iterations  int
	Config      Config
	ArchiveSize int
}

// Result is the immutable record of a completed run: the terminal Pareto set
// and front, the convergence curve (archive size per iteration), the
// evaluation budget spent and the wall-clock time.
type Result struct {
	ParetoSet        [][]float64
	ParetoFront      []ObjectiveSpacePoint
	NumObjectives    int
	ConvergenceCurve []float64
	TotalEvaluations int64
	ElapsedTime      time.Duration
	Metadata         Metadata
}

func newResult(algorithm string, s *State, elapsed time.Duration) *Result {
	set, front := s.Archive.All()
	curve := make([]float64, len(s.curve))
	copy(curve, s.curve)

	return &Result{
		ParetoSet:        set,
		ParetoFront:      front,
		NumObjectives:    len(s.Problem.ObjectiveFuncs()),
		ConvergenceCurve: curve,
		TotalEvaluations: s.TotalEvaluations(),
		ElapsedTime:      elapsed,
		Metadata: Metadata{
			Algorithm:   algorithm,
			Iterations:  s.Iteration,
			Config:      s.Config,
			ArchiveSize: s.Archive.Len(),
		},
	}
}
