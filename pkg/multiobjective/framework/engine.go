package framework

import (
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"k8s.io/klog/v2"
)

// State carries everything a single run owns: the working population, its
// objective values, the Pareto archive, counters and the per-run random
// source. It is created when Run starts and discarded when Run returns; only
// the Result survives.
type State struct {
	Problem Problem
	Config  Config
	Archive *Archive

	// Population is the current set of decision vectors, Objectives the
	// matching objective values from the last evaluation.
	Population [][]float64
	Objectives []ObjectiveSpacePoint

	// Iteration counts completed generations.
	Iteration int

	// RNG is the per-run random source; runs never share one.
	RNG *rand.Rand

	evaluations atomic.Int64
	moved       bool
	curve       []float64
}

// TotalEvaluations returns the number of objective-vector evaluations so far.
// The counter increases by exactly one per evaluated individual and never
// decreases.
func (s *State) TotalEvaluations() int64 { return s.evaluations.Load() }

// Progress returns the completed fraction of the iteration budget in [0, 1].
func (s *State) Progress() float64 {
	return float64(s.Iteration) / float64(s.Config.MaxIterations)
}

// MarkMoved records that the population changed since its last evaluation,
// so the next SyncArchive re-evaluates before touching the archive.
func (s *State) MarkMoved() { s.moved = true }

// Evaluate runs every objective function on x, counting one evaluation.
// A NaN or infinite objective value is fatal for the run: letting it reach
// the archive would corrupt dominance comparisons silently.
func (s *State) Evaluate(x []float64) (ObjectiveSpacePoint, error) {
	funcs := s.Problem.ObjectiveFuncs()
	point := make(ObjectiveSpacePoint, len(funcs))
	for i, f := range funcs {
		point[i] = f(x)
	}
	s.evaluations.Add(1)

	for i, v := range point {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &EvaluationError{Objective: i, Value: v}
		}
	}
	return point, nil
}

// EvaluatePopulation evaluates every population member, sequentially or on a
// worker pool when Config.Parallel is set. Parallel evaluation is safe
// because objective functions are pure and the archive is not touched here.
func (s *State) EvaluatePopulation() error {
	if len(s.Objectives) != len(s.Population) {
		s.Objectives = make([]ObjectiveSpacePoint, len(s.Population))
	}

	if !s.Config.Parallel {
		for i, x := range s.Population {
			point, err := s.Evaluate(x)
			if err != nil {
				return fmt.Errorf("individual %d: %w", i, err)
			}
			s.Objectives[i] = point
		}
		s.moved = false
		return nil
	}

	numWorkers := runtime.NumCPU()
	work := make(chan int, len(s.Population))
	errs := make([]error, len(s.Population))
	wg := &sync.WaitGroup{}
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				point, err := s.Evaluate(s.Population[i])
				if err != nil {
					errs[i] = fmt.Errorf("individual %d: %w", i, err)
					continue
				}
				s.Objectives[i] = point
			}
		}()
	}
	for i := range s.Population {
		work <- i
	}
	close(work)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	s.moved = false
	return nil
}

// SyncArchive re-evaluates the population if it moved since the last
// evaluation and folds it into the archive. Every algorithm's Iterate starts
// with this call, so the archive always reflects the current generation
// before guides are drawn.
func (s *State) SyncArchive() error {
	if s.moved {
		if err := s.EvaluatePopulation(); err != nil {
			return err
		}
	}
	s.Archive.Update(s.Population, s.Objectives)
	return nil
}

type runOptions struct {
	halt        func(*State) bool
	archiveOpts []ArchiveOption
}

// RunOption customizes the fixed run loop.
type RunOption func(*runOptions)

// WithHaltFunc installs an early-stop predicate checked once per iteration at
// the lifecycle boundary, in addition to the MaxIterations ceiling. A halted
// run still returns a valid Result; its convergence curve is shorter than
// MaxIterations.
func WithHaltFunc(halt func(*State) bool) RunOption {
	return func(o *runOptions) { o.halt = halt }
}

// WithArchiveOptions forwards options to the run's archive, e.g. a grid
// density estimator.
func WithArchiveOptions(opts ...ArchiveOption) RunOption {
	return func(o *runOptions) { o.archiveOpts = append(o.archiveOpts, opts...) }
}

// Run executes the fixed lifecycle shared by every algorithm: validate the
// problem, initialize, iterate until the stop condition, collect the result.
// Algorithms supply the Initialize and Iterate hooks; the loop itself is not
// overridable. Any failure inside the loop is returned as a *RunError
// carrying the iteration count and elapsed time; there is no partial result.
func Run(algo Algorithm, problem Problem, opts ...RunOption) (*Result, error) {
	var ro runOptions
	for _, opt := range opts {
		opt(&ro)
	}

	if err := validateProblem(problem); err != nil {
		return nil, err
	}
	cfg := algo.Config()

	archive, err := NewArchive(cfg.ArchiveMaxSize, ro.archiveOpts...)
	if err != nil {
		return nil, err
	}

	state := &State{
		Problem: problem,
		Config:  cfg,
		Archive: archive,
		RNG:     rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		curve:   make([]float64, 0, cfg.MaxIterations),
	}

	start := time.Now()
	if err := algo.Initialize(state); err != nil {
		return nil, &RunError{Algorithm: algo.Name(), Elapsed: time.Since(start), Err: err}
	}

	for state.Iteration < cfg.MaxIterations {
		if ro.halt != nil && ro.halt(state) {
			klog.V(2).InfoS("run halted early", "algorithm", algo.Name(), "iteration", state.Iteration)
			break
		}
		if err := algo.Iterate(state); err != nil {
			return nil, &RunError{
				Algorithm: algo.Name(),
				Iteration: state.Iteration,
				Elapsed:   time.Since(start),
				Err:       err,
			}
		}
		state.Iteration++
		state.curve = append(state.curve, float64(archive.Len()))

		if cfg.Verbose {
			klog.InfoS("iteration complete",
				"algorithm", algo.Name(),
				"iteration", state.Iteration,
				"archiveSize", archive.Len(),
				"evaluations", state.TotalEvaluations())
		}
	}

	elapsed := time.Since(start)
	klog.V(2).InfoS("run complete",
		"algorithm", algo.Name(),
		"problem", problem.Name(),
		"iterations", state.Iteration,
		"evaluations", state.TotalEvaluations(),
		"archiveSize", archive.Len(),
		"elapsed", elapsed)

	return newResult(algo.Name(), state, elapsed), nil
}
