package benchmarks

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
	"k8s.io/klog/v2"

	"github.com/metaopt/metaheuristics/pkg/multiobjective"
	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
	"github.com/metaopt/metaheuristics/pkg/multiobjective/metrics"
	"github.com/metaopt/metaheuristics/pkg/multiobjective/util"
)

// trueFrontSamples is the reference front resolution used for IGD.
const trueFrontSamples = 500

// Suite runs a set of registered algorithms across benchmark problems for a
// number of repeat runs (different seeds) and aggregates quality metrics per
// algorithm and problem.
type Suite struct {
	Config     framework.Config
	Runs       int
	Problems   []framework.Problem
	Algorithms []string
}

// NewSuite builds an empty suite. cfg is validated when algorithms are
// constructed; runs is the number of repeats per algorithm/problem pair.
func NewSuite(cfg framework.Config, runs int) *Suite {
	if runs < 1 {
		runs = 1
	}
	return &Suite{Config: cfg, Runs: runs}
}

// AddStandardProblems registers the ZDT family plus DTLZ2, the usual
// validation battery for two- and three-objective algorithms.
func (s *Suite) AddStandardProblems() {
	s.Problems = append(s.Problems,
		NewZDT1(30),
		NewZDT2(30),
		NewZDT3(30),
		NewDTLZ2(12, 3),
	)
}

// AddAlgorithms registers catalog IDs to compare.
func (s *Suite) AddAlgorithms(ids ...string) {
	s.Algorithms = append(s.Algorithms, ids...)
}

// Summary aggregates one algorithm's repeat runs on one problem. IGD values
// are NaN when the problem has no known true front.
type Summary struct {
	Algorithm   string
	Problem     string
	MeanIGD     float64
	StdIGD      float64
	MeanSpacing float64
	// MeanHV is the mean exact hypervolume against a reference point just
	// beyond the true front's nadir; NaN for problems where it cannot be
	// computed (no true front or more than two objectives).
	MeanHV      float64
	MeanElapsed time.Duration
	// Rank orders algorithms on the same problem by MeanIGD, 1 is best.
	Rank int
}

// Report is the outcome of a full suite run.
type Report struct {
	Summaries []Summary
}

// Run executes every algorithm on every problem. When outDir is non-empty,
// the best two-objective front (lowest IGD) per pair is rendered there as an
// HTML scatter plot.
func (s *Suite) Run(outDir string) (*Report, error) {
	if len(s.Problems) == 0 || len(s.Algorithms) == 0 {
		return nil, fmt.Errorf("suite: nothing to run, %d problems and %d algorithms", len(s.Problems), len(s.Algorithms))
	}

	report := &Report{}
	for _, problem := range s.Problems {
		trueFront := problem.TrueParetoFront(trueFrontSamples)

		var perProblem []Summary
		for _, id := range s.Algorithms {
			summary, err := s.runPair(id, problem, trueFront, outDir)
			if err != nil {
				return nil, err
			}
			perProblem = append(perProblem, summary)
		}

		rankByIGD(perProblem)
		report.Summaries = append(report.Summaries, perProblem...)
	}
	return report, nil
}

func (s *Suite) runPair(id string, problem framework.Problem, trueFront []framework.ObjectiveSpacePoint, outDir string) (Summary, error) {
	igds := make([]float64, 0, s.Runs)
	spacings := make([]float64, 0, s.Runs)
	hvs := make([]float64, 0, s.Runs)
	hvReference := hypervolumeReference(trueFront)
	var elapsed time.Duration
	var bestFront []framework.ObjectiveSpacePoint
	bestIGD := math.Inf(1)

	for run := 0; run < s.Runs; run++ {
		cfg := s.Config
		cfg.Seed = s.Config.Seed + uint64(run)

		algo, err := multiobjective.New(id, cfg)
		if err != nil {
			return Summary{}, fmt.Errorf("suite: building %s: %w", id, err)
		}
		result, err := framework.Run(algo, problem)
		if err != nil {
			return Summary{}, fmt.Errorf("suite: running %s on %s: %w", id, problem.Name(), err)
		}
		elapsed += result.ElapsedTime

		if sp, err := metrics.Spacing(result.ParetoFront); err == nil {
			spacings = append(spacings, sp)
		}
		if hvReference != nil {
			if hv, err := metrics.Hypervolume(result.ParetoFront, hvReference); err == nil {
				hvs = append(hvs, hv)
			}
		}

		igd := math.NaN()
		if trueFront != nil {
			igd, err = metrics.InvertedGenerationalDistance(result.ParetoFront, trueFront)
			if err != nil {
				return Summary{}, fmt.Errorf("suite: IGD for %s on %s: %w", id, problem.Name(), err)
			}
			igds = append(igds, igd)
		}
		if trueFront == nil || igd < bestIGD {
			bestIGD = igd
			bestFront = result.ParetoFront
		}

		klog.V(2).InfoS("suite run finished",
			"algorithm", id,
			"problem", problem.Name(),
			"run", run,
			"archiveSize", result.Metadata.ArchiveSize,
			"evaluations", result.TotalEvaluations,
			"igd", igd)
	}

	if outDir != "" && len(bestFront) > 0 && len(bestFront[0]) == 2 {
		if err := util.PlotFront(bestFront, problem, id, outDir); err != nil {
			return Summary{}, fmt.Errorf("suite: plotting %s on %s: %w", id, problem.Name(), err)
		}
	}

	summary := Summary{
		Algorithm:   id,
		Problem:     problem.Name(),
		MeanIGD:     math.NaN(),
		StdIGD:      0,
		MeanHV:      math.NaN(),
		MeanElapsed: elapsed / time.Duration(s.Runs),
	}
	if len(igds) > 0 {
		summary.MeanIGD = stat.Mean(igds, nil)
		if len(igds) > 1 {
			summary.StdIGD = stat.StdDev(igds, nil)
		}
	}
	if len(spacings) > 0 {
		summary.MeanSpacing = stat.Mean(spacings, nil)
	}
	if len(hvs) > 0 {
		summary.MeanHV = stat.Mean(hvs, nil)
	}
	return summary, nil
}

// hypervolumeReference builds a reference point one unit beyond the true
// front's per-objective maxima, so every point on or near the true front
// contributes volume. Returns nil when no exact hypervolume is available.
func hypervolumeReference(trueFront []framework.ObjectiveSpacePoint) framework.ObjectiveSpacePoint {
	if len(trueFront) == 0 || len(trueFront[0]) != 2 {
		return nil
	}
	ref := framework.ObjectiveSpacePoint{trueFront[0][0], trueFront[0][1]}
	for _, p := range trueFront {
		for k := range ref {
			if p[k] > ref[k] {
				ref[k] = p[k]
			}
		}
	}
	ref[0]++
	ref[1]++
	return ref
}

// rankByIGD assigns 1-based ranks by ascending mean IGD; algorithms without a
// true front to compare against keep rank 0.
func rankByIGD(summaries []Summary) {
	order := make([]int, 0, len(summaries))
	for i := range summaries {
		if !math.IsNaN(summaries[i].MeanIGD) {
			order = append(order, i)
		}
	}
	sort.Slice(order, func(a, b int) bool {
		return summaries[order[a]].MeanIGD < summaries[order[b]].MeanIGD
	})
	for rank, idx := range order {
		summaries[idx].Rank = rank + 1
	}
}
