package algorithms

import (
	"errors"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

const MOALOName = "MOALO"

// MOALO is the multi-objective ant lion optimizer. Each individual becomes
// the average of two bounded random walks, one anchored at the generation's
// elite, drawn once from the sparse regions of the archive, and one at a
// uniformly random archive member redrawn per individual. The walk interval
// tightens around its anchor in stages as the run progresses.
type MOALO struct {
	cfg framework.Config
}

func NewMOALO(cfg framework.Config) (*MOALO, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &MOALO{cfg: cfg}, nil
}

func (a *MOALO) Name() string { return MOALOName }

func (a *MOALO) Config() framework.Config { return a.cfg }

func (a *MOALO) Initialize(s *framework.State) error {
	initPopulation(s)
	return nil
}

func (a *MOALO) Iterate(s *framework.State) error {
	if err := s.SyncArchive(); err != nil {
		return err
	}
	lower, upper := s.Problem.LowerBounds(), s.Problem.UpperBounds()

	// The elite is fixed for the whole generation; the second anchor is
	// redrawn per individual.
	eliteIdx, ok := s.Archive.Select(s.RNG, true)
	if !ok {
		return errors.New("moalo: archive is empty")
	}
	elite := s.Archive.Entry(eliteIdx).Solution

	for _, x := range s.Population {
		randIdx := s.RNG.IntN(s.Archive.Len())
		other := s.Archive.Entry(randIdx).Solution

		walkElite := randomWalk(s, elite, lower, upper)
		walkOther := randomWalk(s, other, lower, upper)
		for j := range x {
			x[j] = (walkElite[j] + walkOther[j]) / 2
		}
		clamp(x, lower, upper)
	}
	s.MarkMoved()
	return nil
}

// walkShrink returns the staged interval multiplier: the walk tightens around
// its anchor as the iteration ratio crosses the 10/50/75/90/95% thresholds.
func walkShrink(iteration, maxIterations int) float64 {
	ratio := float64(iteration) / float64(maxIterations)
	switch {
	case ratio > 0.95:
		return 1 + 1e6*ratio
	case ratio > 0.90:
		return 1 + 1e5*ratio
	case ratio > 0.75:
		return 1 + 1e4*ratio
	case ratio > 0.50:
		return 1 + 1e3*ratio
	case ratio > 0.10:
		return 1 + 1e2*ratio
	}
	return 1
}

// randomWalk performs a bounded cumulative-sum random walk per dimension and
// returns the position the walk reaches at the current iteration, min-max
// normalized into a shrunken interval around the anchor. The interval sign
// flips at random so the walk is not biased toward one side of the anchor.
func randomWalk(s *framework.State, anchor, lower, upper []float64) []float64 {
	maxIter := s.Config.MaxIterations
	shrink := walkShrink(s.Iteration, maxIter)

	position := make([]float64, len(anchor))
	for j := range anchor {
		lo := lower[j] / shrink
		hi := upper[j] / shrink
		if s.RNG.Float64() < 0.5 {
			lo = -lo
		}
		if s.RNG.Float64() < 0.5 {
			hi = -hi
		}
		lo += anchor[j]
		hi += anchor[j]
		if lo > hi {
			lo, hi = hi, lo
		}

		walk, minW, maxW, at := 0.0, 0.0, 0.0, 0.0
		for step := 1; step <= maxIter; step++ {
			if s.RNG.Float64() > 0.5 {
				walk++
			} else {
				walk--
			}
			if walk < minW {
				minW = walk
			}
			if walk > maxW {
				maxW = walk
			}
			if step == s.Iteration+1 {
				at = walk
			}
		}

		if maxW == minW {
			position[j] = anchor[j]
		} else {
			position[j] = lo + (at-minW)*(hi-lo)/(maxW-minW)
		}
	}
	return position
}
