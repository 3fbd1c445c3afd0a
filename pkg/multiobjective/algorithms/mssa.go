package algorithms

import (
	"errors"
	"math"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

const MSSAName = "MSSA"

// MSSA is the multi-objective salp swarm algorithm. The leading half of the
// chain moves around a food source drawn from the sparse regions of the
// archive with a decaying exponential coefficient; every follower moves to
// the midpoint between itself and its predecessor, propagating the leaders'
// motion down the chain.
type MSSA struct {
	cfg framework.Config
}

func NewMSSA(cfg framework.Config) (*MSSA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &MSSA{cfg: cfg}, nil
}

func (a *MSSA) Name() string { return MSSAName }

func (a *MSSA) Config() framework.Config { return a.cfg }

func (a *MSSA) Initialize(s *framework.State) error {
	initPopulation(s)
	return nil
}

func (a *MSSA) Iterate(s *framework.State) error {
	if err := s.SyncArchive(); err != nil {
		return err
	}
	foodIdx, ok := s.Archive.Select(s.RNG, true)
	if !ok {
		return errors.New("mssa: archive is empty")
	}
	food := s.Archive.Entry(foodIdx).Solution

	lower, upper := s.Problem.LowerBounds(), s.Problem.UpperBounds()
	c1 := 2 * math.Exp(-math.Pow(4*s.Progress(), 2))

	for i, x := range s.Population {
		if i < len(s.Population)/2 {
			for j := range x {
				c2, c3 := s.RNG.Float64(), s.RNG.Float64()
				offset := c1 * ((upper[j]-lower[j])*c2 + lower[j])
				if c3 < 0.5 {
					x[j] = food[j] - offset
				} else {
					x[j] = food[j] + offset
				}
			}
		} else {
			// Followers chain off the already-updated predecessor.
			prev := s.Population[i-1]
			for j := range x {
				x[j] = (x[j] + prev[j]) / 2
			}
		}
		clamp(x, lower, upper)
	}
	s.MarkMoved()
	return nil
}
