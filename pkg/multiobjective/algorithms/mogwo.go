package algorithms

import (
	"errors"
	"math"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

const MOGWOName = "MOGWO"

// MOGWO is the multi-objective grey wolf optimizer. Once per generation,
// three distinct leaders (alpha, beta, delta) are drawn from the archive by
// density roulette favoring sparse regions; each individual moves to the
// mean of three leader-directed pulls whose strength shrinks linearly from 2
// to 0 over the run. Running with framework.GridDensity (via
// framework.WithArchiveOptions) makes the roulette follow grid cell
// occupancy, the reference formulation of the leader selection.
type MOGWO struct {
	cfg framework.Config
}

func NewMOGWO(cfg framework.Config) (*MOGWO, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &MOGWO{cfg: cfg}, nil
}

func (a *MOGWO) Name() string { return MOGWOName }

func (a *MOGWO) Config() framework.Config { return a.cfg }

func (a *MOGWO) Initialize(s *framework.State) error {
	initPopulation(s)
	return nil
}

func (a *MOGWO) Iterate(s *framework.State) error {
	if err := s.SyncArchive(); err != nil {
		return err
	}
	lower, upper := s.Problem.LowerBounds(), s.Problem.UpperBounds()
	pull := 2 * (1 - s.Progress())

	// Alpha, beta and delta lead the whole pack for this generation.
	leaders, err := drawLeaders(s)
	if err != nil {
		return err
	}

	for _, x := range s.Population {
		for j := range x {
			sum := 0.0
			for _, leader := range leaders {
				amp := 2*pull*s.RNG.Float64() - pull
				coef := 2 * s.RNG.Float64()
				sum += leader[j] - amp*math.Abs(coef*leader[j]-x[j])
			}
			x[j] = sum / float64(len(leaders))
		}
		clamp(x, lower, upper)
	}
	s.MarkMoved()
	return nil
}

// drawLeaders picks alpha, beta and delta from the archive, excluding already
// chosen entries so the leaders are distinct while the archive allows it.
func drawLeaders(s *framework.State) ([][]float64, error) {
	exclude := make(map[int]bool, 2)
	leaders := make([][]float64, 0, 3)
	for len(leaders) < 3 {
		idx, ok := s.Archive.SelectExcluding(s.RNG, true, exclude)
		if !ok {
			// Fewer archive entries than leaders: reuse the full set.
			idx, ok = s.Archive.Select(s.RNG, true)
			if !ok {
				return nil, errors.New("mogwo: archive is empty")
			}
		}
		exclude[idx] = true
		leaders = append(leaders, s.Archive.Entry(idx).Solution)
	}
	return leaders, nil
}
