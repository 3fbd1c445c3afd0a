package algorithms

import (
	"errors"
	"math"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

const MOGOAName = "MOGOA"

const (
	goaCMax    = 1.0
	goaCMin    = 0.00004
	goaForceF  = 0.5
	goaForceL  = 1.5
	distanceEp = 1e-14
)

// MOGOA is the multi-objective grasshopper optimization algorithm. Every
// individual sums pairwise social forces (short-range repulsion, long-range
// attraction) from the rest of the swarm and adds a pull toward a target
// drawn from the sparse regions of the archive, scaled by a decay coefficient
// shrinking exponentially over the run.
type MOGOA struct {
	cfg framework.Config
}

func NewMOGOA(cfg framework.Config) (*MOGOA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &MOGOA{cfg: cfg}, nil
}

func (a *MOGOA) Name() string { return MOGOAName }

func (a *MOGOA) Config() framework.Config { return a.cfg }

func (a *MOGOA) Initialize(s *framework.State) error {
	initPopulation(s)
	return nil
}

// socialForce is the grasshopper interaction kernel: repulsive for small r,
// attractive for larger r, vanishing with distance.
func socialForce(r float64) float64 {
	return goaForceF*math.Exp(-r/goaForceL) - math.Exp(-r)
}

func (a *MOGOA) Iterate(s *framework.State) error {
	if err := s.SyncArchive(); err != nil {
		return err
	}
	targetIdx, ok := s.Archive.Select(s.RNG, true)
	if !ok {
		return errors.New("mogoa: archive is empty")
	}
	target := s.Archive.Entry(targetIdx).Solution

	lower, upper := s.Problem.LowerBounds(), s.Problem.UpperBounds()
	dim := s.Problem.NumVariables()
	decay := goaCMax * math.Pow(goaCMin/goaCMax, s.Progress())

	prev := snapshot(s.Population)
	for i, x := range s.Population {
		force := make([]float64, dim)
		for j := range prev {
			if j == i {
				continue
			}
			dist := euclidean(prev[i], prev[j])
			// Map the raw distance into [2, 4] so the kernel stays in its
			// attraction/repulsion transition band.
			mapped := 2 + math.Mod(dist, 2)
			f := socialForce(mapped)
			for d := 0; d < dim; d++ {
				unit := (prev[j][d] - prev[i][d]) / (dist + distanceEp)
				force[d] += decay * (upper[d] - lower[d]) / 2 * f * unit
			}
		}
		for d := 0; d < dim; d++ {
			x[d] = decay*force[d] + target[d]
		}
		clamp(x, lower, upper)
	}
	s.MarkMoved()
	return nil
}
