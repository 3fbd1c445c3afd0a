package algorithms

import (
	"errors"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

const MODAName = "MODA"

// MODA is the multi-objective dragonfly algorithm. Each individual combines
// separation, alignment, cohesion, attraction to a food source drawn from
// sparse archive regions and repulsion from an enemy drawn from crowded ones
// into an inertia-weighted step vector. An individual
// with no neighbors inside the iteration-growing radius takes a Levy-flight
// step instead.
type MODA struct {
	cfg    framework.Config
	deltas [][]float64
}

func NewMODA(cfg framework.Config) (*MODA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &MODA{cfg: cfg}, nil
}

func (a *MODA) Name() string { return MODAName }

func (a *MODA) Config() framework.Config { return a.cfg }

func (a *MODA) Initialize(s *framework.State) error {
	initPopulation(s)
	a.deltas = make([][]float64, len(s.Population))
	for i := range a.deltas {
		a.deltas[i] = make([]float64, s.Problem.NumVariables())
	}
	return nil
}

func (a *MODA) Iterate(s *framework.State) error {
	if err := s.SyncArchive(); err != nil {
		return err
	}
	foodIdx, ok := s.Archive.Select(s.RNG, true)
	if !ok {
		return errors.New("moda: archive is empty")
	}
	enemyIdx, ok := s.Archive.Select(s.RNG, false)
	if !ok {
		return errors.New("moda: archive is empty")
	}
	food := s.Archive.Entry(foodIdx).Solution
	enemy := s.Archive.Entry(enemyIdx).Solution

	lower, upper := s.Problem.LowerBounds(), s.Problem.UpperBounds()
	dim := s.Problem.NumVariables()
	ratio := s.Progress()

	inertia := 0.9 - ratio*0.5
	swarmWeight := 0.1 - ratio*0.2
	if swarmWeight < 0 {
		swarmWeight = 0
	}

	// Neighborhood radius grows with the iteration ratio so the swarm shifts
	// from static (exploring) to dynamic (exploiting) behavior.
	radius := make([]float64, dim)
	maxStep := make([]float64, dim)
	for d := 0; d < dim; d++ {
		span := upper[d] - lower[d]
		radius[d] = span/4 + span*2*ratio
		maxStep[d] = span / 10
	}

	prev := snapshot(s.Population)
	for i, x := range s.Population {
		neighbors := neighborsWithin(prev, i, radius)

		if len(neighbors) == 0 {
			// No neighborhood to follow: Levy flight around the current
			// position and a reset step vector.
			levy := levyStep(s.RNG, dim)
			for d := 0; d < dim; d++ {
				x[d] = prev[i][d] + levy[d]*prev[i][d]
				a.deltas[i][d] = 0
			}
			clamp(x, lower, upper)
			continue
		}

		sepW := 2 * s.RNG.Float64() * swarmWeight
		aliW := 2 * s.RNG.Float64() * swarmWeight
		cohW := 2 * s.RNG.Float64() * swarmWeight
		foodW := 2 * s.RNG.Float64()
		enemyW := swarmWeight

		for d := 0; d < dim; d++ {
			separation, alignment, cohesion := 0.0, 0.0, 0.0
			for _, j := range neighbors {
				separation -= prev[j][d] - prev[i][d]
				alignment += a.deltas[j][d]
				cohesion += prev[j][d]
			}
			n := float64(len(neighbors))
			alignment /= n
			cohesion = cohesion/n - prev[i][d]

			foodPull := food[d] - prev[i][d]
			enemyPush := enemy[d] + prev[i][d]

			step := sepW*separation + aliW*alignment + cohW*cohesion +
				foodW*foodPull + enemyW*enemyPush + inertia*a.deltas[i][d]
			if step > maxStep[d] {
				step = maxStep[d]
			} else if step < -maxStep[d] {
				step = -maxStep[d]
			}
			a.deltas[i][d] = step
			x[d] = prev[i][d] + step
		}
		clamp(x, lower, upper)
	}
	s.MarkMoved()
	return nil
}

// neighborsWithin returns the indices of individuals whose distance to
// individual i is within the radius in every dimension.
func neighborsWithin(population [][]float64, i int, radius []float64) []int {
	var neighbors []int
	for j := range population {
		if j == i {
			continue
		}
		inside := true
		for d := range radius {
			diff := population[j][d] - population[i][d]
			if diff < 0 {
				diff = -diff
			}
			if diff > radius[d] {
				inside = false
				break
			}
		}
		if inside {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}
