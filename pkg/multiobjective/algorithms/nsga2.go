package algorithms

import (
	"fmt"
	"math"
	"sort"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

const NSGAIIName = "NSGA-II"

// NSGA-II default operator rates.
const (
	defaultCrossoverRate  = 0.9
	defaultMutationRate   = 0.1
	defaultTournamentSize = 2
)

// NSGAII is the elitist non-dominated sorting genetic algorithm, run through
// the same lifecycle as the swarm algorithms: each generation breeds an
// offspring population via rank/crowding tournaments, SBX crossover and
// polynomial mutation, then keeps the best fronts of the combined pool. The
// surviving population flows through the shared Pareto archive so results
// and convergence curves are comparable across algorithms.
type NSGAII struct {
	cfg framework.Config

	CrossoverRate  float64
	MutationRate   float64
	TournamentSize int
}

func NewNSGAII(cfg framework.Config) (*NSGAII, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &NSGAII{
		cfg:            cfg,
		CrossoverRate:  defaultCrossoverRate,
		MutationRate:   defaultMutationRate,
		TournamentSize: defaultTournamentSize,
	}, nil
}

func (n *NSGAII) Name() string { return NSGAIIName }

func (n *NSGAII) Config() framework.Config { return n.cfg }

func (n *NSGAII) Initialize(s *framework.State) error {
	initPopulation(s)
	return nil
}

// ranked pairs a population slot with its non-dominated rank and crowding
// distance for tournament and environmental selection.
type ranked struct {
	x        []float64
	value    framework.ObjectiveSpacePoint
	rank     int
	distance float64
}

func (n *NSGAII) Iterate(s *framework.State) error {
	if err := s.SyncArchive(); err != nil {
		return err
	}
	lower, upper := s.Problem.LowerBounds(), s.Problem.UpperBounds()

	parents := rankPopulation(s.Population, s.Objectives)

	// Breed a full offspring population.
	offspring := make([]ranked, 0, len(parents))
	for len(offspring) < len(parents) {
		p1 := n.tournamentSelect(s, parents)
		p2 := n.tournamentSelect(s, parents)
		c1, c2 := n.crossover(s, p1.x, p2.x, lower, upper)
		n.mutate(s, c1, lower, upper)
		n.mutate(s, c2, lower, upper)

		for _, child := range [][]float64{c1, c2} {
			if len(offspring) == len(parents) {
				break
			}
			value, err := s.Evaluate(child)
			if err != nil {
				return fmt.Errorf("offspring %d: %w", len(offspring), err)
			}
			offspring = append(offspring, ranked{x: child, value: value})
		}
	}

	// Environmental selection over the combined pool.
	combined := append(parents, offspring...)
	survivors := selectSurvivors(combined, len(parents))

	for i, ind := range survivors {
		s.Population[i] = ind.x
		s.Objectives[i] = ind.value
	}
	// Objective values carried over from the pool are current, so no
	// re-evaluation is needed before the next archive sync.
	return nil
}

// rankPopulation assigns non-dominated ranks and per-front crowding
// distances.
func rankPopulation(population [][]float64, values []framework.ObjectiveSpacePoint) []ranked {
	individuals := make([]ranked, len(population))
	for i := range population {
		individuals[i] = ranked{x: population[i], value: values[i]}
	}
	rankAndCrowd(individuals)
	return individuals
}

func rankAndCrowd(individuals []ranked) {
	points := make([]framework.ObjectiveSpacePoint, len(individuals))
	for i, ind := range individuals {
		points[i] = ind.value
	}
	for rank, front := range framework.NonDominatedSort(points) {
		frontPoints := make([]framework.ObjectiveSpacePoint, len(front))
		for i, idx := range front {
			individuals[idx].rank = rank
			frontPoints[i] = points[idx]
		}
		distances := crowdingDistances(frontPoints)
		for i, idx := range front {
			individuals[idx].distance = distances[i]
		}
	}
}

// crowdingDistances computes the NSGA-II crowding distance for one front.
// Boundary points per objective get infinite distance so they are always
// preferred.
func crowdingDistances(front []framework.ObjectiveSpacePoint) []float64 {
	distances := make([]float64, len(front))
	if len(front) <= 2 {
		for i := range distances {
			distances[i] = math.Inf(1)
		}
		return distances
	}

	numObjectives := len(front[0])
	order := make([]int, len(front))
	for m := 0; m < numObjectives; m++ {
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			return front[order[i]][m] < front[order[j]][m]
		})

		distances[order[0]] = math.Inf(1)
		distances[order[len(order)-1]] = math.Inf(1)

		span := front[order[len(order)-1]][m] - front[order[0]][m]
		if span == 0 {
			continue
		}
		for i := 1; i < len(order)-1; i++ {
			distances[order[i]] += (front[order[i+1]][m] - front[order[i-1]][m]) / span
		}
	}
	return distances
}

func (n *NSGAII) tournamentSelect(s *framework.State, population []ranked) ranked {
	size := n.TournamentSize
	if size < 2 {
		size = 2
	}
	best := population[s.RNG.IntN(len(population))]
	for i := 1; i < size; i++ {
		contestant := population[s.RNG.IntN(len(population))]
		if contestant.rank < best.rank ||
			(contestant.rank == best.rank && contestant.distance > best.distance) {
			best = contestant
		}
	}
	return best
}

// crossover performs SBX (simulated binary crossover).
func (n *NSGAII) crossover(s *framework.State, parent1, parent2, lower, upper []float64) ([]float64, []float64) {
	child1 := make([]float64, len(parent1))
	child2 := make([]float64, len(parent2))

	if s.RNG.Float64() >= n.CrossoverRate {
		copy(child1, parent1)
		copy(child2, parent2)
		return child1, child2
	}

	for i := range parent1 {
		var beta float64
		if s.RNG.Float64() <= 0.5 {
			beta = math.Pow(2*s.RNG.Float64(), 1.0/3.0)
		} else {
			beta = math.Pow(1.0/(2*(1.0-s.RNG.Float64())), 1.0/3.0)
		}

		child1[i] = 0.5 * ((1+beta)*parent1[i] + (1-beta)*parent2[i])
		child2[i] = 0.5 * ((1-beta)*parent1[i] + (1+beta)*parent2[i])
	}
	clamp(child1, lower, upper)
	clamp(child2, lower, upper)
	return child1, child2
}

// mutate performs polynomial mutation.
func (n *NSGAII) mutate(s *framework.State, x, lower, upper []float64) {
	for i := range x {
		if s.RNG.Float64() >= n.MutationRate {
			continue
		}
		var delta float64
		if s.RNG.Float64() <= 0.5 {
			delta = math.Pow(2*s.RNG.Float64(), 1.0/3.0) - 1
		} else {
			delta = 1 - math.Pow(2*(1-s.RNG.Float64()), 1.0/3.0)
		}
		x[i] += delta * (upper[i] - lower[i])
	}
	clamp(x, lower, upper)
}

// selectSurvivors fills the next generation front by front, breaking the
// last partial front by descending crowding distance.
func selectSurvivors(pool []ranked, size int) []ranked {
	rankAndCrowd(pool)
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].rank != pool[j].rank {
			return pool[i].rank < pool[j].rank
		}
		return pool[i].distance > pool[j].distance
	})
	return pool[:size]
}
