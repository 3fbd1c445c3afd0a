// Package multiobjective ties the optimization core together: it exposes a
// catalog of the shipped algorithms so orchestration layers can construct
// them by ID. The engine itself never dispatches by name; callers that know
// which algorithm they want should construct it directly from the algorithms
// package.
package multiobjective

import (
	"fmt"
	"sort"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/algorithms"
	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

// AlgorithmInfo is a catalog entry describing a registered algorithm.
type AlgorithmInfo struct {
	ID       string
	Name     string
	FullName string
	// Category is "swarm" or "evolutionary".
	Category string
	Authors  string
	Year     int
}

// Factory builds a configured algorithm instance.
type Factory func(framework.Config) (framework.Algorithm, error)

var (
	infos     = map[string]AlgorithmInfo{}
	factories = map[string]Factory{}
)

// Register adds an algorithm to the catalog. Registering a duplicate ID is a
// programming error and panics.
func Register(info AlgorithmInfo, factory Factory) {
	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("multiobjective: algorithm %q registered twice", info.ID))
	}
	infos[info.ID] = info
	factories[info.ID] = factory
}

// New constructs a registered algorithm by ID. Configuration validation
// happens inside the factory, so an invalid config fails here, before any
// run starts.
func New(id string, cfg framework.Config) (framework.Algorithm, error) {
	factory, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("multiobjective: unknown algorithm %q", id)
	}
	return factory(cfg)
}

// Info returns the catalog entry for an algorithm ID.
func Info(id string) (AlgorithmInfo, bool) {
	info, ok := infos[id]
	return info, ok
}

// List returns all catalog entries sorted by ID.
func List() []AlgorithmInfo {
	out := make([]AlgorithmInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func init() {
	Register(AlgorithmInfo{
		ID:       "moalo",
		Name:     algorithms.MOALOName,
		FullName: "Multi-Objective Ant Lion Optimizer",
		Category: "swarm",
		Authors:  "Mirjalili, Jangir, Saremi",
		Year:     2017,
	}, func(cfg framework.Config) (framework.Algorithm, error) { return algorithms.NewMOALO(cfg) })

	Register(AlgorithmInfo{
		ID:       "mogwo",
		Name:     algorithms.MOGWOName,
		FullName: "Multi-Objective Grey Wolf Optimizer",
		Category: "swarm",
		Authors:  "Mirjalili, Saremi, Mirjalili, Coelho",
		Year:     2016,
	}, func(cfg framework.Config) (framework.Algorithm, error) { return algorithms.NewMOGWO(cfg) })

	Register(AlgorithmInfo{
		ID:       "mogoa",
		Name:     algorithms.MOGOAName,
		FullName: "Multi-Objective Grasshopper Optimization Algorithm",
		Category: "swarm",
		Authors:  "Mirjalili, Mirjalili, Saremi, Faris, Aljarah",
		Year:     2018,
	}, func(cfg framework.Config) (framework.Algorithm, error) { return algorithms.NewMOGOA(cfg) })

	Register(AlgorithmInfo{
		ID:       "moda",
		Name:     algorithms.MODAName,
		FullName: "Multi-Objective Dragonfly Algorithm",
		Category: "swarm",
		Authors:  "Mirjalili",
		Year:     2016,
	}, func(cfg framework.Config) (framework.Algorithm, error) { return algorithms.NewMODA(cfg) })

	Register(AlgorithmInfo{
		ID:       "mssa",
		Name:     algorithms.MSSAName,
		FullName: "Multi-Objective Salp Swarm Algorithm",
		Category: "swarm",
		Authors:  "Mirjalili, Gandomi, Mirjalili, Saremi, Faris, Mirjalili",
		Year:     2017,
	}, func(cfg framework.Config) (framework.Algorithm, error) { return algorithms.NewMSSA(cfg) })

	Register(AlgorithmInfo{
		ID:       "nsga2",
		Name:     algorithms.NSGAIIName,
		FullName: "Non-dominated Sorting Genetic Algorithm II",
		Category: "evolutionary",
		Authors:  "Deb, Pratap, Agarwal, Meyarivan",
		Year:     2002,
	}, func(cfg framework.Config) (framework.Algorithm, error) { return algorithms.NewNSGAII(cfg) })
}
