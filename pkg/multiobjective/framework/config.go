package framework

// Minimum values enforced by Config.Validate.
const (
	MinPopulationSize = 10
	MinArchiveSize    = 10
)

// Config holds the parameters shared by every algorithm. Validation happens
// at algorithm construction time: invalid values are rejected with a
// descriptive error instead of being clamped.
type Config struct {
	// PopulationSize is the number of individuals per generation.
	PopulationSize int
	// MaxIterations is the hard iteration ceiling for a run.
	MaxIterations int
	// ArchiveMaxSize bounds the Pareto archive.
	ArchiveMaxSize int
	// Verbose raises per-iteration progress logging to info level.
	Verbose bool
	// Seed initializes the per-run random source. Runs with equal seeds and
	// equal inputs are reproducible.
	Seed uint64
	// Parallel evaluates population members on a worker pool. The archive
	// itself is always mutated by the single run loop.
	Parallel bool
}

// DefaultConfig returns the platform defaults.
func DefaultConfig() Config {
	return Config{
		PopulationSize: 30,
		MaxIterations:  500,
		ArchiveMaxSize: 100,
		Seed:           1,
	}
}

func (c Config) Validate() error {
	if c.PopulationSize < MinPopulationSize {
		return &ConfigError{
			Field:  "PopulationSize",
			Reason: intAtLeast(c.PopulationSize, MinPopulationSize),
		}
	}
	if c.MaxIterations < 1 {
		return &ConfigError{
			Field:  "MaxIterations",
			Reason: intAtLeast(c.MaxIterations, 1),
		}
	}
	if c.ArchiveMaxSize < MinArchiveSize {
		return &ConfigError{
			Field:  "ArchiveMaxSize",
			Reason: intAtLeast(c.ArchiveMaxSize, MinArchiveSize),
		}
	}
	return nil
}
