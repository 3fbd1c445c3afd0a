package framework

import (
	"fmt"
	"time"
)

// ConfigError reports an invalid configuration value. It is returned at
// construction time, never during a run.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}

// ProblemError reports a malformed problem definition. It is returned at Run
// entry, before any state is mutated.
type ProblemError struct {
	Problem string
	Reason  string
}

func (e *ProblemError) Error() string {
	return fmt.Sprintf("invalid problem %q: %s", e.Problem, e.Reason)
}

// EvaluationError reports a non-finite objective value. NaN compares false
// under both < and <=, which would let dominated solutions slip into the
// archive undetected, so evaluation results are checked before any dominance
// comparison and a bad value aborts the run.
type EvaluationError struct {
	Objective int
	Value     float64
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("objective %d evaluated to non-finite value %v", e.Objective, e.Value)
}

// RunError wraps a failure inside the run loop with the iteration count and
// elapsed time at the point of failure. There is no partial-result recovery.
type RunError struct {
	Algorithm string
	Iteration int
	Elapsed   time.Duration
	Err       error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s failed at iteration %d after %v: %v", e.Algorithm, e.Iteration, e.Elapsed, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

func intAtLeast(got, min int) string {
	return fmt.Sprintf("must be at least %d, got %d", min, got)
}
