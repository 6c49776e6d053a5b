package mapreduce

import (
	"errors"
	"fmt"
)

// Namespace prefixes every sentinel error string, scoping error text to
// this package.
const Namespace = "mapreduce"

var (
	// ErrInvalidConfig is wrapped by the error NewRunConfig (and so Start)
	// returns when a RunConfig fails validation.
	ErrInvalidConfig = errors.New(Namespace + ": invalid run configuration")

	// ErrAlreadyFinished is returned by SubmitChannel and SubmitSlice when
	// Submit reports that the pool has already terminated.
	ErrAlreadyFinished = errors.New(Namespace + ": pool already finished")

	// ErrNoCapacity is returned by New when its RunLimiter has no free
	// execution slot.
	ErrNoCapacity = errors.New(Namespace + ": no run slots available")
)

// SetupError reports that a worker's sandbox failed to initialize: interpreter
// creation, script evaluation, or extracting the map/reduce callables. A
// worker that fails setup terminates without processing any task; other
// workers continue independently.
type SetupError struct {
	Description string
	Cause       error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%s: worker setup failed: %s: %v", Namespace, e.Description, e.Cause)
}

func (e *SetupError) Unwrap() error { return e.Cause }

// MapError reports that a map(vertex) invocation failed.
type MapError struct {
	Vertex Vertex
	Cause  error
}

func (e *MapError) Error() string {
	return fmt.Sprintf("%s: map call failed: %v", Namespace, e.Cause)
}

func (e *MapError) Unwrap() error { return e.Cause }

// ReduceError reports that a reduce(a, b) invocation failed.
type ReduceError struct {
	Cause error
}

func (e *ReduceError) Error() string {
	return fmt.Sprintf("%s: reduce call failed: %v", Namespace, e.Cause)
}

func (e *ReduceError) Unwrap() error { return e.Cause }
