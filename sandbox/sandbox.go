// Package sandbox defines the contract between the dispatch core and the
// scripting interpreter that actually evaluates a user's map/reduce script.
// The interpreter itself — its language, its VM, its datastore transaction —
// is out of scope for this package; it only pins down the shape a concrete
// implementation must have.
//
// A Sandbox is single-threaded and owned by exactly one worker for its
// entire lifetime: it must never be shared between workers or called
// concurrently.
package sandbox

import (
	"context"

	"github.com/ygrebnov/mapreduce/mrtypes"
)

// Factory constructs one Sandbox instance. The core calls it once per
// worker, synchronously, before that worker processes any task.
type Factory interface {
	New(ctx context.Context, accountID, scriptSource, scriptPath, scriptRoot string, arg mrtypes.Value) (Sandbox, error)
}

// Sandbox is a single isolated interpreter instance exposing a user script's
// map and reduce callables. Implementations are not required to be safe for
// concurrent use — the core guarantees at most one call in flight per
// Sandbox at any time.
type Sandbox interface {
	// Map applies the script's map function to one vertex.
	Map(ctx context.Context, v mrtypes.Vertex) (mrtypes.Value, error)

	// Reduce applies the script's reduce function to two intermediate values.
	Reduce(ctx context.Context, a, b mrtypes.Value) (mrtypes.Value, error)

	// Close releases any resources (datastore transaction, interpreter
	// state) held by the sandbox. Called once, when its owning worker exits.
	Close() error
}
