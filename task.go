package mapreduce

import (
	"context"

	"github.com/ygrebnov/mapreduce/sandbox"
)

// workerTask is a tagged union with exactly two shapes: Map(Vertex) and
// Reduce(Value, Value). It is the only thing a worker ever receives on its
// input channel.
type workerTask interface {
	// run executes the task against sb and returns the resulting Value.
	run(ctx context.Context, sb sandbox.Sandbox) (Value, error)
}

// mapTask applies the script's map function to one vertex.
type mapTask struct {
	vertex Vertex
}

func (t mapTask) run(ctx context.Context, sb sandbox.Sandbox) (Value, error) {
	v, err := sb.Map(ctx, t.vertex)
	if err != nil {
		return Value{}, &MapError{Vertex: t.vertex, Cause: err}
	}
	return v, nil
}

// reduceTask applies the script's reduce function to two intermediate values.
type reduceTask struct {
	a, b Value
}

func (t reduceTask) run(ctx context.Context, sb sandbox.Sandbox) (Value, error) {
	v, err := sb.Reduce(ctx, t.a, t.b)
	if err != nil {
		return Value{}, &ReduceError{Cause: err}
	}
	return v, nil
}
