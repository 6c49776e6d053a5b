// Package fake provides a sandbox.Factory/sandbox.Sandbox pair built on
// plain Go closures, with no scripting engine at all. It exercises the
// exact contract a real interpreter-backed sandbox would, for tests and
// documentation examples, mirroring the map/reduce call shape of the
// original script sandbox (map(vertex) -> value, reduce(a, b) -> value).
package fake

import (
	"context"
	"sync"

	"github.com/ygrebnov/mapreduce/mrtypes"
	"github.com/ygrebnov/mapreduce/sandbox"
)

// MapFunc implements a script's map callable.
type MapFunc func(ctx context.Context, v mrtypes.Vertex) (mrtypes.Value, error)

// ReduceFunc implements a script's reduce callable.
type ReduceFunc func(ctx context.Context, a, b mrtypes.Value) (mrtypes.Value, error)

// Factory constructs sandboxes that call back into Map/Reduce directly,
// ignoring scriptSource/scriptPath/scriptRoot entirely — there is no
// interpreter to evaluate them against. SetupErr, if set, is returned by
// every New call, simulating a script that fails to evaluate.
type Factory struct {
	Map      MapFunc
	Reduce   ReduceFunc
	SetupErr error

	mu      sync.Mutex
	closed  []string
	created int
}

// New implements sandbox.Factory.
func (f *Factory) New(_ context.Context, accountID, _, _, _ string, _ mrtypes.Value) (sandbox.Sandbox, error) {
	if f.SetupErr != nil {
		return nil, f.SetupErr
	}

	f.mu.Lock()
	f.created++
	f.mu.Unlock()

	return &Sandbox{factory: f, accountID: accountID, mapFn: f.Map, reduceFn: f.Reduce}, nil
}

// Created reports how many sandboxes this factory has produced.
func (f *Factory) Created() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created
}

// Closed reports the account IDs of sandboxes that have been closed, in
// close order. Useful for asserting every constructed sandbox was torn
// down exactly once.
func (f *Factory) Closed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.closed))
	copy(out, f.closed)
	return out
}

// Sandbox is a fake sandbox.Sandbox: every call is a direct Go function
// call, with no isolation and no persistent interpreter state.
type Sandbox struct {
	factory   *Factory
	accountID string
	mapFn     MapFunc
	reduceFn  ReduceFunc

	mu     sync.Mutex
	closed bool
}

// Map implements sandbox.Sandbox.
func (s *Sandbox) Map(ctx context.Context, v mrtypes.Vertex) (mrtypes.Value, error) {
	if s.mapFn == nil {
		return mrtypes.Null, nil
	}
	return s.mapFn(ctx, v)
}

// Reduce implements sandbox.Sandbox.
func (s *Sandbox) Reduce(ctx context.Context, a, b mrtypes.Value) (mrtypes.Value, error) {
	if s.reduceFn == nil {
		return mrtypes.Null, nil
	}
	return s.reduceFn(ctx, a, b)
}

// Close implements sandbox.Sandbox. Calling it more than once is a no-op.
func (s *Sandbox) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	s.factory.mu.Lock()
	s.factory.closed = append(s.factory.closed, s.accountID)
	s.factory.mu.Unlock()
	return nil
}
