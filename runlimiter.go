package mapreduce

import "github.com/ygrebnov/mapreduce/pool"

// RunLimiter bounds how many WorkerPool runs may have live sandboxes at
// once across an entire process. A host that triggers several runs
// concurrently (one per account, say) shares a single RunLimiter so the
// total number of live scripting interpreters stays bounded regardless of
// how many runs are in flight.
//
// The pooled "objects" are plain tokens representing a free execution
// slot, not reusable workers — a WorkerPool never reuses a RunLimiter
// token for more than the lifetime of one run.
type RunLimiter struct {
	slots pool.Pool
}

// NewRunLimiter creates a limiter with room for capacity concurrently live
// runs. A capacity of 0 is treated as 1.
func NewRunLimiter(capacity uint) *RunLimiter {
	if capacity == 0 {
		capacity = 1
	}
	return &RunLimiter{slots: pool.NewFixed(capacity, func() interface{} { return struct{}{} })}
}

// release returns a previously acquired token to the limiter. Safe to call
// with a nil token (happens when tryAcquire was called on a nil *RunLimiter).
func (l *RunLimiter) release(token interface{}) {
	if l == nil || token == nil {
		return
	}
	l.slots.Put(token)
}

// slotTryGetter is implemented by pool.NewFixed's concrete type. It is
// checked with a type assertion rather than widening pool.Pool itself,
// since non-blocking acquisition is specific to RunLimiter's use case.
type slotTryGetter interface {
	TryGet() (interface{}, bool)
}

// tryAcquire attempts to acquire a slot without blocking. It reports
// (nil, true) immediately on a nil receiver (unlimited pool).
func (l *RunLimiter) tryAcquire() (interface{}, bool) {
	if l == nil {
		return nil, true
	}
	tg, ok := l.slots.(slotTryGetter)
	if !ok {
		return l.slots.Get(), true
	}
	return tg.TryGet()
}
