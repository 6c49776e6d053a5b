package mapreduce

import "sync"

// lifecycleOnce guards WorkerPool.Finish so its shutdown sequence executes
// exactly once even if a caller invokes Finish more than once.
type lifecycleOnce struct {
	once sync.Once
}

// run executes steps in order, exactly once across all calls. Calls after
// the first are no-ops.
func (l *lifecycleOnce) run(steps ...func()) {
	l.once.Do(func() {
		for _, step := range steps {
			step()
		}
	})
}
