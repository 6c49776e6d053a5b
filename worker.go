package mapreduce

import (
	"context"
	"time"

	"github.com/ygrebnov/mapreduce/log"
	"github.com/ygrebnov/mapreduce/sandbox"
)

// worker owns one sandbox and a private control channel. It processes tasks
// strictly sequentially, forwarding results to a shared output channel and
// fatal errors to a shared error channel.
//
// A worker value is constructed synchronously (so its shutdown channel is
// always safe to signal) while sandbox construction and the task loop run
// in start, which New calls in one goroutine per worker.
type worker struct {
	id       int
	sb       sandbox.Sandbox
	tasks    <-chan workerTask
	outputs  chan<- Value
	errs     chan<- error
	shutdown chan struct{}

	receiveTimeout time.Duration
	logger         log.Logger
}

func newWorker(
	id int,
	tasks <-chan workerTask,
	outputs chan<- Value,
	errs chan<- error,
	receiveTimeout time.Duration,
	logger log.Logger,
) *worker {
	return &worker{
		id:             id,
		tasks:          tasks,
		outputs:        outputs,
		errs:           errs,
		shutdown:       make(chan struct{}, 1),
		receiveTimeout: receiveTimeout,
		logger:         logger,
	}
}

// start synchronously constructs the sandbox, then — on success — runs the
// task loop until shutdown or a fatal error. On setup failure it reports a
// *SetupError and returns without ever entering the task loop; this worker
// never processes a task, but other workers are unaffected.
func (w *worker) start(ctx context.Context, factory sandbox.Factory, accountID, scriptSource, scriptPath, scriptRoot string, arg Value) {
	sb, err := factory.New(ctx, accountID, scriptSource, scriptPath, scriptRoot, arg)
	if err != nil {
		w.errs <- &SetupError{Description: "failed to construct sandbox from script", Cause: err}
		return
	}
	w.sb = sb

	defer func() {
		if cerr := sb.Close(); cerr != nil {
			w.logger.WithError(cerr).WithField("worker", w.id).Debug("sandbox close failed")
		}
	}()

	w.run(ctx)
}

// run is the worker's task loop. It returns when shut down or when a task
// call fails.
func (w *worker) run(ctx context.Context) {
	for {
		select {
		case <-w.shutdown:
			return

		case t, ok := <-w.tasks:
			if !ok {
				return
			}

			v, err := t.run(ctx, w.sb)
			if err != nil {
				w.errs <- err
				return
			}

			w.outputs <- v

		case <-time.After(w.receiveTimeout):
			// Idle tick: loop again so a pending shutdown signal is
			// observed promptly even when no task is arriving.
		}
	}
}

// stop signals the worker to exit at its next loop iteration. Safe to call
// even if the worker's sandbox setup failed or is still in flight.
func (w *worker) stop() {
	select {
	case w.shutdown <- struct{}{}:
	default:
	}
}
