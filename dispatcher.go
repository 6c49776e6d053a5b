package mapreduce

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ygrebnov/mapreduce/log"
	"github.com/ygrebnov/mapreduce/metrics"
)

// idlePause is how long the dispatcher sleeps when none of its five sources
// have anything queued, before re-entering the priority chain. It keeps the
// loop from busy-spinning without adding real latency.
const idlePause = time.Millisecond

// errNoQueuedError is returned if force shutdown triggers without a queued
// error to surface. Invariant I5 guarantees this cannot happen in a correct
// run; it is a defensive fallback, not an expected code path.
var errNoQueuedError = errors.New(Namespace + ": force shutdown triggered with no queued error")

// dispatcher is the single coordinating goroutine of a run: it drains input
// vertices, worker outputs, and worker errors, feeds the worker input queue
// with map and reduce tasks, holds at most one carry intermediate, tracks
// pending work, and decides when shutdown may complete.
type dispatcher struct {
	inputVertices  <-chan Vertex
	workerOutputs  <-chan Value
	workerErrors   <-chan error
	shutdownSignal <-chan struct{}
	reporterTicks  <-chan struct{}
	workerTasks    chan<- workerTask
	allWorkersGone <-chan struct{}

	workers []*worker
	wg      *sync.WaitGroup

	logger  log.Logger
	metrics *runMetrics
}

// runMetrics groups the instruments the dispatcher records into.
type runMetrics struct {
	progress metrics.Counter
	pending  metrics.UpDownCounter
	duration metrics.Histogram
}

func newRunMetrics(p metrics.Provider) *runMetrics {
	return &runMetrics{
		progress: p.Counter("mapreduce_progress_total", metrics.WithDescription("vertices dispatched as map tasks")),
		pending:  p.UpDownCounter("mapreduce_pending", metrics.WithDescription("in-flight worker tasks")),
		duration: p.Histogram("mapreduce_run_duration_seconds", metrics.WithUnit("seconds")),
	}
}

// run executes the dispatcher's main loop and returns the run's result
// value (on graceful termination) or its first recorded error (on forced
// termination).
func (d *dispatcher) run(ctx context.Context) (Value, error) {
	start := time.Now()
	defer func() { d.metrics.duration.Record(time.Since(start).Seconds()) }()

	var (
		pending          int
		carry            *Value
		forceShutdown    bool
		gracefulShutdown bool
		progress         int
		reportNum        int
		firstErr         error
	)

	for {
		handled := false

		// Priority 1: any error preempts everything else.
		select {
		case err := <-d.workerErrors:
			if firstErr == nil {
				firstErr = err
			}
			forceShutdown = true
			handled = true
		default:
		}

		// Priority 2: graceful shutdown request.
		if !handled {
			select {
			case <-d.shutdownSignal:
				gracefulShutdown = true
				handled = true
			default:
			}
		}

		// Priority 3: reporter heartbeat (advisory; takes priority only to
		// guarantee liveness of reporting, never to starve data movement for
		// more than one iteration).
		if !handled {
			select {
			case <-d.reporterTicks:
				d.report(reportNum, progress, pending, gracefulShutdown)
				reportNum++
				handled = true
			default:
			}
		}

		// Priority 4: a worker output arrived — consume it, and either pair it
		// with the carry or become the new carry (I2, I3).
		if !handled {
			select {
			case v := <-d.workerOutputs:
				pending--
				d.metrics.pending.Add(-1)

				if carry != nil {
					c := *carry
					carry = nil
					if d.dispatch(reduceTask{a: c, b: v}) {
						pending++
						d.metrics.pending.Add(1)
					} else {
						forceShutdown = true
					}
				} else {
					cv := v
					carry = &cv
				}
				handled = true
			default:
			}
		}

		// Priority 5: a new input vertex arrived — dispatch it as a map task.
		if !handled {
			select {
			case vertex := <-d.inputVertices:
				if d.dispatch(mapTask{vertex: vertex}) {
					pending++
					progress++
					d.metrics.pending.Add(1)
					d.metrics.progress.Add(1)
				} else {
					forceShutdown = true
				}
				handled = true
			default:
			}
		}

		if !handled {
			time.Sleep(idlePause)
		}

		if forceShutdown || (gracefulShutdown && pending == 0) {
			break
		}
	}

	for _, w := range d.workers {
		w.stop()
	}
	d.wg.Wait()

	if forceShutdown {
		if firstErr == nil {
			select {
			case firstErr = <-d.workerErrors:
			default:
				firstErr = errNoQueuedError
			}
		}
		return Value{}, firstErr
	}

	if carry != nil {
		return *carry, nil
	}
	return Null, nil
}

// dispatch attempts to hand t to the worker input queue. It blocks up to the
// channel's bounded capacity (legitimate backpressure), but gives up and
// reports failure if every worker has already exited.
func (d *dispatcher) dispatch(t workerTask) bool {
	select {
	case d.workerTasks <- t:
		return true
	case <-d.allWorkersGone:
		return false
	}
}

func (d *dispatcher) report(reportNum, progress, pending int, windingDown bool) {
	d.logger.WithFields(log.Fields{
		"report":       reportNum,
		"progress":     progress,
		"pending":      pending,
		"winding_down": windingDown,
	}).Info("mapreduce: progress report")
}
