package mapreduce

import (
	"context"
	"fmt"
	"sync"

	"github.com/ygrebnov/mapreduce/log"
	"github.com/ygrebnov/mapreduce/metrics"
	"github.com/ygrebnov/mapreduce/sandbox"
)

// PoolOption configures facade-level concerns that sit outside RunConfig's
// per-run semantics: logging, metrics, and the process-wide RunLimiter.
type PoolOption func(*poolSettings)

type poolSettings struct {
	logger  log.Logger
	metrics metrics.Provider
	limiter *RunLimiter
}

func defaultPoolSettings() poolSettings {
	return poolSettings{logger: log.Nop, metrics: metrics.NewNoopProvider()}
}

// WithLogger sets the structured logger the pool and its workers log
// through. Default: a no-op logger.
func WithLogger(l log.Logger) PoolOption {
	return func(s *poolSettings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetricsProvider sets the metrics.Provider the dispatcher records
// instruments through. Default: a no-op provider.
func WithMetricsProvider(p metrics.Provider) PoolOption {
	return func(s *poolSettings) {
		if p != nil {
			s.metrics = p
		}
	}
}

// WithRunLimiter attaches a process-wide RunLimiter. New acquires a slot
// from it (failing with ErrNoCapacity if none is free) before spawning
// workers, and Finish releases it.
func WithRunLimiter(l *RunLimiter) PoolOption {
	return func(s *poolSettings) { s.limiter = l }
}

// WorkerPool owns the worker set, the dispatcher, and the reporter for
// exactly one run.
type WorkerPool struct {
	cfg      RunConfig
	settings poolSettings

	inputVertices chan Vertex
	workerOutputs chan Value
	workerErrors  chan error
	workerTasks   chan workerTask
	shutdown      chan struct{}
	reporterTicks chan struct{}
	runDone       chan struct{}

	workers  []*worker
	workerWG *sync.WaitGroup

	rep *reporter

	limiterToken interface{}

	finished  lifecycleOnce
	result    Value
	resultErr error
	resultCh  chan runResult
}

type runResult struct {
	value Value
	err   error
}

// New builds a WorkerPool from cfg (construct cfg via NewRunConfig) and
// settings, then immediately spawns its workers, dispatcher, and reporter.
// It returns ErrNoCapacity if a RunLimiter is configured and has no free
// slot.
func New(ctx context.Context, factory sandbox.Factory, cfg RunConfig, opts ...PoolOption) (*WorkerPool, error) {
	settings := defaultPoolSettings()
	for _, o := range opts {
		if o != nil {
			o(&settings)
		}
	}

	token, ok := settings.limiter.tryAcquire()
	if !ok {
		return nil, ErrNoCapacity
	}

	p := &WorkerPool{
		cfg:           cfg,
		settings:      settings,
		inputVertices: make(chan Vertex, cfg.ChannelCapacity),
		workerOutputs: make(chan Value, cfg.ChannelCapacity),
		workerErrors:  make(chan error, errorsChannelCapacity(cfg.WorkerPoolSize)),
		workerTasks:   make(chan workerTask, cfg.ChannelCapacity),
		shutdown:      make(chan struct{}),
		reporterTicks: make(chan struct{}, 1),
		runDone:       make(chan struct{}),
		workerWG:      &sync.WaitGroup{},
		limiterToken:  token,
		resultCh:      make(chan runResult, 1),
	}

	allWorkersGone := make(chan struct{})

	p.workers = make([]*worker, cfg.WorkerPoolSize)
	for i := range p.workers {
		p.workers[i] = newWorker(i, p.workerTasks, p.workerOutputs, p.workerErrors, cfg.ReceiveTimeout, settings.logger)
	}

	p.workerWG.Add(len(p.workers))
	for _, w := range p.workers {
		go func(w *worker) {
			defer p.workerWG.Done()
			w.start(ctx, factory, cfg.AccountID.String(), cfg.ScriptSource, cfg.ScriptPath, cfg.ScriptRoot, cfg.Arg)
		}(w)
	}
	go func() {
		p.workerWG.Wait()
		close(allWorkersGone)
	}()

	p.rep = newReporter(cfg.ReporterPeriod, p.reporterTicks)
	reporterDone := make(chan struct{})
	go func() {
		p.rep.run(ctx)
		close(reporterDone)
	}()

	disp := &dispatcher{
		inputVertices:  p.inputVertices,
		workerOutputs:  p.workerOutputs,
		workerErrors:   p.workerErrors,
		shutdownSignal: p.shutdown,
		reporterTicks:  p.reporterTicks,
		workerTasks:    p.workerTasks,
		allWorkersGone: allWorkersGone,
		workers:        p.workers,
		wg:             p.workerWG,
		logger:         settings.logger,
		metrics:        newRunMetrics(settings.metrics),
	}
	go func() {
		v, err := disp.run(ctx)
		close(p.runDone)
		<-reporterDone
		p.resultCh <- runResult{value: v, err: err}
	}()

	return p, nil
}

// Submit enqueues one vertex. It returns false if the pool has already
// finished, or its dispatcher has already terminated on its own (e.g. a
// worker error triggered force shutdown before Finish was called); it
// blocks up to ChannelCapacity as ordinary backpressure otherwise
// (spec.md §4.4).
func (p *WorkerPool) Submit(v Vertex) bool {
	select {
	case p.inputVertices <- v:
		return true
	case <-p.shutdown:
		return false
	case <-p.runDone:
		return false
	}
}

// Finish signals shutdown, waits for the dispatcher and reporter to join,
// and returns the run's result or its first error. Finish is idempotent:
// calling it again after it has already completed returns the same result
// without re-running the shutdown sequence (spec.md §4.4).
func (p *WorkerPool) Finish() (Value, error) {
	p.finished.run(func() {
		close(p.shutdown)
		p.rep.close()
		r := <-p.resultCh
		p.result, p.resultErr = r.value, r.err
		p.settings.limiter.release(p.limiterToken)
	})
	return p.result, p.resultErr
}

// Start builds and runs a WorkerPool in one call, mirroring spec.md §4.4's
// start(config) -> Pool vocabulary directly. It is equivalent to New with
// no PoolOptions.
func Start(ctx context.Context, factory sandbox.Factory, opts ...Option) (*WorkerPool, error) {
	cfg, err := NewRunConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("mapreduce: %w", err)
	}
	return New(ctx, factory, cfg)
}
