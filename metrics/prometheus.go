package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusProvider adapts Provider onto a prometheus.Registerer, so the
// instruments the dispatcher creates show up on whatever
// /metrics endpoint the host process already exposes.
//
// Grounded on the retrieved pack's use of prometheus/client_golang for
// process instrumentation (ChuLiYu-raft-recovery, TheEntropyCollective-
// noisefs, dshills-langgraph-go). Instruments here carry no labels —
// Provider's Add/Record surface doesn't expose any — so each is backed by
// a single unlabeled prometheus.Counter/Gauge/Histogram.
type PrometheusProvider struct {
	reg prometheus.Registerer

	mu         sync.Mutex
	counters   map[string]prometheus.Counter
	updowns    map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// NewPrometheusProvider constructs a Provider backed by reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewPrometheusProvider(reg prometheus.Registerer) *PrometheusProvider {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &PrometheusProvider{
		reg:        reg,
		counters:   make(map[string]prometheus.Counter),
		updowns:    make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}
}

func (p *PrometheusProvider) Counter(name string, opts ...InstrumentOption) Counter {
	cfg := applyOptions(opts)

	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.counters[name]; ok {
		return promCounter{c}
	}
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: helpFor(cfg, name)})
	p.reg.MustRegister(c)
	p.counters[name] = c
	return promCounter{c}
}

func (p *PrometheusProvider) UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter {
	cfg := applyOptions(opts)

	p.mu.Lock()
	defer p.mu.Unlock()

	if g, ok := p.updowns[name]; ok {
		return promGauge{g}
	}
	g := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: helpFor(cfg, name)})
	p.reg.MustRegister(g)
	p.updowns[name] = g
	return promGauge{g}
}

func (p *PrometheusProvider) Histogram(name string, opts ...InstrumentOption) Histogram {
	cfg := applyOptions(opts)

	p.mu.Lock()
	defer p.mu.Unlock()

	if h, ok := p.histograms[name]; ok {
		return promHistogram{h}
	}
	h := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    name,
		Help:    helpFor(cfg, name),
		Buckets: prometheus.DefBuckets,
	})
	p.reg.MustRegister(h)
	p.histograms[name] = h
	return promHistogram{h}
}

func helpFor(cfg InstrumentConfig, name string) string {
	if cfg.Description != "" {
		return cfg.Description
	}
	return name
}

type promCounter struct{ c prometheus.Counter }

func (p promCounter) Add(n int64) { p.c.Add(float64(n)) }

type promGauge struct{ g prometheus.Gauge }

func (p promGauge) Add(n int64) { p.g.Add(float64(n)) }

type promHistogram struct{ h prometheus.Histogram }

func (p promHistogram) Record(v float64) { p.h.Observe(v) }
