// Package mapreduce implements a streaming map-reduce executor that runs a
// user-supplied script's map and reduce functions over a caller-fed stream
// of graph vertices, folding the results into a single aggregated value.
//
// A WorkerPool owns a set of Workers, each holding its own script sandbox
// (see package sandbox), a Dispatcher that streams vertices in as map tasks
// and opportunistically pairs worker outputs into reduce tasks, and a
// Reporter that emits a periodic progress heartbeat. Construct a RunConfig
// with NewRunConfig and a set of Options, then call New:
//
//	cfg, err := mapreduce.NewRunConfig(
//		mapreduce.WithAccountID(accountID),
//		mapreduce.WithScript(source, path),
//	)
//	pool, err := mapreduce.New(ctx, factory, cfg)
//	for _, v := range vertices {
//		pool.Submit(v)
//	}
//	result, err := pool.Finish()
//
// Concurrency model
// One goroutine runs each worker, one runs the dispatcher, one runs the
// reporter. Workers are purely sequential and share no mutable state.
// The dispatcher is the only place where pending-task bookkeeping and the
// single unpaired "carry" intermediate are mutated, so no locking is
// needed there either.
//
// Ambient stack
// Structured logging goes through package log (a minimal interface backed
// by logrus); metrics go through package metrics (backed by Prometheus or
// discarded by default); RunConfig can be loaded from YAML via
// LoadConfigFile in addition to being built with Options.
package mapreduce
