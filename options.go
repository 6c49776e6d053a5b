package mapreduce

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Option configures a RunConfig. Pass Options to NewRunConfig, or to Start
// to construct a WorkerPool directly.
type Option func(*RunConfig)

// WithAccountID sets the account the run executes under.
func WithAccountID(id uuid.UUID) Option {
	return func(c *RunConfig) { c.AccountID = id }
}

// WithScript sets the script source and its logical path.
func WithScript(source, path string) Option {
	return func(c *RunConfig) {
		c.ScriptSource = source
		c.ScriptPath = path
	}
}

// WithScriptRoot sets the filesystem prefix sandboxes use for module resolution.
func WithScriptRoot(root string) Option {
	return func(c *RunConfig) { c.ScriptRoot = root }
}

// WithArg sets the opaque argument value passed to every sandbox.
func WithArg(arg Value) Option {
	return func(c *RunConfig) { c.Arg = arg }
}

// WithWorkerPoolSize sets the number of workers (must be >= 1). Default: 4.
func WithWorkerPoolSize(n uint) Option {
	return func(c *RunConfig) { c.WorkerPoolSize = n }
}

// WithChannelCapacity sets the bound applied to every internal data channel
// (must be > 0). Default: 1000.
func WithChannelCapacity(n uint) Option {
	return func(c *RunConfig) { c.ChannelCapacity = n }
}

// WithReporterPeriod sets the heartbeat interval (must be > 0). Default: 30s.
func WithReporterPeriod(d time.Duration) Option {
	return func(c *RunConfig) { c.ReporterPeriod = d }
}

// WithReceiveTimeout sets how long a worker waits on an idle input channel
// before re-checking its shutdown flag (must be > 0). Default: 1s.
func WithReceiveTimeout(d time.Duration) Option {
	return func(c *RunConfig) { c.ReceiveTimeout = d }
}

// NewRunConfig assembles a RunConfig from defaults and opts, validating the
// result. Pass the result to New.
func NewRunConfig(opts ...Option) (RunConfig, error) {
	return buildConfig(opts...)
}

// buildConfig assembles a RunConfig from defaults and options, then validates it.
func buildConfig(opts ...Option) (RunConfig, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			panic("nil mapreduce option")
		}
		opt(&cfg)
	}

	if err := validateConfig(&cfg); err != nil {
		return RunConfig{}, fmt.Errorf("mapreduce: %w", err)
	}
	return cfg, nil
}
