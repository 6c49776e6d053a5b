package mapreduce

import (
	"time"

	"github.com/google/uuid"
)

// RunConfig holds the immutable configuration for one WorkerPool run.
type RunConfig struct {
	// AccountID identifies the account the run executes under; it is passed
	// through to the sandbox factory unchanged so the sandbox can open its
	// own datastore transaction scoped to this account.
	AccountID uuid.UUID

	// ScriptSource is the script's contents, evaluated once per worker.
	ScriptSource string

	// ScriptPath is the script's logical path, used for error messages and
	// module resolution relative to ScriptRoot.
	ScriptPath string

	// ScriptRoot is a filesystem prefix made available to sandboxes for
	// module resolution. Empty means no additional search path.
	ScriptRoot string

	// Arg is an opaque argument value passed to every sandbox.
	Arg Value

	// WorkerPoolSize is the number of workers, each owning one sandbox.
	// Default: 4.
	WorkerPoolSize uint

	// ChannelCapacity bounds every internal data channel (vertices, worker
	// tasks, worker outputs). Default: 1000.
	ChannelCapacity uint

	// ReporterPeriod is the heartbeat interval. Default: 30s.
	ReporterPeriod time.Duration

	// ReceiveTimeout bounds how long a worker waits on an idle input channel
	// before re-checking its shutdown flag. Default: 1s.
	ReceiveTimeout time.Duration
}

// defaultConfig centralizes default values for RunConfig. It is the base
// that buildConfig (behind NewRunConfig and Start) applies options onto.
func defaultConfig() RunConfig {
	return RunConfig{
		WorkerPoolSize:  4,
		ChannelCapacity: 1000,
		ReporterPeriod:  30 * time.Second,
		ReceiveTimeout:  time.Second,
	}
}

// validateConfig performs the invariant checks spec.md §6 requires of the
// configuration surface: worker_pool_size >= 1, channel_capacity > 0,
// receive_timeout > 0, reporter_period > 0.
func validateConfig(cfg *RunConfig) error {
	switch {
	case cfg.WorkerPoolSize == 0:
		return wrapInvalid("worker pool size must be >= 1")
	case cfg.ChannelCapacity == 0:
		return wrapInvalid("channel capacity must be > 0")
	case cfg.ReceiveTimeout <= 0:
		return wrapInvalid("receive timeout must be > 0")
	case cfg.ReporterPeriod <= 0:
		return wrapInvalid("reporter period must be > 0")
	case cfg.ScriptSource == "":
		return wrapInvalid("script source must not be empty")
	}
	return nil
}

func wrapInvalid(reason string) error {
	return &configError{reason: reason}
}

type configError struct{ reason string }

func (e *configError) Error() string { return ErrInvalidConfig.Error() + ": " + e.reason }

func (e *configError) Unwrap() error { return ErrInvalidConfig }
