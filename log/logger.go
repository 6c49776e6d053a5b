// Package log defines the small structured-logging interface the mapreduce
// core logs through, adapted from firestige-Otus's pkg/log package: a
// minimal leveled interface in front of a concrete backend, so the core
// isn't forced onto any particular logging library.
package log

// Logger is a minimal structured logger. Implementations must be safe for
// concurrent use — the dispatcher and every worker log through the same
// instance.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})

	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
}

// Fields is a set of structured key-value pairs attached to a log entry.
type Fields map[string]interface{}

// Nop is a Logger that discards everything. It is the default so library
// consumers aren't forced into a logging backend.
var Nop Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Debug(...interface{})          {}
func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Info(...interface{})           {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warn(...interface{})           {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Error(...interface{})          {}
func (nopLogger) Errorf(string, ...interface{}) {}

func (l nopLogger) WithField(string, interface{}) Logger  { return l }
func (l nopLogger) WithFields(Fields) Logger               { return l }
func (l nopLogger) WithError(error) Logger                 { return l }
