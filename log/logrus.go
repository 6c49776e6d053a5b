package log

import "github.com/sirupsen/logrus"

// logrusLogger adapts *logrus.Logger (or a *logrus.Entry, via WithField) to
// the Logger interface.
type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrus wraps l as a Logger. A nil l gets a fresh logrus.Logger with
// default settings.
func NewLogrus(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.New()
	}
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

func (l *logrusLogger) Debug(args ...interface{})            { l.entry.Debug(args...) }
func (l *logrusLogger) Debugf(f string, args ...interface{}) { l.entry.Debugf(f, args...) }
func (l *logrusLogger) Info(args ...interface{})             { l.entry.Info(args...) }
func (l *logrusLogger) Infof(f string, args ...interface{})  { l.entry.Infof(f, args...) }
func (l *logrusLogger) Warn(args ...interface{})             { l.entry.Warn(args...) }
func (l *logrusLogger) Warnf(f string, args ...interface{})  { l.entry.Warnf(f, args...) }
func (l *logrusLogger) Error(args ...interface{})            { l.entry.Error(args...) }
func (l *logrusLogger) Errorf(f string, args ...interface{}) { l.entry.Errorf(f, args...) }

func (l *logrusLogger) WithField(key string, value interface{}) Logger {
	return &logrusLogger{entry: l.entry.WithField(key, value)}
}

func (l *logrusLogger) WithFields(fields Fields) Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logrusLogger) WithError(err error) Logger {
	return &logrusLogger{entry: l.entry.WithError(err)}
}
