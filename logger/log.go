package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	flag  bool
	proto string
	entry *logrus.Entry
}

// New returns a logger tagging every entry with proto. Debug output is only
// emitted when flag is set.
func New(flag bool, proto string) *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if flag {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return &Logger{
		flag:  flag,
		proto: proto,
		entry: l.WithFields(logrus.Fields{
			"protocol": proto,
		}),
	}
}

// With returns a logger sharing the same output but tagged with another protocol.
func (l *Logger) With(proto string) *Logger {
	return &Logger{
		flag:  l.flag,
		proto: proto,
		entry: l.entry.Logger.WithFields(logrus.Fields{
			"protocol": proto,
		}),
	}
}

func (l *Logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

func (l *Logger) DebugMode() bool {
	return l.flag
}

func (l *Logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *Logger) Debug(args ...interface{}) {
	if l.flag {
		l.entry.Debug(args...)
	}
}

func (l *Logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *Logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.flag {
		l.entry.Debugf(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}
