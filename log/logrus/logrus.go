package logrus

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/rle"
)

var _ rle.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New builds a logrus logger writing to w with a text or JSON formatter.
func New(w io.Writer, level, format string) (LogrusLogger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return LogrusLogger{}, fmt.Errorf("logrus: %w", err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return LogrusLogger{}, fmt.Errorf("logrus: unknown format %q", format)
	}
	return LogrusLogger{E: logrus.NewEntry(l)}, nil
}

func (l LogrusLogger) Debug(msg string, f rle.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f rle.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l LogrusLogger) Warn(msg string, f rle.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l LogrusLogger) Error(msg string, f rle.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
