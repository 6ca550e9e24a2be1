// Package log configures the process-wide logrus logger.
package log

import (
	"io"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

// ModuleField is the field naming the component that emitted an entry.
const ModuleField = "module"

const (
	rotationTime = 24 * time.Hour
	maxAge       = 7 * 24 * time.Hour
)

// Options controls logger setup.
type Options struct {
	// Verbosity: 0 warn, 1 info, 2+ debug.
	Verbosity int
	// Output receives log lines when File is empty.
	Output io.Writer
	// Color enables colored level names.
	Color bool
	// File, when set, sends logs to daily rotated files named File.YYYYMMDD.
	File string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup configures the standard logrus logger. The returned closer releases
// the log file, if any.
func Setup(opts Options) (io.Closer, error) {
	logrus.SetLevel(Level(opts.Verbosity))

	if opts.File == "" {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors:    !opts.Color,
			ForceColors:      opts.Color,
			DisableTimestamp: true,
		})
		logrus.SetOutput(opts.Output)
		return nopCloser{}, nil
	}

	writer, err := rotatelogs.New(
		opts.File+".%Y%m%d",
		rotatelogs.WithLinkName(opts.File),
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(rotationTime),
	)
	if err != nil {
		return nil, err
	}
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	logrus.SetOutput(writer)
	return writer, nil
}

// Level maps a -v count to a logrus level.
func Level(verbosity int) logrus.Level {
	switch {
	case verbosity <= 0:
		return logrus.WarnLevel
	case verbosity == 1:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

// Module returns an entry tagged with the component name.
func Module(name string) *logrus.Entry {
	return logrus.WithField(ModuleField, name)
}
