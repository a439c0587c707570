package log

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger knows how to log messages at different levels.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// Dummy is a no-op logger.
var Dummy Logger = dummy{}

type dummy struct{}

func (dummy) Infof(string, ...interface{})    {}
func (dummy) Warningf(string, ...interface{}) {}
func (dummy) Errorf(string, ...interface{})   {}
func (dummy) Debugf(string, ...interface{})   {}

// Config is the logger configuration.
type Config struct {
	Output io.Writer
	Debug  bool
}

// New returns a zerolog based logger.
func New(cfg Config) Logger {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	l := zerolog.New(cfg.Output).With().Timestamp().Logger().Level(level)

	return logger{l: l}
}

type logger struct {
	l zerolog.Logger
}

func (lg logger) Infof(format string, args ...interface{}) {
	lg.l.Info().Msgf(format, args...)
}

func (lg logger) Warningf(format string, args ...interface{}) {
	lg.l.Warn().Msgf(format, args...)
}

func (lg logger) Errorf(format string, args ...interface{}) {
	lg.l.Error().Msgf(format, args...)
}

func (lg logger) Debugf(format string, args ...interface{}) {
	lg.l.Debug().Msgf(format, args...)
}
