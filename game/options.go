package game

import (
	"github.com/automoto/gravityman/shared/leveldata"
	"go.uber.org/zap"
)

type options struct {
	logger    *zap.Logger
	levels    []leveldata.Level
	generated int
}

// Option configures a Session.
type Option func(*options)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLevels replaces the built-in level sequence.
func WithLevels(levels []leveldata.Level) Option {
	return func(o *options) {
		o.levels = levels
	}
}

// WithGenerated appends n procedurally generated levels to the sequence.
func WithGenerated(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.generated = n
		}
	}
}
