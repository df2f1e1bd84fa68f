// Options for configuring objects, builders, and managers.
package propbag

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Option applies configuration to a constructor via functional options.
// Options a constructor has no use for are ignored: WithTimeLimit only
// affects NewManager, WithFields only affects New.
type Option func(*settings)

type settings struct {
	logger    *slog.Logger
	id        string
	fields    map[string]any
	timeLimit time.Duration
}

func newSettings(opts ...Option) settings {
	s := settings{timeLimit: DefaultTimeLimit}
	for _, opt := range opts {
		opt(&s)
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	return s
}

// WithLogger configures the instance with an injected logger.
// When omitted, log lines go to slog.Default() resolved at call time.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithID overrides the generated instance ID. Used when rehydrating
// snapshots; an empty id keeps the generated one.
func WithID(id string) Option {
	return func(s *settings) {
		if id != "" {
			s.id = id
		}
	}
}

// WithFields seeds a mutable Object with initial fields (copied).
func WithFields(fields map[string]any) Option {
	return func(s *settings) {
		s.fields = fields
	}
}

// WithTimeLimit configures a Manager's holding time limit.
// Non-positive values keep DefaultTimeLimit.
func WithTimeLimit(limit time.Duration) Option {
	return func(s *settings) {
		if limit > 0 {
			s.timeLimit = limit
		}
	}
}

func logOrDefault(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
