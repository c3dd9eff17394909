package loop

import (
	"log"

	"github.com/lixenwraith/gameloop/clock"
	"github.com/lixenwraith/gameloop/status"
)

// Option configures a Loop at construction
type Option func(*Loop)

// WithClock sets the time source, default is clock.NewMonotonic()
// Pass a *clock.Pausable to stop tick debt from accruing while the game is paused
func WithClock(c clock.Clock) Option {
	return func(l *Loop) {
		if c != nil {
			l.clock = c
		}
	}
}

// WithLogger sets the diagnostics sink, default discards
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithStatus publishes loop counters into reg
func WithStatus(reg *status.Registry) Option {
	return func(l *Loop) {
		l.statusReg = reg
	}
}
