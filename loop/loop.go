package loop

import (
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gameloop/clock"
	"github.com/lixenwraith/gameloop/status"
)

// Loop schedules fixed-rate ticks against a free-running render rate
type Loop struct {
	clock  clock.Clock
	logger *log.Logger

	start          time.Time // Clock reading at construction
	tickIntervalMs int64     // Milliseconds between ticks, 1000/tps truncated
	maxCatchup     int       // Ticks allowed per frame before a render is forced

	// Milliseconds since start at which the next tick is due
	// Always a non-negative multiple of tickIntervalMs
	nextTickMs int64
	totalTicks uint64

	statusReg *status.Registry
	stats     *loopStats
}

// loopStats caches registry pointers so the poll path never takes a lock
type loopStats struct {
	polls         *atomic.Int64
	ticks         *atomic.Int64
	renders       *atomic.Int64
	capped        *atomic.Int64
	interpolation *status.AtomicFloat
}

// New creates a loop running ticksPerSecond ticks, at most maxCatchup per frame
// The tick interval is 1000/ticksPerSecond milliseconds truncated, so rates that
// do not divide 1000 run slightly fast (7 tps ticks every 142ms)
func New(ticksPerSecond, maxCatchup int, opts ...Option) (*Loop, error) {
	if ticksPerSecond < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTickRate, ticksPerSecond)
	}
	if maxCatchup < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCatchupBound, maxCatchup)
	}

	l := &Loop{
		clock:          clock.NewMonotonic(),
		logger:         log.New(io.Discard, "", 0),
		tickIntervalMs: int64(1000 / ticksPerSecond),
		maxCatchup:     maxCatchup,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.statusReg != nil {
		l.stats = &loopStats{
			polls:         l.statusReg.Ints.Get("loop.polls"),
			ticks:         l.statusReg.Ints.Get("loop.ticks"),
			renders:       l.statusReg.Ints.Get("loop.renders"),
			capped:        l.statusReg.Ints.Get("loop.capped"),
			interpolation: l.statusReg.Floats.Get("loop.interpolation"),
		}
		l.statusReg.Ints.Get("loop.tick_interval_ms").Store(l.tickIntervalMs)
		l.statusReg.Ints.Get("loop.max_catchup").Store(int64(l.maxCatchup))
	}

	l.start = l.clock.Now()

	l.logger.Printf("gameloop: initialized with %d ticks/second (%dms/tick), max catch-up of %d ticks per frame",
		ticksPerSecond, l.tickIntervalMs, l.maxCatchup)

	return l, nil
}

// Actions returns the frame for this host loop iteration
// Call once per iteration and drain the frame before calling again
func (l *Loop) Actions() *Frame {
	if l.stats != nil {
		l.stats.polls.Add(1)
	}
	return &Frame{loop: l}
}

// Drain runs one full frame and returns its actions, the last one always a render
func (l *Loop) Drain() []Action {
	actions := make([]Action, 0, l.maxCatchup+1)
	f := l.Actions()
	for {
		a, ok := f.Next()
		if !ok {
			return actions
		}
		actions = append(actions, a)
	}
}

// TickInterval returns the effective time between ticks
func (l *Loop) TickInterval() time.Duration {
	return time.Duration(l.tickIntervalMs) * time.Millisecond
}

// TicksPerSecond returns the effective tick rate after interval truncation
func (l *Loop) TicksPerSecond() float64 {
	return 1000 / float64(l.tickIntervalMs)
}

// MaxCatchup returns the per-frame tick bound
func (l *Loop) MaxCatchup() int {
	return l.maxCatchup
}

// NextTickDeadline returns the time since start at which the next tick is due
func (l *Loop) NextTickDeadline() time.Duration {
	return time.Duration(l.nextTickMs) * time.Millisecond
}

// Elapsed returns the time since the loop was created, per its clock
func (l *Loop) Elapsed() time.Duration {
	return time.Duration(l.elapsedMs()) * time.Millisecond
}

// TotalTicks returns the number of ticks emitted over the loop's lifetime
func (l *Loop) TotalTicks() uint64 {
	return l.totalTicks
}

// elapsedMs returns whole milliseconds since start, never negative
func (l *Loop) elapsedMs() int64 {
	ms := l.clock.Now().Sub(l.start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// advance moves the tick deadline forward by one interval
func (l *Loop) advance() {
	l.nextTickMs += l.tickIntervalMs
	l.totalTicks++
	if l.stats != nil {
		l.stats.ticks.Add(1)
	}
}

// interpolation returns how far elapsedMs sits between the previous and next tick boundary
func (l *Loop) interpolation(elapsedMs int64) float64 {
	return float64(elapsedMs+l.tickIntervalMs-l.nextTickMs) / float64(l.tickIntervalMs)
}
