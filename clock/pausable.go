package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Pausable derives game time from a base clock, subtracting time spent paused
// A loop reading a paused clock sees time stand still and accrues no tick debt
type Pausable struct {
	mu sync.RWMutex

	base      Clock
	startTime time.Time // Base time at creation, also the game time epoch

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // Base time when current pause started
	totalPausedTime time.Duration // Cumulative pause duration, excluding current pause
}

// NewPausable creates a running pausable clock over base, nil base uses Monotonic
func NewPausable(base Clock) *Pausable {
	if base == nil {
		base = NewMonotonic()
	}
	return &Pausable{
		base:      base,
		startTime: base.Now(),
	}
}

// Now returns current game time
func (pc *Pausable) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		// Frozen at the pause point
		return pc.startTime.Add(pc.pauseStartTime.Sub(pc.startTime) - pc.totalPausedTime)
	}

	gameElapsed := pc.base.Now().Sub(pc.startTime) - pc.totalPausedTime
	return pc.startTime.Add(gameElapsed)
}

// BaseTime returns the underlying clock reading, unaffected by pause
func (pc *Pausable) BaseTime() time.Time {
	return pc.base.Now()
}

// Pause stops game time advancement, no-op if already paused
func (pc *Pausable) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.pauseStartTime = pc.base.Now()
	}
}

// Resume continues game time advancement, no-op if running
func (pc *Pausable) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.totalPausedTime += pc.base.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
	}
}

// Toggle flips the pause state and returns true if the clock is now paused
func (pc *Pausable) Toggle() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.pauseStartTime = pc.base.Now()
		return true
	}
	pc.isPaused.Store(false)
	pc.totalPausedTime += pc.base.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	return false
}

// IsPaused returns current pause state
func (pc *Pausable) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time, including an ongoing pause
func (pc *Pausable) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.base.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// CurrentPauseDuration returns duration of current pause (0 if not paused)
func (pc *Pausable) CurrentPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if !pc.isPaused.Load() {
		return 0
	}
	return pc.base.Now().Sub(pc.pauseStartTime)
}
