package loop

import "errors"

var (
	// ErrInvalidTickRate is returned by New when ticks per second is below 1
	ErrInvalidTickRate = errors.New("ticks per second must be >= 1")

	// ErrInvalidCatchupBound is returned by New when the catch-up bound is below 1
	ErrInvalidCatchupBound = errors.New("max catch-up ticks must be >= 1")
)
