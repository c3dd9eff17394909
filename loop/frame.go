package loop

import "iter"

// Frame is the action sequence of one poll: ticks, then exactly one render
// A Frame is single pass; once the render is drawn Next reports false forever
type Frame struct {
	loop *Loop

	ticks    int
	rendered bool
}

// Next returns the next action of the frame, or false once the frame is exhausted
//
// The clock is read on every call. Time the host spends simulating between
// ticks counts toward both further ticks and the render's interpolation.
func (f *Frame) Next() (Action, bool) {
	if f.rendered {
		return Action{}, false
	}

	l := f.loop
	due := l.elapsedMs() > l.nextTickMs
	if due && f.ticks < l.maxCatchup {
		l.advance()
		f.ticks++
		return Tick(), true
	}

	f.rendered = true

	// Fresh reading, not the one used for the tick check
	alpha := l.interpolation(l.elapsedMs())

	if l.stats != nil {
		l.stats.renders.Add(1)
		l.stats.interpolation.Set(alpha)
		if due {
			l.stats.capped.Add(1)
		}
	}

	return Render(alpha), true
}

// All returns an iterator over the remaining actions of the frame
func (f *Frame) All() iter.Seq[Action] {
	return func(yield func(Action) bool) {
		for {
			a, ok := f.Next()
			if !ok || !yield(a) {
				return
			}
		}
	}
}

// Ticks returns the number of ticks emitted so far
func (f *Frame) Ticks() int {
	return f.ticks
}

// Done reports whether the render has been emitted
func (f *Frame) Done() bool {
	return f.rendered
}
