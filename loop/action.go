package loop

import "fmt"

// Kind tags an Action
type Kind uint8

const (
	// KindTick asks the host to simulate one fixed tick
	KindTick Kind = iota
	// KindRender asks the host to render state interpolated by Action.Interpolation
	KindRender
)

func (k Kind) String() string {
	switch k {
	case KindTick:
		return "tick"
	case KindRender:
		return "render"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Action is one instruction of a Frame
type Action struct {
	Kind Kind

	// Interpolation is the position of now between the previous tick boundary
	// (0) and the next one (1). Only set for KindRender. Not clamped: slow
	// frames that hit the catch-up bound report values above 1.
	Interpolation float64
}

// Tick returns a tick action
func Tick() Action {
	return Action{Kind: KindTick}
}

// Render returns a render action with the given interpolation
func Render(interpolation float64) Action {
	return Action{Kind: KindRender, Interpolation: interpolation}
}

// IsTick reports whether a is a tick
func (a Action) IsTick() bool { return a.Kind == KindTick }

// IsRender reports whether a is a render
func (a Action) IsRender() bool { return a.Kind == KindRender }

func (a Action) String() string {
	if a.Kind == KindRender {
		return fmt.Sprintf("render(%.3f)", a.Interpolation)
	}
	return a.Kind.String()
}
