// Package loop implements the deWitters fixed-timestep game loop.
//
// A Loop runs simulation ticks at a fixed rate and lets the host render as
// often as it polls. Each call to Actions returns a Frame: zero or more Tick
// actions followed by exactly one Render carrying the interpolation factor
// between the last completed tick and the next one due.
//
//	l, err := loop.New(20, 5)
//	if err != nil {
//		return err
//	}
//	for running {
//		handleEvents()
//		for action := range l.Actions().All() {
//			switch action.Kind {
//			case loop.KindTick:
//				game.Tick()
//			case loop.KindRender:
//				game.Render(action.Interpolation)
//			}
//		}
//	}
//
// When rendering falls behind, at most MaxCatchup ticks run per frame before a
// render is forced, so the game slows down instead of spiraling into unbounded
// catch-up work. With 20 ticks per second and a bound of 5, the game slows
// once the render rate drops below 4 frames per second.
//
// A Loop is not safe for concurrent use. Drain each Frame fully before the
// next call to Actions; ticks and renders of an abandoned Frame are lost.
package loop
