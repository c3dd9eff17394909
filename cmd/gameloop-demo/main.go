// Command gameloop-demo bounces balls in the terminal at a fixed tick rate,
// rendering as fast as the frame cap allows with interpolated positions.
//
// Keys: q/Esc quit, p/space pause, +/- add or remove balls, m metronome.
// Run with -lag 300ms to watch the catch-up bound slow the game down.
package main

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gameloop/clock"
	"github.com/lixenwraith/gameloop/loop"
	"github.com/lixenwraith/gameloop/status"
)

// app ties the loop, its clock, the world and the screen together
type app struct {
	cfg       *Config
	screen    tcell.Screen
	clock     *clock.Pausable
	loop      *loop.Loop
	world     *World
	metronome *Metronome
	reg       *status.Registry

	statPaused *atomic.Bool
	statAudio  *atomic.Bool
}

// newApp builds the loop over a pausable clock and sizes the world to the screen
func newApp(cfg *Config, screen tcell.Screen, base clock.Clock) (*app, error) {
	reg := status.NewRegistry()
	pc := clock.NewPausable(base)

	gl, err := loop.New(cfg.TicksPerSecond, cfg.MaxCatchup,
		loop.WithClock(pc),
		loop.WithLogger(log.Default()),
		loop.WithStatus(reg),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create game loop: %w", err)
	}

	width, height := screen.Size()
	a := &app{
		cfg:        cfg,
		screen:     screen,
		clock:      pc,
		loop:       gl,
		world:      NewWorld(width, max(height-1, 0), cfg.Balls, time.Now().UnixNano()),
		metronome:  NewMetronome(cfg.Volume, cfg.Audio),
		reg:        reg,
		statPaused: reg.Bools.Get("demo.paused"),
		statAudio:  reg.Bools.Get("demo.audio"),
	}
	a.statAudio.Store(cfg.Audio)
	return a, nil
}

// handleEvent applies one input event, returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'p', ' ':
				paused := a.clock.Toggle()
				a.statPaused.Store(paused)
				log.Printf("paused=%v after %v of game time", paused, a.loop.Elapsed())
			case '+', '=':
				a.world.AddBall()
			case '-', '_':
				a.world.RemoveBall()
			case 'm':
				a.statAudio.Store(a.metronome.Toggle())
			}
		}
	case *tcell.EventResize:
		width, height := a.screen.Size()
		a.world.Resize(width, max(height-1, 0))
		a.screen.Sync()
	}
	return true
}

// frame polls the loop once and drains its actions, returns ticks run
func (a *app) frame() int {
	ticks := 0
	for action := range a.loop.Actions().All() {
		switch action.Kind {
		case loop.KindTick:
			a.world.Tick()
			ticks++
		case loop.KindRender:
			if a.cfg.Lag > 0 {
				time.Sleep(a.cfg.Lag)
			}
			hud := hudLine(a.loop, a.reg, action.Interpolation, len(a.world.Balls))
			drawFrame(a.screen, a.world, action.Interpolation, hud)
		}
	}

	if ticks > 0 {
		// Accent the first tick of each simulated second
		perSecond := uint64(max(int(a.loop.TicksPerSecond()), 1))
		accent := a.world.Ticks%perSecond < uint64(ticks)
		a.metronome.Click(accent)
	}
	return ticks
}

// run owns the main thread until the user quits
func (a *app) run() {
	events := make(chan tcell.Event, 64)
	safeGo(a.screen, func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	var frameInterval time.Duration
	if a.cfg.FPS > 0 {
		frameInterval = time.Second / time.Duration(a.cfg.FPS)
	}

	for {
		frameStart := time.Now()

		for pending := true; pending; {
			select {
			case ev := <-events:
				if !a.handleEvent(ev) {
					return
				}
			default:
				pending = false
			}
		}

		a.frame()

		if frameInterval > 0 {
			if d := frameInterval - time.Since(frameStart); d > 0 {
				time.Sleep(d)
			}
		}
	}
}

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "gameloop-demo: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	defer func() {
		if r := recover(); r != nil {
			handleCrash(screen, r)
		}
	}()

	a, err := newApp(cfg, screen, clock.NewMonotonic())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "gameloop-demo: %v\n", err)
		os.Exit(1)
	}

	if err := a.metronome.Init(); err != nil {
		// Non-fatal, the demo runs silent
		log.Printf("Audio initialization failed: %v", err)
	}
	defer a.metronome.Close()

	a.run()
}
