package main

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gameloop/loop"
	"github.com/lixenwraith/gameloop/status"
)

var hudStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)

// drawFrame renders balls at the interpolated position and the HUD on the row below the arena
func drawFrame(screen tcell.Screen, w *World, alpha float64, hud string) {
	screen.Clear()

	for i := range w.Balls {
		b := &w.Balls[i]
		x, y := b.Cell(alpha)
		if x < 0 || x >= w.Width || y < 0 || y >= w.Height {
			continue
		}
		screen.SetContent(x, y, b.Glyph, nil, tcell.StyleDefault.Foreground(b.Color))
	}

	drawText(screen, 0, w.Height, w.Width, hud, hudStyle)
	screen.Show()
}

// drawText writes s from (x, y), padding with spaces up to width
func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	col := 0
	for _, r := range s {
		if col >= width {
			return
		}
		screen.SetContent(x+col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		screen.SetContent(x+col, y, ' ', nil, style)
	}
}

// hudLine summarizes loop settings and counters
func hudLine(l *loop.Loop, reg *status.Registry, alpha float64, balls int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, " %.1f tps (%v) catchup %d | alpha %.2f", l.TicksPerSecond(), l.TickInterval(), l.MaxCatchup(), alpha)

	reg.Ints.Range(func(key string, v *atomic.Int64) {
		switch key {
		case "loop.ticks", "loop.renders", "loop.capped":
			fmt.Fprintf(&sb, " | %s %d", strings.TrimPrefix(key, "loop."), v.Load())
		}
	})
	fmt.Fprintf(&sb, " | balls %d", balls)

	if reg.Bools.Get("demo.audio").Load() {
		sb.WriteString(" | ♪")
	}
	if reg.Bools.Get("demo.paused").Load() {
		sb.WriteString(" | PAUSED")
	}
	return sb.String()
}
