package main

import (
	"math"
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

const (
	minBallSpeed = 0.2 // Cells per tick
	maxBallSpeed = 0.9
)

var ballGlyphs = []rune{'●', '○', '◆', '◇', '■', '□', '▲', '★'}

var ballColors = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorYellow,
	tcell.ColorPurple,
	tcell.ColorAqua,
	tcell.ColorRed,
}

// Ball moves at constant velocity and bounces off the arena edges
// Prev holds the position before the last tick for render interpolation
type Ball struct {
	X, Y         float64
	PrevX, PrevY float64
	VX, VY       float64
	Glyph        rune
	Color        tcell.Color
}

// step advances one tick inside a width x height arena
func (b *Ball) step(width, height int) {
	b.PrevX, b.PrevY = b.X, b.Y
	b.X, b.VX = bounce(b.X+b.VX, b.VX, float64(width-1))
	b.Y, b.VY = bounce(b.Y+b.VY, b.VY, float64(height-1))
}

// bounce folds pos back into [0, limit] and flips v on a bounce
func bounce(pos, v, limit float64) (float64, float64) {
	if limit <= 0 {
		return 0, v
	}
	switch {
	case pos < 0:
		return min(-pos, limit), -v
	case pos > limit:
		return max(2*limit-pos, 0), -v
	}
	return pos, v
}

// Lerp blends the previous and current position, alpha is clamped to [0, 1]
func (b *Ball) Lerp(alpha float64) (float64, float64) {
	alpha = min(max(alpha, 0), 1)
	return b.PrevX + (b.X-b.PrevX)*alpha, b.PrevY + (b.Y-b.PrevY)*alpha
}

// Cell returns the screen cell for an interpolated position
func (b *Ball) Cell(alpha float64) (int, int) {
	x, y := b.Lerp(alpha)
	return int(math.Round(x)), int(math.Round(y))
}

// World is the simulation state advanced by loop ticks
type World struct {
	Width, Height int
	Balls         []Ball
	Ticks         uint64

	rng *rand.Rand
}

// NewWorld creates an arena with n randomly placed balls
func NewWorld(width, height, n int, seed int64) *World {
	w := &World{
		Width:  width,
		Height: height,
		Balls:  make([]Ball, 0, n),
		rng:    rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < n; i++ {
		w.AddBall()
	}
	return w
}

// Tick advances every ball by one fixed step
func (w *World) Tick() {
	for i := range w.Balls {
		w.Balls[i].step(w.Width, w.Height)
	}
	w.Ticks++
}

// AddBall spawns a ball unless the arena is full
func (w *World) AddBall() bool {
	if len(w.Balls) >= maxBalls {
		return false
	}

	speed := minBallSpeed + w.rng.Float64()*(maxBallSpeed-minBallSpeed)
	angle := w.rng.Float64() * 2 * math.Pi
	x := w.rng.Float64() * float64(max(w.Width-1, 0))
	y := w.rng.Float64() * float64(max(w.Height-1, 0))

	i := len(w.Balls)
	w.Balls = append(w.Balls, Ball{
		X:     x,
		Y:     y,
		PrevX: x,
		PrevY: y,
		VX:    speed * math.Cos(angle),
		VY:    speed * math.Sin(angle) / 2, // Terminal cells are about twice as tall as wide
		Glyph: ballGlyphs[i%len(ballGlyphs)],
		Color: ballColors[i%len(ballColors)],
	})
	return true
}

// RemoveBall drops the newest ball
func (w *World) RemoveBall() bool {
	if len(w.Balls) == 0 {
		return false
	}
	w.Balls = w.Balls[:len(w.Balls)-1]
	return true
}

// Resize changes the arena and pulls balls back inside
func (w *World) Resize(width, height int) {
	w.Width, w.Height = width, height
	maxX, maxY := float64(max(width-1, 0)), float64(max(height-1, 0))
	for i := range w.Balls {
		b := &w.Balls[i]
		b.X, b.PrevX = min(b.X, maxX), min(b.PrevX, maxX)
		b.Y, b.PrevY = min(b.Y, maxY), min(b.PrevY, maxY)
	}
}
