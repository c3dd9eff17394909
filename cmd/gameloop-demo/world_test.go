package main

import (
	"math"
	"testing"
)

func TestBounce(t *testing.T) {
	tests := []struct {
		name          string
		pos, v, limit float64
		wantPos       float64
		wantV         float64
	}{
		{"inside", 5, 1, 10, 5, 1},
		{"past upper edge", 10.5, 1, 10, 9.5, -1},
		{"past lower edge", -0.25, -0.5, 10, 0.25, 0.5},
		{"on edge", 10, 1, 10, 10, 1},
		{"degenerate arena", 3, 1, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, v := bounce(tt.pos, tt.v, tt.limit)
			if math.Abs(pos-tt.wantPos) > 1e-9 || v != tt.wantV {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.wantPos, tt.wantV, pos, v)
			}
		})
	}
}

func TestBallStepKeepsPrevious(t *testing.T) {
	b := Ball{X: 1, Y: 1, VX: 0.5, VY: -0.25}
	b.step(10, 5)

	if b.PrevX != 1 || b.PrevY != 1 {
		t.Errorf("Expected previous position (1, 1), got (%v, %v)", b.PrevX, b.PrevY)
	}
	if b.X != 1.5 || b.Y != 0.75 {
		t.Errorf("Expected position (1.5, 0.75), got (%v, %v)", b.X, b.Y)
	}
}

func TestBallLerp(t *testing.T) {
	b := Ball{PrevX: 2, PrevY: 4, X: 4, Y: 2}

	tests := []struct {
		alpha        float64
		wantX, wantY float64
	}{
		{0, 2, 4},
		{0.5, 3, 3},
		{1, 4, 2},
		{4.0, 4, 2},  // Capped frames report debt above 1
		{-0.5, 2, 4}, // Clock readings before the tick boundary
	}
	for _, tt := range tests {
		x, y := b.Lerp(tt.alpha)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("alpha %v: expected (%v, %v), got (%v, %v)", tt.alpha, tt.wantX, tt.wantY, x, y)
		}
	}

	if x, y := b.Cell(0.3); x != 3 || y != 3 {
		t.Errorf("Expected cell (3, 3), got (%d, %d)", x, y)
	}
}

func TestWorldStaysInBounds(t *testing.T) {
	w := NewWorld(20, 8, 16, 42)

	for i := 0; i < 1000; i++ {
		w.Tick()
		for j, b := range w.Balls {
			if b.X < 0 || b.X > 19 || b.Y < 0 || b.Y > 7 {
				t.Fatalf("tick %d: ball %d escaped to (%v, %v)", i, j, b.X, b.Y)
			}
		}
	}
	if w.Ticks != 1000 {
		t.Errorf("Expected 1000 ticks, got %d", w.Ticks)
	}
}

func TestWorldAddRemoveBall(t *testing.T) {
	w := NewWorld(20, 8, 0, 1)

	if w.RemoveBall() {
		t.Error("Expected remove on empty world to fail")
	}
	for i := 0; i < maxBalls; i++ {
		if !w.AddBall() {
			t.Fatalf("Expected add %d to succeed", i)
		}
	}
	if w.AddBall() {
		t.Error("Expected add past maxBalls to fail")
	}
	if !w.RemoveBall() || len(w.Balls) != maxBalls-1 {
		t.Errorf("Expected %d balls after remove, got %d", maxBalls-1, len(w.Balls))
	}

	for _, b := range w.Balls {
		speed := math.Hypot(b.VX, b.VY*2)
		if speed < minBallSpeed-1e-9 || speed > maxBallSpeed+1e-9 {
			t.Errorf("Expected speed in [%v, %v], got %v", minBallSpeed, maxBallSpeed, speed)
		}
	}
}

func TestWorldResizeClampsBalls(t *testing.T) {
	w := NewWorld(40, 20, 0, 1)
	w.Balls = append(w.Balls, Ball{X: 35, Y: 15, PrevX: 34, PrevY: 16})

	w.Resize(10, 5)

	b := w.Balls[0]
	if b.X != 9 || b.PrevX != 9 || b.Y != 4 || b.PrevY != 4 {
		t.Errorf("Expected ball clamped to (9, 4), got (%v, %v) prev (%v, %v)", b.X, b.Y, b.PrevX, b.PrevY)
	}
}
