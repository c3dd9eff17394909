package main

import (
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	clickSampleRate = beep.SampleRate(44100)
	clickDuration   = 15 * time.Millisecond
	clickFreq       = 880.0
	accentFreq      = 1320.0
)

// Metronome clicks on simulation ticks so the tick rate can be heard
// The first tick of every second gets a higher accent click
type Metronome struct {
	enabled atomic.Bool
	ready   bool
	volume  float64
}

// NewMetronome creates a metronome, Init must succeed before it makes sound
func NewMetronome(volume float64, enabled bool) *Metronome {
	m := &Metronome{volume: volume}
	m.enabled.Store(enabled)
	return m
}

// Init opens the speaker
func (m *Metronome) Init() error {
	if err := speaker.Init(clickSampleRate, clickSampleRate.N(time.Second/10)); err != nil {
		return err
	}
	m.ready = true
	return nil
}

// Close releases the speaker
func (m *Metronome) Close() {
	if m.ready {
		speaker.Close()
		m.ready = false
	}
}

// Toggle flips the enabled state and returns the new state
func (m *Metronome) Toggle() bool {
	for {
		old := m.enabled.Load()
		if m.enabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Enabled reports whether clicks are played
func (m *Metronome) Enabled() bool {
	return m.enabled.Load()
}

// Click plays one click, at most one per frame is queued by the caller
func (m *Metronome) Click(accent bool) {
	if !m.ready || !m.enabled.Load() {
		return
	}
	s, err := m.clickStreamer(accent)
	if err != nil {
		log.Printf("metronome: %v", err)
		return
	}
	speaker.Play(s)
}

// clickStreamer builds a short sine burst scaled to the configured volume
func (m *Metronome) clickStreamer(accent bool) (beep.Streamer, error) {
	freq := clickFreq
	if accent {
		freq = accentFreq
	}
	sine, err := generators.SineTone(clickSampleRate, freq)
	if err != nil {
		return nil, err
	}

	return &effects.Volume{
		Streamer: beep.Take(clickSampleRate.N(clickDuration), sine),
		Base:     2,
		Volume:   math.Log2(max(m.volume, 1e-6)),
		Silent:   m.volume <= 0,
	}, nil
}
