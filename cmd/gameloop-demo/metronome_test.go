package main

import "testing"

// drainStreamer counts samples and reports whether any were non-zero
func drainStreamer(t *testing.T, m *Metronome, accent bool) (int, bool) {
	t.Helper()
	s, err := m.clickStreamer(accent)
	if err != nil {
		t.Fatalf("clickStreamer failed: %v", err)
	}

	buf := make([][2]float64, 256)
	total, audible := 0, false
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] != 0 || buf[i][1] != 0 {
				audible = true
			}
		}
		total += n
		if !ok {
			return total, audible
		}
	}
}

func TestClickStreamerLength(t *testing.T) {
	m := NewMetronome(1, true)

	for _, accent := range []bool{false, true} {
		total, audible := drainStreamer(t, m, accent)
		if want := clickSampleRate.N(clickDuration); total != want {
			t.Errorf("accent=%v: expected %d samples, got %d", accent, want, total)
		}
		if !audible {
			t.Errorf("accent=%v: expected non-silent click", accent)
		}
	}
}

func TestClickStreamerSilentAtZeroVolume(t *testing.T) {
	m := NewMetronome(0, true)

	if _, audible := drainStreamer(t, m, false); audible {
		t.Error("Expected silent click at zero volume")
	}
}

func TestMetronomeToggle(t *testing.T) {
	m := NewMetronome(0.5, false)

	if m.Enabled() {
		t.Error("Expected metronome to start disabled")
	}
	if !m.Toggle() || !m.Enabled() {
		t.Error("Expected toggle to enable")
	}
	if m.Toggle() || m.Enabled() {
		t.Error("Expected second toggle to disable")
	}

	// Without Init the speaker is never touched
	m.Toggle()
	m.Click(true)
	m.Close()
}
