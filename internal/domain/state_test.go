package domain

import "testing"

func TestPalette_Color(t *testing.T) {
	m := method478()
	p := DefaultPalette()

	if got := p.Color(m, PhaseReady); got != m.Color {
		t.Errorf("Color(ready) = %q, want method accent %q", got, m.Color)
	}
	if got := p.Color(m, PhaseInhale); got != "#4CAF50" {
		t.Errorf("Color(inhale) = %q, want #4CAF50", got)
	}

	custom := Palette{PhaseHold: "#123456"}
	if got := custom.Color(m, PhaseHold); got != "#123456" {
		t.Errorf("custom Color(hold) = %q, want #123456", got)
	}
	if got := custom.Color(m, PhaseExhale); got != "#2196F3" {
		t.Errorf("custom Color(exhale) should fall back to default, got %q", got)
	}
}

func TestNewSnapshot(t *testing.T) {
	m := method478()
	s, _ := tickN(m, started(m), 4)

	snap := NewSnapshot("run-1", m, s, DefaultPalette())

	if snap.SessionID != "run-1" {
		t.Errorf("SessionID = %q, want run-1", snap.SessionID)
	}
	if snap.Phase != PhaseHold || snap.SecondsRemaining != 7 || snap.CurrentCycle != 1 {
		t.Errorf("snapshot = %+v, want hold/7/cycle 1", snap)
	}
	if snap.TotalCycles != 5 {
		t.Errorf("TotalCycles = %d, want 5", snap.TotalCycles)
	}
	if snap.DisplayColor != "#FF9800" {
		t.Errorf("DisplayColor = %q, want #FF9800", snap.DisplayColor)
	}
	if !approx(snap.Percentage, 4.0/95*100) {
		t.Errorf("Percentage = %v, want %v", snap.Percentage, 4.0/95*100)
	}
}

func TestSnapshot_Controls(t *testing.T) {
	m := method478()

	ready := NewSnapshot("", m, NewSessionState(), DefaultPalette())
	if !ready.CanStart() || ready.CanStop() || ready.CanRestart() {
		t.Errorf("ready controls = start:%v stop:%v restart:%v", ready.CanStart(), ready.CanStop(), ready.CanRestart())
	}

	active := NewSnapshot("", m, started(m), DefaultPalette())
	if active.CanStart() || !active.CanStop() || active.CanRestart() {
		t.Errorf("active controls = start:%v stop:%v restart:%v", active.CanStart(), active.CanStop(), active.CanRestart())
	}

	fs, _ := tickN(m, started(m), m.TotalSeconds())
	finished := NewSnapshot("", m, fs, DefaultPalette())
	if finished.CanStart() || finished.CanStop() || !finished.CanRestart() {
		t.Errorf("finished controls = start:%v stop:%v restart:%v", finished.CanStart(), finished.CanStop(), finished.CanRestart())
	}
	if finished.DisplaySeconds() != 0 {
		t.Errorf("DisplaySeconds(finished) = %d, want 0", finished.DisplaySeconds())
	}
}

func TestNewSessionID(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == "" || a == b {
		t.Errorf("NewSessionID() = %q, %q; want unique non-empty ids", a, b)
	}
}
