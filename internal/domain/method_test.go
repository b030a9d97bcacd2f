package domain

import (
	"errors"
	"testing"
)

func TestBreathingMethod_Validate(t *testing.T) {
	valid := BreathingMethod{ID: "x", Inhale: 4, Hold: 0, Exhale: 4, Cycles: 3}

	tests := []struct {
		name    string
		mutate  func(m *BreathingMethod)
		wantErr bool
	}{
		{"valid without hold", func(m *BreathingMethod) {}, false},
		{"valid with hold", func(m *BreathingMethod) { m.Hold = 7 }, false},
		{"empty id", func(m *BreathingMethod) { m.ID = "" }, true},
		{"zero inhale", func(m *BreathingMethod) { m.Inhale = 0 }, true},
		{"negative hold", func(m *BreathingMethod) { m.Hold = -1 }, true},
		{"zero exhale", func(m *BreathingMethod) { m.Exhale = 0 }, true},
		{"zero cycles", func(m *BreathingMethod) { m.Cycles = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			err := m.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidMethod) {
				t.Errorf("Validate() error = %v, want ErrInvalidMethod", err)
			}
		})
	}
}

func TestBreathingMethod_Durations(t *testing.T) {
	m := method478()

	if got := m.CycleSeconds(); got != 19 {
		t.Errorf("CycleSeconds() = %d, want 19", got)
	}
	if got := m.TotalSeconds(); got != 95 {
		t.Errorf("TotalSeconds() = %d, want 95", got)
	}

	durations := map[Phase]int{
		PhaseReady:    0,
		PhaseInhale:   4,
		PhaseHold:     7,
		PhaseExhale:   8,
		PhaseFinished: 0,
	}
	for p, want := range durations {
		if got := m.PhaseDuration(p); got != want {
			t.Errorf("PhaseDuration(%s) = %d, want %d", p, got, want)
		}
	}
}

func TestBreathingMethod_HasHold(t *testing.T) {
	if !method478().HasHold() {
		t.Error("HasHold() should be true for 4-7-8")
	}
	if methodNoHold().HasHold() {
		t.Error("HasHold() should be false when hold is 0")
	}
}

func TestPhase_IsActive(t *testing.T) {
	active := map[Phase]bool{
		PhaseReady:    false,
		PhaseInhale:   true,
		PhaseHold:     true,
		PhaseExhale:   true,
		PhaseFinished: false,
	}
	for _, p := range Phases {
		if got := p.IsActive(); got != active[p] {
			t.Errorf("%s.IsActive() = %v, want %v", p, got, active[p])
		}
	}
}

func TestPhase_Label(t *testing.T) {
	for _, p := range Phases {
		if p.Label() == "Unknown" {
			t.Errorf("%s.Label() should not be Unknown", p)
		}
	}
	if Phase("bogus").Label() != "Unknown" {
		t.Error("unrecognised phase should be labelled Unknown")
	}
}

func TestPhase_Scale(t *testing.T) {
	if PhaseInhale.Scale() <= PhaseHold.Scale() {
		t.Error("inhale circle should be larger than hold")
	}
	if PhaseExhale.Scale() >= PhaseHold.Scale() {
		t.Error("exhale circle should be smaller than hold")
	}
}
