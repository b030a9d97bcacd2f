package domain

import (
	"reflect"
	"testing"
)

func method478() BreathingMethod {
	return BreathingMethod{ID: "1", Name: "4-7-8", Inhale: 4, Hold: 7, Exhale: 8, Cycles: 5, Color: "#4A90E2"}
}

func methodNoHold() BreathingMethod {
	return BreathingMethod{ID: "2", Name: "Simple", Inhale: 5, Hold: 0, Exhale: 5, Cycles: 10, Color: "#7ED321"}
}

// tickN applies n ticks and returns the resulting state and every cue emitted.
func tickN(m BreathingMethod, s SessionState, n int) (SessionState, []Cue) {
	var all []Cue
	for i := 0; i < n; i++ {
		var cues []Cue
		s, cues = Transition(m, s, EventTick)
		all = append(all, cues...)
	}
	return s, all
}

func started(m BreathingMethod) SessionState {
	s, _ := Transition(m, NewSessionState(), EventStart)
	return s
}

func TestNewSessionState(t *testing.T) {
	s := NewSessionState()
	want := SessionState{Phase: PhaseReady}
	if s != want {
		t.Errorf("NewSessionState() = %+v, want %+v", s, want)
	}
}

func TestTransition_Start(t *testing.T) {
	s, cues := Transition(method478(), NewSessionState(), EventStart)

	want := SessionState{Phase: PhaseInhale, SecondsRemaining: 4, CurrentCycle: 1, Running: true}
	if s != want {
		t.Errorf("state after start = %+v, want %+v", s, want)
	}

	wantCues := []Cue{HapticCue(), PhaseCue(PhaseInhale)}
	if !reflect.DeepEqual(cues, wantCues) {
		t.Errorf("cues after start = %v, want %v", cues, wantCues)
	}
}

func TestTransition_StartIgnoredWhenActive(t *testing.T) {
	m := method478()
	s, _ := tickN(m, started(m), 2)

	next, cues := Transition(m, s, EventStart)
	if next != s {
		t.Errorf("start while active changed state: %+v -> %+v", s, next)
	}
	if len(cues) != 0 {
		t.Errorf("start while active emitted cues: %v", cues)
	}
}

func TestTransition_Scenario478(t *testing.T) {
	m := method478()
	if m.TotalSeconds() != 95 {
		t.Fatalf("TotalSeconds() = %d, want 95", m.TotalSeconds())
	}

	s := started(m)

	s, _ = tickN(m, s, 4)
	if s.Phase != PhaseHold || s.SecondsRemaining != 7 || s.CurrentCycle != 1 {
		t.Errorf("after 4 ticks = %+v, want hold/7/cycle 1", s)
	}

	s, _ = tickN(m, s, 7)
	if s.Phase != PhaseExhale || s.SecondsRemaining != 8 || s.CurrentCycle != 1 {
		t.Errorf("after 11 ticks = %+v, want exhale/8/cycle 1", s)
	}

	s, _ = tickN(m, s, 8)
	if s.Phase != PhaseInhale || s.SecondsRemaining != 4 || s.CurrentCycle != 2 {
		t.Errorf("after 19 ticks = %+v, want inhale/4/cycle 2", s)
	}
}

func TestTransition_NoHoldFinishesAfterTotalTicks(t *testing.T) {
	m := methodNoHold()
	s := started(m)

	s, _ = tickN(m, s, 99)
	if s.IsFinished() {
		t.Fatalf("finished after 99 ticks, want 100")
	}
	if s.Phase != PhaseExhale || s.SecondsRemaining != 1 || s.CurrentCycle != 10 {
		t.Errorf("after 99 ticks = %+v, want exhale/1/cycle 10", s)
	}

	s, cues := Transition(m, s, EventTick)
	want := SessionState{Phase: PhaseFinished, CurrentCycle: 10}
	if s != want {
		t.Errorf("after 100 ticks = %+v, want %+v", s, want)
	}
	wantCues := []Cue{CountdownCue(1), PhaseCue(PhaseFinished)}
	if !reflect.DeepEqual(cues, wantCues) {
		t.Errorf("final cues = %v, want %v", cues, wantCues)
	}
}

func TestTransition_NoHoldSkipsHold(t *testing.T) {
	m := methodNoHold()
	s := started(m)
	for i := 0; i < m.TotalSeconds(); i++ {
		s, _ = Transition(m, s, EventTick)
		if s.Phase == PhaseHold {
			t.Fatalf("tick %d entered hold for a method without hold", i+1)
		}
	}
}

func TestTransition_CountdownCues(t *testing.T) {
	m := method478()
	s := started(m)

	tests := []struct {
		name string
		want []Cue
	}{
		{"remaining 4", nil},
		{"remaining 3", []Cue{CountdownCue(3)}},
		{"remaining 2", []Cue{CountdownCue(2)}},
		{"remaining 1", []Cue{CountdownCue(1), HapticCue(), PhaseCue(PhaseHold)}},
	}

	for _, tt := range tests {
		var cues []Cue
		s, cues = Transition(m, s, EventTick)
		if !reflect.DeepEqual(cues, tt.want) {
			t.Errorf("%s: cues = %v, want %v", tt.name, cues, tt.want)
		}
	}
}

func TestTransition_ShortPhases(t *testing.T) {
	m := BreathingMethod{ID: "short", Inhale: 1, Hold: 0, Exhale: 2, Cycles: 1}
	s := started(m)

	s, cues := Transition(m, s, EventTick)
	want := []Cue{CountdownCue(1), HapticCue(), PhaseCue(PhaseExhale)}
	if !reflect.DeepEqual(cues, want) {
		t.Errorf("inhale end cues = %v, want %v", cues, want)
	}
	if s.Phase != PhaseExhale || s.SecondsRemaining != 2 {
		t.Errorf("state = %+v, want exhale/2", s)
	}

	s, cues = Transition(m, s, EventTick)
	if !reflect.DeepEqual(cues, []Cue{CountdownCue(2)}) {
		t.Errorf("exhale tick cues = %v", cues)
	}

	s, cues = Transition(m, s, EventTick)
	want = []Cue{CountdownCue(1), PhaseCue(PhaseFinished)}
	if !reflect.DeepEqual(cues, want) {
		t.Errorf("finish cues = %v, want %v", cues, want)
	}
	if !s.IsFinished() {
		t.Errorf("state = %+v, want finished", s)
	}
}

func TestTransition_FinishedIsTerminal(t *testing.T) {
	m := methodNoHold()
	s, _ := tickN(m, started(m), m.TotalSeconds())
	if !s.IsFinished() {
		t.Fatalf("state = %+v, want finished", s)
	}
	if s.Running {
		t.Error("Running should be false once finished")
	}

	next, cues := tickN(m, s, 5)
	if next != s {
		t.Errorf("ticks after finish changed state: %+v -> %+v", s, next)
	}
	if len(cues) != 0 {
		t.Errorf("ticks after finish emitted cues: %v", cues)
	}
}

func TestTransition_TickIgnoredWhenReady(t *testing.T) {
	s, cues := tickN(method478(), NewSessionState(), 10)
	if s != NewSessionState() {
		t.Errorf("ticks while ready changed state: %+v", s)
	}
	if len(cues) != 0 {
		t.Errorf("ticks while ready emitted cues: %v", cues)
	}
}

func TestTransition_StopResetsFromAnyPhase(t *testing.T) {
	m := method478()
	want := SessionState{Phase: PhaseReady}

	for _, ticks := range []int{0, 2, 5, 12, 30, 94, 95} {
		s, _ := tickN(m, started(m), ticks)
		stopped, cues := Transition(m, s, EventStop)
		if stopped != want {
			t.Errorf("stop after %d ticks = %+v, want %+v", ticks, stopped, want)
		}
		if len(cues) != 0 {
			t.Errorf("stop after %d ticks emitted cues: %v", ticks, cues)
		}

		again, _ := Transition(m, stopped, EventStop)
		if again != want {
			t.Errorf("second stop = %+v, want %+v", again, want)
		}
	}
}

func TestTransition_RestartReproducesRun(t *testing.T) {
	m := BreathingMethod{ID: "r", Inhale: 2, Hold: 1, Exhale: 3, Cycles: 2}

	record := func(s SessionState) ([]SessionState, []Cue) {
		var states []SessionState
		var cues []Cue
		for !s.IsFinished() {
			var c []Cue
			s, c = Transition(m, s, EventTick)
			states = append(states, s)
			cues = append(cues, c...)
		}
		return states, cues
	}

	first, startCues := Transition(m, NewSessionState(), EventStart)
	firstStates, firstCues := record(first)

	finished := firstStates[len(firstStates)-1]
	second, restartCues := Transition(m, finished, EventRestart)
	if second != first {
		t.Errorf("restart state = %+v, want %+v", second, first)
	}
	if !reflect.DeepEqual(restartCues, startCues) {
		t.Errorf("restart cues = %v, want %v", restartCues, startCues)
	}

	secondStates, secondCues := record(second)
	if !reflect.DeepEqual(secondStates, firstStates) {
		t.Error("restarted run visited different states")
	}
	if !reflect.DeepEqual(secondCues, firstCues) {
		t.Error("restarted run emitted different cues")
	}
}

func TestTransition_RestartWhileActive(t *testing.T) {
	m := method478()
	s, _ := tickN(m, started(m), 23)

	s, cues := Transition(m, s, EventRestart)
	want := SessionState{Phase: PhaseInhale, SecondsRemaining: 4, CurrentCycle: 1, Running: true}
	if s != want {
		t.Errorf("restart while active = %+v, want %+v", s, want)
	}
	if len(cues) != 2 {
		t.Errorf("restart cues = %v, want haptic + inhale", cues)
	}
}

func TestTransition_UnknownEvent(t *testing.T) {
	m := method478()
	s := started(m)
	next, cues := Transition(m, s, Event("pause"))
	if next != s || cues != nil {
		t.Errorf("unknown event changed state or emitted cues: %+v %v", next, cues)
	}
}
