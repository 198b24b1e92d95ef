package core

import "testing"

func TestPhaseTransitions(t *testing.T) {
	tests := []struct {
		from, to Phase
		allowed  bool
	}{
		{PhaseIdle, PhaseRunning, true},
		{PhaseIdle, PhasePaused, false},
		{PhaseRunning, PhasePaused, true},
		{PhasePaused, PhaseRunning, true},
		{PhaseRunning, PhaseWon, true},
		{PhaseWon, PhaseRunning, true},
		{PhaseRunning, PhaseLost, true},
		{PhaseLost, PhaseRunning, true},
		{PhaseLost, PhasePaused, false},
		{PhasePaused, PhaseLost, false},
		{PhaseWon, PhaseLost, false},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			if got := tc.from.CanTransition(tc.to); got != tc.allowed {
				t.Errorf("CanTransition = %v, expected %v", got, tc.allowed)
			}
		})
	}
}

func TestLifecycle(t *testing.T) {
	var l Lifecycle
	if !l.Is(PhaseIdle) {
		t.Fatalf("zero Lifecycle should be idle, got %v", l.Phase())
	}

	if l.TogglePause() {
		t.Error("pausing an idle session should be refused")
	}
	if !l.To(PhaseRunning) {
		t.Fatal("idle -> running should be allowed")
	}
	if !l.TogglePause() || !l.Is(PhasePaused) {
		t.Fatalf("expected paused, got %v", l.Phase())
	}
	if l.To(PhaseLost) {
		t.Error("paused -> lost should be refused")
	}
	if !l.TogglePause() || !l.Is(PhaseRunning) {
		t.Fatalf("expected running, got %v", l.Phase())
	}
	if !l.To(PhaseLost) || !l.Terminal() {
		t.Fatalf("expected terminal lost phase, got %v", l.Phase())
	}

	l.Restart()
	if !l.Is(PhaseRunning) {
		t.Errorf("Restart should run, got %v", l.Phase())
	}
	l.Reset()
	if !l.Is(PhaseIdle) {
		t.Errorf("Reset should idle, got %v", l.Phase())
	}
}
