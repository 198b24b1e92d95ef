package core

// Phase is a step in a session's lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseWon
	PhaseLost
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// transitions lists the moves allowed between phases. Restart is handled
// separately by Lifecycle.Restart since it is legal from every phase.
var transitions = map[Phase][]Phase{
	PhaseIdle:    {PhaseRunning},
	PhaseRunning: {PhasePaused, PhaseWon, PhaseLost},
	PhasePaused:  {PhaseRunning},
	PhaseWon:     {PhaseRunning},
	PhaseLost:    {PhaseRunning},
}

// CanTransition reports whether the lifecycle allows moving from p to next.
func (p Phase) CanTransition(next Phase) bool {
	for _, allowed := range transitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Lifecycle owns the phase of a session. The zero value is idle.
type Lifecycle struct {
	phase Phase
}

// Phase returns the current phase.
func (l *Lifecycle) Phase() Phase {
	return l.phase
}

// Is reports whether the lifecycle is in phase p.
func (l *Lifecycle) Is(p Phase) bool {
	return l.phase == p
}

// To moves to next if the transition is allowed and reports whether it did.
// Disallowed requests leave the phase unchanged.
func (l *Lifecycle) To(next Phase) bool {
	if !l.phase.CanTransition(next) {
		return false
	}
	l.phase = next
	return true
}

// TogglePause flips between running and paused. Other phases are unaffected.
func (l *Lifecycle) TogglePause() bool {
	switch l.phase {
	case PhaseRunning:
		return l.To(PhasePaused)
	case PhasePaused:
		return l.To(PhaseRunning)
	default:
		return false
	}
}

// Restart puts the lifecycle into running regardless of the current phase.
// Callers reset their world before calling it.
func (l *Lifecycle) Restart() {
	l.phase = PhaseRunning
}

// Reset returns the lifecycle to idle.
func (l *Lifecycle) Reset() {
	l.phase = PhaseIdle
}

// Terminal reports whether the session has ended.
func (l *Lifecycle) Terminal() bool {
	return l.phase == PhaseLost
}
