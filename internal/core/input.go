package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - held: move paddle left
	ActionRight          // D, Right arrow - held: move paddle right
	ActionJump           // Space, Up - jump (runner) or launch/release (breakout)
	ActionConfirm        // Enter - continue to the next level, confirm in menus
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart the session
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
// Left and Right are level-triggered (present while held); the others fire once.
type InputFrame struct {
	Actions map[Action]bool

	// PointerX is a horizontal pointer position in world units, valid when
	// HasPointer is set.
	PointerX   float64
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetPointer records a pointer position for this frame.
func (f *InputFrame) SetPointer(x float64) {
	f.PointerX = x
	f.HasPointer = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerX = 0
	f.HasPointer = false
}

// Controls is the event surface a simulation exposes to input sources.
type Controls interface {
	OnMoveTo(x float64)
	OnHoldLeft(held bool)
	OnHoldRight(held bool)
	OnJumpOrRelease()
	OnPauseToggle()
	OnRestart()
}

// Continuer is implemented by simulations that gate on a level transition.
type Continuer interface {
	OnContinue()
}

// Dispatch feeds one input frame into c. Restart is delivered last so that a
// restart in the same frame as other input always wins.
func Dispatch(c Controls, in InputFrame) {
	if in.HasPointer {
		c.OnMoveTo(in.PointerX)
	}
	c.OnHoldLeft(in.Has(ActionLeft))
	c.OnHoldRight(in.Has(ActionRight))

	if in.Has(ActionJump) {
		c.OnJumpOrRelease()
	}
	if in.Has(ActionConfirm) {
		if k, ok := c.(Continuer); ok {
			k.OnContinue()
		}
	}
	if in.Has(ActionPause) {
		c.OnPauseToggle()
	}
	if in.Has(ActionRestart) {
		c.OnRestart()
	}
}
