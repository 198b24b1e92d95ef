package sim

import (
	"github.com/vovakirdan/brickrun/internal/core"
	"github.com/vovakirdan/brickrun/internal/games/breakout"
	"github.com/vovakirdan/brickrun/internal/games/runner"
	"github.com/vovakirdan/brickrun/internal/registry"
)

// jumpLead is how many ticks of travel ahead the runner pilot jumps.
const jumpLead = 9

type pilot interface {
	input(tick int, f *core.InputFrame)
}

func newPilot(game registry.Game, autopilot bool) pilot {
	if !autopilot {
		return startOnly{}
	}
	switch g := game.(type) {
	case *breakout.Game:
		return breakoutPilot{g}
	case *runner.Game:
		return runnerPilot{g}
	}
	return startOnly{}
}

// startOnly presses jump on the first tick and then leaves the game alone.
type startOnly struct{}

func (startOnly) input(tick int, f *core.InputFrame) {
	if tick == 0 {
		f.Set(core.ActionJump)
	}
}

// breakoutPilot follows the lowest descending ball with the pointer.
type breakoutPilot struct {
	g *breakout.Game
}

func (p breakoutPilot) input(_ int, f *core.InputFrame) {
	snap := p.g.Snapshot()

	switch snap.Phase {
	case core.PhaseIdle:
		f.Set(core.ActionJump)
		return
	case core.PhaseWon:
		f.Set(core.ActionConfirm)
		return
	case core.PhaseLost:
		f.Set(core.ActionRestart)
		return
	}

	var target *breakout.Ball
	for i := range snap.Balls {
		b := &snap.Balls[i]
		if b.Stuck {
			f.Set(core.ActionJump)
			continue
		}
		if target == nil || (b.DY > 0 && (target.DY <= 0 || b.Y > target.Y)) {
			target = b
		}
	}
	if target != nil {
		f.SetPointer(target.X)
	}
}

// runnerPilot jumps when the next obstacle is about to reach the player.
type runnerPilot struct {
	g *runner.Game
}

func (p runnerPilot) input(_ int, f *core.InputFrame) {
	snap := p.g.Snapshot()

	switch snap.Phase {
	case core.PhaseIdle:
		f.Set(core.ActionJump)
		return
	case core.PhaseLost:
		f.Set(core.ActionRestart)
		return
	}
	if snap.Player.IsJumping {
		return
	}

	front := snap.Player.X + snap.Player.R
	for _, o := range snap.Obstacles {
		if o.X+o.W < snap.Player.X-snap.Player.R {
			continue
		}
		if gap := o.X - front; gap < snap.Speed*jumpLead {
			f.Set(core.ActionJump)
		}
		return
	}
}
