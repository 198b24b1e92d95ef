package runner

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/brickrun/internal/core"
	"github.com/vovakirdan/brickrun/internal/effects"
)

// Visual characters for rendering
const (
	PlayerChar      = '●'
	ShieldChar      = '◎'
	GroundChar      = '═'
	ParticleChar    = '·'
	hudRows         = 1
	minScreenWidth  = 30
	minScreenHeight = 8
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenWidth || dst.Height() < minScreenHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	snap := g.Snapshot()
	vp := core.FitViewport(dst, g.cfg.Field.Width, g.cfg.Field.Height, hudRows)

	g.drawGround(dst, vp)
	for _, o := range snap.Obstacles {
		vp.FillRect(dst, o.Rect(), o.Kind.Glyph(), o.Kind.Color())
	}
	for _, p := range snap.Pickups {
		vp.FillRect(dst, p.Rect(), p.Kind.Glyph(), p.Kind.Color())
	}
	for _, p := range snap.Particles {
		x, y := vp.Cell(p.X, p.Y)
		dst.SetColored(x, y, ParticleChar, core.ColorGray)
	}
	drawPlayer(dst, vp, snap)

	renderHUD(dst, snap)
	renderOverlay(dst, snap)
}

// drawGround draws the slope one column at a time.
func (g *Game) drawGround(dst *core.Screen, vp core.Viewport) {
	for col := 0; col < vp.Cols; col++ {
		x := (float64(col) + 0.5) / float64(vp.Cols) * g.cfg.Field.Width
		cx, cy := vp.Cell(x, g.ground.Y(x))
		dst.SetColored(cx, cy, GroundChar, core.ColorGray)
	}
}

func drawPlayer(dst *core.Screen, vp core.Viewport, snap Snapshot) {
	p := snap.Player
	glyph, color := rune(PlayerChar), core.ColorBrightWhite
	for _, e := range snap.Effects {
		if e.Kind == PowerupShield {
			glyph, color = ShieldChar, PowerupShield.Color()
		}
	}
	bounds := core.NewRect(p.X-p.R, p.Y-p.R, 2*p.R, 2*p.R)
	vp.FillRect(dst, bounds, glyph, color)
}

func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best))

	parts := []string{strings.ToUpper(snap.Tier), fmt.Sprintf("Spd %.1f", snap.Speed)}
	for _, e := range snap.Effects {
		if e.Remaining == effects.Unbounded {
			parts = append(parts, e.Kind.String())
			continue
		}
		parts = append(parts, fmt.Sprintf("%s(%ds)", e.Kind, (e.Remaining+59)/60))
	}
	right := strings.Join(parts, " ")
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}

func renderOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.Phase {
	case core.PhaseIdle:
		drawCenteredBox(dst, "BALL RUNNER", "Press SPACE to start")
	case core.PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case core.PhaseLost:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d | Best: %d | SPACE to retry", snap.Score, snap.Best))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillCells(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
