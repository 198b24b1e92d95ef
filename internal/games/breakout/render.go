package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/brickrun/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar      = '='
	BallChar        = '●'
	StuckBallChar   = 'o'
	BrickChar       = '█'
	ReinforcedChar  = '▓'
	CrackedChar     = '▒'
	SeparatorChar   = '─'
	hudRows         = 2
	minScreenWidth  = 30
	minScreenHeight = 12
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenWidth || dst.Height() < minScreenHeight {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenWidth, minScreenHeight))
		return
	}

	snap := g.Snapshot()
	vp := core.FitViewport(dst, g.cfg.Field.Width, g.cfg.Field.Height, hudRows)

	renderHUD(dst, snap)
	renderBricks(dst, vp, snap)
	renderPickups(dst, vp, snap)
	vp.FillRect(dst, snap.Paddle.Rect(), PaddleChar, core.ColorBrightWhite)
	renderBalls(dst, vp, snap)
	renderOverlay(dst, snap)
}

// renderHUD draws score, lives and level on row 0 and active effects on row 1.
func renderHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best)
	dst.DrawText(1, 0, left)

	center := fmt.Sprintf("Lives: %d  Shields: %d", snap.Lives, snap.Shields)
	dst.DrawTextCentered(0, center)

	right := fmt.Sprintf("Level: %d", snap.Level)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	if len(snap.Effects) == 0 {
		dst.DrawHLine(0, 1, dst.Width(), SeparatorChar)
		return
	}
	parts := make([]string, 0, len(snap.Effects))
	for _, e := range snap.Effects {
		parts = append(parts, fmt.Sprintf("%s(%ds)", e.Kind, (e.Remaining+59)/60))
	}
	dst.DrawTextColored(1, 1, strings.Join(parts, " "), core.ColorCyan)
}

func renderBricks(dst *core.Screen, vp core.Viewport, snap Snapshot) {
	for _, br := range snap.Bricks {
		if !br.Present {
			continue
		}
		glyph := rune(BrickChar)
		switch {
		case br.Hits >= 3:
			glyph = ReinforcedChar
		case br.Hits == 2:
			glyph = CrackedChar
		}
		color := core.RowColor(br.Row + snap.Level - 1)
		if br.HitFlash > 0 {
			color = core.ColorBrightWhite
		}
		vp.FillRect(dst, br.Rect(), glyph, color)
	}
}

func renderPickups(dst *core.Screen, vp core.Viewport, snap Snapshot) {
	for _, p := range snap.Pickups {
		x, y := vp.Cell(p.X, p.Y)
		dst.SetColored(x, y, p.Kind.Glyph(), p.Kind.Color())
	}
}

func renderBalls(dst *core.Screen, vp core.Viewport, snap Snapshot) {
	for _, b := range snap.Balls {
		x, y := vp.Cell(b.X, b.Y)
		if b.Stuck {
			dst.SetColored(x, y, StuckBallChar, core.ColorBrightYellow)
			continue
		}
		dst.SetColored(x, y, BallChar, core.ColorWhite)
	}
}

// renderOverlay draws phase messages.
func renderOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.Phase {
	case core.PhaseIdle:
		drawCenteredBox(dst, "BREAKOUT", "Press SPACE to start")
	case core.PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case core.PhaseWon:
		title := "LEVEL CLEARED"
		if snap.Pending != nil {
			title = fmt.Sprintf("LEVEL %d", snap.Pending.Level)
		}
		drawCenteredBox(dst, title, "Press ENTER to continue")
	case core.PhaseLost:
		drawCenteredBox(dst, "YOU LOSE", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillCells(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
