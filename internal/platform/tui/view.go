package tui

import (
	"fmt"

	"github.com/dmalakhov/flapterm/internal/config"
	"github.com/dmalakhov/flapterm/internal/core"
	"github.com/dmalakhov/flapterm/internal/flappy"
)

// Visual characters for rendering
const (
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
	birdChar      = '●'
)

// drawFrame projects the world-unit simulation state onto the terminal
// cell grid and draws it. Physics never sees cell coordinates; the
// projection happens only here.
func drawFrame(dst *core.Screen, snap flappy.Snapshot, cfg config.Config) {
	dst.Clear()

	sx := float64(dst.Width()) / cfg.World.Width
	sy := float64(dst.Height()) / cfg.World.Height

	groundRow := int(cfg.GroundY() * sy)
	groundRow = core.Clamp(groundRow, 0, dst.Height()-1)

	for _, p := range snap.Pipes {
		drawPipe(dst, p, cfg, sx, sy, groundRow)
	}

	dst.DrawHLine(0, groundRow, dst.Width(), groundChar, core.ColorGray)

	drawBird(dst, snap, cfg, sx, sy)
	drawHUD(dst, snap)
}

// drawPipe renders a single pipe pair.
func drawPipe(dst *core.Screen, p flappy.PipeView, cfg config.Config, sx, sy float64, groundRow int) {
	x0 := int(p.X * sx)
	x1 := int((p.X + cfg.Obstacles.PipeWidth) * sx)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	w := x1 - x0

	gapTopRow := int(float64(p.GapTop) * sy)
	gapBottomRow := int((float64(p.GapTop) + cfg.Obstacles.GapSize) * sy)

	// Top section, capped at its lower edge
	if gapTopRow > 0 {
		dst.DrawRect(core.NewRect(x0, 0, w, gapTopRow-1), pipeChar, core.ColorGreen)
		dst.DrawHLine(x0, gapTopRow-1, w, pipeCapTop, core.ColorBrightGreen)
	}

	// Bottom section, capped at its upper edge
	if gapBottomRow < groundRow {
		dst.DrawHLine(x0, gapBottomRow, w, pipeCapBottom, core.ColorBrightGreen)
		dst.DrawRect(core.NewRect(x0, gapBottomRow+1, w, groundRow-gapBottomRow-1), pipeChar, core.ColorGreen)
	}
}

// drawBird renders the avatar with a beak whose row hints at the current
// velocity, the terminal stand-in for cosmetic rotation.
func drawBird(dst *core.Screen, snap flappy.Snapshot, cfg config.Config, sx, sy float64) {
	cx := int(cfg.Bird.X * sx)
	cy := int(snap.BirdY * sy)

	dst.SetCell(cx, cy, birdChar, core.ColorBrightYellow)

	beakRow := cy
	switch {
	case snap.Mode == flappy.ModePlaying && snap.BirdVel < -2:
		beakRow = cy - 1
	case snap.Mode == flappy.ModePlaying && snap.BirdVel > 4:
		beakRow = cy + 1
	}
	dst.SetCell(cx+1, beakRow, '▸', core.ColorOrange)
}

// drawHUD draws the score line and any mode overlay.
func drawHUD(dst *core.Screen, snap flappy.Snapshot) {
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	bestText := fmt.Sprintf(" Best: %d ", snap.Best)
	dst.DrawTextColor(dst.Width()-len(bestText)-2, 0, bestText, core.ColorWhite)

	switch snap.Mode {
	case flappy.ModeStart:
		drawCenteredMessage(dst, "F L A P T E R M", "Press Space or click to start")
	case flappy.ModeGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d  |  Flap to retry", snap.Score, snap.Best))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
