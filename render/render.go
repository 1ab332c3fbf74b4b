// Package render draws a game snapshot with ebitengine. It only reads the
// snapshot.
package render

import (
	"image/color"

	cfg "github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/fonts"
	"github.com/automoto/gravityman/game"
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the level, the player and the HUD.
func Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(cfg.Palette.Background)

	for _, r := range snap.Walls {
		fillRect(screen, r, cfg.Palette.Wall)
	}
	for _, r := range snap.Hazards {
		fillRect(screen, r, cfg.Palette.Hazard)
	}
	for _, item := range snap.Items {
		if !item.Collected {
			fillRect(screen, item.Rect, cfg.Palette.Item)
		}
	}

	goalColor := cfg.Palette.GoalClosed
	if snap.Goal.Open {
		goalColor = cfg.Palette.GoalOpen
	}
	fillRect(screen, snap.Goal.Rect, goalColor)
	if !snap.Goal.Open {
		strokeRect(screen, snap.Goal.Rect, cfg.Palette.GoalOpen)
	}

	for _, r := range snap.Enemies {
		fillRect(screen, r, cfg.Palette.Enemy)
	}

	if snap.HasPlayer {
		drawPlayer(screen, snap)
	}

	if snap.HazardFlashing() {
		flash := cfg.Palette.HazardFlash
		flash.A = 120
		fillRect(screen, snap.World, flash)
	}

	DrawHUD(screen, snap)
}

func drawPlayer(screen *ebiten.Image, snap game.Snapshot) {
	c := cfg.Palette.Player
	// Blink every four ticks while invulnerable.
	if snap.Player.Invulnerable && (snap.Tick/4)%2 == 0 {
		c = cfg.Palette.PlayerInvuln
	}
	fillRect(screen, snap.Player.Rect, c)

	// A notch on the side gravity pulls toward.
	unit := snap.Gravity.Unit()
	r := snap.Player.Rect
	cx := r.X + r.W/2 + unit.X*(r.W/2-2)
	cy := r.Y + r.H/2 + unit.Y*(r.H/2-2)
	vector.FillRect(screen, float32(cx-2), float32(cy-2), 4, 4, cfg.Palette.Background, false)
}

// DrawHUD writes the status lines in the top-left corner.
func DrawHUD(screen *ebiten.Image, snap game.Snapshot) {
	face := fonts.HUD.Get()
	y := int(cfg.HUD.Margin) + fonts.Ascent(face)
	for _, line := range snap.StatusLines() {
		text.Draw(screen, line, face, int(cfg.HUD.Margin), y, cfg.Palette.Text)
		y += int(cfg.HUD.LineHeight)
	}

	help := cfg.HUD.HelpText
	hx := (int(snap.World.W) - fonts.Width(face, help)) / 2
	text.Draw(screen, help, face, hx, int(snap.World.H-cfg.HUD.Margin), cfg.Palette.Text)
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
}
