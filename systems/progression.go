package systems

import (
	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateSession advances the tick counter and the hazard flash.
func UpdateSession(w donburi.World) {
	session := GetOrCreateSession(w)
	session.Tick++
	if session.Mode != components.ModePaused && session.HazardFlash > 0 {
		session.HazardFlash--
	}
}

// UpdateProgression opens the exit once enough items are held and, after
// the levelComplete dwell, moves on to the next level or ends the run.
func UpdateProgression(w donburi.World) {
	session := GetOrCreateSession(w)

	switch session.Mode {
	case components.ModePlaying:
		goalEntry, ok := components.Goal.First(w)
		if !ok {
			return
		}
		goal := components.Goal.Get(goalEntry)
		if !goal.Open && session.Collected >= session.Required {
			goal.Open = true
			Emit(w, components.EventExitOpened)
		}

	case components.ModeLevelComplete:
		if session.ModeTimer > 0 {
			session.ModeTimer--
		}
		if session.ModeTimer > 0 {
			return
		}

		level, ok := GetLevel(w)
		if ok && level.HasNext() && LoadLevelAt(w, level.LevelIndex+1) {
			session.Mode = components.ModePlaying
			return
		}
		session.Mode = components.ModeAllComplete
		Emit(w, components.EventAllComplete)
	}
}

// ResetAttempt puts the current level back to how it was when loaded: the
// player returns to the start at rest with gravity pulling down, every item
// is uncollected and the exit is closed. The run stays in play.
func ResetAttempt(w donburi.World) {
	session := GetOrCreateSession(w)
	GetGravity(w).Direction = gamemath.Down

	if playerEntry, ok := GetPlayer(w); ok {
		player := components.Player.Get(playerEntry)
		obj := components.Object.Get(playerEntry)
		obj.X, obj.Y = player.StartX, player.StartY
		if obj.Space != nil {
			obj.Update()
		}

		physics := components.Physics.Get(playerEntry)
		physics.SpeedX, physics.SpeedY = 0, 0
		physics.Grounded = false

		player.InvulnFrames = cfg.Player.RespawnInvulnFrames
		player.BoostQueued = false
		player.BoostCooldown = 0
	}

	components.Item.Each(w, func(e *donburi.Entry) {
		components.Item.Get(e).Collected = false
	})
	if goalEntry, ok := components.Goal.First(w); ok {
		components.Goal.Get(goalEntry).Open = false
	}
	resetEnemies(w)

	session.Collected = 0
	session.HazardFlash = cfg.Tick.HazardFlashFrames
	Emit(w, components.EventHazardHit)
}

func levelCompleteFrames() int {
	if cfg.Tick.LevelCompleteFrames < 1 {
		return 1
	}
	return cfg.Tick.LevelCompleteFrames
}
