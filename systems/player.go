package systems

import (
	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
	"github.com/yohamta/donburi"
)

// UpdatePlayer counts down player timers and applies a queued boost along
// the current gravity direction.
func UpdatePlayer(w donburi.World) {
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
	if player.BoostCooldown > 0 {
		player.BoostCooldown--
	}

	if !player.BoostQueued {
		return
	}
	player.BoostQueued = false

	impulse := GetGravity(w).Direction.Unit().Scale(cfg.Boost.Impulse)
	physics := components.Physics.Get(playerEntry)
	physics.SpeedX += impulse.X
	physics.SpeedY += impulse.Y
	player.BoostCooldown = cfg.Boost.CooldownTicks

	Emit(w, components.EventBoost)
}

// QueueBoost requests a boost for the next tick. It is ignored outside of
// play, while the cooldown runs, or when a boost is already queued.
func QueueBoost(w donburi.World) bool {
	if GetOrCreateSession(w).Mode != components.ModePlaying {
		return false
	}
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return false
	}
	player := components.Player.Get(playerEntry)
	if player.BoostQueued || player.BoostCooldown > 0 {
		return false
	}
	player.BoostQueued = true
	return true
}
