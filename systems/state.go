package systems

import (
	"github.com/automoto/gravityman/components"
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/automoto/gravityman/systems/factory"
	"github.com/yohamta/donburi"
)

// LoadLevelAt builds the level at index and resets the attempt counters.
// Gravity returns to down so every level starts the same way.
func LoadLevelAt(w donburi.World, index int) bool {
	level := factory.LoadLevel(w, index)
	if level == nil || level.Current == nil {
		return false
	}

	session := GetOrCreateSession(w)
	session.Collected = 0
	session.Required = level.Current.RequiredCount()
	session.HazardFlash = 0
	GetGravity(w).Direction = gamemath.Down

	Emit(w, components.EventLevelLoaded)
	return true
}

// StartRun leaves the splash screen.
func StartRun(w donburi.World) bool {
	session := GetOrCreateSession(w)
	if session.Mode != components.ModeSplash {
		return false
	}
	if level, ok := GetLevel(w); !ok || !level.Loaded {
		if !LoadLevelAt(w, 0) {
			return false
		}
	}
	session.Mode = components.ModePlaying
	Emit(w, components.EventStarted)
	return true
}

// TogglePause flips between playing and paused. Other modes ignore it.
func TogglePause(w donburi.World) bool {
	session := GetOrCreateSession(w)
	switch session.Mode {
	case components.ModePlaying:
		session.Mode = components.ModePaused
		Emit(w, components.EventPaused)
	case components.ModePaused:
		session.Mode = components.ModePlaying
		Emit(w, components.EventResumed)
	default:
		return false
	}
	return true
}

// RestartRun reloads the first level. A finished run goes back to the
// splash screen; any run in progress resumes play from the first level.
func RestartRun(w donburi.World) bool {
	session := GetOrCreateSession(w)
	if session.Mode == components.ModeSplash {
		return false
	}
	if !LoadLevelAt(w, 0) {
		return false
	}

	if session.Mode == components.ModeAllComplete {
		session.Mode = components.ModeSplash
	} else {
		session.Mode = components.ModePlaying
	}
	session.ModeTimer = 0
	Emit(w, components.EventRestarted)
	return true
}

// SetGravityDirection switches gravity while playing. Unknown names and
// calls outside of play are ignored.
func SetGravityDirection(w donburi.World, name string) bool {
	if GetOrCreateSession(w).Mode != components.ModePlaying {
		return false
	}
	gravity := GetGravity(w)
	before := gravity.Direction
	if !gravity.SetDirection(name) {
		return false
	}
	if gravity.Direction != before {
		Emit(w, components.EventGravityChanged)
	}
	return true
}
