package systems

import (
	"github.com/automoto/gravityman/archetypes"
	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/yohamta/donburi"
)

// System is one step of the simulation tick.
type System func(w donburi.World)

// WithModeCheck wraps a system so it only runs in the given mode.
func WithModeCheck(mode components.Mode, system System) System {
	return func(w donburi.World) {
		if GetOrCreateSession(w).Mode != mode {
			return
		}
		system(w)
	}
}

// WithGameplayChecks wraps a system to skip execution unless the run is
// actively playing. Splash, pause, and both completion modes freeze it.
func WithGameplayChecks(system System) System {
	return WithModeCheck(components.ModePlaying, system)
}

// GetOrCreateSession returns the singleton Session component, creating if needed.
func GetOrCreateSession(w donburi.World) *components.SessionData {
	if _, ok := components.Session.First(w); !ok {
		ent := archetypes.Session.Spawn(w)
		components.Session.SetValue(ent, components.SessionData{Mode: components.ModeSplash})
		components.Gravity.SetValue(ent, gamemath.NewGravity(cfg.Gravity.Strength))
		components.Events.SetValue(ent, components.EventsData{})
	}

	ent, _ := components.Session.First(w)
	return components.Session.Get(ent)
}

// GetGravity returns the run's gravity model.
func GetGravity(w donburi.World) *gamemath.Gravity {
	GetOrCreateSession(w)
	ent, _ := components.Gravity.First(w)
	return components.Gravity.Get(ent)
}

// Emit queues a gameplay event for the frontend to drain.
func Emit(w donburi.World, kind components.EventKind) {
	session := GetOrCreateSession(w)
	ent, _ := components.Events.First(w)
	events := components.Events.Get(ent)

	index := 0
	if level, ok := GetLevel(w); ok {
		index = level.LevelIndex
	}
	events.Pending = append(events.Pending, components.Event{
		Kind:       kind,
		LevelIndex: index,
		Tick:       session.Tick,
	})
}

// DrainEvents returns and clears the queued events.
func DrainEvents(w donburi.World) []components.Event {
	GetOrCreateSession(w)
	ent, _ := components.Events.First(w)
	events := components.Events.Get(ent)
	out := events.Pending
	events.Pending = nil
	return out
}

// GetLevel returns the level singleton, if one exists.
func GetLevel(w donburi.World) (*components.LevelData, bool) {
	ent, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	return components.Level.Get(ent), true
}

// GetPlayer returns the player entry, if the level has one.
func GetPlayer(w donburi.World) (*donburi.Entry, bool) {
	return components.Player.First(w)
}

// Pipeline returns the per-tick systems in order: timers and input effects
// first, then movement, wall resolution, broadphase sync, overlap events,
// and finally progression.
func Pipeline() []System {
	return []System{
		UpdateSession,
		WithGameplayChecks(UpdatePlayer),
		WithGameplayChecks(UpdateEnemies),
		WithGameplayChecks(UpdatePhysics),
		WithGameplayChecks(UpdateCollisions),
		WithGameplayChecks(UpdateObjects),
		WithGameplayChecks(UpdateInteractions),
		UpdateProgression,
	}
}
