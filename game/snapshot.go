package game

import (
	"sort"

	"github.com/automoto/gravityman/components"
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/automoto/gravityman/systems"
	"github.com/automoto/gravityman/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// PlayerView is the renderer's copy of the player.
type PlayerView struct {
	gamemath.Rect
	VelX, VelY   float64
	Invulnerable bool
	Grounded     bool
	BoostReady   bool
}

type ItemView struct {
	gamemath.Rect
	Collected bool
}

type GoalView struct {
	gamemath.Rect
	Open bool
}

// Snapshot is a read-only copy of everything a frontend draws. Nothing in
// it aliases session state.
type Snapshot struct {
	Mode  components.Mode
	Tick  uint64
	World gamemath.Rect

	LevelIndex int
	MaxLevels  int
	LevelName  string

	Gravity gamemath.Direction

	HasPlayer bool
	Player    PlayerView

	Walls   []gamemath.Rect
	Hazards []gamemath.Rect
	Items   []ItemView
	Enemies []gamemath.Rect
	Goal    GoalView

	Collected   int
	Required    int
	HazardFlash int
}

// Snapshot copies the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.world
	session := systems.GetOrCreateSession(w)
	snap := Snapshot{
		Mode:        session.Mode,
		Tick:        session.Tick,
		World:       WorldRect(),
		Gravity:     systems.GetGravity(w).Direction,
		Collected:   session.Collected,
		Required:    session.Required,
		HazardFlash: session.HazardFlash,
	}

	if level, ok := systems.GetLevel(w); ok {
		snap.LevelIndex = level.LevelIndex
		snap.MaxLevels = len(level.Levels)
		if level.Current != nil {
			snap.LevelName = level.Current.Name
		}
	}

	if playerEntry, ok := systems.GetPlayer(w); ok {
		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		snap.HasPlayer = true
		snap.Player = PlayerView{
			Rect:         components.Object.Get(playerEntry).Rect(),
			VelX:         physics.SpeedX,
			VelY:         physics.SpeedY,
			Invulnerable: player.Invulnerable(),
			Grounded:     physics.Grounded,
			BoostReady:   player.BoostCooldown == 0 && !player.BoostQueued,
		}
	}

	snap.Walls = rectsOf(w, tags.Wall)
	snap.Hazards = rectsOf(w, tags.Hazard)
	snap.Enemies = rectsOf(w, tags.Enemy)

	type indexed struct {
		index int
		view  ItemView
	}
	var items []indexed
	components.Item.Each(w, func(e *donburi.Entry) {
		item := components.Item.Get(e)
		items = append(items, indexed{item.Index, ItemView{
			Rect:      components.Object.Get(e).Rect(),
			Collected: item.Collected,
		}})
	})
	sort.Slice(items, func(i, j int) bool { return items[i].index < items[j].index })
	snap.Items = make([]ItemView, len(items))
	for i, it := range items {
		snap.Items[i] = it.view
	}

	if goalEntry, ok := components.Goal.First(w); ok {
		snap.Goal = GoalView{
			Rect: components.Object.Get(goalEntry).Rect(),
			Open: components.Goal.Get(goalEntry).Open,
		}
	}

	return snap
}

func rectsOf(w donburi.World, tag donburi.IComponentType) []gamemath.Rect {
	var rects []gamemath.Rect
	donburi.NewQuery(filter.Contains(tag, components.Object)).Each(w, func(e *donburi.Entry) {
		rects = append(rects, components.Object.Get(e).Rect())
	})
	return rects
}

// HazardFlashing reports whether the hazard flash overlay should show.
func (s Snapshot) HazardFlashing() bool {
	return s.HazardFlash > 0
}

// Playing reports whether the snapshot was taken during active play.
func (s Snapshot) Playing() bool {
	return s.Mode == components.ModePlaying
}
