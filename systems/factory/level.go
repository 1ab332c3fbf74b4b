package factory

import (
	"github.com/automoto/gravityman/archetypes"
	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// CreateLevel spawns the level singleton holding the run's level sequence.
// Nothing is built until LoadLevel is called.
func CreateLevel(w donburi.World, levels []leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Levels:     levels,
		LevelIndex: 0,
	})
	return level
}

var placedQuery = donburi.NewQuery(filter.Contains(components.Object))

// LoadLevel tears down every placed entity and builds the level at index
// from its template. Out-of-range indexes clamp to the first level.
func LoadLevel(w donburi.World, index int) *components.LevelData {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	levelData := components.Level.Get(levelEntry)
	if len(levelData.Levels) == 0 {
		return levelData
	}
	if index < 0 || index >= len(levelData.Levels) {
		index = 0
	}

	ClearLevel(w)

	template := levelData.Levels[index].Clone()
	levelData.LevelIndex = index
	levelData.Current = &template

	for i, r := range template.Walls {
		CreateWall(w, i, r)
	}
	for _, r := range template.Hazards {
		CreateHazard(w, r)
	}
	for i, r := range template.Items {
		CreateItem(w, i, r)
	}
	for _, spawn := range template.Enemies {
		CreateEnemy(w, spawn)
	}
	CreateGoal(w, template.Goal)
	CreatePlayer(w, template.Start.X, template.Start.Y)

	levelData.Loaded = true
	return levelData
}

// ClearLevel removes every entity with a collision object and resets the space.
func ClearLevel(w donburi.World) {
	var placed []*donburi.Entry
	placedQuery.Each(w, func(e *donburi.Entry) {
		placed = append(placed, e)
	})
	for _, e := range placed {
		w.Remove(e.Entity())
	}

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Set(spaceEntry, newSpace(cfg.World.Width, cfg.World.Height, cfg.World.CellSize))
	}

	if levelEntry, ok := components.Level.First(w); ok {
		components.Level.Get(levelEntry).Loaded = false
	}
}
