package components

import (
	"github.com/automoto/gravityman/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Levels     []leveldata.Level
	LevelIndex int
	// Current is the template the active entities were built from.
	Current *leveldata.Level
	// Loaded is set once entities for Current exist.
	Loaded bool
}

// HasNext reports whether another level follows the current one.
func (l *LevelData) HasNext() bool {
	return l.LevelIndex+1 < len(l.Levels)
}

var Level = donburi.NewComponentType[LevelData]()
