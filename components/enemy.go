package components

import (
	"github.com/automoto/gravityman/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Motion leveldata.Motion
	// Spawn position; patrol offsets are measured from here.
	OriginX, OriginY float64

	// Patrol
	Axis     string
	Distance float64
	Tween    *gween.Tween // 0..1 along one leg
	Forward  bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
