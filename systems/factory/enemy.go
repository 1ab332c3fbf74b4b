package factory

import (
	"github.com/automoto/gravityman/archetypes"
	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/shared/leveldata"
	"github.com/automoto/gravityman/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func CreateEnemy(w donburi.World, spawn leveldata.EnemySpawn) *donburi.Entry {
	width, height := spawn.Rect.W, spawn.Rect.H
	if width <= 0 || height <= 0 {
		width, height = cfg.Enemy.Width, cfg.Enemy.Height
	}

	motion := spawn.Motion
	if motion == "" {
		motion = leveldata.MotionPatrol
	}

	var enemy *donburi.Entry
	if motion == leveldata.MotionGravity {
		enemy = archetypes.FallingEnemy.Spawn(w)
		components.Physics.SetValue(enemy, components.PhysicsData{
			Friction: cfg.Enemy.Friction,
			MaxSpeed: cfg.Enemy.MaxSpeed,
		})
	} else {
		enemy = archetypes.PatrolEnemy.Spawn(w)
	}

	obj := newObject(enemy, spawn.Rect.X, spawn.Rect.Y, width, height, "character", tags.ResolvEnemy)

	enemyData := components.EnemyData{
		Motion:  motion,
		OriginX: spawn.Rect.X,
		OriginY: spawn.Rect.Y,
	}
	if motion == leveldata.MotionPatrol {
		enemyData.Axis = spawn.Axis
		if enemyData.Axis != "y" {
			enemyData.Axis = "x"
		}
		enemyData.Distance = spawn.Distance
		if enemyData.Distance == 0 {
			enemyData.Distance = cfg.Enemy.PatrolDistance
		}
		period := spawn.Period
		if period <= 0 {
			period = cfg.Enemy.PatrolPeriod
		}
		enemyData.Tween = gween.New(0, 1, float32(period), ease.Linear)
		enemyData.Forward = true
	}
	components.Enemy.SetValue(enemy, enemyData)

	addToSpace(w, obj)
	return enemy
}
