package systems

import (
	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/shared/leveldata"
	"github.com/yohamta/donburi"
)

// UpdateEnemies advances patrol enemies along their tween. Each leg runs
// from the spawn point to spawn+Distance and back.
func UpdateEnemies(w donburi.World) {
	dt := float32(cfg.Tick.Seconds())

	components.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Motion != leveldata.MotionPatrol || enemy.Tween == nil {
			return
		}

		t, finished := enemy.Tween.Update(dt)
		if !enemy.Forward {
			t = 1 - t
		}
		if finished {
			enemy.Tween.Reset()
			enemy.Forward = !enemy.Forward
		}

		obj := components.Object.Get(e)
		offset := float64(t) * enemy.Distance
		if enemy.Axis == "y" {
			obj.Y = enemy.OriginY + offset
		} else {
			obj.X = enemy.OriginX + offset
		}
	})
}

// resetEnemies returns every enemy to its spawn point and restarts patrols.
func resetEnemies(w donburi.World) {
	components.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)
		obj.X = enemy.OriginX
		obj.Y = enemy.OriginY
		obj.Update()

		if enemy.Tween != nil {
			enemy.Tween.Reset()
		}
		enemy.Forward = true

		if e.HasComponent(components.Physics) {
			physics := components.Physics.Get(e)
			physics.SpeedX, physics.SpeedY = 0, 0
			physics.Grounded = false
		}
	})
}
