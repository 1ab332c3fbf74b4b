package systems

import (
	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates every body with a Physics component: gravity is
// accumulated, friction damps, speed is clamped per axis, then the body moves
// and is kept inside the world.
func UpdatePhysics(w donburi.World) {
	gravity := GetGravity(w)
	force := gravity.Force()

	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		physics.Grounded = false

		physics.SpeedX = gamemath.ClampSpeed(gamemath.Damp(physics.SpeedX+force.X, physics.Friction), physics.MaxSpeed)
		physics.SpeedY = gamemath.ClampSpeed(gamemath.Damp(physics.SpeedY+force.Y, physics.Friction), physics.MaxSpeed)

		body := obj.Rect()
		body.X += physics.SpeedX
		body.Y += physics.SpeedY

		body, hit := gamemath.ClampToWorld(body, cfg.World.Width, cfg.World.Height)
		if hit.Left || hit.Right {
			physics.SpeedX = 0
		}
		if hit.Top || hit.Bottom {
			physics.SpeedY = 0
		}
		if restsOnEdge(gravity.Direction, hit) {
			physics.Grounded = true
		}

		obj.SetRect(body)
	})
}

func restsOnEdge(d gamemath.Direction, hit gamemath.BoundsHit) bool {
	switch d {
	case gamemath.Down:
		return hit.Bottom
	case gamemath.Up:
		return hit.Top
	case gamemath.Left:
		return hit.Left
	case gamemath.Right:
		return hit.Right
	}
	return false
}
