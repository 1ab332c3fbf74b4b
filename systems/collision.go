package systems

import (
	"sort"

	"github.com/automoto/gravityman/components"
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/automoto/gravityman/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions pushes every moving body out of the walls it overlaps.
// Each body is tested against the whole wall list in level order, so corner
// cases with two overlapping walls resolve one wall at a time.
func UpdateCollisions(w donburi.World) {
	walls := levelWalls(w)
	if len(walls) == 0 {
		return
	}

	unit := GetGravity(w).Direction.Unit()

	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		body := obj.Rect()
		for _, wall := range walls {
			body, _ = ResolveWall(body, wall, physics, unit)
		}
		obj.SetRect(body)
	})
}

// levelWalls returns the wall rects sorted by their index in the level.
// Entity storage order changes as levels are cleared and rebuilt.
func levelWalls(w donburi.World) []gamemath.Rect {
	type indexed struct {
		index int
		rect  gamemath.Rect
	}
	var found []indexed
	tags.Wall.Each(w, func(e *donburi.Entry) {
		found = append(found, indexed{components.Wall.Get(e).Index, components.Object.Get(e).Rect()})
	})
	sort.SliceStable(found, func(i, j int) bool { return found[i].index < found[j].index })

	walls := make([]gamemath.Rect, len(found))
	for i, f := range found {
		walls[i] = f.rect
	}
	return walls
}

// ResolveWall separates body from wall along the axis of minimum
// penetration and zeroes the speed on that axis. The body is marked grounded
// when the push opposes gravity. It reports whether body moved.
func ResolveWall(body, wall gamemath.Rect, physics *components.PhysicsData, gravity gamemath.Vec) (gamemath.Rect, bool) {
	dx, dy, ok := gamemath.Separation(body, wall)
	if !ok {
		return body, false
	}

	body.X += dx
	body.Y += dy
	if dx != 0 {
		physics.SpeedX = 0
	}
	if dy != 0 {
		physics.SpeedY = 0
	}
	if dx*gravity.X+dy*gravity.Y < 0 {
		physics.Grounded = true
	}
	return body, true
}
