package factory

import (
	"github.com/automoto/gravityman/archetypes"
	"github.com/automoto/gravityman/components"
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/automoto/gravityman/tags"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, index int, r gamemath.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	components.Wall.SetValue(wall, components.WallData{Index: index})
	addToSpace(w, newObject(wall, r.X, r.Y, r.W, r.H, tags.ResolvSolid))
	return wall
}

func CreateHazard(w donburi.World, r gamemath.Rect) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(w)
	addToSpace(w, newObject(hazard, r.X, r.Y, r.W, r.H, tags.ResolvHazard))
	return hazard
}
