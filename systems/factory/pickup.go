package factory

import (
	"github.com/automoto/gravityman/archetypes"
	"github.com/automoto/gravityman/components"
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/automoto/gravityman/tags"
	"github.com/yohamta/donburi"
)

func CreateItem(w donburi.World, index int, r gamemath.Rect) *donburi.Entry {
	item := archetypes.Item.Spawn(w)
	addToSpace(w, newObject(item, r.X, r.Y, r.W, r.H, tags.ResolvItem))
	components.Item.SetValue(item, components.ItemData{Index: index})
	return item
}

// CreateGoal spawns the level exit, closed.
func CreateGoal(w donburi.World, r gamemath.Rect) *donburi.Entry {
	goal := archetypes.Goal.Spawn(w)
	addToSpace(w, newObject(goal, r.X, r.Y, r.W, r.H, tags.ResolvGoal))
	components.Goal.SetValue(goal, components.GoalData{})
	return goal
}
