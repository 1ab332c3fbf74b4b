package factory

import (
	"math"

	"github.com/automoto/gravityman/archetypes"
	"github.com/automoto/gravityman/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace spawns the broadphase space. Dimensions are rounded up to
// whole cells so objects on the far edge still land in a cell.
func CreateSpace(w donburi.World, width, height float64, cell int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, newSpace(width, height, cell))
	return space
}

func newSpace(width, height float64, cell int) *resolv.Space {
	c := float64(cell)
	return resolv.NewSpace(int(math.Ceil(width/c)*c), int(math.Ceil(height/c)*c), cell, cell)
}

// MustSpace returns the world's space.
func MustSpace(w donburi.World) *resolv.Space {
	return components.Space.Get(components.Space.MustFirst(w))
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func newObject(entry *donburi.Entry, x, y, width, height float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, width, height, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return obj
}
