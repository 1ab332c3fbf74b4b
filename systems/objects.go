package systems

import (
	"github.com/automoto/gravityman/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var movingQuery = donburi.NewQuery(filter.And(
	filter.Contains(components.Object),
	filter.Or(
		filter.Contains(components.Physics),
		filter.Contains(components.Enemy),
	),
))

// UpdateObjects re-registers moved objects with the broadphase space so
// overlap queries see this tick's positions.
func UpdateObjects(w donburi.World) {
	movingQuery.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	})
}
