package factory

import (
	"github.com/automoto/gravityman/archetypes"
	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/tags"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := newObject(player, x, y, cfg.Player.Width, cfg.Player.Height, "character", tags.ResolvPlayer)
	components.Player.SetValue(player, components.PlayerData{
		StartX: x,
		StartY: y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})

	addToSpace(w, obj)
	return player
}
