package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Hazard = donburi.NewTag().SetName("Hazard")
	Item   = donburi.NewTag().SetName("Item")
	Goal   = donburi.NewTag().SetName("Goal")
	Enemy  = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for broadphase queries
const (
	ResolvSolid  = "solid"
	ResolvHazard = "hazard"
	ResolvItem   = "item"
	ResolvGoal   = "goal"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
