package components

import "github.com/yohamta/donburi"

// WallData keeps a wall's position in the level's wall list.
type WallData struct {
	Index int
}

var Wall = donburi.NewComponentType[WallData]()
