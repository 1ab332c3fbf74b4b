package components

import "github.com/yohamta/donburi"

type ItemData struct {
	Index     int
	Collected bool
}

var Item = donburi.NewComponentType[ItemData]()

type GoalData struct {
	Open bool
}

var Goal = donburi.NewComponentType[GoalData]()
