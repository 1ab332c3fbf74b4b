package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Friction float64
	MaxSpeed float64
	// Grounded is set when the last tick pushed the body back against gravity.
	Grounded bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
