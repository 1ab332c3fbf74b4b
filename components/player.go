package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	StartX, StartY float64
	InvulnFrames   int // Invulnerability frames timer
	BoostCooldown  int
	BoostQueued    bool
}

// Invulnerable reports whether hazards and enemies are currently ignored.
func (p *PlayerData) Invulnerable() bool {
	return p.InvulnFrames > 0
}

var Player = donburi.NewComponentType[PlayerData]()
