package components

import (
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

// SetRect moves the object to r's position. Size is fixed at construction.
func (o ObjectData) SetRect(r gamemath.Rect) {
	o.X = r.X
	o.Y = r.Y
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
