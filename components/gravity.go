package components

import (
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/yohamta/donburi"
)

var Gravity = donburi.NewComponentType[gamemath.Gravity]()
