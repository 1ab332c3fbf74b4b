package leveldata

import "github.com/automoto/gravityman/shared/gamemath"

func r(x, y, w, h float64) gamemath.Rect {
	return gamemath.NewRect(x, y, w, h)
}

func item(x, y float64) gamemath.Rect {
	return gamemath.NewRect(x, y, 8, 8)
}

var builtin = []Level{
	{
		Name:  "First Fall",
		Start: gamemath.Vec{X: 12, Y: 12},
		Walls: []gamemath.Rect{
			r(0, 270, 240, 12),
			r(0, 0, 240, 6),
			r(40, 90, 80, 8),
			r(140, 160, 80, 8),
			r(20, 210, 60, 8),
		},
		Hazards: []gamemath.Rect{
			r(100, 262, 30, 8),
		},
		Items: []gamemath.Rect{
			item(60, 70), item(100, 70), item(200, 40), item(180, 140),
			item(30, 190), item(190, 250), item(60, 250), item(150, 250),
		},
		Enemies: []EnemySpawn{
			{Rect: r(140, 146, 12, 12), Motion: MotionPatrol, Axis: "x", Distance: 60, Period: 2},
		},
		Goal:     r(214, 236, 20, 34),
		Required: 8,
	},
	{
		Name:  "Sideways",
		Start: gamemath.Vec{X: 20, Y: 20},
		Walls: []gamemath.Rect{
			r(0, 270, 240, 12),
			r(0, 0, 240, 6),
			r(70, 40, 8, 150),
			r(160, 100, 8, 170),
		},
		Hazards: []gamemath.Rect{
			r(78, 120, 20, 8),
			r(140, 40, 20, 8),
		},
		Items: []gamemath.Rect{
			item(30, 100), item(100, 60), item(120, 230),
			item(200, 60), item(200, 200), item(40, 240),
		},
		Enemies: []EnemySpawn{
			{Rect: r(110, 20, 12, 12), Motion: MotionGravity},
			{Rect: r(180, 80, 12, 12), Motion: MotionPatrol, Axis: "y", Distance: 80, Period: 1.5},
		},
		Goal: r(214, 10, 20, 24),
	},
	{
		Name:  "Inversion",
		Start: gamemath.Vec{X: 12, Y: 20},
		Walls: []gamemath.Rect{
			r(0, 270, 240, 12),
			r(0, 0, 240, 6),
			r(30, 60, 180, 8),
			r(30, 140, 80, 8),
			r(130, 140, 80, 8),
			r(30, 220, 180, 8),
		},
		Hazards: []gamemath.Rect{
			r(110, 132, 20, 8),
			r(120, 262, 120, 8),
		},
		Items: []gamemath.Rect{
			item(100, 40), item(200, 40), item(60, 120), item(170, 120),
			item(60, 200), item(170, 200), item(40, 250),
		},
		Enemies: []EnemySpawn{
			{Rect: r(40, 126, 12, 12), Motion: MotionPatrol, Axis: "x", Distance: 50, Period: 1.25},
			{Rect: r(200, 100, 12, 12), Motion: MotionGravity},
		},
		Goal:     r(4, 236, 18, 34),
		Required: 6,
	},
}

// Builtin returns the hand-built level sequence in play order.
func Builtin() []Level {
	levels := make([]Level, len(builtin))
	for i, l := range builtin {
		levels[i] = l.Clone()
	}
	return levels
}
