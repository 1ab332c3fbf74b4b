package leveldata

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/cespare/xxhash/v2"
)

const (
	genCell      = 24.0
	genCeiling   = 6.0
	genFloor     = 12.0
	genTopMargin = 12.0
)

// Seed returns the generator seed for a level index. The same index always
// produces the same seed.
func Seed(index int) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("gravityman/level/%d", index))
}

// Generate builds a level for index inside world. Output depends only on
// index and world, so regenerating a level reproduces it exactly.
//
// The interior is cut into a grid of cells; the top-left 2x2 block is kept
// clear for the start point and every other piece gets its own cell. The
// goal claims a cell first; other pieces are dropped once the cells run out.
// A world too small for any free cell gets a floor, a start and a goal.
// Patrol enemies only move toward +x or +y, away from the start block.
func Generate(index int, world gamemath.Rect) Level {
	seed := Seed(index)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	cols := int(world.W / genCell)
	rows := int((world.H - genTopMargin - genFloor) / genCell)

	type cell struct{ c, r int }
	var free []cell
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if col < 2 && row < 2 {
				continue
			}
			free = append(free, cell{col, row})
		}
	}
	if len(free) == 0 {
		return minimalLevel(index, world)
	}

	order := rng.Perm(len(free))
	next := 0
	take := func() (x, y float64, ok bool) {
		if next >= len(order) {
			return 0, 0, false
		}
		c := free[order[next]]
		next++
		return world.X + float64(c.c)*genCell, world.Y + genTopMargin + float64(c.r)*genCell, true
	}

	lvl := Level{
		Name:  generatedName(index),
		Start: gamemath.Vec{X: world.X + 5, Y: world.Y + genTopMargin + 3},
		Walls: []gamemath.Rect{
			gamemath.NewRect(world.X, world.Bottom()-genFloor, world.W, genFloor),
			gamemath.NewRect(world.X, world.Y, world.W, genCeiling),
		},
	}

	gx, gy, _ := take()
	lvl.Goal = gamemath.NewRect(gx+2, gy+2, 20, 20)

	for i := 0; i < 4+index%5; i++ {
		x, y, ok := take()
		if !ok {
			return lvl
		}
		lvl.Items = append(lvl.Items, gamemath.NewRect(x+8, y+8, 8, 8))
	}
	for i := 0; i < 3+index%3; i++ {
		x, y, ok := take()
		if !ok {
			return lvl
		}
		lvl.Walls = append(lvl.Walls, gamemath.NewRect(x, y+16, genCell, 8))
	}
	for i := 0; i < 1+index%3; i++ {
		x, y, ok := take()
		if !ok {
			return lvl
		}
		lvl.Hazards = append(lvl.Hazards, gamemath.NewRect(x+6, y+12, 12, 12))
	}
	for i := 0; i < index%3; i++ {
		x, y, ok := take()
		if !ok {
			return lvl
		}
		axis := "x"
		if i%2 == 1 {
			axis = "y"
		}
		lvl.Enemies = append(lvl.Enemies, EnemySpawn{
			Rect:     gamemath.NewRect(x+6, y+6, 12, 12),
			Motion:   MotionPatrol,
			Axis:     axis,
			Distance: genCell,
			Period:   1.5,
		})
	}

	return lvl
}

// minimalLevel is the fallback for worlds without room for the grid: a
// floor along the bottom quarter at most, the start in the top-left corner
// and the goal filling the right half above the floor.
func minimalLevel(index int, world gamemath.Rect) Level {
	floor := min(genFloor, world.H/4)
	return Level{
		Name:  generatedName(index),
		Start: gamemath.Vec{X: world.X, Y: world.Y},
		Walls: []gamemath.Rect{
			gamemath.NewRect(world.X, world.Bottom()-floor, world.W, floor),
		},
		Goal: gamemath.NewRect(world.X+world.W/2, world.Y, world.W/2, world.H-floor),
	}
}

func generatedName(index int) string {
	return fmt.Sprintf("Generated %d", index+1)
}

// Sequence returns the built-in levels followed by extra generated ones.
func Sequence(extra int, world gamemath.Rect) []Level {
	levels := Builtin()
	for i := 0; i < extra; i++ {
		levels = append(levels, Generate(len(levels), world))
	}
	return levels
}
