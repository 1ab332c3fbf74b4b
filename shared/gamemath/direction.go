package gamemath

import "math"

// Direction is one of the four cardinal gravity directions. The zero value
// is Down.
type Direction int

const (
	Down Direction = iota
	Up
	Left
	Right
)

var directionNames = [...]string{
	Down:  "down",
	Up:    "up",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return directionNames[d]
}

// Valid reports whether d is one of the four enumerated directions.
func (d Direction) Valid() bool {
	return d >= Down && d <= Right
}

// ParseDirection maps "up", "down", "left" or "right" to a Direction.
// Anything else, including different casing, is rejected.
func ParseDirection(name string) (Direction, bool) {
	for d, n := range directionNames {
		if n == name {
			return Direction(d), true
		}
	}
	return Down, false
}

// Unit returns the unit vector pointing along d in screen coordinates
// (y grows downward).
func (d Direction) Unit() Vec {
	switch d {
	case Up:
		return Vec{X: 0, Y: -1}
	case Left:
		return Vec{X: -1, Y: 0}
	case Right:
		return Vec{X: 1, Y: 0}
	default:
		return Vec{X: 0, Y: 1}
	}
}

// Horizontal reports whether d pulls along the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Gravity is the switchable pull applied to every moving body.
type Gravity struct {
	Direction Direction
	Strength  float64
}

// NewGravity returns gravity pulling down with the given strength.
func NewGravity(strength float64) Gravity {
	return Gravity{Direction: Down, Strength: strength}
}

// SetDirection switches the pull to the named direction. Unknown names leave
// the current direction untouched and report false.
func (g *Gravity) SetDirection(name string) bool {
	d, ok := ParseDirection(name)
	if !ok {
		return false
	}
	g.Direction = d
	return true
}

// Force returns the per-tick acceleration vector: the direction's unit
// vector scaled by Strength.
func (g Gravity) Force() Vec {
	return g.Direction.Unit().Scale(g.Strength)
}

// DirectionFromVector resolves a swipe or stick deflection to a direction
// along its dominant axis. Deflections shorter than threshold on both axes
// are ignored.
func DirectionFromVector(dx, dy, threshold float64) (Direction, bool) {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax < threshold && ay < threshold {
		return Down, false
	}
	if ax >= ay {
		if dx < 0 {
			return Left, true
		}
		return Right, true
	}
	if dy < 0 {
		return Up, true
	}
	return Down, true
}
