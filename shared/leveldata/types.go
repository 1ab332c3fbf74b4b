// Package leveldata provides level templates shared by the simulation and
// its loaders. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import (
	"errors"
	"fmt"

	"github.com/automoto/gravityman/shared/gamemath"
)

var (
	ErrNoLevels     = errors.New("no levels")
	ErrInvalidLevel = errors.New("invalid level")
)

// Motion selects how an enemy moves.
type Motion string

const (
	// MotionPatrol moves back and forth along one axis by a fixed offset.
	MotionPatrol Motion = "patrol"
	// MotionGravity falls along the current gravity direction like the player.
	MotionGravity Motion = "gravity"
)

// EnemySpawn places one enemy.
type EnemySpawn struct {
	Rect   gamemath.Rect `yaml:"rect"`
	Motion Motion        `yaml:"motion"`
	// Axis is "x" or "y" for patrol enemies.
	Axis string `yaml:"axis"`
	// Distance is the patrol offset in pixels from the spawn position.
	Distance float64 `yaml:"distance"`
	// Period is the seconds taken for one leg of the patrol.
	Period float64 `yaml:"period"`
}

// Level is an immutable level template. Play state (collected items, exit
// open) lives in the entities built from it, so resetting a level means
// building it again from the same template.
type Level struct {
	Name     string          `yaml:"name"`
	Start    gamemath.Vec    `yaml:"start"`
	Walls    []gamemath.Rect `yaml:"walls"`
	Hazards  []gamemath.Rect `yaml:"hazards"`
	Items    []gamemath.Rect `yaml:"items"`
	Enemies  []EnemySpawn    `yaml:"enemies"`
	Goal     gamemath.Rect   `yaml:"goal"`
	Required int             `yaml:"required"`
}

// RequiredCount returns how many items unlock the exit. A zero or negative
// Required means every item.
func (l *Level) RequiredCount() int {
	if l.Required <= 0 {
		return len(l.Items)
	}
	return l.Required
}

// Validate reports the first structural problem with the level, checked
// against a world of the given size and a player body of the given size.
func (l *Level) Validate(world gamemath.Rect, playerW, playerH float64) error {
	if l.Required > len(l.Items) {
		return fmt.Errorf("%w %q: requires %d items but has %d", ErrInvalidLevel, l.Name, l.Required, len(l.Items))
	}
	if l.Goal.W <= 0 || l.Goal.H <= 0 {
		return fmt.Errorf("%w %q: goal has no area", ErrInvalidLevel, l.Name)
	}

	groups := []struct {
		kind  string
		rects []gamemath.Rect
	}{
		{"wall", l.Walls},
		{"hazard", l.Hazards},
		{"item", l.Items},
	}
	for _, g := range groups {
		for i, r := range g.rects {
			if r.W <= 0 || r.H <= 0 {
				return fmt.Errorf("%w %q: %s %d has no area", ErrInvalidLevel, l.Name, g.kind, i)
			}
		}
	}

	for i, e := range l.Enemies {
		if e.Rect.W <= 0 || e.Rect.H <= 0 {
			return fmt.Errorf("%w %q: enemy %d has no area", ErrInvalidLevel, l.Name, i)
		}
		switch e.Motion {
		case "", MotionPatrol, MotionGravity:
		default:
			return fmt.Errorf("%w %q: enemy %d has unknown motion %q", ErrInvalidLevel, l.Name, i, e.Motion)
		}
	}

	body := gamemath.NewRect(l.Start.X, l.Start.Y, playerW, playerH)
	if !world.Contains(body) {
		return fmt.Errorf("%w %q: start (%.0f,%.0f) is outside the world", ErrInvalidLevel, l.Name, l.Start.X, l.Start.Y)
	}
	for i, w := range l.Walls {
		if gamemath.Overlaps(body, w) {
			return fmt.Errorf("%w %q: start overlaps wall %d", ErrInvalidLevel, l.Name, i)
		}
	}
	for i, h := range l.Hazards {
		if gamemath.Overlaps(body, h) {
			return fmt.Errorf("%w %q: start overlaps hazard %d", ErrInvalidLevel, l.Name, i)
		}
	}

	return nil
}

// Clone returns a deep copy so callers can't alias template slices.
func (l Level) Clone() Level {
	c := l
	c.Walls = append([]gamemath.Rect(nil), l.Walls...)
	c.Hazards = append([]gamemath.Rect(nil), l.Hazards...)
	c.Items = append([]gamemath.Rect(nil), l.Items...)
	c.Enemies = append([]EnemySpawn(nil), l.Enemies...)
	return c
}
