package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX maps.
const (
	GroupWalls   = "Walls"
	GroupHazards = "Hazards"
	GroupItems   = "Items"
	GroupEnemies = "Enemies"
	GroupGoal    = "Goal"
	GroupStart   = "Start"
)

// LoadTMX parses a Tiled map into a Level. Only object groups are read; each
// object's rectangle becomes one piece of the level. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := Level{Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")}

	var haveStart, haveGoal bool
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			rect := gamemath.NewRect(o.X, o.Y, o.Width, o.Height)
			switch og.Name {
			case GroupWalls:
				lvl.Walls = append(lvl.Walls, rect)
			case GroupHazards:
				lvl.Hazards = append(lvl.Hazards, rect)
			case GroupItems:
				lvl.Items = append(lvl.Items, rect)
			case GroupEnemies:
				lvl.Enemies = append(lvl.Enemies, enemyFromObject(rect, o))
			case GroupGoal:
				lvl.Goal = rect
				lvl.Required = o.Properties.GetInt("required")
				haveGoal = true
			case GroupStart:
				lvl.Start = gamemath.Vec{X: o.X, Y: o.Y}
				haveStart = true
			}
		}
	}

	if !haveStart {
		return Level{}, fmt.Errorf("%w %s: missing %s object", ErrInvalidLevel, tmxPath, GroupStart)
	}
	if !haveGoal {
		return Level{}, fmt.Errorf("%w %s: missing %s object", ErrInvalidLevel, tmxPath, GroupGoal)
	}

	return lvl, nil
}

func enemyFromObject(rect gamemath.Rect, o *tiled.Object) EnemySpawn {
	spawn := EnemySpawn{
		Rect:     rect,
		Motion:   Motion(o.Properties.GetString("motion")),
		Axis:     o.Properties.GetString("axis"),
		Distance: o.Properties.GetFloat("distance"),
		Period:   o.Properties.GetFloat("period"),
	}
	if spawn.Motion == "" {
		spawn.Motion = MotionPatrol
	}
	if spawn.Axis == "" {
		spawn.Axis = "x"
	}
	return spawn
}

// LoadAllTMX discovers all .tmx files in levelsDir within fsys and loads them
// in file name order.
func LoadAllTMX(fsys fs.FS, levelsDir string) ([]Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no .tmx files found in %s", ErrNoLevels, levelsDir)
	}

	sort.Strings(matches)
	levels := make([]Level, 0, len(matches))
	for _, path := range matches {
		lvl, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}
