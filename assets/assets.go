// Package assets bundles the Tiled level maps shipped with the game.
package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/gravityman/shared/leveldata"
)

// LevelsDir is the directory of bundled maps inside FS.
const LevelsDir = "levels"

//go:embed levels/*.tmx
var levelFS embed.FS

// FS exposes the embedded files.
func FS() fs.FS {
	return levelFS
}

// Levels loads every bundled map in file name order.
func Levels() ([]leveldata.Level, error) {
	return leveldata.LoadAllTMX(levelFS, LevelsDir)
}
