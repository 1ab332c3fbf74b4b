package leveldata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadPath loads levels from disk. A directory is read as a set of .tmx
// maps, a .yaml or .yml file as a level pack, and a .tmx file as one level.
func LoadPath(path string) ([]Level, error) {
	path = filepath.Clean(path)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat levels %s: %w", path, err)
	}

	fsys := os.DirFS(filepath.Dir(path))
	name := filepath.Base(path)

	if info.IsDir() {
		return LoadAllTMX(fsys, name)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAMLFile(fsys, name)
	case ".tmx":
		lvl, err := LoadTMX(fsys, name)
		if err != nil {
			return nil, err
		}
		return []Level{lvl}, nil
	}
	return nil, fmt.Errorf("%w: unsupported level file %s", ErrNoLevels, path)
}
