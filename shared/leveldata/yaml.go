package leveldata

import (
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

type pack struct {
	Levels []Level `yaml:"levels"`
}

// LoadYAML decodes a level pack of the form
//
//	levels:
//	  - name: ...
//	    start: {x: 12, y: 12}
//	    walls: [{x: 0, y: 270, w: 240, h: 12}]
func LoadYAML(r io.Reader) ([]Level, error) {
	var p pack
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, ErrNoLevels
		}
		return nil, fmt.Errorf("decode level pack: %w", err)
	}
	if len(p.Levels) == 0 {
		return nil, ErrNoLevels
	}
	for i := range p.Levels {
		if p.Levels[i].Name == "" {
			p.Levels[i].Name = fmt.Sprintf("Level %d", i+1)
		}
	}
	return p.Levels, nil
}

// LoadYAMLFile opens path in fsys and decodes it with LoadYAML.
func LoadYAMLFile(fsys fs.FS, path string) ([]Level, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level pack %s: %w", path, err)
	}
	defer f.Close()

	levels, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return levels, nil
}
