package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gridcaster/internal/raycast"
)

// DefaultRows is the built-in 10x10 map: a solid border plus four pillars.
var DefaultRows = []string{
	"##########",
	"##.......#",
	"#........#",
	"###......#",
	"#........#",
	"#........#",
	"#......#.#",
	"#........#",
	"#........#",
	"##########",
}

// mapFile is the on-disk layout of a map.
type mapFile struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Map is a parsed map file.
type Map struct {
	Name string
	Grid *raycast.Grid
}

// ParseMap decodes a YAML map document.
func ParseMap(data []byte) (*Map, error) {
	var mf mapFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("decoding map: %w", err)
	}
	g, err := raycast.GridFromRows(mf.Rows)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", mf.Name, err)
	}
	return &Map{Name: mf.Name, Grid: g}, nil
}

// LoadMap reads and parses the map file at path.
func LoadMap(path string) (*Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseMap(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
