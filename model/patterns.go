package model

import (
	"slices"
	"sort"

	"github.com/pkg/errors"
)

const DefaultPattern = "seed"

var patterns = map[string][]Cell{
	// Small glider-like starting configuration
	DefaultPattern: {
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		{X: 3, Y: 1},
	},
	"glider": {
		{X: 0, Y: 1},
		{X: 1, Y: 0},
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	},
	"blinker": {
		{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0},
	},
	"block": {
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1},
	},
}

// Pattern returns a copy of the named starting configuration
func Pattern(name string) ([]Cell, error) {
	cells, ok := patterns[name]
	if !ok {
		return nil, errors.Errorf("[Pattern] unknown pattern: %+v", name)
	}
	return slices.Clone(cells), nil
}

// PatternNames lists the known patterns in alphabetical order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
