package rules

import "github.com/OliverJAsh/game-of-life/model"

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// LiveNeighborCount counts the members of live surrounding cell
func LiveNeighborCount(cell model.Cell, live *model.CellSet) (count int) {
	for _, n := range model.NeighborsOf(cell) {
		if live.Contains(n) {
			count++
		}
	}
	return
}

// ShouldDie reports whether a live cell fails to survive into the next generation.
// Dead cells never die.
func ShouldDie(cell model.Cell, live *model.CellSet) bool {
	if !live.Contains(cell) {
		return false
	}
	return !ApplyConwayRules(LiveNeighborCount(cell, live), true)
}

// ShouldBeBorn reports whether a dead cell comes alive in the next generation
func ShouldBeBorn(cell model.Cell, live *model.CellSet) bool {
	if live.Contains(cell) {
		return false
	}
	return ApplyConwayRules(LiveNeighborCount(cell, live), false)
}
