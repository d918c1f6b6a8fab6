package rules

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/OliverJAsh/game-of-life/model"
)

// Advance computes the generation following cells.
//
// The result lists surviving cells in their original order, then newly
// born cells in the order they were first found while scanning the
// neighbors of each live cell. Duplicates in cells are ignored.
func Advance(cells []model.Cell) []model.Cell {
	live := model.NewCellSet(cells...)
	current := live.Cells()

	survivors, born := step(current, live)
	next := model.NewCellSet(survivors...)
	for _, c := range born {
		next.Add(c)
	}
	return next.Cells()
}

// AdvanceParallel computes the same generation as Advance, including order,
// splitting the rule evaluation across workers goroutines. workers <= 0 uses
// one worker per CPU.
func AdvanceParallel(ctx context.Context, cells []model.Cell, workers int) ([]model.Cell, error) {
	live := model.NewCellSet(cells...)
	current := live.Cells()

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var (
		numWorkers     = max(1, min(workers, len(current)))
		cellsPerWorker = (len(current) + numWorkers - 1) / numWorkers // Ceiling division
		survivors      = make([][]model.Cell, numWorkers)
		born           = make([][]model.Cell, numWorkers)
	)

	eg, ctx := errgroup.WithContext(ctx)
	for i := range numWorkers {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(current))
		)
		if start >= len(current) {
			break
		}

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// live is only read here; each worker owns its own result slots
			survivors[i], born[i] = step(current[start:end], live)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrapf(err, "[AdvanceParallel] failed to advance %d cells", len(current))
	}

	next := model.NewCellSet()
	for _, chunk := range survivors {
		for _, c := range chunk {
			next.Add(c)
		}
	}
	for _, chunk := range born {
		for _, c := range chunk {
			next.Add(c)
		}
	}
	return next.Cells(), nil
}

// step evaluates the rules for chunk against the full live set. born is
// deduplicated within the chunk only.
func step(chunk []model.Cell, live *model.CellSet) (survivors, born []model.Cell) {
	survivors = make([]model.Cell, 0, len(chunk))
	candidates := model.NewCellSet()

	for _, c := range chunk {
		if !ShouldDie(c, live) {
			survivors = append(survivors, c)
		}
		// Only dead cells next to a live cell can reach three live neighbors
		for _, n := range model.NeighborsOf(c) {
			if ShouldBeBorn(n, live) {
				candidates.Add(n)
			}
		}
	}
	return survivors, candidates.Cells()
}

// Changes describes how one generation differs from the previous one
type Changes struct {
	Births []model.Cell
	Deaths []model.Cell
}

// Diff returns the cells born into and removed from next relative to prev
func Diff(prev, next []model.Cell) Changes {
	var (
		before = model.NewCellSet(prev...)
		after  = model.NewCellSet(next...)
		ch     = Changes{Births: []model.Cell{}, Deaths: []model.Cell{}}
	)
	for _, c := range after.Cells() {
		if !before.Contains(c) {
			ch.Births = append(ch.Births, c)
		}
	}
	for _, c := range before.Cells() {
		if !after.Contains(c) {
			ch.Deaths = append(ch.Deaths, c)
		}
	}
	return ch
}
