package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"github.com/pkg/profile"

	"github.com/OliverJAsh/game-of-life/model"
	"github.com/OliverJAsh/game-of-life/rules"
	"github.com/OliverJAsh/game-of-life/utils"
)

// game bundles the state the driver carries between frames
type game struct {
	config   utils.Config
	live     []model.Cell
	pool     *model.ViewportPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	history  *model.History
	rng      *rand.Rand
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game, error) {
	var pool *model.ViewportPool
	if config.UseMemoryPool {
		pool = model.NewViewportPool()
	}

	live, err := config.InitialCells()
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to seed")
	}

	return &game{
		config:   config,
		live:     live,
		pool:     pool,
		renderer: &model.TerminalRenderer{},
		stats:    utils.NewStats(),
		history:  model.NewHistory(0),
		rng:      rand.New(rand.NewPCG(uint64(config.RandomSeed), 0)),
	}, nil
}

// startProfile starts the configured profiler; the caller must Stop it
func startProfile(mode string) interface{ Stop() } {
	switch mode {
	case utils.ProfileCPU:
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case utils.ProfileMem:
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	}
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, live []model.Cell) {
	fmt.Printf("Features: Memory Pool: %v, Parallel: %v (workers: %d)\n",
		config.UseMemoryPool, config.UseParallel, config.Workers)
	fmt.Printf("Pattern: %s | Initial living cells: %d\n", seedName(config), len(live))
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

func seedName(config utils.Config) string {
	if len(config.Seed) > 0 {
		return "custom"
	}
	return config.Pattern
}

// acquireViewport derives the display viewport, from the pool when one is configured
func acquireViewport(live []model.Cell, pool *model.ViewportPool) (*model.Viewport, error) {
	if pool != nil {
		return pool.Get(live)
	}
	return model.NewViewport(live)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	live []model.Cell,
	viewport *model.Viewport,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
	history *model.History,
) (int, float64, string, bool) {
	livingCells := len(live)
	density := 0.0
	if viewport != nil {
		density = float64(livingCells) / float64(viewport.GetBoundingBoxSize()) * 100
		stats.BoundingBoxSize = viewport.GetBoundingBoxSize()
	} else {
		stats.BoundingBoxSize = 0
	}

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)

	isStagnant := history.Observe(live)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	viewport *model.Viewport,
	stats *utils.Stats,
	lastRestartGen int,
) {
	boundingInfo := ""
	if viewport != nil {
		lo, hi := viewport.Min(), viewport.Max()
		boundingInfo = fmt.Sprintf(" | Bounds: %v..%v (%d cells)", lo, hi, viewport.GetBoundingBoxSize())
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n",
		generation, livingCells, density, status, boundingInfo)
	fmt.Printf("Births: %d | Deaths: %d\n", stats.Births, stats.Deaths)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// shouldInject reports whether random life should be added to break a cycle
func shouldInject(stagnantCount int, config utils.Config) bool {
	return config.InjectionCount > 0 && stagnantCount >= 2 && stagnantCount < config.StagnationThreshold
}

// restartGame handles the game restart logic
func restartGame(config utils.Config) ([]model.Cell, error) {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	live, err := config.InitialCells()
	if err != nil {
		return nil, errors.Wrap(err, "[restartGame] failed to reseed")
	}

	fmt.Printf("✨ Pattern reloaded! Living cells: %d\n", len(live))
	time.Sleep(2 * time.Second)

	return live, nil
}

// nextGeneration advances live once, in parallel when configured
func nextGeneration(ctx context.Context, live []model.Cell, config utils.Config) ([]model.Cell, error) {
	if config.UseParallel {
		return rules.AdvanceParallel(ctx, live, config.Workers)
	}
	return rules.Advance(live), nil
}
