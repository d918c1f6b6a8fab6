package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/OliverJAsh/game-of-life/model"
	"github.com/OliverJAsh/game-of-life/rules"
	"github.com/OliverJAsh/game-of-life/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "config.json", "path to the JSON configuration")
		pattern    = flag.String("pattern", "", "starting pattern, one of "+fmt.Sprint(model.PatternNames()))
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}
	if *pattern != "" {
		config.Pattern = *pattern
		config.Seed = nil
	}
	if err = config.Validate(); err != nil {
		return err
	}

	if p := startProfile(config.Profile); p != nil {
		defer p.Stop()
	}

	g, err := initializeGame(config)
	if err != nil {
		return err
	}
	displayGameInfo(config, g.live)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return g.loop(ctx)
}

func (g *game) loop(ctx context.Context) error {
	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(g.stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
			return nil
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		g.renderer.Clear()

		// An empty universe has no viewport; it is reported as extinct
		viewport, err := acquireViewport(g.live, g.pool)
		if err != nil && !errors.Is(err, model.ErrEmptyInput) {
			return err
		}

		livingCells, density, status, isStagnant := updateGameState(
			g.live, viewport, generation, lastFrameTime, g.stats, g.history)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, density, status, viewport, g.stats, lastRestartGen)
		if viewport != nil {
			g.renderer.Display(viewport)
			model.ViewportToPool(viewport, g.pool)
		}

		if g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
			return nil
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, g.config)
		switch {
		case shouldRestart && g.config.AutoRestart:
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
			if g.live, err = restartGame(g.config); err != nil {
				return err
			}
			g.history.Reset()
			lastRestartGen = generation
			stagnantCount = 0
		case livingCells == 0:
			fmt.Println("\n💀 Extinct, nothing left to simulate")
			return nil
		case shouldInject(stagnantCount, g.config):
			// Inject some life to try to break the stagnation
			g.live = model.InjectRandomLife(g.live, g.config.InjectionCount, g.config.InjectRadius, g.rng)
		}

		next, err := nextGeneration(ctx, g.live, g.config)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			return err
		}

		changes := rules.Diff(g.live, next)
		g.stats.RecordChanges(len(changes.Births), len(changes.Deaths))
		g.live = next
		generation++

		// Wait before next frame
		select {
		case <-ctx.Done():
		case <-time.After(g.config.FrameRate):
		}
	}
}
