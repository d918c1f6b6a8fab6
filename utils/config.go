package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/OliverJAsh/game-of-life/model"
)

// Profile modes accepted by Config.Profile
const (
	ProfileNone = ""
	ProfileCPU  = "cpu"
	ProfileMem  = "mem"
)

// Config holds the configuration for the game
type Config struct {
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel"`
	Workers             int           `json:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	Pattern             string        `json:"pattern"`
	Seed                []model.Cell  `json:"seed"`
	InjectionCount      int           `json:"injection_count"`
	InjectRadius        int           `json:"inject_radius"`
	RandomSeed          int64         `json:"random_seed"`
	Profile             string        `json:"profile"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseParallel:         true,
		Workers:             0, // one per CPU
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		Pattern:             model.DefaultPattern,
		InjectionCount:      3,
		InjectRadius:        2,
		RandomSeed:          1,
		Profile:             ProfileNone,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the game loop cannot run with
func (c Config) Validate() error {
	switch {
	case c.FrameRate < 0:
		return errors.Errorf("[Config.Validate] frame_rate must not be negative: %v", c.FrameRate)
	case c.StagnationThreshold < 0:
		return errors.Errorf("[Config.Validate] stagnation_threshold must not be negative: %d", c.StagnationThreshold)
	case c.Workers < 0:
		return errors.Errorf("[Config.Validate] workers must not be negative: %d", c.Workers)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Config.Validate] max_generations must not be negative: %d", c.MaxGenerations)
	case c.InjectionCount < 0:
		return errors.Errorf("[Config.Validate] injection_count must not be negative: %d", c.InjectionCount)
	case c.InjectRadius < 0:
		return errors.Errorf("[Config.Validate] inject_radius must not be negative: %d", c.InjectRadius)
	}

	switch c.Profile {
	case ProfileNone, ProfileCPU, ProfileMem:
	default:
		return errors.Errorf("[Config.Validate] unknown profile mode: %+v", c.Profile)
	}

	if len(c.Seed) == 0 {
		if _, err := model.Pattern(c.Pattern); err != nil {
			return errors.Wrap(err, "[Config.Validate] no usable seed")
		}
	}
	return nil
}

// InitialCells returns the literal seed if one is configured, the named pattern otherwise
func (c Config) InitialCells() ([]model.Cell, error) {
	if len(c.Seed) > 0 {
		return model.NewCellSet(c.Seed...).Cells(), nil
	}
	cells, err := model.Pattern(c.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[Config.InitialCells] failed to load pattern")
	}
	return cells, nil
}
