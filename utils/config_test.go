package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/OliverJAsh/game-of-life/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig() is invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"frame_rate": 50000000,
		"use_parallel": false,
		"workers": 4,
		"seed": [[0, 0], [1, 0], [2, 0]],
		"profile": "cpu"
	}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.FrameRate != 50*time.Millisecond || config.UseParallel || config.Workers != 4 || config.Profile != ProfileCPU {
		t.Errorf("unexpected config: %+v", config)
	}
	// Unset fields keep their defaults
	if config.MaxGenerations != DefaultConfig().MaxGenerations || config.Pattern != model.DefaultPattern {
		t.Errorf("defaults were lost: %+v", config)
	}

	cells, err := config.InitialCells()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []model.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	if !reflect.DeepEqual(cells, expected) {
		t.Errorf("InitialCells() = %v, expected %v", cells, expected)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		msg  string
	}{
		{"missing file", filepath.Join(t.TempDir(), "absent.json"), "failed to read file"},
		{"bad json", writeConfig(t, `{"workers": `), "failed to unmarshal"},
		{"bad cell", writeConfig(t, `{"seed": [[1, 2, 3]]}`), "failed to unmarshal"},
		{"invalid", writeConfig(t, `{"workers": -1}`), "invalid configuration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("LoadConfig() error = %v, expected it to mention %q", err, tt.msg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }},
		{"negative threshold", func(c *Config) { c.StagnationThreshold = -1 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"negative injection", func(c *Config) { c.InjectionCount = -1 }},
		{"negative radius", func(c *Config) { c.InjectRadius = -1 }},
		{"unknown profile", func(c *Config) { c.Profile = "trace" }},
		{"unknown pattern", func(c *Config) { c.Pattern = "spaceship" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			if err := config.Validate(); err == nil {
				t.Errorf("Validate() accepted %+v", config)
			}
		})
	}
}

func TestInitialCellsSeedOverridesPattern(t *testing.T) {
	config := DefaultConfig()
	config.Pattern = "unknown"
	config.Seed = []model.Cell{{X: 4, Y: 4}, {X: 4, Y: 4}}

	if err := config.Validate(); err != nil {
		t.Fatalf("a literal seed should not need a known pattern: %v", err)
	}
	cells, err := config.InitialCells()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cells, []model.Cell{{X: 4, Y: 4}}) {
		t.Errorf("InitialCells() = %v", cells)
	}
}

func TestInitialCellsPattern(t *testing.T) {
	config := DefaultConfig()
	config.Pattern = "blinker"

	cells, err := config.InitialCells()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected, _ := model.Pattern("blinker")
	if !reflect.DeepEqual(cells, expected) {
		t.Errorf("InitialCells() = %v, expected %v", cells, expected)
	}

	config.Pattern = "unknown"
	if _, err = config.InitialCells(); err == nil {
		t.Error("expected an error for an unknown pattern")
	}
}
