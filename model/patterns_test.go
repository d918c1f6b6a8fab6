package model

import (
	"reflect"
	"testing"
)

func TestPattern(t *testing.T) {
	seed, err := Pattern(DefaultPattern)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		{X: 3, Y: 1},
	}
	if !reflect.DeepEqual(seed, expected) {
		t.Errorf("Pattern(%q) = %v", DefaultPattern, seed)
	}

	seed[0] = Cell{X: 100, Y: 100}
	again, _ := Pattern(DefaultPattern)
	if again[0] != (Cell{}) {
		t.Error("Pattern returned shared storage")
	}

	if _, err = Pattern("no-such-pattern"); err == nil {
		t.Error("expected an error for an unknown pattern")
	}
}

func TestPatternNames(t *testing.T) {
	expected := []string{"blinker", "block", "glider", "seed"}
	if got := PatternNames(); !reflect.DeepEqual(got, expected) {
		t.Errorf("PatternNames() = %v, expected %v", got, expected)
	}
}
