package model

import (
	"cmp"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"slices"
)

const defaultHistorySize = 5

// History keeps fingerprints of recent generations for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory returns a history holding at most size generations
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// GenerationHash returns an MD5 fingerprint of cells that ignores order and duplicates
func GenerationHash(cells []Cell) string {
	sorted := NewCellSet(cells...).Cells()
	slices.SortFunc(sorted, func(a, b Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})

	h := md5.New()
	buf := make([]byte, 16)
	for _, c := range sorted {
		binary.BigEndian.PutUint64(buf[:8], uint64(c.X))
		binary.BigEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Observe records cells and reports whether they repeat one of the last
// three recorded generations (a still life or a period 2/3 oscillator)
func (h *History) Observe(cells []Cell) bool {
	current := GenerationHash(cells)

	stagnant := false
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == current {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, current)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// Len returns the number of generations recorded
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}
