package model

// CellSet is a set of cells that remembers insertion order
type CellSet struct {
	order []Cell
	index map[Cell]struct{}
}

// NewCellSet builds a set from cells, keeping the first occurrence of duplicates
func NewCellSet(cells ...Cell) *CellSet {
	s := &CellSet{
		order: make([]Cell, 0, len(cells)),
		index: make(map[Cell]struct{}, len(cells)),
	}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add inserts c and reports whether it was not already present
func (s *CellSet) Add(c Cell) bool {
	if s.index == nil {
		s.index = make(map[Cell]struct{})
	}
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = struct{}{}
	s.order = append(s.order, c)
	return true
}

// Contains reports whether c is in the set
func (s *CellSet) Contains(c Cell) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[c]
	return ok
}

// Len returns the number of cells in the set
func (s *CellSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Cells returns a copy of the cells in insertion order
func (s *CellSet) Cells() []Cell {
	if s == nil {
		return []Cell{}
	}
	out := make([]Cell, len(s.order))
	copy(out, s.order)
	return out
}

// Equal reports whether both sets hold the same cells, ignoring order
func (s *CellSet) Equal(other *CellSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s == nil {
		return true
	}
	for _, c := range s.order {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// SameCells reports whether a and b contain the same cells, ignoring order and duplicates
func SameCells(a, b []Cell) bool {
	return NewCellSet(a...).Equal(NewCellSet(b...))
}
