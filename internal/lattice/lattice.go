// Package lattice stores the cell states of a D-dimensional cellular
// automaton. Two layouts are provided: Dense for fixed rectangular grids where
// every cell is materialised, and Sparse for unbounded grids where only
// non-default cells are kept.
package lattice

import "sort"

// State is a discrete cell state. The zero State is the default state of
// every lattice: absent coordinates read as Default.
type State uint8

// Default is the state of any coordinate a lattice does not store.
const Default State = 0

// Lattice is a read-only view of one generation.
type Lattice interface {
	// Dim returns the arity of the coordinates the lattice accepts.
	Dim() int
	// Get returns the state at c, or Default if c is not stored.
	Get(c Coord) State
	// Bounds returns the inclusive box around every non-default cell. For a
	// bounded lattice it is the static extent of the grid instead.
	Bounds() Box
	// Bounded reports whether the lattice has a fixed extent.
	Bounded() bool
	// Count returns the number of stored cells in state s.
	Count(s State) int
	// Each calls fn for every non-default cell.
	Each(fn func(Coord, State))
	// WithCell returns a copy of the lattice with c set to s. The receiver is
	// left untouched.
	WithCell(c Coord, s State) Lattice
}

// Snapshot flattens the non-default cells of l into a map keyed by the
// coordinate's string form. Two lattices holding the same live mapping have
// equal snapshots regardless of layout.
func Snapshot(l Lattice) map[string]State {
	out := make(map[string]State)
	l.Each(func(c Coord, s State) {
		out[c.String()] = s
	})
	return out
}

// Equal reports whether a and b hold the same non-default mapping.
func Equal(a, b Lattice) bool {
	if a.Dim() != b.Dim() {
		return false
	}
	same := true
	n := 0
	a.Each(func(c Coord, s State) {
		n++
		if b.Get(c) != s {
			same = false
		}
	})
	if !same {
		return false
	}
	m := 0
	b.Each(func(Coord, State) { m++ })
	return n == m
}

// Coords returns the non-default coordinates of l in ascending order.
func Coords(l Lattice) []Coord {
	var out []Coord
	l.Each(func(c Coord, _ State) { out = append(out, c) })
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
