// Package rule holds the transition functions that map a cell and its
// neighbour tally to the cell's next state.
package rule

import "lattice-ca/internal/lattice"

// Rule is a pure transition function.
type Rule interface {
	Name() string
	// Alive is the state neighbours are tallied on and the state counted in
	// the final result.
	Alive() lattice.State
	// Saturation is the largest tally whose exact value affects Apply. Any
	// tally above it behaves the same. A negative value means every tally
	// matters.
	Saturation() int
	// Apply returns the next state and whether it differs from cur.
	Apply(cur lattice.State, tally int) (lattice.State, bool)
}
