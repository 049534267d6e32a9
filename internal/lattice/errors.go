package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol is returned when a seed grid contains a symbol outside
	// the automaton's symbol table.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrRaggedGrid is returned when a bounded grid has rows of unequal width.
	ErrRaggedGrid = errors.New("ragged grid")
	// ErrDimensionMismatch marks a coordinate whose arity does not match the
	// lattice it is used with. It is raised as a panic value, never returned
	// from normal operation.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// ParseError reports the position of an unrecognised symbol in a seed grid.
type ParseError struct {
	Row    int
	Col    int
	Symbol rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d col %d: %v %q", e.Row+1, e.Col+1, ErrUnknownSymbol, e.Symbol)
}

func (e *ParseError) Unwrap() error { return ErrUnknownSymbol }

func checkArity(dim int) {
	if dim < 1 || dim > MaxDim {
		panic(fmt.Errorf("%w: arity %d outside [1,%d]", ErrDimensionMismatch, dim, MaxDim))
	}
}

func mustDim(want int, c Coord) {
	if c.Dim() != want {
		panic(fmt.Errorf("%w: %d-D lattice got %d-D coordinate %v", ErrDimensionMismatch, want, c.Dim(), c))
	}
}
