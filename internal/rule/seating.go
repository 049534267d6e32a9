package rule

import (
	"fmt"

	"lattice-ca/internal/lattice"
)

const (
	// Floor never changes and is never occupied.
	Floor lattice.State = iota
	Empty
	Occupied
)

// Seating fills empty seats with no occupied neighbours and vacates occupied
// seats with at least Vacate occupied neighbours.
type Seating struct {
	Vacate int
}

// NewSeating returns a seating rule. Thresholds below one are raised to one.
func NewSeating(vacate int) Seating {
	if vacate < 1 {
		vacate = 1
	}
	return Seating{Vacate: vacate}
}

func (r Seating) Name() string         { return fmt.Sprintf("seating(vacate>=%d)", r.Vacate) }
func (r Seating) Alive() lattice.State { return Occupied }
func (r Seating) Saturation() int      { return max(r.Vacate-1, 0) }

func (r Seating) Apply(cur lattice.State, tally int) (lattice.State, bool) {
	switch {
	case cur == Empty && tally == 0:
		return Occupied, true
	case cur == Occupied && tally >= r.Vacate:
		return Empty, true
	}
	return cur, false
}
