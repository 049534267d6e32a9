package neighbor

import "lattice-ca/internal/lattice"

// Adjacent counts the cells at Chebyshev distance one.
type Adjacent struct{}

func (Adjacent) Name() string { return "adjacent" }

func (Adjacent) Tally(l lattice.Lattice, c lattice.Coord, alive lattice.State, limit int) int {
	n := 0
	for _, d := range Offsets(c.Dim()) {
		if l.Get(c.Add(d)) != alive {
			continue
		}
		n++
		if limit >= 0 && n > limit {
			return n
		}
	}
	return n
}
