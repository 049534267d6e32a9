package neighbor

import (
	"sync"

	"lattice-ca/internal/lattice"
)

var offsetTables [lattice.MaxDim + 1]func() []lattice.Coord

func init() {
	for dim := 1; dim <= lattice.MaxDim; dim++ {
		offsetTables[dim] = sync.OnceValue(func() []lattice.Coord { return buildOffsets(dim) })
	}
}

// Offsets returns the 3^dim - 1 unit offsets whose components are each in
// {-1, 0, 1}, excluding the zero vector, in row-major order. The returned
// slice is shared and must not be modified.
func Offsets(dim int) []lattice.Coord {
	return offsetTables[dim]()
}

func buildOffsets(dim int) []lattice.Coord {
	lo := lattice.Origin(dim)
	hi := lattice.Origin(dim)
	for i := 0; i < dim; i++ {
		lo = lo.With(i, -1)
		hi = hi.With(i, 1)
	}
	zero := lattice.Origin(dim)
	out := make([]lattice.Coord, 0, lattice.NewBox(lo, hi).Volume()-1)
	lattice.NewBox(lo, hi).Each(func(c lattice.Coord) {
		if c != zero {
			out = append(out, c)
		}
	})
	return out
}
