package lattice

import (
	"strconv"
	"strings"
)

// MaxDim is the largest arity a Coord can carry.
const MaxDim = 8

// Coord is a point in a D-dimensional integer lattice. It is a comparable
// value type and is used directly as a map key.
type Coord struct {
	dim uint8
	v   [MaxDim]int
}

// NewCoord builds a coordinate whose arity is len(vals).
func NewCoord(vals ...int) Coord {
	checkArity(len(vals))
	c := Coord{dim: uint8(len(vals))}
	copy(c.v[:], vals)
	return c
}

// Origin returns the all-zero coordinate of the given arity.
func Origin(dim int) Coord {
	checkArity(dim)
	return Coord{dim: uint8(dim)}
}

// Dim returns the arity of the coordinate.
func (c Coord) Dim() int { return int(c.dim) }

// At returns the component along axis.
func (c Coord) At(axis int) int { return c.v[axis] }

// With returns a copy of c with the component along axis replaced.
func (c Coord) With(axis, val int) Coord {
	c.v[axis] = val
	return c
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord {
	mustDim(c.Dim(), o)
	for i := 0; i < int(c.dim); i++ {
		c.v[i] += o.v[i]
	}
	return c
}

// Extend zero-pads c up to dim axes.
func (c Coord) Extend(dim int) Coord {
	checkArity(dim)
	if dim < int(c.dim) {
		mustDim(dim, c)
	}
	c.dim = uint8(dim)
	return c
}

// Reflect mirrors the component along axis inside the interval [lo, hi].
func (c Coord) Reflect(axis, lo, hi int) Coord {
	c.v[axis] = lo + hi - c.v[axis]
	return c
}

// Less orders coordinates lexicographically, first axis most significant.
func (c Coord) Less(o Coord) bool {
	mustDim(c.Dim(), o)
	for i := 0; i < int(c.dim); i++ {
		if c.v[i] != o.v[i] {
			return c.v[i] < o.v[i]
		}
	}
	return false
}

func (c Coord) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < int(c.dim); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c.v[i]))
	}
	b.WriteByte(')')
	return b.String()
}
