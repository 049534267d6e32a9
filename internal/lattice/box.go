package lattice

import "fmt"

// Box is an inclusive axis-aligned bounding box. The zero Box of a given
// arity is empty; see EmptyBox.
type Box struct {
	dim      int
	min, max Coord
	nonEmpty bool
}

// EmptyBox returns a box of the given arity that contains nothing.
func EmptyBox(dim int) Box {
	checkArity(dim)
	return Box{dim: dim, min: Origin(dim), max: Origin(dim)}
}

// NewBox returns the box spanning min..max inclusive. If any axis has
// max < min the box is empty.
func NewBox(min, max Coord) Box {
	mustDim(min.Dim(), max)
	b := Box{dim: min.Dim(), min: min, max: max, nonEmpty: true}
	for i := 0; i < b.dim; i++ {
		if max.v[i] < min.v[i] {
			return EmptyBox(b.dim)
		}
	}
	return b
}

// Dim returns the arity of the box.
func (b Box) Dim() int { return b.dim }

// Empty reports whether the box contains no coordinates.
func (b Box) Empty() bool { return !b.nonEmpty }

// Min returns the lower corner. It is meaningless for an empty box.
func (b Box) Min() Coord { return b.min }

// Max returns the upper corner. It is meaningless for an empty box.
func (b Box) Max() Coord { return b.max }

// Span returns the number of coordinates along axis.
func (b Box) Span(axis int) int {
	if b.Empty() {
		return 0
	}
	return b.max.v[axis] - b.min.v[axis] + 1
}

// Volume returns the number of coordinates inside the box.
func (b Box) Volume() int {
	if b.Empty() {
		return 0
	}
	n := 1
	for i := 0; i < b.dim; i++ {
		n *= b.Span(i)
	}
	return n
}

// Include returns the smallest box enclosing both b and c.
func (b Box) Include(c Coord) Box {
	mustDim(b.dim, c)
	if b.Empty() {
		return Box{dim: b.dim, min: c, max: c, nonEmpty: true}
	}
	for i := 0; i < b.dim; i++ {
		if c.v[i] < b.min.v[i] {
			b.min.v[i] = c.v[i]
		}
		if c.v[i] > b.max.v[i] {
			b.max.v[i] = c.v[i]
		}
	}
	return b
}

// Contains reports whether c lies inside the box.
func (b Box) Contains(c Coord) bool {
	mustDim(b.dim, c)
	if b.Empty() {
		return false
	}
	for i := 0; i < b.dim; i++ {
		if c.v[i] < b.min.v[i] || c.v[i] > b.max.v[i] {
			return false
		}
	}
	return true
}

// Within reports whether every coordinate of b is also inside o.
func (b Box) Within(o Box) bool {
	if b.Empty() {
		return true
	}
	return o.Contains(b.min) && o.Contains(b.max)
}

// Expand grows the box by n units on both sides of every axis. An empty box
// stays empty.
func (b Box) Expand(n int) Box {
	if b.Empty() || n == 0 {
		return b
	}
	for i := 0; i < b.dim; i++ {
		b.min.v[i] -= n
		b.max.v[i] += n
	}
	return b
}

// Each calls fn for every coordinate in the box in row-major order (the last
// axis varies fastest).
func (b Box) Each(fn func(Coord)) {
	if b.Empty() {
		return
	}
	c := b.min
	for {
		fn(c)
		axis := b.dim - 1
		for ; axis >= 0; axis-- {
			if c.v[axis] < b.max.v[axis] {
				c.v[axis]++
				break
			}
			c.v[axis] = b.min.v[axis]
		}
		if axis < 0 {
			return
		}
	}
}

func (b Box) String() string {
	if b.Empty() {
		return fmt.Sprintf("empty(%dD)", b.dim)
	}
	return fmt.Sprintf("%v..%v", b.min, b.max)
}
