package lattice

import "fmt"

// Dense is a bounded lattice storing every cell of a fixed extent in
// row-major order.
type Dense struct {
	extent  Box
	strides [MaxDim]int
	data    []State
}

// NewDense allocates a lattice covering extent with every cell Default.
func NewDense(extent Box) *Dense {
	d := &Dense{extent: extent}
	stride := 1
	for i := extent.Dim() - 1; i >= 0; i-- {
		d.strides[i] = stride
		stride *= extent.Span(i)
	}
	d.data = make([]State, extent.Volume())
	return d
}

func (d *Dense) Dim() int      { return d.extent.Dim() }
func (d *Dense) Bounds() Box   { return d.extent }
func (d *Dense) Bounded() bool { return true }

// Cells exposes the row-major backing slice.
func (d *Dense) Cells() []State { return d.data }

// Index returns the backing slice index of c and whether c lies inside the
// extent.
func (d *Dense) Index(c Coord) (int, bool) {
	mustDim(d.Dim(), c)
	if !d.extent.Contains(c) {
		return 0, false
	}
	idx := 0
	for i := 0; i < d.Dim(); i++ {
		idx += (c.v[i] - d.extent.min.v[i]) * d.strides[i]
	}
	return idx, true
}

func (d *Dense) Get(c Coord) State {
	idx, ok := d.Index(c)
	if !ok {
		return Default
	}
	return d.data[idx]
}

func (d *Dense) Count(st State) int {
	n := 0
	for _, v := range d.data {
		if v == st {
			n++
		}
	}
	return n
}

func (d *Dense) Each(fn func(Coord, State)) {
	i := 0
	d.extent.Each(func(c Coord) {
		if v := d.data[i]; v != Default {
			fn(c, v)
		}
		i++
	})
}

func (d *Dense) WithCell(c Coord, st State) Lattice {
	out := &Dense{extent: d.extent, strides: d.strides, data: append([]State(nil), d.data...)}
	out.set(c, st)
	return out
}

func (d *Dense) set(c Coord, st State) {
	idx, ok := d.Index(c)
	if !ok {
		panic(fmt.Sprintf("lattice: %v outside fixed extent %v", c, d.extent))
	}
	d.data[idx] = st
}
