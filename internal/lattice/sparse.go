package lattice

// Sparse is an unbounded lattice holding only non-default cells.
type Sparse struct {
	dim    int
	cells  map[Coord]State
	bounds Box
}

// NewSparse returns an empty sparse lattice of the given arity.
func NewSparse(dim int) *Sparse {
	checkArity(dim)
	return &Sparse{dim: dim, cells: make(map[Coord]State), bounds: EmptyBox(dim)}
}

func (s *Sparse) Dim() int      { return s.dim }
func (s *Sparse) Bounds() Box   { return s.bounds }
func (s *Sparse) Bounded() bool { return false }

// Len returns the number of stored cells.
func (s *Sparse) Len() int { return len(s.cells) }

func (s *Sparse) Get(c Coord) State {
	mustDim(s.dim, c)
	return s.cells[c]
}

func (s *Sparse) Count(st State) int {
	if st == Default {
		return 0
	}
	n := 0
	for _, v := range s.cells {
		if v == st {
			n++
		}
	}
	return n
}

func (s *Sparse) Each(fn func(Coord, State)) {
	for c, v := range s.cells {
		fn(c, v)
	}
}

func (s *Sparse) WithCell(c Coord, st State) Lattice {
	mustDim(s.dim, c)
	out := &Sparse{dim: s.dim, cells: make(map[Coord]State, len(s.cells)+1)}
	for k, v := range s.cells {
		out.cells[k] = v
	}
	out.set(c, st)
	out.recomputeBounds()
	return out
}

func (s *Sparse) set(c Coord, st State) {
	if st == Default {
		delete(s.cells, c)
		return
	}
	s.cells[c] = st
}

// recomputeBounds rescans the key set. Bounds may shrink as well as grow
// between generations, so there is no incremental shortcut.
func (s *Sparse) recomputeBounds() {
	b := EmptyBox(s.dim)
	for c := range s.cells {
		b = b.Include(c)
	}
	s.bounds = b
}
