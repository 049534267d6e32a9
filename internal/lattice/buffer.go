package lattice

// Buffer collects the cells of the next generation. It is written by exactly
// one sweep and becomes an immutable Lattice once frozen.
type Buffer struct {
	sparse *Sparse
	dense  *Dense
	frozen bool
}

// NewBuffer returns an empty buffer with the same layout as like. A bounded
// lattice yields a buffer with the same fixed extent.
func NewBuffer(like Lattice) *Buffer {
	if like.Bounded() {
		return &Buffer{dense: NewDense(like.Bounds())}
	}
	return &Buffer{sparse: NewSparse(like.Dim())}
}

// Set records the state of c in the generation being built.
func (b *Buffer) Set(c Coord, s State) {
	if b.frozen {
		panic("lattice: Set on frozen buffer")
	}
	if b.dense != nil {
		b.dense.set(c, s)
		return
	}
	mustDim(b.sparse.dim, c)
	b.sparse.set(c, s)
}

// Freeze publishes the buffer as a Lattice. The buffer must not be used
// afterwards.
func (b *Buffer) Freeze() Lattice {
	b.frozen = true
	if b.dense != nil {
		return b.dense
	}
	b.sparse.recomputeBounds()
	return b.sparse
}
