package lattice

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSymbols = Symbols{'.': 0, 'L': 1, '#': 2}

func TestCoordValueSemantics(t *testing.T) {
	a := NewCoord(1, -2, 3)
	b := a.Add(NewCoord(1, 1, 1))

	assert.Equal(t, NewCoord(1, -2, 3), a, "Add must not mutate the receiver")
	assert.Equal(t, NewCoord(2, -1, 4), b)
	assert.Equal(t, 3, b.Dim())
	assert.Equal(t, "(2,-1,4)", b.String())
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a))

	seen := map[Coord]bool{NewCoord(0, 0): true}
	assert.True(t, seen[Origin(2)], "coordinates must hash structurally")
	assert.NotEqual(t, Origin(2), Origin(3), "arity is part of identity")
}

func TestCoordExtendAndReflect(t *testing.T) {
	c := NewCoord(4, 5).Extend(4)
	assert.Equal(t, NewCoord(4, 5, 0, 0), c)
	assert.Equal(t, NewCoord(4, 0, 0, 0), c.Reflect(1, 0, 5))
}

func TestDimensionMismatchPanics(t *testing.T) {
	s := NewSparse(3)
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic for 2-D coordinate on 3-D lattice")
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrDimensionMismatch))
	}()
	s.Get(NewCoord(0, 0))
}

func TestBoxEachRowMajor(t *testing.T) {
	b := NewBox(NewCoord(0, 0), NewCoord(1, 2))
	var got []string
	b.Each(func(c Coord) { got = append(got, c.String()) })
	want := []string{"(0,0)", "(0,1)", "(0,2)", "(1,0)", "(1,1)", "(1,2)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("walk order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6, b.Volume())
}

func TestBoxIncludeExpandWithin(t *testing.T) {
	b := EmptyBox(2)
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Volume())
	assert.True(t, b.Expand(1).Empty(), "expanding an empty box keeps it empty")

	b = b.Include(NewCoord(2, 3)).Include(NewCoord(-1, 5))
	assert.Equal(t, NewCoord(-1, 3), b.Min())
	assert.Equal(t, NewCoord(2, 5), b.Max())
	assert.True(t, b.Contains(NewCoord(0, 4)))
	assert.False(t, b.Contains(NewCoord(0, 6)))

	grown := b.Expand(1)
	assert.True(t, b.Within(grown))
	assert.False(t, grown.Within(b))
	assert.Equal(t, 6*5, grown.Volume())
}

func TestBuildBoundedGrid(t *testing.T) {
	l, err := Build([]string{"L.#", "##."}, 2, testSymbols, true)
	require.NoError(t, err)

	assert.True(t, l.Bounded())
	assert.Equal(t, NewBox(NewCoord(0, 0), NewCoord(1, 2)), l.Bounds())
	assert.Equal(t, State(1), l.Get(NewCoord(0, 0)))
	assert.Equal(t, State(2), l.Get(NewCoord(1, 1)))
	assert.Equal(t, Default, l.Get(NewCoord(5, 5)), "outside the extent reads as default")
	assert.Equal(t, 3, l.Count(2))
	assert.Equal(t, 2, l.Count(Default))
	assert.Equal(t, "L.#\n##.\n", Render(l, testSymbols))
}

func TestBuildSparseGridOmitsDefault(t *testing.T) {
	l, err := Build(SplitRows(".#.\n..#\n###\n\n"), 4, Symbols{'.': 0, '#': 1}, false)
	require.NoError(t, err)

	s, ok := l.(*Sparse)
	require.True(t, ok)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 5, l.Count(1))
	assert.Equal(t, NewBox(NewCoord(0, 0, 0, 0), NewCoord(2, 2, 0, 0)), l.Bounds())
	assert.Equal(t, State(1), l.Get(NewCoord(1, 2, 0, 0)))
	assert.Equal(t, Default, l.Get(NewCoord(9, 9, 9, 9)))
}

func TestBuildRejectsUnknownSymbol(t *testing.T) {
	_, err := Build([]string{"L.L", "L?L"}, 2, testSymbols, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSymbol))

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Row)
	assert.Equal(t, 1, perr.Col)
	assert.Equal(t, '?', perr.Symbol)
}

func TestBuildRejectsRaggedBoundedGrid(t *testing.T) {
	_, err := Build([]string{"LLL", "LL"}, 2, testSymbols, true)
	assert.True(t, errors.Is(err, ErrRaggedGrid))

	_, err = Build([]string{"LLL", "LL"}, 2, testSymbols, false)
	assert.NoError(t, err, "sparse grids tolerate ragged rows")
}

func TestBuildEmptyInput(t *testing.T) {
	for _, bounded := range []bool{true, false} {
		l, err := Build(nil, 3, testSymbols, bounded)
		require.NoError(t, err)
		assert.True(t, l.Bounds().Empty())
		assert.Equal(t, 0, l.Count(2))
	}
}

func TestWithCellLeavesReceiverUntouched(t *testing.T) {
	dense, err := Build([]string{"LL", "LL"}, 2, testSymbols, true)
	require.NoError(t, err)
	sparse, err := Build([]string{"#.", ".."}, 3, Symbols{'.': 0, '#': 1}, false)
	require.NoError(t, err)

	d2 := dense.WithCell(NewCoord(0, 1), 2)
	assert.Equal(t, State(1), dense.Get(NewCoord(0, 1)))
	assert.Equal(t, State(2), d2.Get(NewCoord(0, 1)))

	far := NewCoord(-3, 4, 2)
	s2 := sparse.WithCell(far, 1)
	assert.Equal(t, Default, sparse.Get(far))
	assert.True(t, s2.Bounds().Contains(far))
	assert.False(t, sparse.Bounds().Contains(far))

	s3 := s2.WithCell(far, Default)
	assert.True(t, Equal(sparse, s3))
	assert.Equal(t, sparse.Bounds(), s3.Bounds(), "clearing the frontier cell shrinks the bounds")
}

func TestBufferFreezeIsFinal(t *testing.T) {
	b := NewBuffer(NewSparse(2))
	b.Set(NewCoord(1, 1), 1)
	l := b.Freeze()
	assert.Equal(t, 1, l.Count(1))
	assert.Panics(t, func() { b.Set(NewCoord(0, 0), 1) })
}

func TestEqualAcrossLayouts(t *testing.T) {
	rows := []string{".#", "#."}
	sym := Symbols{'.': 0, '#': 1}
	dense, err := Build(rows, 2, sym, true)
	require.NoError(t, err)
	sparse, err := Build(rows, 2, sym, false)
	require.NoError(t, err)

	assert.True(t, Equal(dense, sparse))
	if diff := cmp.Diff(Snapshot(dense), Snapshot(sparse)); diff != "" {
		t.Fatalf("snapshots differ (-dense +sparse):\n%s", diff)
	}
	assert.Equal(t, []Coord{NewCoord(0, 1), NewCoord(1, 0)}, Coords(sparse))
	assert.False(t, Equal(dense, sparse.WithCell(NewCoord(0, 0), 1)))
}
