package lattice

import (
	"fmt"
	"sort"
	"strings"
)

// Symbols maps seed-grid characters to cell states.
type Symbols map[rune]State

// Symbol returns the character used to render s. When several characters map
// to s the smallest one wins; '?' is returned for states without a symbol.
func (sym Symbols) Symbol(s State) rune {
	var keys []rune
	for r, v := range sym {
		if v == s {
			keys = append(keys, r)
		}
	}
	if len(keys) == 0 {
		return '?'
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys[0]
}

// SplitRows splits a text block into grid rows, dropping carriage returns
// and trailing blank lines.
func SplitRows(text string) []string {
	rows := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// Build parses a block of symbol rows into a lattice of arity dim. Row r and
// column c land on coordinate (r, c, 0, ..., 0). A bounded lattice spans
// exactly the rectangle of the input; otherwise only non-default cells are
// stored.
func Build(rows []string, dim int, sym Symbols, bounded bool) (Lattice, error) {
	if dim < 2 || dim > MaxDim {
		return nil, fmt.Errorf("%w: seed grids need 2 to %d axes, got %d", ErrDimensionMismatch, MaxDim, dim)
	}
	width := 0
	for i, row := range rows {
		n := len([]rune(row))
		if i == 0 {
			width = n
			continue
		}
		if bounded && n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, i+1, n, width)
		}
	}

	buf := &Buffer{sparse: NewSparse(dim)}
	if bounded {
		extent := EmptyBox(dim)
		if len(rows) > 0 && width > 0 {
			far := Origin(dim).With(0, len(rows)-1).With(1, width-1)
			extent = NewBox(Origin(dim), far)
		}
		buf = &Buffer{dense: NewDense(extent)}
	}

	for r, row := range rows {
		for c, ch := range []rune(row) {
			st, ok := sym[ch]
			if !ok {
				return nil, &ParseError{Row: r, Col: c, Symbol: ch}
			}
			buf.Set(Origin(dim).With(0, r).With(1, c), st)
		}
	}
	return buf.Freeze(), nil
}

// Render draws the plane spanned by the first two axes of l, with every other
// axis held at zero, using sym for the characters.
func Render(l Lattice, sym Symbols) string {
	b := l.Bounds()
	if b.Empty() {
		return ""
	}
	var out strings.Builder
	base := Origin(l.Dim())
	for r := b.min.v[0]; r <= b.max.v[0]; r++ {
		for c := b.min.v[1]; c <= b.max.v[1]; c++ {
			out.WriteRune(sym.Symbol(l.Get(base.With(0, r).With(1, c))))
		}
		out.WriteByte('\n')
	}
	return out.String()
}
