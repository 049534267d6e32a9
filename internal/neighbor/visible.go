package neighbor

import "lattice-ca/internal/lattice"

// Visible casts one ray along each unit direction and counts the rays whose
// first non-default cell is alive. Default cells are see-through; a ray that
// leaves the lattice bounds sees nothing.
type Visible struct{}

func (Visible) Name() string { return "visible" }

func (Visible) Tally(l lattice.Lattice, c lattice.Coord, alive lattice.State, limit int) int {
	bounds := l.Bounds()
	n := 0
	for _, d := range Offsets(c.Dim()) {
		if firstSeen(l, bounds, c, d) == alive {
			n++
			if limit >= 0 && n > limit {
				return n
			}
		}
	}
	return n
}

// firstSeen returns the first non-default state met walking from c along d,
// or Default when the ray runs off the bounds.
func firstSeen(l lattice.Lattice, bounds lattice.Box, c, d lattice.Coord) lattice.State {
	for p := c.Add(d); bounds.Contains(p); p = p.Add(d) {
		if s := l.Get(p); s != lattice.Default {
			return s
		}
	}
	return lattice.Default
}
