package rule

import "lattice-ca/internal/lattice"

const (
	Off lattice.State = iota
	On
	Dying
)

// Brain is Brian's Brain: firing cells always start dying, dying cells
// switch off, and an off cell fires when exactly two neighbours are firing.
type Brain struct{}

func (Brain) Name() string         { return "briansbrain" }
func (Brain) Alive() lattice.State { return On }
func (Brain) Saturation() int      { return 2 }

func (Brain) Apply(cur lattice.State, tally int) (lattice.State, bool) {
	switch cur {
	case On:
		return Dying, true
	case Dying:
		return Off, true
	case Off:
		if tally == 2 {
			return On, true
		}
	}
	return cur, false
}
