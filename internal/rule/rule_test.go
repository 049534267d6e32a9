package rule

import (
	"errors"
	"testing"

	"lattice-ca/internal/lattice"
)

func TestLifeTransitions(t *testing.T) {
	r := Conway()
	cases := []struct {
		cur     lattice.State
		tally   int
		want    lattice.State
		changed bool
	}{
		{Active, 0, Inactive, true},
		{Active, 1, Inactive, true},
		{Active, 2, Active, false},
		{Active, 3, Active, false},
		{Active, 4, Inactive, true},
		{Inactive, 2, Inactive, false},
		{Inactive, 3, Active, true},
		{Inactive, 4, Inactive, false},
	}
	for _, tc := range cases {
		got, changed := r.Apply(tc.cur, tc.tally)
		if got != tc.want || changed != tc.changed {
			t.Fatalf("Apply(%d, %d) = (%d, %v), want (%d, %v)", tc.cur, tc.tally, got, changed, tc.want, tc.changed)
		}
	}
	if r.Saturation() != 3 {
		t.Fatalf("Conway saturation = %d, want 3", r.Saturation())
	}
}

func TestParseLife(t *testing.T) {
	r, err := ParseLife("b36/s23")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.String() != "B36/S23" {
		t.Fatalf("round trip = %q", r.String())
	}
	if r.Saturation() != 6 {
		t.Fatalf("saturation = %d, want 6", r.Saturation())
	}
	for _, bad := range []string{"", "B3", "S23/B3", "B3x/S23"} {
		if _, err := ParseLife(bad); !errors.Is(err, ErrBadRule) {
			t.Fatalf("ParseLife(%q) error = %v, want ErrBadRule", bad, err)
		}
	}
}

func TestSeatingTransitions(t *testing.T) {
	cases := []struct {
		name    string
		vacate  int
		cur     lattice.State
		tally   int
		want    lattice.State
		changed bool
	}{
		{"floor never changes", 4, Floor, 0, Floor, false},
		{"empty with no neighbours fills", 4, Empty, 0, Occupied, true},
		{"empty with a neighbour stays", 4, Empty, 1, Empty, false},
		{"occupied below threshold stays", 4, Occupied, 3, Occupied, false},
		{"occupied at threshold vacates", 4, Occupied, 4, Empty, true},
		{"visible threshold tolerates four", 5, Occupied, 4, Occupied, false},
		{"visible threshold vacates at five", 5, Occupied, 5, Empty, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := NewSeating(tc.vacate).Apply(tc.cur, tc.tally)
			if got != tc.want || changed != tc.changed {
				t.Fatalf("got (%d, %v), want (%d, %v)", got, changed, tc.want, tc.changed)
			}
		})
	}
	if s := NewSeating(0); s.Vacate != 1 || s.Saturation() != 0 {
		t.Fatalf("NewSeating(0) = %+v saturation %d", s, s.Saturation())
	}
}

func TestBrainCycle(t *testing.T) {
	b := Brain{}
	if got, _ := b.Apply(On, 8); got != Dying {
		t.Fatalf("firing cell should start dying, got %d", got)
	}
	if got, _ := b.Apply(Dying, 2); got != Off {
		t.Fatalf("dying cell should switch off, got %d", got)
	}
	if got, changed := b.Apply(Off, 2); got != On || !changed {
		t.Fatalf("off cell with two firing neighbours should fire")
	}
	if got, changed := b.Apply(Off, 3); got != Off || changed {
		t.Fatalf("off cell with three firing neighbours should stay off")
	}
}
