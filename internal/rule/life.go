package rule

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"lattice-ca/internal/lattice"
)

const (
	Inactive lattice.State = iota
	Active
)

// ErrBadRule is returned by ParseLife for malformed rule strings.
var ErrBadRule = errors.New("malformed life rule")

// Life is an outer-totalistic birth/survival rule over two states.
type Life struct {
	Birth   []int
	Survive []int
}

// Conway returns B3/S23.
func Conway() Life {
	return Life{Birth: []int{3}, Survive: []int{2, 3}}
}

// ParseLife parses rule strings in B/S notation such as "B3/S23". Each digit
// is one neighbour count.
func ParseLife(s string) (Life, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "B") || !strings.HasPrefix(parts[1], "S") {
		return Life{}, fmt.Errorf("%w %q", ErrBadRule, s)
	}
	birth, err := digits(parts[0][1:])
	if err != nil {
		return Life{}, fmt.Errorf("%w %q: %v", ErrBadRule, s, err)
	}
	survive, err := digits(parts[1][1:])
	if err != nil {
		return Life{}, fmt.Errorf("%w %q: %v", ErrBadRule, s, err)
	}
	return Life{Birth: birth, Survive: survive}, nil
}

func digits(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, r := range s {
		n, err := strconv.Atoi(string(r))
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (r Life) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, n := range r.Birth {
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteString("/S")
	for _, n := range r.Survive {
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

func (r Life) Name() string         { return "life " + r.String() }
func (r Life) Alive() lattice.State { return Active }

func (r Life) Saturation() int {
	sat := 0
	for _, n := range r.Birth {
		sat = max(sat, n)
	}
	for _, n := range r.Survive {
		sat = max(sat, n)
	}
	return sat
}

func (r Life) Apply(cur lattice.State, tally int) (lattice.State, bool) {
	if cur == Active {
		if slices.Contains(r.Survive, tally) {
			return Active, false
		}
		return Inactive, true
	}
	if slices.Contains(r.Birth, tally) {
		return Active, true
	}
	return cur, false
}
