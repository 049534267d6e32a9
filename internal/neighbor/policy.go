// Package neighbor defines how a cell's neighbourhood is tallied.
package neighbor

import (
	"errors"
	"fmt"
	"sort"

	"lattice-ca/internal/lattice"
)

// ErrUnknownPolicy is returned by ByName for unrecognised policy names.
var ErrUnknownPolicy = errors.New("unknown neighbor policy")

// Policy counts the neighbours of a cell that are in the alive state.
//
// When limit is non-negative the policy may stop as soon as the tally exceeds
// limit; callers pass the largest tally their rule distinguishes, so the early
// exit never changes the outcome. A negative limit asks for the exact count.
type Policy interface {
	Name() string
	Tally(l lattice.Lattice, c lattice.Coord, alive lattice.State, limit int) int
}

var policies = map[string]Policy{
	Adjacent{}.Name(): Adjacent{},
	Visible{}.Name():  Visible{},
}

// ByName resolves a policy by its configuration name.
func ByName(name string) (Policy, error) {
	p, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, name)
	}
	return p, nil
}

// Names lists the registered policy names in sorted order.
func Names() []string {
	out := make([]string, 0, len(policies))
	for name := range policies {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// MaxTally is the largest tally either policy can report in dim dimensions.
func MaxTally(dim int) int { return len(Offsets(dim)) }
