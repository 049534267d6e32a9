package engine

import (
	"errors"
	"fmt"

	"lattice-ca/internal/neighbor"
	"lattice-ca/internal/rule"
)

var (
	// ErrIncompleteBundle is returned when a bundle lacks a policy or rule.
	ErrIncompleteBundle = errors.New("incomplete bundle")
	// ErrUnboundedRun is returned for a stop policy that can never stop.
	ErrUnboundedRun = errors.New("stop policy never terminates")
)

// Bundle is the capability set chosen once per run: how neighbours are
// tallied, how cells transition, and how far past the live bounds an
// unbounded lattice is swept.
type Bundle struct {
	Name   string
	Policy neighbor.Policy
	Rule   rule.Rule
	// Halo is the margin swept beyond the bounds of an unbounded lattice.
	// Bounded lattices always sweep their fixed extent and ignore it.
	Halo int
}

// Validate checks that the bundle can drive a simulation.
func (b Bundle) Validate() error {
	if b.Policy == nil {
		return fmt.Errorf("%w: %q has no neighbor policy", ErrIncompleteBundle, b.Name)
	}
	if b.Rule == nil {
		return fmt.Errorf("%w: %q has no rule", ErrIncompleteBundle, b.Name)
	}
	if b.Halo < 0 {
		return fmt.Errorf("%w: %q has negative halo %d", ErrIncompleteBundle, b.Name, b.Halo)
	}
	return nil
}

// StopPolicy decides when a run ends. MaxGenerations of zero means no cap.
type StopPolicy struct {
	MaxGenerations int
	UntilStable    bool
}

// Fixed runs exactly n generations whether or not the lattice converges.
func Fixed(n int) StopPolicy { return StopPolicy{MaxGenerations: n} }

// UntilStable runs until a generation changes nothing.
func UntilStable() StopPolicy { return StopPolicy{UntilStable: true} }

// UntilStableWithin runs until convergence or n generations, whichever is
// first.
func UntilStableWithin(n int) StopPolicy { return StopPolicy{MaxGenerations: n, UntilStable: true} }

// Validate rejects policies that would never stop.
func (p StopPolicy) Validate() error {
	if p.MaxGenerations < 0 {
		return fmt.Errorf("%w: negative generation cap %d", ErrUnboundedRun, p.MaxGenerations)
	}
	if !p.UntilStable && p.MaxGenerations == 0 {
		return ErrUnboundedRun
	}
	return nil
}

func (p StopPolicy) String() string {
	switch {
	case p.UntilStable && p.MaxGenerations > 0:
		return fmt.Sprintf("until stable (max %d)", p.MaxGenerations)
	case p.UntilStable:
		return "until stable"
	default:
		return fmt.Sprintf("fixed %d", p.MaxGenerations)
	}
}

func (p StopPolicy) done(gen int, converged bool) bool {
	if p.MaxGenerations > 0 && gen >= p.MaxGenerations {
		return true
	}
	return p.UntilStable && gen > 0 && converged
}
