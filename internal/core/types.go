package core

import (
	"errors"
	"fmt"
	"sort"

	"lattice-ca/internal/engine"
	"lattice-ca/internal/lattice"
)

// ErrUnknownSim is returned by Lookup for names nothing registered.
var ErrUnknownSim = errors.New("unknown sim")

// Automaton defines the contract a registered cellular automaton must
// implement: how its seed grid is read, which bundle it evolves under and
// when a run stops.
type Automaton interface {
	Name() string
	Parse(text string) (lattice.Lattice, error)
	Bundle() engine.Bundle
	Stop() engine.StopPolicy
	Symbols() lattice.Symbols
	// Random returns a rows x cols seed grid in the automaton's symbols where
	// each cell is live with probability density.
	Random(rows, cols int, density float64, seed int64) string
	Parameters() ParameterSnapshot
}

// Factory constructs an Automaton using an optional configuration map.
type Factory func(cfg map[string]string) Automaton

var sims = map[string]Factory{}

// Register adds an automaton factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available automaton factories.
func Sims() map[string]Factory {
	return sims
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownSim, name, Names())
	}
	return f, nil
}

// Names lists registered automata in sorted order.
func Names() []string {
	out := make([]string, 0, len(sims))
	for name := range sims {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
