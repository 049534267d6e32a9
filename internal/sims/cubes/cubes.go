package cubes

import (
	"strconv"

	"lattice-ca/internal/core"
	"lattice-ca/internal/engine"
	"lattice-ca/internal/lattice"
	"lattice-ca/internal/neighbor"
	"lattice-ca/internal/rule"
)

// Symbols maps seed grid characters to cube states.
var Symbols = lattice.Symbols{
	'#': rule.Active,
	'.': rule.Inactive,
}

// Config holds parameters for the cube automaton.
type Config struct {
	Dim         int
	Generations int
	Rule        rule.Life
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Dim: 3, Generations: 6, Rule: rule.Conway()}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["dim"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 && parsed <= lattice.MaxDim {
			c.Dim = parsed
		}
	}
	if v, ok := cfg["generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := rule.ParseLife(v); err == nil {
			c.Rule = parsed
		}
	}
	return c
}

// Cubes is Conway's rule on an unbounded N-dimensional lattice seeded from a
// single 2-D slice.
type Cubes struct {
	cfg Config
}

// New returns a cube automaton using cfg.
func New(cfg Config) *Cubes { return &Cubes{cfg: cfg} }

// Name returns the automaton identifier.
func (c *Cubes) Name() string { return "cubes" }

// Symbols returns the seed grid alphabet.
func (c *Cubes) Symbols() lattice.Symbols { return Symbols }

// Parse seeds the z=0 (and w=0, ...) slice from text.
func (c *Cubes) Parse(text string) (lattice.Lattice, error) {
	return lattice.Build(lattice.SplitRows(text), c.cfg.Dim, Symbols, false)
}

// Bundle sweeps one cell past the active bounds on every axis.
func (c *Cubes) Bundle() engine.Bundle {
	return engine.Bundle{
		Name:   c.Name(),
		Policy: neighbor.Adjacent{},
		Rule:   c.cfg.Rule,
		Halo:   1,
	}
}

// Stop runs the configured number of cycles regardless of convergence.
func (c *Cubes) Stop() engine.StopPolicy { return engine.Fixed(c.cfg.Generations) }

// Random seeds active cubes with probability density.
func (c *Cubes) Random(rows, cols int, density float64, seed int64) string {
	return core.RandomGrid(rows, cols, density, seed, '#', '.')
}

// Parameters describes the effective configuration.
func (c *Cubes) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:    "Cubes",
		Summary: "sparse N-D lattice; '#' active, '.' inactive",
		Params: []core.Parameter{
			core.IntParam("dim", "Dimensions", c.cfg.Dim, "lattice arity, 2 to 8"),
			core.IntParam("generations", "Cycles", c.cfg.Generations, "fixed number of generations"),
			core.StringParam("rule", "Rule", c.cfg.Rule.String(), "birth/survival counts"),
		},
	}}}
}

func init() {
	core.Register("cubes", func(cfg map[string]string) core.Automaton {
		return New(FromMap(cfg))
	})
}
