package briansbrain

import (
	"strconv"
	"strings"

	"lattice-ca/internal/core"
	"lattice-ca/internal/engine"
	"lattice-ca/internal/lattice"
	"lattice-ca/internal/neighbor"
	"lattice-ca/internal/rule"
)

// Symbols maps seed grid characters to Brian's Brain states.
var Symbols = lattice.Symbols{
	'.': rule.Off,
	'#': rule.On,
	'o': rule.Dying,
}

// Config holds parameters for Brian's Brain.
type Config struct {
	Dim         int
	Generations int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Dim: 2, Generations: 64}
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
	return c
}

// Brain implements Brian's Brain cellular automaton on an unbounded lattice.
type Brain struct {
	cfg Config
}

// New creates a Brain automaton using cfg.
func New(cfg Config) *Brain { return &Brain{cfg: cfg} }

// Name identifies the automaton.
func (b *Brain) Name() string { return "briansbrain" }

// Symbols returns the seed grid alphabet.
func (b *Brain) Symbols() lattice.Symbols { return Symbols }

// Parse seeds the lattice from text.
func (b *Brain) Parse(text string) (lattice.Lattice, error) {
	return lattice.Build(lattice.SplitRows(text), b.cfg.Dim, Symbols, false)
}

// Bundle tallies firing Moore neighbours with a one-cell halo.
func (b *Brain) Bundle() engine.Bundle {
	return engine.Bundle{
		Name:   b.Name(),
		Policy: neighbor.Adjacent{},
		Rule:   rule.Brain{},
		Halo:   1,
	}
}

// Stop runs until everything has died out or the generation cap is hit.
func (b *Brain) Stop() engine.StopPolicy { return engine.UntilStableWithin(b.cfg.Generations) }

// Random fires cells with probability density.
func (b *Brain) Random(rows, cols int, density float64, seed int64) string {
	return core.RandomGrid(rows, cols, density, seed, '#', '.')
}

// Reset returns the classic seeding: roughly one cell in eight firing.
func Reset(rows, cols int, seed int64) string {
	rng := core.NewRNG(seed).Source()
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if rng.IntN(8) == 0 {
				sb.WriteByte('#')
				continue
			}
			sb.WriteByte('.')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parameters describes the effective configuration.
func (b *Brain) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:    "Brian's Brain",
		Summary: "'#' firing, 'o' dying, '.' off",
		Params: []core.Parameter{
			core.IntParam("dim", "Dimensions", b.cfg.Dim, "lattice arity, 2 to 8"),
			core.IntParam("generations", "Generation cap", b.cfg.Generations, "stop early once nothing changes"),
		},
	}}}
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Automaton {
		return New(FromMap(cfg))
	})
}
