package seating

import (
	"strconv"

	"lattice-ca/internal/core"
	"lattice-ca/internal/engine"
	"lattice-ca/internal/lattice"
	"lattice-ca/internal/neighbor"
	"lattice-ca/internal/rule"
)

// Symbols maps the seating layout characters to cell states.
var Symbols = lattice.Symbols{
	'.': rule.Floor,
	'L': rule.Empty,
	'#': rule.Occupied,
}

// Config holds parameters for the seating automaton.
type Config struct {
	Policy string
	Vacate int
	// MaxGenerations caps the run; zero runs until the layout settles.
	MaxGenerations int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Policy: neighbor.Adjacent{}.Name(), Vacate: 4}
}

// VisibleConfig returns the line-of-sight variant with its higher vacate
// threshold.
func VisibleConfig() Config {
	return Config{Policy: neighbor.Visible{}.Name(), Vacate: 5}
}

// FromMap populates a Config from a string map. Unrecognised or invalid
// values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["policy"]; ok && v == (neighbor.Visible{}).Name() {
		c = VisibleConfig()
	}
	if v, ok := cfg["vacate"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Vacate = parsed
		}
	}
	if v, ok := cfg["max_generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxGenerations = parsed
		}
	}
	return c
}

// Seating simulates passengers settling into a fixed seating layout.
type Seating struct {
	cfg Config
}

// New returns a seating automaton using cfg.
func New(cfg Config) *Seating { return &Seating{cfg: cfg} }

// Name returns the automaton identifier.
func (s *Seating) Name() string { return "seating" }

// Symbols returns the seed grid alphabet.
func (s *Seating) Symbols() lattice.Symbols { return Symbols }

// Parse reads a rectangular seating layout.
func (s *Seating) Parse(text string) (lattice.Lattice, error) {
	return lattice.Build(lattice.SplitRows(text), 2, Symbols, true)
}

// Bundle pairs the configured sight policy with the seating rule.
func (s *Seating) Bundle() engine.Bundle {
	policy, err := neighbor.ByName(s.cfg.Policy)
	if err != nil {
		policy = neighbor.Adjacent{}
	}
	return engine.Bundle{
		Name:   s.Name(),
		Policy: policy,
		Rule:   rule.NewSeating(s.cfg.Vacate),
	}
}

// Stop runs until the layout settles.
func (s *Seating) Stop() engine.StopPolicy {
	if s.cfg.MaxGenerations > 0 {
		return engine.UntilStableWithin(s.cfg.MaxGenerations)
	}
	return engine.UntilStable()
}

// Random lays out empty seats with probability density among floor tiles.
func (s *Seating) Random(rows, cols int, density float64, seed int64) string {
	return core.RandomGrid(rows, cols, density, seed, 'L', '.')
}

// Parameters describes the effective configuration.
func (s *Seating) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:    "Seating",
		Summary: "2-D seat layout; '.' floor, 'L' empty, '#' occupied",
		Params: []core.Parameter{
			core.StringParam("policy", "Neighbor policy", s.cfg.Policy, "adjacent or visible"),
			core.IntParam("vacate", "Vacate threshold", s.cfg.Vacate, "occupied neighbours that empty a seat"),
			core.IntParam("max_generations", "Generation cap", s.cfg.MaxGenerations, "0 runs until stable"),
		},
	}}}
}

func init() {
	core.Register("seating", func(cfg map[string]string) core.Automaton {
		return New(FromMap(cfg))
	})
}
