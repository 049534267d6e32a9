// Package engine runs a cellular automaton generation by generation.
//
// Each generation is computed from the previous lattice alone into a fresh
// buffer, which replaces the current lattice only after the whole sweep has
// finished. The previous lattice is never written, so a sweep needs no
// locking and no cell sees a neighbour's next state.
package engine

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"lattice-ca/internal/lattice"
)

// GenerationStats describes one completed generation.
type GenerationStats struct {
	Generation int
	Changed    bool
	Live       int
	Bounds     lattice.Box
}

// Observer is called after every generation.
type Observer func(GenerationStats)

// Result summarises a finished run.
type Result struct {
	Generations int
	Converged   bool
	Live        int
	Elapsed     time.Duration
}

// Simulator owns the current generation of one run.
type Simulator struct {
	bundle Bundle
	stop   StopPolicy

	cur       lattice.Lattice
	gen       int
	converged bool

	observer Observer
	log      *logrus.Entry
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithObserver installs a per-generation callback.
func WithObserver(o Observer) Option {
	return func(s *Simulator) { s.observer = o }
}

// WithLogger routes engine logging to e.
func WithLogger(e *logrus.Entry) Option {
	return func(s *Simulator) {
		if e != nil {
			s.log = e
		}
	}
}

// New prepares a run of bundle over initial.
func New(bundle Bundle, initial lattice.Lattice, stop StopPolicy, opts ...Option) (*Simulator, error) {
	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	if err := stop.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{bundle: bundle, stop: stop, cur: initial}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		s.log = logrus.NewEntry(quiet)
	}
	return s, nil
}

// Lattice returns the current generation.
func (s *Simulator) Lattice() lattice.Lattice { return s.cur }

// Generation returns the number of generations computed so far.
func (s *Simulator) Generation() int { return s.gen }

// Converged reports whether the last generation changed nothing.
func (s *Simulator) Converged() bool { return s.converged }

// Done reports whether the stop policy is satisfied.
func (s *Simulator) Done() bool { return s.stop.done(s.gen, s.converged) }

// Live counts the cells of the current generation in the rule's alive state.
func (s *Simulator) Live() int { return s.cur.Count(s.bundle.Rule.Alive()) }

// SweepBox returns the coordinates the next generation will visit.
func (s *Simulator) SweepBox() lattice.Box {
	b := s.cur.Bounds()
	if s.cur.Bounded() {
		return b
	}
	return b.Expand(s.bundle.Halo)
}

// Step computes one generation and reports whether any cell changed.
func (s *Simulator) Step() bool {
	prev := s.cur
	next := lattice.NewBuffer(prev)
	alive := s.bundle.Rule.Alive()
	limit := s.bundle.Rule.Saturation()
	changed := false

	s.SweepBox().Each(func(c lattice.Coord) {
		tally := s.bundle.Policy.Tally(prev, c, alive, limit)
		st, ch := s.bundle.Rule.Apply(prev.Get(c), tally)
		next.Set(c, st)
		changed = changed || ch
	})

	s.cur = next.Freeze()
	s.gen++
	s.converged = !changed

	if s.observer != nil || s.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		stats := GenerationStats{Generation: s.gen, Changed: changed, Live: s.Live(), Bounds: s.cur.Bounds()}
		s.log.WithFields(logrus.Fields{
			"generation": stats.Generation,
			"changed":    stats.Changed,
			"live":       stats.Live,
			"bounds":     stats.Bounds.String(),
		}).Debug("generation complete")
		if s.observer != nil {
			s.observer(stats)
		}
	}
	return changed
}

// Run steps until the stop policy is satisfied. ctx is only consulted
// between generations; a sweep always runs to completion.
func (s *Simulator) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	s.log.WithFields(logrus.Fields{
		"policy": s.bundle.Policy.Name(),
		"rule":   s.bundle.Rule.Name(),
		"stop":   s.stop.String(),
	}).Debug("simulation started")

	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return s.result(start), err
		}
		s.Step()
	}

	res := s.result(start)
	s.log.WithFields(logrus.Fields{
		"generations": res.Generations,
		"converged":   res.Converged,
		"live":        res.Live,
		"elapsed":     res.Elapsed,
	}).Info("simulation finished")
	return res, nil
}

func (s *Simulator) result(start time.Time) Result {
	return Result{
		Generations: s.gen,
		Converged:   s.converged,
		Live:        s.Live(),
		Elapsed:     time.Since(start),
	}
}

// Simulate builds a Simulator and runs it to completion.
func Simulate(ctx context.Context, bundle Bundle, initial lattice.Lattice, stop StopPolicy, opts ...Option) (Result, error) {
	s, err := New(bundle, initial, stop, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run(ctx)
}
