package multigrid

import (
	"context"
	"fmt"

	"github.com/katalvlaran/multimesh/coarsen"
	"github.com/katalvlaran/multimesh/interp"
	"github.com/katalvlaran/multimesh/mesh"
)

// PopulationCache is the per-run store of solved per-level populations.
// It is allocated once at setup to MaxCoarsenLevel+1 slots. Drive
// snapshots the populations into the solved level's slot after every
// solve step and restores the coarser slot right before interpolating
// from it, so interpolation always sources the populations as last
// solved on that level. One cache belongs to one run; nothing is reused
// across independent runs.
type PopulationCache struct {
	byLevel [][]float64
}

// NewPopulationCache allocates an empty cache for the given level count.
func NewPopulationCache(levels int) *PopulationCache {
	return &PopulationCache{byLevel: make([][]float64, levels)}
}

// Levels reports the number of cache slots.
func (c *PopulationCache) Levels() int { return len(c.byLevel) }

// Store copies values into the slot of level.
func (c *PopulationCache) Store(level int, values []float64) error {
	if level < 0 || level >= len(c.byLevel) {
		return mesh.ErrLevelOutOfRange
	}
	c.byLevel[level] = append([]float64(nil), values...)
	return nil
}

// Snapshot flattens pops into the slot of level: species back to back,
// each species' energy levels back to back, n points per energy level.
func (c *PopulationCache) Snapshot(level, n int, pops mesh.LinePopulations) error {
	if level < 0 || level >= len(c.byLevel) {
		return mesh.ErrLevelOutOfRange
	}
	size := 0
	for s := 0; s < pops.Species(); s++ {
		size += pops.Levels(s) * n
	}
	snap := make([]float64, 0, size)
	for s := 0; s < pops.Species(); s++ {
		for l := 0; l < pops.Levels(s); l++ {
			for p := 0; p < n; p++ {
				snap = append(snap, pops.Population(s, p, l))
			}
		}
	}
	c.byLevel[level] = snap
	return nil
}

// Restore writes the slot of level back into pops at the points active in
// mask, leaving finer-only points untouched. Reports whether anything was
// restored; an empty slot, or one whose shape no longer matches pops,
// restores nothing.
func (c *PopulationCache) Restore(level int, mask *mesh.LevelMask, pops mesh.LinePopulations) bool {
	snap, ok := c.At(level)
	if !ok {
		return false
	}
	n := mask.Len()
	size := 0
	for s := 0; s < pops.Species(); s++ {
		size += pops.Levels(s) * n
	}
	if len(snap) != size {
		return false
	}
	active := mask.ActivePoints()
	off := 0
	for s := 0; s < pops.Species(); s++ {
		for l := 0; l < pops.Levels(s); l++ {
			for _, p := range active {
				pops.SetPopulation(s, p, l, snap[off+p])
			}
			off += n
		}
	}
	return true
}

// At returns the stored values of level, if any.
func (c *PopulationCache) At(level int) ([]float64, bool) {
	if level < 0 || level >= len(c.byLevel) || c.byLevel[level] == nil {
		return nil, false
	}
	return c.byLevel[level], true
}

// Run is one configured multiresolution run: the built hierarchy, its
// cycle, its interpolator and its population cache.
type Run struct {
	h     *mesh.Hierarchy
	cycle Cycle
	in    *interp.Interpolator
	cache *PopulationCache
	cfg   Config
}

// Setup validates cfg, builds the full level hierarchy over geom/graph0 by
// repeated coarsening, and constructs the cycle. The strategy selector is
// validated before anything is built, so an unknown strategy never leaves
// a partially coarsened hierarchy behind. Interpolation options (symmetry,
// parallelism) pass through to the interpolator.
func Setup(geom mesh.Geometry, graph0 *mesh.NeighborGraph, ab mesh.Abundances, cfg Config, opts ...interp.Option) (*Run, error) {
	switch cfg.Strategy {
	case Naive, VCycle, WCycle:
	default:
		return nil, fmt.Errorf("%w: selector %d", ErrUnknownStrategy, int(cfg.Strategy))
	}
	if cfg.MaxCoarsenLevel < 0 || cfg.MaxIterations < 1 {
		return nil, fmt.Errorf("%w: max level %d, max iterations %d",
			ErrBadConfig, cfg.MaxCoarsenLevel, cfg.MaxIterations)
	}
	if cfg.Tolerance <= 0 || cfg.Tolerance >= 1 {
		return nil, fmt.Errorf("%w: tolerance %g", ErrBadConfig, cfg.Tolerance)
	}

	cycle, err := NewCycle(cfg.Strategy, cfg.MaxCoarsenLevel+1, cfg.FinestLevel, cfg.Cycles)
	if err != nil {
		return nil, err
	}

	h, err := mesh.NewHierarchy(geom, graph0)
	if err != nil {
		return nil, fmt.Errorf("multigrid: %w", err)
	}
	engine, err := coarsen.NewEngine(h, ab)
	if err != nil {
		return nil, err
	}
	for level := 1; level <= cfg.MaxCoarsenLevel; level++ {
		if _, err = engine.Coarsen(EffectiveTolerance(cfg.Tolerance, level)); err != nil {
			return nil, err
		}
	}

	in, err := interp.New(h, opts...)
	if err != nil {
		return nil, err
	}
	return &Run{
		h:     h,
		cycle: cycle,
		in:    in,
		cache: NewPopulationCache(cfg.MaxCoarsenLevel + 1),
		cfg:   cfg,
	}, nil
}

// Hierarchy returns the built level hierarchy.
func (r *Run) Hierarchy() *mesh.Hierarchy { return r.h }

// Populations returns the per-run population cache.
func (r *Run) Populations() *PopulationCache { return r.cache }

// Interpolator returns the run's interpolator.
func (r *Run) Interpolator() *interp.Interpolator { return r.in }

// Drive walks the cycle from the start: ActionSolve steps invoke solver
// and snapshot the solved populations into the cache; ActionInterpolate
// steps restore the coarser level's snapshot and reconstruct pops on the
// finer level from it. The first error aborts the run and is returned
// wrapped with its step.
func (r *Run) Drive(ctx context.Context, solver Solver, pops mesh.LinePopulations) error {
	r.cycle.Reset()
	for {
		step, ok := r.cycle.Next()
		if !ok {
			return nil
		}
		switch step.Action {
		case ActionSolve:
			if err := solver.Solve(ctx, step.Level, r.cfg.MaxIterations); err != nil {
				return fmt.Errorf("multigrid: solve at level %d: %w", step.Level, err)
			}
			if err := r.cache.Snapshot(step.Level, r.h.Len(), pops); err != nil {
				return fmt.Errorf("multigrid: snapshot level %d: %w", step.Level, err)
			}
		case ActionInterpolate:
			r.cache.Restore(step.Coarser, r.h.Mask(step.Coarser), pops)
			if err := r.in.InterpolateLevels(ctx, step.Coarser, step.Finer, pops); err != nil {
				return fmt.Errorf("multigrid: interpolate %d→%d: %w", step.Coarser, step.Finer, err)
			}
		}
	}
}
