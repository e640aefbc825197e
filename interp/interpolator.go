package interp

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/multimesh/mesh"
	"github.com/katalvlaran/multimesh/spatial"
)

// Interpolator reconstructs fields on diff points of one hierarchy.
// Safe for concurrent use only across distinct passes; one pass
// parallelizes internally.
type Interpolator struct {
	h    *mesh.Hierarchy
	opts Options
}

// New binds an Interpolator to a hierarchy.
func New(h *mesh.Hierarchy, opts ...Option) (*Interpolator, error) {
	if h == nil {
		return nil, ErrNilCollaborator
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Interpolator{h: h, opts: o}, nil
}

// pass holds the shared read-only state of one interpolation pass.
type pass struct {
	index *spatial.Index
	k     int
	geom  mesh.Geometry
}

// preparePass validates levels, collects diff points and builds the coarse
// index. A nil pass (no error) means the call is a no-op: coarser == 0 or
// an empty diff set.
func (it *Interpolator) preparePass(coarser, finer int) (*pass, []int, error) {
	diff, err := it.h.DiffPoints(coarser, finer)
	if err != nil {
		return nil, nil, fmt.Errorf("interp: %w", err)
	}
	if len(diff) == 0 {
		return nil, nil, nil
	}
	return &pass{
		index: spatial.NewIndex(it.h.Geometry(), it.h.Mask(coarser)),
		k:     it.opts.Symmetry.NeighborCount(),
		geom:  it.h.Geometry(),
	}, diff, nil
}

// system builds the factored RBF system for diff point p, returning the
// coarse neighbor ids alongside.
func (ps *pass) system(p int) ([]int, *rbfSystem) {
	at := ps.geom.Position(p)
	nbs := ps.index.NearestTo(at, ps.k)
	pos := make([]mesh.Vec3, len(nbs))
	for i, n := range nbs {
		pos[i] = ps.geom.Position(n)
	}
	return nbs, newRBFSystem(at, pos)
}

// forEach runs fn over every diff point with bounded parallelism. Writes
// inside fn go to entries owned by its diff point only.
func (it *Interpolator) forEach(ctx context.Context, diff []int, fn func(p int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(it.opts.Parallelism)
	for _, p := range diff {
		p := p
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return fn(p)
		})
	}
	return g.Wait()
}

// InterpolateField reconstructs the direct (relative-difference) field on
// every diff point between coarser and finer, in place. field must hold
// one value per point. coarser == 0 and empty diff sets are no-ops.
func (it *Interpolator) InterpolateField(ctx context.Context, coarser, finer int, field []float64) error {
	if len(field) != it.h.Len() {
		return ErrFieldSize
	}
	ps, diff, err := it.preparePass(coarser, finer)
	if err != nil || ps == nil {
		return err
	}
	return it.forEach(ctx, diff, func(p int) error {
		nbs, sys := ps.system(p)
		rhs := make([]float64, len(nbs))
		for i, n := range nbs {
			rhs[i] = field[n]
		}
		v, err := sys.interpolate(rhs)
		if err != nil {
			return fmt.Errorf("interp: point %d: %w", p, err)
		}
		field[p] = v
		return nil
	})
}

// InterpolateLevels reconstructs fractional level populations on every
// diff point between coarser and finer, writing results back into pops.
// Raw populations are divided by each neighbor's abundance factor before
// interpolation; afterwards negative fractions are clamped to zero, the
// fractions of a point are renormalized to sum to 1, and the result is
// scaled by the diff point's own abundance factor. A clamped sum of zero
// is fatal (ErrZeroFractionSum).
func (it *Interpolator) InterpolateLevels(ctx context.Context, coarser, finer int, pops mesh.LinePopulations) error {
	if pops == nil {
		return ErrNilCollaborator
	}
	ps, diff, err := it.preparePass(coarser, finer)
	if err != nil || ps == nil {
		return err
	}
	return it.forEach(ctx, diff, func(p int) error {
		nbs, sys := ps.system(p)
		rhs := make([]float64, len(nbs))
		for s := 0; s < pops.Species(); s++ {
			nlev := pops.Levels(s)
			fracs := make([]float64, nlev)
			for l := 0; l < nlev; l++ {
				for i, n := range nbs {
					rhs[i] = pops.Population(s, n, l) / pops.AbundanceFactor(s, n)
				}
				v, err := sys.interpolate(rhs)
				if err != nil {
					return fmt.Errorf("interp: point %d species %d level %d: %w", p, s, l, err)
				}
				fracs[l] = v
			}

			var sum float64
			for l, f := range fracs {
				if f < 0 {
					fracs[l] = 0
					continue
				}
				sum += f
			}
			if sum == 0 {
				return fmt.Errorf("interp: point %d species %d: %w", p, s, ErrZeroFractionSum)
			}
			factor := pops.AbundanceFactor(s, p)
			for l, f := range fracs {
				pops.SetPopulation(s, p, l, f/sum*factor)
			}
		}
		return nil
	})
}
