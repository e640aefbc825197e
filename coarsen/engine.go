package coarsen

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/multimesh/mesh"
	"github.com/katalvlaran/multimesh/voronoi"
)

// Sentinel errors for the coarsening engine.
var (
	// ErrBadTolerance indicates a similarity tolerance outside (0, 1).
	ErrBadTolerance = errors.New("coarsen: tolerance must be in (0, 1)")

	// ErrNilCollaborator indicates a missing hierarchy or abundance source.
	ErrNilCollaborator = errors.New("coarsen: nil hierarchy or abundances")
)

// Engine coarsens a hierarchy level by level. One Engine serves one
// hierarchy; it is not safe for concurrent use.
type Engine struct {
	h  *mesh.Hierarchy
	ab mesh.Abundances
}

// NewEngine binds an Engine to a hierarchy and its abundance collaborator.
func NewEngine(h *mesh.Hierarchy, ab mesh.Abundances) (*Engine, error) {
	if h == nil || ab == nil {
		return nil, ErrNilCollaborator
	}
	return &Engine{h: h, ab: ab}, nil
}

// similar reports whether a and b pass the relative-difference criterion
// |(a−b)/(a+b)| < tol. A vanishing denominator never passes.
func similar(a, b, tol float64) bool {
	s := math.Abs((a - b) / (a + b))
	return s < tol // NaN compares false
}

// Coarsen pushes a new level onto the hierarchy and coarsens it with the
// given similarity tolerance, returning the new level index. The previous
// level is finalized before any mutation, so a failed pass never corrupts
// finalized levels.
func (e *Engine) Coarsen(tol float64) (int, error) {
	if tol <= 0 || tol >= 1 {
		return 0, ErrBadTolerance
	}

	level := e.h.PushLevel()
	prev := e.h.Mask(level - 1)
	mask := e.h.Mask(level)
	graph := e.h.Graph(level)
	geom := e.h.Geometry()

	seeded := make([]bool, e.h.Len())
	for p := 0; p < e.h.Len(); p++ {
		if !prev.Active(p) || !mask.Active(p) || geom.OnBoundary(p) {
			continue
		}
		if !e.eligible(graph, seeded, p, tol) {
			continue
		}
		seeded[p] = true
		if err := e.coarsenAround(level, p); err != nil {
			return 0, fmt.Errorf("coarsen: seed %d at level %d: %w", p, level, err)
		}
	}
	return level, nil
}

// eligible applies the seed guards (c) and (d): no already-seeded neighbor,
// and every neighbor similar to p. Points without neighbors never seed.
func (e *Engine) eligible(graph *mesh.NeighborGraph, seeded []bool, p int, tol float64) bool {
	nbs := graph.Neighbors(p)
	if len(nbs) == 0 {
		return false
	}
	ap := e.ab.Abundance(p)
	for _, n := range nbs {
		if seeded[n] || !similar(ap, e.ab.Abundance(n), tol) {
			return false
		}
	}
	return true
}

// coarsenAround removes the non-boundary neighbors of seed p and repairs
// the local graph via restricted Voronoi tessellation.
func (e *Engine) coarsenAround(level, p int) error {
	graph := e.h.Graph(level)
	mask := e.h.Mask(level)
	geom := e.h.Geometry()

	// Deactivate non-boundary neighbors; boundary neighbors survive but
	// will have their edges to p recomputed.
	nbs := graph.Neighbors(p)
	var removed, boundary []int
	for _, n := range nbs {
		if geom.OnBoundary(n) {
			boundary = append(boundary, n)
			continue
		}
		if err := e.h.Deactivate(level, n); err != nil {
			return err
		}
		if err := e.h.SetOwner(n, p); err != nil {
			return err
		}
		removed = append(removed, n)
	}

	// Neighbors-of-neighbors still active: the points that will receive
	// recomputed edges. Collected before stripping, while the removed
	// points' adjacency is still intact.
	nn := make(map[int]struct{})
	for _, q := range nbs {
		for _, r := range graph.Neighbors(q) {
			if r != p && mask.Active(r) {
				nn[r] = struct{}{}
			}
		}
	}
	// Boundary survivors stay future neighbors of p even when no second
	// ring path reaches them.
	for _, b := range boundary {
		nn[b] = struct{}{}
	}

	// Strip removed points everywhere; unlink boundary survivors from p
	// so no stale asymmetric edge outlives the re-tessellation.
	for _, q := range removed {
		if err := graph.ClearPoint(q); err != nil {
			return err
		}
	}
	for _, b := range boundary {
		if err := graph.RemoveEdge(p, b); err != nil {
			return err
		}
	}

	// Affected set: p, the second ring, and the still-active third ring.
	// The third ring only bounds the tessellation; it receives no edges.
	affected := map[int]struct{}{p: {}}
	for r := range nn {
		affected[r] = struct{}{}
	}
	for r := range nn {
		for _, s := range graph.Neighbors(r) {
			if s != p && mask.Active(s) {
				affected[s] = struct{}{}
			}
		}
	}

	ids := make([]int, 0, len(affected))
	for id := range affected {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	positions := make([]mesh.Vec3, len(ids))
	for i, id := range ids {
		positions[i] = geom.Position(id)
	}
	cells, err := voronoi.Tessellate(positions, voronoi.PadBox(positions, -1, -1))
	if err != nil {
		return err
	}

	// p's cell faces become its new edges.
	seedAt := sort.SearchInts(ids, p)
	for _, f := range cells[seedAt] {
		if f < 0 { // container wall, not a point
			continue
		}
		if err = graph.AddEdge(p, ids[f]); err != nil {
			return err
		}
	}

	// Other surviving cells contribute edges only inside the
	// neighbors-of-neighbors set (plus the seed itself).
	inNN := func(id int) bool {
		_, ok := nn[id]
		return ok
	}
	for i, id := range ids {
		if id == p || !inNN(id) {
			continue
		}
		for _, f := range cells[i] {
			if f < 0 {
				continue
			}
			other := ids[f]
			if other == id || (other != p && !inNN(other)) {
				continue
			}
			if err = graph.AddEdge(id, other); err != nil {
				return err
			}
		}
	}
	return nil
}
