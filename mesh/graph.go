package mesh

import "sort"

// NeighborGraph is a symmetric, index-addressed adjacency arena over a
// fixed set of N points. Edges are undirected: every mutation updates both
// endpoints' sets in one operation, so the symmetry invariant
// (n ∈ adj[p] ⇔ p ∈ adj[n]) holds at every observable moment. Self-loops
// are rejected, as are indices outside [0, N).
//
// NeighborGraph carries no activity information of its own; the Hierarchy
// pairs each level's graph with that level's LevelMask.
type NeighborGraph struct {
	n   int
	adj []map[int]struct{}
}

// NewNeighborGraph returns an edgeless graph over n points.
func NewNeighborGraph(n int) *NeighborGraph {
	return &NeighborGraph{n: n, adj: make([]map[int]struct{}, n)}
}

// Len reports the total number of points the graph covers.
func (g *NeighborGraph) Len() int { return g.n }

// inRange reports whether p is a valid point index.
func (g *NeighborGraph) inRange(p int) bool { return p >= 0 && p < g.n }

// Neighbors returns the neighbor indices of p in ascending order.
// The slice is a copy; callers may retain it across mutations.
// An out-of-range p yields nil.
func (g *NeighborGraph) Neighbors(p int) []int {
	if !g.inRange(p) || g.adj[p] == nil {
		return nil
	}
	ns := make([]int, 0, len(g.adj[p]))
	for q := range g.adj[p] {
		ns = append(ns, q)
	}
	sort.Ints(ns)
	return ns
}

// Degree reports the number of neighbors of p (0 for out-of-range p).
func (g *NeighborGraph) Degree(p int) int {
	if !g.inRange(p) {
		return 0
	}
	return len(g.adj[p])
}

// HasEdge reports whether p and q are linked.
func (g *NeighborGraph) HasEdge(p, q int) bool {
	if !g.inRange(p) || g.adj[p] == nil {
		return false
	}
	_, ok := g.adj[p][q]
	return ok
}

// AddEdge links p and q symmetrically. Adding an existing edge is a no-op.
// Returns ErrIndexOutOfRange or ErrSelfLoop on invalid input; the graph is
// untouched on error.
func (g *NeighborGraph) AddEdge(p, q int) error {
	if !g.inRange(p) || !g.inRange(q) {
		return ErrIndexOutOfRange
	}
	if p == q {
		return ErrSelfLoop
	}
	if g.adj[p] == nil {
		g.adj[p] = make(map[int]struct{})
	}
	if g.adj[q] == nil {
		g.adj[q] = make(map[int]struct{})
	}
	g.adj[p][q] = struct{}{}
	g.adj[q][p] = struct{}{}
	return nil
}

// RemoveEdge unlinks p and q symmetrically. Removing an absent edge is a
// no-op. Returns ErrIndexOutOfRange on invalid input.
func (g *NeighborGraph) RemoveEdge(p, q int) error {
	if !g.inRange(p) || !g.inRange(q) {
		return ErrIndexOutOfRange
	}
	if g.adj[p] != nil {
		delete(g.adj[p], q)
	}
	if g.adj[q] != nil {
		delete(g.adj[q], p)
	}
	return nil
}

// ClearPoint removes every edge incident to p, maintaining symmetry on the
// former neighbors. Returns ErrIndexOutOfRange on invalid input.
func (g *NeighborGraph) ClearPoint(p int) error {
	if !g.inRange(p) {
		return ErrIndexOutOfRange
	}
	for q := range g.adj[p] {
		delete(g.adj[q], p)
	}
	g.adj[p] = nil
	return nil
}

// Clone returns an independent deep copy of the graph.
func (g *NeighborGraph) Clone() *NeighborGraph {
	c := NewNeighborGraph(g.n)
	for p, set := range g.adj {
		if set == nil {
			continue
		}
		cp := make(map[int]struct{}, len(set))
		for q := range set {
			cp[q] = struct{}{}
		}
		c.adj[p] = cp
	}
	return c
}
