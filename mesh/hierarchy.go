package mesh

// Hierarchy versions the level structures of one multiresolution run in
// copy-on-write fashion: level 0 is the full-resolution mesh, and every
// PushLevel clones the current top mask and graph for the next round of
// coarsening to mutate. Levels below the top are finalized and must never
// be mutated again; all mask mutations go through Deactivate, which
// enforces this, so activity is monotone going coarser.
//
// Hierarchy also records the DeletedPointMap: for every point removed by
// coarsening, the seed point that absorbed it. Interpolation falls back on
// it when a diff point has no coarse-grid neighbors at all.
type Hierarchy struct {
	geom   Geometry
	masks  []*LevelMask
	graphs []*NeighborGraph
	owner  map[int]int
}

// NewHierarchy builds a single-level hierarchy over geom: an all-active
// level-0 mask paired with graph0, the full-resolution neighbor graph.
// Returns ErrIndexOutOfRange if graph0 does not cover geom's points.
func NewHierarchy(geom Geometry, graph0 *NeighborGraph) (*Hierarchy, error) {
	if graph0 == nil || graph0.Len() != geom.Len() {
		return nil, ErrIndexOutOfRange
	}
	return &Hierarchy{
		geom:   geom,
		masks:  []*LevelMask{NewLevelMask(geom.Len())},
		graphs: []*NeighborGraph{graph0},
		owner:  make(map[int]int),
	}, nil
}

// Geometry returns the geometry collaborator the hierarchy was built over.
func (h *Hierarchy) Geometry() Geometry { return h.geom }

// Len reports the total number of points.
func (h *Hierarchy) Len() int { return h.geom.Len() }

// MaxLevel reports the coarsest built level index.
func (h *Hierarchy) MaxLevel() int { return len(h.masks) - 1 }

// CheckLevel returns ErrLevelOutOfRange unless 0 ≤ level ≤ MaxLevel.
func (h *Hierarchy) CheckLevel(level int) error {
	if level < 0 || level >= len(h.masks) {
		return ErrLevelOutOfRange
	}
	return nil
}

// Mask returns the activity mask of level, or nil if level is out of range.
// Masks of finalized levels are read-only by contract.
func (h *Hierarchy) Mask(level int) *LevelMask {
	if h.CheckLevel(level) != nil {
		return nil
	}
	return h.masks[level]
}

// Graph returns the neighbor graph of level, or nil if level is out of
// range. Graphs of finalized levels are read-only by contract; only the
// top level's graph may be mutated, and only by the coarsening engine.
func (h *Hierarchy) Graph(level int) *NeighborGraph {
	if h.CheckLevel(level) != nil {
		return nil
	}
	return h.graphs[level]
}

// PushLevel finalizes the current top level and appends a deep copy of its
// mask and graph as the new, mutable top. Returns the new level index.
func (h *Hierarchy) PushLevel() int {
	top := len(h.masks) - 1
	h.masks = append(h.masks, h.masks[top].Clone())
	h.graphs = append(h.graphs, h.graphs[top].Clone())
	return top + 1
}

// Deactivate clears point p on the hierarchy's top level. Level 0 is
// finalized at construction (every point is active at full resolution), so
// deactivation is only legal once at least one level has been pushed.
// Returns ErrLevelFinalized when level is not the mutable top,
// ErrInactivePoint when p is already inactive there, ErrLevelOutOfRange or
// ErrIndexOutOfRange on invalid indices.
func (h *Hierarchy) Deactivate(level, p int) error {
	if err := h.CheckLevel(level); err != nil {
		return err
	}
	if level == 0 || level != len(h.masks)-1 {
		return ErrLevelFinalized
	}
	if p < 0 || p >= h.geom.Len() {
		return ErrIndexOutOfRange
	}
	if !h.masks[level].Active(p) {
		return ErrInactivePoint
	}
	return h.masks[level].Deactivate(p)
}

// SetOwner records that removed point p was absorbed by seed point owner.
// Returns ErrIndexOutOfRange on invalid indices, ErrSelfLoop if p == owner.
func (h *Hierarchy) SetOwner(p, owner int) error {
	n := h.geom.Len()
	if p < 0 || p >= n || owner < 0 || owner >= n {
		return ErrIndexOutOfRange
	}
	if p == owner {
		return ErrSelfLoop
	}
	h.owner[p] = owner
	return nil
}

// Owner returns the point that absorbed removed point p, if any.
func (h *Hierarchy) Owner(p int) (int, bool) {
	o, ok := h.owner[p]
	return o, ok
}

// DiffPoints returns, in ascending order, every point active at finer but
// inactive at coarser. By convention coarser > finer; coarser == 0 has no
// coarser level and yields an empty set.
func (h *Hierarchy) DiffPoints(coarser, finer int) ([]int, error) {
	if err := h.CheckLevel(coarser); err != nil {
		return nil, err
	}
	if err := h.CheckLevel(finer); err != nil {
		return nil, err
	}
	if coarser == 0 {
		return nil, nil
	}
	fm, cm := h.masks[finer], h.masks[coarser]
	var diff []int
	for p := 0; p < h.geom.Len(); p++ {
		if fm.Active(p) && !cm.Active(p) {
			diff = append(diff, p)
		}
	}
	return diff, nil
}
