package mesh

// LevelMask is the per-level boolean activity vector over all points.
// Level 0 starts all-true; coarsening only ever clears bits on the
// hierarchy's top (unfinalized) level, so activity is monotone in level.
type LevelMask struct {
	active []bool
	count  int
}

// NewLevelMask returns an all-active mask over n points.
func NewLevelMask(n int) *LevelMask {
	m := &LevelMask{active: make([]bool, n), count: n}
	for i := range m.active {
		m.active[i] = true
	}
	return m
}

// Len reports the total number of points the mask covers.
func (m *LevelMask) Len() int { return len(m.active) }

// Active reports whether point p is active. Out-of-range p is inactive.
func (m *LevelMask) Active(p int) bool {
	return p >= 0 && p < len(m.active) && m.active[p]
}

// ActiveCount reports the number of active points.
func (m *LevelMask) ActiveCount() int { return m.count }

// ActivePoints returns the indices of all active points in ascending order.
func (m *LevelMask) ActivePoints() []int {
	pts := make([]int, 0, m.count)
	for p, a := range m.active {
		if a {
			pts = append(pts, p)
		}
	}
	return pts
}

// Deactivate clears point p. Returns ErrIndexOutOfRange for invalid p.
// Deactivating an already-inactive point is a no-op.
func (m *LevelMask) Deactivate(p int) error {
	if p < 0 || p >= len(m.active) {
		return ErrIndexOutOfRange
	}
	if m.active[p] {
		m.active[p] = false
		m.count--
	}
	return nil
}

// Clone returns an independent deep copy of the mask.
func (m *LevelMask) Clone() *LevelMask {
	c := &LevelMask{active: make([]bool, len(m.active)), count: m.count}
	copy(c.active, m.active)
	return c
}
