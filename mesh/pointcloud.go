package mesh

// PointCloud is a concrete Geometry backed by slices. Point-cloud
// construction and import stay external; PointCloud exists so tests,
// examples and small drivers have a geometry to hand the hierarchy.
type PointCloud struct {
	positions []Vec3
	boundary  []bool
}

// NewPointCloud builds a PointCloud from parallel position and boundary
// slices. The boundary slice may be nil (no boundary points).
func NewPointCloud(positions []Vec3, boundary []bool) *PointCloud {
	pc := &PointCloud{
		positions: append([]Vec3(nil), positions...),
		boundary:  make([]bool, len(positions)),
	}
	copy(pc.boundary, boundary)
	return pc
}

// Len reports the number of points.
func (pc *PointCloud) Len() int { return len(pc.positions) }

// Position returns the position of point p.
func (pc *PointCloud) Position(p int) Vec3 { return pc.positions[p] }

// OnBoundary reports whether point p was marked as a boundary point.
func (pc *PointCloud) OnBoundary(p int) bool { return pc.boundary[p] }

// BuildLattice constructs an n×n×n regular lattice with unit spacing.
// Points on the outer faces of the cube are marked as boundary. Each
// interior point is linked to its six orthogonal lattice neighbors in the
// returned graph. Index order is x-major: p = (x·n + y)·n + z.
func BuildLattice(n int) (*PointCloud, *NeighborGraph) {
	total := n * n * n
	positions := make([]Vec3, 0, total)
	boundary := make([]bool, 0, total)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				positions = append(positions, Vec3{float64(x), float64(y), float64(z)})
				onFace := x == 0 || x == n-1 || y == 0 || y == n-1 || z == 0 || z == n-1
				boundary = append(boundary, onFace)
			}
		}
	}
	g := NewNeighborGraph(total)
	idx := func(x, y, z int) int { return (x*n+y)*n + z }
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				if x+1 < n {
					_ = g.AddEdge(idx(x, y, z), idx(x+1, y, z))
				}
				if y+1 < n {
					_ = g.AddEdge(idx(x, y, z), idx(x, y+1, z))
				}
				if z+1 < n {
					_ = g.AddEdge(idx(x, y, z), idx(x, y, z+1))
				}
			}
		}
	}
	return NewPointCloud(positions, boundary), g
}
