package mesh_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/multimesh/mesh"
)

// TestBuildLattice_Indexing checks the x-major flattening and unit spacing.
func TestBuildLattice_Indexing(t *testing.T) {
	pc, _ := mesh.BuildLattice(3)
	if pc.Len() != 27 {
		t.Fatalf("Len() = %d, want 27", pc.Len())
	}
	// p = (x·n + y)·n + z for n = 3.
	tests := []struct {
		p    int
		want mesh.Vec3
	}{
		{0, mesh.Vec3{X: 0, Y: 0, Z: 0}},
		{1, mesh.Vec3{X: 0, Y: 0, Z: 1}},
		{3, mesh.Vec3{X: 0, Y: 1, Z: 0}},
		{9, mesh.Vec3{X: 1, Y: 0, Z: 0}},
		{13, mesh.Vec3{X: 1, Y: 1, Z: 1}},
		{26, mesh.Vec3{X: 2, Y: 2, Z: 2}},
	}
	for _, tc := range tests {
		if got := pc.Position(tc.p); got != tc.want {
			t.Errorf("Position(%d) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

// TestBuildLattice_BoundaryAndDegree checks face classification and the
// 6-neighbor connectivity.
func TestBuildLattice_BoundaryAndDegree(t *testing.T) {
	pc, g := mesh.BuildLattice(3)

	if pc.OnBoundary(13) {
		t.Error("centre point marked boundary")
	}
	boundary := 0
	for p := 0; p < pc.Len(); p++ {
		if pc.OnBoundary(p) {
			boundary++
		}
	}
	if boundary != 26 {
		t.Errorf("boundary count = %d, want 26", boundary)
	}

	if d := g.Degree(13); d != 6 {
		t.Errorf("centre degree = %d, want 6", d)
	}
	if d := g.Degree(0); d != 3 {
		t.Errorf("corner degree = %d, want 3", d)
	}
	// Total degree is twice the edge count of a 3×3×3 grid: 3·(3·3·2) = 54.
	total := 0
	for p := 0; p < pc.Len(); p++ {
		total += g.Degree(p)
	}
	if total != 108 {
		t.Errorf("total degree = %d, want 108", total)
	}
}

// TestNewPointCloud_NilBoundary accepts a missing boundary slice.
func TestNewPointCloud_NilBoundary(t *testing.T) {
	pc := mesh.NewPointCloud([]mesh.Vec3{{X: 1}, {X: 2}}, nil)
	if pc.OnBoundary(0) || pc.OnBoundary(1) {
		t.Error("nil boundary slice must mean no boundary points")
	}
}

// TestLevelMask covers counting, idempotent deactivation and cloning.
func TestLevelMask(t *testing.T) {
	m := mesh.NewLevelMask(4)
	if m.ActiveCount() != 4 {
		t.Fatalf("ActiveCount() = %d, want 4", m.ActiveCount())
	}

	if err := m.Deactivate(2); err != nil {
		t.Fatalf("Deactivate(2): %v", err)
	}
	if err := m.Deactivate(2); err != nil {
		t.Fatalf("repeated Deactivate(2): %v", err)
	}
	if m.ActiveCount() != 3 {
		t.Errorf("ActiveCount() = %d after one deactivation, want 3", m.ActiveCount())
	}
	if m.Active(2) {
		t.Error("point 2 still active")
	}
	if got, want := m.ActivePoints(), []int{0, 1, 3}; len(got) != len(want) {
		t.Errorf("ActivePoints() = %v, want %v", got, want)
	}

	if err := m.Deactivate(4); !errors.Is(err, mesh.ErrIndexOutOfRange) {
		t.Errorf("Deactivate(4) = %v, want ErrIndexOutOfRange", err)
	}
	if m.Active(-1) || m.Active(4) {
		t.Error("out-of-range points must read inactive")
	}

	c := m.Clone()
	if err := c.Deactivate(0); err != nil {
		t.Fatalf("Deactivate on clone: %v", err)
	}
	if !m.Active(0) {
		t.Error("clone deactivation leaked into the original")
	}
}
