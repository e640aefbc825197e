package interp

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/multimesh/mesh"
)

// rankTol is the relative diagonal threshold below which pivoted-QR
// columns are treated as rank deficient.
const rankTol = 1e-12

// gaussian is the RBF kernel φ(r) = exp(−r²). The exact kernel shape
// matters little empirically; Gaussian is chosen for smoothness.
func gaussian(r float64) float64 { return math.Exp(-r * r) }

// rbfSystem is a factored RBF interpolation system for one diff point:
// the column-pivoted QR of the k×k neighbor kernel matrix plus the query
// kernel vector. Factored once, solved once per field.
type rbfSystem struct {
	k    int
	a    blas64.General // QR factors, R in the upper triangle
	tau  []float64
	jpvt []int
	rank int
	kvec []float64
}

// newRBFSystem builds and factors the system for a query at position at
// with the given neighbor positions. All pairwise and query distances are
// rescaled by the mean query distance, which keeps the kernel matrix
// conditioning independent of the local mesh scale.
func newRBFSystem(at mesh.Vec3, nbPos []mesh.Vec3) *rbfSystem {
	k := len(nbPos)
	dist := make([]float64, k)
	for i, p := range nbPos {
		dist[i] = at.Dist(p)
	}
	scale := floats.Sum(dist) / float64(k)
	if scale == 0 { // all neighbors coincide with the query point
		scale = 1
	}

	sys := &rbfSystem{
		k: k,
		a: blas64.General{
			Rows:   k,
			Cols:   k,
			Stride: k,
			Data:   make([]float64, k*k),
		},
		tau:  make([]float64, k),
		jpvt: make([]int, k),
		kvec: make([]float64, k),
	}
	for i := 0; i < k; i++ {
		sys.kvec[i] = gaussian(dist[i] / scale)
		for j := 0; j < k; j++ {
			sys.a.Data[i*k+j] = gaussian(nbPos[i].Dist(nbPos[j]) / scale)
		}
	}

	for i := range sys.jpvt {
		sys.jpvt[i] = -1 // all columns free to pivot
	}
	work := make([]float64, 1)
	lapack64.Geqp3(sys.a, sys.jpvt, sys.tau, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Geqp3(sys.a, sys.jpvt, sys.tau, work, len(work))

	// Revealed rank: diagonal of R against its leading entry.
	head := math.Abs(sys.a.Data[0])
	for i := 0; i < k; i++ {
		if math.Abs(sys.a.Data[i*k+i]) > rankTol*head {
			sys.rank = i + 1
		}
	}
	return sys
}

// interpolate solves the factored system against rhs and returns the
// interpolated value kvec·w. Returns ErrNonFinite on NaN or Inf.
func (s *rbfSystem) interpolate(rhs []float64) (float64, error) {
	c := blas64.General{
		Rows:   s.k,
		Cols:   1,
		Stride: 1,
		Data:   append([]float64(nil), rhs...),
	}
	work := make([]float64, 1)
	lapack64.Ormqr(blas.Left, blas.Trans, s.a, s.tau, c, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Ormqr(blas.Left, blas.Trans, s.a, s.tau, c, work, len(work))

	// Back-substitute the leading rank×rank block of R; deficient
	// directions get zero weight.
	y := make([]float64, s.k)
	for i := s.rank - 1; i >= 0; i-- {
		sum := c.Data[i]
		for j := i + 1; j < s.rank; j++ {
			sum -= s.a.Data[i*s.k+j] * y[j]
		}
		y[i] = sum / s.a.Data[i*s.k+i]
	}

	// Undo the column pivoting: column jpvt[j] of the kernel matrix was
	// moved to position j.
	w := make([]float64, s.k)
	for j := 0; j < s.k; j++ {
		w[s.jpvt[j]] = y[j]
	}

	v := floats.Dot(s.kvec, w)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}
	return v, nil
}
