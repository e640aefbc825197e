// Package interp reconstructs per-point scalar fields on a finer hierarchy
// level from a coarser level's converged values, using radial-basis-function
// interpolation over nearest-neighbor sets.
//
// What:
//
//	For every diff point (active at the finer level, inactive at the
//	coarser one) the interpolator queries the coarse level's spatial index
//	for its k nearest active points, builds the pairwise kernel matrix and
//	the query kernel vector — distances rescaled by the mean query
//	distance, Gaussian kernel φ(r) = exp(−r²) — and factors the matrix
//	once by column-pivoted (rank-revealing) QR. The factorization is
//	reused for every field solved at that point, so multi-species,
//	multi-level population transfers amortize the O(k³) cost.
//
// Two field semantics:
//
//   - InterpolateField writes interpolated values back as-is.
//   - InterpolateLevels divides each neighbor's populations by its
//     abundance factor first, interpolates the fractions, clamps negative
//     results to zero, renormalizes the fractions of a point to sum to 1,
//     and scales back by the diff point's own abundance factor.
//
// Diff points are independent: reads touch only finalized coarse-level
// data and the shared read-only index, writes go to disjoint entries, so
// the pass runs in parallel (bounded errgroup, no locking).
//
// Errors (all fatal for the whole pass — fields must not be silently
// corrupted):
//
//   - ErrNonFinite: a NaN or Inf appeared in a solve or result.
//   - ErrZeroFractionSum: every fraction of a point was clamped to zero,
//     leaving nothing to renormalize. No automatic fallback.
//   - ErrFieldSize: a field slice does not cover all points.
package interp
