// Package multigrid sequences solves and cross-level interpolations over a
// coarsened mesh hierarchy, and owns the setup entry point that builds the
// hierarchy itself.
//
// What:
//
//   - Strategy selects one of three cycle shapes — Naive, V-cycle,
//     W-cycle — behind the flat Cycle interface with a single Next()
//     operation. An unrecognized selector fails setup immediately.
//   - Setup builds the level-0 mask, coarsens levels 1..max with a
//     per-level effective tolerance 1−(1−tol)^level (deeper levels permit
//     geometrically looser similarity), constructs the cycle, and
//     allocates the per-run PopulationCache.
//   - Run.Drive walks the cycle: Solve steps call the external solver
//     (opaque, possibly long-running and internally parallel);
//     Interpolate steps hand the level pair to the interpolator. The
//     first error aborts the run — there is no partial-success mode,
//     since a corrupted hierarchy must not be solved on further.
//
// Cycle shapes (finest f, coarsest c):
//
//	Naive:  solve c, then interpolate and solve upward to f.
//	V:      solve f..c descending, then interpolate/solve back up to f;
//	        repeated Cycles times.
//	W:      the γ=2 recursive shape: each level visits the coarser
//	        hierarchy twice before handing control back up; repeated
//	        Cycles times.
//
// Errors:
//
//   - ErrUnknownStrategy: configuration error, reported before any
//     hierarchy mutation.
//   - ErrBadConfig: out-of-range level counts, tolerance or iterations.
package multigrid
