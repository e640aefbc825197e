// Package multimesh maintains an adaptive hierarchy of coarsened
// unstructured point meshes for iterative field solvers, and transfers
// solved quantities between hierarchy levels.
//
// 🚀 What is multimesh?
//
//	An in-memory library that brings together:
//		• Mesh primitives: per-level activity masks & a symmetric neighbor graph
//		• Coarsening: similarity-driven point removal with local Voronoi repair
//		• Spatial index: k-nearest-neighbor queries over a level's active points
//		• Interpolation: RBF reconstruction of fields on diff points
//		• Multigrid control: Naive, V-cycle and W-cycle solve sequencing
//
// ✨ Why choose multimesh?
//
//   - Level hierarchies as data – immutable copy-on-write masks and graphs
//   - Explicit invariants – symmetric adjacency, monotone masks, no self-loops
//   - Fail-fast – configuration, numerical and validity errors are sentinels
//   - Pure Go – numerics via gonum, no cgo
//
// Under the hood, everything is organized by concern:
//
//	mesh/      — Vec3, LevelMask, NeighborGraph, Hierarchy & collaborator interfaces
//	voronoi/   — restricted bounded-box 3D Voronoi face neighbors
//	coarsen/   — the per-level coarsening engine
//	spatial/   — kd-tree nearest-neighbor index + legacy graph-walk expansion
//	interp/    — cross-level RBF interpolator (direct & fractional semantics)
//	multigrid/ — cycle strategies, setup entry point, per-run population cache
//
// Quick ASCII example:
//
//	level 0:  •─•─•─•─•        level 1:  •───•───•
//	          full mesh                  every other point removed,
//	                                     graph locally re-tessellated
//
// Dive into examples/ for a lattice coarsening walkthrough and a full
// multigrid drive against a stub solver.
//
//	go get github.com/katalvlaran/multimesh
package multimesh
