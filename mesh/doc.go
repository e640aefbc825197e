// Package mesh defines the core data model for an adaptive multiresolution
// point-mesh hierarchy: 3D vectors, per-level activity masks, the symmetric
// neighbor graph, and the Hierarchy that versions them per coarsening level.
//
// What:
//
//   - Vec3 is a minimal 3D position type with the arithmetic the hierarchy needs.
//   - Geometry, Abundances and LinePopulations are the external collaborator
//     interfaces: positions and boundary membership, per-point similarity
//     values, and the level-population store read and written by interpolation.
//   - LevelMask is a boolean activity vector over all points at one level.
//   - NeighborGraph is an index-addressed adjacency arena; every mutation
//     touches both endpoints atomically, so symmetry can never drift.
//   - Hierarchy owns the per-level masks and graphs as copy-on-write
//     snapshots: once the next level's coarsening begins, a level is
//     finalized and never mutated again. It also records the owner of every
//     removed point (the DeletedPointMap fallback for interpolation).
//
// Why:
//
//   - Coarsening, spatial indexing and interpolation all consume the same
//     level/graph structures; keeping them in one leaf package avoids cycles.
//   - Index-addressed storage (vector-of-sets keyed by point index) removes
//     any need to reason about cyclic point references.
//
// Errors:
//
//   - ErrIndexOutOfRange: point or neighbor index ≥ point count, or negative.
//   - ErrSelfLoop: attempt to link a point to itself.
//   - ErrInactivePoint: mutation names a point inactive at the target level.
//   - ErrLevelOutOfRange: level index outside the built hierarchy.
//   - ErrLevelFinalized: mutation attempted on a finalized (non-top) level.
package mesh
