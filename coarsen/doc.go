// Package coarsen removes points from a hierarchy level under a similarity
// criterion and repairs the neighbor graph with a restricted local Voronoi
// re-tessellation.
//
// What:
//
//	Engine.Coarsen pushes a new level (copy-on-write mask and graph) and
//	visits every point of the previous level in index order. A point p
//	seeds coarsening iff it is still active, not on the boundary, has no
//	neighbor already used as a seed in this pass, and every neighbor n
//	satisfies |(a_p − a_n)/(a_p + a_n)| < tol for the per-point abundance
//	a. Around a seed, every non-boundary neighbor is deactivated (its
//	owner recorded in the DeletedPointMap), removed points are stripped
//	from the graph symmetrically, and the surviving local neighborhood —
//	p, its neighbors-of-neighbors, and their neighbors (the third ring,
//	used only to bound the tessellation) — is re-tessellated inside a
//	padded bounding box. p's cell faces become its new edges; other
//	surviving cells contribute edges only within the neighbors-of-
//	neighbors set. Wall faces (negative IDs) are skipped.
//
// Why two seed guards: the similarity check and the already-seeded-
// neighbor check together keep adjacent seeds from firing in one pass,
// bounding how far the mesh can collapse locally in a single level.
//
// Errors:
//
//   - ErrBadTolerance: tolerance outside (0, 1).
//   - ErrNilCollaborator: missing hierarchy or abundance collaborator.
//
// Coarsening is strictly single-threaded per level: eligibility of later
// points must observe edges already removed by earlier seeds in the same
// pass.
package coarsen
