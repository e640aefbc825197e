// Package spatial provides nearest-neighbor access to the active points of
// one hierarchy level.
//
// What:
//
//   - Index is an on-demand k-d tree (gonum spatial/kdtree) over the
//     positions of the points active at a level. Built once, then shared
//     read-only across any number of concurrent queries.
//   - Symmetry selects how many nearest neighbors interpolation uses: a
//     reduced count for spherically symmetric (effectively 1D radial)
//     configurations, a larger one for full 3D clouds.
//   - ExpandNeighbors is the legacy graph-walk alternative: it grows rings
//     over the finer level's neighbor graph until enough coarse-active
//     points are found, pruning overshoot by distance, and falls back on
//     the hierarchy's DeletedPointMap owner when the walk finds nothing.
//
// ExpandNeighbors is deprecated in favor of Index and is kept only for
// callers that require neighbor selection to follow exact graph topology.
//
// Errors:
//
//   - ErrNoNeighbors: the graph walk found no coarse-active point and the
//     hierarchy records no owner for the query point.
package spatial
