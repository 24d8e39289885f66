// Package wrap implements the alpha-wrap carving engine: given a point
// oracle, it grows an initial frame triangulation inward, carving faces to
// OUTSIDE and inserting Steiner points on the offset surface until every
// remaining INSIDE/OUTSIDE boundary edge (every "gate") is judged
// untraversable by the configured policy.
//
// Carver threads its mutable state explicitly through one run, the same way
// the teacher's dijkstra.runner threads dist/prev/visited/pq through one
// shortest-path computation — no package-level state, so multiple Carvers
// can run concurrently over independent oracles.
package wrap
