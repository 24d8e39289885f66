// Package oracle answers the five spatial questions the carving engine asks
// about the original input point set P, per spec component B: closest point,
// squared distance, triangle intersection, segment/offset-surface
// intersection, and a local-points box query.
//
// The index is built once, immutably, from the input slice and never
// mutated afterward — Steiner points inserted into the triangulation never
// enter the oracle, matching the offset surface Σ being defined purely in
// terms of the original P.
package oracle
