// Package triangulation implements an incremental 2D Delaunay triangulation
// over an arena of vertices and faces, generalized with a single conceptual
// infinite vertex so the hull boundary is just another set of faces rather
// than a special case callers must handle themselves.
//
// Every face carries a mutable INSIDE/OUTSIDE label; the package never
// decides what that label should be beyond the one rule fixed at insertion
// time (a new face touching the infinite vertex starts OUTSIDE, any other
// new face starts INSIDE) — everything past that is the carving engine's
// business, not this package's.
package triangulation
