// Package geom2 defines the 2D geometric primitives shared by the oracle,
// triangulation, and wrap packages: points, segments, axis-aligned boxes,
// orientation, circumcenters, and the small set of distance helpers the
// carving algorithm needs.
//
// Everything here is a plain value type plus free functions. There is no
// exact-arithmetic kernel: all predicates use fixed-precision float64, per
// the non-goal of exact rational geometry.
package geom2
