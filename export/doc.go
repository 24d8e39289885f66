// Package export renders triangulation/wrap snapshots to SVG and statistics
// to JSON. It is a pure consumer of triangulation/wrap/geom2 public state —
// the core packages never import export, preserving the collaborator
// boundary spec §1 draws around the carving engine.
//
// Grounded on original_source/include/alpha_wrap_2/export_utils.h's
// StyleConfig/FaceFillStyle design, reproduced here as a small table of named
// presets (default, clean, outside_filled) rather than the original's
// builder-style fluent API.
package export
