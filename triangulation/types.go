package triangulation

import (
	"errors"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/geom2"
)

// infiniteVertex is the sentinel vertex index standing in for the single
// conceptual point at infinity. No real vertex is ever stored at this index;
// any face holding it in one of its three vertex slots is an "infinite face".
const infiniteVertex = -1

// ErrInfiniteInsideFace is returned by AdjacencyInfo when asked to treat an
// infinite face as the INSIDE side of a gate — a LogicError per spec §7,
// since a gate's INSIDE face is required to be finite by construction.
var ErrInfiniteInsideFace = errors.New("triangulation: infinite face used as gate's inside face")

// ErrDegenerateBootstrap is returned by Insert when the first three vertices
// inserted are collinear, so no initial finite triangle can be formed.
var ErrDegenerateBootstrap = errors.New("triangulation: first three points are collinear")

// Label classifies a finite face as inside or outside the wrap surface.
type Label int

const (
	// Outside is the label every infinite face carries forever, and the
	// label every finite face is carved to.
	Outside Label = iota
	// Inside is the label a finite face starts with unless it was carved.
	Inside
)

func (l Label) String() string {
	if l == Inside {
		return "INSIDE"
	}
	return "OUTSIDE"
}

// face is one triangle of the arena: three vertex-arena indices (possibly
// infiniteVertex) and the three neighbors opposite them, plus a mutable
// label. neighbors[i] and vertices[i] always refer to the same local slot:
// the edge opposite vertices[i] is (vertices[(i+1)%3], vertices[(i+2)%3]),
// and neighbors[i] is the face across that edge.
type face struct {
	vertices  [3]int
	neighbors [3]int
	label     Label
	removed   bool
}

// indexOfInfinite returns the local slot holding infiniteVertex, or -1 if
// the face is finite.
func (f *face) indexOfInfinite() int {
	for i, v := range f.vertices {
		if v == infiniteVertex {
			return i
		}
	}
	return -1
}

func (f *face) isInfinite() bool { return f.indexOfInfinite() >= 0 }

// Edge names an undirected triangulation edge as the directed reference
// (Face, I): the edge of face Face opposite its local vertex I.
type Edge struct {
	Face int
	I    int
}

// Triangulation is an arena-indexed incremental 2D Delaunay triangulation
// with a single infinite vertex closing the hull. The zero value is an empty
// triangulation ready for Insert, the same value New returns.
type Triangulation struct {
	vertices []geom2.Point
	faces    []face
}

// New returns an empty triangulation, ready for Insert.
func New() *Triangulation {
	return &Triangulation{}
}

// NumVertices returns the number of finite vertices inserted so far.
func (t *Triangulation) NumVertices() int { return len(t.vertices) }

// VertexPoint returns the coordinates of finite vertex v.
func (t *Triangulation) VertexPoint(v int) geom2.Point { return t.vertices[v] }

// Label returns the current label of finite face f.
func (t *Triangulation) Label(f int) Label { return t.faces[f].label }

// SetLabel overwrites the label of finite face f. Carving is the only
// caller expected to use this; Insert sets labels for new faces itself.
func (t *Triangulation) SetLabel(f int, l Label) { t.faces[f].label = l }
