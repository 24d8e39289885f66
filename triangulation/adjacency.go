package triangulation

import (
	"math"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/geom2"
)

// EdgeAdjacencyInfo is the derived record spec §4.3 attaches to a gate: the
// edge's two endpoints, the circumcenters of its inside and outside faces,
// and whether the outside face is infinite.
type EdgeAdjacencyInfo struct {
	P1, P2          geom2.Point
	CCInside        geom2.Point
	CCOutside       geom2.Point
	OutsideInfinite bool
}

// AdjacencyInfo builds the EdgeAdjacencyInfo for the gate (f, i), where f is
// required to be the INSIDE face (the convention every Gate is constructed
// under). A gate can never have an infinite inside face; ErrInfiniteInsideFace
// signals the caller hit that invariant violation.
func (t *Triangulation) AdjacencyInfo(f, i int) (EdgeAdjacencyInfo, error) {
	if t.IsInfinite(f) {
		return EdgeAdjacencyInfo{}, ErrInfiniteInsideFace
	}

	p1, p2 := t.EdgeVertices(f, i)
	ccIn, _ := t.Circumcenter(f)

	nf, ni := t.MirrorEdge(f, i)
	outsideInfinite := t.IsInfinite(nf)

	var ccOut geom2.Point
	if outsideInfinite {
		ccOut = t.farSideCircumcenter(f, i, nf, ni)
	} else {
		ccOut, _ = t.Circumcenter(nf)
	}

	return EdgeAdjacencyInfo{
		P1:              p1,
		P2:              p2,
		CCInside:        ccIn,
		CCOutside:       ccOut,
		OutsideInfinite: outsideInfinite,
	}, nil
}

// farSideCircumcenterScale sets how far past the shared edge the synthetic
// point is placed, as a multiple of the edge length. Large enough that it
// always lands strictly on the outer side regardless of input scale.
const farSideCircumcenterScale = 1e6

// farSideCircumcenter builds the synthetic circumcenter spec §4.6 uses in
// place of an infinite face's (non-existent) real circumcenter: a point far
// along the perpendicular bisector of the shared edge, on the side opposite
// the inside face's non-edge vertex, then the circumcenter of (p1, p2, far).
//
// Grounded on alpha_wrap_2.cpp's infinite_face_cc.
func (t *Triangulation) farSideCircumcenter(insideFace, i, _, _ int) geom2.Point {
	p1, p2 := t.EdgeVertices(insideFace, i)
	nonEdge := t.OppositeVertex(insideFace, i)

	edge := geom2.Sub(p2, p1)
	length := geom2.Norm(edge)
	if length < 1e-12 {
		length = 1
	}

	perp := geom2.Point{X: -edge.Y, Y: edge.X}
	// cross(edge, perp) > 0 always; cross(edge, nonEdge-p1) tells which side
	// nonEdge is on. Go the opposite way.
	sideVertex := edge.X*(nonEdge.Y-p1.Y) - edge.Y*(nonEdge.X-p1.X)
	sign := 1.0
	if sideVertex > 0 {
		sign = -1
	}

	mid := geom2.Midpoint(p1, p2)
	dist := farSideCircumcenterScale * length
	far := geom2.Add(mid, geom2.Scale(perp, sign*dist/math.Max(geom2.Norm(perp), 1e-12)))

	cc, ok := geom2.Circumcenter(p1, p2, far)
	if !ok {
		return mid
	}
	return cc
}
