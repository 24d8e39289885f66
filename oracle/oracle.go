package oracle

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/geom2"
)

// boundsEpsilon is the half-width of the degenerate bounding box rtreego
// requires for a point object (it rejects zero-length sides).
const boundsEpsilon = 1e-9

// minChildren/maxChildren mirror the values rtreego's own examples use for
// small-to-medium point sets; they only affect index balance, never results.
const (
	minChildren = 25
	maxChildren = 50
)

// indexedPoint adapts a geom2.Point to rtreego.Spatial.
type indexedPoint struct {
	pt geom2.Point
}

// Bounds returns a degenerate box centered on the point.
func (ip *indexedPoint) Bounds() rtreego.Rect {
	rect, err := rtreego.NewRect(
		rtreego.Point{ip.pt.X - boundsEpsilon, ip.pt.Y - boundsEpsilon},
		[]float64{2 * boundsEpsilon, 2 * boundsEpsilon},
	)
	if err != nil {
		// Only possible if boundsEpsilon were non-positive, which it isn't.
		panic(err)
	}
	return rect
}

// PointOracle answers spatial queries against an immutable point set P,
// built once over an R-tree. See the package doc for the contract.
type PointOracle struct {
	tree   *rtreego.Rtree
	points []geom2.Point
	bounds geom2.Box2
}

// New builds an oracle over points. An empty slice is a valid, if trivial,
// oracle: every query then answers false, nil or the zero Point, except
// SquaredDistance, which answers +Inf.
func New(points []geom2.Point) *PointOracle {
	o := &PointOracle{
		points: points,
		bounds: geom2.BoxOf(points),
	}
	if len(points) == 0 {
		return o
	}

	tree := rtreego.NewTree(2, minChildren, maxChildren)
	for i := range points {
		tree.Insert(&indexedPoint{pt: points[i]})
	}
	o.tree = tree
	return o
}

// Empty reports whether the oracle was built over zero points.
func (o *PointOracle) Empty() bool { return len(o.points) == 0 }

// Bounds returns the bounding box of the input point set.
func (o *PointOracle) Bounds() geom2.Box2 { return o.bounds }

// ClosestPoint returns the point of P minimizing squared distance to p.
func (o *PointOracle) ClosestPoint(p geom2.Point) (geom2.Point, bool) {
	if o.Empty() {
		return geom2.Point{}, false
	}
	nearest := o.tree.NearestNeighbor(rtreego.Point{p.X, p.Y})
	if nearest == nil {
		return geom2.Point{}, false
	}
	return nearest.(*indexedPoint).pt, true
}

// SquaredDistance returns the minimum squared distance from p to P, or +Inf
// for an empty oracle.
func (o *PointOracle) SquaredDistance(p geom2.Point) float64 {
	cp, ok := o.ClosestPoint(p)
	if !ok {
		return math.Inf(1)
	}
	return geom2.SquaredDistance(p, cp)
}

// DoIntersect reports whether some point of P lies in the closed triangle t.
func (o *PointOracle) DoIntersect(t geom2.Triangle) bool {
	if o.Empty() {
		return false
	}
	for _, cand := range o.candidatesIn(t.Bounds()) {
		if geom2.PointInTriangle(t, cand) {
			return true
		}
	}
	return false
}

// FirstIntersection reports whether segment pq crosses the offset surface Σ
// (the union of radius-offset disks around points of P), and if so the
// intersection point closest to p along pq among the first candidate (in
// increasing distance-to-p order) whose disk the segment actually crosses.
func (o *PointOracle) FirstIntersection(p, q geom2.Point, offset float64) (geom2.Point, bool) {
	if o.Empty() {
		return geom2.Point{}, false
	}

	seg := geom2.Segment{A: p, B: q}
	candidates := o.candidatesIn(seg.Bounds().Inflate(offset))
	sort.Slice(candidates, func(i, j int) bool {
		return geom2.SquaredDistance(candidates[i], p) < geom2.SquaredDistance(candidates[j], p)
	})

	for _, center := range candidates {
		if hit, ok := geom2.SegmentCircleIntersection(p, q, center, offset); ok {
			return hit, true
		}
	}
	return geom2.Point{}, false
}

// LocalPoints returns the points of P within seg's bounding box inflated by
// margin in every direction.
func (o *PointOracle) LocalPoints(seg geom2.Segment, margin float64) []geom2.Point {
	if o.Empty() {
		return nil
	}
	return o.candidatesIn(seg.Bounds().Inflate(margin))
}

// candidatesIn returns the input points whose (degenerate) bounding boxes
// intersect box, via the R-tree's box-query path.
func (o *PointOracle) candidatesIn(box geom2.Box2) []geom2.Point {
	rect, err := rtreego.NewRect(
		rtreego.Point{box.Min.X, box.Min.Y},
		[]float64{
			math.Max(box.Max.X-box.Min.X, boundsEpsilon),
			math.Max(box.Max.Y-box.Min.Y, boundsEpsilon),
		},
	)
	if err != nil {
		return nil
	}

	hits := o.tree.SearchIntersect(rect)
	out := make([]geom2.Point, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*indexedPoint).pt)
	}
	return out
}
