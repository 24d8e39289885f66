package geom2

import "math"

// epsilon bounds the near-collinear / near-zero checks used by
// OrientationOf, Circumcenter, InCircumcircle and LineThrough below. Fixed-precision geometry, not exact
// arithmetic: see package doc.
const epsilon = 1e-9

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// SquaredDistance returns the squared Euclidean distance between a and b.
func SquaredDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// Sub returns a - b as a vector (represented as a Point).
func Sub(a, b Point) Point { return Point{X: a.X - b.X, Y: a.Y - b.Y} }

// Add returns a + b.
func Add(a, b Point) Point { return Point{X: a.X + b.X, Y: a.Y + b.Y} }

// Scale returns p scaled by s.
func Scale(p Point, s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Norm returns the Euclidean length of p treated as a vector.
func Norm(p Point) float64 { return math.Hypot(p.X, p.Y) }

// Orientation classifies the turn from p->q->r.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

// OrientationOf returns the orientation of the ordered triple (p, q, r),
// via the sign of the cross product of (q-p) and (r-p).
func OrientationOf(p, q, r Point) Orientation {
	cross := (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
	switch {
	case cross > epsilon:
		return CounterClockwise
	case cross < -epsilon:
		return Clockwise
	default:
		return Collinear
	}
}

// SignedArea2 returns twice the signed area of triangle (a,b,c): positive
// for counter-clockwise, negative for clockwise, zero for collinear.
func SignedArea2(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Circumcenter returns the circumcenter of the triangle (a,b,c) and true,
// or the zero Point and false if the three points are (near-)collinear.
//
// Grounded on the branch structure of the classic "mathopenref" circumcenter
// formula: when one pair of points shares a y-coordinate, the perpendicular
// bisector of the other pair is evaluated directly to avoid a division by a
// near-zero slope.
func Circumcenter(a, b, c Point) (Point, bool) {
	absY1Y2 := math.Abs(a.Y - b.Y)
	absY2Y3 := math.Abs(b.Y - c.Y)

	if math.Abs(SignedArea2(a, b, c)) < epsilon || (absY1Y2 < epsilon && absY2Y3 < epsilon) {
		return Point{}, false
	}

	var xc, yc float64
	switch {
	case absY1Y2 < epsilon:
		m2 := -(c.X - b.X) / (c.Y - b.Y)
		mx2 := (b.X + c.X) / 2
		my2 := (b.Y + c.Y) / 2
		xc = (b.X + a.X) / 2
		yc = m2*(xc-mx2) + my2
	case absY2Y3 < epsilon:
		m1 := -(b.X - a.X) / (b.Y - a.Y)
		mx1 := (a.X + b.X) / 2
		my1 := (a.Y + b.Y) / 2
		xc = (c.X + b.X) / 2
		yc = m1*(xc-mx1) + my1
	default:
		m1 := -(b.X - a.X) / (b.Y - a.Y)
		m2 := -(c.X - b.X) / (c.Y - b.Y)
		mx1 := (a.X + b.X) / 2
		mx2 := (b.X + c.X) / 2
		my1 := (a.Y + b.Y) / 2
		my2 := (b.Y + c.Y) / 2
		xc = (m1*mx1 - m2*mx2 + my2 - my1) / (m1 - m2)
		if absY1Y2 > absY2Y3 {
			yc = m1*(xc-mx1) + my1
		} else {
			yc = m2*(xc-mx2) + my2
		}
	}
	return Point{X: xc, Y: yc}, true
}

// InCircumcircle reports whether p lies strictly inside the circumcircle of
// (a,b,c). Undefined (returns false) if the triangle is degenerate.
func InCircumcircle(a, b, c, p Point) bool {
	center, ok := Circumcenter(a, b, c)
	if !ok {
		return false
	}
	r2 := SquaredDistance(center, a)
	d2 := SquaredDistance(center, p)
	return d2 < r2-epsilon
}

// PointInTriangle reports whether p lies in the closed region of triangle t.
func PointInTriangle(t Triangle, p Point) bool {
	d1 := SignedArea2(t.A, t.B, p)
	d2 := SignedArea2(t.B, t.C, p)
	d3 := SignedArea2(t.C, t.A, p)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

// Bounds returns the bounding box of the triangle.
func (t Triangle) Bounds() Box2 {
	return BoxOf([]Point{t.A, t.B, t.C})
}

// Bounds returns the bounding box of the segment.
func (s Segment) Bounds() Box2 {
	return BoxOf([]Point{s.A, s.B})
}

// Line is an infinite line through two distinct points, represented in the
// oriented form (point, direction) rather than general ax+by=c coefficients
// so that PerpendicularDir / Side below read directly off it.
type Line struct {
	Point Point
	Dir   Point // unit direction vector
}

// LineThrough returns the line through a and b. Panics-free: if a == b, Dir
// is the zero vector, so Side returns 0 for every point and PerpendicularDir
// returns the zero vector.
func LineThrough(a, b Point) Line {
	d := Sub(b, a)
	n := Norm(d)
	if n > epsilon {
		d = Scale(d, 1/n)
	}
	return Line{Point: a, Dir: d}
}

// Side returns the sign of the cross product of the line's direction with
// the vector from the line's point to p: positive on one side, negative on
// the other, zero on the line.
func (l Line) Side(p Point) float64 {
	v := Sub(p, l.Point)
	return l.Dir.X*v.Y - l.Dir.Y*v.X
}

// PerpendicularDir returns a unit vector perpendicular to the line.
func (l Line) PerpendicularDir() Point {
	return Point{X: -l.Dir.Y, Y: l.Dir.X}
}

// SegmentCircleIntersection finds the first intersection (in increasing
// parameter t along p->q, t in (0,1]) of the segment pq with the circle of
// the given radius centered at center. Mirrors the quadratic solved by the
// original point-set oracle's segment/offset-circle test.
func SegmentCircleIntersection(p, q, center Point, radius float64) (Point, bool) {
	dx := q.X - p.X
	dy := q.Y - p.Y

	a := dx*dx + dy*dy
	if a == 0 {
		return Point{}, false
	}

	ox := p.X - center.X
	oy := p.Y - center.Y

	b := 2 * (dx*ox + dy*oy)
	c := ox*ox + oy*oy - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return Point{}, false
	}

	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	best := math.Inf(1)
	if t1 > 0 && t1 <= 1 {
		best = math.Min(best, t1)
	}
	if t2 > 0 && t2 <= 1 {
		best = math.Min(best, t2)
	}
	if math.IsInf(best, 1) {
		return Point{}, false
	}

	return Point{X: p.X + best*dx, Y: p.Y + best*dy}, true
}
