package geom2

import "math"

// Point is an ordered pair of real coordinates.
type Point struct {
	X, Y float64
}

// Segment is an ordered pair of endpoints.
type Segment struct {
	A, B Point
}

// Triangle is an ordered triple of vertices.
type Triangle struct {
	A, B, C Point
}

// Box2 is an axis-aligned bounding box. A zero-value Box2{} is degenerate
// (Min == Max == origin); use NewBox2 or Box2.Extend to build one from data.
type Box2 struct {
	Min, Max Point
}

// NewBox2 returns the empty box that Extend can grow from: Min is +Inf in
// both coordinates, Max is -Inf, so the first Extend call replaces both.
func NewBox2() Box2 {
	return Box2{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Extend grows the box to include p, returning the updated box.
func (b Box2) Extend(p Point) Box2 {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	return b
}

// BoxOf returns the bounding box of pts. Returns the zero Box2 for an empty
// slice.
func BoxOf(pts []Point) Box2 {
	if len(pts) == 0 {
		return Box2{}
	}
	b := NewBox2()
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}

// Center returns the midpoint of the box's diagonal.
func (b Box2) Center() Point {
	return Point{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Diagonal returns the Euclidean length of the box's diagonal.
func (b Box2) Diagonal() float64 {
	return math.Hypot(b.Max.X-b.Min.X, b.Max.Y-b.Min.Y)
}

// Inflate returns a copy of b expanded by margin on every side.
func (b Box2) Inflate(margin float64) Box2 {
	return Box2{
		Min: Point{X: b.Min.X - margin, Y: b.Min.Y - margin},
		Max: Point{X: b.Max.X + margin, Y: b.Max.Y + margin},
	}
}

// Corners returns the box's four corners in counter-clockwise order
// starting at Min.
func (b Box2) Corners() [4]Point {
	return [4]Point{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
	}
}
