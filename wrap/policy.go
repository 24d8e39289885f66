package wrap

import (
	"math"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/geom2"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/oracle"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/triangulation"
)

// Policy decides whether a gate may be carved through (spec §4.4). Exactly
// one is active per Carver run, selected via WithPolicy.
type Policy interface {
	// Traversable reports whether gate g, whose adjacency info is info, may
	// be carved through.
	Traversable(g Gate, tri *triangulation.Triangulation, info triangulation.EdgeAdjacencyInfo, ora *oracle.PointOracle) bool
	// Name identifies the policy for statistics reporting.
	Name() string
	// Params returns the policy's tunable parameters for statistics
	// reporting.
	Params() map[string]float64
	// resolve is called once by Carver.init, after the frame bounding box
	// is known, to convert any bbox-diagonal-relative parameter into an
	// absolute one.
	resolve(alpha, offset, bboxDiag float64)
}

// MinimalDelaunayBallRadius computes ρ(g), the squared minimal Delaunay
// ball radius through a gate's endpoints, per spec §4.5. modifiedAlpha
// selects the "modified alpha traversability" branch of the default case
// (see DESIGN.md's Open Question resolution). The two branches differ only
// when both circumcenters lie on the same side of the edge: with
// modifiedAlpha false the result is min(rIn², rOut²); with it true the
// result is the diameter-ball radius rMin² when rOut² < rIn², and rIn²
// otherwise.
func MinimalDelaunayBallRadius(info triangulation.EdgeAdjacencyInfo, modifiedAlpha bool) float64 {
	p1, p2 := info.P1, info.P2
	m := geom2.Midpoint(p1, p2)
	rMin2 := geom2.SquaredDistance(p1, p2) / 4

	if info.OutsideInfinite {
		if geom2.SquaredDistance(info.CCInside, m) >= rMin2 {
			return rMin2
		}
		return geom2.SquaredDistance(info.CCInside, p1)
	}

	sideIn := geom2.OrientationOf(p1, p2, info.CCInside)
	sideOut := geom2.OrientationOf(p1, p2, info.CCOutside)
	if sideIn != geom2.Collinear && sideOut != geom2.Collinear && sideIn != sideOut {
		return rMin2
	}

	rIn2 := geom2.SquaredDistance(info.CCInside, p1)
	rOut2 := geom2.SquaredDistance(info.CCOutside, p1)
	if modifiedAlpha {
		if rOut2 < rIn2 {
			return rMin2
		}
		return rIn2
	}
	return math.Min(rIn2, rOut2)
}

// ConstantAlphaPolicy is spec §4.4 variant 1: a gate is traversable iff its
// priority already meets alpha². It reads g.Priority directly rather than
// recomputing MinimalDelaunayBallRadius, since Carver always pushes gates
// with their priority already set.
type ConstantAlphaPolicy struct {
	Alpha float64
}

// ConstantAlpha builds the constant-alpha traversability policy.
func ConstantAlpha(alpha float64) *ConstantAlphaPolicy {
	return &ConstantAlphaPolicy{Alpha: alpha}
}

func (p *ConstantAlphaPolicy) Name() string { return "CONSTANT_ALPHA" }

func (p *ConstantAlphaPolicy) Params() map[string]float64 {
	return map[string]float64{"alpha": p.Alpha}
}

func (p *ConstantAlphaPolicy) resolve(alpha, _, _ float64) { p.Alpha = alpha }

func (p *ConstantAlphaPolicy) Traversable(g Gate, _ *triangulation.Triangulation, _ triangulation.EdgeAdjacencyInfo, _ *oracle.PointOracle) bool {
	return g.Priority >= p.Alpha*p.Alpha
}

// DeviationBasedPolicy is spec §4.4 variant 2 (adaptive alpha).
// AlphaMax is expressed, on construction, as a multiple of the input
// bounding box's diagonal; resolve converts it to an absolute value.
type DeviationBasedPolicy struct {
	AlphaMax        float64
	PointThreshold  int
	DeviationFactor float64

	alpha    float64
	offset   float64
	alphaMax float64 // resolved (absolute)
}

// DeviationBased builds the adaptive-alpha traversability policy.
func DeviationBased(alphaMaxFactor, deviationFactor float64, pointThreshold int) *DeviationBasedPolicy {
	return &DeviationBasedPolicy{
		AlphaMax:        alphaMaxFactor,
		PointThreshold:  pointThreshold,
		DeviationFactor: deviationFactor,
	}
}

func (p *DeviationBasedPolicy) Name() string { return "DEVIATION_BASED" }

func (p *DeviationBasedPolicy) Params() map[string]float64 {
	return map[string]float64{
		"alpha_max":        p.AlphaMax,
		"point_threshold":  float64(p.PointThreshold),
		"deviation_factor": p.DeviationFactor,
	}
}

func (p *DeviationBasedPolicy) resolve(alpha, offset, bboxDiag float64) {
	p.alpha = alpha
	p.offset = offset
	p.alphaMax = p.AlphaMax * bboxDiag
}

func (p *DeviationBasedPolicy) Traversable(g Gate, _ *triangulation.Triangulation, info triangulation.EdgeAdjacencyInfo, ora *oracle.PointOracle) bool {
	d := p.deviationScore(info.P1, info.P2, ora)
	alphaHat := p.alphaMax*(1-d) + p.alpha*d
	return g.Priority >= alphaHat*alphaHat
}

// deviationScore chops (p1,p2) into ceil(length/alpha) equal sub-segments
// and returns the maximum per-sub-segment score.
func (p *DeviationBasedPolicy) deviationScore(p1, p2 geom2.Point, ora *oracle.PointOracle) float64 {
	length := geom2.Distance(p1, p2)
	n := int(math.Ceil(length / p.alpha))
	if n < 1 {
		n = 1
	}

	best := 0.0
	for i := 0; i < n; i++ {
		t0 := float64(i) / float64(n)
		t1 := float64(i+1) / float64(n)
		sub := geom2.Segment{
			A: lerp(p1, p2, t0),
			B: lerp(p1, p2, t1),
		}
		score := p.subSegmentScore(sub, ora)
		if score > best {
			best = score
		}
	}
	return best
}

func (p *DeviationBasedPolicy) subSegmentScore(sub geom2.Segment, ora *oracle.PointOracle) float64 {
	pts := ora.LocalPoints(sub, p.offset+4)
	if len(pts) < p.PointThreshold {
		return 1
	}

	mid := geom2.Midpoint(sub.A, sub.B)
	var sum float64
	for _, pt := range pts {
		sum += geom2.SquaredDistance(mid, pt)
	}
	meanSq := sum / float64(len(pts))

	d := p.DeviationFactor * (meanSq - p.offset*p.offset)
	return clamp01(d)
}

// IntersectionBasedPolicy is spec §4.4 variant 3 (distance-sampling).
type IntersectionBasedPolicy struct {
	ToleranceFactor float64

	alpha    float64
	offset   float64
	toleranceAbs float64 // resolved (absolute): ToleranceFactor * bboxDiag
}

// IntersectionBased builds the distance-sampling traversability policy.
func IntersectionBased(toleranceFactor float64) *IntersectionBasedPolicy {
	return &IntersectionBasedPolicy{ToleranceFactor: toleranceFactor}
}

func (p *IntersectionBasedPolicy) Name() string { return "INTERSECTION_BASED" }

func (p *IntersectionBasedPolicy) Params() map[string]float64 {
	return map[string]float64{"tolerance_factor": p.ToleranceFactor}
}

func (p *IntersectionBasedPolicy) resolve(alpha, offset, bboxDiag float64) {
	p.alpha = alpha
	p.offset = offset
	p.toleranceAbs = p.ToleranceFactor * bboxDiag
}

func (p *IntersectionBasedPolicy) Traversable(g Gate, _ *triangulation.Triangulation, info triangulation.EdgeAdjacencyInfo, ora *oracle.PointOracle) bool {
	p1, p2 := info.P1, info.P2
	n := int(math.Ceil(geom2.Distance(p1, p2)/p.alpha)) - 1
	if n < 1 {
		n = 1
	}

	probeDir := outwardPerpendicular(p1, p2, info.CCInside)
	for k := 1; k <= n; k++ {
		t := float64(k) / float64(n+1)
		p0 := lerp(p1, p2, t)
		probeEnd := geom2.Add(p0, geom2.Scale(probeDir, p.toleranceAbs))
		if _, hit := ora.FirstIntersection(p0, probeEnd, p.offset); !hit {
			return true
		}
	}
	return false
}

// outwardPerpendicular returns the unit vector perpendicular to p1->p2,
// pointing away from insideHint (e.g. the inside face's circumcenter).
func outwardPerpendicular(p1, p2, insideHint geom2.Point) geom2.Point {
	edge := geom2.Sub(p2, p1)
	perp := geom2.Point{X: -edge.Y, Y: edge.X}
	n := geom2.Norm(perp)
	if n < 1e-12 {
		return geom2.Point{}
	}
	perp = geom2.Scale(perp, 1/n)

	if geom2.OrientationOf(p1, p2, insideHint) == geom2.CounterClockwise {
		return geom2.Scale(perp, -1)
	}
	return perp
}

func lerp(a, b geom2.Point, t float64) geom2.Point {
	return geom2.Add(a, geom2.Scale(geom2.Sub(b, a), t))
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
