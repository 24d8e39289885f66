package wrap_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/geom2"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/oracle"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/triangulation"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/wrap"
)

// randomPointSet generates a small, non-degenerate point set scattered in a
// fixed square, large enough to exercise the carving engine without making
// each rapid.Check iteration expensive.
func randomPointSet(t *rapid.T) []geom2.Point {
	n := rapid.IntRange(4, 12).Draw(t, "n")
	pts := make([]geom2.Point, n)
	for i := range pts {
		pts[i] = geom2.Point{
			X: rapid.Float64Range(0, 20).Draw(t, "x"),
			Y: rapid.Float64Range(0, 20).Draw(t, "y"),
		}
	}
	return pts
}

// runConstantAlpha runs the carver to completion with a bounded iteration
// cap, so a property-test bug can never hang the test run.
func runConstantAlpha(pts []geom2.Point, alpha, offset float64) (*wrap.Carver, wrap.Result, error) {
	cfg := wrap.DefaultConfig(alpha, offset)
	cfg.Policy = wrap.ConstantAlpha(alpha)
	cfg.MaxIterations = 5000

	c, err := wrap.NewCarver(oracle.New(pts), cfg)
	if err != nil {
		return nil, wrap.Result{}, err
	}
	res, err := c.Run()
	return c, res, err
}

// TestPropertyTermination is spec §8's "Termination": run() completes within
// MaxIterations loop turns for any finite, non-degenerate input.
func TestPropertyTermination(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pts := randomPointSet(t)
		_, res, err := runConstantAlpha(pts, 3, 0.5)
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if res.Stats.Iterations > 5000 {
			t.Fatalf("exceeded MaxIterations: %d", res.Stats.Iterations)
		}
	})
}

// TestPropertyLabelingTotality is spec §8's "Labeling totality": every
// finite face carries a valid Label after Run.
func TestPropertyLabelingTotality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pts := randomPointSet(t)
		c, _, err := runConstantAlpha(pts, 3, 0.5)
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		for _, f := range c.Triangulation().FiniteFaces() {
			label := c.Triangulation().Label(f)
			if label != triangulation.Inside && label != triangulation.Outside {
				t.Fatalf("face %d has invalid label %v", f, label)
			}
		}
	})
}

// TestPropertyExtractionCorrectness is spec §8's "Extraction correctness":
// W is exactly the multiset of finite edges whose two incident labels
// differ — checked by recomputing that multiset independently of Carver's
// own extract() and comparing cardinality.
func TestPropertyExtractionCorrectness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pts := randomPointSet(t)
		c, res, err := runConstantAlpha(pts, 3, 0.5)
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}

		tri := c.Triangulation()
		want := 0
		for _, e := range tri.FiniteEdges() {
			nf, _ := tri.MirrorEdge(e.Face, e.I)
			if tri.Label(e.Face) != tri.Label(nf) {
				want++
			}
		}
		if want != len(res.Edges) {
			t.Fatalf("extraction mismatch: recomputed %d boundary edges, got %d wrap edges", want, len(res.Edges))
		}
	})
}

// TestPropertyOffsetProximityOfSteinerPoints is spec §8's "Offset proximity
// of Steiner points": every vertex introduced beyond the original input set
// lies within offset (up to a scale-proportional tolerance) of the nearest
// original point.
func TestPropertyOffsetProximityOfSteinerPoints(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pts := randomPointSet(t)
		offset := 0.5
		ora := oracle.New(pts)
		c, _, err := runConstantAlpha(pts, 3, offset)
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}

		tol := 1e-6 * ora.Bounds().Diagonal()
		if tol < 1e-6 {
			tol = 1e-6
		}

		original := make(map[geom2.Point]bool, len(pts))
		for _, p := range pts {
			original[p] = true
		}

		// Vertices 0-3 are the frame corners Carver.init inserts first; every
		// later vertex is a Steiner point placed on the offset circle of some
		// input point, so its nearest input point is at most offset away.
		for v := 4; v < c.Triangulation().NumVertices(); v++ {
			p := c.Triangulation().VertexPoint(v)
			if original[p] {
				continue // coincides with an original input point
			}
			got := ora.SquaredDistance(p)
			want := offset * offset
			if got > want+tol {
				t.Fatalf("steiner point %v squared-dist %f exceeds offset^2 %f", p, got, want)
			}
		}
	})
}
