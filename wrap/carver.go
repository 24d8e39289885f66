package wrap

import (
	"time"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/geom2"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/oracle"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/triangulation"
)

// frameMarginFactor sets the frame's margin past the point set's bounding
// box as a fraction of its diagonal, per spec §4.7/§9: offset + diag/10.
const frameMarginFactor = 0.1

// Result is what Carver.Run returns: the extracted wrap surface and the
// accumulated statistics.
type Result struct {
	Edges []geom2.Segment
	Stats Stats
}

// Carver is the alpha-wrap carving engine. Construct with NewCarver, then
// call Run once; a Carver is single-use, mirroring dijkstra's one-shot
// runner.
type Carver struct {
	oracle *oracle.PointOracle
	cfg    Config
	tri    *triangulation.Triangulation
	queue  *gateQueue
	stats  Stats

	bboxDiag float64
}

// Triangulation exposes the underlying mesh for callers that need to render
// a snapshot after Run returns (the export package, notably).
func (c *Carver) Triangulation() *triangulation.Triangulation { return c.tri }

// NewCarver validates cfg and returns a Carver ready to Run over ora.
func NewCarver(ora *oracle.PointOracle, cfg Config) (*Carver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Carver{
		oracle: ora,
		cfg:    cfg,
		tri:    triangulation.New(),
		queue:  newGateQueue(),
	}, nil
}

// Run executes the carving algorithm to completion (or until MaxIterations
// fires) and returns the extracted wrap surface.
func (c *Carver) Run() (Result, error) {
	if c.oracle.Empty() {
		return Result{Stats: c.emptyStats()}, nil
	}

	sw := startStopwatch()
	c.init()
	c.stats.InitDuration = sw.elapsed()

	sw = startStopwatch()
	if err := c.mainLoop(); err != nil {
		return Result{}, err
	}
	c.stats.MainLoopDuration = sw.elapsed()

	sw = startStopwatch()
	edges := c.extract()
	c.stats.ExtractDuration = sw.elapsed()

	c.stats.VertexCount = c.tri.NumVertices()
	c.stats.EdgeCount = len(edges)
	c.stats.InputFile = c.cfg.InputFile
	c.stats.PolicyName = c.cfg.Policy.Name()
	c.stats.PolicyParams = c.cfg.Policy.Params()
	c.stats.SchemaVersion = statsSchemaVersion
	c.stats.Timestamp = time.Now()

	return Result{Edges: edges, Stats: c.stats}, nil
}

func (c *Carver) emptyStats() Stats {
	return Stats{
		SchemaVersion: statsSchemaVersion,
		InputFile:     c.cfg.InputFile,
		Timestamp:     time.Now(),
	}
}

// init builds the frame triangulation, labels its faces, computes the
// bounding-box diagonal, resolves the policy's scale-dependent parameters,
// and seeds the gate queue. Spec §4.7 "Initialization".
func (c *Carver) init() {
	bounds := c.oracle.Bounds()
	c.bboxDiag = bounds.Diagonal()
	margin := c.cfg.Offset + c.bboxDiag*frameMarginFactor
	frame := bounds.Inflate(margin)

	c.cfg.Policy.resolve(c.cfg.Alpha, c.cfg.Offset, c.bboxDiag)

	for _, corner := range frame.Corners() {
		// Insert errors here would mean the four frame corners are
		// collinear, which is impossible for a positive-margin box.
		_, _ = c.tri.Insert(corner)
	}

	c.rebuildQueue()
}

// rebuildQueue empties the queue and rescans every finite edge, pushing
// back every edge whose two incident faces disagree in label, canonicalized
// so the INSIDE face is always Gate.Face.
func (c *Carver) rebuildQueue() {
	sw := startStopwatch()
	c.queue = newGateQueue()

	for _, e := range c.tri.FiniteEdges() {
		c.maybePushGate(e.Face, e.I)
	}
	c.stats.GatePrepDuration += sw.elapsed()
}

// maybePushGate checks whether edge (f,i) or its mirror is a genuine gate
// (one finite-INSIDE side, one OUTSIDE-or-infinite side) and, if so, pushes
// it with its priority computed.
func (c *Carver) maybePushGate(f, i int) {
	nf, ni := c.tri.MirrorEdge(f, i)

	insideFace, insideIdx, ok := c.canonicalizeGate(f, i, nf, ni)
	if !ok {
		return
	}

	info, err := c.tri.AdjacencyInfo(insideFace, insideIdx)
	if err != nil {
		return
	}
	priority := MinimalDelaunayBallRadius(info, c.cfg.ModifiedAlphaTraversability)
	c.queue.push(Gate{Face: insideFace, EdgeIndex: insideIdx, Priority: priority})
}

// canonicalizeGate picks whichever of (f,i)/(nf,ni) is the finite INSIDE
// side, per spec §4.3. Returns ok=false if neither side is a finite INSIDE
// face (not a gate) or if both sides are (stale/interior, not a gate).
func (c *Carver) canonicalizeGate(f, i, nf, ni int) (int, int, bool) {
	fInside := !c.tri.IsInfinite(f) && c.tri.Label(f) == triangulation.Inside
	nfInside := !c.tri.IsInfinite(nf) && c.tri.Label(nf) == triangulation.Inside
	switch {
	case fInside && !nfInside:
		return f, i, true
	case nfInside && !fInside:
		return nf, ni, true
	default:
		return 0, 0, false
	}
}

// mainLoop runs spec §4.7's main loop until the queue empties or the
// iteration cap fires.
func (c *Carver) mainLoop() error {
	for c.stats.Iterations < c.cfg.MaxIterations {
		g, ok := c.queue.pop()
		if !ok {
			return nil
		}
		c.stats.Iterations++

		if err := c.processGate(g); err != nil {
			return err
		}
	}
	c.stats.Terminated = true
	return nil
}

// processGate implements one main-loop turn: staleness check, traversability
// test, R1, R2, and the carve itself.
func (c *Carver) processGate(g Gate) error {
	if c.tri.IsInfinite(g.Face) {
		return ErrLogicCInIsInfinite
	}

	nf, ni := c.tri.MirrorEdge(g.Face, g.EdgeIndex)
	if c.tri.Label(g.Face) != triangulation.Inside ||
		(!c.tri.IsInfinite(nf) && c.tri.Label(nf) == c.tri.Label(g.Face)) {
		// Stale: the edge is no longer a gate (its inside face was carved,
		// possibly against an always-OUTSIDE infinite face).
		return nil
	}

	info, err := c.tri.AdjacencyInfo(g.Face, g.EdgeIndex)
	if err != nil {
		return err
	}

	if !c.cfg.Policy.Traversable(g, c.tri, info, c.oracle) {
		return nil
	}

	if inserted, err := c.ruleR1(info); err != nil {
		return err
	} else if inserted {
		return nil
	}

	if inserted, err := c.ruleR2(g.Face, info); err != nil {
		return err
	} else if inserted {
		return nil
	}

	c.carve(g.Face)
	return nil
}

// ruleR1 is spec §4.7 step 5: refine on the dual edge between the two
// circumcenters. Returns inserted=true if a Steiner point was placed.
func (c *Carver) ruleR1(info triangulation.EdgeAdjacencyInfo) (bool, error) {
	sw := startStopwatch()
	defer func() { c.stats.R1Duration += sw.elapsed() }()

	s, ok := c.oracle.FirstIntersection(info.CCOutside, info.CCInside, c.cfg.Offset)
	if !ok {
		return false, nil
	}
	c.insertSteiner(s)
	c.stats.R1Insertions++
	return true, nil
}

// ruleR2 is spec §4.7 step 6: refine on the inside face when it still
// overlaps Σ. Returns inserted=true if a Steiner point was placed; a failed
// intersection after a successful do_intersect is fatal.
func (c *Carver) ruleR2(insideFace int, info triangulation.EdgeAdjacencyInfo) (bool, error) {
	sw := startStopwatch()
	defer func() { c.stats.R2Duration += sw.elapsed() }()

	tri := c.tri.Triangle(insideFace)
	if !c.oracle.DoIntersect(tri) {
		return false, nil
	}

	projection, _ := c.oracle.ClosestPoint(info.CCInside)
	s, ok := c.oracle.FirstIntersection(info.CCInside, projection, c.cfg.Offset)
	if !ok {
		c.stats.R2Failures++
		return false, ErrLogicR2IntersectionFailed
	}
	c.insertSteiner(s)
	c.stats.R2Insertions++
	return true, nil
}

// insertSteiner inserts s into the triangulation and rebuilds the queue
// from scratch, per spec §4.7's Steiner-insertion procedure.
func (c *Carver) insertSteiner(s geom2.Point) {
	_, _ = c.tri.Insert(s)
	c.rebuildQueue()
}

// carve relabels insideFace OUTSIDE and re-examines its three edges for new
// gates, per spec §4.7 step 7.
func (c *Carver) carve(insideFace int) {
	c.tri.SetLabel(insideFace, triangulation.Outside)
	for i := 0; i < 3; i++ {
		c.maybePushGate(insideFace, i)
	}
}

// extract sweeps finite edges and emits those whose two incident faces
// differ in label, per spec §4.7's Extraction step.
func (c *Carver) extract() []geom2.Segment {
	var out []geom2.Segment
	for _, e := range c.tri.FiniteEdges() {
		nf, _ := c.tri.MirrorEdge(e.Face, e.I)
		if c.tri.Label(e.Face) == c.tri.Label(nf) {
			continue
		}
		a, b := c.tri.EdgeVertices(e.Face, e.I)
		out = append(out, geom2.Segment{A: a, B: b})
	}
	return out
}
