package triangulation

import "github.com/LinoMeister/seminar-cggp-alpha-wrap-2/geom2"

// Insert adds p as a new vertex and returns its vertex index. The first two
// insertions only grow the vertex arena (no triangle exists yet to locate
// against); the third bootstraps the initial triangle plus its surrounding
// ring of infinite faces; every insertion after that runs a standard
// Bowyer-Watson cavity re-triangulation, generalized so the infinite vertex
// participates exactly like any other vertex on the cavity boundary.
func (t *Triangulation) Insert(p geom2.Point) (int, error) {
	v := len(t.vertices)
	t.vertices = append(t.vertices, p)

	switch {
	case v < 2:
		return v, nil
	case v == 2:
		return v, t.bootstrap(0, 1, 2)
	default:
		t.insertIntoMesh(v)
		return v, nil
	}
}

// bootstrap builds the first finite triangle (a,b,c) plus the three
// infinite faces fanning around it, given three non-collinear vertex
// indices already present in the arena.
func (t *Triangulation) bootstrap(a, b, c int) error {
	pa, pb, pc := t.vertices[a], t.vertices[b], t.vertices[c]
	if geom2.OrientationOf(pa, pb, pc) == geom2.Collinear {
		return ErrDegenerateBootstrap
	}
	if geom2.OrientationOf(pa, pb, pc) == geom2.Clockwise {
		b, c = c, b
	}

	// f0 is the sole finite face. f1, f2, f3 are the infinite faces
	// opposite vertices a, b, c respectively, each sharing f0's edge
	// opposite that vertex, reversed (every shared edge runs opposite
	// directions in its two incident faces).
	f0 := t.newFace(a, b, c, Inside)
	f1 := t.newFace(b, a, infiniteVertex, Outside) // opposite a's edge (b,c)... see below
	f2 := t.newFace(c, b, infiniteVertex, Outside)
	f3 := t.newFace(a, c, infiniteVertex, Outside)

	// f0's edge opposite a is (b,c); its infinite twin lists that edge
	// reversed as (c,b,INF). Likewise opposite b is (c,a) -> (a,c,INF),
	// and opposite c is (a,b) -> (b,a,INF). Re-derive precisely so the
	// neighbor wiring below is unambiguous regardless of the construction
	// order used above.
	t.faces[f1] = face{vertices: [3]int{c, b, infiniteVertex}, label: Outside}
	t.faces[f2] = face{vertices: [3]int{a, c, infiniteVertex}, label: Outside}
	t.faces[f3] = face{vertices: [3]int{b, a, infiniteVertex}, label: Outside}

	// f0 neighbors: opposite a (edge b,c) -> f1; opposite b (edge c,a) -> f2;
	// opposite c (edge a,b) -> f3.
	t.faces[f0].neighbors = [3]int{f1, f2, f3}

	// f1 = (c,b,INF): opposite c (edge b,INF) -> f3 (which has edge INF,b
	// == (b,INF) reversed, i.e. shares this edge with f3); opposite b (edge
	// INF,c) -> f2; opposite INF (edge c,b) -> f0.
	t.faces[f1].neighbors = [3]int{f3, f2, f0}
	// f2 = (a,c,INF): opposite a (edge c,INF) -> f1; opposite c (edge INF,a)
	// -> f3; opposite INF (edge a,c) -> f0.
	t.faces[f2].neighbors = [3]int{f1, f3, f0}
	// f3 = (b,a,INF): opposite b (edge a,INF) -> f2; opposite a (edge INF,b)
	// -> f1; opposite INF (edge b,a) -> f0.
	t.faces[f3].neighbors = [3]int{f2, f1, f0}

	return nil
}

// newFace appends a face and returns its index. Neighbors are left zeroed;
// callers wire them in immediately after.
func (t *Triangulation) newFace(a, b, c int, label Label) int {
	t.faces = append(t.faces, face{vertices: [3]int{a, b, c}, label: label})
	return len(t.faces) - 1
}

// insertIntoMesh runs the general cavity-based insertion of vertex v into an
// already-bootstrapped triangulation.
func (t *Triangulation) insertIntoMesh(v int) {
	p := t.vertices[v]

	seed := t.findConflictingFace(p)
	conflict := t.conflictRegion(seed, p)

	boundary := t.cavityBoundary(conflict)
	newFaces := t.retriangulateCavity(boundary, v)

	for _, f := range conflict {
		t.faces[f].removed = true
	}
	_ = newFaces
}

// findConflictingFace scans all live faces for one whose empty-circle test
// (or, for an infinite face, hull-side test) admits p. Correctness does not
// depend on starting from any particular face, only that at least one
// in-conflict face exists, which the Delaunay property guarantees for any p
// not already a vertex.
func (t *Triangulation) findConflictingFace(p geom2.Point) int {
	for f := range t.faces {
		if t.faces[f].removed {
			continue
		}
		if t.inConflict(f, p) {
			return f
		}
	}
	// Unreachable for a non-degenerate triangulation and a p distinct from
	// every existing vertex.
	return -1
}

// inConflict reports whether p violates the empty-circumcircle (finite
// face) or empty-half-plane (infinite face) property of face f.
func (t *Triangulation) inConflict(f int, p geom2.Point) bool {
	fc := &t.faces[f]
	if idx := fc.indexOfInfinite(); idx >= 0 {
		va := t.vertices[fc.vertices[(idx+1)%3]]
		vb := t.vertices[fc.vertices[(idx+2)%3]]
		return geom2.OrientationOf(va, vb, p) == geom2.CounterClockwise
	}
	a := t.vertices[fc.vertices[0]]
	b := t.vertices[fc.vertices[1]]
	c := t.vertices[fc.vertices[2]]
	return geom2.InCircumcircle(a, b, c, p)
}

// conflictRegion flood-fills the connected set of faces in conflict with p,
// starting from seed.
func (t *Triangulation) conflictRegion(seed int, p geom2.Point) []int {
	inRegion := map[int]bool{seed: true}
	stack := []int{seed}
	region := []int{seed}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, nf := range t.faces[f].neighbors {
			if inRegion[nf] || t.faces[nf].removed {
				continue
			}
			if t.inConflict(nf, p) {
				inRegion[nf] = true
				stack = append(stack, nf)
				region = append(region, nf)
			}
		}
	}
	return region
}

// boundaryEdge is one edge of the cavity polygon left behind once the
// conflict region is deleted, recorded with enough information to relink
// the new fan of faces to the surviving mesh.
type boundaryEdge struct {
	va, vb   int // CCW order as seen from inside the (deleted) cavity
	outer    int // the surviving face across this edge
	outerIdx int // outer's local index of this same edge
}

// cavityBoundary returns the boundary edges of the conflict region, each
// paired with its surviving outer neighbor.
func (t *Triangulation) cavityBoundary(conflict []int) []boundaryEdge {
	inRegion := make(map[int]bool, len(conflict))
	for _, f := range conflict {
		inRegion[f] = true
	}

	var edges []boundaryEdge
	for _, f := range conflict {
		fc := &t.faces[f]
		for i := 0; i < 3; i++ {
			nf := fc.neighbors[i]
			if inRegion[nf] {
				continue
			}
			va := fc.vertices[(i+1)%3]
			vb := fc.vertices[(i+2)%3]
			outerIdx := mirrorIndex(&t.faces[nf], va, vb)
			edges = append(edges, boundaryEdge{va: va, vb: vb, outer: nf, outerIdx: outerIdx})
		}
	}
	return orderBoundaryCycle(edges)
}

// mirrorIndex finds the local edge index within f whose two endpoints are
// {va, vb}, matched by vertex identity rather than position, since the same
// undirected edge runs in opposite directions in its two incident faces.
func mirrorIndex(f *face, va, vb int) int {
	want := [2]int{va, vb}
	for i := 0; i < 3; i++ {
		a := f.vertices[(i+1)%3]
		b := f.vertices[(i+2)%3]
		if (a == want[0] && b == want[1]) || (a == want[1] && b == want[0]) {
			return i
		}
	}
	return -1
}

// orderBoundaryCycle reorders boundary edges into a single head-to-tail
// cycle (vb of one edge equals va of the next), which the Bowyer-Watson
// cavity always forms when the conflict region is simply connected.
func orderBoundaryCycle(edges []boundaryEdge) []boundaryEdge {
	byStart := make(map[int]boundaryEdge, len(edges))
	for _, e := range edges {
		byStart[e.va] = e
	}

	ordered := make([]boundaryEdge, 0, len(edges))
	start := edges[0].va
	cur := start
	for i := 0; i < len(edges); i++ {
		e := byStart[cur]
		ordered = append(ordered, e)
		cur = e.vb
	}
	return ordered
}

// retriangulateCavity connects every boundary edge to the new vertex v,
// forming a fan of new faces, and wires their neighbor pointers both to
// each other and back out to the surviving mesh.
func (t *Triangulation) retriangulateCavity(boundary []boundaryEdge, v int) []int {
	n := len(boundary)
	newFaces := make([]int, n)

	for i, e := range boundary {
		label := Inside
		if e.va == infiniteVertex || e.vb == infiniteVertex || v == infiniteVertex {
			label = Outside
		}
		newFaces[i] = t.newFace(e.va, e.vb, v, label)
	}

	for i, e := range boundary {
		f := newFaces[i]
		next := newFaces[(i+1)%n]
		prev := newFaces[(i-1+n)%n]
		// Local slots for face (va, vb, v): 0 opposite va (edge vb,v),
		// 1 opposite vb (edge v,va), 2 opposite v (edge va,vb).
		t.faces[f].neighbors = [3]int{next, prev, e.outer}
		t.faces[e.outer].neighbors[e.outerIdx] = f
	}
	return newFaces
}
