package triangulation

import "github.com/LinoMeister/seminar-cggp-alpha-wrap-2/geom2"

// IsInfinite reports whether face f is incident to the infinite vertex.
func (t *Triangulation) IsInfinite(f int) bool { return t.faces[f].isInfinite() }

// FiniteFaces returns the indices of every live finite face.
func (t *Triangulation) FiniteFaces() []int {
	out := make([]int, 0, len(t.faces))
	for f := range t.faces {
		if !t.faces[f].removed && !t.faces[f].isInfinite() {
			out = append(out, f)
		}
	}
	return out
}

// FiniteEdges returns every undirected edge between two finite vertices
// exactly once, regardless of whether its opposite face is finite or
// infinite.
func (t *Triangulation) FiniteEdges() []Edge {
	var out []Edge
	for f := range t.faces {
		fc := &t.faces[f]
		if fc.removed || fc.isInfinite() {
			continue
		}
		for i := 0; i < 3; i++ {
			nf := fc.neighbors[i]
			if t.faces[nf].isInfinite() || nf > f {
				out = append(out, Edge{Face: f, I: i})
			}
		}
	}
	return out
}

// IncidentFaces returns every live face (finite or infinite) containing
// vertex v.
func (t *Triangulation) IncidentFaces(v int) []int {
	var out []int
	for f := range t.faces {
		if t.faces[f].removed {
			continue
		}
		for _, vv := range t.faces[f].vertices {
			if vv == v {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// MirrorEdge returns (f.neighbor(i), j) naming the same undirected edge
// from the other incident face.
func (t *Triangulation) MirrorEdge(f, i int) (int, int) {
	fc := &t.faces[f]
	nf := fc.neighbors[i]
	va := fc.vertices[(i+1)%3]
	vb := fc.vertices[(i+2)%3]
	return nf, mirrorIndex(&t.faces[nf], va, vb)
}

// Triangle returns the geometry of finite face f.
func (t *Triangulation) Triangle(f int) geom2.Triangle {
	fc := &t.faces[f]
	return geom2.Triangle{
		A: t.vertices[fc.vertices[0]],
		B: t.vertices[fc.vertices[1]],
		C: t.vertices[fc.vertices[2]],
	}
}

// Circumcenter returns the circumcenter of finite face f.
func (t *Triangulation) Circumcenter(f int) (geom2.Point, bool) {
	tri := t.Triangle(f)
	return geom2.Circumcenter(tri.A, tri.B, tri.C)
}

// EdgeVertices returns the two endpoint points of edge (f,i).
func (t *Triangulation) EdgeVertices(f, i int) (geom2.Point, geom2.Point) {
	fc := &t.faces[f]
	return t.vertices[fc.vertices[(i+1)%3]], t.vertices[fc.vertices[(i+2)%3]]
}

// OppositeVertex returns the point of face f's vertex opposite edge i (i.e.
// vertex i itself). Undefined for an infinite face's infinite slot.
func (t *Triangulation) OppositeVertex(f, i int) geom2.Point {
	return t.vertices[t.faces[f].vertices[i]]
}
