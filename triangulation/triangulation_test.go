package triangulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/geom2"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/triangulation"
)

func insertSquare(t *testing.T) (*triangulation.Triangulation, []int) {
	t.Helper()
	tr := triangulation.New()
	corners := []geom2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	ids := make([]int, len(corners))
	for i, c := range corners {
		v, err := tr.Insert(c)
		require.NoError(t, err)
		ids[i] = v
	}
	return tr, ids
}

func TestBootstrapTriangleIsWellFormed(t *testing.T) {
	tr := triangulation.New()
	_, err := tr.Insert(geom2.Point{X: 0, Y: 0})
	require.NoError(t, err)
	_, err = tr.Insert(geom2.Point{X: 1, Y: 0})
	require.NoError(t, err)
	_, err = tr.Insert(geom2.Point{X: 0, Y: 1})
	require.NoError(t, err)

	finite := tr.FiniteFaces()
	require.Len(t, finite, 1)
	assert.Equal(t, triangulation.Inside, tr.Label(finite[0]))

	for i := 0; i < 3; i++ {
		nf, _ := tr.MirrorEdge(finite[0], i)
		assert.True(t, tr.IsInfinite(nf))
	}
}

func TestDegenerateBootstrapCollinear(t *testing.T) {
	tr := triangulation.New()
	_, err := tr.Insert(geom2.Point{X: 0, Y: 0})
	require.NoError(t, err)
	_, err = tr.Insert(geom2.Point{X: 1, Y: 0})
	require.NoError(t, err)
	_, err = tr.Insert(geom2.Point{X: 2, Y: 0})
	assert.ErrorIs(t, err, triangulation.ErrDegenerateBootstrap)
}

func TestSquareProducesTwoInsideFaces(t *testing.T) {
	tr, _ := insertSquare(t)

	finite := tr.FiniteFaces()
	require.Len(t, finite, 2)
	for _, f := range finite {
		assert.Equal(t, triangulation.Inside, tr.Label(f))
	}
}

func TestInsertExtendsHullOutward(t *testing.T) {
	tr, _ := insertSquare(t)
	v, err := tr.Insert(geom2.Point{X: 20, Y: 5})
	require.NoError(t, err)

	incident := tr.IncidentFaces(v)
	assert.NotEmpty(t, incident)

	// All five points lie on the hull, so the triangulation has 5-2 = 3
	// finite faces: the square's two plus one joining (20,5) to the edge
	// x=10.
	finite := tr.FiniteFaces()
	assert.Len(t, finite, 3)
}

func TestAdjacencyInfoRejectsInfiniteInside(t *testing.T) {
	tr, _ := insertSquare(t)

	finite := tr.FiniteFaces()
	f := finite[0]
	for i := 0; i < 3; i++ {
		nf, ni := tr.MirrorEdge(f, i)
		if tr.IsInfinite(nf) {
			_, err := tr.AdjacencyInfo(nf, ni)
			assert.ErrorIs(t, err, triangulation.ErrInfiniteInsideFace)
		}
	}
}

func TestAdjacencyInfoSyntheticOutsideCircumcenter(t *testing.T) {
	tr, _ := insertSquare(t)

	finite := tr.FiniteFaces()
	for _, f := range finite {
		for i := 0; i < 3; i++ {
			nf, _ := tr.MirrorEdge(f, i)
			if !tr.IsInfinite(nf) {
				continue
			}
			info, err := tr.AdjacencyInfo(f, i)
			require.NoError(t, err)
			assert.True(t, info.OutsideInfinite)
			assert.False(t, info.CCOutside == geom2.Point{})
		}
	}
}
