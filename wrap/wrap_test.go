package wrap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/geom2"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/oracle"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/triangulation"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/wrap"
)

func constantAlphaConfig(alpha, offset float64) wrap.Config {
	cfg := wrap.DefaultConfig(alpha, offset)
	cfg.Policy = wrap.ConstantAlpha(alpha)
	return cfg
}

func TestEmptyInputExitsImmediately(t *testing.T) {
	ora := oracle.New(nil)
	c, err := wrap.NewCarver(ora, constantAlphaConfig(1, 0.1))
	require.NoError(t, err)

	res, err := c.Run()
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Equal(t, 0, res.Stats.Iterations)
}

func TestSquareProducesWrapEdges(t *testing.T) {
	pts := []geom2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	ora := oracle.New(pts)
	c, err := wrap.NewCarver(ora, constantAlphaConfig(3, 0.5))
	require.NoError(t, err)

	res, err := c.Run()
	require.NoError(t, err)
	assert.NotEmpty(t, res.Edges)
	assert.Greater(t, res.Stats.Iterations, 0)
}

func TestSinglePointProducesSmallWrap(t *testing.T) {
	ora := oracle.New([]geom2.Point{{X: 0, Y: 0}})
	c, err := wrap.NewCarver(ora, constantAlphaConfig(1, 0.1))
	require.NoError(t, err)

	res, err := c.Run()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(res.Edges), 3)
}

func TestMaxIterationsTerminatesCleanly(t *testing.T) {
	pts := []geom2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	ora := oracle.New(pts)
	cfg := constantAlphaConfig(3, 0.5)
	cfg.MaxIterations = 1

	c, err := wrap.NewCarver(ora, cfg)
	require.NoError(t, err)

	res, err := c.Run()
	require.NoError(t, err)
	assert.True(t, res.Stats.Terminated)
	assert.Equal(t, 1, res.Stats.Iterations)
}

func TestInvalidConfigRejected(t *testing.T) {
	ora := oracle.New([]geom2.Point{{X: 0, Y: 0}})

	_, err := wrap.NewCarver(ora, wrap.DefaultConfig(0, 0.1))
	assert.ErrorIs(t, err, wrap.ErrInvalidAlpha)

	_, err = wrap.NewCarver(ora, wrap.DefaultConfig(1, 0))
	assert.ErrorIs(t, err, wrap.ErrInvalidOffset)

	_, err = wrap.NewCarver(ora, wrap.DefaultConfig(1, 0.1))
	assert.ErrorIs(t, err, wrap.ErrUnknownPolicy)
}

func TestMinimalDelaunayBallRadiusOutsideInfinite(t *testing.T) {
	info := triangulation.EdgeAdjacencyInfo{
		P1:              geom2.Point{X: 0, Y: 0},
		P2:              geom2.Point{X: 2, Y: 0},
		CCInside:        geom2.Point{X: 1, Y: 5},
		OutsideInfinite: true,
	}
	rho := wrap.MinimalDelaunayBallRadius(info, false)
	assert.InDelta(t, 1.0, rho, 1e-9) // rMin2 = 2^2/4 = 1; |c_in-m|^2=25 >= 1
}

func TestMinimalDelaunayBallRadiusOppositeSides(t *testing.T) {
	info := triangulation.EdgeAdjacencyInfo{
		P1:        geom2.Point{X: 0, Y: 0},
		P2:        geom2.Point{X: 2, Y: 0},
		CCInside:  geom2.Point{X: 1, Y: 1},
		CCOutside: geom2.Point{X: 1, Y: -1},
	}
	rho := wrap.MinimalDelaunayBallRadius(info, false)
	assert.InDelta(t, 1.0, rho, 1e-9)
}

func TestConstantAlphaPolicyTraversability(t *testing.T) {
	p := wrap.ConstantAlpha(2)
	p.Params()

	traversableGate := wrap.Gate{Priority: 5}
	nonTraversableGate := wrap.Gate{Priority: 1}

	assert.True(t, p.Traversable(traversableGate, nil, triangulation.EdgeAdjacencyInfo{}, nil))
	assert.False(t, p.Traversable(nonTraversableGate, nil, triangulation.EdgeAdjacencyInfo{}, nil))
}
