package pointsfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/geom2"
	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/pointsfile"
)

func TestLoadParsesPoints(t *testing.T) {
	input := "0 0\n10 0\n\n  10 10  \n0 10\n"
	pts, err := pointsfile.Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []geom2.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}, pts)
}

func TestLoadRejectsEmpty(t *testing.T) {
	_, err := pointsfile.Load(strings.NewReader("\n\n  \n"))
	assert.ErrorIs(t, err, pointsfile.ErrEmptyPointSet)
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := pointsfile.Load(strings.NewReader("0 0\nnot-a-point\n"))
	assert.ErrorIs(t, err, pointsfile.ErrMalformedLine)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := pointsfile.LoadFile("/nonexistent/path/points.txt")
	assert.Error(t, err)
}
