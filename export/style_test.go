package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LinoMeister/seminar-cggp-alpha-wrap-2/export"
)

func TestStyleForKnownPresets(t *testing.T) {
	assert.Equal(t, "default", export.StyleFor("default").Name)
	assert.Equal(t, "clean", export.StyleFor("clean").Name)
	assert.Equal(t, "outside_filled", export.StyleFor("outside_filled").Name)
}

func TestStyleForUnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "default", export.StyleFor("nonsense").Name)
}

func TestCleanStyleDisablesFaceFill(t *testing.T) {
	s := export.StyleFor("clean")
	assert.False(t, s.FillInside)
	assert.False(t, s.FillOutside)
	assert.True(t, s.DrawWrapEdges)
}

func TestOutsideFilledStyleOnlyFillsOutside(t *testing.T) {
	s := export.StyleFor("outside_filled")
	assert.False(t, s.FillInside)
	assert.True(t, s.FillOutside)
}
