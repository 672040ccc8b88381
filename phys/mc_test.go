// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tracer/r2"
)

func TestUniformSampleSphereIsUnitLength(t *testing.T) {
	samples := []r2.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0.5, Y: 0.5},
		{X: 0.25, Y: 0.75},
	}
	for _, u := range samples {
		v := uniformSampleSphere(u)
		assert.InDelta(t, 1, v.Length(), 1e-9)
	}
}

func TestPowerHeuristicEqualPdfsSplitEvenly(t *testing.T) {
	w := powerHeuristic(1, 2.0, 1, 2.0)
	assert.InDelta(t, 0.5, w, 1e-9)
}

func TestPowerHeuristicFavorsLowerVariancePdf(t *testing.T) {
	w := powerHeuristic(1, 4.0, 1, 1.0)
	assert.Greater(t, w, 0.9)
}

func TestPowerHeuristicZeroPdfsIsZero(t *testing.T) {
	assert.Equal(t, 0.0, powerHeuristic(1, 0, 1, 0))
}
