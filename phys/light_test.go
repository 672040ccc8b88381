// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracer/r2"
	"tracer/r3"
)

func TestPointLightInverseSquareFalloff(t *testing.T) {
	pl := PointLight{Position: r3.Point{X: 0, Y: 0, Z: 0}, RadiantIntensity: Spectrum{X: 4, Y: 4, Z: 4}}
	require.NoError(t, pl.Validate())

	_, dist1, r1, pdf1, ok1 := pl.SampleLi(r3.Point{X: 1, Y: 0, Z: 0}, r2.Point{})
	_, dist2, r2v, pdf2, ok2 := pl.SampleLi(r3.Point{X: 2, Y: 0, Z: 0}, r2.Point{})
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, 1.0, pdf1)
	assert.Equal(t, 1.0, pdf2)
	assert.InDelta(t, 1.0, float64(dist1), 1e-9)
	assert.InDelta(t, 2.0, float64(dist2), 1e-9)
	// Doubling distance must quarter irradiance.
	assert.InDelta(t, r1.X/4, r2v.X, 1e-9)
}

func TestPointLightDegenerateAtOwnPosition(t *testing.T) {
	pl := PointLight{Position: r3.Point{X: 1, Y: 1, Z: 1}, RadiantIntensity: Spectrum{X: 1, Y: 1, Z: 1}}
	_, _, _, _, ok := pl.SampleLi(pl.Position, r2.Point{})
	assert.False(t, ok)
}

func TestAreaLightOneSidedEmitsOnlyFromFrontFace(t *testing.T) {
	disk := Disk{Center: r3.Point{X: 0, Y: 0, Z: 5}, Normal: r3.Vec{X: 0, Y: 0, Z: -1}, Radius: 1}
	al := AreaLight{Shape: disk, Emission: Spectrum{X: 1, Y: 1, Z: 1}}
	require.NoError(t, al.Validate())

	// Reference point below the disk, on the side the normal points toward.
	below := r3.Point{X: 0, Y: 0, Z: 0}
	wi, _, radiance, pdf, ok := al.SampleLi(below, r2.Point{X: 0.5, Y: 0.5})
	require.True(t, ok)
	assert.False(t, radiance.IsBlack())
	assert.Greater(t, pdf, 0.0)

	// Reference point on the back face should receive nothing.
	above := r3.Point{X: 0, Y: 0, Z: 10}
	_, _, radianceBack, _, okBack := al.SampleLi(above, r2.Point{X: 0.5, Y: 0.5})
	if okBack {
		assert.True(t, radianceBack.IsBlack())
	}
	_ = wi
}

func TestAreaLightTwoSidedEmitsFromBothFaces(t *testing.T) {
	quad := Quad{Center: r3.Point{X: 0, Y: 0, Z: 0}, Normal: r3.Vec{X: 0, Y: 0, Z: 1}, Width: 2, Height: 2}
	al := AreaLight{Shape: quad, Emission: Spectrum{X: 1, Y: 1, Z: 1}, TwoSided: true}

	front := r3.Point{X: 0, Y: 0, Z: 5}
	back := r3.Point{X: 0, Y: 0, Z: -5}
	_, _, rf, _, okf := al.SampleLi(front, r2.Point{X: 0.5, Y: 0.5})
	_, _, rb, _, okb := al.SampleLi(back, r2.Point{X: 0.5, Y: 0.5})
	require.True(t, okf)
	require.True(t, okb)
	assert.False(t, rf.IsBlack())
	assert.False(t, rb.IsBlack())
}

func TestAreaLightPdfLiMatchesSampleLiPdf(t *testing.T) {
	sphere := Sphere{Center: r3.Point{X: 0, Y: 0, Z: 0}, Radius: 1}
	al := AreaLight{Shape: sphere, Emission: Spectrum{X: 1, Y: 1, Z: 1}, TwoSided: true}
	ref := r3.Point{X: 0, Y: 0, Z: 5}

	rnd := rand.New(rand.NewSource(4))
	for i := 0; i < 8; i++ {
		u := r2.Point{X: rnd.Float64(), Y: rnd.Float64()}
		wi, _, _, pdf, ok := al.SampleLi(ref, u)
		if !ok || pdf == 0 {
			continue
		}
		assert.InDelta(t, al.PdfLi(ref, wi), pdf, 1e-6)
	}
}

func TestAreaLightIsNotDeltaPointLightIs(t *testing.T) {
	sphere := Sphere{Center: r3.Point{X: 0, Y: 0, Z: 0}, Radius: 1}
	al := AreaLight{Shape: sphere, Emission: Spectrum{X: 1, Y: 1, Z: 1}}
	pl := PointLight{Position: r3.Point{X: 0, Y: 0, Z: 0}, RadiantIntensity: Spectrum{X: 1, Y: 1, Z: 1}}
	assert.False(t, al.IsDelta())
	assert.True(t, pl.IsDelta())
}

func TestAreaLightValidateRequiresShape(t *testing.T) {
	al := AreaLight{}
	assert.Error(t, al.Validate())
}

func TestAreaLightSampleLiFallsOffWithSolidAngle(t *testing.T) {
	sphere := Sphere{Center: r3.Point{X: 0, Y: 0, Z: 0}, Radius: 1}
	al := AreaLight{Shape: sphere, Emission: Spectrum{X: 1, Y: 1, Z: 1}, TwoSided: true}

	near := r3.Point{X: 0, Y: 0, Z: 2}
	far := r3.Point{X: 0, Y: 0, Z: 10}
	_, _, _, pdfNear, okN := al.SampleLi(near, r2.Point{X: 0.5, Y: 0.5})
	_, _, _, pdfFar, okF := al.SampleLi(far, r2.Point{X: 0.5, Y: 0.5})
	require.True(t, okN)
	require.True(t, okF)
	// A farther reference point subtends a smaller solid angle per unit
	// area, so the solid-angle pdf of hitting the same point must be
	// larger (dist^2 grows faster than any change in foreshortening here).
	assert.Greater(t, pdfFar, pdfNear)
	assert.Greater(t, pdfNear, 0.0)
	_ = math.Pi
}
