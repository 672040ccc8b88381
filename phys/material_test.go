// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracer/r2"
	"tracer/r3"
)

func flatCollision() collision {
	return collision{
		at:     r3.Point{X: 0, Y: 0, Z: 0},
		uv:     r2.Point{X: 0.5, Y: 0.5},
		normal: r3.Vec{X: 0, Y: 0, Z: 1},
		ng:     r3.Vec{X: 0, Y: 0, Z: 1},
		dpdu:   r3.Vec{X: 1, Y: 0, Z: 0},
	}
}

func TestMatteSigmaZeroIsLambertian(t *testing.T) {
	m := Matte{Texture: TextureUniform{Color: Spectrum{X: 0.5, Y: 0.5, Z: 0.5}}}
	require.NoError(t, m.Validate())
	bsdf := m.ComputeScatteringFunctions(flatCollision())
	require.NotNil(t, bsdf)
	assert.Equal(t, 1, bsdf.NumComponents(BSDFAll))
	assert.True(t, bsdf.HasNonSpecular())
	assert.True(t, m.Emission(flatCollision(), r3.Vec{X: 0, Y: 0, Z: 1}).IsBlack())
}

func TestMatteSigmaPositiveIsOrenNayar(t *testing.T) {
	m := Matte{Texture: TextureUniform{Color: Spectrum{X: 0.5, Y: 0.5, Z: 0.5}}, Sigma: 20}
	bsdf := m.ComputeScatteringFunctions(flatCollision())
	woW := r3.Vec{X: 0, Y: 0, Z: 1}
	wiW := r3.Vec{X: 0.1, Y: 0.2, Z: 0.97}.Unit()
	// A nonzero Sigma should diverge from the pure 1/pi Lambertian value at
	// grazing-ish angles (Oren-Nayar's whole point).
	lamb := Matte{Texture: m.Texture}.ComputeScatteringFunctions(flatCollision())
	assert.NotEqual(t, lamb.F(woW, wiW, BSDFAll), bsdf.F(woW, wiW, BSDFAll))
}

func TestMetalSmoothIsPureSpecular(t *testing.T) {
	m := Metal{Eta: Spectrum{X: 0.2, Y: 0.9, Z: 1.1}, K: Spectrum{X: 3, Y: 2.5, Z: 2}}
	require.NoError(t, m.Validate())
	bsdf := m.ComputeScatteringFunctions(flatCollision())
	woW := r3.Vec{X: 0.2, Y: 0.1, Z: 0.97}.Unit()
	wiW, _, pdf, sampledType, ok := bsdf.SampleF(woW, r2.Point{}, 0, BSDFAll)
	require.True(t, ok)
	assert.Equal(t, 1.0, pdf)
	assert.NotZero(t, sampledType&BSDFSpecular)
	assert.InDelta(t, woW.X, -wiW.X, 1e-9)
}

func TestMetalRoughIsGlossy(t *testing.T) {
	m := Metal{Eta: Spectrum{X: 0.2, Y: 0.9, Z: 1.1}, K: Spectrum{X: 3, Y: 2.5, Z: 2}, Roughness: 0.4}
	bsdf := m.ComputeScatteringFunctions(flatCollision())
	assert.True(t, bsdf.HasNonSpecular())
}

func TestMetalValidateRejectsNegativeEta(t *testing.T) {
	m := Metal{Eta: Spectrum{X: -1, Y: 1, Z: 1}}
	assert.Error(t, m.Validate())
}

func TestPlasticCombinesDiffuseAndSpecularLobes(t *testing.T) {
	p := Plastic{
		Diffuse:  TextureUniform{Color: Spectrum{X: 0.4, Y: 0.4, Z: 0.4}},
		Specular: TextureUniform{Color: Spectrum{X: 0.2, Y: 0.2, Z: 0.2}},
	}
	require.NoError(t, p.Validate())
	bsdf := p.ComputeScatteringFunctions(flatCollision())
	assert.Equal(t, 2, bsdf.NumComponents(BSDFAll))
}

func TestPlasticSkipsBlackLobes(t *testing.T) {
	p := Plastic{
		Diffuse:  TextureUniform{Color: Spectrum{}},
		Specular: TextureUniform{Color: Spectrum{X: 0.2, Y: 0.2, Z: 0.2}},
	}
	bsdf := p.ComputeScatteringFunctions(flatCollision())
	assert.Equal(t, 1, bsdf.NumComponents(BSDFAll))
}

func TestDielectricSmoothIsReflectionPlusTransmission(t *testing.T) {
	d := Dielectric{RefractiveIndexInterior: 1.5, RefractiveIndexExterior: 1.0}
	require.NoError(t, d.Validate())
	bsdf := d.ComputeScatteringFunctions(flatCollision())
	assert.Equal(t, 2, bsdf.NumComponents(BSDFAll))
	assert.InDelta(t, 1.5, bsdf.Eta(), 1e-9)
}

func TestDielectricValidateRejectsSubUnityIndex(t *testing.T) {
	d := Dielectric{RefractiveIndexInterior: 0.9, RefractiveIndexExterior: 1.0}
	assert.Error(t, d.Validate())
}

func TestEmitterIsOneSidedAndHasNoBSDF(t *testing.T) {
	e := Emitter{Texture: TextureUniform{Color: Spectrum{X: 2, Y: 2, Z: 2}}}
	require.NoError(t, e.Validate())
	assert.Nil(t, e.ComputeScatteringFunctions(flatCollision()))

	col := flatCollision()
	front := e.Emission(col, r3.Vec{X: 0, Y: 0, Z: 1})
	back := e.Emission(col, r3.Vec{X: 0, Y: 0, Z: -1})
	assert.False(t, front.IsBlack())
	assert.True(t, back.IsBlack())
}
