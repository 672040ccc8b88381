// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"tracer/r2"
	"tracer/r3"
)

// MicrofacetDistribution describes the statistical distribution of
// microfacet normals over a rough surface, and the Smith masking-shadowing
// function associated with that distribution. Generalizes the teacher's ad
// hoc MicrofacetBRDF (microfacet.go) into the named Beckmann/GGX models
// used by Torrance-Sparrow and the microfacet BTDF.
type MicrofacetDistribution interface {
	// D evaluates the differential area of microfacets with normal wh (in
	// shading space).
	D(wh r3.Vec) float64
	// Lambda is the auxiliary function used to build the Smith G term.
	Lambda(w r3.Vec) float64
	// Sample importance-samples a microfacet normal visible from wo.
	Sample(wo r3.Vec, u r2.Point) r3.Vec
	// Pdf returns the density Sample would produce wh with.
	Pdf(wo, wh r3.Vec) float64
}

// g1 returns the Smith masking-shadowing term for a single direction.
func g1(d MicrofacetDistribution, w r3.Vec) float64 {
	return 1 / (1 + d.Lambda(w))
}

// smithG returns the Smith joint masking-shadowing term, treating masking and
// shadowing as independent (the standard approximation, not the more exact
// height-correlated form).
func smithG(d MicrofacetDistribution, wo, wi r3.Vec) float64 {
	return 1 / (1 + d.Lambda(wo) + d.Lambda(wi))
}

// BeckmannDistribution is the Gaussian-slope microfacet model of Beckmann
// and Spizzichino, parameterized by alpha roughness along each shading
// tangent axis.
type BeckmannDistribution struct {
	AlphaX, AlphaY float64
}

func RoughnessToAlpha(roughness float64) float64 {
	roughness = math.Max(roughness, 1e-3)
	x := math.Log(roughness)
	return 1.62142 + 0.819955*x + 0.1734*x*x + 0.0171201*x*x*x + 0.000640711*x*x*x*x
}

func (d BeckmannDistribution) D(wh r3.Vec) float64 {
	tan2 := tan2Theta(wh)
	if math.IsInf(tan2, 1) {
		return 0
	}
	cos4 := cos2Theta(wh) * cos2Theta(wh)
	e := tan2 * (cosPhi(wh)*cosPhi(wh)/(d.AlphaX*d.AlphaX) + sinPhi(wh)*sinPhi(wh)/(d.AlphaY*d.AlphaY))
	return math.Exp(-e) / (math.Pi * d.AlphaX * d.AlphaY * cos4)
}

func (d BeckmannDistribution) Lambda(w r3.Vec) float64 {
	absTanTheta := math.Abs(tanTheta(w))
	if math.IsInf(absTanTheta, 1) {
		return 0
	}
	alpha := math.Sqrt(cosPhi(w)*cosPhi(w)*d.AlphaX*d.AlphaX + sinPhi(w)*sinPhi(w)*d.AlphaY*d.AlphaY)
	a := 1 / (alpha * absTanTheta)
	if a >= 1.6 {
		return 0
	}
	return (1 - 1.259*a + 0.396*a*a) / (3.535*a + 2.181*a*a)
}

func (d BeckmannDistribution) Sample(wo r3.Vec, u r2.Point) r3.Vec {
	// Isotropic Beckmann sample-by-slope using AlphaX only; AlphaY is not
	// used, so the samples follow Pdf only when AlphaX == AlphaY.
	logSample := math.Log(1 - u.X)
	if math.IsInf(logSample, -1) {
		logSample = 0
	}
	tan2Theta := -d.AlphaX * d.AlphaX * logSample
	phi := u.Y * 2 * math.Pi
	cosT := 1 / math.Sqrt(1+tan2Theta)
	sinT := math.Sqrt(math.Max(0, 1-cosT*cosT))
	wh := r3.Vec{X: sinT * math.Cos(phi), Y: sinT * math.Sin(phi), Z: cosT}
	if !sameHemisphere(wo, wh) {
		wh = wh.Muls(-1)
	}
	return wh
}

func (d BeckmannDistribution) Pdf(wo, wh r3.Vec) float64 {
	return d.D(wh) * absCosTheta(wh)
}

// GGXDistribution is the Trowbridge-Reitz / GGX microfacet model, which has
// a heavier tail than Beckmann and is generally preferred for matching
// measured metal and glass reflectance.
type GGXDistribution struct {
	AlphaX, AlphaY float64
}

func (d GGXDistribution) D(wh r3.Vec) float64 {
	tan2 := tan2Theta(wh)
	if math.IsInf(tan2, 1) {
		return 0
	}
	cos4 := cos2Theta(wh) * cos2Theta(wh)
	e := tan2 * (cosPhi(wh)*cosPhi(wh)/(d.AlphaX*d.AlphaX) + sinPhi(wh)*sinPhi(wh)/(d.AlphaY*d.AlphaY))
	denom := math.Pi * d.AlphaX * d.AlphaY * cos4 * (1 + e) * (1 + e)
	return 1 / denom
}

func (d GGXDistribution) Lambda(w r3.Vec) float64 {
	absTanTheta := math.Abs(tanTheta(w))
	if math.IsInf(absTanTheta, 1) {
		return 0
	}
	alpha := math.Sqrt(cosPhi(w)*cosPhi(w)*d.AlphaX*d.AlphaX + sinPhi(w)*sinPhi(w)*d.AlphaY*d.AlphaY)
	a2Tan2 := (alpha * absTanTheta) * (alpha * absTanTheta)
	return (-1 + math.Sqrt(1+a2Tan2)) / 2
}

func (d GGXDistribution) Sample(wo r3.Vec, u r2.Point) r3.Vec {
	cosTheta := 0.0
	phi := 2 * math.Pi * u.Y
	if d.AlphaX == d.AlphaY {
		tanTheta2 := d.AlphaX * d.AlphaX * u.X / (1 - u.X)
		cosTheta = 1 / math.Sqrt(1+tanTheta2)
	}
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	wh := r3.Vec{X: sinTheta * math.Cos(phi), Y: sinTheta * math.Sin(phi), Z: cosTheta}
	if !sameHemisphere(wo, wh) {
		wh = wh.Muls(-1)
	}
	return wh
}

func (d GGXDistribution) Pdf(wo, wh r3.Vec) float64 {
	return d.D(wh) * absCosTheta(wh)
}
