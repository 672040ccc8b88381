// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"tracer/r2"
	"tracer/r3"
)

// LambertianReflection is a perfectly diffuse BRDF lobe: constant albedo/pi
// radiance in every direction over the hemisphere.
type LambertianReflection struct {
	R Spectrum
}

func (LambertianReflection) Type() BxDFType { return BSDFReflection | BSDFDiffuse }

func (l LambertianReflection) F(wo, wi r3.Vec) Spectrum {
	return l.R.Divs(math.Pi)
}

func (l LambertianReflection) Sample(wo r3.Vec, u r2.Point) (r3.Vec, Spectrum, float64, bool) {
	wi := cosineSampleHemisphere(u)
	if wo.Z < 0 {
		wi.Z = -wi.Z
	}
	return wi, l.F(wo, wi), l.Pdf(wo, wi), true
}

func (l LambertianReflection) Pdf(wo, wi r3.Vec) float64 {
	if !sameHemisphere(wo, wi) {
		return 0
	}
	return cosineHemispherePdf(absCosTheta(wi))
}

// OrenNayar is a microfacet-motivated diffuse BRDF accounting for surface
// roughness (rough diffuse materials like clay or unglazed ceramics look
// flatter / less Lambertian-falloff at grazing angles).
type OrenNayar struct {
	R     Spectrum
	A, B  float64 // Precomputed from sigma (roughness, in radians).
}

// NewOrenNayar builds an OrenNayar lobe from a roughness given as the
// standard deviation of the microfacet orientation angle, in radians.
func NewOrenNayar(r Spectrum, sigma float64) OrenNayar {
	s2 := sigma * sigma
	return OrenNayar{
		R: r,
		A: 1 - (s2 / (2 * (s2 + 0.33))),
		B: 0.45 * s2 / (s2 + 0.09),
	}
}

func (OrenNayar) Type() BxDFType { return BSDFReflection | BSDFDiffuse }

func (o OrenNayar) F(wo, wi r3.Vec) Spectrum {
	sinThetaI := sinTheta(wi)
	sinThetaO := sinTheta(wo)
	maxCos := 0.0
	if sinThetaI > 1e-4 && sinThetaO > 1e-4 {
		dCos := cosPhi(wi)*cosPhi(wo) + sinPhi(wi)*sinPhi(wo)
		maxCos = math.Max(0, dCos)
	}
	var sinAlpha, tanBeta float64
	if absCosTheta(wi) > absCosTheta(wo) {
		sinAlpha = sinThetaO
		tanBeta = sinThetaI / absCosTheta(wi)
	} else {
		sinAlpha = sinThetaI
		tanBeta = sinThetaO / absCosTheta(wo)
	}
	return o.R.Divs(math.Pi).Muls(o.A + o.B*maxCos*sinAlpha*tanBeta)
}

func (o OrenNayar) Sample(wo r3.Vec, u r2.Point) (r3.Vec, Spectrum, float64, bool) {
	wi := cosineSampleHemisphere(u)
	if wo.Z < 0 {
		wi.Z = -wi.Z
	}
	return wi, o.F(wo, wi), o.Pdf(wo, wi), true
}

func (o OrenNayar) Pdf(wo, wi r3.Vec) float64 {
	if !sameHemisphere(wo, wi) {
		return 0
	}
	return cosineHemispherePdf(absCosTheta(wi))
}
