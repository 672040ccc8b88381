// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"tracer/r2"
	"tracer/r3"
)

// SpecularReflection is a delta-distribution mirror lobe: F and Pdf return
// zero for every pair of directions, and Sample always returns the single
// reflected direction with its value and a pdf of 1. Grounded on the original renderer's
// SpecularReflection::sample (src/bxdf/specular_reflection.rs).
type SpecularReflection struct {
	R       Spectrum
	Fresnel Fresnel
}

func (SpecularReflection) Type() BxDFType { return BSDFReflection | BSDFSpecular }

func (SpecularReflection) F(wo, wi r3.Vec) Spectrum { return Spectrum{} }

func (SpecularReflection) Pdf(wo, wi r3.Vec) float64 { return 0 }

func (s SpecularReflection) Sample(wo r3.Vec, u r2.Point) (r3.Vec, Spectrum, float64, bool) {
	wi := r3.Vec{X: -wo.X, Y: -wo.Y, Z: wo.Z}
	f := s.Fresnel.Evaluate(cosTheta(wi))
	pdf := 1.0
	c := f.Mul(s.R).Divs(absCosTheta(wi))
	return wi, c, pdf, true
}

// SpecularTransmission is a delta-distribution refraction lobe between two
// dielectric media with indices etaA (outside) and etaB (inside). Grounded
// on SpecularTransmission::sample (src/bxdf/specular_transmission.rs),
// including its entering/exiting eta selection.
type SpecularTransmission struct {
	T          Spectrum
	EtaA, EtaB float64
	fresnel    FresnelDielectric
}

func NewSpecularTransmission(t Spectrum, etaA, etaB float64) SpecularTransmission {
	return SpecularTransmission{T: t, EtaA: etaA, EtaB: etaB, fresnel: FresnelDielectric{EtaI: etaA, EtaT: etaB}}
}

func (SpecularTransmission) Type() BxDFType { return BSDFTransmission | BSDFSpecular }

func (SpecularTransmission) F(wo, wi r3.Vec) Spectrum { return Spectrum{} }

func (SpecularTransmission) Pdf(wo, wi r3.Vec) float64 { return 0 }

func (s SpecularTransmission) Sample(wo r3.Vec, u r2.Point) (r3.Vec, Spectrum, float64, bool) {
	entering := cosTheta(wo) > 0
	etaI, etaT := s.EtaA, s.EtaB
	if !entering {
		etaI, etaT = s.EtaB, s.EtaA
	}
	n := r3.Vec{X: 0, Y: 0, Z: 1}
	if !entering {
		n = n.Muls(-1)
	}
	wi, ok := refractVec(wo, n, etaI/etaT)
	if !ok {
		return r3.Vec{}, Spectrum{}, 0, false
	}
	ft := Spectrum{X: 1, Y: 1, Z: 1}.Sub(s.fresnel.Evaluate(cosTheta(wi)))
	ft = ft.Mul(s.T)
	// Radiance scales by (etaI/etaT)^2 when transporting importance rather
	// than radiance in a non-symmetric BSDF (camera rays only).
	ft = ft.Muls((etaI / etaT) * (etaI / etaT))
	pdf := 1.0
	c := ft.Divs(absCosTheta(wi))
	return wi, c, pdf, true
}
