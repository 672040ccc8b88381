// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"tracer/r2"
	"tracer/r3"
)

// TorranceSparrow is the classic microfacet reflection model: a Fresnel
// term, a microfacet normal distribution, and a Smith masking-shadowing
// term combined over the half-angle vector. Supersedes the teacher's ad
// hoc microfacet.go MicrofacetBRDF with the named-distribution version.
type TorranceSparrow struct {
	R           Spectrum
	Distrib     MicrofacetDistribution
	FresnelFunc Fresnel
}

func (TorranceSparrow) Type() BxDFType { return BSDFReflection | BSDFGlossy }

func (t TorranceSparrow) F(wo, wi r3.Vec) Spectrum {
	cosThetaO := absCosTheta(wo)
	cosThetaI := absCosTheta(wi)
	if cosThetaO == 0 || cosThetaI == 0 {
		return Spectrum{}
	}
	wh := wi.Add(wo)
	if wh.IsZero() {
		return Spectrum{}
	}
	wh = wh.Unit()
	fr := t.FresnelFunc.Evaluate(wi.Dot(wh))
	d := t.Distrib.D(wh)
	g := smithG(t.Distrib, wo, wi)
	return t.R.Mul(fr).Muls(d * g / (4 * cosThetaI * cosThetaO))
}

func (t TorranceSparrow) Sample(wo r3.Vec, u r2.Point) (r3.Vec, Spectrum, float64, bool) {
	if wo.Z == 0 {
		return r3.Vec{}, Spectrum{}, 0, false
	}
	wh := t.Distrib.Sample(wo, u)
	wi := reflectVec(wo, wh)
	if !sameHemisphere(wo, wi) {
		return r3.Vec{}, Spectrum{}, 0, false
	}
	pdf := t.Distrib.Pdf(wo, wh) / (4 * wo.Dot(wh))
	return wi, t.F(wo, wi), pdf, true
}

func (t TorranceSparrow) Pdf(wo, wi r3.Vec) float64 {
	if !sameHemisphere(wo, wi) {
		return 0
	}
	wh := wo.Add(wi).Unit()
	return t.Distrib.Pdf(wo, wh) / (4 * wo.Dot(wh))
}

// MicrofacetTransmission is the rough-refraction BTDF of Walter et al.
// 2007, transporting light between two dielectric media through a rough
// interface described by Distrib.
type MicrofacetTransmission struct {
	T          Spectrum
	Distrib    MicrofacetDistribution
	EtaA, EtaB float64
	fresnel    FresnelDielectric
}

func NewMicrofacetTransmission(t Spectrum, d MicrofacetDistribution, etaA, etaB float64) MicrofacetTransmission {
	return MicrofacetTransmission{T: t, Distrib: d, EtaA: etaA, EtaB: etaB, fresnel: FresnelDielectric{EtaI: etaA, EtaT: etaB}}
}

func (MicrofacetTransmission) Type() BxDFType { return BSDFTransmission | BSDFGlossy }

func (m MicrofacetTransmission) eta(wo r3.Vec) (etaI, etaT float64) {
	if cosTheta(wo) > 0 {
		return m.EtaA, m.EtaB
	}
	return m.EtaB, m.EtaA
}

func (m MicrofacetTransmission) F(wo, wi r3.Vec) Spectrum {
	if sameHemisphere(wo, wi) {
		return Spectrum{} // Transmission only; reflection handled by a separate lobe.
	}
	cosThetaO := cosTheta(wo)
	cosThetaI := cosTheta(wi)
	if cosThetaO == 0 || cosThetaI == 0 {
		return Spectrum{}
	}
	etaI, etaT := m.eta(wo)
	eta := etaT / etaI
	wh := wo.Add(wi.Muls(eta)).Unit()
	if wh.Z < 0 {
		wh = wh.Muls(-1)
	}
	if wo.Dot(wh)*wi.Dot(wh) > 0 {
		return Spectrum{} // wo and wi on the same side of wh: not a valid refraction.
	}
	fr := m.fresnel.Evaluate(wo.Dot(wh))
	one := Spectrum{X: 1, Y: 1, Z: 1}
	sqrtDenom := wo.Dot(wh) + eta*wi.Dot(wh)
	factor := 1 / eta // Radiance transport scale, camera rays only.
	d := m.Distrib.D(wh)
	g := smithG(m.Distrib, wo, wi)
	c := math.Abs(d*g*eta*eta*math.Abs(wi.Dot(wh))*math.Abs(wo.Dot(wh))*factor*factor/
		(cosThetaI * cosThetaO * sqrtDenom * sqrtDenom))
	return one.Sub(fr).Mul(m.T).Muls(c)
}

func (m MicrofacetTransmission) Sample(wo r3.Vec, u r2.Point) (r3.Vec, Spectrum, float64, bool) {
	if wo.Z == 0 {
		return r3.Vec{}, Spectrum{}, 0, false
	}
	wh := m.Distrib.Sample(wo, u)
	etaI, etaT := m.eta(wo)
	wi, ok := refractVec(wo, faceForward(wh, wo), etaI/etaT)
	if !ok {
		return r3.Vec{}, Spectrum{}, 0, false
	}
	return wi, m.F(wo, wi), m.Pdf(wo, wi), true
}

func (m MicrofacetTransmission) Pdf(wo, wi r3.Vec) float64 {
	if sameHemisphere(wo, wi) {
		return 0
	}
	etaI, etaT := m.eta(wo)
	eta := etaT / etaI
	wh := wo.Add(wi.Muls(eta)).Unit()
	if wh.Z < 0 {
		wh = wh.Muls(-1)
	}
	sqrtDenom := wo.Dot(wh) + eta*wi.Dot(wh)
	dwhDwi := math.Abs((eta * eta * wi.Dot(wh)) / (sqrtDenom * sqrtDenom))
	return m.Distrib.Pdf(wo, wh) * dwhDwi
}
