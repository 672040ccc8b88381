// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"tracer/r2"
	"tracer/r3"
)

// MERL dimensions and channel scale factors match the MERL BRDF database's
// binary layout (Matusik et al. 2003): three channel tables indexed by a
// half-angle parameterization of (theta_h, theta_d, phi_d), each bucketed
// non-linearly in theta_h to concentrate resolution near the specular peak.
const (
	merlThetaHRes = 90
	merlThetaDRes = 90
	merlPhiDRes   = 360

	merlRedScale   = 1.0 / 1500.0
	merlGreenScale = 1.15 / 1500.0
	merlBlueScale  = 1.66 / 1500.0
)

// MERLTable holds a parsed MERL BRDF data file: three flattened channel
// tables of length merlThetaHRes*merlThetaDRes*(merlPhiDRes/2). Parsing the
// on-disk format is outside this module's scope; callers supply an
// already-loaded table (e.g. from an asset pipeline).
type MERLTable struct {
	Red, Green, Blue []float64
}

// MERLBxDF is a tabulated, measured isotropic BRDF looked up via the
// half-angle parameterization used by the MERL database. Grounded on
// src/bxdf/merl.rs's index formula:
// i = phi_d_idx + n_phi_d*(theta_d_idx + theta_h_idx*n_theta_d).
type MERLBxDF struct {
	Table MERLTable
}

func (MERLBxDF) Type() BxDFType { return BSDFReflection | BSDFGlossy }

func (m MERLBxDF) F(wo, wi r3.Vec) Spectrum {
	if !sameHemisphere(wo, wi) || absCosTheta(wo) < 1e-6 || absCosTheta(wi) < 1e-6 {
		return Spectrum{}
	}
	half := wo.Add(wi).Unit()
	thetaH := math.Acos(clampf(half.Z, -1, 1))

	// Rotate wi into the frame where half lies in the xz-plane to recover
	// theta_d, phi_d (the difference-angle parameterization).
	biNormal := r3.Vec{X: 0, Y: 1, Z: 0}
	normal := r3.Vec{X: 0, Y: 0, Z: 1}
	tmp := rotateAroundAxis(wi, normal, -math.Atan2(half.Y, half.X))
	diff := rotateAroundAxis(tmp, biNormal, -thetaH)
	thetaD := math.Acos(clampf(diff.Z, -1, 1))
	phiD := math.Atan2(diff.Y, diff.X)
	if phiD < 0 {
		phiD += math.Pi
	}

	thetaHIdx := merlThetaHIndex(thetaH)
	thetaDIdx := clampIdx(int(thetaD/(math.Pi/2)*merlThetaDRes), merlThetaDRes-1)
	phiDIdx := clampIdx(int(phiD/math.Pi*float64(merlPhiDRes)/2), merlPhiDRes/2-1)

	idx := phiDIdx + (merlPhiDRes/2)*(thetaDIdx+thetaHIdx*merlThetaDRes)
	if idx < 0 || idx >= len(m.Table.Red) {
		return Spectrum{}
	}
	return Spectrum{
		X: m.Table.Red[idx] * merlRedScale,
		Y: m.Table.Green[idx] * merlGreenScale,
		Z: m.Table.Blue[idx] * merlBlueScale,
	}
}

func merlThetaHIndex(thetaH float64) int {
	if thetaH <= 0 {
		return 0
	}
	v := math.Sqrt(thetaH / (math.Pi / 2))
	return clampIdx(int(v*merlThetaHRes), merlThetaHRes-1)
}

func clampIdx(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

func rotateAroundAxis(v, axis r3.Vec, angle float64) r3.Vec {
	cosA := math.Cos(angle)
	sinA := math.Sin(angle)
	return v.Muls(cosA).Add(axis.Cross(v).Muls(sinA)).Add(axis.Muls(axis.Dot(v) * (1 - cosA)))
}

func (m MERLBxDF) Sample(wo r3.Vec, u r2.Point) (r3.Vec, Spectrum, float64, bool) {
	wi := cosineSampleHemisphere(u)
	if wo.Z < 0 {
		wi.Z = -wi.Z
	}
	return wi, m.F(wo, wi), m.Pdf(wo, wi), true
}

func (m MERLBxDF) Pdf(wo, wi r3.Vec) float64 {
	if !sameHemisphere(wo, wi) {
		return 0
	}
	return cosineHemispherePdf(absCosTheta(wi))
}
