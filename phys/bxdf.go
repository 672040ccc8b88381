// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"tracer/r2"
	"tracer/r3"
)

// BxDFType flags classify a BxDF by the kind of scattering it performs.
// BSDF uses them to restrict eval/sample/pdf to a subset of its lobes, e.g.
// light-sampling code must skip specular lobes since they have zero
// probability of matching any single given direction.
type BxDFType int

const (
	BSDFReflection   BxDFType = 1 << iota
	BSDFTransmission          // mutually exclusive with BSDFReflection
	BSDFDiffuse
	BSDFGlossy
	BSDFSpecular
	BSDFAll = BSDFReflection | BSDFTransmission | BSDFDiffuse | BSDFGlossy | BSDFSpecular
)

func (t BxDFType) matches(flags BxDFType) bool {
	return t&flags == t
}

// BxDF models a single scattering lobe in shading space, where the local
// z axis is the shading normal. wo and wi both point away from the surface.
type BxDF interface {
	Type() BxDFType
	// F evaluates the BxDF for a pair of directions; it returns zero for
	// BxDFs whose Type includes BSDFSpecular, whose value comes from Sample.
	F(wo, wi r3.Vec) Spectrum
	// Sample imports an outgoing direction and two canonical random samples,
	// and returns an incident direction, the BxDF value, and its pdf with
	// respect to solid angle. ok is false when no valid direction exists
	// (e.g. total internal reflection).
	Sample(wo r3.Vec, u r2.Point) (wi r3.Vec, f Spectrum, pdf float64, ok bool)
	// Pdf returns the solid-angle density Sample would have produced wi
	// with, for non-specular BxDFs.
	Pdf(wo, wi r3.Vec) float64
}

// Shading-space trigonometric helpers. All operate on directions expressed
// in the local frame where z is the shading normal.

func cosTheta(w r3.Vec) float64  { return w.Z }
func cos2Theta(w r3.Vec) float64 { return w.Z * w.Z }
func absCosTheta(w r3.Vec) float64 {
	return math.Abs(w.Z)
}
func sin2Theta(w r3.Vec) float64 {
	return math.Max(0, 1-cos2Theta(w))
}
func sinTheta(w r3.Vec) float64 { return math.Sqrt(sin2Theta(w)) }
func tanTheta(w r3.Vec) float64 { return sinTheta(w) / cosTheta(w) }
func tan2Theta(w r3.Vec) float64 {
	return sin2Theta(w) / cos2Theta(w)
}

func cosPhi(w r3.Vec) float64 {
	st := sinTheta(w)
	if st == 0 {
		return 1
	}
	return clampf(w.X/st, -1, 1)
}
func sinPhi(w r3.Vec) float64 {
	st := sinTheta(w)
	if st == 0 {
		return 0
	}
	return clampf(w.Y/st, -1, 1)
}

func sameHemisphere(a, b r3.Vec) bool {
	return a.Z*b.Z > 0
}

func clampf(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// cosineSampleHemisphere draws a direction over the hemisphere z>0 with
// density proportional to cos(theta), via Malley's method on a
// concentric-mapped disk sample.
func cosineSampleHemisphere(u r2.Point) r3.Vec {
	d := concentricSampleDisk(u)
	z := math.Sqrt(math.Max(0, 1-d.X*d.X-d.Y*d.Y))
	return r3.Vec{X: d.X, Y: d.Y, Z: z}
}

func cosineHemispherePdf(cosTheta float64) float64 {
	return cosTheta / math.Pi
}

// concentricSampleDisk maps a unit square sample to a unit disk using
// Shirley & Chiu's concentric mapping, which avoids the distortion of a
// naive polar mapping.
func concentricSampleDisk(u r2.Point) r2.Point {
	ox := 2*u.X - 1
	oy := 2*u.Y - 1
	if ox == 0 && oy == 0 {
		return r2.Point{}
	}
	var r, theta float64
	if math.Abs(ox) > math.Abs(oy) {
		r = ox
		theta = (math.Pi / 4) * (oy / ox)
	} else {
		r = oy
		theta = (math.Pi / 2) - (math.Pi/4)*(ox/oy)
	}
	return r2.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}
