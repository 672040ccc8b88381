// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"tracer/r2"
	"tracer/r3"
)

// BSDF composes one or more BxDF lobes at a surface point and handles the
// world-space <-> shading-space transform. Grounded on the original
// renderer's BSDF (src/bxdf/bsdf.rs): the shading tangent is built from the
// geometric dp/du, and reflection/transmission are distinguished by the
// sign of wo/wi against the geometric (not shading) normal, so a bump- or
// normal-mapped shading normal can never flip a ray from reflecting to
// transmitting or vice versa.
type BSDF struct {
	ns, ng   r3.Vec // Shading and geometric normals.
	ss, ts   r3.Vec // Shading tangent and bitangent.
	bxdfs    []BxDF
	eta      float64 // Relative index of refraction, interior/exterior, for transmissive surfaces.
}

// NewBSDF builds a shading frame from a collision's shading normal and
// surface tangent (dp/du), and appends the given lobes.
func NewBSDF(ns, ng, dpdu r3.Vec, eta float64, bxdfs ...BxDF) *BSDF {
	ss := dpdu.Sub(ns.Muls(ns.Dot(dpdu)))
	if ss.Length() < 1e-8 {
		// Degenerate tangent (e.g. pole of a UV sphere): fall back to any
		// vector orthogonal to ns.
		ss = arbitraryOrthogonal(ns)
	}
	ss = ss.Unit()
	ts := ns.Cross(ss)
	if eta == 0 {
		eta = 1
	}
	return &BSDF{ns: ns, ng: ng, ss: ss, ts: ts, bxdfs: bxdfs, eta: eta}
}

func arbitraryOrthogonal(n r3.Vec) r3.Vec {
	if math.Abs(n.X) > math.Abs(n.Y) {
		return r3.Vec{X: -n.Z, Y: 0, Z: n.X}
	}
	return r3.Vec{X: 0, Y: n.Z, Z: -n.Y}
}

func (b *BSDF) toShading(v r3.Vec) r3.Vec {
	return r3.Vec{X: v.Dot(b.ss), Y: v.Dot(b.ts), Z: v.Dot(b.ns)}
}

func (b *BSDF) fromShading(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: b.ss.X*v.X + b.ts.X*v.Y + b.ns.X*v.Z,
		Y: b.ss.Y*v.X + b.ts.Y*v.Y + b.ns.Y*v.Z,
		Z: b.ss.Z*v.X + b.ts.Z*v.Y + b.ns.Z*v.Z,
	}
}

// NumComponents counts the lobes matching flags.
func (b *BSDF) NumComponents(flags BxDFType) int {
	n := 0
	for _, f := range b.bxdfs {
		if f.Type().matches(flags) {
			n++
		}
	}
	return n
}

// F evaluates the sum of every lobe whose reflect/transmit class matches
// the geometric relationship between woW and wiW, restricted to flags.
func (b *BSDF) F(woW, wiW r3.Vec, flags BxDFType) Spectrum {
	wo := b.toShading(woW)
	wi := b.toShading(wiW)
	if wo.Z == 0 {
		return Spectrum{}
	}
	reflect := wiW.Dot(b.ng)*woW.Dot(b.ng) > 0
	var f Spectrum
	for _, bx := range b.bxdfs {
		if !bx.Type().matches(flags) {
			continue
		}
		t := bx.Type()
		if (reflect && t&BSDFReflection != 0) || (!reflect && t&BSDFTransmission != 0) {
			f = f.Add(bx.F(wo, wi))
		}
	}
	return f
}

// SampleF samples one matching lobe uniformly, reuses its sample as the
// BSDF-wide direction, and returns an MIS-correct pdf: the average of all
// matching lobes' pdfs at that direction (plus their F, summed, for
// non-specular lobes so the estimator isn't biased toward the one lobe
// sampled).
func (b *BSDF) SampleF(woW r3.Vec, u r2.Point, uComponent float64, flags BxDFType) (wiW r3.Vec, f Spectrum, pdf float64, sampledType BxDFType, ok bool) {
	matching := b.NumComponents(flags)
	if matching == 0 {
		return r3.Vec{}, Spectrum{}, 0, 0, false
	}
	comp := int(uComponent * float64(matching))
	if comp == matching {
		comp = matching - 1
	}
	var chosen BxDF
	count := 0
	for _, bx := range b.bxdfs {
		if !bx.Type().matches(flags) {
			continue
		}
		if count == comp {
			chosen = bx
			break
		}
		count++
	}

	wo := b.toShading(woW)
	if wo.Z == 0 {
		return r3.Vec{}, Spectrum{}, 0, 0, false
	}
	wi, sf, spdf, sok := chosen.Sample(wo, u)
	if !sok || spdf == 0 {
		return r3.Vec{}, Spectrum{}, 0, 0, false
	}
	sampledType = chosen.Type()
	wiW = b.fromShading(wi)

	if sampledType&BSDFSpecular == 0 && matching > 1 {
		pdf = 0
		for _, bx := range b.bxdfs {
			if bx != chosen && bx.Type().matches(flags) {
				pdf += bx.Pdf(wo, wi)
			}
		}
		pdf += spdf
		pdf /= float64(matching)
	} else {
		pdf = spdf
	}

	if sampledType&BSDFSpecular != 0 {
		f = sf
	} else {
		f = b.F(woW, wiW, flags)
	}
	return wiW, f, pdf, sampledType, true
}

// Pdf returns the MIS-combined pdf of sampling wiW via SampleF with these
// flags, used by light-sampling code computing the BSDF-sampling half of
// the power heuristic.
func (b *BSDF) Pdf(woW, wiW r3.Vec, flags BxDFType) float64 {
	matching := b.NumComponents(flags)
	if matching == 0 {
		return 0
	}
	wo := b.toShading(woW)
	wi := b.toShading(wiW)
	if wo.Z == 0 {
		return 0
	}
	var pdf float64
	for _, bx := range b.bxdfs {
		if bx.Type().matches(flags) {
			pdf += bx.Pdf(wo, wi)
		}
	}
	return pdf / float64(matching)
}

// Eta returns the relative index of refraction recorded for this surface.
func (b *BSDF) Eta() float64 { return b.eta }

// HasNonSpecular reports whether any lobe is not a delta distribution.
func (b *BSDF) HasNonSpecular() bool {
	for _, bx := range b.bxdfs {
		if bx.Type()&BSDFSpecular == 0 {
			return true
		}
	}
	return false
}
