// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import (
	"fmt"

	"tracer/r3"
)

// Dielectric is a smooth-or-rough transmissive material (glass, water,
// gems): a Fresnel-weighted pair of specular reflection/transmission lobes
// when Roughness is zero, or their microfacet (Torrance-Sparrow /
// Walter et al.) counterparts otherwise. Supersedes the teacher's ad hoc
// Schlick-reflectance implementation with proper Fresnel dielectric BxDFs.
type Dielectric struct {
	RefractiveIndexInterior float64
	RefractiveIndexExterior float64
	Roughness               float64 // 0 = perfectly smooth (Glass); >0 = RoughGlass.
	Tint                    Spectrum
}

func (m Dielectric) Validate() error {
	if m.RefractiveIndexInterior < 1 || m.RefractiveIndexExterior < 1 {
		return fmt.Errorf("invalid Dielectric refractive index: %v", m)
	}
	if m.Roughness < 0 || m.Roughness > 1 {
		return fmt.Errorf("invalid Dielectric roughness: %v", m)
	}
	return nil
}

func (m Dielectric) tint() Spectrum {
	if m.Tint.IsBlack() {
		return Spectrum{X: 1, Y: 1, Z: 1}
	}
	return m.Tint
}

func (m Dielectric) ComputeScatteringFunctions(col collision) *BSDF {
	etaA, etaB := m.RefractiveIndexExterior, m.RefractiveIndexInterior
	tint := m.tint()
	if m.Roughness == 0 {
		refl := SpecularReflection{R: tint, Fresnel: FresnelDielectric{EtaI: etaA, EtaT: etaB}}
		trans := NewSpecularTransmission(tint, etaA, etaB)
		return NewBSDF(col.normal, col.ng, col.dpdu, etaB/etaA, refl, trans)
	}
	alpha := RoughnessToAlpha(m.Roughness)
	distrib := BeckmannDistribution{AlphaX: alpha, AlphaY: alpha}
	refl := TorranceSparrow{R: tint, Distrib: distrib, FresnelFunc: FresnelDielectric{EtaI: etaA, EtaT: etaB}}
	trans := NewMicrofacetTransmission(tint, distrib, etaA, etaB)
	return NewBSDF(col.normal, col.ng, col.dpdu, etaB/etaA, refl, trans)
}

func (m Dielectric) Emission(col collision, wo r3.Vec) Spectrum { return Spectrum{} }

func init() {
	RegisterInterfaceType(Dielectric{})
}
