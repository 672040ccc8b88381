// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import (
	"fmt"

	"tracer/r3"
)

// Metal is a conductor: a Fresnel-conductor-weighted specular lobe when
// Roughness is zero, or a Torrance-Sparrow microfacet lobe otherwise.
// Eta and K are the real and imaginary parts of the complex index of
// refraction per channel. Supersedes the teacher's Schlick-fuzz
// approximation (microfacet.go's MicrofacetBRDF) with a named conductor
// Fresnel term.
type Metal struct {
	Eta       Spectrum
	K         Spectrum
	Roughness float64
}

func (m Metal) Validate() error {
	if m.Eta.X < 0 || m.Eta.Y < 0 || m.Eta.Z < 0 {
		return fmt.Errorf("invalid Metal eta must be positive")
	}
	if m.Roughness < 0 || m.Roughness > 1 {
		return fmt.Errorf("invalid Metal roughness must be in the range [0, 1]")
	}
	return nil
}

func (m Metal) fresnel() FresnelConductor {
	one := Spectrum{X: 1, Y: 1, Z: 1}
	return FresnelConductor{EtaI: one, EtaT: m.Eta, K: m.K}
}

func (m Metal) ComputeScatteringFunctions(col collision) *BSDF {
	white := Spectrum{X: 1, Y: 1, Z: 1}
	if m.Roughness == 0 {
		return NewBSDF(col.normal, col.ng, col.dpdu, 1, SpecularReflection{R: white, Fresnel: m.fresnel()})
	}
	alpha := RoughnessToAlpha(m.Roughness)
	distrib := GGXDistribution{AlphaX: alpha, AlphaY: alpha}
	return NewBSDF(col.normal, col.ng, col.dpdu, 1, TorranceSparrow{R: white, Distrib: distrib, FresnelFunc: m.fresnel()})
}

func (m Metal) Emission(col collision, wo r3.Vec) Spectrum { return Spectrum{} }

func init() {
	RegisterInterfaceType(Metal{})
}
