// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import "tracer/r3"

// Matte is a purely diffuse material: Lambertian when Sigma is zero, or
// Oren-Nayar (rougher, flatter falloff at grazing angles) when Sigma is
// positive. Supersedes the teacher's Lambertian, which resolved its own
// cosine-weighted scatter ray and ad hoc direct-lighting loop instead of
// exposing a BSDF for the integrator to drive.
type Matte struct {
	Texture Texture
	Sigma   float64 // Roughness, in degrees; 0 gives plain Lambertian.
}

func (m Matte) Validate() error {
	return m.Texture.Validate()
}

func (m Matte) ComputeScatteringFunctions(col collision) *BSDF {
	albedo := m.Texture.At(col.uv.X, col.uv.Y)
	var bxdf BxDF
	if m.Sigma == 0 {
		bxdf = LambertianReflection{R: albedo}
	} else {
		bxdf = NewOrenNayar(albedo, m.Sigma*degToRad)
	}
	return NewBSDF(col.normal, col.ng, col.dpdu, 1, bxdf)
}

func (m Matte) Emission(col collision, wo r3.Vec) Spectrum { return Spectrum{} }

const degToRad = 3.14159265358979323846 / 180

func init() {
	RegisterInterfaceType(Matte{})
}
