// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import "tracer/r3"

// Plastic combines a diffuse (Lambertian) base coat with a glossy
// dielectric specular highlight, the standard two-lobe plastic/coated
// model. Supplements the teacher's material set, which had no coated
// dielectric-over-diffuse combination.
type Plastic struct {
	Diffuse   Texture
	Specular  Texture
	Roughness float64
}

func (m Plastic) Validate() error {
	if err := m.Diffuse.Validate(); err != nil {
		return err
	}
	return m.Specular.Validate()
}

func (m Plastic) ComputeScatteringFunctions(col collision) *BSDF {
	kd := m.Diffuse.At(col.uv.X, col.uv.Y)
	ks := m.Specular.At(col.uv.X, col.uv.Y)
	bxdfs := make([]BxDF, 0, 2)
	if !kd.IsBlack() {
		bxdfs = append(bxdfs, LambertianReflection{R: kd})
	}
	if !ks.IsBlack() {
		alpha := RoughnessToAlpha(m.Roughness)
		distrib := BeckmannDistribution{AlphaX: alpha, AlphaY: alpha}
		fresnel := FresnelDielectric{EtaI: 1, EtaT: 1.5}
		bxdfs = append(bxdfs, TorranceSparrow{R: ks, Distrib: distrib, FresnelFunc: fresnel})
	}
	return NewBSDF(col.normal, col.ng, col.dpdu, 1, bxdfs...)
}

func (m Plastic) Emission(col collision, wo r3.Vec) Spectrum { return Spectrum{} }

func init() {
	RegisterInterfaceType(Plastic{})
}
