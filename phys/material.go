// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import "tracer/r3"

// The outgoing direction (wo) is the direction that light leaves the surface, heading toward the viewer or camera.
// The incoming direction (wi) is the direction from which light arrives at the surface point, coming from light sources or other surfaces.

// Material constructs the BSDF describing how a surface scatters light at
// a given collision, and reports any emitted radiance (for area lights
// backed by an emissive material). Unlike the teacher's original
// Resolve/ComputeDirectLighting pair, scattering and direct lighting are
// now decoupled: the path integrator (render.go) owns light sampling and
// MIS, and only asks materials for a BSDF to evaluate/sample against.
type Material interface {
	// ComputeScatteringFunctions builds the BSDF valid at this collision.
	ComputeScatteringFunctions(col collision) *BSDF
	// Emission returns radiance emitted toward wo from this collision, or
	// the zero spectrum for non-emissive materials.
	Emission(col collision, wo r3.Vec) Spectrum
	Validate() error
}
