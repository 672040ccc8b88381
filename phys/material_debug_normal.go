// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

// Package phys implements physically based materials and utility shaders used by
// the raytracer. Package phys follows the Go standard library conventions and
// avoids hidden global state.
package phys

import (
	"math"

	"tracer/r3"
)

// DebugNormal draws the surface normal as a false-color visualization.
//
// The zero value is ready for use. DebugNormal has no internal state and
// therefore provides no concurrency hazards; values are safe for concurrent
// use by multiple goroutines.
type DebugNormal struct{}

func (m DebugNormal) Validate() error {
	return nil
}

func (m DebugNormal) ComputeScatteringFunctions(col collision) *BSDF {
	return nil
}

// Emission encodes the unit shading normal in RGB as:
//
//	R = (nx + 1) / 2
//	G = (ny + 1) / 2
//	B = (nz + 1) / 2
func (m DebugNormal) Emission(col collision, wo r3.Vec) Spectrum {
	n := col.normal
	length := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if !(length > 0) { // catches 0 and NaN
		length = 1
	}
	r := 0.5 * (n.X/length + 1.0)
	g := 0.5 * (n.Y/length + 1.0)
	b := 0.5 * (n.Z/length + 1.0)
	return Spectrum{X: clampf(r, 0, 1), Y: clampf(g, 0, 1), Z: clampf(b, 0, 1)}
}

func init() {
	RegisterInterfaceType(DebugNormal{})
}
