// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import (
	"math"

	"tracer/r3"
)

// DebugUV visualizes the UV coordinates as colors.
type DebugUV struct{}

func (m DebugUV) Validate() error {
	return nil
}

func (m DebugUV) ComputeScatteringFunctions(col collision) *BSDF {
	return nil
}

func (m DebugUV) Emission(col collision, wo r3.Vec) Spectrum {
	if col.uv.X < 0.0 || col.uv.X > 1.0 {
		return Spectrum{X: 1.0, Y: 0.0, Z: 0.0}
	}
	u := math.Min(math.Max(col.uv.X, 0.0), 1.0)
	v := math.Min(math.Max(col.uv.Y, 0.0), 1.0)
	return Spectrum{X: u, Y: v, Z: 0.5}
}

func init() {
	RegisterInterfaceType(DebugUV{})
}
