// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"fmt"

	"tracer/r3"
)

// MeasuredMaterial wraps a tabulated MERL BRDF (bxdf_merl.go) as a
// Material so measured real-world reflectance data can be dropped into a
// scene alongside the analytic BxDF-based materials.
type MeasuredMaterial struct {
	Table MERLTable
}

func (m MeasuredMaterial) Validate() error {
	if len(m.Table.Red) == 0 || len(m.Table.Green) == 0 || len(m.Table.Blue) == 0 {
		return fmt.Errorf("MeasuredMaterial: empty MERL table")
	}
	return nil
}

func (m MeasuredMaterial) ComputeScatteringFunctions(col collision) *BSDF {
	return NewBSDF(col.normal, col.ng, col.dpdu, 1, MERLBxDF{Table: m.Table})
}

func (m MeasuredMaterial) Emission(col collision, wo r3.Vec) Spectrum { return Spectrum{} }

func init() {
	RegisterInterfaceType(MeasuredMaterial{})
}
