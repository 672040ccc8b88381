// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"tracer/r2"
	"tracer/r3"
)

// uniformSampleSphere maps two canonical random samples to a direction
// uniformly distributed over the full sphere, used to pick a uniformly
// random point on a spherical light's surface.
func uniformSampleSphere(u r2.Point) r3.Vec {
	z := 1 - 2*u.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u.Y
	return r3.Vec{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// powerHeuristic combines two sampling strategies with nf samples taken
// under pdf f and ng samples taken under pdf g, using Veach's power
// heuristic with exponent 2. This is the weight applied to an estimator
// built from the f strategy when both contribute to the same estimand
// (e.g. light sampling and BSDF sampling both estimating direct lighting).
func powerHeuristic(nf int, fPdf float64, ng int, gPdf float64) float64 {
	f := float64(nf) * fPdf
	g := float64(ng) * gPdf
	if f+g == 0 {
		return 0
	}
	return (f * f) / (f*f + g*g)
}
