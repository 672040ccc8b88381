// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

// Package phys implements a physically based 3D renderer.
// This file adds Keyframe, a transform decomposed into translation,
// rotation, and scale and associated with a point in time, the unit
// AnimatedTransform interpolates between.
package phys

import (
	"math"

	"tracer/r3"
)

// Keyframe is a Transform decomposed into translation, rotation, and
// scale (M = T*R*S) and tagged with the time it applies at. Decomposing
// once at construction lets AnimatedTransform interpolate rotation via
// Quaternion.Slerp instead of interpolating matrix entries directly, which
// does not produce a rigid rotation partway through.
type Keyframe struct {
	Time        float64
	Translation r3.Vec
	Rotation    Quaternion
	Scaling     r3.Mat3x3
}

// NewKeyframe decomposes t into translation, rotation, and scale and
// associates the result with time.
func NewKeyframe(t Transform, time float64) Keyframe {
	translation, rotation, scaling := decomposeTransform(t)
	return Keyframe{Time: time, Translation: translation, Rotation: rotation, Scaling: scaling}
}

// decomposeTransform splits t.M into a translation, a rotation quaternion,
// and a residual scale matrix via polar decomposition: iterating
// M_{i+1} = (M_i + (M_i^T)^-1)/2 converges to the nearest orthogonal matrix,
// which is the rotation component.
func decomposeTransform(t Transform) (r3.Vec, Quaternion, r3.Mat3x3) {
	m := t.M.UpperLeft3x3()
	translation := r3.Vec{X: t.M.M[0][3], Y: t.M.M[1][3], Z: t.M.M[2][3]}

	rot := m
	for i := 0; i < 100; i++ {
		inv := mat3Inverse(rot).Transpose()
		var next r3.Mat3x3
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				next.M[a][b] = 0.5 * (rot.M[a][b] + inv.M[a][b])
			}
		}
		norm := 0.0
		for a := 0; a < 3; a++ {
			d := math.Abs(rot.M[a][0]-next.M[a][0]) +
				math.Abs(rot.M[a][1]-next.M[a][1]) +
				math.Abs(rot.M[a][2]-next.M[a][2])
			norm = math.Max(norm, d)
		}
		rot = next
		if norm <= 1e-4 {
			break
		}
	}
	scaling := mat3Inverse(rot).Mul(m)
	return translation, QuaternionFromMatrix(rot), scaling
}

// Transform reconstructs the Transform this keyframe describes.
func (k Keyframe) Transform() Transform {
	r := k.Rotation.ToMatrix()
	rs := r.Mul(k.Scaling)
	return Translate(k.Translation).Mul(Rotate(rs))
}

// mat3Inverse inverts a 3x3 matrix via the adjugate, used by the polar
// decomposition loop; decomposeTransform only ever calls this on matrices
// built from a well-formed Transform, so singular input is not expected.
func mat3Inverse(m r3.Mat3x3) r3.Mat3x3 {
	a := m.M
	det := a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
	if det == 0 {
		return r3.IdentityMat3x3()
	}
	invDet := 1 / det
	var out r3.Mat3x3
	out.M[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) * invDet
	out.M[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) * invDet
	out.M[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) * invDet
	out.M[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) * invDet
	out.M[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) * invDet
	out.M[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) * invDet
	out.M[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) * invDet
	out.M[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) * invDet
	out.M[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) * invDet
	return out
}
