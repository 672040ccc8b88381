// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"tracer/r3"
)

// Transform is a pair of 4x4 matrices (M, M^-1) kept in sync. Composing two
// transforms multiplies both halves so the inverse never needs to be
// recomputed from scratch.
type Transform struct {
	M    r3.Mat4x4
	Minv r3.Mat4x4
}

// Identity returns the identity transform.
func Identity() Transform {
	id := r3.IdentityMat4x4()
	return Transform{M: id, Minv: id}
}

// NewTransform creates a new Transform with default values (identity).
// Kept for compatibility with the teacher's construction idiom.
func NewTransform() Transform {
	return Identity()
}

// FromMatrix builds a Transform from a matrix, computing its inverse.
func FromMatrix(m r3.Mat4x4) Transform {
	return Transform{M: m, Minv: m.Inverse()}
}

// Translate returns a translation transform.
func Translate(v r3.Vec) Transform {
	return Transform{
		M:    r3.TranslateMat4x4(v),
		Minv: r3.TranslateMat4x4(v.Muls(-1)),
	}
}

// ScaleXYZ returns a non-uniform scale transform.
func ScaleXYZ(v r3.Vec) Transform {
	return Transform{
		M:    r3.ScaleMat4x4(v),
		Minv: r3.ScaleMat4x4(r3.Vec{X: 1 / v.X, Y: 1 / v.Y, Z: 1 / v.Z}),
	}
}

// Rotate builds a transform from a 3x3 rotation matrix (orthonormal, so the
// inverse is the transpose embedded into a 4x4).
func Rotate(r r3.Mat3x3) Transform {
	var m, mt r3.Mat4x4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.M[i][j] = r.M[i][j]
			mt.M[i][j] = r.M[j][i]
		}
	}
	m.M[3][3] = 1
	mt.M[3][3] = 1
	return Transform{M: m, Minv: mt}
}

// Mul composes transforms: t.Mul(o) applies o first, then t.
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		M:    t.M.Mul(o.M),
		Minv: o.Minv.Mul(t.Minv),
	}
}

// Inverse swaps M and M^-1.
func (t Transform) Inverse() Transform {
	return Transform{M: t.Minv, Minv: t.M}
}

// Point applies the transform to a point.
func (t Transform) Point(p r3.Point) r3.Point {
	return t.M.TransformPoint(p)
}

// Vec applies the transform to a vector (ignores translation).
func (t Transform) Vec(v r3.Vec) r3.Vec {
	return t.M.TransformVec(v)
}

// Normal applies the transform to a surface normal using the
// inverse-transpose convention.
func (t Transform) Normal(n r3.Vec) r3.Vec {
	return t.Minv.TransformNormal(n)
}

// ApplyRay applies the transform to a ray's origin and direction, preserving
// the window, depth, and time.
func (t Transform) ApplyRay(r ray) ray {
	out := r
	out.origin = t.Point(r.origin)
	out.direction = t.Vec(r.direction)
	return out
}

// SwapsHandedness reports whether the transform flips the coordinate
// system's handedness (determinant of the upper-left 3x3 < 0); shading
// code uses this to decide whether to flip a computed geometric normal.
func (t Transform) SwapsHandedness() bool {
	m := t.M.M
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	return det < 0
}

// LookAt builds a world-from-camera transform with the camera at pos,
// looking toward target, with the given up hint.
func LookAt(pos, target r3.Point, up r3.Vec) Transform {
	dir := target.Sub(pos).Unit()
	right := up.Unit().Cross(dir).Unit()
	newUp := dir.Cross(right)
	m := r3.Mat4x4{M: [4][4]float64{
		{right.X, newUp.X, dir.X, pos.X},
		{right.Y, newUp.Y, dir.Y, pos.Y},
		{right.Z, newUp.Z, dir.Z, pos.Z},
		{0, 0, 0, 1},
	}}
	return FromMatrix(m)
}

// Perspective builds a camera-to-screen projective transform with the given
// vertical field of view (degrees) and near/far clip planes.
func Perspective(fovDegrees, near, far float64) Transform {
	return FromMatrix(r3.PerspectiveMat4x4(fovDegrees, near, far))
}

// reflectVec returns the reflection of v about n (both assumed unit length,
// in a consistent space).
func reflectVec(v, n r3.Vec) r3.Vec {
	return n.Muls(2 * v.Dot(n)).Sub(v)
}

// refractVec implements Snell's law refraction of direction wi (pointing
// away from the surface) through normal n (on the wi side) with relative
// index of refraction eta = eta_i/eta_t. Returns false on total internal
// reflection.
func refractVec(wi, n r3.Vec, eta float64) (r3.Vec, bool) {
	cosThetaI := n.Dot(wi)
	sin2ThetaI := math.Max(0, 1-cosThetaI*cosThetaI)
	sin2ThetaT := eta * eta * sin2ThetaI
	if sin2ThetaT >= 1 {
		return r3.Vec{}, false
	}
	cosThetaT := math.Sqrt(1 - sin2ThetaT)
	wt := wi.Muls(-eta).Add(n.Muls(eta*cosThetaI - cosThetaT))
	return wt, true
}

// faceForward flips n to lie in the same hemisphere as v.
func faceForward(n, v r3.Vec) r3.Vec {
	if n.Dot(v) < 0 {
		return n.Muls(-1)
	}
	return n
}
