// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

// Package phys implements a physically based 3D renderer.
// This file adds Quaternion, used by AnimatedTransform to interpolate
// camera rotation smoothly between keyframes (rotation matrices do not
// interpolate well; quaternions do via slerp).
package phys

import (
	"math"

	"tracer/r3"
)

// Quaternion represents a rotation in 3D space. Unlike rotation matrices,
// quaternions interpolate smoothly via Slerp, which AnimatedTransform uses
// to blend camera orientation between keyframes.
type Quaternion struct {
	V r3.Vec
	W float64
}

// IdentityQuaternion returns the quaternion representing no rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{V: r3.Vec{}, W: 1}
}

// QuaternionFromMatrix extracts the rotation quaternion from the
// upper-left 3x3 of m, following Shoemake 1991.
func QuaternionFromMatrix(m r3.Mat3x3) Quaternion {
	trace := m.M[0][0] + m.M[1][1] + m.M[2][2]
	if trace > 0 {
		s := math.Sqrt(trace + 1)
		w := s / 2
		s = 0.5 / s
		return Quaternion{
			V: r3.Vec{
				X: (m.M[2][1] - m.M[1][2]) * s,
				Y: (m.M[0][2] - m.M[2][0]) * s,
				Z: (m.M[1][0] - m.M[0][1]) * s,
			},
			W: w,
		}
	}
	next := [3]int{1, 2, 0}
	i := 0
	if m.M[1][1] > m.M[0][0] {
		i = 1
	}
	if m.M[2][2] > m.M[i][i] {
		i = 2
	}
	j := next[i]
	k := next[j]
	s := math.Sqrt((m.M[i][i] - (m.M[j][j] + m.M[k][k])) + 1)
	var q [3]float64
	q[i] = s * 0.5
	if s != 0 {
		s = 0.5 / s
	}
	w := (m.M[k][j] - m.M[j][k]) * s
	q[j] = (m.M[j][i] + m.M[i][j]) * s
	q[k] = (m.M[k][i] + m.M[i][k]) * s
	return Quaternion{V: r3.Vec{X: q[0], Y: q[1], Z: q[2]}, W: w}
}

// ToMatrix builds the 3x3 rotation matrix this quaternion describes.
func (q Quaternion) ToMatrix() r3.Mat3x3 {
	x, y, z, w := q.V.X, q.V.Y, q.V.Z, q.W
	return r3.Mat3x3{M: [3][3]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}}
}

// Add returns the componentwise sum of two quaternions.
func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{V: q.V.Add(o.V), W: q.W + o.W}
}

// Sub returns the componentwise difference of two quaternions.
func (q Quaternion) Sub(o Quaternion) Quaternion {
	return Quaternion{V: q.V.Sub(o.V), W: q.W - o.W}
}

// Muls scales the quaternion by s.
func (q Quaternion) Muls(s float64) Quaternion {
	return Quaternion{V: q.V.Muls(s), W: q.W * s}
}

// Dot returns the quaternion dot product, used to detect the "long way
// around" case in slerp.
func (q Quaternion) Dot(o Quaternion) float64 {
	return q.V.Dot(o.V) + q.W*o.W
}

// Normalized returns q scaled to unit length.
func (q Quaternion) Normalized() Quaternion {
	return q.Muls(1 / math.Sqrt(q.Dot(q)))
}

// QuaternionSlerp spherically interpolates between a and b at parameter
// t in [0,1], falling back to normalized linear interpolation when a and b
// are nearly parallel to avoid dividing by a near-zero sine.
func QuaternionSlerp(t float64, a, b Quaternion) Quaternion {
	cosTheta := a.Dot(b)
	if cosTheta > 0.9995 {
		return a.Muls(1 - t).Add(b.Muls(t)).Normalized()
	}
	theta := math.Acos(clamp(cosTheta, -1, 1))
	thetaT := theta * t
	qPerp := b.Sub(a.Muls(cosTheta)).Normalized()
	return a.Muls(math.Cos(thetaT)).Add(qPerp.Muls(math.Sin(thetaT)))
}
