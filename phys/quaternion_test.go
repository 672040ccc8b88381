// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"tracer/r3"
)

func TestQuaternionIdentityRoundTrip(t *testing.T) {
	q := IdentityQuaternion()
	m := q.ToMatrix()
	assert.InDelta(t, 1, m.M[0][0], 1e-9)
	assert.InDelta(t, 1, m.M[1][1], 1e-9)
	assert.InDelta(t, 1, m.M[2][2], 1e-9)

	back := QuaternionFromMatrix(m)
	assert.InDelta(t, q.W, back.W, 1e-9)
	assert.InDelta(t, 0, back.V.Sub(q.V).Length(), 1e-9)
}

func TestQuaternionFromMatrixRotationY90(t *testing.T) {
	rot := r3.RotationMatrixY(math.Pi / 2)
	q := QuaternionFromMatrix(rot)
	got := q.ToMatrix()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, rot.M[i][j], got.M[i][j], 1e-6)
		}
	}
}

func TestQuaternionSlerpEndpoints(t *testing.T) {
	a := IdentityQuaternion()
	b := QuaternionFromMatrix(r3.RotationMatrixZ(math.Pi / 2))

	start := QuaternionSlerp(0, a, b)
	end := QuaternionSlerp(1, a, b)
	assert.InDelta(t, a.W, start.W, 1e-9)
	assert.InDelta(t, b.W, end.W, 1e-6)
}

func TestQuaternionSlerpNearParallelFallsBackToLerp(t *testing.T) {
	a := IdentityQuaternion()
	b := Quaternion{V: r3.Vec{X: 1e-6, Y: 0, Z: 0}, W: 1}.Normalized()

	mid := QuaternionSlerp(0.5, a, b)
	assert.InDelta(t, 1, mid.Dot(mid), 1e-6)
}
