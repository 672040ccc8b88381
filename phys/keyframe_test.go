// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"tracer/r3"
)

func TestKeyframeDecomposeIdentity(t *testing.T) {
	k := NewKeyframe(Identity(), 0)
	assert.InDelta(t, 0, k.Translation.Length(), 1e-9)
	assert.InDelta(t, 1, k.Rotation.W, 1e-9)
}

func TestKeyframeTransformRoundTripsTranslation(t *testing.T) {
	v := r3.Vec{X: 3, Y: -2, Z: 5}
	k := NewKeyframe(Translate(v), 0)
	out := k.Transform()
	p := out.Point(r3.Point{})
	assert.InDelta(t, v.X, p.X, 1e-6)
	assert.InDelta(t, v.Y, p.Y, 1e-6)
	assert.InDelta(t, v.Z, p.Z, 1e-6)
}

func TestKeyframeTransformRoundTripsRotation(t *testing.T) {
	rot := Rotate(r3.RotationMatrixY(math.Pi / 3))
	k := NewKeyframe(rot, 0)
	out := k.Transform()

	p := r3.Point{X: 1, Y: 0, Z: 0}
	want := rot.Point(p)
	got := out.Point(p)
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
}
