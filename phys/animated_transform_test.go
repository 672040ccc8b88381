// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracer/r3"
)

func TestAnimatedTransformUnanimatedIsConstant(t *testing.T) {
	at := Unanimated(Translate(r3.Vec{X: 1, Y: 2, Z: 3}))
	assert.False(t, at.IsAnimated())

	p0 := at.Transform(0).Point(r3.Point{})
	p1 := at.Transform(100).Point(r3.Point{})
	assert.Equal(t, p0, p1)
}

func TestAnimatedTransformInterpolatesTranslationLinearly(t *testing.T) {
	k0 := NewKeyframe(Translate(r3.Vec{X: 0, Y: 0, Z: 0}), 0)
	k1 := NewKeyframe(Translate(r3.Vec{X: 10, Y: 0, Z: 0}), 1)
	at, err := NewAnimatedTransform([]Keyframe{k1, k0})
	require.NoError(t, err)
	assert.True(t, at.IsAnimated())

	mid := at.Transform(0.5).Point(r3.Point{})
	assert.InDelta(t, 5, mid.X, 1e-9)
}

func TestAnimatedTransformClampsOutsideRange(t *testing.T) {
	k0 := NewKeyframe(Translate(r3.Vec{X: 0, Y: 0, Z: 0}), 0)
	k1 := NewKeyframe(Translate(r3.Vec{X: 10, Y: 0, Z: 0}), 1)
	at, err := NewAnimatedTransform([]Keyframe{k0, k1})
	require.NoError(t, err)

	before := at.Transform(-5).Point(r3.Point{})
	after := at.Transform(5).Point(r3.Point{})
	assert.InDelta(t, 0, before.X, 1e-9)
	assert.InDelta(t, 10, after.X, 1e-9)
}

func TestAnimatedTransformRejectsDuplicateTimes(t *testing.T) {
	k0 := NewKeyframe(Identity(), 1)
	k1 := NewKeyframe(Identity(), 1)
	_, err := NewAnimatedTransform([]Keyframe{k0, k1})
	assert.Error(t, err)
}

func TestAnimatedTransformBoundsUnionsSampledPoses(t *testing.T) {
	box := AABB{Min: r3.Point{X: -1, Y: -1, Z: -1}, Max: r3.Point{X: 1, Y: 1, Z: 1}}
	k0 := NewKeyframe(Translate(r3.Vec{X: 0, Y: 0, Z: 0}), 0)
	k1 := NewKeyframe(Translate(r3.Vec{X: 10, Y: 0, Z: 0}), 1)
	at, err := NewAnimatedTransform([]Keyframe{k0, k1})
	require.NoError(t, err)

	bounds := at.Bounds(box, 0, 1)
	assert.InDelta(t, -1, bounds.Min.X, 1e-6)
	assert.InDelta(t, 11, bounds.Max.X, 1e-6)
}
