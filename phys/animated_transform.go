// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

// Package phys implements a physically based 3D renderer.
// This file adds AnimatedTransform, which blends between a sorted list of
// Keyframes to support camera motion blur: each ray samples a time in its
// exposure window (see ray.time), and AnimatedTransform.Transform resolves
// the camera pose at that exact instant.
package phys

import (
	"fmt"
	"sort"

	"tracer/r3"
)

// AnimatedTransform interpolates between keyframes to produce a Transform
// at an arbitrary point in time. Times outside the keyframe span clamp to
// the nearest endpoint rather than extrapolating.
type AnimatedTransform struct {
	keyframes []Keyframe
}

// Unanimated returns an AnimatedTransform that always resolves to t,
// regardless of time.
func Unanimated(t Transform) AnimatedTransform {
	return AnimatedTransform{keyframes: []Keyframe{NewKeyframe(t, 0)}}
}

// NewAnimatedTransform builds an AnimatedTransform from keyframes, which
// need not be supplied in time order. NewAnimatedTransform returns an error
// if fewer than one keyframe is given or two keyframes share a time.
func NewAnimatedTransform(keyframes []Keyframe) (AnimatedTransform, error) {
	if len(keyframes) == 0 {
		return AnimatedTransform{}, fmt.Errorf("NewAnimatedTransform: at least one keyframe is required")
	}
	sorted := append([]Keyframe(nil), keyframes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Time == sorted[i-1].Time {
			return AnimatedTransform{}, fmt.Errorf("NewAnimatedTransform: duplicate keyframe time %g", sorted[i].Time)
		}
		// Flip the rotation to take the shorter path when consecutive
		// keyframe rotations point into opposite hemispheres of the
		// quaternion double-cover.
		if sorted[i-1].Rotation.Dot(sorted[i].Rotation) < 0 {
			sorted[i].Rotation = sorted[i].Rotation.Muls(-1)
		}
	}
	return AnimatedTransform{keyframes: sorted}, nil
}

// IsAnimated reports whether the transform actually varies over time.
func (at AnimatedTransform) IsAnimated() bool {
	return len(at.keyframes) > 1
}

// Transform resolves the pose at the given time by slerping rotation,
// lerping translation and scale between the two bracketing keyframes.
// Times before the first or after the last keyframe clamp to that
// keyframe's pose.
func (at AnimatedTransform) Transform(time float64) Transform {
	n := len(at.keyframes)
	if n == 0 {
		return Identity()
	}
	if n == 1 || time <= at.keyframes[0].Time {
		return at.keyframes[0].Transform()
	}
	if time >= at.keyframes[n-1].Time {
		return at.keyframes[n-1].Transform()
	}
	i := sort.Search(n, func(i int) bool { return at.keyframes[i].Time >= time }) - 1
	a, b := at.keyframes[i], at.keyframes[i+1]
	t := (time - a.Time) / (b.Time - a.Time)
	translation := a.Translation.Muls(1 - t).Add(b.Translation.Muls(t))
	rotation := QuaternionSlerp(t, a.Rotation, b.Rotation)
	scaling := lerpMat3(a.Scaling, b.Scaling, t)
	r := rotation.ToMatrix()
	rs := r.Mul(scaling)
	return Translate(translation).Mul(Rotate(rs))
}

// Bounds returns the union of transforming box through every sampled pose
// between start and end; a static transform (IsAnimated false) only needs
// the single endpoint pose.
func (at AnimatedTransform) Bounds(box AABB, start, end float64) AABB {
	if !at.IsAnimated() {
		return at.Transform(start).applyAABB(box)
	}
	const samples = 128
	out := AABB{}
	first := true
	for i := 0; i < samples; i++ {
		t := start + (end-start)*float64(i)/float64(samples-1)
		transformed := at.Transform(t).applyAABB(box)
		if first {
			out = transformed
			first = false
		} else {
			out = out.Union(transformed)
		}
	}
	return out
}

// applyAABB transforms an axis-aligned box by t, re-deriving a new
// axis-aligned box around the eight transformed corners.
func (t Transform) applyAABB(box AABB) AABB {
	out := AABB{}
	first := true
	for i := 0; i < 8; i++ {
		corner := r3.Point{
			X: pickBound(box.Min.X, box.Max.X, i&1 != 0),
			Y: pickBound(box.Min.Y, box.Max.Y, i&2 != 0),
			Z: pickBound(box.Min.Z, box.Max.Z, i&4 != 0),
		}
		p := t.Point(corner)
		pointBox := AABB{Min: p, Max: p}
		if first {
			out = pointBox
			first = false
		} else {
			out = out.Union(pointBox)
		}
	}
	return out
}

func pickBound(lo, hi float64, useHi bool) float64 {
	if useHi {
		return hi
	}
	return lo
}

func lerpMat3(a, b r3.Mat3x3, t float64) r3.Mat3x3 {
	var out r3.Mat3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[i][j] = a.M[i][j]*(1-t) + b.M[i][j]*t
		}
	}
	return out
}
