// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

// Package phys implements a physically based 3D renderer.
// This file adds OrbitCamera, a turntable camera that samples a point on an
// ellipse around a center with an optional height offset, paired with
// AnimatedCamera to produce a full orbit sequence from a single spec.
package phys

import (
	"fmt"
	"math"
	"time"

	"tracer/r3"
)

// OrbitSpec describes an elliptical turntable path around Center. AxisU and
// AxisV span the orbit plane; AxisW is the height axis the camera is
// offset along by HeightOffset. Phase shifts the starting angle.
//
// Instance purpose:
// OrbitSpec is pure data; NewOrbitSpecFromAxes builds one from a world-space
// basis and validates orthogonality at construction time; OrbitCamera.Validate
// checks it again through OrbitSpec.Validate.
//
// Concurrency guarantees:
// OrbitSpec is immutable once constructed. Safe to copy by value and share.
type OrbitSpec struct {
	Intrinsics CameraIntrinsics

	Center r3.Point
	AxisU  r3.Vec
	AxisV  r3.Vec
	AxisW  r3.Vec

	RadiusU      Distance
	RadiusV      Distance
	HeightOffset Distance
	Phase        float64

	VUp r3.Vec
}

// NewOrbitSpecFromAxes constructs an OrbitSpec from a world-space basis.
// axisU and axisV span the orbit plane; the function derives AxisW as their
// cross product so the three axes are always mutually orthogonal. The
// function returns an error instead of constructing an unusable spec when
// axisU and axisV are not themselves orthogonal unit-able vectors.
func NewOrbitSpecFromAxes(
	intr CameraIntrinsics,
	center r3.Point,
	axisU r3.Vec,
	axisV r3.Vec,
	radiusU Distance,
	radiusV Distance,
	heightOffset Distance,
	phase float64,
	vup r3.Vec,
) (OrbitSpec, error) {
	spec := OrbitSpec{
		Intrinsics:   intr,
		Center:       center,
		AxisU:        axisU.Unit(),
		AxisV:        axisV.Unit(),
		AxisW:        axisU.Cross(axisV).Unit(),
		RadiusU:      radiusU,
		RadiusV:      radiusV,
		HeightOffset: heightOffset,
		Phase:        phase,
		VUp:          vup,
	}
	if err := spec.Validate(); err != nil {
		return OrbitSpec{}, err
	}
	return spec, nil
}

// Validate reports whether the spec describes a usable orbit.
func (spec OrbitSpec) Validate() error {
	if err := spec.Intrinsics.Validate(); err != nil {
		return fmt.Errorf("OrbitSpec intrinsics invalid: %v", err)
	}
	if spec.AxisU.IsZero() || spec.AxisV.IsZero() || spec.AxisW.IsZero() {
		return fmt.Errorf("OrbitSpec has a zero axis")
	}
	if math.Abs(spec.AxisU.Dot(spec.AxisV)) > eps {
		return fmt.Errorf("OrbitSpec.AxisU and AxisV are not orthogonal: dot=%g", spec.AxisU.Dot(spec.AxisV))
	}
	if spec.RadiusU <= 0 || spec.RadiusV <= 0 {
		return fmt.Errorf("OrbitSpec radii must be positive: RadiusU=%v RadiusV=%v", spec.RadiusU, spec.RadiusV)
	}
	if spec.VUp.IsZero() {
		return fmt.Errorf("OrbitSpec.VUp is zero")
	}
	return nil
}

// position returns the camera's world-space position at orbit angle theta.
func (spec OrbitSpec) position(theta float64) r3.Point {
	offset := spec.AxisU.Muls(float64(spec.RadiusU) * math.Cos(theta)).
		Add(spec.AxisV.Muls(float64(spec.RadiusV) * math.Sin(theta))).
		Add(spec.AxisW.Muls(float64(spec.HeightOffset)))
	return spec.Center.Add(offset)
}

// OrbitCamera is a CalibratedCamera whose LookFrom is resampled from an
// OrbitSpec at a fixed angle, always looking at the spec's Center.
//
// Instance purpose:
// OrbitCamera turns a single spec plus an angle into a concrete [Camera].
// WithAngle produces the sequence of cameras an AnimatedCamera drives across
// one orbit cycle.
//
// Concurrency guarantees:
// OrbitCamera is an immutable value. Safe to copy by value and share.
//
// Zero value:
// The zero value is not usable; construct via OrbitCamera{Spec: spec} and
// WithAngle, or NewAnimatedOrbit.
type OrbitCamera struct {
	Spec  OrbitSpec
	Angle float64
}

// WithAngle returns a copy of OrbitCamera at the given orbit angle, in
// radians.
func (oc OrbitCamera) WithAngle(angle float64) OrbitCamera {
	oc.Angle = angle
	return oc
}

func (oc OrbitCamera) calibrated() CalibratedCamera {
	theta := oc.Spec.Phase + oc.Angle
	return CalibratedCamera{
		Intrinsics: oc.Spec.Intrinsics,
		Extrinsics: CameraExtrinsics{
			LookFrom: oc.Spec.position(theta),
			LookAt:   oc.Spec.Center,
			VUp:      oc.Spec.VUp,
		},
	}
}

// Cast generates a primary ray for the normalized sample position (s, t) by
// delegating to the CalibratedCamera at the orbit's current angle.
func (oc OrbitCamera) Cast(s, t float64, rand *Rand) ray {
	return oc.calibrated().Cast(s, t, rand)
}

// Validate reports whether the orbit camera can generate rays.
func (oc OrbitCamera) Validate() error {
	if err := oc.Spec.Validate(); err != nil {
		return err
	}
	return oc.calibrated().Validate()
}

// NewAnimatedOrbit returns an AnimatedCamera that implements a turntable
// orbit over spec. The animation parameter u in [0,1) maps to orbit angle
// theta = 2*pi*u. NewAnimatedOrbit panics if spec is invalid; use
// NewAnimatedOrbitSafe for an error return.
func NewAnimatedOrbit(spec OrbitSpec, period time.Duration) AnimatedCamera {
	ac, err := NewAnimatedOrbitSafe(spec, period)
	if err != nil {
		panic(fmt.Errorf("NewAnimatedOrbit: %v", err))
	}
	return ac
}

// NewAnimatedOrbitSafe is the error-returning variant of NewAnimatedOrbit.
func NewAnimatedOrbitSafe(spec OrbitSpec, period time.Duration) (AnimatedCamera, error) {
	if err := spec.Validate(); err != nil {
		return AnimatedCamera{}, err
	}
	base := OrbitCamera{Spec: spec}
	build := func(u float64) Camera {
		return base.WithAngle(2 * math.Pi * (u - math.Floor(u)))
	}
	return NewAnimatedCamera(build, 0, period), nil
}

// NewAnimatedXYOrbit is a convenience for a circular turntable in the XY
// plane with a height offset along +Z. NewAnimatedXYOrbit panics on invalid
// input; use NewAnimatedXYOrbitSafe for an error return.
func NewAnimatedXYOrbit(
	intr CameraIntrinsics,
	center r3.Point,
	radius Distance,
	heightOffset Distance,
	vup r3.Vec,
	period time.Duration,
) AnimatedCamera {
	ac, err := NewAnimatedXYOrbitSafe(intr, center, radius, heightOffset, vup, period)
	if err != nil {
		panic(fmt.Errorf("NewAnimatedXYOrbit: %v", err))
	}
	return ac
}

// NewAnimatedXYOrbitSafe is the error-returning variant of NewAnimatedXYOrbit.
func NewAnimatedXYOrbitSafe(
	intr CameraIntrinsics,
	center r3.Point,
	radius Distance,
	heightOffset Distance,
	vup r3.Vec,
	period time.Duration,
) (AnimatedCamera, error) {
	spec, err := NewOrbitSpecFromAxes(
		intr,
		center,
		r3.Vec{X: 1, Y: 0, Z: 0},
		r3.Vec{X: 0, Y: 1, Z: 0},
		radius,
		radius,
		heightOffset,
		0,
		vup,
	)
	if err != nil {
		return AnimatedCamera{}, err
	}
	return NewAnimatedOrbitSafe(spec, period)
}
