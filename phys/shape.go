// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"tracer/r2"
	"tracer/r3"
)

// collision is this module's DifferentialGeometry: the full local surface
// description at a ray/shape hit, not just a position and a normal.
type collision struct {
	t      Distance // Distance along the incoming ray to the collision point.
	at     r3.Point // Collision point on the shape.
	uv     r2.Point // Texture coordinates at the collision point.
	normal r3.Vec   // Shading normal at the collision point (may be perturbed).
	ng     r3.Vec   // Geometric normal, independent of any shading perturbation.
	dpdu   r3.Vec   // Partial derivative of position w.r.t. u.
	dpdv   r3.Vec   // Partial derivative of position w.r.t. v.
	time   float64  // Ray time at which the collision was computed.
}

// Shape represents an geometric object that can collide with rays.
type Shape interface {
	Collide(r ray, tmin Distance, tmax Distance) (bool, collision)
	Bounds() AABB
	Validate() error // Validate checks if the shape is valid.
}

// Sampleable is implemented by shapes that can be sampled uniformly for use
// as area light emitters: a uniform point on the surface, and the
// solid-angle PDF of sampling a direction from a reference point that hits
// the shape.
type Sampleable interface {
	Shape
	// SampleArea returns a uniformly distributed point on the surface, its
	// geometric normal, and the reciprocal surface area (1/A), given two
	// canonical random samples.
	SampleArea(u r2.Point) (p r3.Point, n r3.Vec, invArea float64)
	// PDFFrom returns the solid-angle PDF of sampling direction wi from
	// reference point ref such that the ray ref+t*wi hits the shape, or 0 if
	// it misses. wi must be unit length.
	PDFFrom(ref r3.Point, wi r3.Vec) float64
}

// AABB represents an axis-aligned bounding box.
// AABB is not a Shape itself, but describes the bounds of a Shape.
type AABB struct {
	Min r3.Point
	Max r3.Point
}

func (b AABB) surfaceArea() float64 {
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	dz := b.Max.Z - b.Min.Z
	return 2 * (dx*dy + dy*dz + dz*dx)
}

func (b AABB) LongestAxis() int {
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	dz := b.Max.Z - b.Min.Z
	if dx > dy && dx > dz {
		return 0
	} else if dy > dz {
		return 1
	} else {
		return 2
	}
}

func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: r3.Point{
			X: math.Min(b.Min.X, other.Min.X),
			Y: math.Min(b.Min.Y, other.Min.Y),
			Z: math.Min(b.Min.Z, other.Min.Z),
		},
		Max: r3.Point{
			X: math.Max(b.Max.X, other.Max.X),
			Y: math.Max(b.Max.Y, other.Max.Y),
			Z: math.Max(b.Max.Z, other.Max.Z),
		},
	}
}

func (b AABB) center() r3.Point {
	return r3.Point{
		X: (b.Min.X + b.Max.X) * 0.5,
		Y: (b.Min.Y + b.Max.Y) * 0.5,
		Z: (b.Min.Z + b.Max.Z) * 0.5,
	}
}

func (b AABB) intersects(other AABB) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

func (b AABB) hit(r ray, tmin, tmax Distance) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / r.direction.Get(axis)
		t0 := (b.Min.Get(axis) - r.origin.Get(axis)) * invD
		t1 := (b.Max.Get(axis) - r.origin.Get(axis)) * invD
		if invD < 0.0 {
			t0, t1 = t1, t0
		}
		tmin = Distance(math.Max(float64(t0), float64(tmin)))
		tmax = Distance(math.Min(float64(t1), float64(tmax)))
		if tmax <= tmin {
			return false
		}
	}
	return true
}
