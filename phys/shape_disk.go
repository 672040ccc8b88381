// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"fmt"
	"math"

	"tracer/r2"
	"tracer/r3"
)

// Disk represents a flat circular (or annular) patch in 3D space, defined by
// a center, a normal, an outer radius, and an optional inner radius that
// makes it an annulus. It is the area-light-sampleable primitive spec.md
// names alongside the sphere and rectangle.
type Disk struct {
	Center      r3.Point // Center of the disk.
	Normal      r3.Vec   // Normal vector of the disk (should be a unit vector).
	Radius      Distance // Outer radius of the disk.
	InnerRadius Distance // Inner radius; 0 for a solid disk, >0 for an annulus.
}

func (d Disk) Validate() error {
	if d.Radius <= 0 {
		return fmt.Errorf("invalid Disk radius: %v (has it been set?)", d.Radius)
	}
	if d.InnerRadius < 0 || d.InnerRadius >= d.Radius {
		return fmt.Errorf("invalid Disk InnerRadius: %v (must be in [0, radius))", d.InnerRadius)
	}
	if d.Normal.IsZero() {
		return fmt.Errorf("invalid Disk Normal: %v (has it been set?)", d.Normal)
	}
	if d.Normal.Length() != 1 {
		return fmt.Errorf("invalid Disk Normal should be a unit vector, got: %v", d.Normal)
	}
	return nil
}

// axes returns an orthonormal (u, v) basis spanning the disk's plane.
func (d Disk) axes() (normal, u, v r3.Vec) {
	normal = d.Normal.Unit()
	var arbitrary r3.Vec
	if math.Abs(normal.X) < 0.9 {
		arbitrary = r3.Vec{X: 1, Y: 0, Z: 0}
	} else {
		arbitrary = r3.Vec{X: 0, Y: 1, Z: 0}
	}
	u = normal.Cross(arbitrary).Unit()
	v = normal.Cross(u).Unit()
	return normal, u, v
}

// Collide intersects the ray with the disk's supporting plane, then rejects
// the hit unless it falls within the [InnerRadius, Radius] annulus.
func (d Disk) Collide(r ray, tmin, tmax Distance) (bool, collision) {
	normal, u, v := d.axes()
	denom := normal.Dot(r.direction)
	if math.Abs(denom) < eps {
		return false, collision{}
	}
	t := normal.Dot(d.Center.Sub(r.origin)) / denom
	if t < float64(tmin) || t > float64(tmax) {
		return false, collision{}
	}
	p := r.at(Distance(t))
	local := p.Sub(d.Center)
	radial := math.Sqrt(local.Dot(local))
	if radial > float64(d.Radius) || radial < float64(d.InnerRadius) {
		return false, collision{}
	}
	phi := math.Atan2(local.Dot(v), local.Dot(u))
	if phi < 0 {
		phi += 2 * math.Pi
	}
	c := collision{
		t:      Distance(t),
		at:     p,
		normal: normal,
		ng:     normal,
		dpdu:   u.Muls(-radial * math.Sin(phi) * 2 * math.Pi).Add(v.Muls(radial * math.Cos(phi) * 2 * math.Pi)),
		dpdv:   u.Muls(math.Cos(phi)).Add(v.Muls(math.Sin(phi))),
		uv:     r2.Point{X: phi / (2 * math.Pi), Y: (float64(d.Radius) - radial) / (float64(d.Radius) - float64(d.InnerRadius))},
		time:   r.time,
	}
	return true, c
}

func (d Disk) Bounds() AABB {
	_, u, v := d.axes()
	r := float64(d.Radius)
	var points []r3.Point
	for theta := 0.0; theta < 2*math.Pi; theta += math.Pi / 4 {
		points = append(points, d.Center.Add(u.Muls(r*math.Cos(theta))).Add(v.Muls(r*math.Sin(theta))))
	}
	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}
	// Thicken a zero-extent axis so BVH slabs remain well-defined.
	const slab = 1e-4
	if max.X-min.X < slab {
		min.X -= slab
		max.X += slab
	}
	if max.Y-min.Y < slab {
		min.Y -= slab
		max.Y += slab
	}
	if max.Z-min.Z < slab {
		min.Z -= slab
		max.Z += slab
	}
	return AABB{Min: min, Max: max}
}

// SampleArea returns a uniformly distributed point on the disk (or annulus)
// via a concentric-disk mapping, which keeps the sample density uniform in
// area even for the annulus case.
func (d Disk) SampleArea(u r2.Point) (p r3.Point, n r3.Vec, invArea float64) {
	normal, uAxis, vAxis := d.axes()
	cd := concentricSampleDisk(u)
	rOuter := float64(d.Radius)
	rInner := float64(d.InnerRadius)
	// Remap the unit disk sample radially into [rInner, rOuter].
	cdLen := math.Hypot(cd.X, cd.Y)
	var scaled r2.Point
	if cdLen > 0 {
		targetR := math.Sqrt(rInner*rInner + cdLen*cdLen*(rOuter*rOuter-rInner*rInner))
		scaled = r2.Point{X: cd.X / cdLen * targetR, Y: cd.Y / cdLen * targetR}
	}
	p = d.Center.Add(uAxis.Muls(scaled.X)).Add(vAxis.Muls(scaled.Y))
	area := math.Pi * (rOuter*rOuter - rInner*rInner)
	return p, normal, 1 / area
}

// PDFFrom returns the solid-angle pdf of sampling a direction from ref that
// hits the disk.
func (d Disk) PDFFrom(ref r3.Point, wi r3.Vec) float64 {
	hit, col := d.Collide(ray{origin: ref, direction: wi}, eps, Distance(math.MaxFloat64))
	if !hit {
		return 0
	}
	delta := col.at.Sub(ref)
	dist2 := delta.Dot(delta)
	cosThetaLight := math.Abs(col.ng.Dot(wi))
	if cosThetaLight < 1e-7 {
		return 0
	}
	area := math.Pi * (float64(d.Radius)*float64(d.Radius) - float64(d.InnerRadius)*float64(d.InnerRadius))
	return dist2 / (area * cosThetaLight)
}

func init() {
	RegisterInterfaceType(Disk{})
}
