// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"fmt"
	"math"

	"tracer/r2"
	"tracer/r3"
)

// Plane is a finite, axis-aligned (in its own local frame) square patch
// spanning [-HalfExtent, HalfExtent] along its two tangent axes, centered at
// Center with the given Normal. Unlike Disk and Quad, Plane is not a light
// sampling primitive: it exists purely as a boundable collider, matching the
// reference renderer's geometry module, which never implements uniform-area
// sampling for it.
type Plane struct {
	Center     r3.Point
	Normal     r3.Vec
	HalfExtent Distance
}

func (p Plane) Validate() error {
	if p.HalfExtent <= 0 {
		return fmt.Errorf("invalid Plane HalfExtent: %v (has it been set?)", p.HalfExtent)
	}
	if p.Normal.IsZero() {
		return fmt.Errorf("invalid Plane Normal: %v (has it been set?)", p.Normal)
	}
	if p.Normal.Length() != 1 {
		return fmt.Errorf("invalid Plane Normal should be a unit vector, got: %v", p.Normal)
	}
	return nil
}

func (p Plane) axes() (normal, u, v r3.Vec) {
	normal = p.Normal.Unit()
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

// Collide intersects the ray with the plane's supporting surface, then
// rejects the hit unless it falls within the local [-HalfExtent, HalfExtent]
// square.
func (p Plane) Collide(r ray, tmin, tmax Distance) (bool, collision) {
	normal, u, v := p.axes()
	denom := normal.Dot(r.direction)
	if math.Abs(denom) < eps {
		return false, collision{}
	}
	t := normal.Dot(p.Center.Sub(r.origin)) / denom
	if t < float64(tmin) || t > float64(tmax) {
		return false, collision{}
	}
	pt := r.at(Distance(t))
	local := pt.Sub(p.Center)
	lu := local.Dot(u)
	lv := local.Dot(v)
	he := float64(p.HalfExtent)
	if lu < -he || lu > he || lv < -he || lv > he {
		return false, collision{}
	}
	c := collision{
		t:      Distance(t),
		at:     pt,
		normal: normal,
		ng:     normal,
		dpdu:   u,
		dpdv:   v,
		uv:     r2.Point{X: (lu + he) / (2 * he), Y: (lv + he) / (2 * he)},
		time:   r.time,
	}
	return true, c
}

func (p Plane) Bounds() AABB {
	_, u, v := p.axes()
	he := float64(p.HalfExtent)
	corners := [4]r3.Point{
		p.Center.Add(u.Muls(he)).Add(v.Muls(he)),
		p.Center.Add(u.Muls(he)).Add(v.Muls(-he)),
		p.Center.Add(u.Muls(-he)).Add(v.Muls(he)),
		p.Center.Add(u.Muls(-he)).Add(v.Muls(-he)),
	}
	min := corners[0]
	max := corners[0]
	for _, c := range corners[1:] {
		min.X = math.Min(min.X, c.X)
		min.Y = math.Min(min.Y, c.Y)
		min.Z = math.Min(min.Z, c.Z)
		max.X = math.Max(max.X, c.X)
		max.Y = math.Max(max.Y, c.Y)
		max.Z = math.Max(max.Z, c.Z)
	}
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

func init() {
	RegisterInterfaceType(Plane{})
}
