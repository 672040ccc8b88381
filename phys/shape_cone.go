// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"fmt"
	"math"

	"tracer/r2"
	"tracer/r3"
)

// Cone is a finite right circular cone: Radius at its base (Origin), tapering
// linearly to a point at Origin+Direction*Height. Like Plane, it is a
// boundable collider only; the reference renderer never makes a cone
// sampleable, so neither does this one.
type Cone struct {
	Origin    r3.Point // Center of the base disk.
	Direction r3.Vec   // Unit axis from base toward the apex.
	Radius    Distance // Radius of the base.
	Height    Distance // Distance from base to apex along Direction.
}

func (c Cone) Validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("invalid Cone radius: %v (has it been set?)", c.Radius)
	}
	if c.Height <= 0 {
		return fmt.Errorf("invalid Cone height: %v (has it been set?)", c.Height)
	}
	if c.Direction.IsZero() {
		return fmt.Errorf("invalid Cone direction: %v (has it been set?)", c.Direction)
	}
	if c.Direction.Length() < 1-1e-6 || c.Direction.Length() > 1+1e-6 {
		return fmt.Errorf("Cone direction should be a unit vector, got: %v which has length %v", c.Direction, c.Direction.Length())
	}
	return nil
}

// Collide solves the quadric x^2+y^2 = R(y)^2 where R(y) is the linearly
// tapered radius at height y along the axis, then clips to the [0, Height]
// slab and the base cap.
func (c Cone) Collide(r ray, tmin, tmax Distance) (bool, collision) {
	d := c.Direction.Unit()
	oc := r.origin.Sub(c.Origin)

	dDotRd := d.Dot(r.direction)
	dDotOc := d.Dot(oc)

	rdPerp := r.direction.Sub(d.Muls(dDotRd))
	ocPerp := oc.Sub(d.Muls(dDotOc))

	k := float64(c.Radius) / float64(c.Height)

	a0 := rdPerp.Dot(rdPerp)
	b0 := 2 * rdPerp.Dot(ocPerp)
	c0 := ocPerp.Dot(ocPerp)

	// R(y) = Radius - k*y, y = dDotOc + t*dDotRd => R(y) = A + B*t.
	a := float64(c.Radius) - k*dDotOc
	b := -k * dDotRd

	qa := a0 - b*b
	qb := b0 - 2*a*b
	qc := c0 - a*a

	var closestT = math.MaxFloat64
	var closestCollision collision
	hit := false

	tryHit := func(t float64) {
		if t < float64(tmin) || t > float64(tmax) || t >= closestT {
			return
		}
		y := dDotOc + t*dDotRd
		if y < 0 || y > float64(c.Height) {
			return
		}
		at := r.at(Distance(t))
		local := at.Sub(c.Origin)
		perp := local.Sub(d.Muls(local.Dot(d)))
		radial := perp.Length()
		if radial < eps {
			return
		}
		radialDir := perp.Unit()
		normal := radialDir.Add(d.Muls(k)).Unit()
		closestT = t
		closestCollision = collision{
			t:      Distance(t),
			at:     at,
			normal: normal,
			ng:     normal,
			dpdu:   d.Cross(radialDir),
			dpdv:   radialDir.Muls(-k).Add(d),
			uv:     r2.Point{X: 0, Y: y / float64(c.Height)},
			time:   r.time,
		}
		hit = true
	}

	if math.Abs(qa) > eps {
		disc := qb*qb - 4*qa*qc
		if disc >= 0 {
			sq := math.Sqrt(disc)
			tryHit((-qb - sq) / (2 * qa))
			tryHit((-qb + sq) / (2 * qa))
		}
	} else if math.Abs(qb) > eps {
		tryHit(-qc / qb)
	}

	// Base cap.
	baseNormal := d.Muls(-1)
	denom := baseNormal.Dot(r.direction)
	if math.Abs(denom) >= eps {
		t := baseNormal.Dot(c.Origin.Sub(r.origin)) / denom
		if t >= float64(tmin) && t <= float64(tmax) && t < closestT {
			p := r.at(Distance(t))
			local := p.Sub(c.Origin)
			radial2 := local.Dot(local) - local.Dot(d)*local.Dot(d)
			if radial2 <= float64(c.Radius*c.Radius) {
				var arbitrary r3.Vec
				if math.Abs(baseNormal.X) < 0.9 {
					arbitrary = r3.Vec{X: 1, Y: 0, Z: 0}
				} else {
					arbitrary = r3.Vec{X: 0, Y: 1, Z: 0}
				}
				closestT = t
				closestCollision = collision{
					t:      Distance(t),
					at:     p,
					normal: baseNormal,
					ng:     baseNormal,
					dpdu:   baseNormal.Cross(arbitrary),
					dpdv:   baseNormal.Cross(baseNormal.Cross(arbitrary)),
					uv:     r2.Point{X: 0.5, Y: 0.5},
					time:   r.time,
				}
				hit = true
			}
		}
	}

	return hit, closestCollision
}

func (c Cone) Bounds() AABB {
	d := c.Direction.Unit()
	var orthogonal r3.Vec
	if math.Abs(d.X) > math.Abs(d.Y) {
		orthogonal = r3.Vec{X: -d.Z, Y: 0, Z: d.X}.Unit()
	} else {
		orthogonal = r3.Vec{X: 0, Y: d.Z, Z: -d.Y}.Unit()
	}
	u := orthogonal
	v := d.Cross(u)

	apex := c.Origin.Add(d.Muls(float64(c.Height)))
	points := []r3.Point{apex}
	for theta := 0.0; theta < 2*math.Pi; theta += math.Pi / 4 {
		points = append(points, c.Origin.Add(u.Muls(float64(c.Radius)*math.Cos(theta))).Add(v.Muls(float64(c.Radius)*math.Sin(theta))))
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
	return AABB{Min: min, Max: max}
}

func init() {
	RegisterInterfaceType(Cone{})
}
