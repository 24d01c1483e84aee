// Package geometry provides concrete core.Hittable shapes: sphere, plane,
// triangle, and axis-aligned rectangle (used as an area light surface).
package geometry

import (
	"math"

	"github.com/photonray/photonray/core"
)

// Sphere is a ray-traceable sphere of fixed center and radius.
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material core.Material
}

// NewSphere constructs a sphere.
func NewSphere(center core.Point3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit implements core.Hittable via the standard quadratic ray-sphere
// intersection, returning the closest root in (tMin, tMax).
func (s *Sphere) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return core.HitRecord{}, false
		}
	}

	var rec core.HitRecord
	rec.T = root
	rec.Point = r.At(root)
	outward := rec.Point.Sub(s.Center).Div(s.Radius)
	rec.SetFaceNormal(r, outward)
	rec.U, rec.V = sphereUV(outward)
	rec.Material = s.Material
	return rec, true
}

// sphereUV maps a unit-sphere outward normal to (u,v) texture coordinates
// using the standard latitude/longitude parameterization.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox implements core.Hittable.
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	r := core.V3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Sub(r), s.Center.Add(r)), true
}
