package geometry

import "github.com/photonray/photonray/core"

// Plane is an infinite flat surface through Point with unit Normal. It has
// no finite bounding box and must be kept out of the BVH (spec §4.2).
type Plane struct {
	Point    core.Point3
	Normal   core.Vec3
	Material core.Material
}

// NewPlane constructs a plane.
func NewPlane(point core.Point3, normal core.Vec3, mat core.Material) *Plane {
	return &Plane{Point: point, Normal: normal, Material: mat}
}

// Hit implements core.Hittable.
func (p *Plane) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	ao := p.Point.Sub(r.Origin)
	numerator := ao.Dot(p.Normal)
	denominator := r.Direction.Dot(p.Normal)

	if denominator == 0 {
		return core.HitRecord{}, false
	}
	t := numerator / denominator
	if t <= tMin || t >= tMax {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.T = t
	rec.Point = r.At(t)
	rec.SetFaceNormal(r, p.Normal)
	rec.U, rec.V = 0, 0
	rec.Material = p.Material
	return rec, true
}

// BoundingBox implements core.Hittable. A plane is infinite and reports no
// bounding box, so the BVH builder must route it into a non-accelerated
// list (spec §4.2 failure semantics).
func (p *Plane) BoundingBox() (core.AABB, bool) {
	return core.AABB{}, false
}
