package core

// HitRecord captures everything the integrator and photon tracer need
// about a single ray-surface intersection. It is a transient, per-call
// value — nothing retains a HitRecord across intersections.
//
// Invariant: if FrontFace is true, Normal == outward-facing normal and
// dot(ray.Direction, outward normal) < 0; otherwise Normal is the negated
// outward normal (the incoming ray hit the back side).
type HitRecord struct {
	T         float64
	Point     Point3
	Normal    Vec3
	U, V      float64
	Material  Material
	FrontFace bool
}

// SetFaceNormal orients the record's normal to face the incoming ray and
// records which side was hit. outwardNormal must be a unit vector.
func (h *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}

// Hittable is the capability every scene primitive and acceleration
// structure implements: report the closest intersection of a ray within
// [tMin,tMax], and report a bounding box (or none, for infinite
// primitives, which the BVH builder treats as a build-time error).
type Hittable interface {
	Hit(r Ray, tMin, tMax float64) (HitRecord, bool)
	BoundingBox() (AABB, bool)
}
