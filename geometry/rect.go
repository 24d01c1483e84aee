package geometry

import "github.com/photonray/photonray/core"

// Axis identifies which coordinate an axis-aligned rectangle is
// perpendicular to.
type Axis int

const (
	// AxisXY is a rectangle in the plane z=k (normal along +z).
	AxisXY Axis = iota
	// AxisXZ is a rectangle in the plane y=k (normal along +y).
	AxisXZ
	// AxisYZ is a rectangle in the plane x=k (normal along +x).
	AxisYZ
)

// Rect is a finite axis-aligned rectangle, primarily used as an area
// light's emitting surface (the original's xy_rect area-light shape,
// generalized to all three principal planes).
type Rect struct {
	Axis       Axis
	A0, A1     float64 // bounds along the rectangle's first in-plane axis
	B0, B1     float64 // bounds along the rectangle's second in-plane axis
	K          float64 // coordinate of the plane along the perpendicular axis
	Material   core.Material
}

// NewRect constructs an axis-aligned rectangle.
func NewRect(axis Axis, a0, a1, b0, b1, k float64, mat core.Material) *Rect {
	return &Rect{Axis: axis, A0: a0, A1: a1, B0: b0, B1: b1, K: k, Material: mat}
}

// components returns, for the ray origin/direction, the (perpendicular,
// first-in-plane, second-in-plane) coordinate triple for this rect's axis.
func (rc *Rect) components(v core.Vec3) (perp, a, b float64) {
	switch rc.Axis {
	case AxisXY:
		return v.Z, v.X, v.Y
	case AxisXZ:
		return v.Y, v.X, v.Z
	default: // AxisYZ
		return v.X, v.Y, v.Z
	}
}

func (rc *Rect) outwardNormal() core.Vec3 {
	switch rc.Axis {
	case AxisXY:
		return core.V3(0, 0, 1)
	case AxisXZ:
		return core.V3(0, 1, 0)
	default:
		return core.V3(1, 0, 0)
	}
}

func (rc *Rect) pointFromComponents(perp, a, b float64) core.Point3 {
	switch rc.Axis {
	case AxisXY:
		return core.V3(a, b, perp)
	case AxisXZ:
		return core.V3(a, perp, b)
	default:
		return core.V3(perp, a, b)
	}
}

// Hit implements core.Hittable.
func (rc *Rect) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	perpOrigin, aOrigin, bOrigin := rc.components(r.Origin)
	perpDir, aDir, bDir := rc.components(r.Direction)

	if perpDir == 0 {
		return core.HitRecord{}, false
	}
	t := (rc.K - perpOrigin) / perpDir
	if t <= tMin || t >= tMax {
		return core.HitRecord{}, false
	}

	a := aOrigin + t*aDir
	b := bOrigin + t*bDir
	if a < rc.A0 || a > rc.A1 || b < rc.B0 || b > rc.B1 {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.T = t
	rec.Point = r.At(t)
	rec.U = (a - rc.A0) / (rc.A1 - rc.A0)
	rec.V = (b - rc.B0) / (rc.B1 - rc.B0)
	rec.SetFaceNormal(r, rc.outwardNormal())
	rec.Material = rc.Material
	return rec, true
}

// Normal returns the rectangle's fixed outward-facing normal, exposed
// for area-light emission sampling.
func (rc *Rect) Normal() core.Vec3 { return rc.outwardNormal() }

// SamplePoint draws a point uniformly distributed over the rectangle's
// surface, for area-light photon emission.
func (rc *Rect) SamplePoint(s core.Sampler) core.Point3 {
	a0, a1 := s.Get2D()
	a := rc.A0 + a0*(rc.A1-rc.A0)
	b := rc.B0 + a1*(rc.B1-rc.B0)
	return rc.pointFromComponents(rc.K, a, b)
}

// BoundingBox implements core.Hittable. The rectangle has zero thickness
// along its perpendicular axis; a thin pad keeps the box non-degenerate
// so the slab test in AABB.Hit, which rejects an interval whose ends
// coincide, does not miss every ray on that axis.
func (rc *Rect) BoundingBox() (core.AABB, bool) {
	const pad = 1e-4
	min := rc.pointFromComponents(rc.K-pad, rc.A0, rc.B0)
	max := rc.pointFromComponents(rc.K+pad, rc.A1, rc.B1)
	return core.NewAABB(min, max), true
}
