package core

import "math"

// AABB is an axis-aligned bounding box. The distinguished empty box has
// Min = +Inf and Max = -Inf on every axis, so that Union with any real box
// yields that box unchanged.
type AABB struct {
	Min, Max Point3
}

// EmptyAABB returns the distinguished empty bounding box.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: V3(inf, inf, inf), Max: V3(-inf, -inf, -inf)}
}

// NewAABB constructs a box from its corners. It does not require a <= b
// componentwise; Min/Max are derived from the actual min/max per axis.
func NewAABB(a, b Point3) AABB {
	return AABB{
		Min: V3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		Max: V3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
	}
}

// Centroid returns (Min+Max)/2.
func (b AABB) Centroid() Point3 {
	return b.Min.Add(b.Max).Div(2)
}

// Fit expands the box (in place semantics via return value) to include p.
func (b AABB) Fit(p Point3) AABB {
	return AABB{
		Min: V3(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)),
		Max: V3(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)),
	}
}

// Union returns the smallest AABB enclosing both a and b.
func Union(a, b AABB) AABB {
	return AABB{
		Min: V3(math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)),
		Max: V3(math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)),
	}
}

// Extent returns Max-Min, the per-axis size of the box.
func (b AABB) Extent() Vec3 {
	return b.Max.Sub(b.Min)
}

// SepAxis returns the index (0=x, 1=y, 2=z) of the axis of maximum extent.
// Ties are broken toward the lower axis index (x wins over y and z, y wins
// over z), matching the original implementation's if/else-if cascade.
func (b AABB) SepAxis() int {
	e := b.Extent()
	axis := 0
	max := e.X
	if e.Y > max {
		axis = 1
		max = e.Y
	}
	if e.Z > max {
		axis = 2
	}
	return axis
}

// Hit performs the slab test across all three axes, tightening [tMin,tMax]
// as it goes and failing the instant the interval inverts. Division by a
// zero direction component relies on IEEE +/-Inf arithmetic rather than a
// branch, so axis-aligned rays through axis-aligned planes are handled
// without special-casing.
func (b AABB) Hit(r Ray, tMin, tMax float64) bool {
	for a := 0; a < 3; a++ {
		var origin, dir, lo, hi float64
		switch a {
		case 0:
			origin, dir, lo, hi = r.Origin.X, r.Direction.X, b.Min.X, b.Max.X
		case 1:
			origin, dir, lo, hi = r.Origin.Y, r.Direction.Y, b.Min.Y, b.Max.Y
		default:
			origin, dir, lo, hi = r.Origin.Z, r.Direction.Z, b.Min.Z, b.Max.Z
		}

		invD := 1.0 / dir
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}
