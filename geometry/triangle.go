package geometry

import "github.com/photonray/photonray/core"

// Triangle is a flat triangular primitive with an independent normal per
// vertex (Möller–Trumbore intersection, barycentric normal interpolation).
// Per-vertex normals default to the flat face normal; objloader overwrites
// them with area-weighted accumulated normals across shared vertices.
type Triangle struct {
	P0, P1, P2 core.Point3
	N0, N1, N2 core.Vec3
	Material   core.Material
}

// NewTriangle constructs a triangle with all three vertex normals set to
// the flat face normal (cross(e1,e2), unnormalized direction preserved
// until Hit normalizes the interpolated normal).
func NewTriangle(p0, p1, p2 core.Point3, mat core.Material) *Triangle {
	n := FaceNormal(p0, p1, p2)
	return &Triangle{P0: p0, P1: p1, P2: p2, N0: n, N1: n, N2: n, Material: mat}
}

// FaceNormal returns the (unnormalized) geometric normal of the triangle
// p0,p1,p2, following the winding order p1-p0, p2-p0.
func FaceNormal(p0, p1, p2 core.Point3) core.Vec3 {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	return e1.Cross(e2)
}

const triangleEpsilon = 1e-8

// Hit implements core.Hittable using the Möller–Trumbore algorithm; the
// hit normal is barycentric-interpolated across the triangle's three
// (possibly distinct) vertex normals.
func (tr *Triangle) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	e1 := tr.P1.Sub(tr.P0)
	e2 := tr.P2.Sub(tr.P0)
	qv := r.Direction.Cross(e2)
	a := e1.Dot(qv)
	if a > -triangleEpsilon && a < triangleEpsilon {
		return core.HitRecord{}, false
	}
	f := 1.0 / a
	s := r.Origin.Sub(tr.P0)
	u := f * s.Dot(qv)
	if u < 0.0 || u > 1.0 {
		return core.HitRecord{}, false
	}
	rv := s.Cross(e1)
	v := f * r.Direction.Dot(rv)
	if v < 0.0 || u+v > 1.0 {
		return core.HitRecord{}, false
	}
	t := f * e2.Dot(rv)
	if t <= tMin || t >= tMax {
		return core.HitRecord{}, false
	}

	w := 1 - u - v
	outward := tr.N0.Mul(w).Add(tr.N1.Mul(u)).Add(tr.N2.Mul(v)).Unit()

	var rec core.HitRecord
	rec.T = t
	rec.Point = r.At(t)
	rec.SetFaceNormal(r, outward)
	rec.U, rec.V = u, v
	rec.Material = tr.Material
	return rec, true
}

// BoundingBox implements core.Hittable as the axis-aligned box of the
// three vertices.
func (tr *Triangle) BoundingBox() (core.AABB, bool) {
	box := core.EmptyAABB()
	box = box.Fit(tr.P0)
	box = box.Fit(tr.P1)
	box = box.Fit(tr.P2)
	return box, true
}
