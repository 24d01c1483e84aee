// Package core provides the vector, ray, bounding-box, and hit-record
// primitives shared by every other package in photonray, along with the
// Hittable, Material, and Sampler capability interfaces that tie them
// together.
package core

import "math"

// Vec3 is a triple of 64-bit floats used for points, directions, and
// colors alike. Point3 and Color are aliases for Vec3, distinguished only
// by the role a value plays at a given call site.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a Vec3 used as a position.
type Point3 = Vec3

// Color is a Vec3 used as an RGB radiance or reflectance value.
type Color = Vec3

// V3 constructs a Vec3 from its three components.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by a scalar.
func (v Vec3) Div(s float64) Vec3 {
	return v.Mul(1 / s)
}

// Neg returns the negation of the vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// MulVec returns the component-wise (Hadamard) product of two vectors.
// Used throughout for attenuating radiance by a surface albedo.
func (v Vec3) MulVec(w Vec3) Vec3 {
	return Vec3{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared length of the vector. Cheaper than
// Length when only comparing magnitudes.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Unit returns a unit vector in the same direction as v.
func (v Vec3) Unit() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// NearZero reports whether all components are close to zero, used to
// catch degenerate scatter directions before they propagate as NaN.
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// MaxComponent returns the largest of the three components — used for
// Russian-roulette survival probability and photon power bookkeeping.
func (v Vec3) MaxComponent() float64 {
	m := v.X
	if v.Y > m {
		m = v.Y
	}
	if v.Z > m {
		m = v.Z
	}
	return m
}

// Lerp linearly interpolates between v and w; t=0 returns v, t=1 returns w.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return v.Mul(1 - t).Add(w.Mul(t))
}

// RandomUnitVector draws a uniformly distributed unit vector using s,
// via rejection sampling inside the unit cube (original_source's
// random_unit_vector/random_in_unit_sphere lineage) rather than the
// cosine/sin polar parameterization, to stay branch-simple and bias-free
// near the poles.
func RandomUnitVector(s Sampler) Vec3 {
	for {
		a, b := s.Get2D()
		c := s.Get1D()
		v := V3(2*a-1, 2*b-1, 2*c-1)
		lenSq := v.LengthSquared()
		if lenSq > 1e-160 && lenSq <= 1 {
			return v.Div(math.Sqrt(lenSq))
		}
	}
}

// RandomInUnitDisk draws a uniformly distributed point in the unit disk
// (z=0), for lens sampling; scene.Camera is a pinhole camera and does not
// call it.
func RandomInUnitDisk(s Sampler) Vec3 {
	for {
		a, b := s.Get2D()
		v := V3(2*a-1, 2*b-1, 0)
		if v.LengthSquared() <= 1 {
			return v
		}
	}
}

// Reflect returns v reflected about a unit normal n.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract returns the refracted direction of a unit incident vector uv
// through a surface with unit normal n, given the ratio of refractive
// indices (incident over transmitted). Assumes cannot-refract has already
// been ruled out by the caller via Schlick reflectance / total internal
// reflection checks.
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(uv.Neg().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutParallel := n.Mul(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
