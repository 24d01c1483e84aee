package bvh

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/photonray/photonray/core"
)

type stubMaterial struct{}

func (stubMaterial) Scatter(rIn core.Ray, rec core.HitRecord, s core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}
func (stubMaterial) Emitted(u, v float64, p core.Point3) core.Color { return core.Color{} }
func (stubMaterial) AlbedoColor() core.Color                        { return core.V3(1, 1, 1) }
func (stubMaterial) Kind() core.Kind                                { return core.Diffuse }

type sphere struct {
	center core.Point3
	radius float64
}

func (s sphere) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	oc := r.Origin.Sub(s.center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.radius*s.radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(disc)
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
	rec.SetFaceNormal(r, rec.Point.Sub(s.center).Div(s.radius))
	rec.Material = stubMaterial{}
	return rec, true
}

func (s sphere) BoundingBox() (core.AABB, bool) {
	rad := core.V3(s.radius, s.radius, s.radius)
	return core.NewAABB(s.center.Sub(rad), s.center.Add(rad)), true
}

func linearScanHit(objects []core.Hittable, r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var best core.HitRecord
	hitAnything := false
	closest := tMax
	for _, obj := range objects {
		if rec, ok := obj.Hit(r, tMin, closest); ok {
			hitAnything = true
			closest = rec.T
			best = rec
		}
	}
	return best, hitAnything
}

func randomSpheres(n int, rng *rand.Rand) []core.Hittable {
	objects := make([]core.Hittable, n)
	for i := range objects {
		center := core.V3(rng.Float64(), rng.Float64(), rng.Float64())
		objects[i] = sphere{center: center, radius: 0.01 + rng.Float64()*0.03}
	}
	return objects
}

func TestBuildRootBoxIsUnionOfAllPrimitiveBoxes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	objects := randomSpheres(200, rng)

	want := core.EmptyAABB()
	for _, obj := range objects {
		box, _ := obj.BoundingBox()
		want = core.Union(want, box)
	}

	node, err := Build(objects)
	require.NoError(t, err)

	require.InDelta(t, want.Min.X, node.Box.Min.X, 1e-9)
	require.InDelta(t, want.Min.Y, node.Box.Min.Y, 1e-9)
	require.InDelta(t, want.Min.Z, node.Box.Min.Z, 1e-9)
	require.InDelta(t, want.Max.X, node.Box.Max.X, 1e-9)
	require.InDelta(t, want.Max.Y, node.Box.Max.Y, 1e-9)
	require.InDelta(t, want.Max.Z, node.Box.Max.Z, 1e-9)
}

func TestBVHClosestHitMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	objects := randomSpheres(1000, rng)
	linear := make([]core.Hittable, len(objects))
	copy(linear, objects)

	node, err := Build(objects)
	require.NoError(t, err)

	for i := 0; i < 64; i++ {
		origin := core.V3(rng.Float64()*2-0.5, rng.Float64()*2-0.5, rng.Float64()*2-0.5)
		dir := core.V3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		r := core.NewRay(origin, dir)

		wantRec, wantHit := linearScanHit(linear, r, 0.001, math.Inf(1))
		gotRec, gotHit := node.Hit(r, 0.001, math.Inf(1))

		require.Equal(t, wantHit, gotHit)
		if wantHit {
			require.InDelta(t, wantRec.T, gotRec.T, 1e-9)
		}
	}
}

func TestBuildSingleAndTwoPrimitiveLeaves(t *testing.T) {
	one := []core.Hittable{&sphere{center: core.V3(0, 0, 0), radius: 1}}
	node, err := Build(one)
	require.NoError(t, err)
	require.Same(t, node.Left, node.Right)

	two := []core.Hittable{
		&sphere{center: core.V3(0, 0, 0), radius: 1},
		&sphere{center: core.V3(5, 0, 0), radius: 1},
	}
	node2, err := Build(two)
	require.NoError(t, err)
	require.NotSame(t, node2.Left, node2.Right)
}

func TestBuildDegenerateCentroidsTerminates(t *testing.T) {
	objects := make([]core.Hittable, 10)
	for i := range objects {
		objects[i] = sphere{center: core.V3(0, 0, 0), radius: 1}
	}
	node, err := Build(objects)
	require.NoError(t, err)
	require.NotNil(t, node)
}

func TestBuildReportsErrorForUnboundedPrimitive(t *testing.T) {
	objects := []core.Hittable{
		sphere{center: core.V3(0, 0, 0), radius: 1},
		unboundedPrimitive{},
	}
	_, err := Build(objects)
	require.ErrorIs(t, err, core.ErrNoBoundingBox)
}

type unboundedPrimitive struct{}

func (unboundedPrimitive) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return core.HitRecord{}, false
}
func (unboundedPrimitive) BoundingBox() (core.AABB, bool) { return core.AABB{}, false }
