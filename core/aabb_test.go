package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAABBHitMonotoneInterval(t *testing.T) {
	box := NewAABB(V3(-1, -1, -1), V3(1, 1, 1))
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		r := NewRay(
			V3(rng.Float64()*6-3, rng.Float64()*6-3, rng.Float64()*6-3),
			V3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1),
		)
		tMin, tMax := -5.0, 5.0
		hit := box.Hit(r, tMin, tMax)
		if hit {
			// Enlarging the interval must never turn a hit into a miss.
			require.True(t, box.Hit(r, tMin-10, tMax+10))
		}
	}
}

func TestAABBHitToleratesZeroDirectionComponent(t *testing.T) {
	box := NewAABB(V3(-1, -1, -1), V3(1, 1, 1))
	r := NewRay(V3(0, 0, -5), V3(0, 0, 1))
	require.True(t, box.Hit(r, 0, math.Inf(1)))

	miss := NewRay(V3(5, 5, -5), V3(0, 0, 1))
	require.False(t, box.Hit(miss, 0, math.Inf(1)))
}

func TestUnionContainsBothCorners(t *testing.T) {
	a := NewAABB(V3(0, 0, 0), V3(1, 1, 1))
	b := NewAABB(V3(-2, 3, -1), V3(4, 5, 0))
	u := Union(a, b)

	for _, corner := range corners(a) {
		require.True(t, containsPoint(u, corner))
	}
	for _, corner := range corners(b) {
		require.True(t, containsPoint(u, corner))
	}
}

func TestFitExpandsBox(t *testing.T) {
	box := EmptyAABB()
	box = box.Fit(V3(1, 2, 3))
	box = box.Fit(V3(-1, 5, 0))
	require.Equal(t, V3(-1, 2, 0), box.Min)
	require.Equal(t, V3(1, 5, 3), box.Max)
}

func TestSepAxisTieBreaksToX(t *testing.T) {
	box := NewAABB(V3(0, 0, 0), V3(2, 2, 2))
	require.Equal(t, 0, box.SepAxis())
}

func TestSepAxisPicksLargestExtent(t *testing.T) {
	box := NewAABB(V3(0, 0, 0), V3(1, 5, 2))
	require.Equal(t, 1, box.SepAxis())
}

func corners(b AABB) []Vec3 {
	out := make([]Vec3, 0, 8)
	for _, x := range []float64{b.Min.X, b.Max.X} {
		for _, y := range []float64{b.Min.Y, b.Max.Y} {
			for _, z := range []float64{b.Min.Z, b.Max.Z} {
				out = append(out, V3(x, y, z))
			}
		}
	}
	return out
}

func containsPoint(b AABB, p Vec3) bool {
	const eps = 1e-9
	return p.X >= b.Min.X-eps && p.X <= b.Max.X+eps &&
		p.Y >= b.Min.Y-eps && p.Y <= b.Max.Y+eps &&
		p.Z >= b.Min.Z-eps && p.Z <= b.Max.Z+eps
}
