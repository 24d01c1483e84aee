package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/photonray/photonray/core"
)

func TestTriangleHitCenter(t *testing.T) {
	tr := NewTriangle(core.V3(-1, 0, 0), core.V3(1, 0, 0), core.V3(0, 1, 0), stubMaterial{})
	r := core.NewRay(core.V3(0, 0.3, 5), core.V3(0, 0, -1))

	rec, ok := tr.Hit(r, 0, math.Inf(1))
	require.True(t, ok)
	require.InDelta(t, 5.0, rec.T, 1e-9)
}

func TestTriangleMissOutsideEdge(t *testing.T) {
	tr := NewTriangle(core.V3(-1, 0, 0), core.V3(1, 0, 0), core.V3(0, 1, 0), stubMaterial{})
	r := core.NewRay(core.V3(5, 5, 5), core.V3(0, 0, -1))
	_, ok := tr.Hit(r, 0, math.Inf(1))
	require.False(t, ok)
}

func TestTriangleBarycentricNormalInterpolation(t *testing.T) {
	tr := &Triangle{
		P0: core.V3(-1, 0, 0), P1: core.V3(1, 0, 0), P2: core.V3(0, 1, 0),
		N0: core.V3(0, 0, 1), N1: core.V3(0, 0, 1), N2: core.V3(1, 0, 0),
		Material: stubMaterial{},
	}
	r := core.NewRay(core.V3(0, 1, 5), core.V3(0, 0, -1))

	rec, ok := tr.Hit(r, 0, math.Inf(1))
	require.True(t, ok)
	// Hit point is at vertex P2, so the interpolated normal should align
	// with N2 exactly (up to the front/back sign flip SetFaceNormal applies).
	require.InDelta(t, 1.0, math.Abs(rec.Normal.X), 1e-6)
}

func TestTriangleBoundingBox(t *testing.T) {
	tr := NewTriangle(core.V3(-1, 0, 0), core.V3(1, 0, 2), core.V3(0, 3, -1), stubMaterial{})
	box, ok := tr.BoundingBox()
	require.True(t, ok)
	require.Equal(t, core.V3(-1, 0, -1), box.Min)
	require.Equal(t, core.V3(1, 3, 2), box.Max)
}
