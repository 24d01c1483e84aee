package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/photonray/photonray/core"
)

func TestRectXYHit(t *testing.T) {
	rc := NewRect(AxisXY, -5, 5, 0, 10, -25, stubMaterial{})
	r := core.NewRay(core.V3(0, 5, 0), core.V3(0, 0, -1))

	rec, ok := rc.Hit(r, 0, math.Inf(1))
	require.True(t, ok)
	require.InDelta(t, 25.0, rec.T, 1e-9)
	require.InDelta(t, 0.5, rec.U, 1e-9)
	require.InDelta(t, 0.5, rec.V, 1e-9)
}

func TestRectMissOutsideBounds(t *testing.T) {
	rc := NewRect(AxisXY, -5, 5, 0, 10, -25, stubMaterial{})
	r := core.NewRay(core.V3(100, 5, 0), core.V3(0, 0, -1))
	_, ok := rc.Hit(r, 0, math.Inf(1))
	require.False(t, ok)
}

func TestRectParallelMiss(t *testing.T) {
	rc := NewRect(AxisXY, -5, 5, 0, 10, -25, stubMaterial{})
	r := core.NewRay(core.V3(0, 5, 0), core.V3(1, 0, 0))
	_, ok := rc.Hit(r, 0, math.Inf(1))
	require.False(t, ok)
}

func TestRectBoundingBoxIsNonDegenerate(t *testing.T) {
	rc := NewRect(AxisXZ, -5, 5, -5, 5, 3, stubMaterial{})
	box, ok := rc.BoundingBox()
	require.True(t, ok)
	require.Greater(t, box.Max.Y, box.Min.Y)
}

func TestRectNormalMatchesAxis(t *testing.T) {
	require.Equal(t, core.V3(0, 0, 1), NewRect(AxisXY, 0, 1, 0, 1, 0, stubMaterial{}).Normal())
	require.Equal(t, core.V3(0, 1, 0), NewRect(AxisXZ, 0, 1, 0, 1, 0, stubMaterial{}).Normal())
	require.Equal(t, core.V3(1, 0, 0), NewRect(AxisYZ, 0, 1, 0, 1, 0, stubMaterial{}).Normal())
}

type fixedSampler struct{ x, y float64 }

func (f fixedSampler) Get1D() float64            { return f.x }
func (f fixedSampler) Get2D() (float64, float64) { return f.x, f.y }

func TestRectSamplePointStaysWithinBounds(t *testing.T) {
	rc := NewRect(AxisXZ, -5, 5, -5, 5, 3, stubMaterial{})
	p := rc.SamplePoint(fixedSampler{0.25, 0.75})
	require.InDelta(t, 3.0, p.Y, 1e-9)
	require.InDelta(t, -2.5, p.X, 1e-9)
	require.InDelta(t, 2.5, p.Z, 1e-9)
}
