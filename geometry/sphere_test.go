package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/photonray/photonray/core"
)

type stubMaterial struct{}

func (stubMaterial) Scatter(rIn core.Ray, rec core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}
func (stubMaterial) Emitted(u, v float64, p core.Point3) core.Color { return core.Color{} }
func (stubMaterial) AlbedoColor() core.Color                        { return core.V3(1, 1, 1) }
func (stubMaterial) Kind() core.Kind                                { return core.Diffuse }

func TestSphereHitCentered(t *testing.T) {
	s := NewSphere(core.V3(0, 0, -1), 0.5, stubMaterial{})
	r := core.NewRay(core.V3(0, 0, 0), core.V3(0, 0, -1))

	rec, ok := s.Hit(r, 0, math.Inf(1))
	require.True(t, ok)
	require.InDelta(t, 0.5, rec.T, 1e-12)
	require.True(t, rec.FrontFace)
	require.InDelta(t, 1.0, rec.Normal.Length(), 1e-9)
}

func TestSphereMiss(t *testing.T) {
	s := NewSphere(core.V3(0, 0, -1), 0.5, stubMaterial{})
	r := core.NewRay(core.V3(5, 5, 0), core.V3(0, 0, -1))
	_, ok := s.Hit(r, 0, math.Inf(1))
	require.False(t, ok)
}

func TestSphereBackFaceFromInside(t *testing.T) {
	s := NewSphere(core.V3(0, 0, 0), 1, stubMaterial{})
	r := core.NewRay(core.V3(0, 0, 0), core.V3(0, 0, 1))
	rec, ok := s.Hit(r, 0.001, math.Inf(1))
	require.True(t, ok)
	require.False(t, rec.FrontFace)
	require.InDelta(t, -1.0, rec.Normal.Z, 1e-9)
}

func TestSphereBoundingBox(t *testing.T) {
	s := NewSphere(core.V3(1, 2, 3), 2, stubMaterial{})
	box, ok := s.BoundingBox()
	require.True(t, ok)
	require.Equal(t, core.V3(-1, 0, 1), box.Min)
	require.Equal(t, core.V3(3, 4, 5), box.Max)
}
