package material

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/photonray/photonray/core"
)

type rngSampler struct{ rng *rand.Rand }

func (s rngSampler) Get1D() float64            { return s.rng.Float64() }
func (s rngSampler) Get2D() (float64, float64) { return s.rng.Float64(), s.rng.Float64() }

func testHit(normal core.Vec3, frontFace bool) core.HitRecord {
	return core.HitRecord{
		Point:     core.V3(0, 0, 0),
		Normal:    normal,
		U:         0.25,
		V:         0.75,
		FrontFace: frontFace,
	}
}

func TestDiffuseScatterStaysOnNormalSideAndUnitLength(t *testing.T) {
	d := NewDiffuse(core.V3(0.5, 0.5, 0.5))
	s := rngSampler{rand.New(rand.NewSource(1))}
	hit := testHit(core.V3(0, 1, 0), true)

	for i := 0; i < 100; i++ {
		res, ok := d.Scatter(core.NewRay(core.V3(0, 5, 0), core.V3(0, -1, 0)), hit, s)
		require.True(t, ok)
		require.InDelta(t, 1.0, res.Ray.Direction.Length(), 1e-9)
	}
	require.Equal(t, core.Diffuse, d.Kind())
}

func TestDiffuseEmitsNothing(t *testing.T) {
	d := NewDiffuse(core.V3(1, 1, 1))
	e := d.Emitted(0, 0, core.Vec3{})
	require.Equal(t, core.V3(0, 0, 0), e)
}

func TestSpecularReflectsAndRejectsGrazingBelowSurface(t *testing.T) {
	sp := NewSpecular(core.V3(1, 1, 1))
	s := rngSampler{rand.New(rand.NewSource(2))}

	hit := testHit(core.V3(0, 1, 0), true)
	rIn := core.NewRay(core.V3(0, 1, 0), core.V3(1, -1, 0))
	res, ok := sp.Scatter(rIn, hit, s)
	require.True(t, ok)
	require.Greater(t, res.Ray.Direction.Y, 0.0)
	require.Equal(t, core.Specular, sp.Kind())

	// An incident ray already heading away from the surface reflects to
	// below it, which Scatter rejects.
	_, ok = sp.Scatter(core.NewRay(core.V3(0, 0, 0), core.V3(1, 1, 0)), hit, s)
	require.False(t, ok)
}

func TestRefractiveAlwaysScattersWithConstantAttenuation(t *testing.T) {
	r := NewRefractive(1.5)
	s := rngSampler{rand.New(rand.NewSource(3))}
	hit := testHit(core.V3(0, 1, 0), true)
	rIn := core.NewRay(core.V3(0, 1, 0), core.V3(0.1, -1, 0))

	res, ok := r.Scatter(rIn, hit, s)
	require.True(t, ok)
	require.InDelta(t, 0.99*0.99*0.99, res.Attenuation.X, 1e-9)
	require.Equal(t, core.Refractive, r.Kind())
}

func TestEmissiveNeverScatters(t *testing.T) {
	e := NewEmissive(core.V3(4, 4, 4))
	s := rngSampler{rand.New(rand.NewSource(4))}
	hit := testHit(core.V3(0, 1, 0), true)

	_, ok := e.Scatter(core.NewRay(core.V3(0, 0, 0), core.V3(0, -1, 0)), hit, s)
	require.False(t, ok)
	require.Equal(t, core.V3(4, 4, 4), e.Emitted(0, 0, core.Vec3{}))
	require.Equal(t, core.Emissive, e.Kind())
}
