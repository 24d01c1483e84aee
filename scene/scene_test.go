package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/photonray/photonray/core"
)

func TestConfigValidateRejectsNonPositiveDimensions(t *testing.T) {
	c := DefaultConfig()
	c.ImageWidth = 0
	require.Error(t, c.Validate())
}

func TestConfigValidateRejectsNonSquareSamplesForMultiJittered(t *testing.T) {
	c := DefaultConfig()
	c.Sampler = "multi_jittered"
	c.SamplesPerPixel = 10
	require.Error(t, c.Validate())

	c.SamplesPerPixel = 16
	require.NoError(t, c.Validate())
}

func TestConfigValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

const minimalScene = `
camera:
  look_from: {x: 0, y: 0, z: 0}
  look_at: {x: 0, y: 0, z: -1}
  up: {x: 0, y: 1, z: 0}
  viewport_width: 2
  viewport_height: 2
  focal_length: 1

config:
  image_width: 10
  image_height: 10
  samples_per_pixel: 4
  max_depth: 5
  max_photons: 100
  max_estimate: 10
  seed: 1
  workers: 1
  sampler: independent

materials:
  ground:
    kind: diffuse
    albedo: {x: 0.5, y: 0.5, z: 0.5}
  glow:
    kind: emissive
    emit: {x: 4, y: 4, z: 4}

primitives:
  - kind: sphere
    material: ground
    center: {x: 0, y: 0, z: -1}
    radius: 0.5
  - kind: plane
    material: ground
    point: {x: 0, y: -0.5, z: 0}
    normal: {x: 0, y: 1, z: 0}

lights:
  - axis: xz
    a0: -1
    a1: 1
    b0: -1
    b1: 1
    k: 5
    color: {x: 4, y: 4, z: 4}
`

func TestLoadAssemblesSceneFromYAML(t *testing.T) {
	s, err := Load(strings.NewReader(minimalScene))
	require.NoError(t, err)
	require.NotNil(t, s.World)
	require.NotNil(t, s.Camera)
	require.Len(t, s.Lights, 1)
	require.Equal(t, 10, s.Config.ImageWidth)

	box, ok := s.World.BoundingBox()
	require.True(t, ok)
	require.False(t, box.Min == core.Vec3{} && box.Max == core.Vec3{})
}

func TestLoadRejectsUnknownMaterialReference(t *testing.T) {
	bad := strings.Replace(minimalScene, "material: ground", "material: nope", 1)
	_, err := Load(strings.NewReader(bad))
	require.Error(t, err)
}

func TestLoadRejectsUnknownMaterialKind(t *testing.T) {
	bad := strings.Replace(minimalScene, "kind: diffuse", "kind: glossy", 1)
	_, err := Load(strings.NewReader(bad))
	require.Error(t, err)
}

func TestCameraGetRayPointsTowardLookAt(t *testing.T) {
	cam := NewCamera(core.V3(0, 0, 0), core.V3(0, 0, -1), core.V3(0, 1, 0), 2, 2, 1)
	r := cam.GetRay(0.5, 0.5)
	require.InDelta(t, 0, r.Direction.X, 1e-9)
	require.InDelta(t, 0, r.Direction.Y, 1e-9)
	require.Less(t, r.Direction.Z, 0.0)
}
