package scene

import (
	"github.com/photonray/photonray/core"
	"github.com/photonray/photonray/geometry"
)

// AreaLight emits photons uniformly over a rectangular surface and
// uniformly over the outward hemisphere (spec §4.5: "a cosine-free
// uniform direction over the outward hemisphere"), satisfying
// photon.Light.
type AreaLight struct {
	Rect  *geometry.Rect
	Color core.Color
}

// NewAreaLight constructs an area light over the given rectangle,
// emitting the given color as each photon's initial power.
func NewAreaLight(rect *geometry.Rect, color core.Color) *AreaLight {
	return &AreaLight{Rect: rect, Color: color}
}

// Emit draws a uniformly distributed point on the rectangle and a
// uniformly distributed direction over its outward hemisphere.
func (l *AreaLight) Emit(sampler core.Sampler) (core.Ray, core.Color) {
	origin := l.Rect.SamplePoint(sampler)
	normal := l.Rect.Normal()

	dir := core.RandomUnitVector(sampler)
	if dir.Dot(normal) < 0 {
		dir = dir.Neg()
	}
	return core.NewRay(origin, dir), l.Color
}
