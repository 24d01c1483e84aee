// Package integrator implements the recursive path integrator that
// resolves primary visibility and specular/refractive bounces directly,
// deferring diffuse global illumination to a photon-map density
// estimate the moment it sees the first diffuse surface (spec §4.6).
package integrator

import (
	"math"

	"github.com/photonray/photonray/core"
	"github.com/photonray/photonray/photon"
)

// PhotonMap is the read-only query surface the integrator needs from a
// built photon map; photon.Map satisfies it.
type PhotonMap interface {
	Query(q core.Point3, k int) ([]photon.Photon, []float64)
}

// PathIntegrator evaluates radiance along a ray by recursing through
// specular/refractive bounces and short-circuiting diffuse interactions
// into a k-NN photon-map density estimate (spec §4.6). It holds no
// mutable state and is safe for concurrent use by multiple render
// workers once constructed.
type PathIntegrator struct {
	World       core.Hittable
	Photons     PhotonMap
	MaxDepth    int
	MaxEstimate int // k in the k-NN density estimate
}

// NewPathIntegrator constructs an integrator over a built BVH/world and
// photon map.
func NewPathIntegrator(world core.Hittable, photons PhotonMap, maxDepth, maxEstimate int) *PathIntegrator {
	return &PathIntegrator{World: world, Photons: photons, MaxDepth: maxDepth, MaxEstimate: maxEstimate}
}

const integratorEpsilon = 1e-3

// RayColor evaluates the radiance arriving along ray r, recursing up to
// the integrator's MaxDepth.
func (p *PathIntegrator) RayColor(r core.Ray, sampler core.Sampler) core.Color {
	return p.rayColor(r, p.MaxDepth, sampler)
}

func (p *PathIntegrator) rayColor(r core.Ray, depth int, sampler core.Sampler) core.Color {
	if depth <= 0 {
		return core.Color{}
	}

	hit, ok := p.World.Hit(r, integratorEpsilon, math.Inf(1))
	if !ok {
		return core.Color{}
	}

	result, scattered := hit.Material.Scatter(r, hit, sampler)
	if !scattered {
		return hit.Material.Emitted(hit.U, hit.V, hit.Point)
	}

	if hit.Material.Kind() == core.Diffuse {
		return p.densityEstimate(hit)
	}

	// Specular/refractive: attenuate the recursive radiance along the
	// scattered ray.
	return result.Attenuation.MulVec(p.rayColor(result.Ray, depth-1, sampler))
}

// densityEstimate implements the photon-map radiance estimator (spec
// §4.6): accept only photons incident from the front of the surface,
// sum their power, and divide by pi*R^2 where R is the distance to the
// K-th accepted photon. Deliberately omits any BRDF/cosine factor — the
// spec preserves this as the documented estimator, not an oversight.
func (p *PathIntegrator) densityEstimate(hit core.HitRecord) core.Color {
	photons, distsSq := p.Photons.Query(hit.Point, p.MaxEstimate)
	if len(photons) == 0 {
		return core.Color{}
	}

	var sum core.Color
	maxDistSq := 0.0
	accepted := 0
	for i, ph := range photons {
		if ph.Dir.Dot(hit.Normal) >= 0 {
			continue
		}
		sum = sum.Add(ph.Power)
		accepted++
		if distsSq[i] > maxDistSq {
			maxDistSq = distsSq[i]
		}
	}
	if accepted == 0 || maxDistSq == 0 {
		return core.Color{}
	}

	return sum.Div(math.Pi * maxDistSq)
}
