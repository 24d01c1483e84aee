package photon

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/photonray/photonray/core"
)

// Light is the photon-emission capability each area light in the scene
// exposes: sample an outgoing ray from the light's surface/solid angle
// and the initial power carried by that emission (spec §4.5 step 1).
type Light interface {
	Emit(sampler core.Sampler) (core.Ray, core.Color)
}

// Tracer runs the photon pass (spec §4.5): for each light, photons
// random-walk the scene, depositing a record at every diffuse
// interaction, with Russian-roulette termination and no deposit on
// specular/refractive bounces.
type Tracer struct {
	World    core.Hittable
	MaxDepth int
}

// NewTracer constructs a photon tracer over the given accelerated scene.
func NewTracer(world core.Hittable, maxDepth int) *Tracer {
	return &Tracer{World: world, MaxDepth: maxDepth}
}

const shadowEpsilon = 1e-3

// TraceLight emits from light until the number of emission attempts that
// deposited at least one photon reaches target. Final photon power is
// divided by the total number of emission attempts (deposit-yielding or
// not), per spec §4.5's normalization rule.
func (t *Tracer) TraceLight(light Light, target int, sampler core.Sampler) []Photon {
	var deposited []Photon
	successfulAttempts := 0
	totalAttempts := 0

	for successfulAttempts < target {
		totalAttempts++
		before := len(deposited)

		ray, power := light.Emit(sampler)
		deposited = t.walk(ray, power, t.MaxDepth, sampler, deposited)

		if len(deposited) > before {
			successfulAttempts++
		}
	}

	norm := 1.0 / float64(totalAttempts)
	for i := range deposited {
		deposited[i].Power = deposited[i].Power.Mul(norm)
	}
	return deposited
}

// walk performs the recursive random walk of a single photon, appending
// deposited records to out and returning the extended slice.
func (t *Tracer) walk(r core.Ray, power core.Color, depth int, sampler core.Sampler, out []Photon) []Photon {
	if depth <= 0 {
		return out
	}
	depth--

	hit, ok := t.World.Hit(r, shadowEpsilon, 1e18)
	if !ok {
		return out
	}

	switch hit.Material.Kind() {
	case core.Emissive:
		return out

	case core.Diffuse:
		hitColor := hit.Material.AlbedoColor()
		newPower := power.MulVec(hitColor)

		out = append(out, Photon{
			Position: hit.Point,
			Dir:      r.Direction.Unit(),
			Power:    newPower,
		})

		pDiffuse := hitColor.MaxComponent()
		if sampler.Get1D() > pDiffuse {
			return out
		}
		result, scattered := hit.Material.Scatter(r, hit, sampler)
		if !scattered {
			return out
		}
		return t.walk(result.Ray, newPower, depth, sampler, out)

	default: // Specular, Refractive: no deposit, continue the walk.
		hitColor := hit.Material.AlbedoColor()
		result, scattered := hit.Material.Scatter(r, hit, sampler)
		if !scattered {
			return out
		}
		return t.walk(result.Ray, power.MulVec(hitColor), depth, sampler, out)
	}
}

// TraceAll runs TraceLight concurrently across lights, one goroutine per
// light via errgroup, fanning emission work out across workers while
// propagating the first error (there are none today, but the shape
// matches how the render pass's tile fan-out reports failures). Each
// light's photons are traced with its own sampler from makeSampler,
// keeping the per-worker-RNG-stream contract of spec §5.
func (t *Tracer) TraceAll(ctx context.Context, lights []Light, targetPerLight int, makeSampler func(workerID int) core.Sampler) ([]Photon, error) {
	results := make([][]Photon, len(lights))

	g, _ := errgroup.WithContext(ctx)
	for i, light := range lights {
		i, light := i, light
		g.Go(func() error {
			results[i] = t.TraceLight(light, targetPerLight, makeSampler(i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]Photon, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
