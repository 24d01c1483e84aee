// Package sampler provides the two subpixel-sampling strategies spec
// §4.7 accepts: plain independent uniform sampling, and a multi-jittered
// (N-rooks + stratified) sampler grounded on the original's jitter.h.
package sampler

import (
	"math/rand"

	"github.com/photonray/photonray/core"
)

// Independent draws every subpixel offset (and every other random
// number the renderer needs) as an independent uniform variate. It
// satisfies both core.Sampler and core.PixelSampler.
type Independent struct {
	rng     *rand.Rand
	samples int
}

// NewIndependent constructs an independent sampler producing `samples`
// offsets per pixel, seeded deterministically — each render worker gets
// its own instance via a distinct seed (spec §5).
func NewIndependent(seed int64, samples int) *Independent {
	return &Independent{rng: rand.New(rand.NewSource(seed)), samples: samples}
}

func (s *Independent) Get1D() float64 { return s.rng.Float64() }
func (s *Independent) Get2D() (float64, float64) {
	return s.rng.Float64(), s.rng.Float64()
}

// PixelOffsets returns s.samples independent uniform offsets in
// [0,1)x[0,1). The pixel coordinates are unused — offsets don't depend
// on pixel position, only on the sampler's own RNG stream.
func (s *Independent) PixelOffsets(i, j int) []core.Offset {
	out := make([]core.Offset, s.samples)
	for k := range out {
		x, y := s.Get2D()
		out[k] = core.Offset{X: x, Y: y}
	}
	return out
}

var (
	_ core.Sampler      = (*Independent)(nil)
	_ core.PixelSampler = (*Independent)(nil)
)
