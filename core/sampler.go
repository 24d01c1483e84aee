package core

// Sampler is the source of randomness threaded explicitly through every
// call that needs it, rather than drawn from global state. Each render
// tile and each photon-traced light owns its own Sampler instance, seeded
// deterministically from (master seed, tile or light index) so a render
// is reproducible for a given seed (spec §5).
type Sampler interface {
	// Get1D returns a uniform random float64 in [0,1).
	Get1D() float64
	// Get2D returns a pair of independent uniform floats in [0,1).
	Get2D() (float64, float64)
}

// PixelSampler additionally hands out the S subpixel offsets for a given
// pixel, per spec §4.7's external sampler contract.
type PixelSampler interface {
	Sampler
	// PixelOffsets returns the configured number of subpixel offsets in
	// [0,1)x[0,1) for pixel (i,j). Implementations may use independent
	// uniform sampling or a stratified/multi-jittered scheme; callers
	// must not assume any particular ordering of the returned slice.
	PixelOffsets(i, j int) []Offset
}

// Offset is a subpixel sample position within a pixel's unit square.
type Offset struct {
	X, Y float64
}
