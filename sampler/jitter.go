package sampler

import (
	"math"
	"math/rand"

	"github.com/photonray/photonray/core"
)

// MultiJittered implements N-rooks-with-removal multi-jitter sampling,
// ported from the original's jitter.h. Samples-per-pixel S must be a
// perfect square S = n*n; the unit pixel square is divided into an n x n
// coarse grid, and within each coarse cell a sample is placed so that
// its row also falls in a not-yet-used row-stratum and its column in a
// not-yet-used column-stratum, giving both an n x n stratification and
// a finer 1-sample-per-row/column guarantee (spec §8 invariant 7).
type MultiJittered struct {
	rng *rand.Rand
	n   int // coarse grid dimension, n = sqrt(samples)
	s   int // samples = n*n
}

// NewMultiJittered constructs a multi-jittered sampler for n*n samples
// per pixel, seeded deterministically.
func NewMultiJittered(seed int64, n int) *MultiJittered {
	return &MultiJittered{rng: rand.New(rand.NewSource(seed)), n: n, s: n * n}
}

func (m *MultiJittered) Get1D() float64 { return m.rng.Float64() }
func (m *MultiJittered) Get2D() (float64, float64) {
	return m.rng.Float64(), m.rng.Float64()
}

// PixelOffsets returns the n*n jittered subpixel offsets for one pixel.
// The pixel coordinates (i,j) are unused: offsets live in the pixel's
// own [0,1)x[0,1) unit square and a caller translates them by (i,j).
func (m *MultiJittered) PixelOffsets(i, j int) []core.Offset {
	n := m.n
	gridUnit := 1.0 / float64(m.s)
	coarseUnit := 1.0 / float64(n)

	// rowCeils[r] / colCeils[c] are the still-unused fine-grid indices
	// within coarse row r / coarse column c; each pool starts as
	// [0, n) and shrinks by one draw-without-replacement per use.
	rowCeils := make([][]int, n)
	colCeils := make([][]int, n)
	for k := 0; k < n; k++ {
		rowCeils[k] = identityPool(n)
		colCeils[k] = identityPool(n)
	}

	offsets := make([]core.Offset, 0, m.s)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			rowIdx := m.popRandom(&rowCeils[r])
			colIdx := m.popRandom(&colCeils[c])

			rowMin := float64(r)*coarseUnit + float64(rowIdx)*gridUnit
			colMin := float64(c)*coarseUnit + float64(colIdx)*gridUnit

			jr, jc := m.Get2D()
			x := colMin + jc*gridUnit
			y := rowMin + jr*gridUnit
			offsets = append(offsets, core.Offset{X: math.Min(x, 1), Y: math.Min(y, 1)})
		}
	}
	return offsets
}

func identityPool(n int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	return pool
}

// popRandom removes and returns one uniformly chosen element from the
// pool, mirroring jitter.h's vector-erase-by-random-index step.
func (m *MultiJittered) popRandom(pool *[]int) int {
	p := *pool
	k := int(m.rng.Float64() * float64(len(p)))
	if k >= len(p) {
		k = len(p) - 1
	}
	v := p[k]
	p[k] = p[len(p)-1]
	*pool = p[:len(p)-1]
	return v
}

var (
	_ core.Sampler      = (*MultiJittered)(nil)
	_ core.PixelSampler = (*MultiJittered)(nil)
)
