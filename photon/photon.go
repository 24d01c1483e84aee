// Package photon implements photon storage (Photon, Map) and the photon
// tracer (Tracer) that populates it (spec §4.4, §4.5): a balanced
// left-balanced k-d tree in heap layout supporting O(log N + k)
// k-nearest-neighbor queries, built by recursive quickselect partition.
package photon

import (
	"math"

	"github.com/photonray/photonray/core"
)

// Axis tags which coordinate an inner node's subtree is split on. Photons
// in the staging array passed to Build carry the zero value (AxisX), which
// has no meaning there; after Build every node's Axis is one of
// AxisX/AxisY/AxisZ (spec §3's "flag" field).
type Axis int8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Photon is a single deposited record: position, incident unit direction
// (toward the surface it bounced off of), and RGB power. Axis holds the
// k-d tree split axis once the photon has been placed by Build; it is
// meaningless before that.
type Photon struct {
	Position core.Point3
	Dir      core.Vec3
	Power    core.Color
	Axis     Axis
}

func axisOf(v core.Vec3, a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// Map is a fixed-size left-balanced k-d tree over photons, stored in
// heap layout: the root is at index 0, and the children of index i are
// at 2i+1 and 2i+2 (spec §3/§4.4). Once built, a Map is read-only and
// safe for concurrent queries from multiple goroutines (spec §5).
type Map struct {
	photons []Photon
}

// Build balances an unordered slice of photons into a Map. The input
// slice is mutated (partitioned) during construction; the staging array
// is then logically discarded in favor of the tree-ordered Map (spec
// §3's lifecycle note) — callers should not reuse photons afterward.
func Build(photons []Photon) *Map {
	m := &Map{photons: make([]Photon, len(photons))}
	m.balance(photons, 0, len(photons), 0)
	return m
}

// balance recursively places the median of buf[left:right] (by the axis
// of largest extent) at heap index, then recurses on the two halves.
func (m *Map) balance(buf []Photon, left, right, index int) {
	span := right - left
	if span == 0 {
		return
	}
	if span == 1 {
		buf[left].Axis = AxisX
		m.photons[index] = buf[left]
		return
	}

	box := core.EmptyAABB()
	for i := left; i < right; i++ {
		box = box.Fit(buf[i].Position)
	}
	axis := Axis(box.SepAxis())

	median := left + leftBalancedSize(span)
	nthElement(buf[left:right], median-left, axis)

	medianPhoton := buf[median]
	medianPhoton.Axis = axis
	m.photons[index] = medianPhoton

	m.balance(buf, left, median, index*2+1)
	m.balance(buf, median+1, right, index*2+2)
}

// leftBalancedSize returns the number of elements, out of n, that belong
// in the left subtree of a left-balanced heap layout: with
// s = 2^floor(log2 n), the left subtree holds min(s-1, n-s/2) elements.
// This exact formula (not a naive n/2 split) is what keeps the heap
// array a valid left-balanced tree for every N (spec §4.4 step 2).
func leftBalancedSize(n int) int {
	s := 1
	for n/s > 1 {
		s *= 2
	}
	half := s / 2
	diff := n - s
	if half > 0 && diff >= half {
		diff = half - 1
	}
	return half + diff
}

// nthElement partitions buf in place so that the element at index n (by
// the given axis's coordinate) is in its final sorted position, with
// every preceding element <= it and every following element >= it — the
// quickselect the original performs via std::nth_element, in O(n)
// expected time rather than a full O(n log n) sort.
func nthElement(buf []Photon, n int, axis Axis) {
	lo, hi := 0, len(buf)-1
	for lo < hi {
		pivot := lomutoPartition(buf, lo, hi, axis)
		switch {
		case n < pivot:
			hi = pivot - 1
		case n > pivot:
			lo = pivot + 1
		default:
			return
		}
	}
}

// lomutoPartition partitions buf[lo:hi+1] around buf[hi]'s coordinate on
// axis, returning the pivot's final index.
func lomutoPartition(buf []Photon, lo, hi int, axis Axis) int {
	pivotVal := axisOf(buf[hi].Position, axis)
	i := lo
	for j := lo; j < hi; j++ {
		if axisOf(buf[j].Position, axis) < pivotVal {
			buf[i], buf[j] = buf[j], buf[i]
			i++
		}
	}
	buf[i], buf[hi] = buf[hi], buf[i]
	return i
}

// Len returns the number of photons stored in the map.
func (m *Map) Len() int { return len(m.photons) }

// Photons returns the underlying heap-ordered photon array. Callers
// must not mutate the returned slice.
func (m *Map) Photons() []Photon { return m.photons }

// neighbor pairs a photon with its squared distance to a query
// point, used by the k-NN result buffer.
type neighbor struct {
	photon  Photon
	distSq  float64
	present bool
}

// Query returns up to k photons nearest to point q, sorted by increasing
// squared distance, alongside their squared distances. If the map holds
// fewer than k photons, the result is shorter than k.
func (m *Map) Query(q core.Point3, k int) ([]Photon, []float64) {
	if k <= 0 || len(m.photons) == 0 {
		return nil, nil
	}

	result := make([]neighbor, k)
	for i := range result {
		result[i].distSq = math.Inf(1)
	}

	m.nearest(q, k, 0, result)

	out := make([]Photon, 0, k)
	dists := make([]float64, 0, k)
	for _, r := range result {
		if !r.present {
			continue
		}
		out = append(out, r.photon)
		dists = append(dists, r.distSq)
	}
	return out, dists
}

// nearest recursively visits the subtree rooted at index, descending the
// near side first and the far side only when the splitting plane lies
// within the current k-th worst distance, then inserts the node's own
// distance into the sorted result by linear shift (spec §4.4 k-NN algorithm).
func (m *Map) nearest(q core.Point3, k, index int, result []neighbor) {
	if index >= len(m.photons) {
		return
	}

	node := m.photons[index]
	if index*2+1 < len(m.photons) {
		currMax := result[k-1].distSq
		diff := axisOf(q, node.Axis) - axisOf(node.Position, node.Axis)

		if diff < 0 {
			m.nearest(q, k, index*2+1, result)
			if diff*diff < currMax {
				m.nearest(q, k, index*2+2, result)
			}
		} else {
			m.nearest(q, k, index*2+2, result)
			if diff*diff < currMax {
				m.nearest(q, k, index*2+1, result)
			}
		}
	}

	distSq := node.Position.Sub(q).LengthSquared()
	if distSq >= result[k-1].distSq {
		return
	}

	left, right := 0, k
	for left < right {
		mid := (left + right) / 2
		if distSq < result[mid].distSq {
			right = mid
		} else {
			left = mid + 1
		}
	}

	for i := k - 1; i > left; i-- {
		result[i] = result[i-1]
	}
	result[left] = neighbor{photon: node, distSq: distSq, present: true}
}
