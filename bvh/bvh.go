// Package bvh implements the axis-aligned bounding-volume hierarchy used
// to accelerate ray intersection against the scene's primitive list
// (spec §4.2): centroid-spread axis selection, middle-point partitioning,
// and closest-hit traversal with t_max tightening between children.
package bvh

import (
	"fmt"
	"math"

	"github.com/photonray/photonray/core"
)

// Node is one node of the hierarchy. A leaf stores one primitive twice
// (Left == Right, a deliberate sentinel per spec §3) or two primitives
// once each; an inner node's Box is the union of its children's boxes.
// Nodes are immutable once Build returns.
type Node struct {
	Left, Right core.Hittable
	Box         core.AABB
}

// Build constructs a BVH over primitives. The input slice is reordered
// in place during construction (the scratch-array approach described in
// spec §4.2); callers that need the original order preserved should pass
// a copy. Returns core.ErrNoBoundingBox if any primitive reports no
// finite bounding box — callers must route unbounded primitives (planes)
// through a separate non-accelerated list before calling Build.
func Build(primitives []core.Hittable) (*Node, error) {
	if len(primitives) == 0 {
		return nil, fmt.Errorf("bvh: cannot build over an empty primitive list")
	}
	return build(primitives, 0, len(primitives))
}

func build(objects []core.Hittable, start, end int) (*Node, error) {
	axis, mid := splitPlane(objects, start, end)
	span := end - start

	n := &Node{}

	switch {
	case span == 1:
		n.Left, n.Right = objects[start], objects[start]
	case span == 2:
		n.Left, n.Right = objects[start], objects[start+1]
	default:
		pivot := partition(objects, start, end, axis, mid)
		// Equal-count fallback (spec §4.2 tie-break): if every centroid
		// landed on one side (zero spread on every axis, or a
		// degenerate middle point), partition alone never progresses.
		// Falling back to the midpoint of the range guarantees each
		// recursive call strictly shrinks, so the build always
		// terminates.
		if pivot == start || pivot == end {
			pivot = start + span/2
		}

		left, err := build(objects, start, pivot)
		if err != nil {
			return nil, err
		}
		right, err := build(objects, pivot, end)
		if err != nil {
			return nil, err
		}
		n.Left, n.Right = left, right
	}

	boxLeft, ok := n.Left.BoundingBox()
	if !ok {
		return nil, core.ErrNoBoundingBox
	}
	boxRight, ok := n.Right.BoundingBox()
	if !ok {
		return nil, core.ErrNoBoundingBox
	}
	n.Box = core.Union(boxLeft, boxRight)
	return n, nil
}

// splitPlane computes, over objects[start:end], the axis of maximum
// centroid spread and the midpoint of that spread — the split plane
// used by partition.
func splitPlane(objects []core.Hittable, start, end int) (axis int, mid float64) {
	maxRange := 0.0

	for a := 0; a < 3; a++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := start; i < end; i++ {
			box, ok := objects[i].BoundingBox()
			if !ok {
				continue
			}
			c := componentOf(box.Centroid(), a)
			if c < lo {
				lo = c
			}
			if c > hi {
				hi = c
			}
		}
		if hi-lo > maxRange {
			maxRange = hi - lo
			mid = (hi + lo) / 2
			axis = a
		}
	}
	return axis, mid
}

// partition reorders objects[start:end] in place so that every element
// with centroid coordinate (on axis) less than mid precedes every
// element that is not, and returns the boundary index.
func partition(objects []core.Hittable, start, end, axis int, mid float64) int {
	i := start
	for j := start; j < end; j++ {
		box, ok := objects[j].BoundingBox()
		if ok && componentOf(box.Centroid(), axis) < mid {
			objects[i], objects[j] = objects[j], objects[i]
			i++
		}
	}
	return i
}

func componentOf(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hit implements core.Hittable: the ray must hit this node's box before
// descending; the second child's search interval is tightened to the
// first child's hit parameter, guaranteeing the closest hit overall.
func (n *Node) Hit(r core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if !n.Box.Hit(r, tMin, tMax) {
		return core.HitRecord{}, false
	}

	leftRec, hitLeft := n.Left.Hit(r, tMin, tMax)
	rightTMax := tMax
	if hitLeft {
		rightTMax = leftRec.T
	}
	rightRec, hitRight := n.Right.Hit(r, tMin, rightTMax)

	if hitRight {
		return rightRec, true
	}
	return leftRec, hitLeft
}

// BoundingBox implements core.Hittable.
func (n *Node) BoundingBox() (core.AABB, bool) {
	return n.Box, true
}
