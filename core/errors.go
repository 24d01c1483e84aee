package core

import "errors"

// ErrNoBoundingBox is returned by the BVH builder when a primitive's
// BoundingBox reports none — spec §4.2's build-time error for infinite
// primitives that were not routed through a separate unbounded list.
var ErrNoBoundingBox = errors.New("core: primitive has no finite bounding box")
