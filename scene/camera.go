package scene

import "github.com/photonray/photonray/core"

// Camera generates primary rays through a planar viewport, ported from
// original_source/camera.h and generalized per spec §6's camera record
// {eye, look-at, up, viewport width, viewport height, focal length}
// (the original hardcodes a 2x2 viewport and a focal length of 1).
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera builds a camera coordinate frame from the eye point, look-at
// target, up vector, and viewport dimensions/focal length.
func NewCamera(lookFrom, lookAt core.Point3, vup core.Vec3, viewportWidth, viewportHeight, focalLength float64) *Camera {
	w := lookFrom.Sub(lookAt).Unit()
	u := vup.Cross(w).Unit()
	v := w.Cross(u)

	horizontal := u.Mul(viewportWidth)
	vertical := v.Mul(viewportHeight)
	lowerLeft := lookFrom.Sub(horizontal.Div(2)).Sub(vertical.Div(2)).Sub(w.Mul(focalLength))

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeft,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// GetRay returns the perspective ray through viewport coordinates (s,t),
// each typically in [0,1].
func (c *Camera) GetRay(s, t float64) core.Ray {
	dir := c.lowerLeftCorner.Add(c.horizontal.Mul(s)).Add(c.vertical.Mul(t)).Sub(c.origin)
	return core.NewRay(c.origin, dir)
}
