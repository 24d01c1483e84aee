package material

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/photonray/photonray/core"
	"github.com/photonray/photonray/internal/color"
)

// SolidColor always returns the same color, independent of (u,v,p).
type SolidColor struct {
	Value_ core.Color
}

// NewSolidColor constructs a solid color texture.
func NewSolidColor(c core.Color) *SolidColor {
	return &SolidColor{Value_: c}
}

func (s *SolidColor) Value(u, v float64, p core.Point3) core.Color { return s.Value_ }

// Checker3D alternates between two colors based on the parity of the sum
// of the floored world-space coordinates (the original's checker_3d).
type Checker3D struct {
	Odd, Even core.Color
}

// NewChecker3D constructs a 3D checker texture.
func NewChecker3D(odd, even core.Color) *Checker3D {
	return &Checker3D{Odd: odd, Even: even}
}

func (c *Checker3D) Value(u, v float64, p core.Point3) core.Color {
	const eps = 1e-6
	sum := math.Floor(p.X+eps) + math.Floor(p.Y+eps) + math.Floor(p.Z+eps)
	if int(sum)%2 != 0 {
		return c.Odd
	}
	return c.Even
}

// StripedSphere alternates colors along the v (latitude) surface
// parameter, intended for use with sphere UV coordinates.
type StripedSphere struct {
	StripeCount int
	Odd, Even   core.Color
}

// NewStripedSphere constructs a latitude-striped texture.
func NewStripedSphere(stripeCount int, odd, even core.Color) *StripedSphere {
	return &StripedSphere{StripeCount: stripeCount, Odd: odd, Even: even}
}

func (s *StripedSphere) Value(u, v float64, p core.Point3) core.Color {
	if int(v*float64(s.StripeCount))%2 != 0 {
		return s.Odd
	}
	return s.Even
}

// CheckeredSphere alternates colors in a checkerboard over both surface
// parameters, intended for use with sphere UV coordinates.
type CheckeredSphere struct {
	StripeCount int
	Odd, Even   core.Color
}

// NewCheckeredSphere constructs a u/v checkerboard texture.
func NewCheckeredSphere(stripeCount int, odd, even core.Color) *CheckeredSphere {
	return &CheckeredSphere{StripeCount: stripeCount, Odd: odd, Even: even}
}

func (c *CheckeredSphere) Value(u, v float64, p core.Point3) core.Color {
	sum := int(v*float64(c.StripeCount)) + int(u*float64(c.StripeCount))
	if sum%2 != 0 {
		return c.Odd
	}
	return c.Even
}

// NoiseRamp interpolates between three colors along a value-noise ramp
// (the original's perlin_meat), split into three thresholded bands with
// linear blending between adjacent bands.
type NoiseRamp struct {
	Noise Noise3D

	C0, C1, C2 core.Color
	T0, T1, T2 float64
}

// Noise3D produces a scalar noise value for a 3D position, typically in
// [-1,1] or [0,1] depending on the implementation.
type Noise3D interface {
	Noise(x, y, z float64) float64
}

// NewNoiseRamp constructs a three-band noise ramp texture using the
// original's default thresholds and colors.
func NewNoiseRamp(noise Noise3D) *NoiseRamp {
	return &NoiseRamp{
		Noise: noise,
		C0:    core.V3(0.305, 0.010, 0.010),
		C1:    core.V3(0.644, 0.004, 0.003),
		C2:    core.V3(0.965, 0.644, 0.761),
		T0:    0.220,
		T1:    0.423,
		T2:    0.614,
	}
}

func (n *NoiseRamp) Value(u, v float64, p core.Point3) core.Color {
	val := n.Noise.Noise(p.X, p.Y, p.Z)

	switch {
	case val < n.T0:
		return n.C0
	case val < n.T1:
		interval := n.T1 - n.T0
		return n.C0.Mul((n.T1 - val) / interval).Add(n.C1.Mul((val - n.T0) / interval))
	case val < n.T2:
		interval := n.T2 - n.T1
		return n.C1.Mul((n.T2 - val) / interval).Add(n.C2.Mul((val - n.T1) / interval))
	default:
		return n.C2
	}
}

// ImageTexture samples a decoded raster image as a texture, mapping (u,v)
// directly to normalized image coordinates. Supports PNG, JPEG (stdlib),
// and BMP/TIFF (golang.org/x/image, registered via blank import above)
// for scene assets that ship in those formats.
type ImageTexture struct {
	img image.Image
}

// NewImageTexture wraps a decoded image as a texture.
func NewImageTexture(img image.Image) *ImageTexture {
	return &ImageTexture{img: img}
}

func (t *ImageTexture) Value(u, v float64, p core.Point3) core.Color {
	bounds := t.img.Bounds()
	u = clamp01(u)
	v = 1.0 - clamp01(v) // flip v: image row 0 is the top of the texture

	i := bounds.Min.X + int(u*float64(bounds.Dx()))
	j := bounds.Min.Y + int(v*float64(bounds.Dy()))
	i = clampInt(i, bounds.Min.X, bounds.Max.X-1)
	j = clampInt(j, bounds.Min.Y, bounds.Max.Y-1)

	r, g, b, _ := t.img.At(i, j).RGBA()
	// Decoded image files carry sRGB-encoded bytes; convert to linear
	// before handing the sample back as a material albedo, so texture
	// lookups compose correctly with the rest of the linear-space light
	// transport. This runs once per photon/camera ray that hits a
	// textured surface, so the LUT-backed fast path earns its keep here.
	return core.V3(
		float64(color.SRGBToLinearFast(uint8(r>>8))),
		float64(color.SRGBToLinearFast(uint8(g>>8))),
		float64(color.SRGBToLinearFast(uint8(b>>8))),
	)
}

func clamp01(x float64) float64 {
	return clamp(x, 0, 1)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
