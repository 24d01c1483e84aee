// Package material implements the four built-in BSDF kinds (spec §4.3)
// and the texture types that back their albedo/emission lookups.
package material

import (
	"math"

	"github.com/photonray/photonray/core"
)

// Diffuse scatters incident light by a cosine-weighted hemisphere
// direction (approximated, per the original's lambertian, by
// normal + a random unit vector), and deposits photons in the photon
// pass. It emits no light.
type Diffuse struct {
	Albedo core.Texture
}

// NewDiffuse constructs a diffuse material from a solid color.
func NewDiffuse(albedo core.Color) *Diffuse {
	return &Diffuse{Albedo: NewSolidColor(albedo)}
}

// NewDiffuseTexture constructs a diffuse material from an arbitrary texture.
func NewDiffuseTexture(albedo core.Texture) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

func (d *Diffuse) Scatter(rIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(sampler)).Unit()
	if direction.NearZero() {
		direction = hit.Normal
	}
	return core.ScatterResult{
		Attenuation: d.Albedo.Value(hit.U, hit.V, hit.Point),
		Ray:         core.NewRay(hit.Point, direction),
	}, true
}

func (d *Diffuse) Emitted(u, v float64, p core.Point3) core.Color {
	return core.Color{}
}

func (d *Diffuse) AlbedoColor() core.Color { return d.Albedo.Value(0, 0, core.Vec3{}) }
func (d *Diffuse) Kind() core.Kind         { return core.Diffuse }

// Specular reflects incident light perfectly about the surface normal
// (the original's metal material), succeeding only when the reflected
// ray leaves the surface on the outward side.
type Specular struct {
	Albedo core.Texture
}

// NewSpecular constructs a specular (mirror) material from a solid color.
func NewSpecular(albedo core.Color) *Specular {
	return &Specular{Albedo: NewSolidColor(albedo)}
}

func (s *Specular) Scatter(rIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := core.Reflect(rIn.Direction.Unit(), hit.Normal)
	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}
	return core.ScatterResult{
		Attenuation: s.Albedo.Value(hit.U, hit.V, hit.Point),
		Ray:         core.NewRay(hit.Point, reflected),
	}, true
}

func (s *Specular) Emitted(u, v float64, p core.Point3) core.Color { return core.Color{} }
func (s *Specular) AlbedoColor() core.Color                        { return s.Albedo.Value(0, 0, core.Vec3{}) }
func (s *Specular) Kind() core.Kind                                { return core.Specular }

// Refractive transmits and reflects light per Snell's law with a
// Schlick-approximated Fresnel term (the original's dielectric), mirror
// reflecting instead on total internal reflection or when the Fresnel
// draw wins. Attenuation is a constant near-white per spec §4.3.
type Refractive struct {
	// RefractionIndex is the ratio of the medium's refractive index to vacuum.
	RefractionIndex float64
}

// NewRefractive constructs a dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewRefractive(refractionIndex float64) *Refractive {
	return &Refractive{RefractionIndex: refractionIndex}
}

var refractiveAttenuation = core.V3(0.99*0.99*0.99, 0.99*0.99*0.99, 0.99*0.99*0.99)

func (r *Refractive) Scatter(rIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	ratio := r.RefractionIndex
	if hit.FrontFace {
		ratio = 1.0 / r.RefractionIndex
	}

	unitDir := rIn.Direction.Unit()
	cosTheta := math.Min(unitDir.Neg().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ratio*sinTheta > 1.0
	var direction core.Vec3
	if cannotRefract || schlickReflectance(cosTheta, ratio) > sampler.Get1D() {
		direction = core.Reflect(unitDir, hit.Normal)
	} else {
		direction = core.Refract(unitDir, hit.Normal, ratio)
	}

	return core.ScatterResult{
		Attenuation: refractiveAttenuation,
		Ray:         core.NewRay(hit.Point, direction),
	}, true
}

func (r *Refractive) Emitted(u, v float64, p core.Point3) core.Color { return core.Color{} }
func (r *Refractive) AlbedoColor() core.Color                        { return core.V3(1, 1, 1) }
func (r *Refractive) Kind() core.Kind                                { return core.Refractive }

// schlickReflectance approximates the Fresnel reflectance.
func schlickReflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// Emissive is a pure light source (the original's diffuse_light); Scatter
// always fails and Emitted returns the emission texture.
type Emissive struct {
	Emit core.Texture
}

// NewEmissive constructs an emissive material from a solid color.
func NewEmissive(emit core.Color) *Emissive {
	return &Emissive{Emit: NewSolidColor(emit)}
}

func (e *Emissive) Scatter(rIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (e *Emissive) Emitted(u, v float64, p core.Point3) core.Color {
	return e.Emit.Value(u, v, p)
}
func (e *Emissive) AlbedoColor() core.Color { return e.Emit.Value(0, 0, core.Vec3{}) }
func (e *Emissive) Kind() core.Kind         { return core.Emissive }
