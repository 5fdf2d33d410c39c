package material

import "github.com/df07/go-pathtracer/pkg/core"

// Isotropic is the phase function of a participating medium: every
// direction is equally likely
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates a phase function with a constant color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// Scatter sends the ray in a uniformly random direction
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	direction := core.SampleOnUnitSphere(sampler.Get2D())

	return core.ScatterRecord{
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
		IsSpecular:  true,
		SpecularRay: core.NewRayAt(hit.Point, direction, rayIn.Time),
	}, true
}

// ScatteringPDF is zero: the scattered ray is followed directly
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}
