package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter always scatters diffusely. The outgoing direction is left to the
// integrator, which samples the cosine distribution mixed with light sampling.
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:         core.NewCosinePDF(hit.Normal),
	}, true
}

// ScatteringPDF returns cos(θ)/π for directions above the surface
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	return math.Max(0, cosine) / math.Pi
}
