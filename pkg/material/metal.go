package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter reflects the ray about the normal and perturbs it by the fuzz radius
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness))
	}

	return core.ScatterRecord{
		Attenuation: m.Albedo,
		IsSpecular:  true,
		SpecularRay: core.NewRayAt(hit.Point, reflected, rayIn.Time),
	}, true
}

// ScatteringPDF is zero: the reflection is a delta distribution
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}
