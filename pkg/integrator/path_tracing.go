package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// MinHitDistance keeps secondary rays from re-hitting the surface they leave
const MinHitDistance = 0.001

// PathTracingIntegrator implements unidirectional path tracing. Diffuse
// bounces sample a 50/50 mixture of light sampling and the material's own
// distribution.
type PathTracingIntegrator struct {
	Background core.Vec3 // Radiance returned by rays that escape the scene
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background core.Vec3) *PathTracingIntegrator {
	return &PathTracingIntegrator{Background: background}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Hittable, lights core.Sampleable, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, MinHitDistance, math.Inf(1), sampler)
	if !isHit {
		return pt.Background
	}

	emitted := emittedLight(hit)
	if hit.Material == nil {
		return emitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return emitted
	}

	if scatter.IsSpecular {
		incoming := pt.RayColor(scatter.SpecularRay, world, lights, depth-1, sampler)
		return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	return emitted.Add(pt.diffuseColor(ray, hit, scatter, world, lights, depth, sampler))
}

// diffuseColor samples the scattered direction from the light/material mixture
// and weights the incoming radiance by scatteringPDF/pdfValue
func (pt *PathTracingIntegrator) diffuseColor(ray core.Ray, hit *core.HitRecord, scatter core.ScatterRecord, world core.Hittable, lights core.Sampleable, depth int, sampler core.Sampler) core.Vec3 {
	pdf := scatter.PDF
	if hasLights(lights) {
		pdf = core.NewMixturePDF(core.NewHittablePDF(lights, hit.Point), scatter.PDF)
	}

	scattered := core.NewRayAt(hit.Point, pdf.Generate(sampler), ray.Time)
	pdfValue := pdf.Value(scattered.Direction)
	if pdfValue <= 0 {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	if scatteringPDF <= 0 {
		return core.Vec3{}
	}

	incoming := pt.RayColor(scattered, world, lights, depth-1, sampler)
	return scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue)
}

// emittedLight returns the emitted light from a material if it's emissive
func emittedLight(hit *core.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
		return emitter.Emitted(hit.U, hit.V, hit.Point)
	}
	return core.Vec3{}
}

// hasLights reports whether lights has anything to sample. A list without
// sampleable members would bias the mixture toward its fallback direction.
func hasLights(lights core.Sampleable) bool {
	if lights == nil {
		return false
	}
	if list, ok := lights.(interface{ SampleableCount() int }); ok {
		return list.SampleableCount() > 0
	}
	return true
}
