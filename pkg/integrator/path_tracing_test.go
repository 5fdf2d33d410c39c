package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func newSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// TestPathTracingDepthTermination tests that ray depth is properly limited
func TestPathTracingDepthTermination(t *testing.T) {
	light := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDiffuseLight(core.NewVec3(4, 4, 4)))
	world := geometry.NewHittableList(light)
	integrator := NewPathTracingIntegrator(core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if got := integrator.RayColor(ray, world, nil, 0, newSampler(42)); got != (core.Vec3{}) {
		t.Errorf("Expected black color for depth 0, got %v", got)
	}
	if got := integrator.RayColor(ray, world, nil, -3, newSampler(42)); got != (core.Vec3{}) {
		t.Errorf("Expected black color for negative depth, got %v", got)
	}
	if got := integrator.RayColor(ray, world, nil, 1, newSampler(42)); got != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected emission at depth 1, got %v", got)
	}
}

func TestPathTracingMissReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.2, 0.3, 0.4)
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(1, 1, 1))))
	integrator := NewPathTracingIntegrator(background)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	if got := integrator.RayColor(ray, world, nil, 10, newSampler(1)); got != background {
		t.Errorf("Expected background %v, got %v", background, got)
	}
}

// A convex diffuse object under a uniform sky reflects exactly albedo × sky:
// cosine sampling cancels the BRDF and no bounce can hit the object again
func TestPathTracingWhiteFurnace(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.25, 0.75)
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLambertian(albedo)))
	integrator := NewPathTracingIntegrator(core.NewVec3(1, 1, 1))
	sampler := newSampler(7)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for i := 0; i < 100; i++ {
		got := integrator.RayColor(ray, world, nil, 5, sampler)
		if got.Subtract(albedo).Length() > 1e-9 {
			t.Fatalf("Expected %v, got %v", albedo, got)
		}
	}
}

func TestPathTracingSpecularChain(t *testing.T) {
	// A mirror facing a light: one specular bounce reaches the emitter
	mirror := geometry.NewXYRect(-1, 1, -1, 1, -1, material.NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0))
	light := geometry.NewXYRect(-10, 10, -10, 10, 1, material.NewDiffuseLight(core.NewVec3(2, 2, 2)))
	world := geometry.NewHittableList(mirror, light)
	integrator := NewPathTracingIntegrator(core.Vec3{})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := integrator.RayColor(ray, world, nil, 5, newSampler(3))
	if got.Subtract(core.NewVec3(1, 1, 1)).Length() > 1e-9 {
		t.Errorf("Expected attenuated emission (1,1,1), got %v", got)
	}

	if got := integrator.RayColor(ray, world, nil, 1, newSampler(3)); got != (core.Vec3{}) {
		t.Errorf("Expected black when depth runs out before the light, got %v", got)
	}
}

// formFactorCorner is the form factor from a point to a parallel a×b
// rectangle at height c with one corner straight above the point
func formFactorCorner(a, b, c float64) float64 {
	x, y := a/c, b/c
	sx, sy := math.Sqrt(1+x*x), math.Sqrt(1+y*y)
	return (x/sx*math.Atan(y/sx) + y/sy*math.Atan(x/sy)) / (2 * math.Pi)
}

// Light sampling and BRDF sampling must converge to the same radiance
func TestPathTracingMixtureIsUnbiased(t *testing.T) {
	albedo := 0.5
	floor := geometry.NewXZRect(-5, 5, -5, 5, 0, material.NewLambertian(core.NewVec3(albedo, albedo, albedo)))
	light := geometry.NewXZRect(-1, 1, -1, 1, 1, material.NewDiffuseLight(core.NewVec3(1, 1, 1)))
	world := geometry.NewHittableList(floor, light)
	lights := geometry.NewHittableList(light)
	integrator := NewPathTracingIntegrator(core.Vec3{})

	expected := albedo * 4 * formFactorCorner(1, 1, 1)
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(-0.5, -0.5, 0))

	estimate := func(lights core.Sampleable, seed int64) float64 {
		sampler := newSampler(seed)
		const samples = 20000
		sum := 0.0
		for i := 0; i < samples; i++ {
			sum += integrator.RayColor(ray, world, lights, 3, sampler).X
		}
		return sum / samples
	}

	if got := estimate(nil, 11); math.Abs(got-expected) > 0.01 {
		t.Errorf("BRDF sampling: expected %f, got %f", expected, got)
	}
	if got := estimate(lights, 12); math.Abs(got-expected) > 0.01 {
		t.Errorf("Mixture sampling: expected %f, got %f", expected, got)
	}

	var empty *geometry.HittableList
	if got := estimate(empty, 13); math.Abs(got-expected) > 0.01 {
		t.Errorf("Nil light list: expected %f, got %f", expected, got)
	}
}

// A light list holding nothing sampleable must fall back to BRDF sampling
func TestPathTracingUnsampleableLightsIgnored(t *testing.T) {
	floor := geometry.NewXZRect(-5, 5, -5, 5, 0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	light := geometry.NewXZRect(-1, 1, -1, 1, 1, material.NewDiffuseLight(core.NewVec3(1, 1, 1)))
	world := geometry.NewHittableList(floor, light)
	fog := geometry.NewConstantMedium(geometry.NewSphere(core.NewVec3(0, 3, 0), 0.5, nil), 1, material.NewIsotropic(core.NewVec3(1, 1, 1)))
	lights := geometry.NewHittableList(fog)

	integrator := NewPathTracingIntegrator(core.Vec3{})
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(-0.5, -0.5, 0))

	withFog, withNil := newSampler(5), newSampler(5)
	for i := 0; i < 500; i++ {
		got := integrator.RayColor(ray, world, lights, 3, withFog)
		want := integrator.RayColor(ray, world, nil, 3, withNil)
		if got != want {
			t.Fatalf("Sample %d: expected %v as with no lights, got %v", i, want, got)
		}
	}
}
