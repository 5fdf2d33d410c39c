package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestCosinePDF_Normalization(t *testing.T) {
	normal := NewVec3(1, 2, -1).Normalize()
	pdf := NewCosinePDF(normal)
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	// Uniform hemisphere sampling has density 1/(2π)
	const samples = 20000
	sum := 0.0
	for i := 0; i < samples; i++ {
		d := SampleOnUnitSphere(sampler.Get2D())
		if d.Dot(normal) < 0 {
			d = d.Negate()
		}
		sum += pdf.Value(d)
	}
	estimate := sum / samples * 2 * math.Pi

	if math.Abs(estimate-1.0) > 0.02 {
		t.Errorf("Expected cosine PDF to integrate to 1, got %f", estimate)
	}
}

func TestCosinePDF_GenerateMatchesValue(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	pdf := NewCosinePDF(normal)
	sampler := NewRandomSampler(rand.New(rand.NewSource(3)))

	for i := 0; i < 1000; i++ {
		d := pdf.Generate(sampler)
		cosine := d.Normalize().Dot(normal)
		if cosine < -1e-9 {
			t.Fatalf("Generated direction %v below the surface", d)
		}
		if math.Abs(pdf.Value(d)-math.Max(0, cosine)/math.Pi) > 1e-12 {
			t.Fatalf("Value mismatch for %v", d)
		}
	}

	if pdf.Value(NewVec3(0, -1, 0)) != 0 {
		t.Error("Expected zero density below the surface")
	}
}

// countingPDF returns a fixed direction and density and records how often it was sampled
type countingPDF struct {
	direction Vec3
	density   float64
	generated int
}

func (c *countingPDF) Value(direction Vec3) float64 {
	return c.density * math.Abs(direction.Normalize().Dot(c.direction))
}

func (c *countingPDF) Generate(sampler Sampler) Vec3 {
	c.generated++
	return c.direction
}

func TestMixturePDF_ValueIsAverage(t *testing.T) {
	p0 := &countingPDF{direction: NewVec3(0, 1, 0), density: 0.3}
	p1 := NewCosinePDF(NewVec3(0, 0, 1))
	mixture := NewMixturePDF(p0, p1)
	sampler := NewRandomSampler(rand.New(rand.NewSource(5)))

	for i := 0; i < 1000; i++ {
		d := SampleOnUnitSphere(sampler.Get2D())
		expected := 0.5*p0.Value(d) + 0.5*p1.Value(d)
		if got := mixture.Value(d); got != expected {
			t.Fatalf("Mixture value %f, expected %f", got, expected)
		}
	}
}

func TestMixturePDF_BranchRatio(t *testing.T) {
	p0 := &countingPDF{direction: NewVec3(1, 0, 0), density: 1}
	p1 := &countingPDF{direction: NewVec3(0, 1, 0), density: 1}
	mixture := NewMixturePDF(p0, p1)
	sampler := NewRandomSampler(rand.New(rand.NewSource(11)))

	const draws = 10000
	for i := 0; i < draws; i++ {
		mixture.Generate(sampler)
	}

	if p0.generated+p1.generated != draws {
		t.Fatalf("Expected %d generated samples, got %d", draws, p0.generated+p1.generated)
	}
	ratio := float64(p0.generated) / draws
	if ratio < 0.47 || ratio > 0.53 {
		t.Errorf("Expected roughly half of the samples from each branch, got ratio %f", ratio)
	}
}

// sampleableStub is a Sampleable with fixed answers
type sampleableStub struct {
	pdf       float64
	direction Vec3
}

func (s *sampleableStub) Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool) {
	return nil, false
}

func (s *sampleableStub) BoundingBox(time0, time1 float64) (AABB, bool) {
	return AABB{}, true
}

func (s *sampleableStub) PDFValue(origin, direction Vec3) float64 {
	return s.pdf
}

func (s *sampleableStub) Random(origin Vec3, sampler Sampler) Vec3 {
	return s.direction.Subtract(origin)
}

func TestHittablePDF_Delegates(t *testing.T) {
	target := &sampleableStub{pdf: 0.25, direction: NewVec3(0, 5, 0)}
	pdf := NewHittablePDF(target, NewVec3(0, 1, 0))

	if got := pdf.Value(NewVec3(0, 1, 0)); got != 0.25 {
		t.Errorf("Expected 0.25, got %f", got)
	}
	if got := pdf.Generate(nil); got != NewVec3(0, 4, 0) {
		t.Errorf("Expected (0,4,0), got %v", got)
	}
}
