package core

import "math"

// CosinePDF is the cosine-weighted hemisphere distribution around a normal
type CosinePDF struct {
	uvw ONB
}

// NewCosinePDF creates a cosine distribution around the normal w
func NewCosinePDF(w Vec3) *CosinePDF {
	return &CosinePDF{uvw: NewONB(w)}
}

// Value returns max(0, cosθ)/π
func (p *CosinePDF) Value(direction Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	return math.Max(0, cosine) / math.Pi
}

// Generate draws a cosine-weighted direction in world space
func (p *CosinePDF) Generate(sampler Sampler) Vec3 {
	return p.uvw.Local(RandomCosineDirection(sampler.Get2D()))
}

// HittablePDF samples directions from an origin toward a Sampleable target
type HittablePDF struct {
	Origin Vec3
	Target Sampleable
}

// NewHittablePDF creates a distribution toward target as seen from origin
func NewHittablePDF(target Sampleable, origin Vec3) *HittablePDF {
	return &HittablePDF{Origin: origin, Target: target}
}

// Value delegates to the target's solid-angle density
func (p *HittablePDF) Value(direction Vec3) float64 {
	return p.Target.PDFValue(p.Origin, direction)
}

// Generate delegates to the target's direction sampler
func (p *HittablePDF) Generate(sampler Sampler) Vec3 {
	return p.Target.Random(p.Origin, sampler)
}

// MixturePDF is an equal-weight mixture of two distributions
type MixturePDF struct {
	P0, P1 PDF
}

// NewMixturePDF creates a 50/50 mixture
func NewMixturePDF(p0, p1 PDF) *MixturePDF {
	return &MixturePDF{P0: p0, P1: p1}
}

// Value returns the unweighted average of both densities
func (p *MixturePDF) Value(direction Vec3) float64 {
	return 0.5*p.P0.Value(direction) + 0.5*p.P1.Value(direction)
}

// Generate picks one of the two distributions with a fair coin
func (p *MixturePDF) Generate(sampler Sampler) Vec3 {
	if sampler.Get1D() < 0.5 {
		return p.P0.Generate(sampler)
	}
	return p.P1.Generate(sampler)
}
