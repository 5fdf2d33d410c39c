package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ConstantMedium is a participating medium of uniform density filling a
// convex boundary. Rays scatter inside it after an exponentially
// distributed free flight.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium fills boundary with a medium of the given density.
// phase is normally an isotropic material.
func NewConstantMedium(boundary core.Hittable, density float64, phase core.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phase,
		negInvDensity: -1.0 / density,
	}
}

// Hit samples a scattering event inside the medium. The sampler must not be nil.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+0.0001, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	t1 := math.Max(entry.T, tMin)
	t2 := math.Min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox is the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
