package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray. lights may be nil
	// when the scene has nothing to importance-sample.
	RayColor(ray core.Ray, world core.Hittable, lights core.Sampleable, depth int, sampler core.Sampler) core.Vec3
}
