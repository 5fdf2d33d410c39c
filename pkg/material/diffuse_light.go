package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emit Texture // Emitted light color/intensity
}

// NewDiffuseLight creates a new emitter with a constant color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates an emitter whose radiance varies over the surface
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter never scatters: lights absorb all incoming rays
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPDF is zero since nothing is scattered
func (e *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emitted radiance at the hit
func (e *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return e.Emit.Value(u, v, p)
}
