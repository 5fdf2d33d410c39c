package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Hittable is anything a ray can intersect: primitives, transforms, aggregates
type Hittable interface {
	// Hit returns the closest intersection with t in [tMin, tMax].
	// The sampler is only consulted by probabilistic geometry (participating
	// media); deterministic shapes ignore it and accept nil.
	Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool)

	// BoundingBox returns a box enclosing the object over [time0, time1].
	// The bool is false for unbounded objects.
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Sampleable is a Hittable that can act as an importance-sampling target,
// usually an area light
type Sampleable interface {
	Hittable

	// PDFValue returns the solid-angle density of sampling direction from origin
	PDFValue(origin, direction Vec3) float64

	// Random returns a direction from origin toward a random point on the object
	Random(origin Vec3, sampler Sampler) Vec3
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit normal, always facing against the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray arrived from outside the surface
	Material  Material // Material at the hit, owned by the scene
	U, V      float64  // Surface coordinates in [0,1]
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// OutwardNormal recovers the geometric outward normal from an oriented record
func (h *HitRecord) OutwardNormal() Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Negate()
}

// Material interface for surfaces that scatter rays
type Material interface {
	// Scatter returns false when the ray is absorbed
	Scatter(rayIn Ray, hit *HitRecord, sampler Sampler) (ScatterRecord, bool)

	// ScatteringPDF returns the BRDF density for a scattered direction.
	// Only meaningful for diffuse materials; specular ones return 0.
	ScatteringPDF(rayIn Ray, hit *HitRecord, scattered Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(u, v float64, point Vec3) Vec3
}

// ScatterRecord contains the result of material scattering
type ScatterRecord struct {
	Attenuation Vec3 // Color attenuation
	IsSpecular  bool // Deterministic continuation: use SpecularRay, ignore PDF
	SpecularRay Ray  // Outgoing ray for specular scattering
	PDF         PDF  // Sampling distribution for diffuse scattering
}

// PDF is a direction distribution that can be sampled and evaluated
type PDF interface {
	// Value returns the solid-angle density of the given direction
	Value(direction Vec3) float64

	// Generate draws a direction from the distribution
	Generate(sampler Sampler) Vec3
}
