package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RotateY instances an object rotated about the Y axis
type RotateY struct {
	Object  core.Hittable
	Degrees float64
	toWorld mgl64.Mat3
	toLocal mgl64.Mat3
}

// NewRotateY wraps object rotated by the given angle in degrees
func NewRotateY(object core.Hittable, degrees float64) *RotateY {
	rotation := mgl64.Rotate3DY(mgl64.DegToRad(degrees))

	return &RotateY{
		Object:  object,
		Degrees: degrees,
		toWorld: rotation,
		toLocal: rotation.Transpose(),
	}
}

// Hit rotates the ray into object space, intersects, and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	local := core.NewRayAt(r.local(ray.Origin), r.local(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(local, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = r.world(hit.Point)
	hit.SetFaceNormal(ray, r.world(hit.OutwardNormal()))
	return hit, true
}

// BoundingBox bounds the eight rotated corners of the wrapped object's box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := r.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	corners := box.Corners()
	for i := range corners {
		corners[i] = r.world(corners[i])
	}
	return core.NewAABBFromPoints(corners[:]...), true
}

// PDFValue evaluates the wrapped object's density in object space
func (r *RotateY) PDFValue(origin, direction core.Vec3) float64 {
	target, ok := r.Object.(core.Sampleable)
	if !ok {
		return 0
	}
	return target.PDFValue(r.local(origin), r.local(direction))
}

// Random samples the wrapped object and rotates the direction into world space
func (r *RotateY) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	target, ok := r.Object.(core.Sampleable)
	if !ok {
		return core.NewVec3(1, 0, 0)
	}
	return r.world(target.Random(r.local(origin), sampler))
}

func (r *RotateY) world(v core.Vec3) core.Vec3 {
	return fromMgl(r.toWorld.Mul3x1(toMgl(v)))
}

func (r *RotateY) local(v core.Vec3) core.Vec3 {
	return fromMgl(r.toLocal.Mul3x1(toMgl(v)))
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
