package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// Translate instances an object displaced by Offset
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
}

// NewTranslate wraps object so it appears moved by offset
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into object space, intersects, and moves the hit back
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	moved := core.NewRayAt(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, ok := tr.Object.Hit(moved, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(tr.Offset)
	hit.SetFaceNormal(ray, hit.OutwardNormal())
	return hit, true
}

// BoundingBox shifts the wrapped object's box by Offset
func (tr *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := tr.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(tr.Offset), box.Max.Add(tr.Offset)), true
}

// PDFValue evaluates the wrapped object's density from the object-space origin
func (tr *Translate) PDFValue(origin, direction core.Vec3) float64 {
	target, ok := tr.Object.(core.Sampleable)
	if !ok {
		return 0
	}
	return target.PDFValue(origin.Subtract(tr.Offset), direction)
}

// Random samples the wrapped object; directions are unchanged by translation
func (tr *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	target, ok := tr.Object.(core.Sampleable)
	if !ok {
		return core.NewVec3(1, 0, 0)
	}
	return target.Random(origin.Subtract(tr.Offset), sampler)
}
