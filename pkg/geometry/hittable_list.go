package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// HittableList is a linear collection of objects. It also serves as the
// light list: sampling picks a member uniformly.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Len returns the number of objects in the list. A nil list is empty.
func (l *HittableList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Objects)
}

// Hit returns the closest hit among all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar, sampler); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes. It is false for an
// empty list or when any member is unbounded.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	box := core.EmptyAABB()
	for _, object := range l.Objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		box = core.SurroundingBox(box, objectBox)
	}
	return box, true
}

// SampleableCount returns how many members can be importance-sampled. A nil
// list has none.
func (l *HittableList) SampleableCount() int {
	if l == nil {
		return 0
	}
	count := 0
	for _, object := range l.Objects {
		if _, ok := object.(core.Sampleable); ok {
			count++
		}
	}
	return count
}

// PDFValue averages the densities of the sampleable members. Members that
// cannot be sampled are never picked by Random, so they carry no weight.
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	sum := 0.0
	count := 0
	for _, object := range l.Objects {
		if target, ok := object.(core.Sampleable); ok {
			sum += target.PDFValue(origin, direction)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Random samples a direction toward a uniformly chosen sampleable member
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	count := l.SampleableCount()
	if count == 0 {
		return core.NewVec3(1, 0, 0)
	}

	pick := int(sampler.Get1D() * float64(count))
	if pick >= count {
		pick = count - 1
	}

	for _, object := range l.Objects {
		target, ok := object.(core.Sampleable)
		if !ok {
			continue
		}
		if pick == 0 {
			return target.Random(origin, sampler)
		}
		pick--
	}
	return core.NewVec3(1, 0, 0)
}
