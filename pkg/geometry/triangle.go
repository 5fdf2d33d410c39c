package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices.
// Both sides are hittable; U and V in the hit record are the barycentric
// weights of V1 and V2.
type Triangle struct {
	V0, V1, V2 core.Vec3     // The three vertices
	Material   core.Material // Material of the triangle
	faceNormal core.Vec3     // Unnormalized (V1-V0)×(V2-V0)
	normal     core.Vec3     // Cached unit normal
	dropAxis   int           // Dominant normal axis, skipped by the barycentric solve
	bbox       core.AABB     // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
	}

	t.faceNormal = v1.Subtract(v0).Cross(v2.Subtract(v0))
	t.normal = t.faceNormal.Normalize()
	t.dropAxis = dominantAxis(t.faceNormal)
	t.bbox = core.NewAABBFromPoints(v0, v1, v2).Expand(rectThickness)

	return t
}

// Normal returns the triangle's unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Area returns the triangle's area
func (t *Triangle) Area() float64 {
	return 0.5 * t.faceNormal.Length()
}

// Hit intersects the ray with the triangle's plane and then tests the
// crossing point against the three edges
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	const epsilon = 1e-12

	denominator := t.faceNormal.Dot(ray.Direction)
	if math.Abs(denominator) < epsilon {
		return nil, false
	}

	tHit := t.faceNormal.Dot(t.V0.Subtract(ray.Origin)) / denominator
	if tHit < tMin || tHit > tMax {
		return nil, false
	}
	point := ray.At(tHit)

	// Inside when all edge cross products agree with the face normal
	edges := [3][2]core.Vec3{{t.V0, t.V1}, {t.V1, t.V2}, {t.V2, t.V0}}
	for _, e := range edges {
		c := e[1].Subtract(e[0]).Cross(point.Subtract(e[0]))
		if t.faceNormal.Dot(c) < 0 {
			return nil, false
		}
	}

	u, v := t.barycentric(point)
	hitRecord := &core.HitRecord{
		T:        tHit,
		Point:    point,
		Material: t.Material,
		U:        u,
		V:        v,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// barycentric solves p - V0 = u·(V1-V0) + v·(V2-V0) in the two axes that
// keep the projected triangle largest
func (t *Triangle) barycentric(p core.Vec3) (u, v float64) {
	i, j := (t.dropAxis+1)%3, (t.dropAxis+2)%3

	e1 := t.V1.Subtract(t.V0)
	e2 := t.V2.Subtract(t.V0)
	d := p.Subtract(t.V0)

	det := e1.Axis(i)*e2.Axis(j) - e2.Axis(i)*e1.Axis(j)
	if det == 0 {
		return 0, 0
	}

	u = (d.Axis(i)*e2.Axis(j) - e2.Axis(i)*d.Axis(j)) / det
	v = (e1.Axis(i)*d.Axis(j) - d.Axis(i)*e1.Axis(j)) / det
	return u, v
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return t.bbox, true
}

// PDFValue returns the solid-angle density of sampling direction toward the triangle
func (t *Triangle) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := t.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), nil)
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(t.normal)) / direction.Length()
	return distanceSquared / (cosine * t.Area())
}

// Random returns a direction from origin toward a uniform point on the triangle
func (t *Triangle) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	su := math.Sqrt(sample.X)
	b0 := 1 - su
	b1 := sample.Y * su

	point := t.V0.Multiply(b0).Add(t.V1.Multiply(b1)).Add(t.V2.Multiply(1 - b0 - b1))
	return point.Subtract(origin)
}

// dominantAxis returns the axis of the largest absolute component
func dominantAxis(v core.Vec3) int {
	x, y, z := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case x >= y && x >= z:
		return 0
	case y >= z:
		return 1
	default:
		return 2
	}
}
