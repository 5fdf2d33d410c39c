package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Plane selects which axis-aligned plane a rectangle lies in
type Plane int

const (
	PlaneXY Plane = iota // normal +Z
	PlaneXZ              // normal +Y
	PlaneYZ              // normal +X
)

// axes returns the two in-plane axes and the normal axis
func (p Plane) axes() (a, b, n int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

// rectThickness pads the flat bounding box so the slab test never sees zero width
const rectThickness = 0.0001

// AARect is an axis-aligned rectangle [A0,A1]×[B0,B1] at offset K along the normal axis
type AARect struct {
	Plane          Plane
	A0, A1, B0, B1 float64
	K              float64
	Material       core.Material
}

// NewXYRect creates a rectangle in the plane z=k
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *AARect {
	return &AARect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material}
}

// NewXZRect creates a rectangle in the plane y=k
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *AARect {
	return &AARect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material}
}

// NewYZRect creates a rectangle in the plane x=k
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *AARect {
	return &AARect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material}
}

// Normal returns the fixed outward normal of the rectangle
func (r *AARect) Normal() core.Vec3 {
	_, _, n := r.Plane.axes()
	return withAxis(core.Vec3{}, n, 1)
}

// Area returns the rectangle's area
func (r *AARect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// Hit tests if a ray crosses the rectangle inside [tMin, tMax]
func (r *AARect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	a, b, n := r.Plane.axes()

	t := (r.K - ray.Origin.Axis(n)) / ray.Direction.Axis(n)
	// A ray parallel to the plane gives ±Inf, or NaN when it lies in it
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, false
	}
	if t < tMin || t > tMax {
		return nil, false
	}

	pa := ray.Origin.Axis(a) + t*ray.Direction.Axis(a)
	pb := ray.Origin.Axis(b) + t*ray.Direction.Axis(b)
	if pa < r.A0 || pa > r.A1 || pb < r.B0 || pb > r.B1 {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: r.Material,
		U:        (pa - r.A0) / (r.A1 - r.A0),
		V:        (pb - r.B0) / (r.B1 - r.B0),
	}
	hitRecord.SetFaceNormal(ray, r.Normal())

	return hitRecord, true
}

// BoundingBox returns the rectangle's box padded along the normal axis
func (r *AARect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	a, b, n := r.Plane.axes()

	min := withAxis(withAxis(withAxis(core.Vec3{}, a, r.A0), b, r.B0), n, r.K-rectThickness)
	max := withAxis(withAxis(withAxis(core.Vec3{}, a, r.A1), b, r.B1), n, r.K+rectThickness)
	return core.NewAABB(min, max), true
}

// PDFValue returns the solid-angle density dist²/(|cosθ|·area) of hitting the
// rectangle along direction, or 0 if the direction misses it
func (r *AARect) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), nil)
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	return distanceSquared / (cosine * r.Area())
}

// Random returns a direction from origin toward a uniform point on the rectangle
func (r *AARect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	a, b, n := r.Plane.axes()
	sample := sampler.Get2D()

	point := withAxis(core.Vec3{}, n, r.K)
	point = withAxis(point, a, r.A0+sample.X*(r.A1-r.A0))
	point = withAxis(point, b, r.B0+sample.Y*(r.B1-r.B0))
	return point.Subtract(origin)
}

// withAxis returns v with the given axis replaced by value
func withAxis(v core.Vec3, axis int, value float64) core.Vec3 {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}
