package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// PDFValue returns the density of sampling direction through the cone the
// sphere subtends from origin
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), nil); !ok {
		return 0
	}

	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		// Inside the sphere every direction hits it
		return 1.0 / (4.0 * math.Pi)
	}

	cosThetaMax := math.Sqrt(1.0 - s.Radius*s.Radius/distanceSquared)
	solidAngle := 2.0 * math.Pi * (1.0 - cosThetaMax)
	return 1.0 / solidAngle
}

// Random returns a direction from origin inside the cone subtended by the sphere
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		return core.SampleOnUnitSphere(sampler.Get2D())
	}

	uvw := core.NewONB(direction)
	return uvw.Local(core.RandomToSphere(s.Radius, distanceSquared, sampler.Get2D()))
}

// hitSphere is the quadratic intersection shared by static and moving spheres
func hitSphere(center core.Vec3, radius float64, material core.Material, ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)

	// at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: material,
	}

	outwardNormal := hitRecord.Point.Subtract(center).Divide(radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.U, hitRecord.V = sphereUV(outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis starting at -X, v runs from -Y to +Y.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return phi / (2 * math.Pi), theta / math.Pi
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := core.NewVec3(radius, radius, radius)
	return core.NewAABB(center.Subtract(r), center.Add(r))
}
