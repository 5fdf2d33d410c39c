package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomCosineDirection_UpperHemisphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		d := RandomCosineDirection(sampler.Get2D())
		if d.Z < 0 {
			t.Fatalf("Direction %v below the hemisphere", d)
		}
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Direction %v is not unit length", d)
		}
	}
}

func TestSamplePointInUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.Length() > 1.0+1e-9 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 || p.X*p.X+p.Y*p.Y > 1.0+1e-9 {
			t.Fatalf("Point %v outside unit disk", p)
		}
	}
}

func TestRandomToSphere_InsideCone(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(1)))
	radius, distance := 1.0, 4.0
	cosThetaMax := math.Sqrt(1 - radius*radius/(distance*distance))

	for i := 0; i < 1000; i++ {
		d := RandomToSphere(radius, distance*distance, sampler.Get2D())
		if d.Z < cosThetaMax-1e-9 {
			t.Fatalf("Direction %v outside cone (cosThetaMax=%f)", d, cosThetaMax)
		}
	}
}

func TestONB_Orthonormal(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(1, 0, 0),
		NewVec3(0, -1, 0),
		NewVec3(1, 2, 3),
		NewVec3(-0.95, 0.1, 0.2),
	}

	for _, n := range normals {
		b := NewONB(n)
		const tolerance = 1e-9

		if math.Abs(b.U.Dot(b.V)) > tolerance || math.Abs(b.V.Dot(b.W)) > tolerance || math.Abs(b.U.Dot(b.W)) > tolerance {
			t.Errorf("Basis for %v is not orthogonal: %+v", n, b)
		}
		if b.W.Subtract(n.Normalize()).Length() > tolerance {
			t.Errorf("W axis %v does not match normal %v", b.W, n.Normalize())
		}
		// Right-handed: U x V = W
		if b.U.Cross(b.V).Subtract(b.W).Length() > tolerance {
			t.Errorf("Basis for %v is not right-handed", n)
		}
		if got := b.Local(NewVec3(0, 0, 1)); got.Subtract(b.W).Length() > tolerance {
			t.Errorf("Local(+Z) = %v, expected %v", got, b.W)
		}
	}
}
