package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		tMin     float64
		tMax     float64
		expected bool
	}{
		{
			name:     "toward box",
			ray:      NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, 1)),
			tMin:     0,
			tMax:     10,
			expected: true,
		},
		{
			name:     "away from box",
			ray:      NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, -1)),
			tMin:     0,
			tMax:     10,
			expected: false,
		},
		{
			name:     "parallel outside slab",
			ray:      NewRay(NewVec3(2, 0.5, -1), NewVec3(0, 0, 1)),
			tMin:     0,
			tMax:     10,
			expected: false,
		},
		{
			name:     "window ends before box",
			ray:      NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, 1)),
			tMin:     0,
			tMax:     0.5,
			expected: false,
		},
		{
			name:     "origin inside",
			ray:      NewRay(NewVec3(0.5, 0.5, 0.5), NewVec3(1, 1, 1)),
			tMin:     0,
			tMax:     math.Inf(1),
			expected: true,
		},
		{
			name:     "diagonal miss",
			ray:      NewRay(NewVec3(-1, 2, 0.5), NewVec3(1, 0.1, 0)),
			tMin:     0,
			tMax:     100,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.tMin, tt.tMax); got != tt.expected {
				t.Errorf("Expected %t, got %t", tt.expected, got)
			}
		})
	}
}

func TestAABB_HitFlatBox(t *testing.T) {
	// Rectangles pad their zero-thickness axis; the padded box must still be hit head-on
	box := NewAABB(NewVec3(0, 0, -0.0001), NewVec3(1, 1, 0.0001))
	ray := NewRay(NewVec3(0.5, 0.5, -5), NewVec3(0, 0, 1))

	if !box.Hit(ray, 0.001, math.Inf(1)) {
		t.Error("Expected padded flat box to be hit")
	}
}

func TestSurroundingBox_ContainsBoth(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	randomBox := func() AABB {
		a := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		b := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		return NewAABBFromPoints(a, b)
	}

	for i := 0; i < 1000; i++ {
		a, b := randomBox(), randomBox()
		union := SurroundingBox(a, b)

		if !union.Contains(a) || !union.Contains(b) {
			t.Fatalf("Union %v does not contain %v and %v", union, a, b)
		}
		if !union.IsValid() {
			t.Fatalf("Union %v is not a valid box", union)
		}
	}
}

func TestAABB_Corners(t *testing.T) {
	box := NewAABB(NewVec3(-1, -2, -3), NewVec3(1, 2, 3))
	corners := box.Corners()

	if NewAABBFromPoints(corners[:]...) != box {
		t.Errorf("Corners do not span the box: %v", corners)
	}
}
