package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at surface coordinates (u, v) and point p.
	// UV is used by image textures, the point by procedural ones.
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two textures in 3D space based on the sign of
// sin(Scale·x)·sin(Scale·y)·sin(Scale·z)
type Checker struct {
	Odd   Texture
	Even  Texture
	Scale float64
}

// NewChecker creates a solid-color checker with the classic frequency of 10
func NewChecker(odd, even core.Vec3) *Checker {
	return NewTexturedChecker(NewSolidColor(odd), NewSolidColor(even), 10)
}

// NewTexturedChecker creates a checker alternating between two textures
func NewTexturedChecker(odd, even Texture, scale float64) *Checker {
	return &Checker{Odd: odd, Even: even, Scale: scale}
}

// Value picks Odd where the sine product is negative and Even elsewhere
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
