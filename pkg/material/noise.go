package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a gradient noise generator over 3D space
type Perlin struct {
	ranvec              [perlinPointCount]core.Vec3
	permX, permY, permZ []int
}

// NewPerlin builds the gradient table and permutations from random
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.ranvec {
		v := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		p.ranvec[i] = v.Normalize()
	}

	p.permX = random.Perm(perlinPointCount)
	p.permY = random.Perm(perlinPointCount)
	p.permZ = random.Perm(perlinPointCount)
	return p
}

// Noise returns smoothed gradient noise at p, roughly in [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranvec[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// Turbulence sums depth octaves of noise with halving weight
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// perlinInterp is a Hermite-smoothed trilinear blend of the corner gradients
func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// turbulenceDepth is the number of noise octaves used by NoiseTexture
const turbulenceDepth = 7

// NoiseTexture is a grey Perlin turbulence texture
type NoiseTexture struct {
	noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a turbulence texture with the given frequency
func NewNoiseTexture(scale float64, random *rand.Rand) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(random), Scale: scale}
}

// Value returns grey turbulence at the scaled point
func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	t := n.noise.Turbulence(p.Multiply(n.Scale), turbulenceDepth)
	return core.NewVec3(t, t, t)
}
