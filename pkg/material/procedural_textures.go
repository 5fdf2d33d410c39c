package material

import "github.com/df07/go-pathtracer/pkg/core"

// generateImage fills a width×height image texture from a per-pixel function
func generateImage(width, height int, pixel func(x, y int) core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = pixel(x, y)
		}
	}
	return NewImageTexture(width, height, pixels)
}

// NewCheckerboardImage creates an image of squares checkSize pixels wide
func NewCheckerboardImage(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	return generateImage(width, height, func(x, y int) core.Vec3 {
		if (x/checkSize+y/checkSize)%2 == 0 {
			return color1
		}
		return color2
	})
}

// NewUVDebugImage encodes texture coordinates as colors: U in red, V in green.
// V grows upward to match the texture lookup.
func NewUVDebugImage(width, height int) *ImageTexture {
	return generateImage(width, height, func(x, y int) core.Vec3 {
		u := float64(x) / float64(max(width-1, 1))
		v := 1 - float64(y)/float64(max(height-1, 1))
		return core.NewVec3(u, v, 0)
	})
}

// NewGradientImage creates a vertical gradient from top to bottom
func NewGradientImage(width, height int, top, bottom core.Vec3) *ImageTexture {
	return generateImage(width, height, func(x, y int) core.Vec3 {
		t := float64(y) / float64(max(height-1, 1))
		return top.Multiply(1 - t).Add(bottom.Multiply(t))
	})
}

// NewEarthLikeImage creates a stand-in planet map: blue oceans, green
// continents from Perlin noise and white polar caps
func NewEarthLikeImage(width, height int, noise *Perlin) *ImageTexture {
	ocean := core.NewVec3(0.05, 0.15, 0.5)
	land := core.NewVec3(0.15, 0.45, 0.1)
	ice := core.NewVec3(0.95, 0.95, 0.95)

	return generateImage(width, height, func(x, y int) core.Vec3 {
		latitude := float64(y) / float64(max(height-1, 1))
		if latitude < 0.08 || latitude > 0.92 {
			return ice
		}
		p := core.NewVec3(float64(x)/float64(width)*8, latitude*4, 0.5)
		if noise.Turbulence(p, turbulenceDepth) > 0.35 {
			return land
		}
		return ocean
	})
}
