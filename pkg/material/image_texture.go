package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// missingTextureColor flags an image texture with no pixel data
var missingTextureColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Value samples the texture using nearest-neighbor filtering.
// UV is clamped to [0,1]; V=0 is the bottom row of the image.
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return missingTextureColor
	}

	u = math.Max(0, math.Min(1, u))
	v = 1.0 - math.Max(0, math.Min(1, v))

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// Clamp to image bounds
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
