package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
)

// vec3ToColor converts a linear color to RGBA. NaN and negative components
// become 0 before gamma 2 is applied and the result is clamped to [0, 0.999].
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = scrubNaN(colorVec).Clamp(0, math.Inf(1))

	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	// Keep 256*c below 256 so 1.0 maps to 255
	colorVec = colorVec.Clamp(0, 0.999)

	return color.RGBA{
		R: uint8(256 * colorVec.X),
		G: uint8(256 * colorVec.Y),
		B: uint8(256 * colorVec.Z),
		A: 255,
	}
}

func scrubNaN(v core.Vec3) core.Vec3 {
	if math.IsNaN(v.X) {
		v.X = 0
	}
	if math.IsNaN(v.Y) {
		v.Y = 0
	}
	if math.IsNaN(v.Z) {
		v.Z = 0
	}
	return v
}

// ToRGBA converts a row-major linear pixel buffer (row 0 at the top) into an image
func ToRGBA(pixels []core.Vec3, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height {
		return nil, fmt.Errorf("pixel buffer has %d entries, expected %dx%d", len(pixels), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixels[y*width+x]))
		}
	}
	return img, nil
}

// SavePNG tone maps the pixels and writes them to path, creating parent directories
func SavePNG(path string, pixels []core.Vec3, width, height int) error {
	img, err := ToRGBA(pixels, width, height)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return nil
}
