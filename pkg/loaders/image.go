package loaders

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageData holds decoded pixels row-major with row 0 at the top.
// Channels keep the file's own encoding (usually sRGB) scaled to [0,1];
// no linearization is applied.
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage opens and decodes a PNG or JPEG file
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	data, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}
	return data, nil
}

// DecodeImage decodes any registered image format from r. Alpha is
// dropped after un-premultiplying, so translucent pixels keep their color.
func DecodeImage(r io.Reader) (*ImageData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	data := &ImageData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: make([]core.Vec3, 0, bounds.Dx()*bounds.Dy()),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			data.Pixels = append(data.Pixels, channels(img.At(x, y)))
		}
	}
	return data, nil
}

func channels(c color.Color) core.Vec3 {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return core.NewVec3(float64(n.R), float64(n.G), float64(n.B)).Divide(0xffff)
}
