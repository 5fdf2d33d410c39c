package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var skyColor = core.NewVec3(0.7, 0.8, 1.0)

// outdoorCamera is the low wide-angle view used by the sphere scenes
func outdoorCamera(aperture float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		Aperture:      aperture,
		FocusDistance: 10.0,
		Time0:         0,
		Time1:         1,
	}
}

// NewRandomScene creates the field of small random spheres around three
// large ones. Diffuse spheres bounce upward during the shutter interval.
func NewRandomScene(random *rand.Rand, opts Options) (*Scene, error) {
	b := NewBuilder("random")
	b.SetCamera(outdoorCamera(0.1))
	b.SetRenderConfig(renderConfig(400, 225, 100, skyColor))

	checker := material.NewChecker(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	b.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	for a := -11; a < 11; a++ {
		for c := -11; c < 11; c++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(c)+0.9*random.Float64())

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomVec(random, 0, 1).MultiplyVec(randomVec(random, 0, 1))
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				b.Add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := randomVec(random, 0.5, 1)
				fuzz := 0.5 * random.Float64()
				b.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				b.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	b.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return b.Build(random)
}

// NewCheckerScene creates two large checkered spheres touching at the origin
func NewCheckerScene(random *rand.Rand, opts Options) (*Scene, error) {
	b := NewBuilder("checker")
	b.SetCamera(outdoorCamera(0))
	b.SetRenderConfig(renderConfig(400, 225, 100, skyColor))

	checker := material.NewTexturedLambertian(
		material.NewChecker(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	b.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return b.Build(random)
}

// NewPerlinScene creates a turbulence-textured sphere resting on matching ground
func NewPerlinScene(random *rand.Rand, opts Options) (*Scene, error) {
	b := NewBuilder("perlin")
	b.SetCamera(outdoorCamera(0))
	b.SetRenderConfig(renderConfig(400, 225, 100, skyColor))

	turbulence := material.NewTexturedLambertian(material.NewNoiseTexture(4, random))
	b.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, turbulence),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, turbulence),
	)

	return b.Build(random)
}

// NewSimpleLightScene lights the turbulence spheres with a graded rectangle
// and a sphere light against a black sky
func NewSimpleLightScene(random *rand.Rand, opts Options) (*Scene, error) {
	b := NewBuilder("simple-light")
	b.SetCamera(renderer.CameraConfig{
		Center: core.NewVec3(26, 3, 6),
		LookAt: core.NewVec3(0, 2, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   20.0,
		Time0:  0,
		Time1:  1,
	})
	b.SetRenderConfig(renderConfig(400, 225, 200, core.Vec3{}))

	turbulence := material.NewTexturedLambertian(material.NewNoiseTexture(4, random))
	b.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, turbulence),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, turbulence),
	)

	// The panel fades from white at the top to a warm glow at the bottom
	panel := material.NewTexturedDiffuseLight(material.NewGradientImage(1, 16, core.NewVec3(4, 4, 4), core.NewVec3(4, 2.8, 1.6)))
	b.AddLight(geometry.NewXYRect(3, 5, 1, 3, -2, panel))
	b.AddLight(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, material.NewDiffuseLight(core.NewVec3(4, 4, 4))))

	return b.Build(random)
}

// NewEarthScene creates a single globe. The texture is read from
// opts.ImagePath, or generated procedurally when no path is given.
func NewEarthScene(random *rand.Rand, opts Options) (*Scene, error) {
	b := NewBuilder("earth")
	b.SetCamera(outdoorCamera(0))
	b.SetRenderConfig(renderConfig(400, 225, 100, skyColor))

	texture, err := earthTexture(random, opts)
	if err != nil {
		return nil, err
	}
	b.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)))

	return b.Build(random)
}

// earthTexture loads the globe image, or builds a procedural one
func earthTexture(random *rand.Rand, opts Options) (*material.ImageTexture, error) {
	if opts.ImagePath == "" {
		return material.NewEarthLikeImage(512, 256, material.NewPerlin(random)), nil
	}

	image, err := loaders.LoadImage(opts.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load earth texture: %w", err)
	}
	if opts.Logger != nil {
		opts.Logger.Printf("Loaded texture %s (%dx%d)\n", opts.ImagePath, image.Width, image.Height)
	}
	return material.NewImageTexture(image.Width, image.Height, image.Pixels), nil
}
