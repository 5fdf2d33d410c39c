package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewFinalScene creates the showcase scene: a field of ground blocks, a
// motion-blurred sphere, glass, brushed metal, a subsurface-like glass ball
// filled with blue fog, thin mist over everything, a textured globe, a
// turbulence-textured sphere and a rotated cluster of small spheres
func NewFinalScene(random *rand.Rand, opts Options) (*Scene, error) {
	b := NewBuilder("final")
	b.SetCamera(renderer.CameraConfig{
		Center: core.NewVec3(478, 278, -600),
		LookAt: core.NewVec3(278, 278, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
		Time0:  0,
		Time1:  1,
	})
	b.SetRenderConfig(renderConfig(400, 400, 500, core.Vec3{}))

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	blocks := make([]core.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := 1 + 100*random.Float64()
			blocks = append(blocks, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	groundBVH, err := geometry.NewBVH(blocks, 0, 1, random)
	if err != nil {
		return nil, fmt.Errorf("failed to build ground blocks: %w", err)
	}
	b.Add(groundBVH)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	b.AddLight(geometry.NewXZRect(123, 423, 147, 412, 554, light))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	b.Add(geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	b.Add(
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	b.Add(boundary)
	b.Add(geometry.NewConstantMedium(boundary, 0.2, material.NewIsotropic(core.NewVec3(0.2, 0.4, 0.9))))

	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	b.Add(geometry.NewConstantMedium(mist, 0.0001, material.NewIsotropic(core.NewVec3(1, 1, 1))))

	globe, err := earthTexture(random, opts)
	if err != nil {
		return nil, err
	}
	b.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(globe)))
	b.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(material.NewNoiseTexture(0.1, random))))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const clusterSize = 1000
	cluster := make([]core.Hittable, clusterSize)
	for i := range cluster {
		cluster[i] = geometry.NewSphere(randomVec(random, 0, 165), 10, white)
	}
	clusterBVH, err := geometry.NewBVH(cluster, 0, 1, random)
	if err != nil {
		return nil, fmt.Errorf("failed to build sphere cluster: %w", err)
	}
	b.Add(geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)))

	return b.Build(random)
}
