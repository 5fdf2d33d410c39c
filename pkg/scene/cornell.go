package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellCamera looks into the open side of the box
func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:   core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:   core.NewVec3(278, 278, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40.0,
		Aperture: 0.0, // No depth of field for Cornell box
		Time0:    0,
		Time1:    1,
	}
}

// addCornellWalls adds the five closed sides of the box
func addCornellWalls(b *Builder, red, white, green core.Material) {
	b.Add(
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // Right wall
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),         // Left wall
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // Floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // Ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // Back wall
	)
}

// NewCornellScene creates the classic Cornell box with a rotated aluminum
// block and a glass sphere. The ceiling light and the sphere are both
// importance-sampled.
func NewCornellScene(random *rand.Rand, opts Options) (*Scene, error) {
	b := NewBuilder("cornell")
	b.SetCamera(cornellCamera())
	b.SetRenderConfig(renderConfig(400, 400, 200, core.Vec3{}))

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	addCornellWalls(b, red, white, green)
	b.AddLight(geometry.NewXZRect(213, 343, 227, 332, 554, light))

	aluminum := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0)
	tallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), aluminum)
	b.Add(geometry.NewTranslate(geometry.NewRotateY(tallBox, 15), core.NewVec3(265, 0, 295)))

	glassSphere := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5))
	b.Add(glassSphere)
	b.AddImportance(glassSphere)

	return b.Build(random)
}

// NewCornellSmokeScene replaces the two blocks of the Cornell box with
// blocks of dark and light smoke under a larger, dimmer light
func NewCornellSmokeScene(random *rand.Rand, opts Options) (*Scene, error) {
	b := NewBuilder("cornell-smoke")
	b.SetCamera(cornellCamera())
	b.SetRenderConfig(renderConfig(400, 400, 200, core.Vec3{}))

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	addCornellWalls(b, red, white, green)
	b.AddLight(geometry.NewXZRect(113, 443, 127, 432, 554, light))

	tallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall := geometry.NewTranslate(geometry.NewRotateY(tallBox, 15), core.NewVec3(265, 0, 295))

	shortBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short := geometry.NewTranslate(geometry.NewRotateY(shortBox, -18), core.NewVec3(130, 0, 65))

	b.Add(
		geometry.NewConstantMedium(tall, 0.01, material.NewIsotropic(core.NewVec3(0, 0, 0))),
		geometry.NewConstantMedium(short, 0.01, material.NewIsotropic(core.NewVec3(1, 1, 1))),
	)

	return b.Build(random)
}
