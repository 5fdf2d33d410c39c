package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. World and Lights are
// frozen after Build and shared read-only by the render workers.
type Scene struct {
	Name         string
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	World        core.Hittable          // BVH over every object in the scene
	Lights       *geometry.HittableList // Importance-sampling targets, may be empty
	Config       renderer.RenderConfig  // Suggested render settings, background included
}

// Options carries external inputs some scenes can use
type Options struct {
	ImagePath string      // Texture for the earth sphere; procedural when empty
	MeshPath  string      // PLY model for the mesh scene; procedural when empty
	Logger    core.Logger // Optional, for scene loading messages
}

// Builder collects objects and lights before the scene is frozen
type Builder struct {
	name         string
	objects      []core.Hittable
	lights       []core.Hittable
	cameraConfig renderer.CameraConfig
	config       renderer.RenderConfig
}

// NewBuilder creates a builder with the default render configuration
func NewBuilder(name string) *Builder {
	return &Builder{
		name:   name,
		config: renderer.DefaultRenderConfig(),
	}
}

// Add adds objects to the world
func (b *Builder) Add(objects ...core.Hittable) {
	b.objects = append(b.objects, objects...)
}

// AddLight adds an emissive object to the world and to the light list
func (b *Builder) AddLight(light core.Sampleable) {
	b.objects = append(b.objects, light)
	b.lights = append(b.lights, light)
}

// AddImportance adds an object to the light list only. Used to steer diffuse
// bounces toward objects already in the world, such as glass spheres.
func (b *Builder) AddImportance(target core.Sampleable) {
	b.lights = append(b.lights, target)
}

// SetCamera sets the camera configuration
func (b *Builder) SetCamera(config renderer.CameraConfig) {
	b.cameraConfig = config
}

// SetRenderConfig sets the suggested render configuration
func (b *Builder) SetRenderConfig(config renderer.RenderConfig) {
	b.config = config
}

// ObjectCount returns the number of top-level objects added so far
func (b *Builder) ObjectCount() int {
	return len(b.objects)
}

// Build freezes the world into a BVH and creates the camera. The camera
// aspect ratio follows the render configuration when none is set.
func (b *Builder) Build(random *rand.Rand) (*Scene, error) {
	cameraConfig := b.cameraConfig
	if cameraConfig.AspectRatio == 0 && b.config.Height > 0 {
		cameraConfig.AspectRatio = float64(b.config.Width) / float64(b.config.Height)
	}

	world, err := geometry.NewBVH(b.objects, cameraConfig.Time0, cameraConfig.Time1, random)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", b.name, err)
	}

	return &Scene{
		Name:         b.name,
		Camera:       renderer.NewCameraFromConfig(cameraConfig),
		CameraConfig: cameraConfig,
		World:        world,
		Lights:       geometry.NewHittableList(b.lights...),
		Config:       b.config,
	}, nil
}

// renderConfig returns the default configuration with the given size and background
func renderConfig(width, height, samples int, background core.Vec3) renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = samples
	config.Background = background
	return config
}

// randomVec returns a vector with components uniform in [lo, hi)
func randomVec(random *rand.Rand, lo, hi float64) core.Vec3 {
	return core.NewVec3(
		lo+(hi-lo)*random.Float64(),
		lo+(hi-lo)*random.Float64(),
		lo+(hi-lo)*random.Float64(),
	)
}
