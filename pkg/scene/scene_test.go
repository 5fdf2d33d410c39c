package scene

import (
	"errors"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestBuildEveryScene(t *testing.T) {
	expectedLights := map[string]int{
		"random":        0,
		"checker":       0,
		"perlin":        0,
		"earth":         0,
		"simple-light":  2,
		"cornell":       2,
		"cornell-smoke": 1,
		"final":         1,
		"mesh":          1,
	}

	for _, name := range SceneNames() {
		t.Run(name, func(t *testing.T) {
			s, err := NewSceneByName(name, rand.New(rand.NewSource(42)), Options{})
			if err != nil {
				t.Fatalf("Failed to build scene: %v", err)
			}

			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if s.Camera == nil || s.World == nil || s.Lights == nil {
				t.Fatalf("Scene is missing a camera, world or light list")
			}
			if _, ok := s.World.(*geometry.BVHNode); !ok {
				t.Errorf("Expected the world to be a BVH, got %T", s.World)
			}
			if want, ok := expectedLights[name]; ok && s.Lights.Len() != want {
				t.Errorf("Expected %d lights, got %d", want, s.Lights.Len())
			}
			if err := s.Config.Validate(); err != nil {
				t.Errorf("Scene render config invalid: %v", err)
			}
			if want := float64(s.Config.Width) / float64(s.Config.Height); math.Abs(s.CameraConfig.AspectRatio-want) > 1e-12 {
				t.Errorf("Expected camera aspect %f, got %f", want, s.CameraConfig.AspectRatio)
			}
		})
	}
}

func TestSceneGenerationIsDeterministic(t *testing.T) {
	first, err := NewRandomScene(rand.New(rand.NewSource(7)), Options{})
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}
	second, err := NewRandomScene(rand.New(rand.NewSource(7)), Options{})
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}

	a, _ := first.World.BoundingBox(0, 1)
	b, _ := second.World.BoundingBox(0, 1)
	if a != b {
		t.Errorf("Expected identical worlds for the same seed, got boxes %v and %v", a, b)
	}
	if first.World.(*geometry.BVHNode).Stats() != second.World.(*geometry.BVHNode).Stats() {
		t.Error("Expected identical BVH layouts for the same seed")
	}
}

func TestBuilderEmptyWorld(t *testing.T) {
	_, err := NewBuilder("empty").Build(rand.New(rand.NewSource(1)))
	if !errors.Is(err, geometry.ErrEmptyBVH) {
		t.Errorf("Expected ErrEmptyBVH, got %v", err)
	}
}

func TestBuilderLights(t *testing.T) {
	b := NewBuilder("lights")
	b.SetCamera(renderer.CameraConfig{
		Center: core.NewVec3(0, 0, 5), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0), VFov: 40,
	})

	light := geometry.NewXZRect(-1, 1, -1, 1, 3, material.NewDiffuseLight(core.NewVec3(4, 4, 4)))
	glass := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewDielectric(1.5))
	b.AddLight(light)
	b.Add(glass)
	b.AddImportance(glass)

	if b.ObjectCount() != 2 {
		t.Errorf("Expected 2 world objects, got %d", b.ObjectCount())
	}

	s, err := b.Build(rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.Lights.Len() != 2 {
		t.Errorf("Expected 2 importance targets, got %d", s.Lights.Len())
	}

	box, ok := s.World.BoundingBox(0, 1)
	if !ok || !box.Contains(core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 3, 1))) {
		t.Errorf("World bounds %v do not enclose the objects", box)
	}
}

func TestEarthSceneBadImagePath(t *testing.T) {
	opts := Options{ImagePath: filepath.Join(t.TempDir(), "missing.jpg")}
	if _, err := NewEarthScene(rand.New(rand.NewSource(1)), opts); err == nil {
		t.Error("Expected an error for a missing texture file")
	}
}

func TestMeshSceneFromPLY(t *testing.T) {
	ply := `ply
format ascii 1.0
element vertex 4
property float x
property float y
property float z
element face 2
property list uchar int vertex_indices
end_header
0 0 0
4 0 0
4 4 0
0 4 0
3 0 1 2
3 0 2 3
`
	path := filepath.Join(t.TempDir(), "square.ply")
	if err := os.WriteFile(path, []byte(ply), 0644); err != nil {
		t.Fatalf("Failed to write mesh: %v", err)
	}

	s, err := NewMeshScene(rand.New(rand.NewSource(1)), Options{MeshPath: path})
	if err != nil {
		t.Fatalf("Failed to build mesh scene: %v", err)
	}
	box, ok := s.World.BoundingBox(0, 1)
	if !ok || box.Max.Y < meshHeight {
		t.Errorf("Expected the mesh to reach height %f, world bounds %v", meshHeight, box)
	}
}

func TestSimpleLightPanelIsGraded(t *testing.T) {
	s, err := NewSimpleLightScene(rand.New(rand.NewSource(1)), Options{})
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}

	rect, ok := s.Lights.Objects[0].(*geometry.AARect)
	if !ok {
		t.Fatalf("Expected the first light to be a rectangle, got %T", s.Lights.Objects[0])
	}
	emitter, ok := rect.Material.(core.Emitter)
	if !ok {
		t.Fatalf("Expected an emitter, got %T", rect.Material)
	}

	top := emitter.Emitted(0.5, 1, core.Vec3{})
	bottom := emitter.Emitted(0.5, 0, core.Vec3{})
	if top != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected white at the top of the panel, got %v", top)
	}
	if bottom.Z >= top.Z || bottom.X != top.X {
		t.Errorf("Expected a warmer bottom edge, got %v", bottom)
	}
}

func TestLoadMeshImage(t *testing.T) {
	_, globeImage, err := loadMesh(Options{})
	if err != nil {
		t.Fatalf("loadMesh failed: %v", err)
	}
	if got := globeImage.Value(0, 1, core.Vec3{}); got != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected UV colors on the generated globe, got %v at (0,1)", got)
	}

	path := filepath.Join(t.TempDir(), "tri.ply")
	ply := "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nproperty float y\nproperty float z\n" +
		"element face 1\nproperty list uchar int vertex_indices\nend_header\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n"
	if err := os.WriteFile(path, []byte(ply), 0644); err != nil {
		t.Fatalf("Failed to write mesh: %v", err)
	}
	_, meshImage, err := loadMesh(Options{MeshPath: path})
	if err != nil {
		t.Fatalf("loadMesh failed: %v", err)
	}
	if got := meshImage.Value(0, 1, core.Vec3{}); got != core.NewVec3(0.9, 0.9, 0.9) {
		t.Errorf("Expected a checkerboard on a loaded mesh, got %v at (0,1)", got)
	}
}

func TestTessellateGlobe(t *testing.T) {
	mesh := tessellateGlobe(8, 4)
	if len(mesh.Vertices) != 9*5 || len(mesh.TexCoords) != len(mesh.Vertices) {
		t.Errorf("Unexpected vertex counts %d/%d", len(mesh.Vertices), len(mesh.TexCoords))
	}
	if len(mesh.Faces) != 2*8*4 {
		t.Errorf("Expected %d faces, got %d", 2*8*4, len(mesh.Faces))
	}
	for _, v := range mesh.Vertices {
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Vertex %v not on the unit sphere", v)
		}
	}

	// Pole faces collapse to zero area and are dropped
	triangles := meshTriangles(mesh, material.NewUVDebugImage(4, 4))
	if len(triangles) != 2*8*4-2*8 {
		t.Errorf("Expected %d non-degenerate triangles, got %d", 2*8*4-2*8, len(triangles))
	}
}

func TestRenderCornellThumbnail(t *testing.T) {
	s, err := NewCornellScene(rand.New(rand.NewSource(3)), Options{})
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}

	config := s.Config
	config.Width, config.Height = 8, 8
	config.SamplesPerPixel = 4
	config.MaxDepth = 4
	config.NumWorkers = 2

	pixels, err := renderer.Render(s.Camera, s.World, s.Lights, config)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var total float64
	for _, p := range pixels {
		if p.HasNaN() {
			t.Fatalf("Render produced NaN pixel %v", p)
		}
		total += p.X + p.Y + p.Z
	}
	if total <= 0 {
		t.Error("Expected some light to reach the camera")
	}
}
