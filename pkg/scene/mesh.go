package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// meshHeight is the height the mesh is scaled to
const meshHeight = 2.0

// NewMeshScene creates a textured triangle mesh on a checkered floor under
// a rectangular light. The mesh is read from opts.MeshPath, or generated as
// a tessellated globe when no path is given.
func NewMeshScene(random *rand.Rand, opts Options) (*Scene, error) {
	b := NewBuilder("mesh")
	b.SetCamera(renderer.CameraConfig{
		Center:   core.NewVec3(0, 2, 6),
		LookAt:   core.NewVec3(0, 1, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45.0,
		Aperture: 0.02,
		Time0:    0,
		Time1:    1,
	})
	b.SetRenderConfig(renderConfig(400, 225, 150, core.NewVec3(0.1, 0.1, 0.15)))

	floor := material.NewTexturedLambertian(material.NewChecker(core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(0.8, 0.8, 0.8)))
	b.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, floor))

	light := material.NewDiffuseLight(core.NewVec3(8, 8, 8))
	b.AddLight(geometry.NewXZRect(-1.5, 1.5, -1.5, 1.5, 5, light))

	mesh, image, err := loadMesh(opts)
	if err != nil {
		return nil, err
	}

	triangles := meshTriangles(mesh, image)
	if len(triangles) == 0 {
		return nil, fmt.Errorf("mesh has no triangles")
	}

	meshBVH, err := geometry.NewBVH(triangles, 0, 1, random)
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh BVH: %w", err)
	}
	b.Add(geometry.NewRotateY(meshBVH, 30))

	return b.Build(random)
}

// loadMesh reads the PLY file named in opts, or tessellates a globe. The
// globe is colored by its UVs; a loaded mesh gets a checkerboard so its UV
// layout shows.
func loadMesh(opts Options) (*loaders.PLYMesh, *material.ImageTexture, error) {
	if opts.MeshPath == "" {
		return tessellateGlobe(24, 12), material.NewUVDebugImage(256, 256), nil
	}

	mesh, err := loaders.LoadPLY(opts.MeshPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load mesh: %w", err)
	}
	if opts.Logger != nil {
		opts.Logger.Printf("Loaded mesh %s: %d vertices, %d triangles\n", opts.MeshPath, len(mesh.Vertices), len(mesh.Faces))
	}
	checker := material.NewCheckerboardImage(256, 256, 32, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.8, 0.2, 0.1))
	return mesh, checker, nil
}

// meshTriangles scales the mesh to meshHeight, stands it on the floor
// centered at the origin and builds one textured triangle per face. Meshes
// without texture coordinates get a plain gray material.
func meshTriangles(mesh *loaders.PLYMesh, image *material.ImageTexture) []core.Hittable {
	if len(mesh.Vertices) == 0 {
		return nil
	}

	bounds := core.NewAABBFromPoints(mesh.Vertices...)
	size := bounds.Size()
	scale := 1.0
	if size.Y > 0 {
		scale = meshHeight / size.Y
	}
	center := bounds.Center()
	offset := core.NewVec3(-center.X, -bounds.Min.Y, -center.Z)

	place := func(v core.Vec3) core.Vec3 {
		return v.Add(offset).Multiply(scale)
	}

	gray := material.NewLambertian(core.NewVec3(0.6, 0.6, 0.6))
	hasUV := len(mesh.TexCoords) == len(mesh.Vertices)

	triangles := make([]core.Hittable, 0, len(mesh.Faces))
	for _, face := range mesh.Faces {
		v0, v1, v2 := mesh.Vertices[face[0]], mesh.Vertices[face[1]], mesh.Vertices[face[2]]
		if v1.Subtract(v0).Cross(v2.Subtract(v0)).NearZero() {
			continue
		}

		var mat core.Material = gray
		if hasUV {
			texture := material.NewMeshTexture(image, mesh.TexCoords[face[0]], mesh.TexCoords[face[1]], mesh.TexCoords[face[2]])
			mat = material.NewTexturedLambertian(texture)
		}
		triangles = append(triangles, geometry.NewTriangle(place(v0), place(v1), place(v2), mat))
	}
	return triangles
}

// tessellateGlobe builds a latitude/longitude sphere of unit radius with
// texture coordinates that wrap once around
func tessellateGlobe(segments, rings int) *loaders.PLYMesh {
	mesh := &loaders.PLYMesh{}
	for r := 0; r <= rings; r++ {
		v := float64(r) / float64(rings)
		theta := v * math.Pi
		for s := 0; s <= segments; s++ {
			u := float64(s) / float64(segments)
			phi := u * 2 * math.Pi
			mesh.Vertices = append(mesh.Vertices, core.NewVec3(
				math.Sin(theta)*math.Cos(phi),
				-math.Cos(theta),
				math.Sin(theta)*math.Sin(phi),
			))
			mesh.TexCoords = append(mesh.TexCoords, core.NewVec2(u, v))
		}
	}

	stride := segments + 1
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			i0 := r*stride + s
			i1 := i0 + 1
			i2 := i0 + stride
			i3 := i2 + 1
			mesh.Faces = append(mesh.Faces, [3]int{i0, i2, i1}, [3]int{i1, i2, i3})
		}
	}
	return mesh
}
