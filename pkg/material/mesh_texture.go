package material

import "github.com/df07/go-pathtracer/pkg/core"

// MeshTexture maps a triangle's barycentric hit coordinates onto a shared
// image through per-vertex UVs. The u and v passed to Value are the
// barycentric weights of the second and third vertex.
type MeshTexture struct {
	Image         *ImageTexture
	UV0, UV1, UV2 core.Vec2
}

// NewMeshTexture creates a texture for one triangle of a mesh
func NewMeshTexture(image *ImageTexture, uv0, uv1, uv2 core.Vec2) *MeshTexture {
	return &MeshTexture{Image: image, UV0: uv0, UV1: uv1, UV2: uv2}
}

// Value interpolates the vertex UVs and samples the image
func (m *MeshTexture) Value(beta, gamma float64, p core.Vec3) core.Vec3 {
	alpha := 1 - beta - gamma
	u := alpha*m.UV0.X + beta*m.UV1.X + gamma*m.UV2.X
	v := alpha*m.UV0.Y + beta*m.UV1.Y + gamma*m.UV2.Y
	return m.Image.Value(u, v, p)
}
