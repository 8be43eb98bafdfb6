package meshes

import (
	"github.com/go-gl/mathgl/mgl32"

	"shape-engine/internal/geometry"
	"shape-engine/internal/render"
)

// buildPlane returns a single quad in the XZ plane, centered at the origin,
// normal up.
func buildPlane(width, depth float32) ([]float32, []uint32) {
	hw := width / 2
	hd := depth / 2
	corners := [4]mgl32.Vec3{
		{-hw, 0, hd},
		{hw, 0, hd},
		{hw, 0, -hd},
		{-hw, 0, -hd},
	}
	n := geometry.QuadNormal(corners[0], corners[1], corners[2], corners[3])
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]float32, 0, 4*render.FloatsPerVertex)
	for i, c := range corners {
		vertices = append(vertices,
			c.X(), c.Y(), c.Z(),
			n.X(), n.Y(), n.Z(),
			uvs[i][0], uvs[i][1])
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return vertices, indices
}

// LoadPlaneMesh uploads a width x depth ground plane.
func (s *Store) LoadPlaneMesh(width, depth float32) error {
	vertices, indices := buildPlane(width, depth)
	return s.store(Plane, vertices, indices, 0)
}

// DrawPlaneMesh draws the plane.
func (s *Store) DrawPlaneMesh() {
	m, ok := s.drawable(Plane, true)
	if !ok {
		return
	}
	s.dev.DrawIndexed(m.handle, render.TriangleStrip, m.indexCount, 0)
}

// DrawPlaneMeshLines draws the plane edges in line mode.
func (s *Store) DrawPlaneMeshLines() {
	m, ok := s.drawable(Plane, true)
	if !ok {
		return
	}
	s.dev.DrawIndexed(m.handle, render.LineStrip, m.indexCount, 0)
}
