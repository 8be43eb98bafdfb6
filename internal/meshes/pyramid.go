package meshes

import (
	"github.com/go-gl/mathgl/mgl32"

	"shape-engine/internal/geometry"
	"shape-engine/internal/render"
)

// appendVertex appends one interleaved vertex.
func appendVertex(verts []float32, pos, normal mgl32.Vec3, u, v float32) []float32 {
	return append(verts, pos.X(), pos.Y(), pos.Z(), normal.X(), normal.Y(), normal.Z(), u, v)
}

// buildPyramid3 returns a 3-sided pyramid with a fixed half-base and apex
// height of 0.5, drawn as one triangle strip: three apex-faces then the base
// triangle. Each side face carries the outward normal of its plane.
func buildPyramid3() []float32 {
	const halfBase = 0.5
	const height = 0.5

	apex := mgl32.Vec3{0, height, 0}
	type face struct {
		bottom1, bottom2 mgl32.Vec3
	}
	faces := []face{
		{mgl32.Vec3{-halfBase, -height, halfBase}, mgl32.Vec3{0, -height, -halfBase}},
		{mgl32.Vec3{0, -height, -halfBase}, mgl32.Vec3{halfBase, -height, halfBase}},
		{mgl32.Vec3{halfBase, -height, halfBase}, mgl32.Vec3{-halfBase, -height, halfBase}},
	}

	verts := make([]float32, 0, (len(faces)*3+3)*render.FloatsPerVertex)
	for _, f := range faces {
		n := geometry.TriangleNormal(apex, f.bottom1, f.bottom2)
		verts = appendVertex(verts, apex, n, 0.5, 1)
		verts = appendVertex(verts, f.bottom1, n, 0, 0)
		verts = appendVertex(verts, f.bottom2, n, 1, 0)
	}

	down := mgl32.Vec3{0, -1, 0}
	verts = appendVertex(verts, mgl32.Vec3{-halfBase, -height, halfBase}, down, 0, 1)
	verts = appendVertex(verts, mgl32.Vec3{halfBase, -height, halfBase}, down, 1, 1)
	verts = appendVertex(verts, mgl32.Vec3{0, -height, -halfBase}, down, 0.5, 0)
	return verts
}

// buildPyramid4 returns a 4-sided pyramid: flat base quad at y = -baseSize/2,
// apex at y = height/2, one cross-product normal per triangular face.
func buildPyramid4(baseSize, height float32) []float32 {
	halfBase := baseSize / 2
	top := mgl32.Vec3{0, height / 2, 0}
	down := mgl32.Vec3{0, -1, 0}

	verts := make([]float32, 0, (4+4*3)*render.FloatsPerVertex)
	verts = appendVertex(verts, mgl32.Vec3{-halfBase, -halfBase, halfBase}, down, 0, 1)
	verts = appendVertex(verts, mgl32.Vec3{-halfBase, -halfBase, -halfBase}, down, 0, 0)
	verts = appendVertex(verts, mgl32.Vec3{halfBase, -halfBase, -halfBase}, down, 1, 0)
	verts = appendVertex(verts, mgl32.Vec3{halfBase, -halfBase, halfBase}, down, 1, 1)

	type face struct {
		bottomLeft, bottomRight mgl32.Vec3
	}
	faces := []face{
		{mgl32.Vec3{-halfBase, -halfBase, -halfBase}, mgl32.Vec3{-halfBase, -halfBase, halfBase}},
		{mgl32.Vec3{halfBase, -halfBase, -halfBase}, mgl32.Vec3{-halfBase, -halfBase, -halfBase}},
		{mgl32.Vec3{halfBase, -halfBase, halfBase}, mgl32.Vec3{halfBase, -halfBase, -halfBase}},
		{mgl32.Vec3{-halfBase, -halfBase, halfBase}, mgl32.Vec3{halfBase, -halfBase, halfBase}},
	}
	for _, f := range faces {
		n := geometry.TriangleNormal(f.bottomLeft, f.bottomRight, top)
		verts = appendVertex(verts, top, n, 0.5, 1)
		verts = appendVertex(verts, f.bottomLeft, n, 0, 0)
		verts = appendVertex(verts, f.bottomRight, n, 1, 0)
	}
	return verts
}

// LoadPyramid3Mesh uploads the fixed-size 3-sided pyramid.
func (s *Store) LoadPyramid3Mesh() error {
	return s.store(Pyramid3, buildPyramid3(), nil, 0)
}

// LoadPyramid4Mesh uploads a 4-sided pyramid. Base size and height are
// clamped to 0.01 so no face collapses to a zero-area triangle.
func (s *Store) LoadPyramid4Mesh(baseSize, height float32) error {
	if baseSize < 0.01 {
		baseSize = 0.01
	}
	if height < 0.01 {
		height = 0.01
	}
	return s.store(Pyramid4, buildPyramid4(baseSize, height), nil, 0)
}

// DrawPyramid3Mesh draws the 3-sided pyramid strip.
func (s *Store) DrawPyramid3Mesh() {
	m, ok := s.drawable(Pyramid3, false)
	if !ok {
		return
	}
	s.dev.Draw(m.handle, render.TriangleStrip, 0, m.vertexCount)
}

// DrawPyramid3MeshLines draws the 3-sided pyramid edges in line mode.
func (s *Store) DrawPyramid3MeshLines() {
	m, ok := s.drawable(Pyramid3, false)
	if !ok {
		return
	}
	s.dev.Draw(m.handle, render.LineStrip, 0, m.vertexCount)
}

// DrawPyramid4Mesh draws the 4-sided pyramid strip.
func (s *Store) DrawPyramid4Mesh() {
	m, ok := s.drawable(Pyramid4, false)
	if !ok {
		return
	}
	s.dev.Draw(m.handle, render.TriangleStrip, 0, m.vertexCount)
}

// DrawPyramid4MeshLines draws the 4-sided pyramid edges in line mode.
func (s *Store) DrawPyramid4MeshLines() {
	m, ok := s.drawable(Pyramid4, false)
	if !ok {
		return
	}
	s.dev.Draw(m.handle, render.LineStrip, 0, m.vertexCount)
}
