package meshes

import "shape-engine/internal/render"

// Slanted-face normals of the wedge: the normalized (2, 0, -1) direction and
// its mirror, matching a rise:run of 2:1 on each slant.
const (
	prismSlantX = 0.894427180
	prismSlantZ = -0.447213590
)

// prismVertices is a triangular-cross-section wedge drawn as one continuous
// triangle strip. Face boundaries are implicit in the vertex ordering;
// repeated vertices stitch the strip between faces.
var prismVertices = []float32{
	// back face
	0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	// bottom face
	0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	-0.5, -0.5, -0.5, 0, -1, 0, 1, 0,
	0.0, -0.5, 0.5, 0, -1, 0, 0.5, 1,
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	// left slanted face
	-0.5, -0.5, -0.5, prismSlantX, 0, prismSlantZ, 0, 0,
	-0.5, 0.5, -0.5, prismSlantX, 0, prismSlantZ, 0, 1,
	0.0, 0.5, 0.5, prismSlantX, 0, prismSlantZ, 1, 1,
	-0.5, -0.5, -0.5, prismSlantX, 0, prismSlantZ, 0, 0,
	-0.5, -0.5, -0.5, prismSlantX, 0, prismSlantZ, 0, 0,
	0.0, -0.5, 0.5, prismSlantX, 0, prismSlantZ, 1, 0,
	0.0, 0.5, 0.5, prismSlantX, 0, prismSlantZ, 1, 1,
	-0.5, -0.5, -0.5, prismSlantX, 0, prismSlantZ, 0, 0,
	// right slanted face
	0.0, 0.5, 0.5, -prismSlantX, 0, prismSlantZ, 0, 1,
	0.5, 0.5, -0.5, -prismSlantX, 0, prismSlantZ, 1, 1,
	0.5, -0.5, -0.5, -prismSlantX, 0, prismSlantZ, 1, 0,
	0.0, 0.5, 0.5, -prismSlantX, 0, prismSlantZ, 0, 1,
	0.0, 0.5, 0.5, -prismSlantX, 0, prismSlantZ, 0, 1,
	0.0, -0.5, 0.5, -prismSlantX, 0, prismSlantZ, 0, 0,
	0.5, -0.5, -0.5, -prismSlantX, 0, prismSlantZ, 1, 0,
	0.0, 0.5, 0.5, -prismSlantX, 0, prismSlantZ, 0, 1,
	// top face
	0.5, 0.5, -0.5, 0, 1, 0, 0, 0,
	0.0, 0.5, 0.5, 0, 1, 0, 0.5, 1,
	-0.5, 0.5, -0.5, 0, 1, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0, 0, 0,
}

// LoadPrismMesh uploads the wedge mesh.
func (s *Store) LoadPrismMesh() error {
	return s.store(Prism, prismVertices, nil, 0)
}

// DrawPrismMesh draws the full wedge strip.
func (s *Store) DrawPrismMesh() {
	m, ok := s.drawable(Prism, false)
	if !ok {
		return
	}
	s.dev.Draw(m.handle, render.TriangleStrip, 0, m.vertexCount)
}

// DrawPrismMeshLines draws the wedge edges in line mode.
func (s *Store) DrawPrismMeshLines() {
	m, ok := s.drawable(Prism, false)
	if !ok {
		return
	}
	s.dev.Draw(m.handle, render.LineStrip, 0, m.vertexCount)
}
