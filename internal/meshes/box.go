package meshes

import "shape-engine/internal/render"

// BoxSide names one face of the box. The order matches the vertex table: each
// face occupies 4 consecutive vertices starting at side index * 4.
type BoxSide int

const (
	BoxBack BoxSide = iota
	BoxBottom
	BoxLeft
	BoxRight
	BoxTop
	BoxFront
)

// boxFaceStart maps a BoxSide to its first vertex in the table.
var boxFaceStart = [6]int{0, 4, 8, 12, 16, 20}

// boxVertices is the unit box: 4 vertices per face, 6 faces, not shared
// across faces so each face carries its own normal and UV unwrap.
var boxVertices = []float32{
	// back face
	0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	// bottom face
	-0.5, -0.5, 0.5, 0, -1, 0, 0, 1,
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	0.5, -0.5, -0.5, 0, -1, 0, 1, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
	// left face
	-0.5, 0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0, 1, 0,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
	// right face
	0.5, 0.5, 0.5, 1, 0, 0, 0, 1,
	0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
	0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
	// top face
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
	// front face
	-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
}

// boxIndices builds 12 triangles, two per face.
var boxIndices = []uint32{
	0, 1, 2, 0, 3, 2,
	4, 5, 6, 4, 7, 6,
	8, 9, 10, 8, 11, 10,
	12, 13, 14, 12, 15, 14,
	16, 17, 18, 16, 19, 18,
	20, 21, 22, 20, 23, 22,
}

// LoadBoxMesh uploads the unit box mesh.
func (s *Store) LoadBoxMesh() error {
	return s.store(Box, boxVertices, boxIndices, 0)
}

// DrawBoxMesh draws the whole box.
func (s *Store) DrawBoxMesh() {
	m, ok := s.drawable(Box, true)
	if !ok {
		return
	}
	s.dev.DrawIndexed(m.handle, render.Triangles, m.indexCount, 0)
}

// DrawBoxMeshSide draws a single face as a 4-vertex fan. Invalid sides are
// reported and skipped.
func (s *Store) DrawBoxMeshSide(side BoxSide) {
	m, ok := s.drawable(Box, false)
	if !ok {
		return
	}
	if side < BoxBack || side > BoxFront {
		if s.log != nil {
			s.log.Logf("meshes: draw box side skipped, invalid side %d", side)
		}
		return
	}
	s.dev.Draw(m.handle, render.TriangleFan, boxFaceStart[side], 4)
}

// DrawBoxMeshLines draws the box edges in line mode.
func (s *Store) DrawBoxMeshLines() {
	m, ok := s.drawable(Box, true)
	if !ok {
		return
	}
	s.dev.DrawIndexed(m.handle, render.LineStrip, m.indexCount, 0)
}
