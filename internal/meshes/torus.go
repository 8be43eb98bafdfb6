package meshes

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"shape-engine/internal/render"
)

// buildTorus samples the standard torus parametrization in the XY plane:
// ((R + r cos phi) cos theta, (R + r cos phi) sin theta, r sin phi). The
// normal is the normalized vector from the tube-center circle to the surface
// point. Cells are indexed as two triangles each, main segment by main
// segment, so the first half of the index buffer is half the ring.
func buildTorus(mainRadius, tubeRadius float32, mainSegments, tubeSegments int) ([]float32, []uint32) {
	mainStep := 2 * math32.Pi / float32(mainSegments)
	tubeStep := 2 * math32.Pi / float32(tubeSegments)

	vertices := make([]float32, 0, (mainSegments+1)*(tubeSegments+1)*render.FloatsPerVertex)
	for i := 0; i <= mainSegments; i++ {
		mainAngle := float32(i) * mainStep
		cosMain := math32.Cos(mainAngle)
		sinMain := math32.Sin(mainAngle)
		center := mgl32.Vec3{mainRadius * cosMain, mainRadius * sinMain, 0}
		for j := 0; j <= tubeSegments; j++ {
			tubeAngle := float32(j) * tubeStep
			cosTube := math32.Cos(tubeAngle)
			sinTube := math32.Sin(tubeAngle)

			p := mgl32.Vec3{
				(mainRadius + tubeRadius*cosTube) * cosMain,
				(mainRadius + tubeRadius*cosTube) * sinMain,
				tubeRadius * sinTube,
			}
			n := p.Sub(center).Normalize()
			u := float32(i) / float32(mainSegments)
			v := float32(j) / float32(tubeSegments)
			vertices = append(vertices, p.X(), p.Y(), p.Z(), n.X(), n.Y(), n.Z(), u, v)
		}
	}

	indices := make([]uint32, 0, mainSegments*tubeSegments*6)
	for i := 0; i < mainSegments; i++ {
		for j := 0; j < tubeSegments; j++ {
			current := uint32(i*(tubeSegments+1) + j)
			next := uint32((i+1)*(tubeSegments+1) + j)
			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}
	return vertices, indices
}

// LoadTorusMesh uploads a torus. Segment counts below 3 are clamped to 3 and
// the tube radius to 0.01 so the tube cross-section cannot self-intersect.
func (s *Store) LoadTorusMesh(mainRadius, tubeRadius float32, mainSegments, tubeSegments int) error {
	if mainSegments < 3 {
		mainSegments = 3
	}
	if tubeSegments < 3 {
		tubeSegments = 3
	}
	if tubeRadius < 0.01 {
		tubeRadius = 0.01
	}
	vertices, indices := buildTorus(mainRadius, tubeRadius, mainSegments, tubeSegments)
	return s.store(Torus, vertices, indices, 0)
}

// DrawTorusMesh draws the full torus.
func (s *Store) DrawTorusMesh() {
	m, ok := s.drawable(Torus, true)
	if !ok {
		return
	}
	s.dev.DrawIndexed(m.handle, render.Triangles, m.indexCount, 0)
}

// DrawTorusMeshLines draws the torus in line mode.
func (s *Store) DrawTorusMeshLines() {
	m, ok := s.drawable(Torus, true)
	if !ok {
		return
	}
	s.dev.DrawIndexed(m.handle, render.Lines, m.indexCount, 0)
}

// DrawHalfTorusMesh draws half the ring: the first half of the index buffer.
func (s *Store) DrawHalfTorusMesh() {
	m, ok := s.drawable(Torus, true)
	if !ok {
		return
	}
	s.dev.DrawIndexed(m.handle, render.Triangles, m.indexCount/2, 0)
}

// DrawHalfTorusMeshLines draws half the ring in line mode.
func (s *Store) DrawHalfTorusMeshLines() {
	m, ok := s.drawable(Torus, true)
	if !ok {
		return
	}
	s.dev.DrawIndexed(m.handle, render.Lines, m.indexCount/2, 0)
}
