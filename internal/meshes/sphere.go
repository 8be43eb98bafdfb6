package meshes

import (
	"github.com/chewxy/math32"

	"shape-engine/internal/render"
)

// buildSphere samples a latitude x longitude grid. Position and normal share
// the unit-sphere direction; UVs are inverted on both axes to match the
// expected texture orientation. Cells are indexed as two triangles each, row
// by row from the north pole, so the first half of the index buffer is the
// northern band.
func buildSphere(latSegments, lonSegments int, radius float32) ([]float32, []uint32) {
	vertices := make([]float32, 0, (latSegments+1)*(lonSegments+1)*render.FloatsPerVertex)
	for lat := 0; lat <= latSegments; lat++ {
		theta := float32(lat) * math32.Pi / float32(latSegments)
		sinTheta := math32.Sin(theta)
		cosTheta := math32.Cos(theta)
		for lon := 0; lon <= lonSegments; lon++ {
			phi := float32(lon) * 2 * math32.Pi / float32(lonSegments)
			nx := sinTheta * math32.Cos(phi)
			ny := cosTheta
			nz := sinTheta * math32.Sin(phi)
			u := 1 - float32(lon)/float32(lonSegments)
			v := 1 - float32(lat)/float32(latSegments)
			vertices = append(vertices, radius*nx, radius*ny, radius*nz, nx, ny, nz, u, v)
		}
	}

	indices := make([]uint32, 0, latSegments*lonSegments*6)
	for lat := 0; lat < latSegments; lat++ {
		for lon := 0; lon < lonSegments; lon++ {
			first := uint32(lat*(lonSegments+1) + lon)
			second := first + uint32(lonSegments) + 1
			indices = append(indices, first, second, first+1)
			indices = append(indices, second, second+1, first+1)
		}
	}
	return vertices, indices
}

// LoadSphereMesh uploads a sphere. Segment counts below 3 are clamped to 3.
func (s *Store) LoadSphereMesh(latSegments, lonSegments int, radius float32) error {
	if latSegments < 3 {
		latSegments = 3
	}
	if lonSegments < 3 {
		lonSegments = 3
	}
	vertices, indices := buildSphere(latSegments, lonSegments, radius)
	return s.store(Sphere, vertices, indices, 0)
}

// DrawSphereMesh draws the full sphere.
func (s *Store) DrawSphereMesh() {
	m, ok := s.drawable(Sphere, true)
	if !ok {
		return
	}
	s.dev.DrawIndexed(m.handle, render.Triangles, m.indexCount, 0)
}

// DrawSphereMeshLines draws the sphere in line mode.
func (s *Store) DrawSphereMeshLines() {
	m, ok := s.drawable(Sphere, true)
	if !ok {
		return
	}
	s.dev.DrawIndexed(m.handle, render.LineStrip, m.indexCount, 0)
}

// DrawHalfSphereMesh draws the northern half: the first half of the index
// buffer, which covers the upper latitude band.
func (s *Store) DrawHalfSphereMesh() {
	m, ok := s.drawable(Sphere, true)
	if !ok {
		return
	}
	s.dev.DrawIndexed(m.handle, render.Triangles, m.indexCount/2, 0)
}

// DrawHalfSphereMeshLines draws the northern half in line mode.
func (s *Store) DrawHalfSphereMeshLines() {
	m, ok := s.drawable(Sphere, true)
	if !ok {
		return
	}
	s.dev.DrawIndexed(m.handle, render.Lines, m.indexCount/2, 0)
}
