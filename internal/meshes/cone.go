package meshes

import (
	"github.com/chewxy/math32"

	"shape-engine/internal/geometry"
	"shape-engine/internal/render"
)

// buildCone returns a cone with its base disk on the XZ plane and apex at
// (0, height, 0): first a bottom fan (center + numSlices+1 rim vertices with a
// polar disk UV), then a side strip alternating rim and apex vertices that
// both carry the rim point's outward normal.
func buildCone(radius, height float32, numSlices int) []float32 {
	step := 2 * math32.Pi / float32(numSlices)
	verts := make([]float32, 0, (1+(numSlices+1)+2*(numSlices+1))*render.FloatsPerVertex)

	verts = append(verts, 0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= numSlices; i++ {
		angle := float32(i) * step
		x, z := geometry.RimPoint(radius, angle)
		u, v := geometry.DiskUV(angle)
		verts = append(verts, x, 0, z, 0, -1, 0, u, v)
	}

	for i := 0; i <= numSlices; i++ {
		angle := float32(i) * step
		x, z := geometry.RimPoint(radius, angle)
		nx, nz := math32.Cos(angle), math32.Sin(angle)
		u := float32(i) / float32(numSlices)
		verts = append(verts, x, 0, z, nx, 0, nz, u, 1)
		verts = append(verts, 0, height, 0, nx, 0, nz, u, 0)
	}
	return verts
}

// LoadConeMesh uploads a cone. numSlices below 3 is clamped to 3.
func (s *Store) LoadConeMesh(radius, height float32, numSlices int) error {
	if numSlices < 3 {
		numSlices = 3
	}
	return s.store(Cone, buildCone(radius, height, numSlices), nil, numSlices)
}

// coneRanges derives the fan and strip extents from the generation-time slice
// count. The side strip covers every generated pair, closing the surface.
func coneRanges(slices int) (bottomCount, sideFirst, sideCount int) {
	bottomCount = slices + 2
	sideFirst = bottomCount
	sideCount = 2 * (slices + 1)
	return
}

// DrawConeMesh draws the cone sides, and the bottom disk when drawBottom is set.
func (s *Store) DrawConeMesh(drawBottom bool) {
	m, ok := s.drawable(Cone, false)
	if !ok {
		return
	}
	bottomCount, sideFirst, sideCount := coneRanges(m.slices)
	if drawBottom {
		s.dev.Draw(m.handle, render.TriangleFan, 0, bottomCount)
	}
	s.dev.Draw(m.handle, render.TriangleStrip, sideFirst, sideCount)
}

// DrawConeMeshLines draws the cone in line mode.
func (s *Store) DrawConeMeshLines(drawBottom bool) {
	m, ok := s.drawable(Cone, false)
	if !ok {
		return
	}
	bottomCount, sideFirst, sideCount := coneRanges(m.slices)
	if drawBottom {
		s.dev.Draw(m.handle, render.Lines, 0, bottomCount)
	}
	s.dev.Draw(m.handle, render.LineStrip, sideFirst, sideCount)
}
