package meshes

import (
	"github.com/chewxy/math32"

	"shape-engine/internal/geometry"
	"shape-engine/internal/render"
)

// buildCylinder returns a cylinder standing on the XZ plane: bottom fan, top
// fan, then a side strip alternating the bottom and top vertex of each slice.
// Fan rims carry polar disk UVs; the side strip tiles u around the barrel.
func buildCylinder(radius, height float32, numSlices int) []float32 {
	step := 2 * math32.Pi / float32(numSlices)
	verts := make([]float32, 0, (2*(numSlices+2)+2*(numSlices+1))*render.FloatsPerVertex)

	verts = append(verts, 0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= numSlices; i++ {
		angle := float32(i) * step
		x, z := geometry.RimPoint(radius, angle)
		u, v := geometry.DiskUV(angle)
		verts = append(verts, x, 0, z, 0, -1, 0, u, v)
	}

	verts = append(verts, 0, height, 0, 0, 1, 0, 0.5, 0.5)
	for i := 0; i <= numSlices; i++ {
		angle := float32(i) * step
		x, z := geometry.RimPoint(radius, angle)
		u, v := geometry.DiskUV(angle)
		verts = append(verts, x, height, z, 0, 1, 0, u, v)
	}

	for i := 0; i <= numSlices; i++ {
		angle := float32(i) * step
		x, z := geometry.RimPoint(radius, angle)
		nx, nz := math32.Cos(angle), math32.Sin(angle)
		u := float32(i) / float32(numSlices)
		verts = append(verts, x, 0, z, nx, 0, nz, u, 0)
		verts = append(verts, x, height, z, nx, 0, nz, u, 1)
	}
	return verts
}

// LoadCylinderMesh uploads a cylinder. numSlices below 3 is clamped to 3.
func (s *Store) LoadCylinderMesh(radius, height float32, numSlices int) error {
	if numSlices < 3 {
		numSlices = 3
	}
	return s.store(Cylinder, buildCylinder(radius, height, numSlices), nil, numSlices)
}

// cylinderRanges derives the three draw extents from the generation-time
// slice count: each fan is center + slices+1 rim vertices, and the side strip
// starts right after both fans.
func cylinderRanges(slices int) (fanCount, sideFirst, sideCount int) {
	fanCount = slices + 2
	sideFirst = 2 * fanCount
	sideCount = 2 * (slices + 1)
	return
}

// DrawCylinderMesh draws the selected parts of the cylinder.
func (s *Store) DrawCylinderMesh(drawTop, drawBottom, drawSides bool) {
	m, ok := s.drawable(Cylinder, false)
	if !ok {
		return
	}
	fanCount, sideFirst, sideCount := cylinderRanges(m.slices)
	if drawBottom {
		s.dev.Draw(m.handle, render.TriangleFan, 0, fanCount)
	}
	if drawTop {
		s.dev.Draw(m.handle, render.TriangleFan, fanCount, fanCount)
	}
	if drawSides {
		s.dev.Draw(m.handle, render.TriangleStrip, sideFirst, sideCount)
	}
}

// DrawCylinderMeshLines draws the selected parts in line mode. The rim loops
// skip each fan's center vertex.
func (s *Store) DrawCylinderMeshLines(drawTop, drawBottom, drawSides bool) {
	m, ok := s.drawable(Cylinder, false)
	if !ok {
		return
	}
	fanCount, sideFirst, sideCount := cylinderRanges(m.slices)
	if drawBottom {
		s.dev.Draw(m.handle, render.LineLoop, 1, m.slices)
	}
	if drawTop {
		s.dev.Draw(m.handle, render.LineLoop, fanCount+1, m.slices)
	}
	if drawSides {
		s.dev.Draw(m.handle, render.LineStrip, sideFirst, sideCount)
	}
}
