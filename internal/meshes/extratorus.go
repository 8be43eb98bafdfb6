package meshes

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"shape-engine/internal/render"
)

// Fixed resolution and ring radius of the stitched torus variant.
const (
	extraTorusSegments   = 30
	extraTorusMainRadius = 1.0
)

// buildExtraTorus is the non-indexed torus variant: it builds a 30x30 grid of
// ring points, then stitches each cell by hand as a 7-vertex triangle pair
// that returns to the cell's first point, with explicit wraparound back to
// ring 0 at the last row, column, and corner. UVs step by 1/30 per cell and
// normals point away from the origin, not from the tube center, which gives
// this variant its distinct shading. Both extra-torus kinds share this
// builder and differ only in the thickness they are loaded with.
func buildExtraTorus(thickness float32) []float32 {
	tubeRadius := float32(0.1)
	if thickness <= 1.0 {
		tubeRadius = thickness
	}
	if tubeRadius < 0.01 {
		tubeRadius = 0.01
	}

	mainStep := 2 * math32.Pi / float32(extraTorusSegments)
	tubeStep := 2 * math32.Pi / float32(extraTorusSegments)

	// ring point grid, one ring per main segment
	rings := make([][]mgl32.Vec3, extraTorusSegments)
	for i := 0; i < extraTorusSegments; i++ {
		mainAngle := float32(i) * mainStep
		cosMain := math32.Cos(mainAngle)
		sinMain := math32.Sin(mainAngle)
		ring := make([]mgl32.Vec3, extraTorusSegments)
		for j := 0; j < extraTorusSegments; j++ {
			tubeAngle := float32(j) * tubeStep
			cosTube := math32.Cos(tubeAngle)
			sinTube := math32.Sin(tubeAngle)
			ring[j] = mgl32.Vec3{
				(extraTorusMainRadius + tubeRadius*cosTube) * cosMain,
				(extraTorusMainRadius + tubeRadius*cosTube) * sinMain,
				tubeRadius * sinTube,
			}
		}
		rings[i] = ring
	}

	hStep := float32(1.0) / extraTorusSegments
	vStep := float32(1.0) / extraTorusSegments

	type stitched struct {
		p  mgl32.Vec3
		uv mgl32.Vec2
	}
	points := make([]stitched, 0, extraTorusSegments*extraTorusSegments*7)
	push := func(p mgl32.Vec3, u, v float32) {
		points = append(points, stitched{p: p, uv: mgl32.Vec2{u, v}})
	}

	for i := 0; i < extraTorusSegments; i++ {
		u := float32(i) * hStep
		for j := 0; j < extraTorusSegments; j++ {
			v := float32(j) * vStep
			switch {
			case i+1 < extraTorusSegments && j+1 < extraTorusSegments:
				push(rings[i][j], u, v)
				push(rings[i][j+1], u, v+vStep)
				push(rings[i+1][j+1], u+hStep, v+vStep)
				push(rings[i][j], u, v)
				push(rings[i+1][j], u+hStep, v)
				push(rings[i+1][j+1], u+hStep, v-vStep)
				push(rings[i][j], u, v)
			case i+1 == extraTorusSegments && j+1 == extraTorusSegments:
				push(rings[i][j], u, v)
				push(rings[i][0], u, 0)
				push(rings[0][0], 0, 0)
				push(rings[i][j], u, v)
				push(rings[0][j], 0, v)
				push(rings[0][0], 0, 0)
				push(rings[i][j], u, v)
			case i+1 == extraTorusSegments:
				push(rings[i][j], u, v)
				push(rings[i][j+1], u, v+vStep)
				push(rings[0][j+1], 0, v+vStep)
				push(rings[i][j], u, v)
				push(rings[0][j], 0, v)
				push(rings[0][j+1], 0, v+vStep)
				push(rings[i][j], u, v)
			default: // j+1 == extraTorusSegments
				push(rings[i][j], u, v)
				push(rings[i][0], u, 0)
				push(rings[i+1][0], u+hStep, 0)
				push(rings[i][j], u, v)
				push(rings[i+1][j], u+hStep, v)
				push(rings[i+1][0], u+hStep, 0)
				push(rings[i][j], u, v)
			}
		}
	}

	verts := make([]float32, 0, len(points)*render.FloatsPerVertex)
	for _, sp := range points {
		n := sp.p.Normalize()
		verts = append(verts, sp.p.X(), sp.p.Y(), sp.p.Z(), n.X(), n.Y(), n.Z(), sp.uv.X(), sp.uv.Y())
	}
	return verts
}

// LoadExtraTorusMesh1 uploads the first stitched torus variant. A thickness
// at most 1.0 overrides the default 0.1 tube radius.
func (s *Store) LoadExtraTorusMesh1(thickness float32) error {
	return s.store(ExtraTorus1, buildExtraTorus(thickness), nil, 0)
}

// LoadExtraTorusMesh2 uploads the second stitched torus variant, kept as its
// own kind so the scene can cache two thicknesses at once.
func (s *Store) LoadExtraTorusMesh2(thickness float32) error {
	return s.store(ExtraTorus2, buildExtraTorus(thickness), nil, 0)
}

// DrawExtraTorusMesh1 draws the first variant as a plain triangle list.
func (s *Store) DrawExtraTorusMesh1() {
	m, ok := s.drawable(ExtraTorus1, false)
	if !ok {
		return
	}
	s.dev.Draw(m.handle, render.Triangles, 0, m.vertexCount)
}

// DrawExtraTorusMesh2 draws the second variant as a plain triangle list.
func (s *Store) DrawExtraTorusMesh2() {
	m, ok := s.drawable(ExtraTorus2, false)
	if !ok {
		return
	}
	s.dev.Draw(m.handle, render.Triangles, 0, m.vertexCount)
}
