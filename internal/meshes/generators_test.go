package meshes

import (
	"testing"

	"github.com/chewxy/math32"

	"shape-engine/internal/logger"
	"shape-engine/internal/render"
)

func newTestStore() (*Store, *render.NullDevice, *logger.Logger) {
	dev := render.NewNullDevice()
	log := logger.NewMemory()
	return New(dev, log), dev, log
}

func loadAll(t *testing.T, s *Store) {
	t.Helper()
	loads := []struct {
		name string
		fn   func() error
	}{
		{"box", s.LoadBoxMesh},
		{"cone", func() error { return s.LoadConeMesh(1, 2, 12) }},
		{"cylinder", func() error { return s.LoadCylinderMesh(1, 2, 12) }},
		{"plane", func() error { return s.LoadPlaneMesh(4, 4) }},
		{"prism", s.LoadPrismMesh},
		{"pyramid3", s.LoadPyramid3Mesh},
		{"pyramid4", func() error { return s.LoadPyramid4Mesh(1, 1) }},
		{"sphere", func() error { return s.LoadSphereMesh(8, 8, 1) }},
		{"tapered", s.LoadTaperedCylinderMesh},
		{"torus", func() error { return s.LoadTorusMesh(1, 0.25, 16, 8) }},
		{"extra1", func() error { return s.LoadExtraTorusMesh1(0.2) }},
		{"extra2", func() error { return s.LoadExtraTorusMesh2(0.3) }},
	}
	for _, l := range loads {
		if err := l.fn(); err != nil {
			t.Fatalf("load %s: %v", l.name, err)
		}
	}
}

func TestEveryBufferMatchesVertexLayout(t *testing.T) {
	s, dev, _ := newTestStore()
	loadAll(t, s)
	for k := Kind(0); k < kindCount; k++ {
		if !s.Loaded(k) {
			t.Errorf("%s not loaded", k)
			continue
		}
		verts := dev.MeshVertices(s.slots[k].handle)
		if len(verts) != s.VertexCount(k)*render.FloatsPerVertex {
			t.Errorf("%s: buffer has %d floats, want vertexCount %d * %d",
				k, len(verts), s.VertexCount(k), render.FloatsPerVertex)
		}
	}
}

func TestEveryIndexInRange(t *testing.T) {
	s, dev, _ := newTestStore()
	loadAll(t, s)
	for k := Kind(0); k < kindCount; k++ {
		indices := dev.MeshIndices(s.slots[k].handle)
		for _, ix := range indices {
			if int(ix) >= s.VertexCount(k) {
				t.Fatalf("%s: index %d out of range (%d vertices)", k, ix, s.VertexCount(k))
			}
		}
	}
}

func TestBoxMesh(t *testing.T) {
	s, dev, _ := newTestStore()
	if err := s.LoadBoxMesh(); err != nil {
		t.Fatalf("LoadBoxMesh: %v", err)
	}
	if got := s.VertexCount(Box); got != 24 {
		t.Errorf("box vertex count = %d, want 24", got)
	}
	if got := s.IndexCount(Box); got != 36 {
		t.Errorf("box index count = %d, want 36", got)
	}

	first := append([]float32(nil), dev.MeshVertices(s.slots[Box].handle)...)
	if err := s.LoadBoxMesh(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	second := dev.MeshVertices(s.slots[Box].handle)
	if len(first) != len(second) {
		t.Fatalf("regenerated box changed size: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("regenerated box differs at float %d: %v vs %v", i, first[i], second[i])
		}
	}

	want := [6]int{0, 4, 8, 12, 16, 20}
	if boxFaceStart != want {
		t.Errorf("box face start table = %v, want %v", boxFaceStart, want)
	}
}

func TestConeClampsSliceCount(t *testing.T) {
	s, _, _ := newTestStore()
	if err := s.LoadConeMesh(1, 1, 2); err != nil {
		t.Fatalf("LoadConeMesh: %v", err)
	}
	if got := s.slots[Cone].slices; got != 3 {
		t.Errorf("slices = %d, want clamp to 3", got)
	}
	bottomCount, _, sideCount := coneRanges(s.slots[Cone].slices)
	if bottomCount != 5 {
		t.Errorf("bottom fan count = %d, want 5", bottomCount)
	}
	if sideCount != 8 {
		t.Errorf("side strip count = %d, want 8", sideCount)
	}
	// bottom fan + side strip cover the full buffer
	if got := s.VertexCount(Cone); got != bottomCount+sideCount {
		t.Errorf("vertex count = %d, want %d", got, bottomCount+sideCount)
	}
}

func TestSphereIndexing(t *testing.T) {
	vertices, indices := buildSphere(4, 4, 1)
	if got := len(vertices) / render.FloatsPerVertex; got != 25 {
		t.Errorf("sphere vertex count = %d, want 25", got)
	}
	if len(indices) != 96 {
		t.Errorf("sphere index count = %d, want 4*4*6 = 96", len(indices))
	}
	// first = lat*(lonSeg+1)+lon, second = first+lonSeg+1 for cell (1,2)
	cell := (1*4 + 2) * 6
	first := uint32(1*5 + 2)
	second := first + 5
	want := []uint32{first, second, first + 1, second, second + 1, first + 1}
	for i, w := range want {
		if indices[cell+i] != w {
			t.Fatalf("cell (1,2) index %d = %d, want %d", i, indices[cell+i], w)
		}
	}
}

func TestSphereNormalsAreUnit(t *testing.T) {
	vertices, _ := buildSphere(6, 6, 2.5)
	for i := 0; i < len(vertices); i += render.FloatsPerVertex {
		nx, ny, nz := vertices[i+3], vertices[i+4], vertices[i+5]
		l := math32.Sqrt(nx*nx + ny*ny + nz*nz)
		if math32.Abs(l-1) > 1e-5 {
			t.Fatalf("vertex %d normal length = %v", i/render.FloatsPerVertex, l)
		}
	}
}

func TestTorusClampsTubeRadius(t *testing.T) {
	s, dev, _ := newTestStore()
	if err := s.LoadTorusMesh(1, 0, 8, 8); err != nil {
		t.Fatalf("LoadTorusMesh with zero tube radius: %v", err)
	}
	if got := s.IndexCount(Torus); got != 8*8*6 {
		t.Errorf("torus index count = %d, want %d", got, 8*8*6)
	}
	// every vertex sits 0.01 from the tube-center circle of radius 1
	verts := dev.MeshVertices(s.slots[Torus].handle)
	for i := 0; i < len(verts); i += render.FloatsPerVertex {
		x, y, z := verts[i], verts[i+1], verts[i+2]
		ring := math32.Sqrt(x*x + y*y)
		d := math32.Sqrt((ring-1)*(ring-1) + z*z)
		if math32.Abs(d-0.01) > 1e-5 {
			t.Fatalf("vertex %d is %v from tube center circle, want 0.01", i/render.FloatsPerVertex, d)
		}
	}
}

func TestTorusSegmentClamp(t *testing.T) {
	s, _, _ := newTestStore()
	if err := s.LoadTorusMesh(1, 0.2, 1, 2); err != nil {
		t.Fatalf("LoadTorusMesh: %v", err)
	}
	if got := s.IndexCount(Torus); got != 3*3*6 {
		t.Errorf("index count = %d, want clamped 3*3*6 = %d", got, 3*3*6)
	}
}

func TestTaperedCylinderTable(t *testing.T) {
	s, _, _ := newTestStore()
	if err := s.LoadTaperedCylinderMesh(); err != nil {
		t.Fatalf("LoadTaperedCylinderMesh: %v", err)
	}
	if got := s.VertexCount(TaperedCylinder); got != 218 {
		t.Errorf("vertex count = %d, want 218", got)
	}
	if taperedBottomCount+taperedTopCount+taperedSideCount != 218 {
		t.Errorf("draw ranges %d+%d+%d do not cover the table",
			taperedBottomCount, taperedTopCount, taperedSideCount)
	}
	// bottom ring lies at y=0, top ring at y=1 with half the radius
	v := taperedCylinderVertices
	for i := 0; i < taperedBottomCount; i++ {
		if v[i*8+1] != 0 {
			t.Fatalf("bottom vertex %d has y=%v", i, v[i*8+1])
		}
	}
	for i := taperedTopFirst; i < taperedTopFirst+taperedTopCount; i++ {
		if v[i*8+1] != 1 {
			t.Fatalf("top vertex %d has y=%v", i, v[i*8+1])
		}
	}
}

func TestExtraTorusStitching(t *testing.T) {
	verts := buildExtraTorus(0.2)
	// 30x30 cells, each stitched as 7 vertices
	want := 30 * 30 * 7 * render.FloatsPerVertex
	if len(verts) != want {
		t.Fatalf("stitched torus has %d floats, want %d", len(verts), want)
	}
	// normals point away from the origin
	for i := 0; i < len(verts); i += render.FloatsPerVertex {
		nx, ny, nz := verts[i+3], verts[i+4], verts[i+5]
		l := math32.Sqrt(nx*nx + ny*ny + nz*nz)
		if math32.Abs(l-1) > 1e-5 {
			t.Fatalf("vertex %d normal length = %v", i/render.FloatsPerVertex, l)
		}
	}
}

func TestFixedShapeCounts(t *testing.T) {
	s, _, _ := newTestStore()
	loadAll(t, s)
	tests := []struct {
		kind Kind
		want int
	}{
		{Plane, 4},
		{Prism, 32},
		{Pyramid3, 12},
		{Pyramid4, 16},
	}
	for _, tc := range tests {
		if got := s.VertexCount(tc.kind); got != tc.want {
			t.Errorf("%s vertex count = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestPyramidNormalsFinite(t *testing.T) {
	for _, verts := range [][]float32{buildPyramid3(), buildPyramid4(0.01, 0.01)} {
		for i := 0; i < len(verts); i += render.FloatsPerVertex {
			for j := 3; j < 6; j++ {
				if math32.IsNaN(verts[i+j]) || math32.IsInf(verts[i+j], 0) {
					t.Fatalf("vertex %d normal component %d is %v", i/render.FloatsPerVertex, j-3, verts[i+j])
				}
			}
		}
	}
}
