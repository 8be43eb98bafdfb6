package meshes

import (
	"strings"
	"testing"

	"shape-engine/internal/render"
)

func TestCylinderPartialDrawRanges(t *testing.T) {
	s, dev, _ := newTestStore()
	if err := s.LoadCylinderMesh(1, 2, 8); err != nil {
		t.Fatalf("LoadCylinderMesh: %v", err)
	}
	dev.Reset()
	s.DrawCylinderMesh(true, true, true)
	if len(dev.Calls) != 3 {
		t.Fatalf("recorded %d calls, want 3", len(dev.Calls))
	}
	want := []render.DrawCall{
		{Mesh: s.slots[Cylinder].handle, Topo: render.TriangleFan, First: 0, Count: 10},
		{Mesh: s.slots[Cylinder].handle, Topo: render.TriangleFan, First: 10, Count: 10},
		{Mesh: s.slots[Cylinder].handle, Topo: render.TriangleStrip, First: 20, Count: 18},
	}
	for i, w := range want {
		if dev.Calls[i] != w {
			t.Errorf("call %d = %+v, want %+v", i, dev.Calls[i], w)
		}
	}
	// ranges must stay inside the generated buffer
	last := dev.Calls[2]
	if last.First+last.Count != s.VertexCount(Cylinder) {
		t.Errorf("side strip ends at %d, buffer has %d vertices", last.First+last.Count, s.VertexCount(Cylinder))
	}
}

func TestCylinderSidesOnly(t *testing.T) {
	s, dev, _ := newTestStore()
	if err := s.LoadCylinderMesh(1, 1, 8); err != nil {
		t.Fatal(err)
	}
	dev.Reset()
	s.DrawCylinderMesh(false, false, true)
	if len(dev.Calls) != 1 {
		t.Fatalf("recorded %d calls, want 1", len(dev.Calls))
	}
	if c := dev.Calls[0]; c.Topo != render.TriangleStrip || c.First != 20 || c.Count != 18 {
		t.Errorf("sides call = %+v", c)
	}
}

func TestCylinderLineRangesSkipFanCenters(t *testing.T) {
	s, dev, _ := newTestStore()
	if err := s.LoadCylinderMesh(1, 1, 8); err != nil {
		t.Fatal(err)
	}
	dev.Reset()
	s.DrawCylinderMeshLines(true, true, false)
	if len(dev.Calls) != 2 {
		t.Fatalf("recorded %d calls, want 2", len(dev.Calls))
	}
	if c := dev.Calls[0]; c.Topo != render.LineLoop || c.First != 1 || c.Count != 8 {
		t.Errorf("bottom loop = %+v", c)
	}
	if c := dev.Calls[1]; c.Topo != render.LineLoop || c.First != 11 || c.Count != 8 {
		t.Errorf("top loop = %+v", c)
	}
}

func TestConeDrawRanges(t *testing.T) {
	s, dev, _ := newTestStore()
	if err := s.LoadConeMesh(1, 2, 6); err != nil {
		t.Fatal(err)
	}
	dev.Reset()
	s.DrawConeMesh(true)
	if len(dev.Calls) != 2 {
		t.Fatalf("recorded %d calls, want 2", len(dev.Calls))
	}
	if c := dev.Calls[0]; c.Topo != render.TriangleFan || c.First != 0 || c.Count != 8 {
		t.Errorf("bottom fan = %+v", c)
	}
	if c := dev.Calls[1]; c.Topo != render.TriangleStrip || c.First != 8 || c.Count != 14 {
		t.Errorf("side strip = %+v", c)
	}
	if c := dev.Calls[1]; c.First+c.Count != s.VertexCount(Cone) {
		t.Errorf("side strip ends at %d, buffer has %d vertices", c.First+c.Count, s.VertexCount(Cone))
	}

	dev.Reset()
	s.DrawConeMesh(false)
	if len(dev.Calls) != 1 || dev.Calls[0].Topo != render.TriangleStrip {
		t.Errorf("sides-only draw = %+v", dev.Calls)
	}
}

func TestBoxFaceDraws(t *testing.T) {
	s, dev, _ := newTestStore()
	if err := s.LoadBoxMesh(); err != nil {
		t.Fatal(err)
	}
	for side := BoxBack; side <= BoxFront; side++ {
		dev.Reset()
		s.DrawBoxMeshSide(side)
		if len(dev.Calls) != 1 {
			t.Fatalf("side %d: recorded %d calls", side, len(dev.Calls))
		}
		c := dev.Calls[0]
		if c.Topo != render.TriangleFan || c.Count != 4 || c.First != int(side)*4 {
			t.Errorf("side %d draw = %+v, want fan of 4 at %d", side, c, int(side)*4)
		}
	}
}

func TestBoxInvalidSideLogged(t *testing.T) {
	s, dev, log := newTestStore()
	if err := s.LoadBoxMesh(); err != nil {
		t.Fatal(err)
	}
	dev.Reset()
	s.DrawBoxMeshSide(BoxSide(6))
	if len(dev.Calls) != 0 {
		t.Errorf("invalid side still drew: %+v", dev.Calls)
	}
	if lines := log.Lines(); len(lines) == 0 || !strings.Contains(lines[len(lines)-1], "invalid side") {
		t.Errorf("expected invalid-side diagnostic, got %v", lines)
	}
}

func TestHalfSphereIsNorthernBand(t *testing.T) {
	const latSeg, lonSeg = 4, 4
	s, dev, _ := newTestStore()
	if err := s.LoadSphereMesh(latSeg, lonSeg, 1); err != nil {
		t.Fatal(err)
	}
	dev.Reset()
	s.DrawHalfSphereMesh()
	if len(dev.Calls) != 1 {
		t.Fatalf("recorded %d calls", len(dev.Calls))
	}
	c := dev.Calls[0]
	if !c.Indexed || c.First != 0 || c.Count != s.IndexCount(Sphere)/2 {
		t.Fatalf("half draw = %+v", c)
	}
	// the first half of the index buffer must only touch the upper latitude
	// rows: for an even latSeg it covers rows 0..latSeg/2, i.e. vertices
	// below (latSeg/2+1)*(lonSeg+1)
	indices := dev.MeshIndices(s.slots[Sphere].handle)
	limit := uint32((latSeg/2 + 1) * (lonSeg + 1))
	for _, ix := range indices[:c.Count] {
		if ix >= limit {
			t.Fatalf("half draw touches vertex %d, outside northern band limit %d", ix, limit)
		}
	}
}

func TestHalfTorusDraw(t *testing.T) {
	s, dev, _ := newTestStore()
	if err := s.LoadTorusMesh(1, 0.2, 8, 8); err != nil {
		t.Fatal(err)
	}
	dev.Reset()
	s.DrawHalfTorusMesh()
	if len(dev.Calls) != 1 {
		t.Fatalf("recorded %d calls", len(dev.Calls))
	}
	if c := dev.Calls[0]; !c.Indexed || c.First != 0 || c.Count != s.IndexCount(Torus)/2 {
		t.Errorf("half torus draw = %+v", c)
	}
}

func TestTaperedCylinderDrawRanges(t *testing.T) {
	s, dev, _ := newTestStore()
	if err := s.LoadTaperedCylinderMesh(); err != nil {
		t.Fatal(err)
	}
	dev.Reset()
	s.DrawTaperedCylinderMesh(true, true, true)
	want := []render.DrawCall{
		{Mesh: s.slots[TaperedCylinder].handle, Topo: render.TriangleFan, First: 0, Count: 36},
		{Mesh: s.slots[TaperedCylinder].handle, Topo: render.TriangleFan, First: 36, Count: 36},
		{Mesh: s.slots[TaperedCylinder].handle, Topo: render.TriangleStrip, First: 72, Count: 146},
	}
	if len(dev.Calls) != len(want) {
		t.Fatalf("recorded %d calls, want %d", len(dev.Calls), len(want))
	}
	for i, w := range want {
		if dev.Calls[i] != w {
			t.Errorf("call %d = %+v, want %+v", i, dev.Calls[i], w)
		}
	}
}

func TestLineModeTopologies(t *testing.T) {
	s, dev, _ := newTestStore()
	loadAll(t, s)

	dev.Reset()
	s.DrawBoxMeshLines()
	s.DrawPlaneMeshLines()
	s.DrawPrismMeshLines()
	s.DrawPyramid3MeshLines()
	s.DrawPyramid4MeshLines()
	s.DrawSphereMeshLines()
	s.DrawTorusMeshLines()
	s.DrawHalfSphereMeshLines()
	s.DrawHalfTorusMeshLines()
	for i, c := range dev.Calls {
		if c.Topo != render.Lines && c.Topo != render.LineStrip && c.Topo != render.LineLoop {
			t.Errorf("call %d used topology %v in line mode", i, c.Topo)
		}
	}
}
