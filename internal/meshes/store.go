package meshes

import (
	"fmt"

	"shape-engine/internal/logger"
	"shape-engine/internal/render"
)

// meshSlot is the per-kind record: GPU handle plus the counts needed to
// address partial draws later. slices is kept for the shapes whose draw
// offsets are derived from generation-time resolution (cone, cylinder).
type meshSlot struct {
	handle      render.MeshHandle
	vertexCount int
	indexCount  int
	slices      int
}

// Store owns one mesh per primitive kind. Meshes are generated on demand by
// the Load methods and drawn through the Draw methods; the store is the only
// owner of the GPU handles. Draw calls on a kind that was never loaded log a
// diagnostic and draw nothing.
type Store struct {
	dev   render.Device
	log   *logger.Logger
	slots [kindCount]meshSlot
}

// New returns an empty store drawing through dev and reporting through log.
func New(dev render.Device, log *logger.Logger) *Store {
	return &Store{dev: dev, log: log}
}

// store uploads a generated buffer pair into the slot for k, releasing any
// previous mesh of that kind first.
func (s *Store) store(k Kind, vertices []float32, indices []uint32, slices int) error {
	if old := s.slots[k]; old.handle != 0 {
		s.dev.ReleaseMesh(old.handle)
		s.slots[k] = meshSlot{}
	}
	h, err := s.dev.UploadMesh(vertices, indices)
	if err != nil {
		return fmt.Errorf("meshes: load %s: %w", k, err)
	}
	s.slots[k] = meshSlot{
		handle:      h,
		vertexCount: len(vertices) / render.FloatsPerVertex,
		indexCount:  len(indices),
		slices:      slices,
	}
	return nil
}

// drawable returns the slot for k if it holds a usable mesh. A zero handle or
// zero count means the mesh was never generated (or generation failed); that
// is reported once per call and the draw becomes a no-op.
func (s *Store) drawable(k Kind, indexed bool) (meshSlot, bool) {
	m := s.slots[k]
	if m.handle == 0 || m.vertexCount == 0 || (indexed && m.indexCount == 0) {
		if s.log != nil {
			s.log.Logf("meshes: draw %s skipped, mesh not generated", k)
		}
		return meshSlot{}, false
	}
	return m, true
}

// Loaded reports whether the kind currently holds a generated mesh.
func (s *Store) Loaded(k Kind) bool {
	return s.slots[k].handle != 0
}

// VertexCount returns the vertex count of the kind's mesh (0 if not loaded).
func (s *Store) VertexCount(k Kind) int { return s.slots[k].vertexCount }

// IndexCount returns the index count of the kind's mesh (0 if non-indexed or not loaded).
func (s *Store) IndexCount(k Kind) int { return s.slots[k].indexCount }

// Destroy releases every live mesh handle. Safe to call more than once.
func (s *Store) Destroy() {
	for k := Kind(0); k < kindCount; k++ {
		if s.slots[k].handle != 0 {
			s.dev.ReleaseMesh(s.slots[k].handle)
			s.slots[k] = meshSlot{}
		}
	}
}
