package render

import (
	"fmt"
	"image"
)

func init() {
	Register("null", func() (Device, error) { return NewNullDevice(), nil })
}

// DrawCall records one draw submitted to the null device.
type DrawCall struct {
	Mesh    MeshHandle
	Topo    Topology
	Indexed bool
	First   int // vertex offset for Draw, index offset for DrawIndexed
	Count   int
}

// nullMesh keeps the uploaded data so tests can inspect it.
type nullMesh struct {
	vertices []float32
	indices  []uint32
}

// NullDevice is a recording backend: uploads are kept in memory and draws are
// appended to a list. It needs no window or GPU, which makes the mesh core
// testable headless. It also serves as the fallback when no GPU backend is built.
type NullDevice struct {
	meshes   map[MeshHandle]nullMesh
	textures map[TextureHandle]*image.RGBA
	nextMesh MeshHandle
	nextTex  TextureHandle

	// Calls is every draw submitted since construction or the last Reset.
	Calls []DrawCall
}

// NewNullDevice returns an empty recording device.
func NewNullDevice() *NullDevice {
	return &NullDevice{
		meshes:   make(map[MeshHandle]nullMesh),
		textures: make(map[TextureHandle]*image.RGBA),
		nextMesh: 1,
		nextTex:  1,
	}
}

func (d *NullDevice) Name() string { return "null" }
func (d *NullDevice) Init() error  { return nil }
func (d *NullDevice) Close()       {}

func (d *NullDevice) Clear(r, g, b, a float32) {}

func (d *NullDevice) UploadMesh(vertices []float32, indices []uint32) (MeshHandle, error) {
	if len(vertices)%FloatsPerVertex != 0 {
		return 0, fmt.Errorf("render: vertex buffer length %d is not a multiple of %d", len(vertices), FloatsPerVertex)
	}
	v := make([]float32, len(vertices))
	copy(v, vertices)
	var ix []uint32
	if indices != nil {
		ix = make([]uint32, len(indices))
		copy(ix, indices)
	}
	h := d.nextMesh
	d.nextMesh++
	d.meshes[h] = nullMesh{vertices: v, indices: ix}
	return h, nil
}

func (d *NullDevice) ReleaseMesh(h MeshHandle) {
	delete(d.meshes, h)
}

func (d *NullDevice) Draw(h MeshHandle, topo Topology, first, count int) {
	d.Calls = append(d.Calls, DrawCall{Mesh: h, Topo: topo, First: first, Count: count})
}

func (d *NullDevice) DrawIndexed(h MeshHandle, topo Topology, count, offset int) {
	d.Calls = append(d.Calls, DrawCall{Mesh: h, Topo: topo, Indexed: true, First: offset, Count: count})
}

func (d *NullDevice) UploadTexture(img *image.RGBA) (TextureHandle, error) {
	if img == nil {
		return 0, fmt.Errorf("render: nil texture image")
	}
	h := d.nextTex
	d.nextTex++
	d.textures[h] = img
	return h, nil
}

func (d *NullDevice) BindTexture(h TextureHandle, unit int) {}

func (d *NullDevice) ReleaseTexture(h TextureHandle) {
	delete(d.textures, h)
}

// MeshVertices returns the vertex buffer uploaded under h, or nil.
func (d *NullDevice) MeshVertices(h MeshHandle) []float32 {
	return d.meshes[h].vertices
}

// MeshIndices returns the index buffer uploaded under h, or nil.
func (d *NullDevice) MeshIndices(h MeshHandle) []uint32 {
	return d.meshes[h].indices
}

// LiveMeshes returns how many meshes are currently uploaded.
func (d *NullDevice) LiveMeshes() int { return len(d.meshes) }

// Reset clears the recorded draw calls.
func (d *NullDevice) Reset() { d.Calls = nil }
