package render

import "image"

// Topology selects how a draw call assembles vertices into primitives.
type Topology int

const (
	Triangles Topology = iota
	TriangleFan
	TriangleStrip
	Lines
	LineStrip
	LineLoop
)

// String returns the topology name for diagnostics.
func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case TriangleFan:
		return "triangle_fan"
	case TriangleStrip:
		return "triangle_strip"
	case Lines:
		return "lines"
	case LineStrip:
		return "line_strip"
	case LineLoop:
		return "line_loop"
	default:
		return "unknown"
	}
}

// MeshHandle identifies an uploaded mesh on a Device. Zero means not uploaded.
type MeshHandle uint32

// TextureHandle identifies an uploaded texture on a Device. Zero means not uploaded.
type TextureHandle uint32

// Device is the graphics backend surface the engine draws through. Implementations
// own vertex/index buffer upload, attribute layout setup, and draw submission.
// The interleaved layout of every uploaded vertex buffer is fixed by the Layout
// constants in this package.
type Device interface {
	// Name reports the backend name used for registry selection.
	Name() string
	// Init prepares the backend. For GPU backends a current context must exist.
	Init() error
	// Close releases everything the backend still holds.
	Close()

	// Clear wipes the color and depth buffers to the given color before a
	// frame is drawn.
	Clear(r, g, b, a float32)

	// UploadMesh uploads an interleaved vertex buffer and an optional index
	// buffer (nil indices for non-indexed meshes) and returns a handle.
	// len(vertices) must be a multiple of FloatsPerVertex.
	UploadMesh(vertices []float32, indices []uint32) (MeshHandle, error)
	// ReleaseMesh frees the buffers behind a handle. Zero handles are ignored.
	ReleaseMesh(h MeshHandle)

	// Draw issues a non-indexed draw of count vertices starting at first.
	Draw(h MeshHandle, topo Topology, first, count int)
	// DrawIndexed issues an indexed draw of count indices starting at the
	// given index offset (in indices, not bytes).
	DrawIndexed(h MeshHandle, topo Topology, count, offset int)

	// UploadTexture uploads an RGBA image and returns a handle.
	UploadTexture(img *image.RGBA) (TextureHandle, error)
	// BindTexture binds a texture to the given texture unit.
	BindTexture(h TextureHandle, unit int)
	// ReleaseTexture frees a texture. Zero handles are ignored.
	ReleaseTexture(h TextureHandle)
}
