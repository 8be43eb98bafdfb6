package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"shape-engine/internal/render"
)

func init() {
	render.Register("gl", func() (render.Device, error) { return &Device{}, nil })
}

// glMesh is the GPU state behind one mesh handle. Attribute layout lives in the
// VAO, so binding the VAO restores the full vertex setup per draw.
type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	hasIndices bool
}

// Device is the OpenGL 4.1 core backend. A current GL context is required by
// Init and by every upload and draw.
type Device struct {
	meshes   map[render.MeshHandle]glMesh
	next     render.MeshHandle
	textures map[render.TextureHandle]uint32
	nextTex  render.TextureHandle
	ready    bool
}

func (d *Device) Name() string { return "gl" }

// Init loads GL function pointers and prepares handle maps. Must run on the
// thread that owns the GL context.
func (d *Device) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("opengl: init: %w", err)
	}
	d.meshes = make(map[render.MeshHandle]glMesh)
	d.textures = make(map[render.TextureHandle]uint32)
	d.next = 1
	d.nextTex = 1
	d.ready = true
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

// Clear wipes the color and depth buffers.
func (d *Device) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Close releases every mesh and texture still uploaded.
func (d *Device) Close() {
	for h := range d.meshes {
		d.ReleaseMesh(h)
	}
	for h := range d.textures {
		d.ReleaseTexture(h)
	}
	d.ready = false
}

// UploadMesh creates a VAO, uploads the interleaved vertex buffer into a VBO,
// uploads the index buffer (if any) into an EBO, and records the attribute
// layout in the VAO: position, normal and texture coordinate at their fixed
// offsets within the 32-byte stride.
func (d *Device) UploadMesh(vertices []float32, indices []uint32) (render.MeshHandle, error) {
	if !d.ready {
		return 0, fmt.Errorf("opengl: device not initialized")
	}
	if len(vertices)%render.FloatsPerVertex != 0 {
		return 0, fmt.Errorf("opengl: vertex buffer length %d is not a multiple of %d", len(vertices), render.FloatsPerVertex)
	}

	var m glMesh
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		m.hasIndices = true
	}

	gl.EnableVertexAttribArray(render.PositionSlot)
	gl.VertexAttribPointerWithOffset(render.PositionSlot, render.PositionComponents, gl.FLOAT, false, render.VertexStrideBytes, render.PositionOffset)
	gl.EnableVertexAttribArray(render.NormalSlot)
	gl.VertexAttribPointerWithOffset(render.NormalSlot, render.NormalComponents, gl.FLOAT, false, render.VertexStrideBytes, render.NormalOffset)
	gl.EnableVertexAttribArray(render.TexCoordSlot)
	gl.VertexAttribPointerWithOffset(render.TexCoordSlot, render.TexCoordComponents, gl.FLOAT, false, render.VertexStrideBytes, render.TexCoordOffset)

	gl.BindVertexArray(0)

	h := d.next
	d.next++
	d.meshes[h] = m
	return h, nil
}

// ReleaseMesh deletes the VAO and buffers behind a handle.
func (d *Device) ReleaseMesh(h render.MeshHandle) {
	m, ok := d.meshes[h]
	if !ok {
		return
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
	delete(d.meshes, h)
}

func glTopology(t render.Topology) uint32 {
	switch t {
	case render.TriangleFan:
		return gl.TRIANGLE_FAN
	case render.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case render.Lines:
		return gl.LINES
	case render.LineStrip:
		return gl.LINE_STRIP
	case render.LineLoop:
		return gl.LINE_LOOP
	default:
		return gl.TRIANGLES
	}
}

// Draw submits a non-indexed range of the mesh's vertex buffer.
func (d *Device) Draw(h render.MeshHandle, topo render.Topology, first, count int) {
	m, ok := d.meshes[h]
	if !ok {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(glTopology(topo), int32(first), int32(count))
	gl.BindVertexArray(0)
}

// DrawIndexed submits count indices starting at the given index offset.
func (d *Device) DrawIndexed(h render.MeshHandle, topo render.Topology, count, offset int) {
	m, ok := d.meshes[h]
	if !ok || !m.hasIndices {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(glTopology(topo), int32(count), gl.UNSIGNED_INT, uintptr(offset*4))
	gl.BindVertexArray(0)
}

// UploadTexture uploads an RGBA image with trilinear filtering and mipmaps.
func (d *Device) UploadTexture(img *image.RGBA) (render.TextureHandle, error) {
	if !d.ready {
		return 0, fmt.Errorf("opengl: device not initialized")
	}
	if img == nil {
		return 0, fmt.Errorf("opengl: nil texture image")
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	h := d.nextTex
	d.nextTex++
	d.textures[h] = tex
	return h, nil
}

// BindTexture binds the texture to the given unit.
func (d *Device) BindTexture(h render.TextureHandle, unit int) {
	tex, ok := d.textures[h]
	if !ok {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

// ReleaseTexture deletes the texture behind a handle.
func (d *Device) ReleaseTexture(h render.TextureHandle) {
	tex, ok := d.textures[h]
	if !ok {
		return
	}
	gl.DeleteTextures(1, &tex)
	delete(d.textures, h)
}
