package view

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"shape-engine/internal/shader"
)

// orthographic projection half-height in world units
const orthoExtent = 6.0

// Manager wires GLFW input into the camera and uploads the view and
// projection matrices each frame. The P and O keys switch between
// perspective and orthographic projection.
type Manager struct {
	window *glfw.Window
	camera *Camera

	width  int
	height int

	lastX      float32
	lastY      float32
	firstMouse bool

	orthographic bool
}

// NewManager installs the cursor, scroll, and framebuffer callbacks on
// window and captures the cursor for mouse look.
func NewManager(window *glfw.Window, camera *Camera, width, height int) *Manager {
	m := &Manager{
		window:     window,
		camera:     camera,
		width:      width,
		height:     height,
		lastX:      float32(width) / 2,
		lastY:      float32(height) / 2,
		firstMouse: true,
	}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetCursorPosCallback(m.onCursor)
	window.SetScrollCallback(m.onScroll)
	window.SetFramebufferSizeCallback(m.onResize)
	return m
}

// Camera returns the managed camera.
func (m *Manager) Camera() *Camera { return m.camera }

// SetOrthographic switches the projection mode directly, used when a
// saved preference should apply before the first frame.
func (m *Manager) SetOrthographic(on bool) { m.orthographic = on }

// Orthographic reports the current projection mode.
func (m *Manager) Orthographic() bool { return m.orthographic }

// ProcessInput polls movement and projection keys. Call once per frame
// before Apply.
func (m *Manager) ProcessInput(deltaTime float32) {
	w := m.window
	if w.GetKey(glfw.KeyW) == glfw.Press {
		m.camera.ProcessKeyboard(MoveForward, deltaTime)
	}
	if w.GetKey(glfw.KeyS) == glfw.Press {
		m.camera.ProcessKeyboard(MoveBackward, deltaTime)
	}
	if w.GetKey(glfw.KeyA) == glfw.Press {
		m.camera.ProcessKeyboard(MoveLeft, deltaTime)
	}
	if w.GetKey(glfw.KeyD) == glfw.Press {
		m.camera.ProcessKeyboard(MoveRight, deltaTime)
	}
	if w.GetKey(glfw.KeyQ) == glfw.Press {
		m.camera.ProcessKeyboard(MoveUp, deltaTime)
	}
	if w.GetKey(glfw.KeyE) == glfw.Press {
		m.camera.ProcessKeyboard(MoveDown, deltaTime)
	}
	if w.GetKey(glfw.KeyP) == glfw.Press {
		m.orthographic = false
	}
	if w.GetKey(glfw.KeyO) == glfw.Press {
		m.orthographic = true
	}
}

// Apply uploads view, projection, and the camera position to the
// program.
func (m *Manager) Apply(prog shader.Binder) {
	prog.SetMat4("view", m.camera.ViewMatrix())
	prog.SetMat4("projection", m.Projection())
	prog.SetVec3("viewPosition", m.camera.Position)
}

// Projection returns the active projection matrix for the current
// window aspect ratio.
func (m *Manager) Projection() mgl32.Mat4 {
	aspect := float32(m.width) / float32(m.height)
	if m.orthographic {
		return mgl32.Ortho(-orthoExtent*aspect, orthoExtent*aspect,
			-orthoExtent, orthoExtent, 0.1, 100)
	}
	return mgl32.Perspective(mgl32.DegToRad(m.camera.Zoom), aspect, 0.1, 100)
}

func (m *Manager) onCursor(_ *glfw.Window, xpos, ypos float64) {
	x, y := float32(xpos), float32(ypos)
	if m.firstMouse {
		m.lastX, m.lastY = x, y
		m.firstMouse = false
	}
	// y grows downward in window coordinates
	m.camera.ProcessMouseMovement(x-m.lastX, m.lastY-y)
	m.lastX, m.lastY = x, y
}

func (m *Manager) onScroll(_ *glfw.Window, _, yoff float64) {
	m.camera.ProcessMouseScroll(float32(yoff))
}

func (m *Manager) onResize(_ *glfw.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width, m.height = width, height
	resizeViewport(width, height)
}
