// Package graphics owns the window and main loop. It hands each frame
// to an update callback (input, per-frame uniforms) and a draw
// callback, keeping the loop separate from scene content.
package graphics

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// Window wraps a GLFW window with an OpenGL 4.1 core context.
type Window struct {
	handle *glfw.Window
	width  int
	height int
}

// Options configure window creation.
type Options struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// Open initializes GLFW and creates the window with its context made
// current. Call Close when done.
func Open(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("graphics: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	handle, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("graphics: create window: %w", err)
	}
	handle.MakeContextCurrent()

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return &Window{handle: handle, width: opts.Width, height: opts.Height}, nil
}

// Handle returns the underlying GLFW window for callback installation.
func (w *Window) Handle() *glfw.Window { return w.handle }

// Size returns the window dimensions requested at creation.
func (w *Window) Size() (int, int) { return w.width, w.height }

// Run drives the main loop until the window is closed. Each frame it
// calls update with the frame delta in seconds, then draw, then swaps
// buffers. ESC closes the window.
func (w *Window) Run(update func(dt float32), draw func()) {
	lastFrame := glfw.GetTime()

	for !w.handle.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - lastFrame)
		lastFrame = now

		if w.handle.GetKey(glfw.KeyEscape) == glfw.Press {
			w.handle.SetShouldClose(true)
		}

		update(dt)
		draw()

		w.handle.SwapBuffers()
		glfw.PollEvents()
	}
}

// Close destroys the window and shuts GLFW down.
func (w *Window) Close() {
	w.handle.Destroy()
	glfw.Terminate()
}
