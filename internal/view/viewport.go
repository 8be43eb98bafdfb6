package view

import gl "github.com/go-gl/gl/v4.1-core/gl"

func resizeViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
