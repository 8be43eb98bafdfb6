package view

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCameraLooksDownNegativeZ(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 5})
	if !c.Front.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("front = %v, want -Z", c.Front)
	}
	if !c.Right.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("right = %v, want +X", c.Right)
	}
	if !c.Up.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Errorf("up = %v, want +Y", c.Up)
	}
}

func TestKeyboardMovesAlongBasis(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 0})
	c.MovementSpeed = 2

	c.ProcessKeyboard(MoveForward, 0.5)
	if !c.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("after forward: %v", c.Position)
	}
	c.ProcessKeyboard(MoveRight, 0.5)
	if !c.Position.ApproxEqualThreshold(mgl32.Vec3{1, 0, -1}, 1e-5) {
		t.Errorf("after right: %v", c.Position)
	}
	c.ProcessKeyboard(MoveUp, 0.5)
	if !c.Position.ApproxEqualThreshold(mgl32.Vec3{1, 1, -1}, 1e-5) {
		t.Errorf("after up: %v", c.Position)
	}
}

func TestPitchClamped(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.ProcessMouseMovement(0, 10000)
	if c.Pitch != maxPitch {
		t.Errorf("pitch = %v, want clamp at %v", c.Pitch, maxPitch)
	}
	c.ProcessMouseMovement(0, -100000)
	if c.Pitch != -maxPitch {
		t.Errorf("pitch = %v, want clamp at %v", c.Pitch, -maxPitch)
	}
	// basis must stay orthonormal after clamping
	if d := c.Front.Dot(c.Right); d > 1e-5 || d < -1e-5 {
		t.Errorf("front not orthogonal to right: dot = %v", d)
	}
}

func TestScrollAdjustsSpeedWithinBounds(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.ProcessMouseScroll(100)
	if c.MovementSpeed != maxSpeed {
		t.Errorf("speed = %v after large scroll up, want %v", c.MovementSpeed, maxSpeed)
	}
	c.ProcessMouseScroll(-100)
	if c.MovementSpeed != minSpeed {
		t.Errorf("speed = %v after large scroll down, want %v", c.MovementSpeed, minSpeed)
	}
}

func TestYawTurnsCamera(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.MouseSensitivity = 1
	c.ProcessMouseMovement(90, 0) // yaw -90 -> 0, now facing +X
	if !c.Front.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("front after 90 deg yaw = %v, want +X", c.Front)
	}
}

func TestViewMatrixMovesWorldOppositeCamera(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 5})
	view := c.ViewMatrix()
	origin := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, view)
	if !origin.ApproxEqualThreshold(mgl32.Vec3{0, 0, -5}, 1e-5) {
		t.Errorf("world origin in view space = %v, want {0 0 -5}", origin)
	}
}
