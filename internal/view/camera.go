// Package view owns the camera and the per-frame view/projection state,
// including the keyboard and mouse handling that drives them.
package view

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Movement directions, resolved from key state by the caller.
type Movement int

const (
	MoveForward Movement = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

// Camera defaults.
const (
	defaultYaw         = -90.0
	defaultPitch       = 0.0
	defaultSpeed       = 2.5
	defaultSensitivity = 0.1
	defaultZoom        = 45.0

	minSpeed = 0.5
	maxSpeed = 20.0
	maxPitch = 89.0
)

// Camera is a free-look fly camera. Yaw and pitch are in degrees.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
}

// NewCamera builds a camera at position looking down -Z.
func NewCamera(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              defaultYaw,
		Pitch:            defaultPitch,
		MovementSpeed:    defaultSpeed,
		MouseSensitivity: defaultSensitivity,
		Zoom:             defaultZoom,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the look-at matrix for the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessKeyboard moves the camera along its basis vectors.
// deltaTime is the frame time in seconds.
func (c *Camera) ProcessKeyboard(direction Movement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch direction {
	case MoveForward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case MoveBackward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case MoveLeft:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case MoveRight:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case MoveUp:
		c.Position = c.Position.Add(c.Up.Mul(velocity))
	case MoveDown:
		c.Position = c.Position.Sub(c.Up.Mul(velocity))
	}
}

// ProcessMouseMovement applies a cursor delta to yaw and pitch.
// Pitch is clamped so the view cannot flip over the poles.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity

	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.updateVectors()
}

// ProcessMouseScroll adjusts movement speed rather than zoom, so the
// wheel controls how fast the camera flies.
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.MovementSpeed += yOffset
	if c.MovementSpeed < minSpeed {
		c.MovementSpeed = minSpeed
	}
	if c.MovementSpeed > maxSpeed {
		c.MovementSpeed = maxSpeed
	}
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
