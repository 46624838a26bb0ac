package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/samuelyuan/go-tabletop/config"
)

const (
	MinPitch = float32(-89)
	MaxPitch = float32(89)
)

type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

func (m ProjectionMode) Toggle() ProjectionMode {
	if m == Perspective {
		return Orthographic
	}
	return Perspective
}

func (m ProjectionMode) String() string {
	if m == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// Camera is a free-flying camera oriented by yaw and pitch in degrees
type Camera struct {
	Position    mgl32.Vec3
	Front       mgl32.Vec3
	Up          mgl32.Vec3
	Yaw         float32
	Pitch       float32
	SpeedScalar float32
	Mode        ProjectionMode

	settings config.Camera
	aspect   float32
}

func New(settings config.Camera, viewportWidth, viewportHeight int) *Camera {
	front := settings.Front.Normalize()
	c := &Camera{
		Position:    settings.Position,
		Front:       front,
		Up:          settings.Up.Normalize(),
		Yaw:         mgl32.RadToDeg(float32(math.Atan2(float64(front.Z()), float64(front.X())))),
		Pitch:       mgl32.Clamp(mgl32.RadToDeg(float32(math.Asin(float64(front.Y())))), MinPitch, MaxPitch),
		SpeedScalar: settings.SpeedScalar,
		Mode:        Perspective,
		settings:    settings,
	}
	c.SetViewport(viewportWidth, viewportHeight)
	return c
}

// SetViewport updates the aspect ratio used by the perspective projection
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		// minimized window
		return
	}
	c.aspect = float32(width) / float32(height)
}

func (c *Camera) Aspect() float32 {
	return c.aspect
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) Projection() mgl32.Mat4 {
	s := c.settings
	if c.Mode == Orthographic {
		return mgl32.Ortho(s.Ortho[0], s.Ortho[1], s.Ortho[2], s.Ortho[3], s.Near, s.Far)
	}
	return mgl32.Perspective(s.Fov, c.aspect, s.Near, s.Far)
}

func (c *Camera) ToggleProjection() ProjectionMode {
	c.Mode = c.Mode.Toggle()
	return c.Mode
}

// Right is the strafe axis
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// Speed is the distance covered by one frame of movement
func (c *Camera) Speed() float32 {
	return c.settings.BaseSpeed * c.SpeedScalar
}

// Translate moves the camera by speed along the given axis
func (c *Camera) Translate(axis mgl32.Vec3, sign float32) {
	c.Position = c.Position.Add(axis.Mul(sign * c.Speed()))
}

// Rotate accumulates yaw and pitch, clamps pitch and rebuilds the front vector
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, MinPitch, MaxPitch)

	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	direction := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.Front = direction.Normalize()
}

// AdjustSpeed changes the movement scalar, never going below the configured minimum
func (c *Camera) AdjustSpeed(delta float32) float32 {
	c.SpeedScalar += delta
	if c.SpeedScalar < c.settings.MinSpeedScalar {
		c.SpeedScalar = c.settings.MinSpeedScalar
	}
	return c.SpeedScalar
}
