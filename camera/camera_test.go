package camera

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/samuelyuan/go-tabletop/config"
	"github.com/stretchr/testify/assert"
)

func newTestCamera() *Camera {
	return New(config.MustDefault().Camera, 800, 600)
}

func TestNewCameraStartsFromConfig(t *testing.T) {
	c := newTestCamera()
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, c.Position)
	assert.InDelta(t, 1.0, c.Front.Len(), 1e-6)
	assert.True(t, c.Front.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-6))
	assert.InDelta(t, 90.0, c.Yaw, 1e-4)
	assert.InDelta(t, 0.0, c.Pitch, 1e-4)
	assert.Equal(t, Perspective, c.Mode)
	assert.InDelta(t, 800.0/600.0, c.Aspect(), 1e-6)
}

func TestPitchIsAlwaysClamped(t *testing.T) {
	c := newTestCamera()
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		dYaw := (rng.Float32() - 0.5) * 400
		dPitch := (rng.Float32() - 0.5) * 400
		c.Rotate(dYaw, dPitch)
		assert.True(t, c.Pitch >= MinPitch && c.Pitch <= MaxPitch, "pitch %f", c.Pitch)
		assert.InDelta(t, 1.0, c.Front.Len(), 1e-5)
	}
}

func TestRotateExtremePitch(t *testing.T) {
	c := newTestCamera()
	c.Rotate(0, 1e6)
	assert.Equal(t, MaxPitch, c.Pitch)
	c.Rotate(0, -1e6)
	assert.Equal(t, MinPitch, c.Pitch)
	assert.InDelta(t, 1.0, c.Front.Len(), 1e-6)
}

func TestRotateFollowsSphericalCoordinates(t *testing.T) {
	c := newTestCamera()
	c.Rotate(-90, 0) // yaw 0 looks down +X
	assert.True(t, c.Front.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5), "front %v", c.Front)

	c.Rotate(0, 45)
	assert.InDelta(t, 0.70710677, c.Front.Y(), 1e-5)
}

func TestProjectionToggle(t *testing.T) {
	c := newTestCamera()
	perspective := c.Projection()

	assert.Equal(t, Orthographic, c.ToggleProjection())
	ortho := c.Projection()
	assert.Equal(t, mgl32.Ortho(0, 5, 0, 5, 0.1, 100), ortho)
	assert.NotEqual(t, perspective, ortho)

	assert.Equal(t, Perspective, c.ToggleProjection())
	assert.Equal(t, perspective, c.Projection())
}

func TestPerspectiveUsesViewportAspect(t *testing.T) {
	c := newTestCamera()
	assert.Equal(t, mgl32.Perspective(1.0, 800.0/600.0, 0.1, 100), c.Projection())

	c.SetViewport(1000, 500)
	assert.Equal(t, mgl32.Perspective(1.0, 2.0, 0.1, 100), c.Projection())

	// minimized window keeps the last aspect ratio
	c.SetViewport(0, 0)
	assert.InDelta(t, 2.0, c.Aspect(), 1e-6)
}

func TestViewLooksAlongFront(t *testing.T) {
	c := newTestCamera()
	assert.Equal(t, mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up), c.View())

	// the point one unit ahead lands on the negative view axis
	ahead := c.View().Mul4x1(c.Position.Add(c.Front).Vec4(1))
	assert.InDelta(t, -1.0, ahead.Z(), 1e-5)
}

func TestTranslateForwardOneFrame(t *testing.T) {
	c := newTestCamera()
	c.SpeedScalar = 1.0
	c.Position = mgl32.Vec3{}
	c.Front = mgl32.Vec3{0, 0, 1}

	c.Translate(c.Front, 1)
	assert.True(t, c.Position.ApproxEqual(mgl32.Vec3{0, 0, 2.5}), "position %v", c.Position)
}

func TestRightAxis(t *testing.T) {
	c := newTestCamera()
	c.Front = mgl32.Vec3{0, 0, -1}
	assert.True(t, c.Right().ApproxEqual(mgl32.Vec3{1, 0, 0}), "right %v", c.Right())
}

func TestAdjustSpeedFloorsAtMinimum(t *testing.T) {
	c := newTestCamera()
	assert.InDelta(t, 0.11, c.AdjustSpeed(0.01), 1e-6)
	for i := 0; i < 10; i++ {
		c.AdjustSpeed(-0.01)
		assert.True(t, c.SpeedScalar >= 0.01, "scalar %f after %d steps", c.SpeedScalar, i+1)
	}
	assert.InDelta(t, 0.01, c.SpeedScalar, 1e-6)

	c.AdjustSpeed(-5)
	assert.Equal(t, float32(0.01), c.SpeedScalar)
}

func TestProjectionModeString(t *testing.T) {
	assert.Equal(t, "perspective", Perspective.String())
	assert.Equal(t, "orthographic", Orthographic.String())
}
