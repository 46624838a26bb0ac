package input

import (
	"github.com/samuelyuan/go-tabletop/config"
	"github.com/samuelyuan/go-tabletop/scene"
	"go.uber.org/zap"
)

type Action int

const (
	MoveForward Action = iota
	MoveBackward
	StrafeLeft
	StrafeRight
	MoveUp
	MoveDown
	LightLeft
	LightRight
	LightUp
	LightDown
	LightNear
	LightFar
	ToggleProjection
	Quit
)

// KeyState reports whether the key bound to an action is held this frame
type KeyState interface {
	IsActive(a Action) bool
}

type lightBinding struct {
	action Action
	axis   scene.Axis
	sign   float32
}

var lightBindings = []lightBinding{
	{LightLeft, scene.AxisX, -1},
	{LightRight, scene.AxisX, 1},
	{LightUp, scene.AxisY, 1},
	{LightDown, scene.AxisY, -1},
	{LightNear, scene.AxisZ, 1},
	{LightFar, scene.AxisZ, -1},
}

// Controller turns keyboard, mouse and scroll input into camera and light
// changes on a scene.State.
type Controller struct {
	logger      *zap.Logger
	edges       *EdgeDetector
	sensitivity float32
	scrollStep  float32

	firstMouse bool
	lastX      float64
	lastY      float64
}

func NewController(cfg config.Camera, logger *zap.Logger) *Controller {
	return &Controller{
		logger:      logger,
		edges:       NewEdgeDetector(),
		sensitivity: cfg.Sensitivity,
		scrollStep:  cfg.ScrollStep,
		firstMouse:  true,
	}
}

// ProcessKeys applies one frame of held keys
func (c *Controller) ProcessKeys(state *scene.State, keys KeyState) {
	if keys.IsActive(Quit) {
		state.CloseRequested = true
	}

	cam := state.Camera
	if keys.IsActive(MoveForward) {
		cam.Translate(cam.Front, 1)
	}
	if keys.IsActive(MoveBackward) {
		cam.Translate(cam.Front, -1)
	}
	if keys.IsActive(StrafeRight) {
		cam.Translate(cam.Right(), 1)
	}
	if keys.IsActive(StrafeLeft) {
		cam.Translate(cam.Right(), -1)
	}
	if keys.IsActive(MoveDown) {
		cam.Translate(cam.Up, -1)
	}
	if keys.IsActive(MoveUp) {
		cam.Translate(cam.Up, 1)
	}

	for _, binding := range lightBindings {
		if !keys.IsActive(binding.action) {
			continue
		}
		value := state.Light.Nudge(binding.axis, binding.sign)
		c.logger.Info("Light moved",
			zap.Stringer("axis", binding.axis),
			zap.Float32("value", value))
	}

	if c.edges.Rising(ToggleProjection, keys.IsActive(ToggleProjection)) {
		mode := cam.ToggleProjection()
		c.logger.Info("Projection changed", zap.Stringer("mode", mode))
	}
}

// MouseMoved handles a cursor position sample. The first sample after start
// or after ResetMouse only sets the reference point.
func (c *Controller) MouseMoved(state *scene.State, x, y float64) {
	if c.firstMouse {
		c.lastX, c.lastY = x, y
		c.firstMouse = false
		return
	}

	xOffset := float32(x-c.lastX) * c.sensitivity
	// y grows downwards in window coordinates
	yOffset := float32(c.lastY-y) * c.sensitivity
	c.lastX, c.lastY = x, y

	state.Camera.Rotate(xOffset, yOffset)
}

// ResetMouse makes the next cursor sample a new reference point, used when
// the window regains focus.
func (c *Controller) ResetMouse() {
	c.firstMouse = true
}

// Scrolled changes the movement speed scalar
func (c *Controller) Scrolled(state *scene.State, yOffset float64) {
	var delta float32
	switch {
	case yOffset > 0:
		delta = c.scrollStep
	case yOffset < 0:
		delta = -c.scrollStep
	default:
		return
	}
	speed := state.Camera.AdjustSpeed(delta)
	c.logger.Debug("Movement speed changed", zap.Float32("scalar", speed))
}
