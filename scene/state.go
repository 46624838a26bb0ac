package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/samuelyuan/go-tabletop/camera"
	"github.com/samuelyuan/go-tabletop/config"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	return [...]string{"x", "y", "z"}[a]
}

// Light is a point light with fixed colors and attenuation and a position
// that can be moved one axis at a time.
type Light struct {
	Position  mgl32.Vec3
	Step      float32
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
}

func NewLight(cfg config.Light) Light {
	return Light{
		Position:  cfg.Position,
		Step:      cfg.Step,
		Ambient:   cfg.Ambient,
		Diffuse:   cfg.Diffuse,
		Specular:  cfg.Specular,
		Constant:  cfg.Constant,
		Linear:    cfg.Linear,
		Quadratic: cfg.Quadratic,
	}
}

// Nudge moves the light one step along axis and returns the new coordinate
func (l *Light) Nudge(axis Axis, sign float32) float32 {
	l.Position[axis] += sign * l.Step
	return l.Position[axis]
}

// State is everything the input controller mutates and the renderer reads.
// It is owned by the main loop.
type State struct {
	Camera         *camera.Camera
	Light          Light
	Model          mgl32.Mat4
	CloseRequested bool
}

func NewState(cfg *config.Config) *State {
	translate := cfg.Model.Translate
	model := mgl32.Translate3D(translate.X(), translate.Y(), translate.Z()).
		Mul4(mgl32.Scale3D(cfg.Model.Scale, cfg.Model.Scale, cfg.Model.Scale))

	return &State{
		Camera: camera.New(cfg.Camera, cfg.Window.Width, cfg.Window.Height),
		Light:  NewLight(cfg.Light),
		Model:  model,
	}
}
