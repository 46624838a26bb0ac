package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms holds the values uploaded to the shader program each frame
type Uniforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4

	LightPos     mgl32.Vec3
	ViewPosition mgl32.Vec3

	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
}

// Uniforms computes this frame's shader inputs. All shapes share the model
// matrix and the specular term is evaluated from the camera eye.
func (s *State) Uniforms() Uniforms {
	light := s.Light
	return Uniforms{
		Model:        s.Model,
		View:         s.Camera.View(),
		Projection:   s.Camera.Projection(),
		LightPos:     light.Position,
		ViewPosition: s.Camera.Position,
		Ambient:      light.Ambient,
		Diffuse:      light.Diffuse,
		Specular:     light.Specular,
		Constant:     light.Constant,
		Linear:       light.Linear,
		Quadratic:    light.Quadratic,
	}
}
