package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/samuelyuan/go-tabletop/config"
	"github.com/samuelyuan/go-tabletop/imagefile"
	"github.com/samuelyuan/go-tabletop/mesh"
	"github.com/samuelyuan/go-tabletop/scene"
	"go.uber.org/zap"
)

type Renderer struct {
	Shader   *Shader
	Mesh     *GPUMesh
	Textures []*Texture

	plan   *scene.DrawPlan
	logger *zap.Logger
}

// InitContext loads the GL function pointers for the current context and
// sets the fixed pipeline state.
func InitContext(logger *zap.Logger) error {
	if err := gl.Init(); err != nil {
		return err
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	logger.Info("OpenGL initialized", zap.String("version", version))

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

// NewRenderer builds the shader program and uploads the scene mesh. The
// plan must have been resolved against the same mesh.
func NewRenderer(m *mesh.Mesh, plan *scene.DrawPlan, logger *zap.Logger) (*Renderer, error) {
	shader, err := NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}

	gpuMesh := UploadMesh(m)
	logger.Info("Mesh uploaded", zap.Int32("vertices", m.VertexCount()), zap.Int("shapes", len(m.Shapes())))

	return &Renderer{
		Shader: shader,
		Mesh:   gpuMesh,
		plan:   plan,
		logger: logger,
	}, nil
}

// LoadTextures decodes and uploads every configured texture. A texture that
// fails to load is logged and its slot stays unbound.
func (r *Renderer) LoadTextures(textures []config.Texture) {
	for _, tex := range textures {
		texture := NewTexture(tex.Path, uint32(tex.Unit))
		r.Textures = append(r.Textures, texture)

		img, err := imagefile.Load(tex.Path)
		if err != nil {
			r.logger.Warn("Failed to load texture", zap.String("name", tex.Name), zap.Error(err))
			continue
		}
		width, height := img.Width, img.Height
		if err := texture.Upload(img); err != nil {
			r.logger.Warn("Failed to upload texture", zap.String("name", tex.Name), zap.String("path", tex.Path), zap.Error(err))
			continue
		}
		r.logger.Info("Texture loaded",
			zap.String("name", tex.Name),
			zap.Uint32("unit", texture.Unit),
			zap.Int("width", width),
			zap.Int("height", height))
	}
}

// DrawFrame clears the buffers, uploads this frame's uniforms, binds the
// textures and issues the planned draw calls.
func (r *Renderer) DrawFrame(u scene.Uniforms) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	sh := r.Shader
	sh.Use()

	setMat4(sh.Uniform("model"), u.Model)
	setMat4(sh.Uniform("view"), u.View)
	setMat4(sh.Uniform("projection"), u.Projection)

	setVec3(sh.Uniform("lightPos"), u.LightPos)
	setVec3(sh.Uniform("viewPosition"), u.ViewPosition)
	setVec3(sh.Uniform("light.ambient"), u.Ambient)
	setVec3(sh.Uniform("light.diffuse"), u.Diffuse)
	setVec3(sh.Uniform("light.specular"), u.Specular)
	gl.Uniform1f(sh.Uniform("light.constant"), u.Constant)
	gl.Uniform1f(sh.Uniform("light.linear"), u.Linear)
	gl.Uniform1f(sh.Uniform("light.quadratic"), u.Quadratic)

	for _, texture := range r.Textures {
		texture.Bind()
	}
	// The dust sampler is declared but not sampled, so drivers usually strip
	// it and report no location
	if loc := sh.Uniform("dustTexture"); loc >= 0 {
		gl.Uniform1i(loc, r.plan.DustUnit)
	}

	gl.BindVertexArray(r.Mesh.Vao)
	textureUniform := sh.Uniform("uTexture")
	for _, d := range r.plan.Draws {
		gl.Uniform1i(textureUniform, d.Unit)
		r.Mesh.Draw(d.Range)
	}
	gl.BindVertexArray(0)
}

// Release frees the mesh, the textures and the program, in that order
func (r *Renderer) Release() {
	r.Mesh.Release()
	for _, texture := range r.Textures {
		texture.Release()
	}
	r.Shader.Release()
}

func setMat4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func setVec3(location int32, v mgl32.Vec3) {
	gl.Uniform3f(location, v.X(), v.Y(), v.Z())
}

// Viewport resizes the GL viewport to the framebuffer
func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
