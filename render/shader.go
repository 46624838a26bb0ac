package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
	StageLink
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageLink:
		return "link"
	}
	return "unknown"
}

// ShaderError carries the driver's diagnostic for a failed compile or link
type ShaderError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("shader %s failed: %s", e.Stage, e.Log)
}

type Shader struct {
	ProgramShader uint32
	uniforms      map[string]int32
}

// NewShader compiles both stages and links them into a program. Nothing is
// linked if either stage fails to compile.
func NewShader(vertexSource, fragmentSource string) (*Shader, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER, StageVertex)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER, StageFragment)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	programShader := gl.CreateProgram()
	gl.AttachShader(programShader, vertexShader)
	gl.AttachShader(programShader, fragmentShader)
	gl.LinkProgram(programShader)

	var status int32
	gl.GetProgramiv(programShader, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(programShader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(programShader, logLength, nil, gl.Str(log))
		gl.DeleteProgram(programShader)

		return nil, &ShaderError{Stage: StageLink, Log: strings.TrimRight(log, "\x00")}
	}

	gl.DetachShader(programShader, vertexShader)
	gl.DetachShader(programShader, fragmentShader)

	return &Shader{
		ProgramShader: programShader,
		uniforms:      make(map[string]int32),
	}, nil
}

func compileShader(source string, shaderType uint32, stage ShaderStage) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, &ShaderError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}

	return shader, nil
}

func (sh *Shader) Use() {
	gl.UseProgram(sh.ProgramShader)
}

// Uniform returns the location of a uniform, looking it up only once
func (sh *Shader) Uniform(name string) int32 {
	if loc, ok := sh.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(sh.ProgramShader, gl.Str(name+"\x00"))
	sh.uniforms[name] = loc
	return loc
}

// Release deletes the program. Calling it again is a no-op.
func (sh *Shader) Release() {
	if sh.ProgramShader == 0 {
		return
	}
	gl.DeleteProgram(sh.ProgramShader)
	sh.ProgramShader = 0
}
