package glrender

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/blockyworld/internal/engine/render"
	"github.com/Faultbox/blockyworld/internal/engine/shaders"
)

// compileProgram compiles vertex and fragment shaders and links them.
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	if vertexSrc == "" || fragmentSrc == "" {
		return 0, fmt.Errorf("empty shader source")
	}

	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, max(logLen, 1))
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, max(logLen, 1))
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}
	return shader, nil
}

// uniform returns the location of name, or -1 when the program does not
// use it.
func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// resolveBindings looks up every location the scene writes.
func resolveBindings(program uint32) render.Bindings {
	b := render.Bindings{
		Program:  program,
		Position: shaders.AttribPosition,
		UV:       shaders.AttribUV,
		Normal:   shaders.AttribNormal,

		Model:          uniform(program, shaders.UniformModel),
		NormalMatrix:   uniform(program, shaders.UniformNormalMatrix),
		View:           uniform(program, shaders.UniformView),
		Projection:     uniform(program, shaders.UniformProjection),
		GlobalRotation: uniform(program, shaders.UniformGlobalRotation),

		Selector: uniform(program, shaders.UniformSelector),
		Color:    uniform(program, shaders.UniformColor),

		LightPosition:  uniform(program, shaders.UniformLightPosition),
		LightColor:     uniform(program, shaders.UniformLightColor),
		LightOn:        uniform(program, shaders.UniformLightOn),
		CameraPosition: uniform(program, shaders.UniformCameraPosition),
		SpotOn:         uniform(program, shaders.UniformSpotOn),
		SpotDirection:  uniform(program, shaders.UniformSpotDirection),
		SpotCutoff:     uniform(program, shaders.UniformSpotCutoff),
		SpotFeather:    uniform(program, shaders.UniformSpotFeather),
	}
	for unit := range b.Samplers {
		b.Samplers[unit] = uniform(program, shaders.SamplerUniform(unit))
	}
	return b
}
