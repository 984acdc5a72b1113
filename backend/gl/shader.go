// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// The pass-through shader pair. Position and color arrive in attribute
// locations 0 and 1; the single uniform is the combined transform.
// #version 330 core compiles unchanged on a 4.1 core context.
const (
	vertexShaderSource = `#version 330 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 vertexColor;
out vec3 fragmentColor;
uniform mat4 modelViewProjection;
void main()
{
    gl_Position = modelViewProjection * vec4(position, 1);
    fragmentColor = vertexColor;
}
`

	fragmentShaderSource = `#version 330 core
in vec3 fragmentColor;
out vec3 color;
void main()
{
    color = fragmentColor;
}
`
)

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return "unknown"
	}
}

func compileShader(source string, stage uint32) (uint32, error) {
	shader := gl.CreateShader(stage)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, &ShaderError{Stage: stageName(stage), Log: string(log[:logLength])}
	}
	return shader, nil
}

func linkProgram(vertex, fragment uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, &LinkError{Log: string(log[:logLength])}
	}
	return program, nil
}

// buildProgram compiles and links the shader pair and resolves the
// transform uniform. The shaders are no longer needed once linked.
func buildProgram() (program uint32, mvpLoc int32, err error) {
	vertex, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, 0, err
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, 0, err
	}
	defer gl.DeleteShader(fragment)

	program, err = linkProgram(vertex, fragment)
	if err != nil {
		return 0, 0, err
	}
	mvpLoc = gl.GetUniformLocation(program, gl.Str("modelViewProjection\x00"))
	return program, mvpLoc, nil
}
