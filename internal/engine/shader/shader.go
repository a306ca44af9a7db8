// Package shader compiles the track and car shader program.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations shared with the renderer's vertex arrays.
const (
	AttribPosition     = 0
	AttribNormal       = 1
	AttribColour       = 2
	AttribMaterialInfo = 3
)

// VertexSource transforms flat-shaded vertices and applies the per-face
// depth bias in clip space.
const VertexSource = `
#version 410 core

layout (location = 0) in vec3 vertexPosition;
layout (location = 1) in vec3 vertexNormal;
layout (location = 2) in vec3 vertexColour;
layout (location = 3) in vec3 vertexMaterialInfo;

uniform mat4 worldProjection;
uniform mat3 normalProjection;
uniform vec3 lightPosition;

out vec3 colour;
out vec3 normal;
out vec3 lightDir;
flat out float shininess;
flat out float materialType;

void main() {
	vec4 pos = worldProjection * vec4(vertexPosition, 1.0);
	pos.z += vertexMaterialInfo.x * pos.w;
	gl_Position = pos;

	colour = vertexColour;
	normal = normalize(normalProjection * vertexNormal);
	lightDir = normalize(lightPosition - pos.xyz / pos.w);
	shininess = vertexMaterialInfo.y;
	materialType = vertexMaterialInfo.z;
}
`

// FragmentSource lights each face and cuts holes into grates.
const FragmentSource = `
#version 410 core

in vec3 colour;
in vec3 normal;
in vec3 lightDir;
flat in float shininess;
flat in float materialType;

out vec4 fragColour;

void main() {
	if (materialType < 0.25) {
		discard;
	}
	if (materialType < 0.75 && mod(floor(gl_FragCoord.x) + floor(gl_FragCoord.y), 2.0) < 1.0) {
		discard;
	}

	float diffuse = abs(dot(normal, lightDir));
	float light = 0.55 + 0.45 * diffuse + 0.1 * shininess * pow(diffuse, 8.0);
	fragColour = vec4(colour * light, 1.0);
}
`

// Program is a linked shader program with its uniform locations.
type Program struct {
	ID uint32

	WorldProjection  int32
	NormalProjection int32
	LightPosition    int32
}

// New compiles and links the track program.
func New() (*Program, error) {
	id, err := CompileProgram(VertexSource, FragmentSource)
	if err != nil {
		return nil, err
	}

	p := &Program{ID: id}
	for name, loc := range map[string]*int32{
		"worldProjection":  &p.WorldProjection,
		"normalProjection": &p.NormalProjection,
		"lightPosition":    &p.LightPosition,
	} {
		if *loc, err = Uniform(id, name); err != nil {
			gl.DeleteProgram(id)
			return nil, err
		}
	}
	return p, nil
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
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
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}

// Uniform returns the location of a uniform the program must use.
func Uniform(program uint32, name string) (int32, error) {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		return -1, fmt.Errorf("uniform %q not found in program %d", name, program)
	}
	return loc, nil
}
