// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// WorldVertexShader transforms every mesh in the scene.
//
//go:embed world.vert
var WorldVertexShader string

// WorldFragmentShader resolves the material selector and applies the
// point or spot light.
//
//go:embed world.frag
var WorldFragmentShader string
