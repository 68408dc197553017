package shaders

import "strconv"

// Vertex attribute locations fixed by layout qualifiers in world.vert.
const (
	AttribPosition = 0
	AttribUV       = 1
	AttribNormal   = 2
)

// Uniform names declared by the world program.
const (
	UniformModel          = "u_model"
	UniformNormalMatrix   = "u_normalMatrix"
	UniformView           = "u_view"
	UniformProjection     = "u_projection"
	UniformGlobalRotation = "u_globalRotation"

	UniformSelector = "u_selector"
	UniformColor    = "u_color"

	UniformLightPosition  = "u_lightPos"
	UniformLightColor     = "u_lightColor"
	UniformLightOn        = "u_lightOn"
	UniformCameraPosition = "u_cameraPos"
	UniformSpotOn         = "u_spotOn"
	UniformSpotDirection  = "u_spotDir"
	UniformSpotCutoff     = "u_spotCutoff"
	UniformSpotFeather    = "u_spotFeather"
)

// SamplerUniform returns the sampler name for a texture unit.
func SamplerUniform(unit int) string {
	return "u_sampler" + strconv.Itoa(unit)
}
