package shaders

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourcesDeclareVersion(t *testing.T) {
	for name, src := range map[string]string{"vertex": WorldVertexShader, "fragment": WorldFragmentShader} {
		assert.True(t, strings.HasPrefix(src, "#version 410 core"), "%s shader version line", name)
	}
}

func TestUniformNamesDeclared(t *testing.T) {
	src := WorldVertexShader + WorldFragmentShader
	names := []string{
		UniformModel, UniformNormalMatrix, UniformView, UniformProjection, UniformGlobalRotation,
		UniformSelector, UniformColor,
		UniformLightPosition, UniformLightColor, UniformLightOn, UniformCameraPosition,
		UniformSpotOn, UniformSpotDirection, UniformSpotCutoff, UniformSpotFeather,
	}
	for unit := 0; unit < 4; unit++ {
		names = append(names, SamplerUniform(unit))
	}
	for _, n := range names {
		assert.Contains(t, src, " "+n+";", "uniform %s", n)
	}
}

func TestAttributeLocations(t *testing.T) {
	for name, loc := range map[string]int{"a_position": AttribPosition, "a_uv": AttribUV, "a_normal": AttribNormal} {
		assert.Contains(t, WorldVertexShader, fmt.Sprintf("layout(location = %d) in", loc))
		assert.Contains(t, WorldVertexShader, name)
	}
}

func TestSamplerUniform(t *testing.T) {
	assert.Equal(t, "u_sampler0", SamplerUniform(0))
	assert.Equal(t, "u_sampler3", SamplerUniform(3))
}
