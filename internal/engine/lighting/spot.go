package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/blockyworld/pkg/math"
)

// SpotCone converts outer and inner cone half-angles in degrees to the
// cosines the shader compares against.
func SpotCone(cutoffDeg, featherDeg float32) (cutoffCos, featherCos float32) {
	if featherDeg > cutoffDeg {
		featherDeg = cutoffDeg
	}
	return cosDeg(cutoffDeg), cosDeg(featherDeg)
}

// SpotIntensity mirrors the fragment shader: full inside the inner cone,
// a smoothstep falloff to zero at the outer cone.
func SpotIntensity(dir, toFragment math.Vec3, cutoffCos, featherCos float32) float32 {
	d, ok := dir.NormalizeOK()
	if !ok {
		return 0
	}
	f, ok := toFragment.NormalizeOK()
	if !ok {
		return 0
	}
	cos := d.Dot(f)
	if cos <= cutoffCos {
		return 0
	}
	if featherCos <= cutoffCos {
		return 1
	}
	x := math.Clamp((cos-cutoffCos)/(featherCos-cutoffCos), 0, 1)
	return x * x * (3 - 2*x)
}

func cosDeg(deg float32) float32 {
	return math32.Cos(math.DegToRad(deg))
}
