package render

// MaxTextureUnits is the number of sampler slots the shader declares.
const MaxTextureUnits = 4

// Fixed texture unit assignments.
const (
	UnitSky   = 0
	UnitBrick = 1
	UnitStone = 2
	UnitWater = 3
)

// Color is linear RGBA.
type Color [4]float32

// Magenta marks anything the renderer cannot resolve.
var Magenta = Color{1, 0, 1, 1}

// MaterialKind tags a Material.
type MaterialKind uint8

const (
	KindSolidColor MaterialKind = iota
	KindTexture
	KindDebugNormal
	KindDebugUV
)

// String returns the kind name.
func (k MaterialKind) String() string {
	switch k {
	case KindSolidColor:
		return "solid"
	case KindTexture:
		return "texture"
	case KindDebugNormal:
		return "debug-normal"
	case KindDebugUV:
		return "debug-uv"
	default:
		return "unknown"
	}
}

// Material is a tagged union: Color is meaningful for KindSolidColor,
// Unit for KindTexture.
type Material struct {
	Kind  MaterialKind
	Color Color
	Unit  int
}

// SolidColor returns a flat-colored material.
func SolidColor(c Color) Material {
	return Material{Kind: KindSolidColor, Color: c}
}

// Texture returns a material sampling the given texture unit.
func Texture(unit int) Material {
	return Material{Kind: KindTexture, Unit: unit}
}

// DebugNormal returns the normal-as-color debug material.
func DebugNormal() Material {
	return Material{Kind: KindDebugNormal}
}

// DebugUV returns the UV-as-color debug material.
func DebugUV() Material {
	return Material{Kind: KindDebugUV}
}

// Fallback is what unresolvable materials render as.
func Fallback() Material {
	return SolidColor(Magenta)
}

// Resolve returns m, or the magenta fallback when m names an unknown kind
// or a texture unit outside [0, MaxTextureUnits). ok is false when the
// fallback was substituted.
func Resolve(m Material) (resolved Material, ok bool) {
	switch m.Kind {
	case KindSolidColor, KindDebugNormal, KindDebugUV:
		return m, true
	case KindTexture:
		if m.Unit >= 0 && m.Unit < MaxTextureUnits {
			return m, true
		}
	}
	return Fallback(), false
}

// Shader selector values written to the selector uniform.
const (
	SelectorDebugNormal int32 = -3
	SelectorSolidColor  int32 = -2
	SelectorDebugUV     int32 = -1
)

// Selector returns the integer the fragment shader switches on. Texture
// materials select their unit.
func (m Material) Selector() int32 {
	switch m.Kind {
	case KindTexture:
		return int32(m.Unit)
	case KindDebugNormal:
		return SelectorDebugNormal
	case KindDebugUV:
		return SelectorDebugUV
	default:
		return SelectorSolidColor
	}
}
