package render

// Bindings holds a linked program and the locations of everything the
// scene writes to it. It is resolved once after linking and passed by
// value to every draw. A location of -1 means the program does not use it.
type Bindings struct {
	Program uint32

	// Vertex attributes
	Position int32
	UV       int32
	Normal   int32

	// Transform uniforms
	Model          int32
	NormalMatrix   int32
	View           int32
	Projection     int32
	GlobalRotation int32

	// Material uniforms
	Selector int32
	Color    int32
	Samplers [MaxTextureUnits]int32

	// Light uniforms
	LightPosition  int32
	LightColor     int32
	LightOn        int32
	CameraPosition int32
	SpotOn         int32
	SpotDirection  int32
	SpotCutoff     int32
	SpotFeather    int32
}

// Valid reports whether the bindings refer to a linked program.
func (b Bindings) Valid() bool {
	return b.Program != 0
}
