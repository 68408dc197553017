// Package render defines the capability set the scene needs from a GPU
// binding, plus the material and uniform value types passed through it.
//
// Nothing in this package talks to a graphics API. The OpenGL binding lives
// in glrender; tests use Recorder.
package render

import (
	"errors"

	"github.com/Faultbox/blockyworld/pkg/math"
)

// ErrBufferCreate is returned (wrapped) when a renderer cannot allocate a
// GPU buffer.
var ErrBufferCreate = errors.New("buffer creation failed")

// BufferHandle identifies a GPU buffer. Zero means no buffer.
type BufferHandle uint32

// DrawKind selects how a draw call walks its vertices.
type DrawKind uint8

const (
	// Triangles draws Count vertices from the attribute buffers.
	Triangles DrawKind = iota
	// IndexedTriangles draws Count indices from the index buffer.
	IndexedTriangles
)

// DrawCall describes one draw covering a whole primitive.
type DrawCall struct {
	Positions BufferHandle
	UVs       BufferHandle
	Normals   BufferHandle
	Indices   BufferHandle
	Count     int
	Kind      DrawKind
}

// LightUniforms is the per-frame light state.
type LightUniforms struct {
	Position       math.Vec3
	Color          math.Vec3
	On             bool
	Spot           bool
	SpotDirection  math.Vec3
	SpotCutoffCos  float32
	SpotFeatherCos float32
}

// FrameUniforms is the state shared by every draw in a frame.
type FrameUniforms struct {
	Projection     math.Mat4
	View           math.Mat4
	GlobalRotation math.Mat4
	CameraPosition math.Vec3
	Light          LightUniforms
}

// Renderer is the GPU capability set the scene draws through.
// All methods are called from the render thread.
type Renderer interface {
	// CompileProgram links a shader program and resolves its bindings.
	CompileProgram(vertexSrc, fragmentSrc string) (Bindings, error)
	// CreateBuffer uploads vertex attribute data.
	CreateBuffer(data []float32) (BufferHandle, error)
	// CreateIndexBuffer uploads triangle indices.
	CreateIndexBuffer(data []uint16) (BufferHandle, error)

	UseMaterial(b Bindings, m Material)
	// SetTransformUniforms sets the model matrix, and the normal matrix
	// when normal is non-nil.
	SetTransformUniforms(b Bindings, model math.Mat4, normal *math.Mat4)
	SetFrameUniforms(b Bindings, f FrameUniforms)
	Draw(b Bindings, dc DrawCall)
}

// Releaser is implemented by renderers that can free buffers.
type Releaser interface {
	ReleaseBuffer(h BufferHandle)
}
