package render

import (
	"fmt"

	"github.com/Faultbox/blockyworld/pkg/math"
)

// Op names a recorded Renderer call.
type Op string

const (
	OpCompile           Op = "compile"
	OpCreateBuffer      Op = "create-buffer"
	OpCreateIndexBuffer Op = "create-index-buffer"
	OpUseMaterial       Op = "use-material"
	OpSetTransform      Op = "set-transform"
	OpSetFrame          Op = "set-frame"
	OpDraw              Op = "draw"
	OpRelease           Op = "release"
)

// Call is one recorded Renderer call. Only the fields relevant to Op are set.
type Call struct {
	Op       Op
	Material Material
	Model    math.Mat4
	Normal   *math.Mat4
	Frame    FrameUniforms
	Draw     DrawCall
	Handle   BufferHandle
	Size     int
}

// Recorder is an in-memory Renderer that records every call. It backs the
// engine tests and the headless export tool.
type Recorder struct {
	Calls []Call

	// FailBuffers makes every buffer creation fail.
	FailBuffers bool
	// BufferLimit, when positive, fails every creation after that many
	// have succeeded.
	BufferLimit int
	// CompileErr is returned from CompileProgram when set.
	CompileErr error

	created int
	next    BufferHandle
	live    map[BufferHandle]bool
}

var (
	_ Renderer = (*Recorder)(nil)
	_ Releaser = (*Recorder)(nil)
)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{live: make(map[BufferHandle]bool)}
}

// CompileProgram returns bindings with distinct positive locations.
func (r *Recorder) CompileProgram(vertexSrc, fragmentSrc string) (Bindings, error) {
	r.Calls = append(r.Calls, Call{Op: OpCompile})
	if r.CompileErr != nil {
		return Bindings{}, r.CompileErr
	}
	if vertexSrc == "" || fragmentSrc == "" {
		return Bindings{}, fmt.Errorf("compile: empty shader source")
	}
	b := Bindings{
		Program:  1,
		Position: 0, UV: 1, Normal: 2,
		Model: 10, NormalMatrix: 11, View: 12, Projection: 13, GlobalRotation: 14,
		Selector: 20, Color: 21,
		LightPosition: 30, LightColor: 31, LightOn: 32, CameraPosition: 33,
		SpotOn: 34, SpotDirection: 35, SpotCutoff: 36, SpotFeather: 37,
	}
	for i := range b.Samplers {
		b.Samplers[i] = int32(40 + i)
	}
	return b, nil
}

func (r *Recorder) allocate(op Op, size int) (BufferHandle, error) {
	if r.FailBuffers || (r.BufferLimit > 0 && r.created >= r.BufferLimit) {
		r.Calls = append(r.Calls, Call{Op: op, Size: size})
		return 0, fmt.Errorf("%s of %d elements: %w", op, size, ErrBufferCreate)
	}
	r.created++
	r.next++
	if r.live == nil {
		r.live = make(map[BufferHandle]bool)
	}
	r.live[r.next] = true
	r.Calls = append(r.Calls, Call{Op: op, Handle: r.next, Size: size})
	return r.next, nil
}

// CreateBuffer records an attribute buffer allocation.
func (r *Recorder) CreateBuffer(data []float32) (BufferHandle, error) {
	return r.allocate(OpCreateBuffer, len(data))
}

// CreateIndexBuffer records an index buffer allocation.
func (r *Recorder) CreateIndexBuffer(data []uint16) (BufferHandle, error) {
	return r.allocate(OpCreateIndexBuffer, len(data))
}

// ReleaseBuffer records a buffer release.
func (r *Recorder) ReleaseBuffer(h BufferHandle) {
	delete(r.live, h)
	r.Calls = append(r.Calls, Call{Op: OpRelease, Handle: h})
}

// UseMaterial records the active material.
func (r *Recorder) UseMaterial(_ Bindings, m Material) {
	r.Calls = append(r.Calls, Call{Op: OpUseMaterial, Material: m})
}

// SetTransformUniforms records the model and normal matrices.
func (r *Recorder) SetTransformUniforms(_ Bindings, model math.Mat4, normal *math.Mat4) {
	c := Call{Op: OpSetTransform, Model: model}
	if normal != nil {
		n := *normal
		c.Normal = &n
	}
	r.Calls = append(r.Calls, c)
}

// SetFrameUniforms records the frame state.
func (r *Recorder) SetFrameUniforms(_ Bindings, f FrameUniforms) {
	r.Calls = append(r.Calls, Call{Op: OpSetFrame, Frame: f})
}

// Draw records a draw call.
func (r *Recorder) Draw(_ Bindings, dc DrawCall) {
	r.Calls = append(r.Calls, Call{Op: OpDraw, Draw: dc})
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of op, in order.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// DrawnModels returns, for every draw, the model matrix last set before it.
func (r *Recorder) DrawnModels() []math.Mat4 {
	var (
		out   []math.Mat4
		model math.Mat4
	)
	for _, c := range r.Calls {
		switch c.Op {
		case OpSetTransform:
			model = c.Model
		case OpDraw:
			out = append(out, model)
		}
	}
	return out
}

// DrawnMaterials returns, for every draw, the material last set before it.
func (r *Recorder) DrawnMaterials() []Material {
	var (
		out []Material
		mat Material
	)
	for _, c := range r.Calls {
		switch c.Op {
		case OpUseMaterial:
			mat = c.Material
		case OpDraw:
			out = append(out, mat)
		}
	}
	return out
}

// LiveBuffers returns the number of allocated, unreleased buffers.
func (r *Recorder) LiveBuffers() int {
	return len(r.live)
}

// ResetCalls clears the call log but keeps allocated buffers.
func (r *Recorder) ResetCalls() {
	r.Calls = r.Calls[:0]
}
