// Package glrender implements render.Renderer on OpenGL 4.1 core.
package glrender

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/blockyworld/internal/engine/render"
	"github.com/Faultbox/blockyworld/internal/engine/texture"
	"github.com/Faultbox/blockyworld/internal/logger"
	"github.com/Faultbox/blockyworld/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width       int
	Height      int
	TextureSize int
	ClearColor  render.Color
}

// Renderer issues the scene's draws through OpenGL. It owns a single
// vertex array object that stays bound for its lifetime; attribute
// pointers are re-pointed per draw.
type Renderer struct {
	config Config
	log    *zap.Logger

	vao      uint32
	textures [render.MaxTextureUnits]uint32
	programs []uint32
	buffers  map[render.BufferHandle]int // bytes, for the debug summary
}

var _ render.Renderer = (*Renderer)(nil)
var _ render.Releaser = (*Renderer)(nil)

// New creates a renderer.
// Must be called after the OpenGL context is current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:  cfg,
		log:     logger.Named("glrender"),
		buffers: make(map[render.BufferHandle]int),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	if c == (render.Color{}) {
		c = render.Color{0, 0, 0, 1}
	}
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	if err := r.createTextures(); err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to create textures: %w", err)
	}
	return r, nil
}

// Close frees every GL object the renderer created.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("live_buffers", len(r.buffers)))
	for h := range r.buffers {
		r.ReleaseBuffer(h)
	}
	for _, p := range r.programs {
		gl.DeleteProgram(p)
	}
	r.programs = nil
	for i := range r.textures {
		if r.textures[i] != 0 {
			gl.DeleteTextures(1, &r.textures[i])
			r.textures[i] = 0
		}
	}
	if r.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame and reports any GL error raised during it.
func (r *Renderer) End() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%04x", code)
	}
	return nil
}

// CompileProgram links the program and binds each sampler to its unit.
func (r *Renderer) CompileProgram(vertexSrc, fragmentSrc string) (render.Bindings, error) {
	program, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return render.Bindings{}, err
	}
	r.programs = append(r.programs, program)

	b := resolveBindings(program)
	gl.UseProgram(program)
	for unit, loc := range b.Samplers {
		if loc >= 0 {
			gl.Uniform1i(loc, int32(unit))
		}
	}
	r.log.Debug("shader program created", zap.Uint32("program", program))
	return b, nil
}

// CreateBuffer uploads vertex attribute data.
func (r *Renderer) CreateBuffer(data []float32) (render.BufferHandle, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("empty vertex data: %w", render.ErrBufferCreate)
	}
	return r.upload(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]))
}

// CreateIndexBuffer uploads triangle indices.
func (r *Renderer) CreateIndexBuffer(data []uint16) (render.BufferHandle, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("empty index data: %w", render.ErrBufferCreate)
	}
	return r.upload(gl.ELEMENT_ARRAY_BUFFER, len(data)*2, unsafe.Pointer(&data[0]))
}

func (r *Renderer) upload(target uint32, size int, ptr unsafe.Pointer) (render.BufferHandle, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return 0, fmt.Errorf("glGenBuffers returned 0: %w", render.ErrBufferCreate)
	}
	gl.BindBuffer(target, id)
	gl.BufferData(target, size, ptr, gl.STATIC_DRAW)
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteBuffers(1, &id)
		return 0, fmt.Errorf("glBufferData error 0x%04x: %w", code, render.ErrBufferCreate)
	}
	h := render.BufferHandle(id)
	r.buffers[h] = size
	return h, nil
}

// ReleaseBuffer deletes a buffer created by this renderer.
func (r *Renderer) ReleaseBuffer(h render.BufferHandle) {
	if _, ok := r.buffers[h]; !ok {
		return
	}
	id := uint32(h)
	gl.DeleteBuffers(1, &id)
	delete(r.buffers, h)
}

// UseMaterial selects the program and writes the material uniforms.
func (r *Renderer) UseMaterial(b render.Bindings, m render.Material) {
	gl.UseProgram(b.Program)
	gl.Uniform1i(b.Selector, m.Selector())
	if m.Kind == render.KindSolidColor {
		gl.Uniform4f(b.Color, m.Color[0], m.Color[1], m.Color[2], m.Color[3])
	}
}

// SetTransformUniforms writes the model and normal matrices.
func (r *Renderer) SetTransformUniforms(b render.Bindings, model math.Mat4, normal *math.Mat4) {
	gl.UniformMatrix4fv(b.Model, 1, false, model.Ptr())
	if normal != nil {
		gl.UniformMatrix4fv(b.NormalMatrix, 1, false, normal.Ptr())
	}
}

// SetFrameUniforms writes the camera, turntable and light state.
func (r *Renderer) SetFrameUniforms(b render.Bindings, f render.FrameUniforms) {
	gl.UseProgram(b.Program)
	gl.UniformMatrix4fv(b.Projection, 1, false, f.Projection.Ptr())
	gl.UniformMatrix4fv(b.View, 1, false, f.View.Ptr())
	gl.UniformMatrix4fv(b.GlobalRotation, 1, false, f.GlobalRotation.Ptr())
	setVec3(b.CameraPosition, f.CameraPosition)

	l := f.Light
	setVec3(b.LightPosition, l.Position)
	setVec3(b.LightColor, l.Color)
	gl.Uniform1i(b.LightOn, boolUniform(l.On))
	gl.Uniform1i(b.SpotOn, boolUniform(l.Spot))
	setVec3(b.SpotDirection, l.SpotDirection)
	gl.Uniform1f(b.SpotCutoff, l.SpotCutoffCos)
	gl.Uniform1f(b.SpotFeather, l.SpotFeatherCos)
}

// Draw points the attributes at the call's buffers and draws.
func (r *Renderer) Draw(b render.Bindings, dc render.DrawCall) {
	if dc.Count <= 0 {
		return
	}
	bindAttrib(b.Position, dc.Positions, 3)
	bindAttrib(b.UV, dc.UVs, 2)
	bindAttrib(b.Normal, dc.Normals, 3)

	switch dc.Kind {
	case render.IndexedTriangles:
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(dc.Indices))
		gl.DrawElements(gl.TRIANGLES, int32(dc.Count), gl.UNSIGNED_SHORT, nil)
	default:
		gl.DrawArrays(gl.TRIANGLES, 0, int32(dc.Count))
	}
}

// bindAttrib enables a tightly packed float attribute, or disables it and
// leaves the generic value of zero when the primitive has no such buffer.
func bindAttrib(loc int32, h render.BufferHandle, size int32) {
	if loc < 0 {
		return
	}
	if h == 0 {
		gl.DisableVertexAttribArray(uint32(loc))
		gl.VertexAttrib4f(uint32(loc), 0, 0, 0, 1)
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(h))
	gl.VertexAttribPointer(uint32(loc), size, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(uint32(loc))
}

func setVec3(loc int32, v math.Vec3) {
	gl.Uniform3f(loc, v.X, v.Y, v.Z)
}

func boolUniform(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// createTextures generates and uploads one image per texture unit.
func (r *Renderer) createTextures() error {
	for unit := range r.textures {
		img, err := texture.ForUnit(unit, r.config.TextureSize)
		if err != nil {
			return err
		}

		var id uint32
		gl.GenTextures(1, &id)
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, id)

		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
			int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
			0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

		r.textures[unit] = id
	}
	gl.ActiveTexture(gl.TEXTURE0)
	r.log.Debug("textures created", zap.Int("units", len(r.textures)))
	return nil
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	if width <= 0 || height <= 0 {
		return nil, 0, 0
	}
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}
