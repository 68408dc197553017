// Package primitive owns procedural meshes and their GPU buffers.
package primitive

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/blockyworld/internal/engine/geometry"
	"github.com/Faultbox/blockyworld/internal/engine/render"
	"github.com/Faultbox/blockyworld/internal/logger"
	"github.com/Faultbox/blockyworld/pkg/math"
)

var (
	// ErrNotUploaded is returned by Draw when the primitive has no GPU
	// buffers and a fallback upload failed too.
	ErrNotUploaded = errors.New("primitive not uploaded")
	// ErrNoProgram is returned by Draw when the bindings do not refer to a
	// linked program.
	ErrNoProgram = errors.New("no shader program bound")
)

// Kind identifies the generator a primitive was built from.
type Kind uint8

const (
	KindCube Kind = iota
	KindCylinder
	KindSphere
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindCylinder:
		return "cylinder"
	case KindSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Primitive is a mesh plus its GPU buffers. Buffers are created at most
// once per instance.
type Primitive struct {
	name string
	kind Kind
	geom geometry.Geometry

	positions render.BufferHandle
	uvs       render.BufferHandle
	normals   render.BufferHandle
	indices   render.BufferHandle
	uploaded  bool

	log *zap.Logger
}

// New wraps an already generated geometry.
func New(name string, kind Kind, geom geometry.Geometry) *Primitive {
	return &Primitive{
		name: name,
		kind: kind,
		geom: geom,
		log:  logger.Sampled("primitive").With(zap.String("primitive", name)),
	}
}

// NewCube returns a unit cube primitive.
func NewCube(name string) *Primitive {
	return New(name, KindCube, geometry.Cube())
}

// NewCylinder returns a cylinder primitive with the given side count.
func NewCylinder(name string, sides int) *Primitive {
	return New(name, KindCylinder, geometry.Cylinder(sides))
}

// NewSphere returns a sphere primitive with the given band counts.
func NewSphere(name string, latBands, lonBands int) *Primitive {
	return New(name, KindSphere, geometry.Sphere(latBands, lonBands))
}

// Name returns the primitive's name.
func (p *Primitive) Name() string { return p.name }

// Kind returns the generator kind.
func (p *Primitive) Kind() Kind { return p.kind }

// Geometry returns the mesh data.
func (p *Primitive) Geometry() *geometry.Geometry { return &p.geom }

// Uploaded reports whether GPU buffers exist.
func (p *Primitive) Uploaded() bool { return p.uploaded }

// EnsureUploaded creates the GPU buffers on first call; later calls are
// no-ops. On failure any buffers already created are released (when the
// renderer supports it) and the primitive stays un-uploaded, so a later
// call retries.
func (p *Primitive) EnsureUploaded(r render.Renderer) error {
	if p.uploaded {
		return nil
	}

	var created []render.BufferHandle
	fail := func(what string, err error) error {
		if rel, ok := r.(render.Releaser); ok {
			for _, h := range created {
				rel.ReleaseBuffer(h)
			}
		}
		p.positions, p.uvs, p.normals, p.indices = 0, 0, 0, 0
		return fmt.Errorf("uploading %s %s: %w", p.name, what, err)
	}

	upload := func(what string, data []float32) (render.BufferHandle, error) {
		if len(data) == 0 {
			return 0, nil
		}
		h, err := r.CreateBuffer(data)
		if err != nil {
			return 0, fail(what, err)
		}
		created = append(created, h)
		return h, nil
	}

	var err error
	if p.positions, err = upload("positions", p.geom.Positions); err != nil {
		return err
	}
	if p.uvs, err = upload("uvs", p.geom.UVs); err != nil {
		return err
	}
	if p.normals, err = upload("normals", p.geom.Normals); err != nil {
		return err
	}
	if p.geom.Indexed() {
		h, err := r.CreateIndexBuffer(p.geom.Indices)
		if err != nil {
			return fail("indices", err)
		}
		p.indices = h
	}

	p.uploaded = true
	logger.Debug("primitive uploaded",
		zap.String("primitive", p.name),
		zap.Stringer("kind", p.kind),
		zap.Int("vertices", p.geom.VertexCount()),
		zap.Int("indices", p.geom.IndexCount()),
	)
	return nil
}

// Draw sets the material and transform uniforms and issues one draw
// covering the whole mesh. A primitive that was never uploaded gets one
// upload attempt first. Unresolvable materials draw magenta.
func (p *Primitive) Draw(r render.Renderer, b render.Bindings, world math.Mat4, mat render.Material) error {
	if !b.Valid() {
		return fmt.Errorf("draw %s: %w", p.name, ErrNoProgram)
	}
	if !p.uploaded {
		p.log.Warn("drawing before upload, uploading now")
		if err := p.EnsureUploaded(r); err != nil {
			return fmt.Errorf("draw %s: %w: %w", p.name, ErrNotUploaded, err)
		}
	}

	resolved, ok := render.Resolve(mat)
	if !ok {
		p.log.Warn("unresolvable material, using fallback",
			zap.Stringer("kind", mat.Kind),
			zap.Int("unit", mat.Unit),
		)
	}
	r.UseMaterial(b, resolved)

	var normal *math.Mat4
	if len(p.geom.Normals) > 0 {
		nm, ok := world.NormalMatrix()
		if !ok {
			p.log.Warn("singular model matrix, normals left untransformed")
		}
		normal = &nm
	}
	r.SetTransformUniforms(b, world, normal)

	kind := render.Triangles
	if p.geom.Indexed() {
		kind = render.IndexedTriangles
	}
	r.Draw(b, render.DrawCall{
		Positions: p.positions,
		UVs:       p.uvs,
		Normals:   p.normals,
		Indices:   p.indices,
		Count:     p.geom.DrawCount(),
		Kind:      kind,
	})
	return nil
}

// Release frees the GPU buffers when the renderer supports it and marks
// the primitive un-uploaded.
func (p *Primitive) Release(r render.Renderer) {
	if !p.uploaded {
		return
	}
	if rel, ok := r.(render.Releaser); ok {
		for _, h := range []render.BufferHandle{p.positions, p.uvs, p.normals, p.indices} {
			if h != 0 {
				rel.ReleaseBuffer(h)
			}
		}
	}
	p.positions, p.uvs, p.normals, p.indices = 0, 0, 0, 0
	p.uploaded = false
}
