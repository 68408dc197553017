// Package export writes meshes as binary glTF for inspection in external
// viewers.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/blockyworld/internal/engine/geometry"
	"github.com/Faultbox/blockyworld/internal/engine/rig"
	"github.com/Faultbox/blockyworld/internal/engine/world"
	"github.com/Faultbox/blockyworld/pkg/math"
)

// ErrEmptyMesh is returned for meshes without vertices.
var ErrEmptyMesh = errors.New("mesh has no vertices")

// Mesh is geometry placed in the world. Transform is baked into the
// written vertices.
type Mesh struct {
	Name      string
	Geometry  geometry.Geometry
	Transform math.Mat4
}

// Document builds a glTF document with one mesh and one root node per
// input mesh.
func Document(meshes ...Mesh) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	for _, m := range meshes {
		if err := add(doc, m); err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
	}
	return doc, nil
}

func add(doc *gltf.Document, m Mesh) error {
	g := &m.Geometry
	n := g.VertexCount()
	if n == 0 {
		return ErrEmptyMesh
	}

	normalMat, _ := m.Transform.NormalMatrix()
	positions := make([][3]float32, n)
	for i := range positions {
		p := g.Position(i)
		positions[i] = m.Transform.TransformPoint(math.V3(p[0], p[1], p[2])).Array()
	}

	attrs := map[string]int{
		gltf.POSITION: modeler.WritePosition(doc, positions),
	}
	if len(g.Normals) > 0 {
		normals := make([][3]float32, n)
		for i := range normals {
			v := g.Normal(i)
			normals[i] = normalMat.TransformDirection(math.V3(v[0], v[1], v[2])).Normalize().Array()
		}
		attrs[gltf.NORMAL] = modeler.WriteNormal(doc, normals)
	}
	if len(g.UVs) > 0 {
		uvs := make([][2]float32, n)
		for i := range uvs {
			uvs[i] = g.UV(i)
		}
		attrs[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(doc, uvs)
	}

	prim := &gltf.Primitive{Attributes: attrs}
	if g.Indexed() {
		prim.Indices = gltf.Index(modeler.WriteIndices(doc, g.Indices))
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       m.Name,
		Primitives: []*gltf.Primitive{prim},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: m.Name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	return nil
}

// WriteGLB encodes doc as binary glTF.
func WriteGLB(w io.Writer, doc *gltf.Document) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding glb: %w", err)
	}
	return nil
}

// RigMeshes bakes every posed part of a rig into a world-space mesh.
func RigMeshes(r *rig.Rig, placement math.Mat4, pose rig.Pose, cylinderSides int) []Mesh {
	cube := geometry.Cube()
	cylinder := geometry.Cylinder(cylinderSides)

	parts := r.Compose(placement, pose)
	out := make([]Mesh, 0, len(parts))
	for _, p := range parts {
		g := cube
		if p.Shape == rig.ShapeCylinder {
			g = cylinder
		}
		out = append(out, Mesh{Name: string(p.Joint), Geometry: g, Transform: p.Draw})
	}
	return out
}

// WorldMeshes bakes the map blocks, the static structures and the floor.
func WorldMeshes(g *world.Grid) []Mesh {
	cube := geometry.Cube()
	blocks := g.Blocks()
	pieces := world.Structures()

	out := make([]Mesh, 0, len(blocks)+len(pieces)+1)
	for _, b := range blocks {
		out = append(out, Mesh{
			Name:      fmt.Sprintf("block-%d-%d-%d", b.Col, b.Row, b.Layer),
			Geometry:  cube,
			Transform: b.Transform,
		})
	}
	for _, p := range pieces {
		out = append(out, Mesh{Name: p.Name, Geometry: cube, Transform: p.Transform})
	}
	floor := g.Floor()
	return append(out, Mesh{Name: "floor", Geometry: cube, Transform: floor.Transform})
}
