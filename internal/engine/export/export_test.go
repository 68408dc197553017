package export

import (
	"bytes"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/blockyworld/internal/engine/geometry"
	"github.com/Faultbox/blockyworld/internal/engine/rig"
	"github.com/Faultbox/blockyworld/internal/engine/world"
	"github.com/Faultbox/blockyworld/pkg/math"
)

func TestDocumentAccessors(t *testing.T) {
	doc, err := Document(
		Mesh{Name: "cube", Geometry: geometry.Cube(), Transform: math.Identity()},
		Mesh{Name: "ball", Geometry: geometry.Sphere(4, 6), Transform: math.Translate(1, 0, 0)},
	)
	require.NoError(t, err)

	require.Len(t, doc.Meshes, 2)
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, []int{0, 1}, doc.Scenes[0].Nodes)

	cube := doc.Meshes[0].Primitives[0]
	assert.Nil(t, cube.Indices)
	assert.Len(t, cube.Attributes, 3)
	assert.Equal(t, 36, doc.Accessors[cube.Attributes[gltf.POSITION]].Count)

	ball := doc.Meshes[1].Primitives[0]
	require.NotNil(t, ball.Indices)
	assert.Equal(t, geometry.SphereIndexCount(4, 6), doc.Accessors[*ball.Indices].Count)
	assert.Equal(t, geometry.SphereVertexCount(4, 6), doc.Accessors[ball.Attributes[gltf.NORMAL]].Count)
	assert.Equal(t, "ball", doc.Nodes[1].Name)
}

func TestDocumentRejectsEmptyMesh(t *testing.T) {
	_, err := Document(Mesh{Name: "nothing", Transform: math.Identity()})
	assert.ErrorIs(t, err, ErrEmptyMesh)
}

func TestRigMeshes(t *testing.T) {
	meshes := RigMeshes(rig.NewQuadruped(), math.Identity(), nil, 8)
	require.Len(t, meshes, rig.QuadrupedJointCount)

	cylinders := 0
	for _, m := range meshes {
		if m.Geometry.VertexCount() == geometry.CylinderVertexCount(8) {
			cylinders++
			assert.Equal(t, string(rig.Tail), m.Name)
		}
	}
	assert.Equal(t, 1, cylinders)

	body := meshes[0]
	assert.Equal(t, string(rig.Body), body.Name)
	assert.True(t, body.Transform.Translation().ApproxEqual(math.V3(-0.25, -0.1, 0), 1e-6))
}

func TestWriteGLBRoundTrip(t *testing.T) {
	doc, err := Document(RigMeshes(rig.NewQuadruped(), math.Identity(), rig.Pose{rig.Head: 15}, 8)...)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGLB(&buf, doc))
	assert.Equal(t, "glTF", buf.String()[:4])

	var decoded gltf.Document
	require.NoError(t, gltf.NewDecoder(&buf).Decode(&decoded))
	assert.Len(t, decoded.Meshes, rig.QuadrupedJointCount)
	assert.Len(t, decoded.Scenes[0].Nodes, rig.QuadrupedJointCount)
}

func TestWorldMeshes(t *testing.T) {
	g, err := world.NewGrid(2, 1)
	require.NoError(t, err)

	meshes := WorldMeshes(g)
	require.Len(t, meshes, world.StructureCount+1, "empty grid has no blocks")
	assert.Equal(t, "floor", meshes[len(meshes)-1].Name)

	doc, err := Document(meshes...)
	require.NoError(t, err)
	assert.Len(t, doc.Meshes, len(meshes))
}
