package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// assertOutwardWinding checks every non-degenerate triangle is counter-
// clockwise seen from the side its vertex normals point to.
func assertOutwardWinding(t *testing.T, g Geometry) {
	t.Helper()
	for i := 0; i < g.TriangleCount(); i++ {
		a, b, c := g.Triangle(i)
		pa, pb, pc := g.Position(a), g.Position(b), g.Position(c)
		face := cross(sub(pb, pa), sub(pc, pa))
		if dot(face, face) < 1e-12 {
			continue // collapsed at a sphere pole
		}
		n := g.Normal(a)
		n2, n3 := g.Normal(b), g.Normal(c)
		avg := [3]float32{n[0] + n2[0] + n3[0], n[1] + n2[1] + n3[1], n[2] + n2[2] + n3[2]}
		if !assert.Greater(t, dot(face, avg), float32(0), "triangle %d winds against its normals", i) {
			return
		}
	}
}

func TestCube(t *testing.T) {
	g := Cube()

	assert.Equal(t, CubeVertexCount, g.VertexCount())
	assert.Len(t, g.UVs, CubeVertexCount*2)
	assert.Len(t, g.Normals, CubeVertexCount*3)
	assert.False(t, g.Indexed())
	assert.Equal(t, 36, g.DrawCount())

	b := g.Bounds()
	assert.Equal(t, [3]float32{-0.5, -0.5, -0.5}, b.Min)
	assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, b.Max)

	// First front-face vertex and its texture corner.
	assert.Equal(t, [3]float32{-0.5, -0.5, 0.5}, g.Position(0))
	assert.Equal(t, [2]float32{0, 0}, g.UV(0))
	assert.Equal(t, [2]float32{1, 1}, g.UV(2))

	// Normals are constant per face.
	for face := 0; face < 6; face++ {
		want := g.Normal(face * 6)
		for v := 1; v < 6; v++ {
			assert.Equal(t, want, g.Normal(face*6+v), "face %d vertex %d", face, v)
		}
	}

	assertOutwardWinding(t, g)
}

func TestCylinderCounts(t *testing.T) {
	tests := []struct {
		sides int
		want  int
	}{
		{8, 96},
		{3, 36},
		{2, 36}, // clamped
		{0, 36},
		{32, 384},
	}

	for _, tt := range tests {
		g := Cylinder(tt.sides)
		assert.Equal(t, tt.want, g.VertexCount(), "sides=%d", tt.sides)
		assert.Equal(t, tt.want, CylinderVertexCount(tt.sides))
		assert.Len(t, g.UVs, tt.want*2)
		assert.Len(t, g.Normals, tt.want*3)
	}
}

func TestCylinderShape(t *testing.T) {
	g := Cylinder(8)

	b := g.Bounds()
	assert.InDelta(t, -0.5, b.Min[1], 1e-6)
	assert.InDelta(t, 0.5, b.Max[1], 1e-6)
	assert.InDelta(t, 0.5, b.Max[0], 1e-6)
	assert.InDelta(t, -0.5, b.Min[0], 1e-6)

	// First side vertex sits on the top rim at angle 0.
	assert.Equal(t, [3]float32{0.5, 0.5, 0}, g.Position(0))
	assert.Equal(t, [2]float32{0, 1}, g.UV(0))

	// Every vertex lies on or inside the unit-diameter circle.
	for i := 0; i < g.VertexCount(); i++ {
		p := g.Position(i)
		r := math32.Hypot(p[0], p[2])
		assert.LessOrEqual(t, r, float32(0.5+1e-6))
	}

	// Side panels sit exactly on the rim.
	for i := 0; i < 6*8; i++ {
		p := g.Position(i)
		assert.InDelta(t, 0.5, math32.Hypot(p[0], p[2]), 1e-6, "side vertex %d", i)
	}

	// Cap centers map to the texture center.
	topCenter := 8 * 6
	assert.Equal(t, [3]float32{0, 0.5, 0}, g.Position(topCenter))
	assert.Equal(t, [2]float32{0.5, 0.5}, g.UV(topCenter))
	bottomCenter := 8*6 + 8*3
	assert.Equal(t, [3]float32{0, -0.5, 0}, g.Position(bottomCenter))

	assertOutwardWinding(t, g)
}

func TestCylinderDeterministic(t *testing.T) {
	assert.Equal(t, Cylinder(12), Cylinder(12))
}

func TestSphereCounts(t *testing.T) {
	g := Sphere(16, 32)

	assert.Equal(t, 17*33, g.VertexCount())
	assert.Equal(t, 16*32*6, g.IndexCount())
	assert.Equal(t, SphereVertexCount(16, 32), g.VertexCount())
	assert.Equal(t, SphereIndexCount(16, 32), g.IndexCount())
	assert.True(t, g.Indexed())
	assert.Equal(t, g.IndexCount(), g.DrawCount())

	for _, idx := range g.Indices {
		require.Less(t, int(idx), g.VertexCount())
	}
}

func TestSphereClamp(t *testing.T) {
	g := Sphere(0, 1)
	assert.Equal(t, 2*4, g.VertexCount())
	assert.Equal(t, 1*3*6, g.IndexCount())

	big := Sphere(1000, 1000)
	assert.Equal(t, 255*255, big.VertexCount())
}

func TestSphereVertices(t *testing.T) {
	g := Sphere(4, 8)

	// North pole first, with UV (1, 1).
	assert.InDeltaSlice(t, []float32{0, 0.5, 0}, g.Positions[0:3], 1e-6)
	assert.Equal(t, [2]float32{1, 1}, g.UV(0))

	// Equator at longitude 0.
	eq := 2 * 9
	p := g.Position(eq)
	assert.InDelta(t, 0.5, p[0], 1e-6)
	assert.InDelta(t, 0, p[1], 1e-6)
	assert.InDelta(t, 0, p[2], 1e-6)
	assert.Equal(t, [2]float32{1, 0.5}, g.UV(eq))

	// Normals are the unit positions.
	for i := 0; i < g.VertexCount(); i++ {
		p := g.Position(i)
		n := g.Normal(i)
		for k := 0; k < 3; k++ {
			assert.InDelta(t, 2*p[k], n[k], 1e-6)
		}
		assert.InDelta(t, 1, math32.Sqrt(dot(n, n)), 1e-5)
	}

	assertOutwardWinding(t, g)
}

func TestEmptyBounds(t *testing.T) {
	var g Geometry
	assert.Equal(t, Bounds{}, g.Bounds())
	assert.Equal(t, [3]float32{}, g.Normal(0))
	assert.Equal(t, [2]float32{}, g.UV(0))
}
